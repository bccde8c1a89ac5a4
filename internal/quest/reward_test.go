package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveReward(t *testing.T) {
	assert.False(t, DeriveReward(0, false).Unlocked)
	assert.True(t, DeriveReward(1, false).Unlocked)
	assert.True(t, DeriveReward(3, true).Claimed)
}

func TestRewardClaim(t *testing.T) {
	locked := DeriveReward(0, false)
	assert.False(t, locked.Claim(), "locked reward must not be claimable")
	assert.False(t, locked.Claimed)

	open := DeriveReward(1, false)
	assert.True(t, open.Claim())
	assert.True(t, open.Claimed)
	assert.False(t, open.Claim(), "second claim must be inert")
	assert.True(t, open.Claimed, "claimed never reverts")
}

func TestStars(t *testing.T) {
	assert.Equal(t, 0, Stars(-1))
	assert.Equal(t, 0, Stars(0))
	assert.Equal(t, 3, Stars(3))
	assert.Equal(t, MaxStars, Stars(12))
}

func TestIconResolve(t *testing.T) {
	assert.Equal(t, IconStar, IconNone.Resolve())
	assert.Equal(t, IconStar, Icon("Dragon").Resolve())
	assert.Equal(t, IconGift, IconGift.Resolve())
	assert.Equal(t, IconShoe, IconGift.Next(), "picker wraps")
	assert.Equal(t, IconMedal, IconNone.Next(), "unset icon starts from the default")
}
