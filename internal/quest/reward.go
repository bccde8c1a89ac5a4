package quest

// MaxStars is the number of stars on the reward meter.
const MaxStars = 5

// RewardState is the reward lifecycle for one quest.
type RewardState struct {
	// Unlocked is derived from the completed line count and never persisted.
	Unlocked bool
	// Claimed is persisted and only goes back to false on Reset.
	Claimed bool
}

// DeriveReward computes the reward state from the line count and the
// persisted claimed flag.
func DeriveReward(completedLines int, claimed bool) RewardState {
	return RewardState{
		Unlocked: completedLines > 0,
		Claimed:  claimed,
	}
}

// Claimable reports whether a claim would take effect.
func (r RewardState) Claimable() bool {
	return r.Unlocked && !r.Claimed
}

// Claim marks the reward claimed. It returns true only on the call that
// flips Claimed; every other call is inert.
func (r *RewardState) Claim() bool {
	if !r.Claimable() {
		return false
	}
	r.Claimed = true
	return true
}

// Stars returns how many meter stars are lit for a line count.
func Stars(completedLines int) int {
	switch {
	case completedLines < 0:
		return 0
	case completedLines > MaxStars:
		return MaxStars
	default:
		return completedLines
	}
}
