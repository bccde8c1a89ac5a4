package config

import (
	"time"

	"github.com/vovakirdan/goal-bingo/internal/quest"
)

// DurationPreset picks a quest end date relative to its start date.
type DurationPreset string

const (
	DurationCustom DurationPreset = "custom"
	DurationWeek   DurationPreset = "week"
	DurationMonth  DurationPreset = "month"
	DurationYear   DurationPreset = "year"
)

// DurationPresets lists the presets in form order.
var DurationPresets = []DurationPreset{DurationCustom, DurationWeek, DurationMonth, DurationYear}

// ParseDurationPreset parses a preset name.
func ParseDurationPreset(s string) (DurationPreset, bool) {
	for _, p := range DurationPresets {
		if string(p) == s {
			return p, true
		}
	}
	return DurationCustom, false
}

// EndDate returns the end date for a quest starting at start.
// The custom preset has no computed end date and returns ok=false.
func (p DurationPreset) EndDate(start quest.Date) (quest.Date, bool) {
	if start.IsZero() {
		return quest.Date{}, false
	}
	var end time.Time
	switch p {
	case DurationWeek:
		end = start.AddDate(0, 0, 7)
	case DurationMonth:
		end = start.AddDate(0, 1, 0)
	case DurationYear:
		end = start.AddDate(1, 0, 0)
	default:
		return quest.Date{}, false
	}
	return quest.NewDate(end), true
}

// Next returns the preset after p, wrapping around.
func (p DurationPreset) Next() DurationPreset {
	for i, d := range DurationPresets {
		if d == p {
			return DurationPresets[(i+1)%len(DurationPresets)]
		}
	}
	return DurationCustom
}
