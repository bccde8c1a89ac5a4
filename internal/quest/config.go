package quest

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

// GridSizes are the board dimensions a quest can be created with.
var GridSizes = []int{3, 4, 5}

// DateLayout is the wire and display format for quest dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day.
type Date struct {
	time.Time
}

// NewDate takes the calendar date of t in t's location and returns it as
// midnight UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD date. An empty string yields the zero Date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("quest: invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String formats the date as YYYY-MM-DD, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Config describes a quest. GridSize is fixed for the life of the board.
type Config struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Reward    string `json:"reward"`
	StartDate Date   `json:"startDate"`
	EndDate   Date   `json:"endDate"`
	GridSize  int    `json:"gridSize"`
}

// Validate checks the fields a quest needs before a board can be generated.
// Errors wrap ErrInvalidConfig and the field-specific sentinel.
func (c Config) Validate() error {
	var problem error
	switch {
	case strings.TrimSpace(c.Title) == "":
		problem = ErrMissingTitle
	case strings.TrimSpace(c.Reward) == "":
		problem = ErrMissingReward
	case c.EndDate.IsZero():
		problem = ErrMissingEndDate
	case !c.StartDate.IsZero() && c.EndDate.Before(c.StartDate.Time):
		problem = ErrEndBeforeStart
	case !slices.Contains(GridSizes, c.GridSize):
		problem = ErrInvalidGridSize
	}
	if problem != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, problem)
	}
	return nil
}
