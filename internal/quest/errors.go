package quest

import "errors"

var (
	// ErrInvalidConfig wraps every quest configuration validation failure.
	ErrInvalidConfig = errors.New("quest: invalid config")

	ErrMissingTitle    = errors.New("title is required")
	ErrMissingReward   = errors.New("reward is required")
	ErrMissingEndDate  = errors.New("end date is required")
	ErrEndBeforeStart  = errors.New("end date is before start date")
	ErrInvalidGridSize = errors.New("grid size must be 3, 4 or 5")

	ErrQuestExists           = errors.New("quest: a quest already exists, reset it first")
	ErrNoQuest               = errors.New("quest: no quest has been created")
	ErrNotInSetup            = errors.New("quest: quest is not in setup mode")
	ErrBoardIncomplete       = errors.New("quest: every cell needs a goal before starting")
	ErrNoPendingConfirmation = errors.New("quest: no matching confirmation is pending")
)
