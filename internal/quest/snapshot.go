package quest

// Snapshot is a point-in-time copy of the full quest state.
type Snapshot struct {
	Config         *Config
	Goals          Board
	Mode           Mode
	CompletedLines int
	RewardClaimed  bool
}

// emptySnapshot is the state with no quest: the load defaults and the
// result of Reset.
func emptySnapshot() Snapshot {
	return Snapshot{
		Goals: Board{},
		Mode:  ModeSetup,
	}
}

// HasQuest reports whether a quest has been created.
func (s Snapshot) HasQuest() bool {
	return s.Config != nil
}

// GridSize returns the configured grid size, or 0 without a quest.
func (s Snapshot) GridSize() int {
	if s.Config == nil {
		return 0
	}
	return s.Config.GridSize
}

// Lines recomputes the completed lines of the board.
func (s Snapshot) Lines() []Line {
	return DetectLines(s.Goals, s.GridSize())
}

// Progress returns the completion percentage.
func (s Snapshot) Progress() int {
	return ProgressPercent(s.Goals)
}

// Reward returns the derived reward state.
func (s Snapshot) Reward() RewardState {
	return DeriveReward(s.CompletedLines, s.RewardClaimed)
}

// Clone returns a deep copy safe to hand to other goroutines.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Config != nil {
		cfg := *s.Config
		out.Config = &cfg
	}
	out.Goals = s.Goals.Clone()
	return out
}
