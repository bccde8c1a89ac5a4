package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/goal-bingo/internal/config"
	"github.com/vovakirdan/goal-bingo/internal/quest"
)

var (
	flagTitle    string
	flagReward   string
	flagStart    string
	flagEnd      string
	flagDuration string
	flagSize     int
	flagIcon     string
	flagYes      bool
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a quest",
	Long: `Create a quest with a blank board in setup mode.

The end date is either given with --end or computed from the start date
with --duration (week, month, year). The start date defaults to today.

Examples:
  bingo new --title "2026 goals" --reward "Weekend trip" --end 2026-12-31
  bingo new --title "Spring" --reward "New book" --duration month --size 4`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

var editCmd = &cobra.Command{
	Use:   "edit <cell> <text>",
	Short: "Set the goal of a cell during setup",
	Long: `Set the goal text of a cell. Cells are numbered from 1, left to right
and top to bottom. Only possible before the quest is started.

Icons: shoe, book, apple, coffee, heart, star, medal, sun, gift.

Examples:
  bingo edit 1 "Run 5k" --icon shoe
  bingo edit 9 "Read 12 books"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runEdit,
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle the goals during setup",
	Args:  cobra.NoArgs,
	RunE:  runShuffle,
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Lock the board and start playing",
	Long: `Move the quest from setup to play. Every cell needs a goal first.
Once started the goals cannot be edited or shuffled any more.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <cell>",
	Short: "Mark a goal done or undone",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggle,
}

var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "Claim the unlocked reward",
	Args:  cobra.NoArgs,
	RunE:  runClaim,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the quest and start over",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	newCmd.Flags().StringVar(&flagTitle, "title", "", "Quest title")
	newCmd.Flags().StringVar(&flagReward, "reward", "", "Reward unlocked by the first bingo line")
	newCmd.Flags().StringVar(&flagStart, "start", "", "Start date YYYY-MM-DD (default: today)")
	newCmd.Flags().StringVar(&flagEnd, "end", "", "End date YYYY-MM-DD")
	newCmd.Flags().StringVar(&flagDuration, "duration", "", "Compute end date: week, month, year")
	newCmd.Flags().IntVar(&flagSize, "size", 0, "Grid size: 3, 4 or 5 (default from config)")

	editCmd.Flags().StringVar(&flagIcon, "icon", "", "Cell icon (keeps the current icon if empty)")

	startCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
}

func runNew(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg, err := questConfig(s.cfg.Quest)
	if err != nil {
		return err
	}
	if err := s.engine.CreateQuest(cfg); err != nil {
		return err
	}

	snap := s.engine.Snapshot()
	fmt.Printf("Created quest %q (%dx%d) from %s to %s.\n",
		snap.Config.Title, snap.Config.GridSize, snap.Config.GridSize,
		snap.Config.StartDate, snap.Config.EndDate)
	fmt.Println("Fill the board with 'bingo edit <cell> <text>' or 'bingo play'.")
	return nil
}

// questConfig builds a quest configuration from the new command's flags.
func questConfig(defaults config.QuestConfig) (quest.Config, error) {
	start, err := quest.ParseDate(flagStart)
	if err != nil {
		return quest.Config{}, err
	}
	end, err := quest.ParseDate(flagEnd)
	if err != nil {
		return quest.Config{}, err
	}

	preset := defaults.DefaultDuration
	if flagDuration != "" {
		p, ok := config.ParseDurationPreset(flagDuration)
		if !ok {
			return quest.Config{}, fmt.Errorf("unknown duration %q (want week, month or year)", flagDuration)
		}
		preset = p
	}
	if end.IsZero() {
		from := start
		if from.IsZero() {
			from = quest.NewDate(now())
		}
		if computed, ok := preset.EndDate(from); ok {
			end = computed
		}
	}

	size := flagSize
	if size == 0 {
		size = defaults.DefaultGridSize
	}

	return quest.Config{
		Title:     strings.TrimSpace(flagTitle),
		Reward:    strings.TrimSpace(flagReward),
		StartDate: start,
		EndDate:   end,
		GridSize:  size,
	}, nil
}

func runEdit(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	index, err := cellIndex(s.engine.Snapshot(), args[0])
	if err != nil {
		return err
	}

	icon := quest.IconNone
	if flagIcon != "" {
		parsed, ok := quest.ParseIcon(flagIcon)
		if !ok {
			return fmt.Errorf("unknown icon %q", flagIcon)
		}
		icon = parsed
	}

	if err := requireSetup(s.engine); err != nil {
		return err
	}
	text := strings.Join(args[1:], " ")
	if err := s.engine.EditCell(index, text, icon); err != nil {
		return err
	}
	fmt.Printf("Cell %d: %s\n", index+1, text)
	return nil
}

func runShuffle(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := requireSetup(s.engine); err != nil {
		return err
	}
	if err := s.engine.Shuffle(); err != nil {
		return err
	}
	printBoard(os.Stdout, s.engine.Snapshot())
	return nil
}

func runStart(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	pending, err := s.engine.RequestStart()
	if err != nil {
		return err
	}
	if !confirm(pending) {
		s.engine.Cancel(pending)
		fmt.Println("Cancelled.")
		return nil
	}
	if err := s.engine.Confirm(pending); err != nil {
		return err
	}
	fmt.Println("Quest started. Mark goals done with 'bingo toggle <cell>'.")
	return nil
}

func runToggle(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	snap := s.engine.Snapshot()
	index, err := cellIndex(snap, args[0])
	if err != nil {
		return err
	}
	if snap.Mode != quest.ModePlay {
		return errors.New("the quest has not been started yet")
	}

	s.engine.Subscribe(announce(os.Stdout))
	if err := s.engine.ToggleCell(index); err != nil {
		return err
	}

	cell := s.engine.Snapshot().Goals[index]
	state := "not done"
	if cell.Completed {
		state = "done"
	}
	fmt.Printf("Cell %d %q is %s. %d%% complete.\n", index+1, cell.Text, state, s.engine.Progress())
	return nil
}

func runClaim(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if !s.engine.Snapshot().HasQuest() {
		return quest.ErrNoQuest
	}

	s.engine.Subscribe(announce(os.Stdout))
	claimed, err := s.engine.ClaimReward()
	if err != nil {
		return err
	}
	if !claimed {
		if s.engine.Reward().Claimed {
			fmt.Println("The reward has already been claimed.")
		} else {
			fmt.Println("The reward is still locked. Complete a line first.")
		}
	}
	return nil
}

func runReset(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	pending, err := s.engine.RequestReset()
	if err != nil {
		return err
	}
	if !confirm(pending) {
		s.engine.Cancel(pending)
		fmt.Println("Cancelled.")
		return nil
	}
	if err := s.engine.Confirm(pending); err != nil {
		return err
	}
	fmt.Println("Quest deleted.")
	return nil
}

// cellIndex parses a 1-based cell number into a board index.
func cellIndex(snap quest.Snapshot, arg string) (int, error) {
	if !snap.HasQuest() {
		return 0, quest.ErrNoQuest
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(snap.Goals) {
		return 0, fmt.Errorf("cell must be a number from 1 to %d", len(snap.Goals))
	}
	return n - 1, nil
}

func requireSetup(e *quest.Engine) error {
	snap := e.Snapshot()
	if !snap.HasQuest() {
		return quest.ErrNoQuest
	}
	if snap.Mode != quest.ModeSetup {
		return quest.ErrNotInSetup
	}
	return nil
}

// confirm asks the user to accept p unless --yes was given. Without a
// terminal to ask on, it refuses.
func confirm(p quest.Pending) bool {
	if flagYes {
		return true
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Refusing without a terminal; pass --yes to confirm.")
		return false
	}
	return ask(os.Stdin, os.Stdout, p.Message)
}

// ask prints msg and reads a yes/no answer.
func ask(in io.Reader, out io.Writer, msg string) bool {
	fmt.Fprintf(out, "%s [y/N] ", msg)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// announce prints engine events as they happen.
func announce(w io.Writer) quest.Listener {
	return func(ev quest.Event) {
		switch ev := ev.(type) {
		case quest.LinesIncreased:
			fmt.Fprintf(w, "BINGO! %d line(s) complete.\n", ev.Current)
		case quest.RewardUnlocked:
			fmt.Fprintf(w, "Reward unlocked: %s. Claim it with 'bingo claim'.\n", ev.Reward)
		case quest.RewardClaimed:
			fmt.Fprintf(w, "Reward claimed: %s. Enjoy!\n", ev.Reward)
		}
	}
}
