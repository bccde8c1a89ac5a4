package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/goal-bingo/internal/platform/tui"
	"github.com/vovakirdan/goal-bingo/internal/storage"
)

var flagMonochrome bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive board",
	Long: `Open the bingo board in the terminal.

Without a quest, a setup form asks for the title, reward, dates and grid
size. In setup mode goals are written with Enter and shuffled with X;
S starts the quest. In play mode Enter or Space marks a goal done and
C claims the reward once a line is complete.

Controls:
  Arrows/hjkl  - Move
  E            - Export the board to a text file
  R            - Reset the quest
  ?            - Toggle full help
  Q/Ctrl+C     - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMonochrome, "mono", false, "Use the grayscale theme")
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	exportDir, err := storage.ExpandHome(s.cfg.Storage.ExportDir)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Engine:    s.engine,
		Config:    s.cfg,
		ExportDir: exportDir,
		Rand:      s.rng,
		Now:       now,
		Width:     width,
		Height:    height,
	}
	if flagMonochrome {
		theme := tui.MonochromeTheme()
		opts.Theme = &theme
	}

	return tui.Run(opts)
}
