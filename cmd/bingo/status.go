package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/goal-bingo/internal/export"
	"github.com/vovakirdan/goal-bingo/internal/quest"
	"github.com/vovakirdan/goal-bingo/internal/storage"
)

// now is the clock used for default dates and export names.
var now = time.Now

var flagExportDir string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the board",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the board to a text file",
	Long: `Write the board as plain text to the export directory
(default: ~/.bingo/exports) and print the file path.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportDir, "dir", "", "Export directory (overrides config)")
}

func runStatus(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	snap := s.engine.Snapshot()
	if !snap.HasQuest() {
		fmt.Println("No quest yet. Create one with 'bingo new' or 'bingo play'.")
		return nil
	}
	printBoard(os.Stdout, snap)
	return nil
}

func runExport(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	dir := flagExportDir
	if dir == "" {
		dir = s.cfg.Storage.ExportDir
	}
	dir, err = storage.ExpandHome(dir)
	if err != nil {
		return err
	}

	path, err := export.WriteFile(dir, s.engine.Snapshot(), now())
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

var (
	modeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("135")).Padding(0, 1)
	linesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

// printBoard writes the text board followed by the mode and completed
// lines. Styling is only applied when w is a terminal.
func printBoard(w io.Writer, snap quest.Snapshot) {
	fmt.Fprint(w, export.Text(snap))

	mode := strings.ToUpper(string(snap.Mode))
	lines := make([]string, 0, len(snap.Lines()))
	for _, l := range snap.Lines() {
		lines = append(lines, string(l))
	}
	summary := strings.Join(lines, ", ")
	if summary == "" {
		summary = "none"
	}

	if isTerminal(w) {
		mode = modeStyle.Render(mode)
		summary = linesStyle.Render(summary)
	}
	fmt.Fprintf(w, "\nMode: %s\nLines: %s\n", mode, summary)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
