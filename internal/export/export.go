// Package export renders a quest board as plain text and writes it to disk,
// for sharing a board outside the terminal.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/goal-bingo/internal/quest"
)

// cellWidth is the inner width of one rendered cell.
const cellWidth = 14

// Text renders the snapshot as a boxed grid with a header and progress line.
// Completed cells are marked with [x]. A snapshot with no quest renders an
// empty string.
func Text(snap quest.Snapshot) string {
	if !snap.HasQuest() {
		return ""
	}
	cfg := snap.Config
	size := cfg.GridSize

	var b strings.Builder
	fmt.Fprintf(&b, "GOAL BINGO: %s\n", cfg.Title)
	fmt.Fprintf(&b, "%s ~ %s\n", cfg.StartDate, cfg.EndDate)

	reward := snap.Reward()
	status := "locked"
	switch {
	case reward.Claimed:
		status = "claimed"
	case reward.Unlocked:
		status = "unlocked"
	}
	fmt.Fprintf(&b, "Reward: %s (%s) %s\n", cfg.Reward, status, stars(snap.CompletedLines))
	b.WriteString("\n")

	border := "+" + strings.Repeat(strings.Repeat("-", cellWidth)+"+", size) + "\n"
	b.WriteString(border)
	for r := 0; r < size; r++ {
		var top, bottom strings.Builder
		top.WriteString("|")
		bottom.WriteString("|")
		for c := 0; c < size; c++ {
			idx := r*size + c
			if idx >= len(snap.Goals) {
				top.WriteString(pad("", cellWidth) + "|")
				bottom.WriteString(pad("", cellWidth) + "|")
				continue
			}
			cell := snap.Goals[idx]
			mark := "[ ]"
			if cell.Completed {
				mark = "[x]"
			}
			top.WriteString(pad(" "+mark+" "+cell.Icon.Resolve().Glyph(), cellWidth) + "|")
			bottom.WriteString(pad(" "+truncate(cell.Text, cellWidth-2), cellWidth) + "|")
		}
		b.WriteString(top.String() + "\n")
		b.WriteString(bottom.String() + "\n")
		b.WriteString(border)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%d%% QUEST COMPLETE, %d/%d LINES\n",
		snap.Progress(), snap.CompletedLines, quest.MaxLines(size))

	return b.String()
}

// WriteFile writes the text export into dir and returns the file path.
// The file is named after the quest title.
func WriteFile(dir string, snap quest.Snapshot, now time.Time) (string, error) {
	if !snap.HasQuest() {
		return "", quest.ErrNoQuest
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: cannot create directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("bingo-%s-%s.txt", Slug(snap.Config.Title), now.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(Text(snap)), 0o600); err != nil {
		return "", fmt.Errorf("export: cannot write %s: %w", path, err)
	}
	return path, nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a title into a file-name-safe fragment.
func Slug(title string) string {
	s := nonSlug.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "quest"
	}
	return s
}

func stars(lines int) string {
	n := quest.Stars(lines)
	return strings.Repeat("*", n) + strings.Repeat(".", quest.MaxStars-n)
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-1]) + "~"
}
