package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/goal-bingo/internal/quest"
)

const (
	minCellWidth   = 10
	maxCellWidth   = 22
	cellTextHeight = 3
	confettiHeight = 5
)

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Snapshot()
	var body string
	switch {
	case m.confirm != nil:
		body = m.overlay(m.confirm.Transition.String()+" quest?", m.confirm.Message, m.confirmHint())
	case m.claimed != "":
		body = m.overlay("REWARD CLAIMED", "Enjoy "+m.claimed+"!", "press any key")
	case !snap.HasQuest():
		body = m.form.View()
	default:
		body = m.boardView(snap)
	}

	if m.celebration.Active() {
		band := m.celebration.Render(max(m.width, 40), confettiHeight)
		body = lipgloss.JoinVertical(lipgloss.Left, band, body)
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

func (m Model) confirmHint() string {
	return fmt.Sprintf("[%s] %s   [%s] %s",
		m.confirmKeys.Yes.Help().Key, m.confirmKeys.Yes.Help().Desc,
		m.confirmKeys.No.Help().Key, m.confirmKeys.No.Help().Desc,
	)
}

func (m Model) overlay(title, text, hint string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.OverlayTitle.Render(strings.ToUpper(title)),
		"",
		m.theme.OverlayText.Width(44).Align(lipgloss.Center).Render(text),
		"",
		m.theme.Status.Render(hint),
	)
	return m.theme.OverlayBorder.Render(content)
}

func (m Model) boardView(snap quest.Snapshot) string {
	sections := []string{
		m.headerView(snap),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, m.gridView(snap), "  ", m.rewardView(snap)),
	}

	if m.editing {
		sections = append(sections, "", m.editorView())
	}
	if m.status != "" {
		style := m.theme.Status
		if m.statusErr {
			style = m.theme.Error
		}
		sections = append(sections, "", style.Render(m.status))
	}

	keys := m.keys.ForMode(snap.Mode, snap.Reward())
	if m.editing {
		sections = append(sections, "", m.help.View(m.editorKeys))
	} else {
		sections = append(sections, "", m.help.View(keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) headerView(snap quest.Snapshot) string {
	cfg := snap.Config
	tag := "SETUP"
	if snap.Mode == quest.ModePlay {
		tag = "PLAY"
	}
	title := lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.Title.Render("GOAL BINGO: "+cfg.Title), " ", m.theme.ModeTag.Render(tag),
	)
	dates := m.theme.Dates.Render(fmt.Sprintf("%s ~ %s", cfg.StartDate, cfg.EndDate))

	pct := snap.Progress()
	bar := m.progress.ViewAs(float64(pct) / 100)
	label := m.theme.Progress.Render(fmt.Sprintf(" %d%% QUEST COMPLETE", pct))

	return lipgloss.JoinVertical(lipgloss.Left, title, dates, bar+label)
}

func (m Model) cellWidth(size int) int {
	if m.width <= 0 {
		return 16
	}
	// Leave room for the reward card beside the grid.
	w := (m.width-36)/size - 4
	return min(max(w, minCellWidth), maxCellWidth)
}

func (m Model) gridView(snap quest.Snapshot) string {
	size := snap.GridSize()
	width := m.cellWidth(size)

	inLine := make(map[int]bool)
	for _, line := range snap.Lines() {
		for _, idx := range quest.LineCells(line, size) {
			inLine[idx] = true
		}
	}

	rows := make([]string, size)
	for r := range size {
		cells := make([]string, size)
		for c := range size {
			idx := r*size + c
			cells[c] = m.cellView(snap, idx, inLine[idx], width)
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) cellView(snap quest.Snapshot, idx int, inLine bool, width int) string {
	cell := snap.Goals[idx]

	style := m.theme.Cell
	iconStyle := m.theme.CellIcon
	switch {
	case !cell.Filled():
		style = m.theme.CellBlank
	case inLine:
		style = m.theme.CellInLine
		iconStyle = m.theme.CellIconDone
	case cell.Completed:
		style = m.theme.CellDone
		iconStyle = m.theme.CellIconDone
	}
	if idx == m.cursor {
		style = m.theme.CellCursor.Inherit(style)
	}

	icon := iconStyle.Render(cell.Icon.Resolve().Glyph())
	if cell.Completed {
		icon += iconStyle.Render(" ✓")
	}

	text := cell.Text
	if !cell.Filled() {
		text = "empty"
		if snap.Mode == quest.ModePlay {
			text = ""
		}
	}
	return style.Width(width).Height(cellTextHeight + 1).Render(icon + "\n" + text)
}

func (m Model) rewardView(snap quest.Snapshot) string {
	reward := snap.Reward()
	size := snap.GridSize()

	var status string
	switch {
	case reward.Claimed:
		status = m.theme.RewardClaimed.Render("CLAIMED")
	case reward.Unlocked:
		status = m.theme.RewardOpen.Render("UNLOCKED, press c to claim")
	default:
		status = m.theme.RewardLocked.Render("LOCKED, complete a line")
	}

	stars := quest.Stars(snap.CompletedLines)
	meter := m.theme.StarOn.Render(strings.Repeat("★", stars)) +
		m.theme.StarOff.Render(strings.Repeat("☆", quest.MaxStars-stars))

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.OverlayTitle.Render("REWARD"),
		m.theme.OverlayText.Width(26).Render(snap.Config.Reward),
		"",
		status,
		"",
		meter,
		m.theme.Dates.Render(fmt.Sprintf("%d/%d lines", snap.CompletedLines, quest.MaxLines(size))),
	)
	return m.theme.RewardBox.Render(content)
}

func (m Model) editorView() string {
	icon := m.editIcon.Resolve()
	label := m.theme.FormLabelActive.Render(fmt.Sprintf("Goal #%d", m.cursor+1))
	iconView := m.theme.CellIcon.Render(fmt.Sprintf("%s %s", icon.Glyph(), icon))
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, label, m.editor.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, m.theme.FormLabel.Render("Icon"), iconView),
	)
}
