package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/goal-bingo/internal/config"
	"github.com/vovakirdan/goal-bingo/internal/quest"
)

// Form fields in focus order.
const (
	fieldTitle = iota
	fieldReward
	fieldStart
	fieldDuration
	fieldEnd
	fieldGridSize
	fieldCreate
	fieldCount
)

// formSubmitMsg carries a parsed quest configuration out of the form.
type formSubmitMsg struct {
	config quest.Config
}

// FormModel is the quest setup form shown while no quest exists.
type FormModel struct {
	title       textinput.Model
	reward      textinput.Model
	start       textinput.Model
	end         textinput.Model
	duration    config.DurationPreset
	gridSize    int
	suggestions []string
	suggestion  int
	focus       int
	err         error
	keys        FormKeyMap
	help        help.Model
	theme       Theme
}

// NewForm creates a setup form prefilled with defaults.
func NewForm(cfg config.QuestConfig, today quest.Date, theme Theme) FormModel {
	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 32
		return in
	}

	f := FormModel{
		title:       newInput("My 2026 goals", 60),
		reward:      newInput("Something to look forward to", 60),
		start:       newInput(quest.DateLayout, len(quest.DateLayout)),
		end:         newInput(quest.DateLayout, len(quest.DateLayout)),
		duration:    cfg.DefaultDuration,
		gridSize:    cfg.DefaultGridSize,
		suggestions: cfg.RewardSuggestions,
		suggestion:  -1,
		keys:        DefaultFormKeyMap(),
		help:        help.New(),
		theme:       theme,
	}
	f.start.SetValue(today.String())
	f.syncEndDate()
	f.title.Focus()
	return f
}

// Init starts the cursor blink.
func (f FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key input for the form.
func (f FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInput(msg)
	}

	switch {
	case key.Matches(keyMsg, f.keys.Next):
		return f.setFocus(f.focus + 1)
	case key.Matches(keyMsg, f.keys.Prev):
		return f.setFocus(f.focus - 1)
	case key.Matches(keyMsg, f.keys.Suggestion):
		f.nextSuggestion()
		return f, nil
	case key.Matches(keyMsg, f.keys.Submit):
		if f.focus == fieldCreate {
			return f.submit()
		}
		return f.setFocus(f.focus + 1)
	}

	switch f.focus {
	case fieldDuration:
		if key.Matches(keyMsg, f.keys.Left, f.keys.Right) {
			f.duration = f.duration.Next()
			f.syncEndDate()
		}
		return f, nil
	case fieldGridSize:
		switch {
		case key.Matches(keyMsg, f.keys.Left):
			f.gridSize = stepGridSize(f.gridSize, -1)
		case key.Matches(keyMsg, f.keys.Right):
			f.gridSize = stepGridSize(f.gridSize, 1)
		}
		return f, nil
	case fieldEnd:
		// Typing an end date switches to a custom duration.
		if keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeyBackspace {
			f.duration = config.DurationCustom
		}
	}
	return f.updateInput(msg)
}

func (f FormModel) updateInput(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldReward:
		f.reward, cmd = f.reward.Update(msg)
	case fieldStart:
		f.start, cmd = f.start.Update(msg)
		f.syncEndDate()
	case fieldEnd:
		f.end, cmd = f.end.Update(msg)
	}
	return f, cmd
}

func (f FormModel) setFocus(field int) (FormModel, tea.Cmd) {
	f.focus = (field + fieldCount) % fieldCount
	f.title.Blur()
	f.reward.Blur()
	f.start.Blur()
	f.end.Blur()

	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		cmd = f.title.Focus()
	case fieldReward:
		cmd = f.reward.Focus()
	case fieldStart:
		cmd = f.start.Focus()
	case fieldEnd:
		cmd = f.end.Focus()
	}
	return f, cmd
}

func (f *FormModel) nextSuggestion() {
	if len(f.suggestions) == 0 {
		return
	}
	f.suggestion = (f.suggestion + 1) % len(f.suggestions)
	f.reward.SetValue(f.suggestions[f.suggestion])
	f.reward.CursorEnd()
}

// syncEndDate recomputes the end date from the start date and preset.
func (f *FormModel) syncEndDate() {
	start, err := quest.ParseDate(f.start.Value())
	if err != nil {
		return
	}
	if end, ok := f.duration.EndDate(start); ok {
		f.end.SetValue(end.String())
	}
}

func (f FormModel) submit() (FormModel, tea.Cmd) {
	cfg, err := f.Config()
	if err != nil {
		f.err = err
		return f, nil
	}
	f.err = nil
	return f, func() tea.Msg {
		return formSubmitMsg{config: cfg}
	}
}

// Config parses the form into a quest configuration. Field validation
// beyond date syntax is left to the engine.
func (f FormModel) Config() (quest.Config, error) {
	start, err := quest.ParseDate(f.start.Value())
	if err != nil {
		return quest.Config{}, fmt.Errorf("start date must be %s", quest.DateLayout)
	}
	end, err := quest.ParseDate(f.end.Value())
	if err != nil {
		return quest.Config{}, fmt.Errorf("end date must be %s", quest.DateLayout)
	}
	return quest.Config{
		Title:     strings.TrimSpace(f.title.Value()),
		Reward:    strings.TrimSpace(f.reward.Value()),
		StartDate: start,
		EndDate:   end,
		GridSize:  f.gridSize,
	}, nil
}

// SetError shows err under the form.
func (f *FormModel) SetError(err error) {
	f.err = err
}

// View renders the form.
func (f FormModel) View() string {
	var b strings.Builder

	b.WriteString(f.theme.Title.Render("NEW QUEST"))
	b.WriteString("\n\n")

	row := func(field int, label, value string) {
		style := f.theme.FormLabel
		if f.focus == field {
			style = f.theme.FormLabelActive
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label), value))
		b.WriteString("\n")
	}

	row(fieldTitle, "Title", f.title.View())
	row(fieldReward, "Reward", f.reward.View())
	row(fieldStart, "Start", f.start.View())
	row(fieldDuration, "Duration", f.options(durationLabels(), string(f.duration)))
	row(fieldEnd, "End", f.end.View())
	row(fieldGridSize, "Grid", f.options(gridLabels(), strconv.Itoa(f.gridSize)))

	b.WriteString("\n")
	button := f.theme.FormButton
	if f.focus == fieldCreate {
		button = f.theme.FormButtonOn
	}
	b.WriteString(button.Render("Create quest"))
	b.WriteString("\n")

	if f.err != nil {
		b.WriteString(f.theme.Error.Render(f.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(f.help.View(f.keys))
	return b.String()
}

func (f FormModel) options(labels []string, selected string) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == selected {
			parts = append(parts, f.theme.FormOptionOn.Render(l))
		} else {
			parts = append(parts, f.theme.FormOption.Render(l))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func durationLabels() []string {
	out := make([]string, len(config.DurationPresets))
	for i, p := range config.DurationPresets {
		out[i] = string(p)
	}
	return out
}

func gridLabels() []string {
	out := make([]string, len(quest.GridSizes))
	for i, n := range quest.GridSizes {
		out[i] = strconv.Itoa(n)
	}
	return out
}

// stepGridSize moves to the neighbouring grid size, clamped to the ends.
func stepGridSize(current, delta int) int {
	idx := 0
	for i, n := range quest.GridSizes {
		if n == current {
			idx = i
		}
	}
	idx = min(max(idx+delta, 0), len(quest.GridSizes)-1)
	return quest.GridSizes[idx]
}
