package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/goal-bingo/internal/quest"
)

// KeyMap defines the key bindings for the board screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Edit    key.Binding
	Shuffle key.Binding
	Start   key.Binding
	Toggle  key.Binding
	Claim   key.Binding
	Export  key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Toggle, k.Shuffle, k.Start, k.Claim, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Edit, k.Shuffle, k.Start},
		{k.Toggle, k.Claim, k.Export},
		{k.Reset, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "move right"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit goal"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "shuffle"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start quest"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "mark done"),
		),
		Claim: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "claim reward"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+s", "e"),
			key.WithHelp("e", "export"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset quest"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ForMode enables only the bindings that act in the given mode, so the
// help view lists what the user can actually do.
func (k KeyMap) ForMode(mode quest.Mode, reward quest.RewardState) KeyMap {
	setup := mode == quest.ModeSetup
	k.Edit.SetEnabled(setup)
	k.Shuffle.SetEnabled(setup)
	k.Start.SetEnabled(setup)
	k.Toggle.SetEnabled(!setup)
	k.Claim.SetEnabled(!setup && reward.Claimable())
	return k
}

// EditorKeyMap defines the key bindings while editing a cell.
type EditorKeyMap struct {
	Save   key.Binding
	Icon   key.Binding
	Cancel key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Icon, k.Cancel}
}

// FullHelp returns key bindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultEditorKeyMap returns default editor key bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Icon: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next icon"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ConfirmKeyMap defines the key bindings of the confirmation dialog.
type ConfirmKeyMap struct {
	Yes key.Binding
	No  key.Binding
}

// DefaultConfirmKeyMap returns default confirmation key bindings.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "yes!"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "no"),
		),
	}
}

// FormKeyMap defines the key bindings of the setup form.
type FormKeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Left       key.Binding
	Right      key.Binding
	Suggestion key.Binding
	Submit     key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k FormKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Left, k.Suggestion, k.Submit, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k FormKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultFormKeyMap returns default form key bindings.
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left/right", "change option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
		),
		Suggestion: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "suggest reward"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next / create"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}
