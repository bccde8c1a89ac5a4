package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/goal-bingo/internal/config"
	"github.com/vovakirdan/goal-bingo/internal/export"
	"github.com/vovakirdan/goal-bingo/internal/quest"
)

// Options configures a board Model.
type Options struct {
	Engine    *quest.Engine
	Config    config.AppConfig
	ExportDir string // Empty disables export
	Rand      *rand.Rand
	Now       func() time.Time
	Width     int
	Height    int
	Theme     *Theme
}

// eventInbox collects engine events until the next Update drains them.
// It is shared by every copy of the Model.
type eventInbox struct {
	events []quest.Event
}

func (in *eventInbox) push(ev quest.Event) {
	in.events = append(in.events, ev)
}

func (in *eventInbox) drain() []quest.Event {
	out := in.events
	in.events = nil
	return out
}

// Model is the Bubble Tea model for one quest: the setup form while no
// quest exists, then the board in setup or play mode.
type Model struct {
	engine    *quest.Engine
	inbox     *eventInbox
	cfg       config.AppConfig
	exportDir string
	now       func() time.Time

	width  int
	height int
	cursor int

	form     FormModel
	editing  bool
	editor   textinput.Model
	editIcon quest.Icon

	confirm     *quest.Pending
	claimed     string // Reward text shown until the next key press
	celebration Celebration
	ticking     bool

	status    string
	statusErr bool
	showHelp  bool
	quitting  bool

	keys        KeyMap
	editorKeys  EditorKeyMap
	confirmKeys ConfirmKeyMap
	help        help.Model
	progress    progress.Model
	theme       Theme
}

// NewModel creates a board model driving opts.Engine.
func NewModel(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	inbox := &eventInbox{}
	opts.Engine.Subscribe(inbox.push)

	editor := textinput.New()
	editor.Prompt = "> "
	editor.Placeholder = "Describe a goal"
	editor.CharLimit = 80
	editor.Width = 40

	m := Model{
		engine:      opts.Engine,
		inbox:       inbox,
		cfg:         opts.Config,
		exportDir:   opts.ExportDir,
		now:         now,
		width:       opts.Width,
		height:      opts.Height,
		editor:      editor,
		celebration: NewCelebration(opts.Config.Celebration, rng),
		keys:        DefaultKeyMap(),
		editorKeys:  DefaultEditorKeyMap(),
		confirmKeys: DefaultConfirmKeyMap(),
		help:        help.New(),
		progress:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		theme:       theme,
	}
	m.form = m.newForm()
	m.resize()
	return m
}

func (m Model) newForm() FormModel {
	return NewForm(m.cfg.Quest, quest.NewDate(m.now()), m.theme)
}

// Init starts the form cursor blink when there is no quest yet.
func (m Model) Init() tea.Cmd {
	if !m.engine.Snapshot().HasQuest() {
		return m.form.Init()
	}
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case TickMsg:
		m.celebration.Step()
		if m.celebration.Active() {
			return m, tickCmd(m.celebration.TickRate())
		}
		m.ticking = false
		return m, nil
	case formSubmitMsg:
		return m.createQuest(msg.config)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	switch {
	case m.editing:
		m.editor, cmd = m.editor.Update(msg)
	case !m.engine.Snapshot().HasQuest():
		m.form, cmd = m.form.Update(msg)
	}
	return m, cmd
}

func (m *Model) resize() {
	m.help.Width = m.width
	m.progress.Width = min(max(m.width-30, 10), 50)
}

func (m Model) createQuest(cfg quest.Config) (tea.Model, tea.Cmd) {
	err := m.engine.CreateQuest(cfg)
	switch {
	case errors.Is(err, quest.ErrInvalidConfig), errors.Is(err, quest.ErrQuestExists):
		m.form.SetError(err)
		return m, nil
	case err != nil:
		m.setError(err)
	default:
		m.setStatus("Quest created. Fill in every goal, then press s to start.")
	}
	m.cursor = 0
	cmd := m.drainEvents()
	return m, cmd
}

// handleKey processes keyboard input. Overlays take the keys first.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}
	if m.claimed != "" {
		m.claimed = ""
		return m, nil
	}

	snap := m.engine.Snapshot()
	if !snap.HasQuest() {
		if key.Matches(msg, m.form.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	if m.editing {
		return m.handleEditorKey(msg)
	}
	return m.handleBoardKey(msg, snap)
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pending := *m.confirm
	switch {
	case key.Matches(msg, m.confirmKeys.Yes):
		m.confirm = nil
		if err := m.engine.Confirm(pending); err != nil {
			m.setError(err)
		} else if pending.Transition == quest.TransitionStart {
			m.setStatus("Quest started. Mark goals done with enter.")
		}
		if !m.engine.Snapshot().HasQuest() {
			m.form = m.newForm()
			m.cursor = 0
			cmd := m.drainEvents()
			return m, tea.Batch(cmd, m.form.Init())
		}
		cmd := m.drainEvents()
		return m, cmd
	case key.Matches(msg, m.confirmKeys.No):
		m.engine.Cancel(pending)
		m.confirm = nil
	}
	return m, nil
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.editorKeys.Save):
		m.editing = false
		m.editor.Blur()
		if err := m.engine.EditCell(m.cursor, m.editor.Value(), m.editIcon); err != nil {
			m.setError(err)
		}
		cmd := m.drainEvents()
		return m, cmd
	case key.Matches(msg, m.editorKeys.Icon):
		m.editIcon = m.editIcon.Next()
		return m, nil
	case key.Matches(msg, m.editorKeys.Cancel):
		m.editing = false
		m.editor.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) handleBoardKey(msg tea.KeyMsg, snap quest.Snapshot) (tea.Model, tea.Cmd) {
	keys := m.keys.ForMode(snap.Mode, snap.Reward())
	size := snap.GridSize()
	row, col := m.cursor/size, m.cursor%size

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, keys.Up):
		row = (row - 1 + size) % size
	case key.Matches(msg, keys.Down):
		row = (row + 1) % size
	case key.Matches(msg, keys.Left):
		col = (col - 1 + size) % size
	case key.Matches(msg, keys.Right):
		col = (col + 1) % size

	case key.Matches(msg, keys.Edit):
		cell := snap.Goals[m.cursor]
		m.editing = true
		m.editIcon = cell.Icon
		m.editor.SetValue(cell.Text)
		m.editor.CursorEnd()
		cmd := m.editor.Focus()
		return m, cmd
	case key.Matches(msg, keys.Shuffle):
		if err := m.engine.Shuffle(); err != nil {
			m.setError(err)
		} else {
			m.setStatus("Board shuffled.")
		}
		cmd := m.drainEvents()
		return m, cmd
	case key.Matches(msg, keys.Start):
		pending, err := m.engine.RequestStart()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.confirm = &pending
		return m, nil

	case key.Matches(msg, keys.Toggle):
		if err := m.engine.ToggleCell(m.cursor); err != nil {
			m.setError(err)
		}
		cmd := m.drainEvents()
		return m, cmd
	case key.Matches(msg, keys.Claim):
		if _, err := m.engine.ClaimReward(); err != nil {
			m.setError(err)
		}
		cmd := m.drainEvents()
		return m, cmd
	case key.Matches(msg, keys.Export):
		m.exportBoard(snap)
		return m, nil

	case key.Matches(msg, keys.Reset):
		pending, _ := m.engine.RequestReset()
		m.confirm = &pending
		return m, nil
	}

	m.cursor = row*size + col
	return m, nil
}

func (m *Model) exportBoard(snap quest.Snapshot) {
	if m.exportDir == "" {
		m.setStatus("Export is not available in this session.")
		return
	}
	path, err := export.WriteFile(m.exportDir, snap, m.now())
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus("Board exported to " + path)
}

// drainEvents reacts to engine events and starts the celebration ticker
// when a burst was triggered.
func (m *Model) drainEvents() tea.Cmd {
	for _, ev := range m.inbox.drain() {
		switch ev := ev.(type) {
		case quest.LinesIncreased:
			m.celebration.Trigger(fmt.Sprintf("BINGO! %d/%d LINES", ev.Current, quest.MaxLines(m.engine.Snapshot().GridSize())))
		case quest.RewardUnlocked:
			m.setStatus(fmt.Sprintf("Reward unlocked: %s. Press c to claim it.", ev.Reward))
		case quest.RewardClaimed:
			m.claimed = ev.Reward
			m.celebration.Trigger("ENJOY: " + ev.Reward)
		case quest.BoardChanged:
			if n := len(ev.Snapshot.Goals); m.cursor >= n {
				m.cursor = max(n-1, 0)
			}
		}
	}

	if m.celebration.Active() && !m.ticking {
		m.ticking = true
		return tickCmd(m.celebration.TickRate())
	}
	return nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = describeError(err)
	m.statusErr = true
}

// describeError turns engine errors into user-facing hints.
func describeError(err error) string {
	switch {
	case errors.Is(err, quest.ErrBoardIncomplete):
		return "Every cell needs a goal before the quest can start."
	case errors.Is(err, quest.ErrNotInSetup):
		return "The quest has already started."
	case errors.Is(err, quest.ErrNoQuest):
		return "Create a quest first."
	case errors.Is(err, quest.ErrNoPendingConfirmation):
		return "That confirmation expired. Try again."
	}
	return "Error: " + err.Error()
}

// Run runs the board UI in the alternate screen until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
