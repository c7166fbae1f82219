package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/tmux-popup-tree/internal/data/dispatcher"
	"github.com/atomicstack/tmux-popup-tree/internal/logging/events"
	"github.com/atomicstack/tmux-popup-tree/internal/state"
	"github.com/atomicstack/tmux-popup-tree/internal/theme"
	"github.com/atomicstack/tmux-popup-tree/internal/tree"
	"github.com/atomicstack/tmux-popup-tree/internal/ui/command"
	uistate "github.com/atomicstack/tmux-popup-tree/internal/ui/state"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeOutline Mode = iota
	ModeRename
	ModeConfirmDelete
	ModeFilter
)

const defaultTitle = "tree"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Store      state.TreeStore
	Dispatcher *dispatcher.Dispatcher
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Model implements the Bubble Tea model for the tree outline.
type Model struct {
	outline *uistate.Outline
	forest  tree.Forest
	store   state.TreeStore
	sub     *state.Subscription
	bus     *command.Bus
	mode    Mode

	renameForm   *renameForm
	deleteTarget *uistate.Row
	grabbed      *uistate.Row
	filterInput  textinput.Model

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the outline from the store's current snapshot.
func NewModel(opts Options) *Model {
	var forest tree.Forest
	if opts.Store != nil {
		forest = opts.Store.Snapshot()
	}
	m := &Model{
		outline:     uistate.NewOutline(forest),
		forest:      forest,
		store:       opts.Store,
		bus:         command.New(opts.Dispatcher),
		mode:        ModeOutline,
		filterInput: newFilterInput(),
		showFooter:  opts.ShowFooter,
		verbose:     opts.Verbose,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.syncViewport()
	m.registerHandlers()
	return m
}

// Init subscribes to the store so completed loads reach the view.
func (m *Model) Init() tea.Cmd {
	if m.store == nil || m.sub != nil {
		return nil
	}
	m.sub = m.store.Subscribe()
	return waitForSnapshot(m.sub)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleActiveForm(msg); handled {
		return m, cmd
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// handleActiveForm routes key presses to the open prompt. Everything else
// falls through so snapshots keep arriving while a prompt is shown.
func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch m.mode {
	case ModeRename:
		return m.handleRenameForm(key)
	case ModeConfirmDelete:
		return m.handleDeleteConfirm(key)
	case ModeFilter:
		return m.handleFilterInput(key)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(snapshotMsg{}):       m.handleSnapshotMsg,
		reflect.TypeOf(command.ResultMsg{}): m.handleResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// applyForest re-derives the rows from a snapshot and drops any pending
// prompt whose node has disappeared.
func (m *Model) applyForest(f tree.Forest) {
	if tree.Same(f, m.forest) {
		return
	}
	m.forest = f
	m.outline.Sync(f)
	m.syncViewport()
	events.UI.Snapshot(len(m.outline.Rows))

	if m.grabbed != nil && !m.exists(m.grabbed.ID) {
		events.UI.Release(m.grabbed.ID, events.ReasonGone)
		m.grabbed = nil
	}
	if m.renameForm != nil && !m.exists(m.renameForm.id) {
		events.UI.CancelRename(m.renameForm.id, events.ReasonGone)
		m.renameForm = nil
		m.mode = ModeOutline
	}
	if m.deleteTarget != nil && !m.exists(m.deleteTarget.ID) {
		events.UI.CancelDelete(m.deleteTarget.ID, events.ReasonGone)
		m.deleteTarget = nil
		m.mode = ModeOutline
	}
}

func (m *Model) refresh() {
	if m.store == nil {
		return
	}
	m.applyForest(m.store.Snapshot())
}

func (m *Model) exists(id string) bool {
	_, ok := tree.Find(m.forest, id)
	return ok
}

func (m *Model) quit() tea.Cmd {
	if m.sub != nil {
		m.sub.Close()
		m.sub = nil
	}
	return tea.Quit
}
