// Package ui renders the incremental search widget in the terminal.
package ui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vocabsearch/internal/debounce"
	"vocabsearch/internal/eventbus"
	"vocabsearch/internal/loader"
	"vocabsearch/internal/search"
	"vocabsearch/internal/ui/views"
	"vocabsearch/internal/widget"
)

// Model represents the UI state
type Model struct {
	ctx    context.Context
	source loader.Source
	logger *slog.Logger

	ctrl      *widget.Controller
	table     *Table
	input     textinput.Model
	debouncer *debounce.Debouncer
	keys      keyMap
	help      help.Model
	renderer  *views.Renderer

	width  int
	height int
}

// Options configures a Model
type Options struct {
	Source    loader.Source
	WordWidth int
	Bus       eventbus.EventBus
	Logger    *slog.Logger
	Debouncer *debounce.Debouncer
}

// NewModel creates a new UI model. The vocabulary is loaded from
// opts.Source when the program starts; ctx cancels that load on exit.
func NewModel(ctx context.Context, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	debouncer := opts.Debouncer
	if debouncer == nil {
		debouncer = debounce.New()
	}

	renderer := views.NewRenderer(views.NewStyles())
	table := NewTable(renderer)

	input := textinput.New()
	input.Prompt = "hae: "
	input.Placeholder = "säännöllinen lauseke"
	input.Cursor.SetMode(cursor.CursorStatic)

	return &Model{
		ctx:       ctx,
		source:    opts.Source,
		logger:    logger,
		ctrl:      widget.NewController(table, search.TerminalRow(opts.WordWidth), opts.Bus),
		table:     table,
		input:     input,
		debouncer: debouncer,
		keys:      newKeyMap(),
		help:      help.New(),
		renderer:  renderer,
	}
}

// Init starts the one-time vocabulary load
func (m *Model) Init() tea.Cmd {
	return m.loadVocabulary()
}

func (m *Model) loadVocabulary() tea.Cmd {
	ctx, src := m.ctx, m.source
	return func() tea.Msg {
		entries, err := loader.Load(ctx, src)
		if err != nil {
			return vocabFailedMsg{err: err}
		}
		return vocabLoadedMsg{entries: entries}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		m.table.SetSize(msg.Width, msg.Height-views.ChromeHeight)
		m.checkVisible()
		return m, nil

	case vocabLoadedMsg:
		if err := m.ctrl.Loaded(msg.entries); err != nil {
			m.logger.Warn("ignoring vocabulary", "error", err)
			return m, nil
		}
		return m, m.input.Focus()

	case vocabFailedMsg:
		m.logger.Error("failed to load vocabulary", "error", msg.err)
		m.ctrl.LoadFailed(msg.err)
		return m, nil

	case debounce.Msg:
		if !m.debouncer.Accept(msg) {
			return m, nil
		}
		// read the input now, not when the delay was scheduled
		query := m.input.Value()
		if err := m.ctrl.Search(query); err != nil {
			m.logger.Warn("search failed", "query", query, "error", err)
		}
		m.checkVisible()
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			m.logger.Error("pager failed", "error", msg.err)
		}
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.table.viewport, cmd = m.table.viewport.Update(msg)
		m.checkVisible()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.debouncer.Cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scroll), key.Matches(msg, m.keys.Page):
		var cmd tea.Cmd
		m.table.viewport, cmd = m.table.viewport.Update(msg)
		m.checkVisible()
		return m, cmd

	case key.Matches(msg, m.keys.Pager):
		if m.ctrl.Matches().Len() == 0 {
			return m, nil
		}
		return m, openPager(m.ctrl.Matches().Rows())

	case key.Matches(msg, m.keys.Help):
		return m, openPagerText(renderHelpContent(m.keys))
	}

	// read-only until the vocabulary is loaded
	if !m.ctrl.InputEnabled() {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.debouncer.Schedule())
}

// checkVisible lets the renderer page forward while its sentinel row is on
// screen
func (m *Model) checkVisible() {
	for {
		first, last := m.table.VisibleRange()
		if !m.ctrl.Visible(first, last) {
			return
		}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "ladataan…"
	}
	return m.renderer.Render(views.ViewState{
		Width:        m.width,
		Status:       m.ctrl.Status(),
		Input:        m.input.View(),
		InputEnabled: m.ctrl.InputEnabled(),
		Table:        m.table.View(),
		Help:         m.help.View(m.keys),
	})
}

// Err returns the vocabulary load error, if any. The command uses it to
// exit with a failure status after the UI closes.
func (m *Model) Err() error {
	return m.ctrl.Err()
}

// Controller returns the widget controller
func (m *Model) Controller() *widget.Controller {
	return m.ctrl
}
