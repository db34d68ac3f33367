package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/dash/internal/components"
	"github.com/renato0307/dash/internal/components/dashbar"
	"github.com/renato0307/dash/internal/dash"
	"github.com/renato0307/dash/internal/history"
	"github.com/renato0307/dash/internal/keyboard"
	"github.com/renato0307/dash/internal/logging"
	"github.com/renato0307/dash/internal/menu"
	"github.com/renato0307/dash/internal/messages"
	"github.com/renato0307/dash/internal/types"
	"github.com/renato0307/dash/internal/ui"
)

// MenuLoader returns the host menu with actions bound. It is called every
// time the dialog opens so the crawl reflects the current menu.
type MenuLoader func() ([]*menu.Item, error)

// Options configures the demo host.
type Options struct {
	AppName    string
	MenuSource string // Shown in the header
	Load       MenuLoader
	History    history.Config
	Backend    history.Backend
	Theme      *ui.Theme
	Keys       *keyboard.Keys
}

// AppState holds the terminal size.
type AppState struct {
	Width  int
	Height int
}

// Model is the root Bubble Tea model: the menu outline, a status line and
// the dash dialog.
type Model struct {
	state     AppState
	header    *components.Header
	layout    *components.Layout
	statusBar *components.StatusBar
	tree      *components.MenuTree
	dashBar   *dashbar.DashBar
	opts      Options
}

func NewModel(opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = ui.ThemeCharm()
	}
	if opts.Keys == nil {
		opts.Keys = keyboard.Default()
	}
	if opts.AppName == "" {
		opts.AppName = "dash"
	}
	if opts.Backend == nil {
		opts.Backend = history.NewFileBackend("")
	}
	if opts.History.Capacity == 0 {
		opts.History.Capacity = history.DefaultCapacity
	}

	header := components.NewHeader(opts.AppName, opts.Theme)
	header.SetMenuSource(opts.MenuSource)
	header.SetWidth(80)

	statusBar := components.NewStatusBar(opts.Theme)
	statusBar.SetWidth(80)

	tree := components.NewMenuTree(nil, opts.Theme)
	tree.SetWidth(80)

	dashBar := dashbar.New(opts.Theme, opts.Keys)
	dashBar.SetWidth(80)

	m := Model{
		state:     AppState{Width: 80, Height: 24},
		header:    header,
		layout:    components.NewLayout(80, 24),
		statusBar: statusBar,
		tree:      tree,
		dashBar:   dashBar,
		opts:      opts,
	}

	// The outline is filled on start; load errors surface again on open.
	if items, err := m.loadMenu(); err == nil {
		m.tree.SetItems(items)
		m.header.SetEntryCount(menu.Crawl(menu.Nodes(items)).Len())
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.layout.SetSize(msg.Width, msg.Height)
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.tree.SetWidth(msg.Width)
		m.dashBar.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.opts.Keys.Quit) {
			return m, tea.Quit
		}

		if m.dashBar.IsActive() {
			var cmd tea.Cmd
			m.dashBar, cmd = m.dashBar.Update(msg)
			return m, cmd
		}

		if key.Matches(msg, m.opts.Keys.OpenDash, m.opts.Keys.DashKey) {
			return m.openDash()
		}
		return m, nil

	case types.OpenDashMsg:
		return m.openDash()

	case types.DashClosedMsg:
		if msg.Label == "" {
			logging.Debug("dash dismissed")
		}
		return m, nil

	case types.ActionDoneMsg:
		if msg.Err != nil {
			logging.Warn("menu action failed", "label", msg.Label, "error", msg.Err)
		}
		return m, messages.ActionResult(msg)

	case types.StatusMsg:
		id := m.statusBar.SetMessage(msg.Message, msg.Type)
		return m, tea.Tick(components.StatusBarDisplayDuration, func(time.Time) tea.Msg {
			return types.ClearStatusMsg{MessageID: id}
		})

	case types.ClearStatusMsg:
		m.statusBar.ClearMessage(msg.MessageID)
		return m, nil
	}

	return m, nil
}

// openDash crawls a freshly loaded menu and shows the dialog.
func (m Model) openDash() (tea.Model, tea.Cmd) {
	items, err := m.loadMenu()
	if err != nil {
		return m, messages.ErrorCmd("Failed to load menu: %v", err)
	}
	m.tree.SetItems(items)

	session := dash.Open(context.Background(), menu.Nodes(items), m.opts.History, m.opts.Backend)
	m.header.SetEntryCount(session.Entries().Len())

	if session.Entries().Len() == 0 {
		return m, messages.InfoCmd("No actions available")
	}
	m.dashBar.Open(session)
	return m, nil
}

func (m Model) loadMenu() ([]*menu.Item, error) {
	if m.opts.Load == nil {
		return nil, nil
	}
	items, err := m.opts.Load()
	if err != nil {
		logging.Error("failed to load menu", "error", err)
		return nil, err
	}
	return items, nil
}

func (m Model) View() string {
	bottom := m.dashBar.View()
	if bottom == "" {
		bottom = m.viewHints()
	}

	return m.layout.Render(
		m.header.View(),
		m.tree.View(),
		m.statusBar.View(),
		bottom,
	)
}

// viewHints renders the key hints shown while the dialog is hidden.
func (m Model) viewHints() string {
	keys := m.opts.Keys
	text := keys.OpenDash.Help().Key + " or " + keys.DashKey.Help().Key + " search actions  " +
		keys.Quit.Help().Key + " " + keys.Quit.Help().Desc

	return lipgloss.NewStyle().
		Foreground(m.opts.Theme.Subtle).
		Width(m.state.Width).
		Padding(0, 1).
		Render(text)
}
