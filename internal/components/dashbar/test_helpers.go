package dashbar

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/dash/internal/dash"
	"github.com/renato0307/dash/internal/history"
	"github.com/renato0307/dash/internal/keyboard"
	"github.com/renato0307/dash/internal/menu"
	"github.com/renato0307/dash/internal/ui"
)

const testMenuYAML = `
menus:
  - label: _File
    items:
      - label: _New
        action: {type: builtin, name: new}
      - label: _Save
        action: {type: builtin, name: save}
      - label: Save _As
        action: {type: builtin, name: save-as}
  - label: _Edit
    items:
      - label: _Copy
        action: {type: builtin, name: copy}
      - label: _Paste
        action: {type: builtin, name: paste}
`

// testSession opens a session over the test menu. Every bound action
// appends its breadcrumb to ran.
func testSession(t *testing.T, backend history.Backend, ran *[]string) *dash.Session {
	t.Helper()

	items, err := menu.Parse([]byte(testMenuYAML))
	require.NoError(t, err)
	menu.Bind(items, func(path string, _ menu.CommandSpec) (menu.Action, error) {
		return func() error {
			*ran = append(*ran, path)
			return nil
		}, nil
	})

	return dash.Open(context.Background(), menu.Nodes(items), history.Config{Capacity: 5}, backend)
}

func tempBackend(t *testing.T) *history.FileBackend {
	t.Helper()
	return history.NewFileBackend(filepath.Join(t.TempDir(), "history.yaml"))
}

func newTestBar(t *testing.T, session *dash.Session) *DashBar {
	t.Helper()
	d := New(ui.GetTheme("charm"), keyboard.Default())
	d.Open(session)
	return d
}

func typeText(d *DashBar, text string) *DashBar {
	for _, r := range text {
		if r == ' ' {
			d, _ = d.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		d, _ = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return d
}

func press(d *DashBar, keyType tea.KeyType) (*DashBar, tea.Cmd) {
	return d.Update(tea.KeyMsg{Type: keyType})
}

// runCmd executes cmd and any batched commands, returning every message.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}
