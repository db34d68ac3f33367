package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/dash/internal/menu"
)

func stubClipboard(t *testing.T, err error) *[]string {
	t.Helper()
	var copied []string
	prev := writeClipboard
	writeClipboard = func(text string) error {
		if err != nil {
			return err
		}
		copied = append(copied, text)
		return nil
	}
	t.Cleanup(func() { writeClipboard = prev })
	return &copied
}

func TestBinder_Copy(t *testing.T) {
	copied := stubClipboard(t, nil)
	b := NewBinder(NewRegistry(), NewProcessExecutor())

	action, err := b.Bind("Edit > Copy path", menu.CommandSpec{Type: TypeCopy, Text: "/tmp/notes"})
	require.NoError(t, err)
	require.NoError(t, action())
	assert.Equal(t, []string{"/tmp/notes"}, *copied)
}

func TestBinder_CopyFailure(t *testing.T) {
	stubClipboard(t, errors.New("no display"))
	b := NewBinder(NewRegistry(), NewProcessExecutor())

	action, err := b.Bind("Edit > Copy path", menu.CommandSpec{Type: TypeCopy, Text: "x"})
	require.NoError(t, err)

	err = action()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to copy to clipboard")
}

func TestBinder_Exec(t *testing.T) {
	skipOnWindows(t)
	b := NewBinder(NewRegistry(), NewProcessExecutor())

	action, err := b.Bind("Tools > True", menu.CommandSpec{Type: TypeExec, Argv: []string{"sh", "-c", "exit 0"}})
	require.NoError(t, err)
	assert.NoError(t, action())

	action, err = b.Bind("Tools > False", menu.CommandSpec{Type: TypeExec, Argv: []string{"sh", "-c", "exit 1"}})
	require.NoError(t, err)
	assert.Error(t, action())
}

func TestBinder_Builtin(t *testing.T) {
	b := NewBinder(NewRegistry(), NewProcessExecutor())

	action, err := b.Bind("File > Quit", menu.CommandSpec{Type: TypeBuiltin, Name: "quit"})
	require.NoError(t, err)
	assert.ErrorIs(t, action(), ErrQuit)
}

func TestBinder_Rejects(t *testing.T) {
	b := NewBinder(NewRegistry(), NewProcessExecutor())

	tests := []struct {
		name string
		spec menu.CommandSpec
	}{
		{"unknown type", menu.CommandSpec{Type: "teleport"}},
		{"unknown builtin", menu.CommandSpec{Type: TypeBuiltin, Name: "nope"}},
		{"exec without argv", menu.CommandSpec{Type: TypeExec}},
		{"exec with missing program", menu.CommandSpec{Type: TypeExec, Argv: []string{"definitely-not-a-real-program-dash"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := b.Bind("X > Y", tt.spec)
			assert.Error(t, err)
			assert.Nil(t, action)
		})
	}
}

func TestBinder_WithMenuBind(t *testing.T) {
	stubClipboard(t, nil)
	items, err := menu.Parse([]byte(`
menus:
  - label: _Edit
    items:
      - label: _Copy
        action: {type: copy, text: hi}
      - label: _Teleport
        action: {type: teleport}
  - label: _File
    items:
      - label: _Quit
        action: {type: builtin, name: quit}
`))
	require.NoError(t, err)

	b := NewBinder(NewRegistry(), NewProcessExecutor())
	bound := menu.Bind(items, b.Bind)

	assert.Equal(t, 2, bound)
	assert.Equal(t, []string{"Edit > Copy", "File > Quit"}, menu.Crawl(menu.Nodes(items)).Labels())
}
