// Package testutil drives the dash TUI with fake input for end-to-end tests.
package testutil

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/dash/internal/components"
	"github.com/renato0307/dash/internal/components/dashbar"
	"github.com/renato0307/dash/internal/types"
)

// settle is how long the program gets to process each message.
const settle = 50 * time.Millisecond

// DashProgram runs a model in a tea.Program and exposes the dialog
// gestures a user performs: open, search, run, dismiss.
type DashProgram struct {
	program *tea.Program
	output  *syncBuffer
	t       *testing.T
}

// syncBuffer guards the renderer's writes against concurrent reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Start runs model in the background at the given terminal size. The
// program is stopped when the test ends.
func Start(t *testing.T, model tea.Model, width, height int) *DashProgram {
	t.Helper()

	output := &syncBuffer{}
	p := tea.NewProgram(model,
		tea.WithInput(nil), // every gesture is sent as a message
		tea.WithOutput(output),
	)

	dp := &DashProgram{program: p, output: output, t: t}
	go func() {
		if _, err := p.Run(); err != nil {
			t.Logf("program error: %v", err)
		}
	}()
	t.Cleanup(p.Quit)

	time.Sleep(settle)
	dp.Send(tea.WindowSizeMsg{Width: width, Height: height})
	return dp
}

// Send delivers msg and waits for it to be processed.
func (dp *DashProgram) Send(msg tea.Msg) {
	dp.program.Send(msg)
	time.Sleep(settle)
}

// Press sends a single key.
func (dp *DashProgram) Press(key tea.KeyType) {
	dp.Send(tea.KeyMsg{Type: key})
}

// Type sends text one rune at a time. Spaces arrive as KeySpace, the way
// a terminal reports them.
func (dp *DashProgram) Type(text string) {
	for _, r := range text {
		if r == ' ' {
			dp.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{r}})
			continue
		}
		dp.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// OpenDash presses the dash hotkey (alt+x).
func (dp *DashProgram) OpenDash() {
	dp.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
}

// Search types query into the open dialog.
func (dp *DashProgram) Search(query string) {
	dp.Type(query)
}

// Run types label and confirms it.
func (dp *DashProgram) Run(label string) {
	dp.Type(label)
	dp.Press(tea.KeyEnter)
}

// Dismiss closes the dialog without running anything.
func (dp *DashProgram) Dismiss() {
	dp.Press(tea.KeyEsc)
}

// Output returns everything rendered so far.
func (dp *DashProgram) Output() string {
	return dp.output.String()
}

// WaitFor polls the output until needle shows up or timeout passes.
func (dp *DashProgram) WaitFor(needle string, timeout time.Duration) bool {
	dp.t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(dp.Output(), needle) {
			return true
		}
		time.Sleep(settle)
	}
	return false
}

// WaitForDialog waits until the empty search input is on screen.
func (dp *DashProgram) WaitForDialog(timeout time.Duration) bool {
	dp.t.Helper()
	return dp.WaitFor(dashbar.Placeholder, timeout)
}

// WaitForStatus waits for a status message of msgType containing text.
func (dp *DashProgram) WaitForStatus(msgType types.MessageType, text string, timeout time.Duration) bool {
	dp.t.Helper()
	return dp.WaitFor(components.StatusPrefix(msgType)+text, timeout)
}

// AssertNotShown fails the test if text was ever rendered.
func (dp *DashProgram) AssertNotShown(text string) {
	dp.t.Helper()
	if out := dp.Output(); strings.Contains(out, text) {
		dp.t.Errorf("output should not contain %q\nGot:\n%s", text, out)
	}
}
