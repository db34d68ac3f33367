package commands

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestProcessExecutor_Execute(t *testing.T) {
	skipOnWindows(t)
	e := NewProcessExecutor()

	tests := []struct {
		name    string
		argv    []string
		want    string
		wantErr string
	}{
		{
			name: "captures stdout",
			argv: []string{"sh", "-c", "echo hello"},
			want: "hello\n",
		},
		{
			name:    "non-zero exit reports stderr",
			argv:    []string{"sh", "-c", "echo broken >&2; exit 3"},
			wantErr: "sh: broken",
		},
		{
			name:    "non-zero exit without stderr",
			argv:    []string{"sh", "-c", "exit 1"},
			wantErr: "sh failed",
		},
		{
			name:    "empty argv",
			argv:    nil,
			wantErr: "no program given",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := e.Execute(tt.argv)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestProcessExecutor_Timeout(t *testing.T) {
	skipOnWindows(t)
	e := &ProcessExecutor{Timeout: 50 * time.Millisecond}

	_, err := e.Execute([]string{"sleep", "5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestLookPath(t *testing.T) {
	skipOnWindows(t)
	assert.NoError(t, LookPath([]string{"sh"}))
	assert.Error(t, LookPath([]string{"definitely-not-a-real-program-dash"}))
	assert.Error(t, LookPath(nil))
}
