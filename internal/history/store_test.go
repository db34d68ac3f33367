package history

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/dash/internal/logging"
)

// memoryBackend keeps the document in memory and counts writes.
type memoryBackend struct {
	data     []byte
	readErr  error
	writeErr error
	writes   int
}

func (m *memoryBackend) Read(ctx context.Context) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	if m.data == nil {
		return nil, ErrNotFound
	}
	return m.data, nil
}

func (m *memoryBackend) Write(ctx context.Context, data []byte) error {
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data = append([]byte(nil), data...)
	return nil
}

func newStore(t *testing.T, capacity int, whitelist []string, stored string) (*Store, *memoryBackend) {
	t.Helper()
	backend := &memoryBackend{}
	if stored != "" {
		backend.data = []byte(stored)
	}
	s := New(Config{Capacity: capacity}, whitelist, backend)
	s.Load(context.Background())
	return s, backend
}

func TestStore_Load(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		whitelist []string
		stored    string
		want      []string
	}{
		{
			name:      "missing document",
			capacity:  10,
			whitelist: []string{"a"},
			stored:    "",
			want:      []string{},
		},
		{
			name:      "prunes labels outside whitelist",
			capacity:  10,
			whitelist: []string{"a", "b"},
			stored:    `{"history": ["a", "b", "z"]}`,
			want:      []string{"a", "b"},
		},
		{
			name:      "yaml document",
			capacity:  10,
			whitelist: []string{"File > Save", "Edit > Copy"},
			stored:    "history:\n- Edit > Copy\n- File > Save\n",
			want:      []string{"Edit > Copy", "File > Save"},
		},
		{
			name:      "drops duplicates keeping the first",
			capacity:  10,
			whitelist: []string{"a", "b"},
			stored:    `{"history": ["b", "a", "b"]}`,
			want:      []string{"b", "a"},
		},
		{
			name:      "truncates to capacity",
			capacity:  2,
			whitelist: []string{"a", "b", "c"},
			stored:    `{"history": ["c", "b", "a"]}`,
			want:      []string{"c", "b"},
		},
		{
			name:      "corrupt encoding",
			capacity:  10,
			whitelist: []string{"a"},
			stored:    `{"history": ["a"`,
			want:      []string{},
		},
		{
			name:      "missing history field",
			capacity:  10,
			whitelist: []string{"a"},
			stored:    `{"recent": ["a"]}`,
			want:      []string{},
		},
		{
			name:      "wrong field type",
			capacity:  10,
			whitelist: []string{"a"},
			stored:    `{"history": "a"}`,
			want:      []string{},
		},
		{
			name:      "empty whitelist",
			capacity:  10,
			whitelist: nil,
			stored:    `{"history": ["a"]}`,
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newStore(t, tt.capacity, tt.whitelist, tt.stored)
			assert.Equal(t, tt.want, s.Entries())
		})
	}
}

func TestStore_Load_UnreadableBackendIsLogged(t *testing.T) {
	var buf bytes.Buffer
	restore := logging.SetDefault(logging.New(&buf, slog.LevelDebug))
	defer restore()

	backend := &memoryBackend{readErr: errors.New("permission denied")}
	s := New(Config{Capacity: 5}, []string{"a"}, backend)
	s.Load(context.Background())

	assert.Equal(t, 0, s.Len())
	assert.Contains(t, buf.String(), "history unreadable")
	assert.Contains(t, buf.String(), "permission denied")
}

func TestStore_Load_ReplacesSessionState(t *testing.T) {
	s, backend := newStore(t, 5, []string{"a", "b"}, `{"history": ["a"]}`)
	s.Update(context.Background(), "b")
	require.Equal(t, []string{"b", "a"}, s.Entries())

	backend.data = []byte(`{"history": ["a"]}`)
	s.Load(context.Background())
	assert.Equal(t, []string{"a"}, s.Entries())
}

func TestStore_Current(t *testing.T) {
	s, _ := newStore(t, 5, []string{"a", "b"}, "")
	_, ok := s.Current()
	assert.False(t, ok)

	s, _ = newStore(t, 5, []string{"a", "b"}, `{"history": ["b", "a"]}`)
	current, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, "b", current)
	assert.Equal(t, []string{"b", "a"}, s.Entries(), "Current must not mutate")
}

func TestStore_NextPrevious(t *testing.T) {
	whitelist := []string{"a", "b", "c"}

	t.Run("next rotates left", func(t *testing.T) {
		s, _ := newStore(t, 5, whitelist, `{"history": ["a", "b", "c"]}`)

		got, ok := s.Next()
		assert.True(t, ok)
		assert.Equal(t, "b", got)
		assert.Equal(t, []string{"b", "c", "a"}, s.Entries())

		got, _ = s.Next()
		assert.Equal(t, "c", got)
		got, _ = s.Next()
		assert.Equal(t, "a", got, "wraps around")
	})

	t.Run("previous rotates right", func(t *testing.T) {
		s, _ := newStore(t, 5, whitelist, `{"history": ["a", "b", "c"]}`)

		got, ok := s.Previous()
		assert.True(t, ok)
		assert.Equal(t, "c", got)
		assert.Equal(t, []string{"c", "a", "b"}, s.Entries())
	})

	t.Run("next then previous restores order", func(t *testing.T) {
		s, _ := newStore(t, 5, whitelist, `{"history": ["a", "b", "c"]}`)
		before, _ := s.Current()

		s.Next()
		got, _ := s.Previous()
		assert.Equal(t, before, got)
		assert.Equal(t, []string{"a", "b", "c"}, s.Entries())
	})

	t.Run("previous then next restores order", func(t *testing.T) {
		s, _ := newStore(t, 5, whitelist, `{"history": ["a", "b"]}`)
		before, _ := s.Current()

		s.Previous()
		got, _ := s.Next()
		assert.Equal(t, before, got)
		assert.Equal(t, []string{"a", "b"}, s.Entries())
	})

	t.Run("single entry is a no-op", func(t *testing.T) {
		s, _ := newStore(t, 1, whitelist, `{"history": ["a"]}`)

		got, ok := s.Next()
		assert.True(t, ok)
		assert.Equal(t, "a", got)
		got, ok = s.Previous()
		assert.True(t, ok)
		assert.Equal(t, "a", got)
	})

	t.Run("empty history", func(t *testing.T) {
		s, _ := newStore(t, 5, whitelist, "")

		_, ok := s.Next()
		assert.False(t, ok)
		_, ok = s.Previous()
		assert.False(t, ok)
	})

	t.Run("navigation does not persist", func(t *testing.T) {
		s, backend := newStore(t, 5, whitelist, `{"history": ["a", "b"]}`)
		s.Next()
		s.Previous()
		assert.Equal(t, 0, backend.writes)
	})
}

func TestStore_Update(t *testing.T) {
	whitelist := []string{"a", "b", "c", "d"}

	tests := []struct {
		name    string
		stored  string
		updates []string
		want    []string
	}{
		{
			name:    "insert into empty history",
			updates: []string{"a"},
			want:    []string{"a"},
		},
		{
			name:    "promote existing entry",
			stored:  `{"history": ["a", "b", "c"]}`,
			updates: []string{"b"},
			want:    []string{"b", "a", "c"},
		},
		{
			name:    "idempotent",
			stored:  `{"history": ["a", "b", "c"]}`,
			updates: []string{"c", "c"},
			want:    []string{"c", "a", "b"},
		},
		{
			name:    "truncates to capacity",
			updates: []string{"a", "b", "c", "d"},
			want:    []string{"d", "c", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, backend := newStore(t, 3, whitelist, tt.stored)
			for _, label := range tt.updates {
				s.Update(context.Background(), label)
			}
			assert.Equal(t, tt.want, s.Entries())

			reloaded := New(Config{Capacity: 3}, whitelist, backend)
			reloaded.Load(context.Background())
			assert.Equal(t, tt.want, reloaded.Entries(), "persisted state matches memory")
		})
	}
}

func TestStore_Update_CapacityPlusOne(t *testing.T) {
	labels := []string{"l1", "l2", "l3", "l4"}
	s, _ := newStore(t, len(labels), labels, "")

	for _, label := range labels {
		s.Update(context.Background(), label)
	}
	s.Update(context.Background(), "l2")

	assert.Equal(t, len(labels), s.Len())
	assert.Equal(t, []string{"l2", "l4", "l3", "l1"}, s.Entries())
}

func TestStore_Update_RejectsUnknownLabel(t *testing.T) {
	stored := `{"history": ["a", "b"]}`
	s, backend := newStore(t, 5, []string{"a", "b"}, stored)

	s.Update(context.Background(), "q")

	assert.Equal(t, []string{"a", "b"}, s.Entries())
	assert.Equal(t, 0, backend.writes)
	assert.Equal(t, stored, string(backend.data))
}

func TestStore_Update_EmptyWhitelist(t *testing.T) {
	s, backend := newStore(t, 5, nil, "")
	s.Update(context.Background(), "a")

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, backend.writes)
}

func TestStore_Update_WriteFailureKeepsMemoryState(t *testing.T) {
	var buf bytes.Buffer
	restore := logging.SetDefault(logging.New(&buf, slog.LevelDebug))
	defer restore()

	backend := &memoryBackend{writeErr: errors.New("read-only file system")}
	s := New(Config{Capacity: 5}, []string{"a"}, backend)
	s.Load(context.Background())

	s.Update(context.Background(), "a")

	assert.Equal(t, []string{"a"}, s.Entries())
	assert.Equal(t, 1, backend.writes)
	assert.Contains(t, buf.String(), "failed to persist history")
}

func TestStore_Clear(t *testing.T) {
	s, backend := newStore(t, 5, []string{"a", "b"}, `{"history": ["a", "b"]}`)
	s.Clear(context.Background())

	assert.Equal(t, 0, s.Len())
	labels, err := decode(backend.data)
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestStore_WhitelistShrinksOnlyAtLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.yaml")
	ctx := context.Background()

	first := New(Config{Capacity: 5}, []string{"a", "b"}, NewFileBackend(path))
	first.Load(ctx)
	first.Update(ctx, "a")
	first.Update(ctx, "b")

	// A later session where "a" was renamed away.
	second := New(Config{Capacity: 5}, []string{"b"}, NewFileBackend(path))
	second.Load(ctx)
	assert.Equal(t, []string{"b"}, second.Entries())

	// The earlier session keeps its view until it reloads.
	assert.Equal(t, []string{"b", "a"}, first.Entries())
}

func TestEncode(t *testing.T) {
	data, err := encode([]string{"File > Save", "Edit > Copy"})
	require.NoError(t, err)
	assert.Equal(t, "history:\n- File > Save\n- Edit > Copy\n", string(data))

	data, err = encode([]string{})
	require.NoError(t, err)
	assert.Equal(t, "history: []\n", string(data))
}

func TestFileBackend(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.yaml")
	backend := NewFileBackend(path)

	_, err := backend.Read(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, backend.Write(ctx, []byte("history: []\n")))
	data, err := backend.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "history: []\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestFileBackend_UnwritableLocation(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	backend := NewFileBackend(filepath.Join(blocker, "history.yaml"))
	err := backend.Write(context.Background(), []byte("history: []\n"))
	assert.Error(t, err)
}

func TestNewFileBackend_DefaultPath(t *testing.T) {
	backend := NewFileBackend("")
	assert.Equal(t, DefaultPath(), backend.Path)
	assert.Equal(t, "history.yaml", filepath.Base(backend.Path))
}
