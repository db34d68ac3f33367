package history

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisBackend(t *testing.T, opts ...RedisOption) (*RedisBackend, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedisBackendFromClient(client, opts...)
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func TestRedisBackend_ReadMissing(t *testing.T) {
	r, _ := newRedisBackend(t)

	_, err := r.Read(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisBackend_RoundTrip(t *testing.T) {
	r, mr := newRedisBackend(t, WithKey("team:history"))
	ctx := context.Background()

	require.NoError(t, r.Write(ctx, []byte("history:\n- File > Save\n")))

	stored, err := mr.Get("team:history")
	require.NoError(t, err)
	assert.Equal(t, "history:\n- File > Save\n", stored)

	data, err := r.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "history:\n- File > Save\n", string(data))
}

func TestRedisBackend_DefaultKey(t *testing.T) {
	r, _ := newRedisBackend(t, WithKey(""))
	assert.Equal(t, DefaultRedisKey, r.Key())
}

func TestRedisBackend_Unavailable(t *testing.T) {
	r, mr := newRedisBackend(t)
	mr.Close()

	_, err := r.Read(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestStore_WithRedisBackend(t *testing.T) {
	r, _ := newRedisBackend(t)
	ctx := context.Background()
	whitelist := []string{"File > Save", "Edit > Copy"}

	s := New(Config{Capacity: 5}, whitelist, r)
	s.Load(ctx)
	s.Update(ctx, "File > Save")
	s.Update(ctx, "Edit > Copy")

	other := New(Config{Capacity: 5}, whitelist, r)
	other.Load(ctx)
	assert.Equal(t, []string{"Edit > Copy", "File > Save"}, other.Entries())
}

func TestStore_RedisUnavailableStartsEmpty(t *testing.T) {
	r, mr := newRedisBackend(t)
	mr.Close()

	s := New(Config{Capacity: 5}, []string{"a"}, r)
	s.Load(context.Background())
	assert.Equal(t, 0, s.Len())

	s.Update(context.Background(), "a")
	assert.Equal(t, []string{"a"}, s.Entries())
}
