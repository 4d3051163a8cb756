package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/backoffice/internal/kv"
)

func openMem(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	s, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDriverFor(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"file:backoffice.db", "sqlite"},
		{":memory:", "sqlite"},
		{"libsql://db-org.turso.io?authToken=x", "libsql"},
		{"wss://db-org.turso.io", "libsql"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, DriverFor(tt.dsn), tt.dsn)
	}
}

func TestGetMissing(t *testing.T) {
	s := openMem(t)
	_, err := s.Get(context.Background(), "projects")
	require.True(t, errors.Is(err, kv.ErrNotFound), "got %v", err)
}

func TestSetOverwritesAndDeletes(t *testing.T) {
	ctx := context.Background()
	s := openMem(t)

	require.NoError(t, s.Set(ctx, "custom_ads", []byte(`[{"id":1}]`)))
	require.NoError(t, s.Set(ctx, "custom_ads", []byte(`[{"id":2}]`)))

	got, err := s.Get(ctx, "custom_ads")
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":2}]`, string(got))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"custom_ads"}, keys)

	require.NoError(t, s.Delete(ctx, "custom_ads"))
	_, err = s.Get(ctx, "custom_ads")
	require.ErrorIs(t, err, kv.ErrNotFound)
}

func TestFileDatabasePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	s, err := Open(ctx, "file:"+path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "token", []byte("abc")))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, "file:"+path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))
}

func TestPing(t *testing.T) {
	require.NoError(t, openMem(t).Ping(context.Background()))
}
