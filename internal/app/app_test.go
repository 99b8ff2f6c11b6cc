package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/five82/popcorn/internal/config"
	"github.com/five82/popcorn/internal/storage"
	"github.com/five82/popcorn/internal/watched"
)

func openSlot(t *testing.T) (*storage.DB, *storage.WatchedSlot) {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "popcorn.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, storage.NewWatchedSlot(db)
}

func TestLoadWatched_Enabled(t *testing.T) {
	_, slot := openSlot(t)
	want := watched.List{{ID: "tt1", Title: "Alien", UserRating: 9}}
	require.NoError(t, slot.SaveWatched(want))

	got, err := loadWatched(slot, true)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadWatched_DisabledStartsEmpty(t *testing.T) {
	_, slot := openSlot(t)
	require.NoError(t, slot.SaveWatched(watched.List{{ID: "tt1"}}))

	got, err := loadWatched(slot, false)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestLoadWatched_CorruptDataFails(t *testing.T) {
	db, slot := openSlot(t)
	require.NoError(t, db.Put(storage.WatchedKey, []byte("{not json")))

	_, err := loadWatched(slot, true)
	require.Error(t, err)
	require.Contains(t, err.Error(), "load watched list")
}

func TestRun_MissingAPIKeyFailsBeforeUI(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.APIKeyEnv, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir = \""+filepath.ToSlash(home)+"/data\"\n"), 0o600))

	err := Run(context.Background(), Options{ConfigPath: path})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), config.APIKeyEnv), "error %q should name the env var", err)

	_, statErr := os.Stat(filepath.Join(home, "data"))
	require.True(t, os.IsNotExist(statErr), "nothing should be created before validation passes")
}

func TestRun_InvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("request_timeout = \"later\""), 0o600))

	err := Run(context.Background(), Options{ConfigPath: path})
	require.ErrorContains(t, err, "load config")
}
