package app

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/popcorn/internal/config"
	"github.com/five82/popcorn/internal/details"
	"github.com/five82/popcorn/internal/omdb"
	"github.com/five82/popcorn/internal/prefs"
	"github.com/five82/popcorn/internal/search"
	"github.com/five82/popcorn/internal/state"
	"github.com/five82/popcorn/internal/storage"
	"github.com/five82/popcorn/internal/ui"
	"github.com/five82/popcorn/internal/watched"
)

// Options configure the popcorn application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/popcorn/prefs.toml
	Fresh      bool   // start with an empty watched list regardless of config
}

// Run boots the popcorn TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	logFile, err := tea.LogToFile(cfg.LogPath(), "")
	if err != nil {
		return fmt.Errorf("open activity log: %w", err)
	}
	defer logFile.Close()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Printf("prefs: %v, using defaults", err)
	}

	db, err := storage.Open(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("app: close storage: %v", err)
		}
	}()
	slot := storage.NewWatchedSlot(db)

	initial, err := loadWatched(slot, cfg.LoadWatched && !opts.Fresh)
	if err != nil {
		return err
	}

	client, err := omdb.NewClient(cfg.APIURL, cfg.APIKey, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init omdb client: %w", err)
	}

	searchCtl := search.NewController(client)
	defer searchCtl.Close()
	detailsCtl := details.NewController(client)
	defer detailsCtl.Close()

	store := state.NewStore(slot, initial)

	log.Printf("app: started with %d watched movies, storage %s", len(initial), db.Path())
	err = ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Search:    searchCtl,
		Details:   detailsCtl,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogPath(),
	})
	log.Printf("app: exiting with %d watched movies", len(store.Snapshot().Watched))
	return err
}

// loadWatched reads the persisted list when enabled. A disabled load starts
// empty, and the first add or delete then replaces whatever was stored.
func loadWatched(slot *storage.WatchedSlot, enabled bool) (watched.List, error) {
	if !enabled {
		return watched.List{}, nil
	}
	list, err := slot.LoadWatched()
	if err != nil {
		return nil, fmt.Errorf("load watched list: %w", err)
	}
	return list, nil
}
