// Package prefs persists popcorn's UI preferences in ~/.config/popcorn/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds the UI choices popcorn remembers between runs.
type Prefs struct {
	Theme           string `toml:"theme"`
	CollapseResults bool   `toml:"collapse_results"`
	CollapseWatched bool   `toml:"collapse_watched"`
}

const (
	defaultPrefsPath = "~/.config/popcorn/prefs.toml"

	// DefaultTheme is used when no theme was saved or the saved one is unknown.
	DefaultTheme = "Nightfox"
)

// Default returns the preferences of a first run.
func Default() Prefs {
	return Prefs{Theme: DefaultTheme}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path, or the default location when path is
// empty. A missing file is not an error. Any other problem still yields
// usable defaults; the returned error only says why they were used.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(resolved)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read prefs: %w", err)
	}

	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse prefs %s: %w", resolved, err)
	}
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = DefaultTheme
	}
	return p, nil
}

// Normalize maps Theme onto one of themes, ignoring case. An unknown theme
// becomes DefaultTheme when it is listed, else the first of themes. With no
// themes the prefs are returned unchanged.
func (p Prefs) Normalize(themes []string) Prefs {
	if len(themes) == 0 {
		return p
	}
	fallback := themes[0]
	for _, name := range themes {
		if strings.EqualFold(name, p.Theme) {
			p.Theme = name
			return p
		}
		if name == DefaultTheme {
			fallback = name
		}
	}
	p.Theme = fallback
	return p
}

// Save writes p to path, creating directories as needed. The file is
// replaced with a rename so a crash never leaves it half written.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultPrefsPath
	}
	if rest, ok := strings.CutPrefix(trimmed, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, rest)
	}
	return filepath.Abs(trimmed)
}
