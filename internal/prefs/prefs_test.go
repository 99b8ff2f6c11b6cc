package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != DefaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, DefaultTheme)
	}
	if p.CollapseResults || p.CollapseWatched {
		t.Fatalf("boxes should start expanded: %+v", p)
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "popcorn")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	body := "theme = \"Slate\"\ncollapse_watched = true\n"
	if err := os.WriteFile(filepath.Join(dir, "prefs.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Slate")
	}
	if !p.CollapseWatched || p.CollapseResults {
		t.Fatalf("collapse flags = %+v", p)
	}
}

func TestSave_RoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	want := Prefs{Theme: "Kanagawa", CollapseResults: true}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestLoad_BadContentFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"empty theme", "theme = \"\"\n", false},
		{"invalid toml", "not valid toml {{{\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			p, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load error = %v, wantErr %v", err, tt.wantErr)
			}
			if p != Default() {
				t.Fatalf("Load = %+v, want defaults", p)
			}
		})
	}
}

func TestNormalize_MatchesKnownThemes(t *testing.T) {
	themes := []string{"Nightfox", "Kanagawa", "Slate"}
	tests := []struct {
		saved string
		want  string
	}{
		{"Kanagawa", "Kanagawa"},
		{"kanagawa", "Kanagawa"},
		{"SLATE", "Slate"},
		{"Dracula", "Nightfox"},
		{"", "Nightfox"},
	}
	for _, tt := range tests {
		p := Prefs{Theme: tt.saved, CollapseWatched: true}.Normalize(themes)
		if p.Theme != tt.want {
			t.Fatalf("Normalize(%q).Theme = %q, want %q", tt.saved, p.Theme, tt.want)
		}
		if !p.CollapseWatched {
			t.Fatalf("Normalize dropped collapse flags: %+v", p)
		}
	}
}

func TestNormalize_FallsBackToFirstThemeWithoutDefault(t *testing.T) {
	p := Prefs{Theme: "Nightfox"}.Normalize([]string{"Slate", "Kanagawa"})
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", p.Theme)
	}
	if got := (Prefs{Theme: "Custom"}).Normalize(nil); got.Theme != "Custom" {
		t.Fatalf("no themes should leave prefs unchanged, got %q", got.Theme)
	}
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.toml")
	for _, theme := range []string{"Slate", "Kanagawa"} {
		if err := Save(path, Prefs{Theme: theme}); err != nil {
			t.Fatalf("Save(%s): %v", theme, err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "prefs.toml" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("dir entries = %v, want only prefs.toml", names)
	}
	p, _ := Load(path)
	if p.Theme != "Kanagawa" {
		t.Fatalf("Theme = %q, want last saved Kanagawa", p.Theme)
	}
}
