package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyHooks_CaseInsensitiveDispatch(t *testing.T) {
	var h keyHooks
	var calls []string
	h.bind("Escape", func(*Model) tea.Cmd { calls = append(calls, "first"); return nil })
	h.bind("ESCAPE", func(*Model) tea.Cmd { calls = append(calls, "second"); return nil })

	if _, ok := h.dispatch(&Model{}, "esc"); !ok {
		t.Fatalf("dispatch(esc) not handled")
	}
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("calls = %v, want [first second]", calls)
	}
	if _, ok := h.dispatch(&Model{}, "enter"); ok {
		t.Fatalf("dispatch(enter) handled with no enter hook")
	}
}

func TestKeyHooks_UnbindRemovesOnlyThatHook(t *testing.T) {
	var h keyHooks
	enter := h.bind("Enter", func(*Model) tea.Cmd { return nil })
	esc := h.bind("Escape", func(*Model) tea.Cmd { return nil })

	h.unbind(esc)
	if h.bound("escape") {
		t.Fatalf("escape still bound after unbind")
	}
	if !h.bound("enter") {
		t.Fatalf("enter lost after unbinding escape")
	}
	h.unbind(0)
	h.unbind(enter + esc + 10)
	if !h.bound("ENTER") {
		t.Fatalf("unknown ids must be ignored")
	}
}

func TestKeyHooks_BindDoesNotAliasCopies(t *testing.T) {
	var a keyHooks
	a.bind("enter", func(*Model) tea.Cmd { return nil })
	b := a
	b.bind("escape", func(*Model) tea.Cmd { return nil })
	a.bind("x", func(*Model) tea.Cmd { return nil })

	if !b.bound("escape") || b.bound("x") {
		t.Fatalf("copy b shares storage with a: %+v", b.hooks)
	}
}

func TestNormalizeKeyName(t *testing.T) {
	cases := map[string]string{
		"esc":     "escape",
		"Escape":  "escape",
		" Enter ": "enter",
		"Return":  "enter",
		"T":       "t",
	}
	for in, want := range cases {
		if got := normalizeKeyName(in); got != want {
			t.Fatalf("normalizeKeyName(%q) = %q, want %q", in, got, want)
		}
	}
}
