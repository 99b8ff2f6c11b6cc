package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// hookAction runs against the live model when its key is pressed.
type hookAction func(m *Model) tea.Cmd

type keyHook struct {
	id     int
	key    string
	action hookAction
}

// keyHooks binds named keys to actions for as long as the view that bound
// them stays open. Key names compare case-insensitively, so "Escape",
// "escape" and "ESCAPE" are the same hook key.
type keyHooks struct {
	next  int
	hooks []keyHook
}

// bind registers action for key and returns the id used to unbind it.
func (h *keyHooks) bind(name string, action hookAction) int {
	h.next++
	hooks := make([]keyHook, len(h.hooks), len(h.hooks)+1)
	copy(hooks, h.hooks)
	h.hooks = append(hooks, keyHook{id: h.next, key: normalizeKeyName(name), action: action})
	return h.next
}

// unbind removes the hook with id. Unknown ids are ignored.
func (h *keyHooks) unbind(id int) {
	if id == 0 {
		return
	}
	hooks := make([]keyHook, 0, len(h.hooks))
	for _, hook := range h.hooks {
		if hook.id != id {
			hooks = append(hooks, hook)
		}
	}
	h.hooks = hooks
}

// bound reports whether any hook listens for name.
func (h keyHooks) bound(name string) bool {
	name = normalizeKeyName(name)
	for _, hook := range h.hooks {
		if hook.key == name {
			return true
		}
	}
	return false
}

// dispatch runs every hook bound to name in bind order.
func (h keyHooks) dispatch(m *Model, name string) (tea.Cmd, bool) {
	name = normalizeKeyName(name)
	var cmds []tea.Cmd
	handled := false
	for _, hook := range h.hooks {
		if hook.key != name {
			continue
		}
		handled = true
		if cmd := hook.action(m); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if !handled {
		return nil, false
	}
	return tea.Batch(cmds...), true
}

// normalizeKeyName maps Bubble Tea key strings and DOM-style names onto one
// lowercase vocabulary.
func normalizeKeyName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "esc":
		return "escape"
	case "return":
		return "enter"
	}
	return name
}
