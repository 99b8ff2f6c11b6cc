package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top bar: logo, search input and result count.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	logo := renderLogo(bg, styles)
	count := bg.Render(resultsLabel(len(m.searchState.Results)), styles.MutedText)
	if m.searchState.Loading {
		count = bg.Render(m.spinner.View(), styles.AccentText) + bg.Space() + count
	}

	inner := max(m.width-2, 0) // Header padding
	input := m.input
	input.Width = max(min(inner-lipgloss.Width(logo)-lipgloss.Width(count)-8, 48), 10)
	input.PromptStyle = styles.AccentText
	input.TextStyle = styles.Text
	input.PlaceholderStyle = styles.FaintText
	field := input.View()

	gap := max(inner-lipgloss.Width(logo)-lipgloss.Width(field)-lipgloss.Width(count)-2, 1)
	content := logo + bg.Spaces(2) + field + bg.Spaces(gap) + count

	return styles.Header.Width(m.width).Render(content)
}

// renderLogo draws the wordmark.
func renderLogo(bg BgStyle, styles Styles) string {
	return bg.Render("🍿", styles.Logo) + bg.Space() + bg.Render("popcorn", styles.Logo)
}

// renderFooter renders key hints for the focused pane and the last notice.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	hints := m.footerHints()
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, bg.Render(h.key, styles.AccentText)+bg.Space()+bg.Render(h.desc, styles.MutedText))
	}
	left := bg.Join(parts, "  ")

	var right string
	switch {
	case m.notice != "" && m.noticeIsError:
		right = bg.Render(m.notice, styles.DangerText)
	case m.notice != "":
		right = bg.Render(m.notice, styles.SuccessText)
	case m.snapshot.LastError != nil:
		right = bg.Render("watched list not saved", styles.DangerText)
	}

	inner := max(m.width-2, 0)
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return styles.Footer.Width(m.width).Render(left + bg.Spaces(gap) + right)
}

// footerHints lists the keys that matter in the current focus.
func (m Model) footerHints() []helpItem {
	switch {
	case m.focus == focusSearch:
		hints := []helpItem{{"enter", "confirm"}, {"esc", "results"}}
		if m.detailsOpen() {
			hints[1] = helpItem{"esc", "close movie"}
		}
		return hints
	case m.focus == focusRight && m.detailsOpen():
		if m.snapshot.IsWatched(m.snapshot.SelectedID) {
			return []helpItem{{"esc", "close"}, {"tab", "results"}, {"?", "help"}}
		}
		return []helpItem{{"1-0", "rate"}, {"h/l", "adjust"}, {"a", "add"}, {"esc", "close"}, {"?", "help"}}
	case m.focus == focusRight:
		return []helpItem{{"j/k", "move"}, {"x", "remove"}, {"tab", "results"}, {"enter", "search"}, {"?", "help"}}
	default:
		return []helpItem{{"j/k", "move"}, {"space", "open"}, {"tab", "watched"}, {"enter", "search"}, {"?", "help"}, {"q", "quit"}}
	}
}
