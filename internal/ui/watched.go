package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/popcorn/internal/watched"
)

// renderWatched renders the summary and the watched list.
func (m Model) renderWatched(width, height int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	list := m.snapshot.Watched
	stats := watched.Summarize(list)

	lines := []string{
		bg.Render("MOVIES YOU WATCHED", styles.Title),
		bg.Join([]string{
			bg.Render(fmt.Sprintf("# %d movies", stats.Count), styles.Text),
			bg.Render("⭐ "+formatAverage(stats.AvgIMDBRating), styles.StarText),
			bg.Render("🌟 "+formatAverage(stats.AvgUserRating), styles.WarningText),
			bg.Render("⏳ "+formatRuntime(stats.AvgRuntime), styles.InfoText),
		}, "   "),
		"",
	}

	if len(list) == 0 {
		lines = append(lines, bg.Render("Rate a movie and press a to add it here", styles.FaintText))
		return strings.Join(lines, "\n")
	}

	start, end := visibleWindow(len(list), m.watchedRow, height-len(lines))
	for i := start; i < end; i++ {
		selected := i == m.watchedRow && m.focus == focusRight
		lines = append(lines, m.formatWatchedRow(list[i], width, bgColor, selected))
	}
	return strings.Join(lines, "\n")
}

// formatWatchedRow formats "Title (Year)   ⭐ 8.8  🌟 9  ⏳ 148 min".
func (m Model) formatWatchedRow(e watched.Entry, width int, bgColor string, selected bool) string {
	stats := fmt.Sprintf("⭐ %.1f  🌟 %d  ⏳ %s", e.IMDBRating, e.UserRating, formatRuntime(float64(e.Runtime)))
	labelWidth := max(width-lipgloss.Width(stats)-2, 8)
	label := padRight(truncate(movieLabel(e.Title, e.Year), labelWidth), labelWidth)

	if selected {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.SelectionText)).
			Background(lipgloss.Color(m.theme.SelectionBg)).
			Width(width).
			Render(label + "  " + stats)
	}

	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	return bg.FillLine(bg.Render(label, styles.Text)+bg.Spaces(2)+bg.Render(stats, styles.MutedText), width)
}
