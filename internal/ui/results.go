package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/popcorn/internal/search"
)

// resultsTitle returns the results box title.
func (m Model) resultsTitle() string {
	marker := ternary(m.collapseLeft, "+", "-")
	if n := len(m.searchState.Results); n > 0 {
		return fmt.Sprintf("%s Results (%d)", marker, n)
	}
	return marker + " Results"
}

// renderResults renders the search outcome: a spinner, an error, a hint, or
// one row per movie.
func (m Model) renderResults(width, height int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	st := m.searchState

	switch {
	case st.Loading:
		return bg.Render(m.spinner.View(), styles.AccentText) + bg.Space() + bg.Render("Loading...", styles.MutedText)
	case st.Err != nil:
		return bg.Render("⛔ "+st.Message(), styles.DangerText)
	case len(st.Results) == 0:
		q := strings.TrimSpace(m.input.Value())
		if len([]rune(q)) < search.MinQueryLength {
			return bg.Render(fmt.Sprintf("Type at least %d characters to search", search.MinQueryLength), styles.FaintText)
		}
		return bg.Render("No results yet", styles.FaintText)
	}

	start, end := visibleWindow(len(st.Results), m.resultRow, height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		movie := st.Results[i]
		selected := i == m.resultRow && m.focus == focusResults
		lines = append(lines, m.formatResultRow(movie.ID, movieLabel(movie.Title, movie.Year), width, bgColor, selected))
	}
	return strings.Join(lines, "\n")
}

// formatResultRow formats one result: "▶ ✓ Title (Year)". The arrow marks
// the open movie and the check marks movies already watched.
func (m Model) formatResultRow(id, label string, width int, bgColor string, selected bool) string {
	open := ternary(id == m.snapshot.SelectedID, "▶", " ")
	seen := ternary(m.snapshot.IsWatched(id), "✓", " ")
	text := truncate(label, max(width-4, 1))

	if selected {
		selStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.SelectionText)).
			Background(lipgloss.Color(m.theme.SelectionBg))
		return selStyle.Width(width).Render(open + " " + seen + " " + text)
	}

	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	return bg.FillLine(
		bg.Render(open, styles.AccentText)+bg.Space()+
			bg.Render(seen, styles.SuccessText)+bg.Space()+
			bg.Render(text, styles.Text),
		width)
}

// visibleWindow returns the slice of n rows that keeps cursor on screen.
func visibleWindow(n, cursor, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	return start, min(start+height, n)
}

// renderTitledBox renders content in a box with the title embedded in the top border:
// ┌─── Title ───┐
// Focused boxes use the focus border and background.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	bgColor := lipgloss.Color(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-2, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(bgColor)
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	paddedLines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = ansi.Truncate(contentLines[i], innerWidth, "")
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
