package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/popcorn/internal/omdb"
	"github.com/five82/popcorn/internal/watched"
)

// rightTitle returns the title of the right box, which shows either the
// open movie or the watched list.
func (m Model) rightTitle() string {
	marker := ternary(m.collapseRight, "+", "-")
	if m.detailsOpen() {
		return marker + " Details"
	}
	return fmt.Sprintf("%s Watched (%d)", marker, len(m.snapshot.Watched))
}

// renderDetails renders the open movie.
func (m Model) renderDetails(width int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	st := m.detailState

	if st.Err != nil {
		return bg.Render("⛔ "+st.Message(), styles.DangerText) + "\n\n" +
			bg.Render("esc to close", styles.FaintText)
	}
	if st.Loading || !st.Ready() {
		return bg.Render(m.spinner.View(), styles.AccentText) + bg.Space() + bg.Render("Loading...", styles.MutedText)
	}

	mv := st.Movie
	lines := []string{
		bg.Render(truncate(mv.Title, width), styles.Title),
		bg.Render(orNA(mv.Released)+" • "+orNA(mv.Runtime), styles.MutedText),
		bg.Render(orNA(mv.Genre), styles.MutedText),
		bg.Render("⭐", styles.StarText) + bg.Space() + bg.Render(orNA(mv.IMDBRating)+" IMDb rating", styles.Text),
		"",
	}
	lines = append(lines, m.renderRating(bg, styles)...)
	lines = append(lines, "")
	lines = append(lines, wrapStyled(bg, orNA(mv.Plot), width, styles.Text.Italic(true))...)
	lines = append(lines, "")
	lines = append(lines, wrapStyled(bg, "Starring "+orNA(mv.Actors), width, styles.Text)...)
	lines = append(lines, wrapStyled(bg, "Directed by "+orNA(mv.Director), width, styles.MutedText)...)
	if omdb.HasPoster(mv.Poster) {
		lines = append(lines, "", bg.Render("Poster", styles.FaintText)+bg.Space()+bg.Render(mv.Poster, styles.InfoText))
	}
	return strings.Join(lines, "\n")
}

// renderRating shows the stored rating for watched movies and the pending
// draft for everything else.
func (m Model) renderRating(bg BgStyle, styles Styles) []string {
	id := m.snapshot.SelectedID
	if entry, ok := m.snapshot.Watched.Find(id); ok {
		return []string{
			bg.Render(fmt.Sprintf("You rated this movie %d", entry.UserRating), styles.Text) +
				bg.Space() + bg.Render("⭐", styles.StarText),
		}
	}

	rating := m.draft.Rating
	line := bg.Render("Your rating", styles.MutedText) + bg.Spaces(2) +
		bg.Render(ratingBar(rating, watched.MaxRating), styles.StarText) + bg.Spaces(2) +
		bg.Render(fmt.Sprintf("%d/%d", rating, watched.MaxRating), styles.Text)

	hint := bg.Render("1-9, 0 or h/l to rate", styles.FaintText)
	if m.draft.CanConfirm() {
		hint = bg.Render("a to add to watched", styles.SuccessText)
	}
	return []string{line, hint}
}

// wrapStyled word-wraps text to width and styles each resulting line.
func wrapStyled(bg BgStyle, text string, width int, style lipgloss.Style) []string {
	if width <= 0 {
		return []string{bg.Render(text, style)}
	}
	wrapped := ansi.Wordwrap(text, width, "")
	parts := strings.Split(wrapped, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, bg.Render(strings.TrimRight(p, " "), style))
	}
	return out
}
