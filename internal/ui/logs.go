package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/popcorn/internal/logtail"
)

// logState holds the activity log overlay.
type logState struct {
	viewport viewport.Model
	lines    []string
	err      error
	loadedAt time.Time
}

type logLinesMsg struct {
	lines []string
	err   error
}

// readLogCmd loads the tail of the activity log.
func readLogCmd(path string) tea.Cmd {
	if strings.TrimSpace(path) == "" {
		return func() tea.Msg {
			return logLinesMsg{err: fmt.Errorf("no activity log configured")}
		}
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), LogReadTimeout)
		defer cancel()

		done := make(chan logLinesMsg, 1)
		go func() {
			lines, err := logtail.Read(path, LogTailLines)
			done <- logLinesMsg{lines: lines, err: err}
		}()

		select {
		case <-ctx.Done():
			return logLinesMsg{err: fmt.Errorf("read activity log: %w", ctx.Err())}
		case msg := <-done:
			return msg
		}
	}
}

func (m *Model) handleLogLines(msg logLinesMsg) {
	m.logs.lines = msg.lines
	m.logs.err = msg.err
	m.logs.loadedAt = time.Now()
	m.resizeLogViewport()
	m.logs.viewport.SetContent(m.renderLogContent())
	m.logs.viewport.GotoBottom()
}

// resizeLogViewport fits the viewport inside the overlay box.
func (m *Model) resizeLogViewport() {
	width := max(m.width-4, 1)
	height := max(m.height-footerHeight-2, 1)
	if m.logs.viewport.Width == 0 {
		m.logs.viewport = viewport.New(width, height)
		return
	}
	m.logs.viewport.Width = width
	m.logs.viewport.Height = height
}

// renderLogContent renders one styled line per log entry.
func (m Model) renderLogContent() string {
	bgColor := m.theme.FocusBg
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	if m.logs.err != nil {
		return bg.Render("⛔ "+m.logs.err.Error(), styles.DangerText)
	}
	if len(m.logs.lines) == 0 {
		return bg.Render("Nothing logged yet", styles.FaintText)
	}

	out := make([]string, 0, len(m.logs.lines))
	for _, line := range m.logs.lines {
		e := logtail.Parse(line)
		var parts []string
		if !e.Time.IsZero() {
			parts = append(parts, bg.Render(e.Time.Format("15:04:05"), styles.FaintText))
		}
		if e.Source != "" {
			parts = append(parts, bg.Render(padRight(e.Source, 8), styles.AccentText))
		}
		msgStyle := styles.Text
		if e.Failed {
			msgStyle = styles.DangerText
		}
		parts = append(parts, bg.Render(e.Message, msgStyle))
		out = append(out, strings.Join(parts, bg.Space()))
	}
	return strings.Join(out, "\n")
}

// renderLogs renders the overlay: the log box and a hint line.
func (m Model) renderLogs() string {
	title := fmt.Sprintf("Activity log (%d)", len(m.logs.lines))
	if !m.logs.loadedAt.IsZero() {
		title += " · " + m.logs.loadedAt.Format("15:04:05")
	}
	box := m.renderTitledBox(title, m.logs.viewport.View(), m.width, m.height-footerHeight, true)

	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	hints := []helpItem{{"j/k", "scroll"}, {"g/G", "top/bottom"}, {"r", "reload"}, {"esc", "close"}}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, bg.Render(h.key, styles.AccentText)+bg.Space()+bg.Render(h.desc, styles.MutedText))
	}
	footer := styles.Footer.Width(m.width).Render(bg.Join(parts, "  "))

	return lipgloss.JoinVertical(lipgloss.Left, box, footer)
}

// handleLogsKey processes keyboard input while the log overlay is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.Logs), key.Matches(msg, m.keys.Quit):
		m.overlay = overlayNone
	case key.Matches(msg, m.keys.Refresh):
		return m, readLogCmd(m.logPath)
	case key.Matches(msg, m.keys.Down):
		m.logs.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.logs.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Top):
		m.logs.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logs.viewport.GotoBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.logs.viewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.logs.viewport.HalfPageUp()
	}
	return m, nil
}
