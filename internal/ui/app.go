package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/popcorn/internal/details"
	"github.com/five82/popcorn/internal/prefs"
	"github.com/five82/popcorn/internal/search"
	"github.com/five82/popcorn/internal/state"
	"github.com/five82/popcorn/internal/watched"
)

// focusArea is the pane receiving keyboard input.
type focusArea int

const (
	focusResults focusArea = iota
	focusSearch
	focusRight
)

// overlay is a full-screen view drawn over the main layout.
type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayLogs
)

// SearchSource runs searches for the query typed in the header.
type SearchSource interface {
	SetQuery(ctx context.Context, query string)
	State() search.State
	Changes() <-chan struct{}
}

// DetailsSource loads details for the selected movie.
type DetailsSource interface {
	Select(ctx context.Context, id string)
	Clear()
	State() details.State
	Changes() <-chan struct{}
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Search    SearchSource
	Details   DetailsSource
	Prefs     prefs.Prefs
	PrefsPath string
	LogPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	search    SearchSource
	details   DetailsSource
	keys      keyMap
	prefsPath string
	logPath   string

	// UI state
	theme         Theme
	width         int
	height        int
	ready         bool
	focus         focusArea
	overlay       overlay
	collapseLeft  bool
	collapseRight bool
	hooks         keyHooks
	escHook       int
	titleShown    string
	notice        string
	noticeIsError bool

	// Widgets
	input   textinput.Model
	spinner spinner.Model

	// Data state
	snapshot    state.Snapshot
	searchState search.State
	detailState details.State
	draft       watched.Draft
	resultRow   int
	watchedRow  int

	// Log overlay
	logs logState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		store = state.NewStore(nil, nil)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "Search movies..."
	input.Prompt = "/ "
	input.CharLimit = searchCharLimit

	userPrefs := opts.Prefs.Normalize(ThemeNames())

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:           ctx,
		store:         store,
		search:        opts.Search,
		details:       opts.Details,
		keys:          DefaultKeyMap(),
		prefsPath:     prefsPath,
		logPath:       opts.LogPath,
		theme:         GetTheme(userPrefs.Theme),
		collapseLeft:  userPrefs.CollapseResults,
		collapseRight: userPrefs.CollapseWatched,
		input:         input,
		spinner:       sp,
		snapshot:      store.Snapshot(),
	}
	m.input.SetValue(m.snapshot.Query)
	m.focusOn(focusSearch)
	m.hooks.bind("Enter", func(m *Model) tea.Cmd { return m.onEnter() })
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		m.spinner.Tick,
		tea.SetWindowTitle(defaultWindowTitle),
	}
	if m.search != nil {
		cmds = append(cmds, waitForChange(m.ctx, m.search.Changes(), searchChangedMsg{}))
	}
	if m.details != nil {
		cmds = append(cmds, waitForChange(m.ctx, m.details.Changes(), detailsChangedMsg{}))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeLogViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchChangedMsg:
		m.applySearchState()
		return m, waitForChange(m.ctx, m.search.Changes(), searchChangedMsg{})

	case detailsChangedMsg:
		cmd := m.applyDetailsState()
		return m, tea.Batch(cmd, waitForChange(m.ctx, m.details.Changes(), detailsChangedMsg{}))

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.overlay {
	case overlayHelp:
		return m.renderHelp()
	case overlayLogs:
		return m.renderLogs()
	}

	return m.renderMain()
}

// handleKey routes a key press: overlays first, then bound key hooks, then
// the search input, then global keys, then the focused pane.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayHelp:
		m.overlay = overlayNone
		return m, nil
	case overlayLogs:
		return m.handleLogsKey(msg)
	}

	if cmd, ok := m.hooks.dispatch(&m, msg.String()); ok {
		return m, cmd
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.overlay = overlayLogs
		m.resizeLogViewport()
		return m, readLogCmd(m.logPath)

	case key.Matches(msg, m.keys.SwitchPane):
		if m.focus == focusRight {
			m.focusOn(focusResults)
		} else {
			m.focusOn(focusRight)
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleLeft):
		m.collapseLeft = !m.collapseLeft
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleRight):
		m.collapseRight = !m.collapseRight
		m.savePrefs()
		return m, nil
	}

	if m.focus == focusRight {
		if m.detailsOpen() {
			return m.handleDetailsKey(msg)
		}
		return m.handleWatchedKey(msg)
	}
	return m.handleResultsKey(msg)
}

// handleSearchKey feeds keys to the search input and starts a search
// whenever the text changes.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyTab, tea.KeyShiftTab, tea.KeyDown:
		m.focusOn(focusResults)
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.setQuery(value)
	}
	return m, cmd
}

// onEnter is the global enter hook. From anywhere else it focuses the search
// input and clears the query; inside the input it confirms the query.
func (m *Model) onEnter() tea.Cmd {
	if m.focus == focusSearch {
		m.focusOn(focusResults)
		return nil
	}
	m.focusOn(focusSearch)
	m.input.SetValue("")
	m.setQuery("")
	return textinput.Blink
}

func (m *Model) focusOn(f focusArea) {
	m.focus = f
	if f == focusSearch {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) setQuery(query string) {
	m.store.SetQuery(query)
	m.snapshot = m.store.Snapshot()
	m.resultRow = 0
	if m.search != nil {
		m.search.SetQuery(m.ctx, query)
		m.searchState = m.search.State()
	}
}

// handleResultsKey processes keyboard input for the results box.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	results := m.searchState.Results
	if len(results) == 0 || m.collapseLeft || m.searchState.Loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.resultRow < len(results)-1 {
			m.resultRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.resultRow > 0 {
			m.resultRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.resultRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.resultRow = len(results) - 1
	case key.Matches(msg, m.keys.Select):
		return m, m.toggleMovie(results[m.resultRow].ID)
	}
	return m, nil
}

// toggleMovie opens id, or closes it when it is already open.
func (m *Model) toggleMovie(id string) tea.Cmd {
	selected := m.store.Select(id)
	m.snapshot = m.store.Snapshot()
	if selected == "" {
		return m.closeDetails()
	}
	m.openDetails(selected)
	return nil
}

func (m *Model) openDetails(id string) {
	m.draft = watched.NewDraft(id)
	if m.details != nil {
		m.details.Select(m.ctx, id)
		m.detailState = m.details.State()
	}
	if m.escHook == 0 {
		m.escHook = m.hooks.bind("Escape", func(m *Model) tea.Cmd { return m.closeDetails() })
	}
	m.focusOn(focusRight)
}

// closeDetails unmounts the details view: it drops the selection, cancels
// the fetch, releases the esc hook and restores the window title.
func (m *Model) closeDetails() tea.Cmd {
	m.store.CloseSelection()
	m.snapshot = m.store.Snapshot()
	if m.details != nil {
		m.details.Clear()
	}
	m.detailState = details.State{}
	m.draft = watched.Draft{}
	m.hooks.unbind(m.escHook)
	m.escHook = 0
	if m.focus == focusRight {
		m.focusOn(focusResults)
	}
	if m.titleShown == "" {
		return nil
	}
	m.titleShown = ""
	return tea.SetWindowTitle(defaultWindowTitle)
}

func (m Model) detailsOpen() bool {
	return m.snapshot.HasSelection()
}

// handleDetailsKey processes rating and add keys while a movie is open.
func (m Model) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.collapseRight || m.snapshot.IsWatched(m.snapshot.SelectedID) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.RateUp):
		m.draft.Adjust(1)
	case key.Matches(msg, m.keys.RateDown):
		m.draft.Adjust(-1)
	case key.Matches(msg, m.keys.Add):
		return m, m.addWatched()
	default:
		if n, ok := digitRating(msg); ok {
			m.draft.SetRating(n)
		}
	}
	return m, nil
}

// digitRating maps 1-9 to themselves and 0 to ten.
func digitRating(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '0' || r > '9' {
		return 0, false
	}
	if r == '0' {
		return watched.MaxRating, true
	}
	return int(r - '0'), true
}

// addWatched saves the open movie with the pending rating and closes it.
func (m *Model) addWatched() tea.Cmd {
	st := m.detailState
	if !st.Ready() || st.ID != m.snapshot.SelectedID || !m.draft.CanConfirm() {
		return nil
	}
	if m.snapshot.IsWatched(st.ID) {
		return nil
	}

	entry := watched.NewEntry(st.Movie, m.draft)
	err := m.store.AddWatched(entry)
	m.snapshot = m.store.Snapshot()
	if err != nil {
		log.Printf("watched: save after adding %s failed: %v", entry.ID, err)
		m.setNotice(fmt.Sprintf("Added %s, but saving failed: %v", entry.Title, err), true)
	} else {
		log.Printf("watched: added %s %q rated %d after %d decisions", entry.ID, entry.Title, entry.UserRating, entry.RatingDecisions)
		m.setNotice("Added "+entry.Title, false)
	}
	return m.closeDetails()
}

// handleWatchedKey processes keyboard input for the watched list.
func (m Model) handleWatchedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.snapshot.Watched
	if len(list) == 0 || m.collapseRight {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.watchedRow < len(list)-1 {
			m.watchedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.watchedRow > 0 {
			m.watchedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.watchedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.watchedRow = len(list) - 1
	case key.Matches(msg, m.keys.Delete):
		m.deleteWatched(m.watchedRow)
	}
	return m, nil
}

func (m *Model) deleteWatched(index int) {
	if index < 0 || index >= len(m.snapshot.Watched) {
		return
	}
	removed := m.snapshot.Watched[index]
	err := m.store.DeleteWatched(index)
	m.snapshot = m.store.Snapshot()
	if n := len(m.snapshot.Watched); m.watchedRow >= n {
		m.watchedRow = max(n-1, 0)
	}
	if err != nil {
		log.Printf("watched: save after removing %s failed: %v", removed.ID, err)
		m.setNotice(fmt.Sprintf("Removed %s, but saving failed: %v", removed.Title, err), true)
		return
	}
	log.Printf("watched: removed %s %q", removed.ID, removed.Title)
	m.setNotice("Removed "+removed.Title, false)
}

// applySearchState pulls the controller's state after a change signal.
func (m *Model) applySearchState() {
	prev := m.searchState
	st := m.search.State()
	m.searchState = st

	if prev.Loading && !st.Loading && prev.Query == st.Query {
		if st.Err != nil {
			log.Printf("search: %q: %v", st.Query, st.Err)
		} else {
			log.Printf("search: %q returned %d results", st.Query, len(st.Results))
		}
	}
	if m.resultRow >= len(st.Results) {
		m.resultRow = max(len(st.Results)-1, 0)
	}
}

// applyDetailsState pulls the controller's state and retitles the window
// once the open movie has loaded.
func (m *Model) applyDetailsState() tea.Cmd {
	prev := m.detailState
	st := m.details.State()
	if st.ID != m.snapshot.SelectedID {
		return nil
	}
	m.detailState = st

	if st.Err != nil && prev.Loading {
		log.Printf("details: %s: %v", st.ID, st.Err)
	}
	if st.Ready() && m.titleShown != st.ID {
		m.titleShown = st.ID
		log.Printf("details: opened %s %q", st.ID, st.Movie.Title)
		return tea.SetWindowTitle("Movie | " + st.Movie.Title)
	}
	return nil
}

func (m *Model) setNotice(text string, isError bool) {
	m.notice = text
	m.noticeIsError = isError
}

func (m *Model) savePrefs() {
	p := prefs.Prefs{
		Theme:           m.theme.Name,
		CollapseResults: m.collapseLeft,
		CollapseWatched: m.collapseRight,
	}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("prefs: %v", err)
		m.setNotice("Could not save preferences", true)
	}
}

// renderMain renders header, both boxes and the footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderContent lays the results box and the right box side by side.
func (m Model) renderContent() string {
	contentHeight := max(m.height-headerHeight-footerHeight, 3)

	var leftWidth int
	switch {
	case m.width >= LayoutExtraWideWidth:
		leftWidth = m.width * 30 / 100
	case m.width >= LayoutCompactWidth:
		leftWidth = m.width * 40 / 100
	default:
		leftWidth = m.width / 2
	}
	rightWidth := m.width - leftWidth

	leftFocused := m.focus == focusResults
	rightFocused := m.focus == focusRight

	var left string
	if m.collapseLeft {
		left = m.renderTitledBox(m.resultsTitle(), m.collapsedHint("["), leftWidth, contentHeight, leftFocused)
	} else {
		bg := ternary(leftFocused, m.theme.FocusBg, m.theme.SurfaceAlt)
		left = m.renderTitledBox(m.resultsTitle(), m.renderResults(leftWidth-2, contentHeight-2, bg), leftWidth, contentHeight, leftFocused)
	}

	var right string
	title := m.rightTitle()
	if m.collapseRight {
		right = m.renderTitledBox(title, m.collapsedHint("]"), rightWidth, contentHeight, rightFocused)
	} else {
		bg := ternary(rightFocused, m.theme.FocusBg, m.theme.SurfaceAlt)
		var body string
		if m.detailsOpen() {
			body = m.renderDetails(rightWidth-4, bg)
		} else {
			body = m.renderWatched(rightWidth-4, contentHeight-2, bg)
		}
		right = m.renderTitledBox(title, body, rightWidth, contentHeight, rightFocused)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) collapsedHint(k string) string {
	return m.theme.Styles().FaintText.Render("collapsed, press " + k + " to expand")
}

// Messages

type searchChangedMsg struct{}

type detailsChangedMsg struct{}

// Commands

// waitForChange delivers msg once ch is signalled. It gives up when ctx ends.
func waitForChange(ctx context.Context, ch <-chan struct{}, msg tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-ch:
			return msg
		}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	if err != nil && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
