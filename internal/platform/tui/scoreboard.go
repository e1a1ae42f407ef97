package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuigames/blastgrid/internal/registry"
	"github.com/tuigames/blastgrid/internal/storage"
)

// Records screen layout constants
const (
	maxScoreRows = 100 // Max score rows to load per mode
	maxMatchRows = 50  // Max online matches to load
	maxTabWidth  = 12  // Truncate long page titles in the tab bar
)

// matchPageID marks the page backed by match_results instead of scores.
const matchPageID = "matches"

// recordsPage is one tab of the records screen: a per-mode score table
// or the online match history.
type recordsPage struct {
	id    string
	title string
}

// ScoreboardKeyMap defines the key bindings for the records screen.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPage, k.PrevPage, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev page"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the records screen. It pages
// through one score table per registered mode and the online match history.
type ScoreboardModel struct {
	pages     []recordsPage
	cursor    int
	store     *storage.Store
	table     table.Model
	rowCount  int
	stats     *storage.GameStats // mode pages only
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new records model. The match history page is
// always present; it reads the results the match server writes on disconnect.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	var pages []recordsPage
	for _, g := range registry.List() {
		pages = append(pages, recordsPage{id: g.ID, title: g.Title})
	}
	pages = append(pages, recordsPage{id: matchPageID, title: "Online Matches"})

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		pages:  pages,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.loadPage()
	return m
}

// loadPage rebuilds the table for the page under the cursor.
func (m *ScoreboardModel) loadPage() {
	p := m.pages[m.cursor]
	m.stats = nil

	if p.id == matchPageID {
		m.table = m.newTable(matchColumns(m.width))
		m.setMatchRows()
		return
	}
	m.table = m.newTable(scoreColumns())
	m.setScoreRows(p.id)
}

func scoreColumns() []table.Column {
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "When", Width: 18},
	}
}

func matchColumns(width int) []table.Column {
	players := 24
	if width < 70 {
		players = 15
	}
	return []table.Column{
		{Title: "Players", Width: players},
		{Title: "Cleared", Width: 9},
		{Title: "Length", Width: 7},
		{Title: "Ended", Width: 11},
		{Title: "When", Width: 13},
	}
}

func (m *ScoreboardModel) newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-9), // Room for title, tabs, footer, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// setScoreRows fills the table with top scores for one mode and loads the
// aggregate footer stats.
func (m *ScoreboardModel) setScoreRows(gameID string) {
	m.rowCount = 0
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}

	scores, err := m.store.TopScores(gameID, maxScoreRows)
	if err != nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.rowCount = len(rows)
	m.table.SetRows(rows)
	m.table.GotoTop()

	if stats, err := m.store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		m.stats = stats
	}
}

// setMatchRows fills the table with the most recent online matches.
func (m *ScoreboardModel) setMatchRows() {
	m.rowCount = 0
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}

	matches, err := m.store.RecentMatches(maxMatchRows)
	if err != nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, len(matches))
	for i, r := range matches {
		rows[i] = table.Row{
			matchPlayers(r),
			fmt.Sprintf("%d / %d", r.Removed1, r.Removed2),
			formatMatchLength(r.DurationSecs),
			r.EndReason,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.rowCount = len(rows)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// matchPlayers renders "p1 vs p2", trimming the address noise the match
// server uses as participant ids.
func matchPlayers(r storage.MatchResult) string {
	return shortPlayer(r.Player1) + " vs " + shortPlayer(r.Player2)
}

func shortPlayer(id string) string {
	if len(id) > 10 {
		return id[:9] + "."
	}
	return id
}

func formatMatchLength(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the records model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPage):
			m.cursor = (m.cursor + 1) % len(m.pages)
			m.loadPage()
			return m, nil

		case key.Matches(msg, m.keys.PrevPage):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.pages) - 1
			}
			m.loadPage()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.loadPage()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records screen.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("RECORDS", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	if footer := m.renderFooter(); footer != "" {
		b.WriteString("\n")
		footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		b.WriteString(footerStyle.Render(centerText(footer, m.width)))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders one tab per page with the current page highlighted.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.pages))
	for i, p := range m.pages {
		name := p.title
		if len(name) > maxTabWidth {
			name = name[:maxTabWidth-1] + "."
		}
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if len(line) > m.width-4 {
		// Too narrow for all tabs, show just the current page.
		line = fmt.Sprintf("< %s >", m.pages[m.cursor].title)
	}
	return line
}

// renderTableContent renders the table or an empty-page message.
func (m ScoreboardModel) renderTableContent() string {
	if m.rowCount == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.pages[m.cursor].id == matchPageID {
			return emptyStyle.Render("No online matches recorded yet.\nRun matchd and play a versus round!")
		}
		return emptyStyle.Render("No scores recorded yet.\nDetonate a few rows to set one!")
	}

	return m.table.View()
}

// renderFooter renders the aggregate stats line under a mode page.
func (m ScoreboardModel) renderFooter() string {
	if m.stats == nil {
		return ""
	}
	return fmt.Sprintf("best %d | %d games | avg %.1f",
		m.stats.HighScore, m.stats.GamesCount, m.stats.AvgScore)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the records screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
