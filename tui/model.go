// Package tui is a terminal front end over the same session state the web UI uses.
// It drives a state.Home with key presses and draws the grid and map panels as text.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"

	"staysearch/models"
	"staysearch/state"
)

const (
	fetchTimeout = 5 * time.Second
	mapWidth     = 40
	mapHeight    = 16
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF385C"))
	chipStyle     = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#717171"))
	chipOnStyle   = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#222222")).Underline(true)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#DDDDDD")).Padding(0, 1)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF385C"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#717171"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C13515"))
	favoriteGlyph = cursorStyle.Render("♥")
)

// listingsMsg carries a completed fetch of the loaded window
type listingsMsg struct {
	listings []models.Listing
	total    int
	err      error
}

// Model is the bubbletea model of the terminal browser
type Model struct {
	home     *state.Home
	provider models.ListingProvider
	pageSize int

	listings []models.Listing
	total    int
	cursor   int
	status   string
	err      error

	keys keyMap
	help help.Model
}

// New starts a browser over provider with a fresh session state
func New(provider models.ListingProvider, opts state.HomeOptions) Model {
	if opts.PageSize < 1 {
		opts.PageSize = 1
	}
	return Model{
		home:     state.NewHome(opts),
		provider: provider,
		pageSize: opts.PageSize,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Home exposes the session state being driven
func (m Model) Home() *state.Home {
	return m.home
}

func (m Model) Init() tea.Cmd {
	return m.fetch()
}

// fetch loads the current window of listings
func (m Model) fetch() tea.Cmd {
	provider, limit := m.provider, m.home.Grid.Loaded
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		ls, err := provider.Listings(ctx, 0, limit)
		if err != nil {
			return listingsMsg{err: serr.Wrap(err, "failed to load listings")}
		}
		total, err := provider.Count(ctx)
		if err != nil {
			return listingsMsg{err: serr.Wrap(err, "failed to count listings")}
		}
		return listingsMsg{listings: ls, total: total}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listingsMsg:
		if msg.err != nil {
			logger.LogErr(msg.err, "listing fetch failed")
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.listings, m.total = msg.listings, msg.total
		if m.cursor >= len(m.listings) {
			m.cursor = max(len(m.listings)-1, 0)
		}
		m.hoverCursor()
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Grid):
		m.home.SetViewMode(state.ViewGrid)
	case key.Matches(msg, m.keys.Map):
		m.home.SetViewMode(state.ViewMap)
	case key.Matches(msg, m.keys.Split):
		m.home.SetViewMode(state.ViewSplit)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.hoverCursor()
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.listings)-1 {
			m.cursor++
		}
		m.hoverCursor()
	case key.Matches(msg, m.keys.Click):
		l, ok := m.current()
		if !ok {
			break
		}
		if !l.HasCoordinates() {
			m.status = l.Title + " has no map location"
			break
		}
		m.home.ClickMarker(l.ID)
	case key.Matches(msg, m.keys.Favorite):
		if l, ok := m.current(); ok {
			if m.home.Grid.ToggleFavorite(l.ID) {
				m.status = "Saved " + l.Title
			} else {
				m.status = "Removed " + l.Title
			}
		}
	case key.Matches(msg, m.keys.ZoomIn):
		m.home.ZoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		m.home.ZoomOut()
	case key.Matches(msg, m.keys.LoadMore):
		if !m.home.Grid.HasMore(m.total) {
			m.status = "All listings loaded"
			break
		}
		m.home.Grid.LoadMore(m.pageSize, m.total)
		return m, m.fetch()
	case key.Matches(msg, m.keys.Filter):
		if id, ok := filterFor(msg.String()); ok {
			m.home.ToggleFilter(id)
		}
	}
	return m, nil
}

// hoverCursor keeps the map hover on the listing under the cursor
func (m *Model) hoverCursor() {
	l, ok := m.current()
	if !ok || !l.HasCoordinates() {
		m.home.Map.Leave()
		return
	}
	m.home.Map.Hover(l.ID)
}

func (m Model) current() (models.Listing, bool) {
	if m.cursor < 0 || m.cursor >= len(m.listings) {
		return models.Listing{}, false
	}
	return m.listings[m.cursor], true
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("staysearch"))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  view: %s  zoom: %d", m.home.ViewMode.Label(), m.home.Map.Zoom)))
	sb.WriteString("\n")
	sb.WriteString(m.chipsView())
	sb.WriteString("\n")

	var panels []string
	if m.home.ViewMode.ShowsGrid() {
		panels = append(panels, panelStyle.Render(m.gridView()))
	}
	if m.home.ViewMode.ShowsMap() {
		panels = append(panels, panelStyle.Render(m.mapView()))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		sb.WriteString(dimStyle.Render(m.status) + "\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) chipsView() string {
	chips := make([]string, 0, len(state.FilterChips))
	for i, chip := range state.FilterChips {
		label := chip.Label
		if i < len(filterKeys) {
			label = filterKeys[i] + ":" + label
		}
		if m.home.Filters.Contains(chip.ID) {
			chips = append(chips, chipOnStyle.Render(label))
		} else {
			chips = append(chips, chipStyle.Render(label))
		}
	}
	return strings.Join(chips, "")
}

func (m Model) gridView() string {
	if len(m.listings) == 0 {
		return dimStyle.Render("No properties found")
	}

	var sb strings.Builder
	for i, l := range m.listings {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		fav := " "
		if m.home.Grid.IsFavorite(l.ID) {
			fav = favoriteGlyph
		}
		line := fmt.Sprintf("%s%s %-30s %6s night  ★ %s", pointer, fav, l.Title, l.PriceLabel(), l.RatingLabel())
		if l.IsSuperhost {
			line += dimStyle.Render("  Superhost")
		}
		sb.WriteString(line + "\n")
		sb.WriteString(dimStyle.Render("     "+l.Location+", "+l.Dates) + "\n")
	}
	if m.home.Grid.HasMore(m.total) {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  %d of %d shown, l loads more", len(m.listings), m.total)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) mapView() string {
	center := state.CenterFor(m.listings)
	markers := state.Markers(m.listings, center)
	lines := mapCells(markers, mapWidth, mapHeight, m.home.Map, m.home.SelectedListingID)

	var sb strings.Builder
	sb.WriteString(strings.Join(lines, "\n"))

	for _, mk := range markers {
		l := mk.Listing
		if m.home.Map.TooltipVisible(l.ID) {
			sb.WriteString("\n" + l.Title + " · " + l.PriceLabel())
		}
		if m.home.Map.CardOpen(l.ID) {
			sb.WriteString("\n" + cursorStyle.Render(l.Title))
			sb.WriteString("\n" + dimStyle.Render(l.Location))
			sb.WriteString(fmt.Sprintf("\n%s night · ★ %s (%d)", l.PriceLabel(), l.RatingLabel(), l.ReviewCount))
		}
	}
	return sb.String()
}
