package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"staysearch/fixtures"
	"staysearch/models"
	"staysearch/state"
)

// loaded returns a model whose first fetch has completed
func loaded(t *testing.T, pageSize int) Model {
	t.Helper()
	m := New(models.NewStaticProvider(fixtures.ExtendedListings()), state.HomeOptions{PageSize: pageSize})
	msg := m.Init()()
	next, _ := m.Update(msg)
	return next.(Model)
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestViewModeKeys(t *testing.T) {
	m := loaded(t, 6)
	tests := []struct {
		key      string
		expected state.ViewMode
	}{
		{"g", state.ViewGrid},
		{"m", state.ViewMap},
		{"s", state.ViewSplit},
	}
	for _, tt := range tests {
		m = press(m, tt.key)
		if m.Home().ViewMode != tt.expected {
			t.Errorf("key %q: expected %s, got %s", tt.key, tt.expected, m.Home().ViewMode)
		}
	}
}

func TestFilterKeys(t *testing.T) {
	m := press(loaded(t, 6), "1", "=", "3", "1")

	got := m.Home().Filters.Selected()
	expected := []string{"dining", "cabins"}
	if strings.Join(got, ",") != strings.Join(expected, ",") {
		t.Errorf("expected filters %v, got %v", expected, got)
	}
}

func TestCursorClickAndFavorite(t *testing.T) {
	m := loaded(t, 6)

	m = press(m, "j", "enter")
	if m.Home().SelectedListingID != "2" || !m.Home().Map.CardOpen("2") {
		t.Errorf("expected listing 2 selected with its card open, got %q", m.Home().SelectedListingID)
	}
	if m.Home().Map.Hovered != "2" {
		t.Errorf("expected the cursor listing hovered, got %q", m.Home().Map.Hovered)
	}

	m = press(m, "enter")
	if m.Home().Map.CardOpen("2") || m.Home().SelectedListingID != "2" {
		t.Error("second click should close the card and keep the selection")
	}

	m = press(m, "f")
	if !m.Home().Grid.IsFavorite("2") {
		t.Error("expected listing 2 to be a favorite")
	}

	// listing 5 has no coordinates
	m = press(m, "j", "j", "j", "enter")
	if m.Home().SelectedListingID != "2" {
		t.Errorf("a listing without coordinates must not be selected, got %q", m.Home().SelectedListingID)
	}
	if !strings.Contains(m.status, "no map location") {
		t.Errorf("unexpected status %q", m.status)
	}
	if m.Home().Map.Hovered != "" {
		t.Error("hover should clear on a listing without coordinates")
	}

	// cursor stops at the last listing
	m = press(m, "j", "j", "j")
	if m.cursor != 5 {
		t.Errorf("expected cursor 5, got %d", m.cursor)
	}
}

func TestZoomKeys(t *testing.T) {
	m := press(loaded(t, 6), "]", "]")
	if m.Home().Map.Zoom != state.DefaultZoom+2 {
		t.Errorf("expected zoom %d, got %d", state.DefaultZoom+2, m.Home().Map.Zoom)
	}
	for i := 0; i < 30; i++ {
		m = press(m, "[")
	}
	if m.Home().Map.Zoom != state.MinZoom {
		t.Errorf("expected zoom clamped at %d, got %d", state.MinZoom, m.Home().Map.Zoom)
	}
}

func TestLoadMore(t *testing.T) {
	m := loaded(t, 4)
	if len(m.listings) != 4 || m.total != 6 {
		t.Fatalf("expected 4 of 6 listings, got %d of %d", len(m.listings), m.total)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if cmd == nil {
		t.Fatal("expected a fetch command")
	}
	next, _ = next.(Model).Update(cmd())
	m = next.(Model)
	if len(m.listings) != 6 {
		t.Errorf("expected 6 listings after load more, got %d", len(m.listings))
	}

	m = press(m, "l")
	if m.status != "All listings loaded" {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestQuit(t *testing.T) {
	_, cmd := loaded(t, 6).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestViewPanels(t *testing.T) {
	m := loaded(t, 6)

	split := m.View()
	for _, s := range []string{"Cozy Mountain Cabin", "Charming Cottage", "Split", "Houses"} {
		if !strings.Contains(split, s) {
			t.Errorf("split view should contain %q", s)
		}
	}
	if !strings.ContainsRune(split, glyphEmpty) {
		t.Error("split view should draw the map")
	}

	grid := press(m, "g").View()
	if strings.ContainsRune(grid, glyphEmpty) {
		t.Error("grid view should not draw the map")
	}

	mapOnly := press(m, "m").View()
	if strings.Contains(mapOnly, "Charming Cottage") {
		t.Error("map view should not list listings without coordinates")
	}
}

func TestMapCells(t *testing.T) {
	ls := fixtures.Listings()
	markers := []state.Marker{
		{Listing: ls[0], Offset: state.ScreenOffset{Left: 0, Top: 0}},
		{Listing: ls[1], Offset: state.ScreenOffset{Left: 50, Top: 50}},
		{Listing: ls[2], Offset: state.ScreenOffset{Left: 99, Top: 99}},
		{Listing: ls[3], Offset: state.ScreenOffset{Left: 120, Top: 10}}, // off the map
	}
	ms := state.NewMapState(state.DefaultZoom)
	ms.Hover("3")

	lines := mapCells(markers, 10, 4, ms, "2")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(lines))
	}

	tests := []struct {
		row, col int
		expected rune
	}{
		{0, 0, glyphMarker},
		{2, 5, glyphSelected},
		{3, 9, glyphHovered},
		{1, 1, glyphEmpty},
	}
	for _, tt := range tests {
		got := []rune(lines[tt.row])[tt.col]
		if got != tt.expected {
			t.Errorf("cell (%d,%d): expected %q, got %q", tt.row, tt.col, tt.expected, got)
		}
	}

	placed := 0
	for _, line := range lines {
		placed += len([]rune(line)) - strings.Count(line, string(glyphEmpty))
	}
	if placed != 3 {
		t.Errorf("expected 3 markers drawn, got %d", placed)
	}
}
