package state_test

import (
	"errors"
	"testing"

	"staysearch/state"
)

func TestFavoritesPerListing(t *testing.T) {
	g := state.NewGridState(4)
	if !g.ToggleFavorite("1") {
		t.Error("expected listing 1 favorited")
	}
	if g.IsFavorite("2") {
		t.Error("favoriting 1 must not favorite 2")
	}
	if g.ToggleFavorite("1") || g.IsFavorite("1") {
		t.Error("second toggle should unfavorite")
	}
}

func TestLoadMoreWindow(t *testing.T) {
	g := state.NewGridState(4)
	if !g.HasMore(6) {
		t.Error("expected more listings beyond the first page")
	}
	if got := g.LoadMore(4, 6); got != 6 {
		t.Errorf("expected window capped at 6, got %d", got)
	}
	if g.HasMore(6) {
		t.Error("no listings should remain")
	}
}

func TestParseDisplayMode(t *testing.T) {
	if m, err := state.ParseDisplayMode("list"); err != nil || m != state.DisplayList {
		t.Errorf("got %q %v", m, err)
	}
	if _, err := state.ParseDisplayMode("table"); !errors.Is(err, state.ErrUnknownDisplayMode) {
		t.Errorf("expected ErrUnknownDisplayMode, got %v", err)
	}
}

func TestSheetPriceRange(t *testing.T) {
	s := state.NewSheetState()
	if s.PriceMin != 50 || s.PriceMax != 500 {
		t.Fatalf("unexpected defaults %+v", s)
	}
	if err := s.SetPriceRange(124, 806); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.PriceMin != 120 || s.PriceMax != 810 {
		t.Errorf("expected snapped 120..810, got %+v", s)
	}
	for _, r := range [][2]int{{-10, 100}, {100, 1010}, {600, 500}} {
		if err := s.SetPriceRange(r[0], r[1]); !errors.Is(err, state.ErrPriceRange) {
			t.Errorf("SetPriceRange(%d, %d): expected ErrPriceRange, got %v", r[0], r[1], err)
		}
	}
	s.ClearAll()
	if s != state.NewSheetState() {
		t.Errorf("clear all should restore defaults, got %+v", s)
	}
}

func TestCodecRoundTripKeepsSession(t *testing.T) {
	h := state.NewHome(state.HomeOptions{InitialFilters: []string{"boats"}, PageSize: 4})
	h.ClickMarker("3")
	h.Grid.ToggleFavorite("2")
	h.Search.SetCheckIn(day("2026-07-01"))

	data, err := state.Encode(h)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := state.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.SelectedListingID != "3" || !got.Map.CardOpen("3") || !got.Grid.IsFavorite("2") {
		t.Errorf("session lost interaction state: %+v", got)
	}
	if state.FormatDate(got.Search.CheckIn) != "2026-07-01" || !got.Search.CheckOut.IsZero() {
		t.Errorf("dates not restored: %v / %v", got.Search.CheckIn, got.Search.CheckOut)
	}
	if _, err := state.Decode([]byte{0xc1}); err == nil {
		t.Error("expected error for invalid payload")
	}
}
