package listings_test

import (
	"strings"
	"testing"
	"time"

	"github.com/rohanthewiz/element"

	"staysearch/fixtures"
	"staysearch/models"
	"staysearch/state"
	"staysearch/web/pages/listings"
)

func render(c element.Component) string {
	b := element.NewBuilder()
	element.RenderComponents(b, c)
	return b.String()
}

func testView(h *state.Home, ls []models.Listing) listings.View {
	return listings.View{
		Home:     h,
		Listings: ls,
		Total:    len(ls),
		Now:      time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC),
	}
}

// TestMapSkipsListingsWithoutCoordinates verifies only placed listings become markers
func TestMapSkipsListingsWithoutCoordinates(t *testing.T) {
	ls := fixtures.ExtendedListings()
	html := render(listings.InteractiveMap{Listings: ls, Center: state.CenterFor(ls), Map: state.NewMapState(13)})

	if got := strings.Count(html, `class="map-marker`); got != 4 {
		t.Errorf("expected 4 markers, got %d", got)
	}
	for _, id := range []string{"5", "6"} {
		if strings.Contains(html, `data-listing-id="`+id+`"`) {
			t.Errorf("listing %s has no coordinates and should not be on the map", id)
		}
	}
}

func TestMapMarkerPositions(t *testing.T) {
	ls := fixtures.Listings()
	ls = append(ls, models.Listing{
		ID: "east", Title: "East", Price: 100,
		Coordinates: &models.Coordinates{Lat: 39.0968, Lng: -120.0124},
	})
	html := render(listings.InteractiveMap{Listings: ls, Center: state.CenterFor(ls), Map: state.NewMapState(13)})

	if !strings.Contains(html, "left:50.00%;top:50.00%") {
		t.Error("listing at the center should render at 50%/50%")
	}
	if !strings.Contains(html, "left:50.20%;top:50.00%") {
		t.Error("listing 0.02 east of center should render at 50.2% horizontal")
	}
}

func TestMapChrome(t *testing.T) {
	html := render(listings.InteractiveMap{Map: state.NewMapState(13), Center: state.DefaultCenter})

	expected := []string{
		"Current location",
		"Map data © Example Map Provider",
		"/ui/map/zoom/in",
		"/ui/map/zoom/out",
		`data-zoom="13"`,
	}
	for _, s := range expected {
		if !strings.Contains(html, s) {
			t.Errorf("map should contain %q", s)
		}
	}
	if got := strings.Count(html, `class="map-cell"`); got != 64 {
		t.Errorf("expected 64 backdrop cells, got %d", got)
	}
	if strings.Contains(html, `class="map-marker`) {
		t.Error("empty listing set should render no markers")
	}
}

func TestMapTooltipAndPopup(t *testing.T) {
	ls := fixtures.Listings()
	ms := state.NewMapState(13)
	ms.Hover("2")

	html := render(listings.InteractiveMap{Listings: ls, Center: state.CenterFor(ls), Map: ms})
	if !strings.Contains(html, "marker-tooltip") || !strings.Contains(html, "Malibu, California") {
		t.Error("hovered marker should show its tooltip")
	}
	if !strings.Contains(html, "/ui/map/hover/clear") {
		t.Error("hovered marker should wire the leave action")
	}

	ms.ClickMarker("2", nil)
	html = render(listings.InteractiveMap{Listings: ls, Center: state.CenterFor(ls), Map: ms, SelectedID: "2"})
	if strings.Contains(html, "marker-tooltip") {
		t.Error("tooltip should hide while the card for the same marker is open")
	}
	if !strings.Contains(html, "marker-popup") || !strings.Contains(html, "card-popup") {
		t.Error("clicked marker should show the property card popup")
	}
	if !strings.Contains(html, "map-marker emphasized selected") {
		t.Error("selected marker should be emphasized")
	}

	ms.ClickMarker("2", nil)
	html = render(listings.InteractiveMap{Listings: ls, Center: state.CenterFor(ls), Map: ms, SelectedID: "2"})
	if strings.Contains(html, "marker-popup") {
		t.Error("second click should close the popup")
	}
}

func TestGridLoadingShowsPlaceholdersOnly(t *testing.T) {
	html := render(listings.PropertyGrid{Listings: fixtures.Listings(), IsLoading: true})

	if got := strings.Count(html, `class="card-skeleton"`); got != 6 {
		t.Errorf("expected 6 placeholders, got %d", got)
	}
	if strings.Contains(html, "property-card") {
		t.Error("loading grid should render no cards")
	}
	if strings.Contains(html, "hx-get") {
		t.Error("only a deferred grid fetches itself")
	}

	html = render(listings.PropertyGrid{IsLoading: true, Deferred: true})
	if !strings.Contains(html, `hx-get="/partials/grid"`) {
		t.Error("deferred grid should load from /partials/grid")
	}
}

func TestGridEmptyState(t *testing.T) {
	html := render(listings.PropertyGrid{})
	if !strings.Contains(html, "Try adjusting your search filters to find more properties.") {
		t.Error("empty grid should render the empty-state message")
	}
	if strings.Contains(html, "Load more properties") {
		t.Error("empty grid should not offer load more")
	}
}

func TestGridLoadMoreAndDisplay(t *testing.T) {
	html := render(listings.PropertyGrid{Listings: fixtures.Listings(), HasMore: true, Display: state.DisplayList})

	if got := strings.Count(html, "property-card card-list"); got != 4 {
		t.Errorf("expected 4 list cards, got %d", got)
	}
	if !strings.Contains(html, "Load more properties") || !strings.Contains(html, "/ui/load-more") {
		t.Error("grid with more listings should offer load more")
	}

	html = render(listings.PropertyGrid{Listings: fixtures.Listings()})
	if strings.Contains(html, "Load more properties") {
		t.Error("load more should be hidden when nothing remains")
	}
}

func TestPropertyCard(t *testing.T) {
	l := fixtures.Listings()[0]
	html := render(listings.PropertyCard{Listing: l, Favorite: true})

	expected := []string{
		"Cozy Mountain Cabin - image 1",
		"Cozy Mountain Cabin - image 3",
		"Superhost",
		"4.92",
		"$189",
		" night",
		"Nov 12-17",
		"/ui/favorites/1/toggle",
		`aria-pressed="true"`,
	}
	for _, s := range expected {
		if !strings.Contains(html, s) {
			t.Errorf("card should contain %q", s)
		}
	}

	l.Images = nil
	l.IsSuperhost = false
	html = render(listings.PropertyCard{Listing: l})
	if strings.Contains(html, "<img") {
		t.Error("card without images should render an empty frame")
	}
	if strings.Contains(html, "badge-superhost") {
		t.Error("badge should only render for superhosts")
	}
}

func TestPropertyCardEscapesText(t *testing.T) {
	l := models.Listing{ID: "x", Title: `<script>alert(1)</script>`, Location: "A & B"}
	html := render(listings.PropertyCard{Listing: l})

	if strings.Contains(html, "<script>alert") {
		t.Error("title must be escaped")
	}
	if !strings.Contains(html, "A &amp; B") {
		t.Error("location must be escaped")
	}
}

func TestSearchBarGuestsAndDates(t *testing.T) {
	form := state.NewSearchForm()
	form.SetCheckIn(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	html := render(listings.SearchBar{Form: form, Now: time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)})

	if got := strings.Count(html, "<option"); got != 10 {
		t.Errorf("expected 10 guest options, got %d", got)
	}
	for _, s := range []string{"1 Guest", "2 Guests", "10 Guests", `min="2026-06-01"`, `value="2026-06-01"`} {
		if !strings.Contains(html, s) {
			t.Errorf("search bar should contain %q", s)
		}
	}
	if strings.Contains(html, "1 Guests") {
		t.Error("singular label expected for one guest")
	}
}

func TestFilterBarMarksSelectedChips(t *testing.T) {
	html := render(listings.FilterBar{Selected: state.NewFilterSet("cabins", "boats")})

	if got := strings.Count(html, "filter-chip active"); got != 2 {
		t.Errorf("expected 2 active chips, got %d", got)
	}
	if got := strings.Count(html, `class="filter-chip"`) + strings.Count(html, `class="filter-chip active"`); got != len(state.FilterChips) {
		t.Errorf("expected %d chips, got %d", len(state.FilterChips), got)
	}
	if !strings.Contains(html, "/ui/filters/cabins/toggle") || !strings.Contains(html, `class="filter-count">2`) {
		t.Error("chip actions and count badge should render")
	}
}

func TestPanels(t *testing.T) {
	html := render(listings.FilterSidebar{Open: true})
	for _, s := range []string{"filter-sidebar open", "Instant Book", "EV charger", "Guesthouse", "Show results", "Clear all"} {
		if !strings.Contains(html, s) {
			t.Errorf("sidebar should contain %q", s)
		}
	}

	sheet := state.NewSheetState()
	html = render(listings.MobileFilterSheet{Sheet: sheet})
	if strings.Contains(html, "sheet-backdrop open") {
		t.Error("closed sheet should not carry the open class")
	}
	for _, s := range []string{"$50", "$500", "amenity-ac", "property-cabin", "/ui/sheet/clear", "/ui/sheet/close"} {
		if !strings.Contains(html, s) {
			t.Errorf("sheet should contain %q", s)
		}
	}
}

func TestMainContentViewModes(t *testing.T) {
	tests := []struct {
		mode     state.ViewMode
		grid     bool
		mapPanel bool
		width    string
	}{
		{state.ViewGrid, true, false, "panel-full"},
		{state.ViewMap, false, true, "panel-full"},
		{state.ViewSplit, true, true, "panel-half"},
	}
	for _, tt := range tests {
		h := state.NewHome(state.HomeOptions{InitialView: tt.mode, PageSize: 4})
		html := render(listings.MainContent{View: testView(h, fixtures.Listings())})

		if strings.Contains(html, "panel-grid") != tt.grid {
			t.Errorf("%s: grid panel presence should be %v", tt.mode, tt.grid)
		}
		if strings.Contains(html, "interactive-map") != tt.mapPanel {
			t.Errorf("%s: map panel presence should be %v", tt.mode, tt.mapPanel)
		}
		if !strings.Contains(html, tt.width) {
			t.Errorf("%s: expected %s", tt.mode, tt.width)
		}
		if !strings.Contains(html, `view-btn active" data-view="`+string(tt.mode)+`"`) {
			t.Errorf("%s: toolbar should mark the active mode", tt.mode)
		}
	}
}

func TestHomeRegion(t *testing.T) {
	h := state.NewHome(state.HomeOptions{InitialSearchLocation: "Lake Tahoe", PageSize: 4})
	html := listings.RenderHome(testView(h, fixtures.Listings()))

	expected := []string{
		`id="home"`,
		"airbnb",
		"Anywhere",
		"Become a Host",
		"Showing results for: ",
		"Lake Tahoe",
		"filter-bar",
		"interactive-map",
		"filter-sidebar",
		"mobile-filter-sheet",
	}
	for _, s := range expected {
		if !strings.Contains(html, s) {
			t.Errorf("home should contain %q", s)
		}
	}

	h.SearchLocation = ""
	html = listings.RenderHome(testView(h, fixtures.Listings()))
	if strings.Contains(html, "Showing results for") {
		t.Error("banner should be hidden without a search location")
	}
}

func TestPageDocument(t *testing.T) {
	h := state.NewHome(state.HomeOptions{PageSize: 4})
	html := listings.NewPage(testView(h, fixtures.Listings())).Render()

	for _, s := range []string{"<html", "/static/js/hx.js", "/static/css/app.css", "/static/js/app.js", "StaySearch"} {
		if !strings.Contains(html, s) {
			t.Errorf("page should contain %q", s)
		}
	}
}

func TestHeaderGuestInitial(t *testing.T) {
	if html := render(listings.Header{}); !strings.Contains(html, `title="Guest">G<`) {
		t.Error("logged-out header should show the guest initial")
	}
	if html := render(listings.Header{UserName: "maria"}); !strings.Contains(html, ">M<") {
		t.Error("header should show the user's initial")
	}
}
