package state

import (
	"github.com/rohanthewiz/logger"
)

// HomeOptions are the initial values a new session starts with
type HomeOptions struct {
	InitialView           ViewMode
	InitialFilters        []string
	ShowFilterSidebar     bool
	InitialSearchLocation string
	PageSize              int
}

// Home is the single owner of a session's UI state. Both view-mode toggles,
// every filter control and the map read and write this value.
type Home struct {
	ViewMode          ViewMode   `msgpack:"view_mode" json:"view_mode"`
	SelectedListingID string     `msgpack:"selected_listing_id" json:"selected_listing_id"`
	SearchLocation    string     `msgpack:"search_location" json:"search_location"`
	Filters           FilterSet  `msgpack:"filters" json:"filters"`
	SidebarOpen       bool       `msgpack:"sidebar_open" json:"sidebar_open"`
	SheetOpen         bool       `msgpack:"sheet_open" json:"sheet_open"`
	Search            SearchForm `msgpack:"search" json:"search"`
	Map               MapState   `msgpack:"map" json:"map"`
	Grid              GridState  `msgpack:"grid" json:"grid"`
	Sheet             SheetState `msgpack:"sheet" json:"sheet"`
}

func NewHome(opts HomeOptions) *Home {
	view := opts.InitialView
	if view == "" {
		view = DefaultViewMode
	}
	h := &Home{
		ViewMode:       view,
		SearchLocation: opts.InitialSearchLocation,
		Filters:        NewFilterSet(opts.InitialFilters...),
		SidebarOpen:    opts.ShowFilterSidebar,
		Search:         NewSearchForm(),
		Map:            NewMapState(DefaultZoom),
		Grid:           NewGridState(opts.PageSize),
		Sheet:          NewSheetState(),
	}
	h.Search.Location = opts.InitialSearchLocation
	return h
}

// SetViewMode replaces the view mode
func (h *Home) SetViewMode(mode ViewMode) {
	h.ViewMode = mode
}

// SelectListing records the listing whose marker was clicked.
// Selecting the already selected id keeps it selected.
func (h *Home) SelectListing(id string) {
	h.SelectedListingID = id
}

// ToggleFilter flips one chip and returns whether it is now selected
func (h *Home) ToggleFilter(id string) bool {
	return h.Filters.Toggle(id)
}

func (h *Home) ToggleSidebar() {
	h.SidebarOpen = !h.SidebarOpen
}

func (h *Home) SetSidebarOpen(open bool) {
	h.SidebarOpen = open
}

func (h *Home) SetSheetOpen(open bool) {
	h.SheetOpen = open
}

// OnSearch is the coordinator's SearchHandler
func (h *Home) OnSearch(p SearchParams) {
	h.SearchLocation = p.Location
	logger.Info("Search submitted", "location", p.Location, "check_in", formatOptionalDate(p.CheckIn),
		"check_out", formatOptionalDate(p.CheckOut), "guests", p.Guests)
}

// SubmitSearch submits the current search form to the coordinator
func (h *Home) SubmitSearch() SearchParams {
	return h.Search.Submit(h.OnSearch)
}

// ClickMarker toggles the marker's card and selects its listing
func (h *Home) ClickMarker(id string) {
	h.Map.ClickMarker(id, h.SelectListing)
}

// ZoomIn and ZoomOut log only when the level actually changed
func (h *Home) ZoomIn() bool {
	if !h.Map.ZoomIn() {
		return false
	}
	logger.Debug("Map zoom changed", "zoom", h.Map.Zoom)
	return true
}

func (h *Home) ZoomOut() bool {
	if !h.Map.ZoomOut() {
		return false
	}
	logger.Debug("Map zoom changed", "zoom", h.Map.Zoom)
	return true
}
