// Package state holds the per-session UI state machine of the listing browser:
// view mode, listing selection, filter chips, panel flags, the search form,
// map interaction and grid preferences. Every transition is a synchronous,
// in-place update; rendering reads the resulting value.
package state

import "errors"

// ViewMode selects which panels MainContent shows
type ViewMode string

const (
	ViewGrid  ViewMode = "grid"
	ViewMap   ViewMode = "map"
	ViewSplit ViewMode = "split"
)

// DefaultViewMode is used for new sessions
const DefaultViewMode = ViewSplit

// ViewModes lists the modes in toolbar order
var ViewModes = []ViewMode{ViewGrid, ViewMap, ViewSplit}

// ErrUnknownViewMode is returned when text does not name a view mode
var ErrUnknownViewMode = errors.New("unknown view mode")

// ParseViewMode converts request text to a ViewMode
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewGrid, ViewMap, ViewSplit:
		return ViewMode(s), nil
	}
	return "", ErrUnknownViewMode
}

// ShowsGrid reports whether the property grid panel is rendered
func (v ViewMode) ShowsGrid() bool {
	return v == ViewGrid || v == ViewSplit
}

// ShowsMap reports whether the map panel is rendered
func (v ViewMode) ShowsMap() bool {
	return v == ViewMap || v == ViewSplit
}

// PanelWidth is "half" in split mode and "full" otherwise
func (v ViewMode) PanelWidth() string {
	if v == ViewSplit {
		return "half"
	}
	return "full"
}

// Label is the toolbar caption for the mode
func (v ViewMode) Label() string {
	switch v {
	case ViewGrid:
		return "Grid"
	case ViewMap:
		return "Map"
	case ViewSplit:
		return "Split"
	}
	return string(v)
}
