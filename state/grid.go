package state

import "errors"

// DisplayMode is the property grid layout
type DisplayMode string

const (
	DisplayGrid DisplayMode = "grid"
	DisplayList DisplayMode = "list"
)

// PlaceholderCount is the number of skeleton cards shown while loading
const PlaceholderCount = 6

var ErrUnknownDisplayMode = errors.New("unknown display mode")

func ParseDisplayMode(s string) (DisplayMode, error) {
	switch DisplayMode(s) {
	case DisplayGrid, DisplayList:
		return DisplayMode(s), nil
	}
	return "", ErrUnknownDisplayMode
}

// GridState holds the grid layout, per-listing favorites and the load-more cursor.
// Loaded is how many listings from the provider are currently shown.
type GridState struct {
	Display   DisplayMode     `msgpack:"display" json:"display"`
	Favorites map[string]bool `msgpack:"favorites" json:"favorites"`
	Loaded    int             `msgpack:"loaded" json:"loaded"`
}

func NewGridState(pageSize int) GridState {
	if pageSize < 1 {
		pageSize = 1
	}
	return GridState{Display: DisplayGrid, Favorites: map[string]bool{}, Loaded: pageSize}
}

// ToggleFavorite flips the favorite flag of one listing and returns the new value
func (g *GridState) ToggleFavorite(id string) bool {
	if g.Favorites == nil {
		g.Favorites = map[string]bool{}
	}
	if g.Favorites[id] {
		delete(g.Favorites, id)
		return false
	}
	g.Favorites[id] = true
	return true
}

func (g GridState) IsFavorite(id string) bool {
	return g.Favorites[id]
}

// HasMore reports whether the provider holds listings beyond the loaded window
func (g GridState) HasMore(total int) bool {
	return g.Loaded < total
}

// LoadMore widens the window by pageSize, never past total. Returns the new window size.
func (g *GridState) LoadMore(pageSize, total int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	g.Loaded += pageSize
	if g.Loaded > total {
		g.Loaded = total
	}
	return g.Loaded
}
