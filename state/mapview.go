package state

import "staysearch/models"

// Map zoom bounds and default
const (
	MinZoom     = 1
	MaxZoom     = 20
	DefaultZoom = 13
)

// projectionScale converts degrees of offset from the center into percent of the map box
const projectionScale = 10.0

// DefaultCenter is used when no listing with coordinates is available to center on
var DefaultCenter = models.Coordinates{Lat: 39.0968, Lng: -120.0324}

// ScreenOffset is a marker position in percent of the map container
type ScreenOffset struct {
	Left float64
	Top  float64
}

// Project places a point relative to center with a plain linear transform.
// Latitude and longitude are treated as orthogonal Cartesian axes and the center lands at
// 50%/50%. This is not a map projection and zoom plays no part in it.
func Project(point, center models.Coordinates) ScreenOffset {
	return ScreenOffset{
		Left: (point.Lng-center.Lng)*projectionScale + 50,
		Top:  (point.Lat-center.Lat)*-projectionScale + 50,
	}
}

// CenterFor picks the first placed listing's coordinates, else DefaultCenter
func CenterFor(listings []models.Listing) models.Coordinates {
	for _, l := range listings {
		if l.Coordinates != nil {
			return *l.Coordinates
		}
	}
	return DefaultCenter
}

// Marker is one listing placed on the map
type Marker struct {
	Listing models.Listing
	Offset  ScreenOffset
}

// Markers projects every listing that has coordinates; others are skipped
func Markers(listings []models.Listing, center models.Coordinates) []Marker {
	placed := models.WithCoordinates(listings)
	markers := make([]Marker, 0, len(placed))
	for _, l := range placed {
		markers = append(markers, Marker{Listing: l, Offset: Project(*l.Coordinates, center)})
	}
	return markers
}

// MapState is the interaction state of the simulated map.
// Hover and the open detail card are independent of the session's selected listing.
type MapState struct {
	Zoom     int    `msgpack:"zoom" json:"zoom"`
	Hovered  string `msgpack:"hovered" json:"hovered"`
	OpenCard string `msgpack:"open_card" json:"open_card"`
}

// NewMapState starts at zoom, clamped into [MinZoom, MaxZoom]
func NewMapState(zoom int) MapState {
	return MapState{Zoom: clampZoom(zoom)}
}

func clampZoom(z int) int {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// ZoomIn increments the zoom up to MaxZoom; changed is false at the bound
func (m *MapState) ZoomIn() (changed bool) {
	before := m.Zoom
	m.Zoom = clampZoom(m.Zoom + 1)
	return m.Zoom != before
}

// ZoomOut decrements the zoom down to MinZoom; changed is false at the bound
func (m *MapState) ZoomOut() (changed bool) {
	before := m.Zoom
	m.Zoom = clampZoom(m.Zoom - 1)
	return m.Zoom != before
}

func (m *MapState) Hover(id string) {
	m.Hovered = id
}

func (m *MapState) Leave() {
	m.Hovered = ""
}

// ClickMarker toggles the detail card for id and always reports the click to onSelect.
// Clicking the marker whose card is open closes it; any other marker switches the card.
func (m *MapState) ClickMarker(id string, onSelect func(id string)) {
	if onSelect != nil {
		onSelect(id)
	}
	if m.OpenCard == id {
		m.OpenCard = ""
		return
	}
	m.OpenCard = id
}

// CardOpen reports whether the detail card for id is showing
func (m MapState) CardOpen(id string) bool {
	return id != "" && m.OpenCard == id
}

// TooltipVisible is true while id is hovered and its own detail card is closed
func (m MapState) TooltipVisible(id string) bool {
	return id != "" && m.Hovered == id && !m.CardOpen(id)
}

// Emphasized is true for the hovered marker and for the selected one; both can hold at once
func (m MapState) Emphasized(id, selectedID string) bool {
	return id != "" && (m.Hovered == id || selectedID == id)
}
