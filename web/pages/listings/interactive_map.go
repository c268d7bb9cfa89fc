package listings

import (
	"fmt"
	"strconv"

	"github.com/rohanthewiz/element"

	"staysearch/models"
	"staysearch/state"
)

const mapGridCells = 8 * 8

// InteractiveMap is the simulated map: a grid backdrop with price markers placed by state.Project.
// Listings without coordinates are left off.
type InteractiveMap struct {
	Listings   []models.Listing
	Center     models.Coordinates
	Map        state.MapState
	SelectedID string
	Favorites  map[string]bool
}

func (m InteractiveMap) Render(b *element.Builder) any {
	markers := state.Markers(m.Listings, m.Center)

	b.Div("class", "interactive-map", "id", "interactive-map", "data-zoom", strconv.Itoa(m.Map.Zoom)).R(
		b.DivClass("map-canvas").R(
			b.DivClass("map-grid").R(
				b.Wrap(func() {
					for i := 0; i < mapGridCells; i++ {
						b.DivClass("map-cell").R()
					}
				}),
			),
			b.Wrap(func() {
				for _, mk := range markers {
					m.renderMarker(b, mk)
				}
			}),
		),
		b.DivClass("map-zoom-controls").R(
			b.Form(actionAttrs("/ui/map/zoom/in", "inline-form")...).R(
				b.ButtonClass("btn-map", "type", "submit", "title", "Zoom in").T("+"),
			),
			b.Form(actionAttrs("/ui/map/zoom/out", "inline-form")...).R(
				b.ButtonClass("btn-map", "type", "submit", "title", "Zoom out").T("−"),
			),
		),
		b.DivClass("map-location").R(
			b.ButtonClass("btn-map btn-location", "type", "button").R(
				b.SpanClass("pin").T("📍"),
				b.Span().T("Current location"),
			),
		),
		b.DivClass("map-attribution").T("Map data © Example Map Provider"),
	)
	return nil
}

// markerStyle positions a marker in percent of the canvas
func markerStyle(off state.ScreenOffset) string {
	return fmt.Sprintf("left:%.2f%%;top:%.2f%%", off.Left, off.Top)
}

func (m InteractiveMap) renderMarker(b *element.Builder, mk state.Marker) {
	l := mk.Listing
	id := idPath(l.ID)

	class := "map-marker"
	if m.Map.Emphasized(l.ID, m.SelectedID) {
		class += " emphasized"
	}
	if m.SelectedID == l.ID {
		class += " selected"
	}

	// Only the transition that can happen next is wired, so a re-render under the pointer
	// does not fire another hover.
	attrs := []string{"class", class, "style", markerStyle(mk.Offset), "data-listing-id", esc(l.ID),
		"hx-target", "#" + HomeTarget, "hx-swap", "outerHTML"}
	if m.Map.Hovered == l.ID {
		attrs = append(attrs, "hx-post", "/ui/map/hover/clear", "hx-trigger", "mouseleave")
	} else {
		attrs = append(attrs, "hx-post", "/ui/map/markers/"+id+"/hover", "hx-trigger", "mouseenter")
	}

	b.Div(attrs...).R(
		b.Form(actionAttrs("/ui/map/markers/"+id+"/click", "inline-form")...).R(
			b.ButtonClass("marker-pill", "type", "submit").T(l.PriceLabel()),
		),
		b.Wrap(func() {
			if m.Map.TooltipVisible(l.ID) {
				b.Div("class", "marker-tooltip", "role", "tooltip").R(
					b.DivClass("tooltip-title").T(esc(l.Title)),
					b.DivClass("tooltip-location").T(esc(l.Location)),
					b.DivClass("tooltip-price").R(
						b.SpanClass("price").T(l.PriceLabel()),
						b.SpanClass("price-unit").T(" night"),
					),
				)
			}
		}),
		b.Wrap(func() {
			if m.Map.CardOpen(l.ID) {
				b.DivClass("marker-popup").R(
					element.RenderComponents(b, PropertyCard{Listing: l, Favorite: m.Favorites[l.ID], Layout: "popup"}),
				)
			}
		}),
	)
}
