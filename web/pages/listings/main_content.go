package listings

import (
	"strconv"

	"github.com/rohanthewiz/element"

	"staysearch/models"
	"staysearch/state"
)

// MainContent lays the grid and the map side by side according to the view mode.
// The desktop toolbar and the mobile floating toggle both post to /ui/view/:mode.
type MainContent struct {
	View View
}

func (mc MainContent) Render(b *element.Builder) any {
	v := mc.View
	mode := v.Home.ViewMode

	b.Div("class", "main-content", "data-view", string(mode)).R(
		b.DivClass("view-toolbar desktop-only").R(
			b.DivClass("view-toggle").R(
				b.Wrap(func() {
					for _, vm := range state.ViewModes {
						mc.renderModeButton(b, vm, vm.Label())
					}
				}),
			),
		),
		b.DivClass("panels").R(
			b.Wrap(func() {
				if mode.ShowsGrid() {
					b.Div("class", "panel panel-grid panel-"+mode.PanelWidth()).R(
						element.RenderComponents(b, mc.grid()),
					)
				}
			}),
			b.Wrap(func() {
				if mode.ShowsMap() {
					b.Div("class", "panel panel-map panel-"+mode.PanelWidth()).R(
						element.RenderComponents(b, mc.interactiveMap()),
					)
				}
			}),
		),
		b.DivClass("mobile-view-toggle mobile-only").R(
			mc.renderModeButton(b, state.ViewGrid, "▦"),
			mc.renderModeButton(b, state.ViewMap, "🗺"),
		),
	)
	return nil
}

func (mc MainContent) renderModeButton(b *element.Builder, vm state.ViewMode, label string) any {
	active := mc.View.Home.ViewMode == vm
	return b.Form(actionAttrs("/ui/view/"+string(vm), "inline-form")...).R(
		b.Button("type", "submit", "class", classIf("view-btn", active, "active"), "data-view", string(vm),
			"title", vm.Label(), "aria-pressed", strconv.FormatBool(active)).T(label),
	)
}

func (mc MainContent) grid() PropertyGrid {
	v := mc.View
	return PropertyGrid{
		Listings:  v.Listings,
		IsLoading: v.IsLoading,
		Deferred:  v.IsLoading,
		Display:   v.Home.Grid.Display,
		Favorites: v.Home.Grid.Favorites,
		HasMore:   v.Home.Grid.HasMore(v.Total),
	}
}

func (mc MainContent) interactiveMap() InteractiveMap {
	v := mc.View
	placed := models.WithCoordinates(v.Listings)
	return InteractiveMap{
		Listings:   placed,
		Center:     state.CenterFor(placed),
		Map:        v.Home.Map,
		SelectedID: v.Home.SelectedListingID,
		Favorites:  v.Home.Grid.Favorites,
	}
}
