package listings

import (
	"github.com/rohanthewiz/element"

	"staysearch/models"
	"staysearch/state"
)

// GridID is the DOM id of the property grid region
const GridID = "property-grid"

// PropertyGrid renders listings as cards. While IsLoading it renders placeholders only,
// and when Deferred it also asks hx.js to fetch the real grid once the page has loaded.
type PropertyGrid struct {
	Listings  []models.Listing
	IsLoading bool
	Deferred  bool
	Display   state.DisplayMode
	Favorites map[string]bool
	HasMore   bool
}

func (g PropertyGrid) Render(b *element.Builder) any {
	attrs := []string{"class", "property-grid", "id", GridID}
	if g.IsLoading && g.Deferred {
		attrs = append(attrs, "hx-get", "/partials/grid", "hx-trigger", "load", "hx-swap", "outerHTML")
	}

	b.Div(attrs...).R(
		g.renderTabs(b),
		b.Wrap(func() {
			switch {
			case g.IsLoading:
				g.renderPlaceholders(b)
			case len(g.Listings) == 0:
				g.renderEmpty(b)
			default:
				g.renderCards(b)
			}
		}),
	)
	return nil
}

func (g PropertyGrid) display() state.DisplayMode {
	if g.Display == "" {
		return state.DisplayGrid
	}
	return g.Display
}

func (g PropertyGrid) renderTabs(b *element.Builder) any {
	return b.DivClass("grid-tabs", "role", "tablist").R(
		b.Wrap(func() {
			for _, mode := range []state.DisplayMode{state.DisplayGrid, state.DisplayList} {
				label := "Grid"
				if mode == state.DisplayList {
					label = "List"
				}
				b.Form(actionAttrs("/ui/grid/display/"+string(mode), "inline-form")...).R(
					b.Button("type", "submit", "role", "tab", "class", classIf("grid-tab", g.display() == mode, "active")).T(label),
				)
			}
		}),
	)
}

func (g PropertyGrid) renderPlaceholders(b *element.Builder) {
	b.DivClass("cards cards-" + string(g.display())).R(
		b.Wrap(func() {
			for i := 0; i < state.PlaceholderCount; i++ {
				b.DivClass("card-skeleton").R(
					b.DivClass("skeleton-image").R(),
					b.DivClass("skeleton-line").R(),
					b.DivClass("skeleton-line short").R(),
				)
			}
		}),
	)
}

func (g PropertyGrid) renderEmpty(b *element.Builder) {
	b.DivClass("grid-empty").R(
		b.H3("class", "empty-title").T("No properties found"),
		b.P("class", "empty-description").T("Try adjusting your search filters to find more properties."),
	)
}

func (g PropertyGrid) renderCards(b *element.Builder) {
	b.DivClass("cards cards-" + string(g.display())).R(
		b.Wrap(func() {
			for _, l := range g.Listings {
				element.RenderComponents(b, PropertyCard{
					Listing:  l,
					Favorite: g.Favorites[l.ID],
					Layout:   string(g.display()),
				})
			}
		}),
	)
	b.Wrap(func() {
		if g.HasMore {
			b.Form(actionAttrs("/ui/load-more", "load-more")...).R(
				b.ButtonClass("btn-secondary", "type", "submit").T("Load more properties"),
			)
		}
	})
}
