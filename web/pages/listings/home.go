package listings

import (
	"time"

	"github.com/rohanthewiz/element"

	"staysearch/models"
	"staysearch/state"
)

// View is everything one render of the home region needs
type View struct {
	Home        *state.Home
	Listings    []models.Listing // the loaded window, in provider order
	Total       int              // listings available from the provider
	IsLoading   bool
	Now         time.Time
	SearchError string
	UserName    string
}

// Home is the #home region: header, search, filters, results and the filter panels.
// Every /ui/* action re-renders and swaps this region.
type Home struct {
	View View
}

func (h Home) Render(b *element.Builder) any {
	v := h.View
	b.Div("id", HomeTarget, "class", "home").R(
		element.RenderComponents(b,
			Header{UserName: v.UserName},
			SearchBar{Form: v.Home.Search, Now: v.Now, Error: v.SearchError},
			FilterBar{Selected: v.Home.Filters, SidebarOpen: v.Home.SidebarOpen},
			LocationBanner{Location: v.Home.SearchLocation},
			MainContent{View: v},
			FilterSidebar{Open: v.Home.SidebarOpen},
			MobileFilterSheet{Open: v.Home.SheetOpen, Sheet: v.Home.Sheet},
		),
	)
	return nil
}

// LocationBanner shows the last searched location; nothing renders for an empty one
type LocationBanner struct {
	Location string
}

func (l LocationBanner) Render(b *element.Builder) any {
	if l.Location == "" {
		return nil
	}
	b.DivClass("location-banner").R(
		b.SpanClass("pin").T("📍"),
		b.Span().R(
			b.T("Showing results for: "),
			b.SpanClass("location-name").T(esc(l.Location)),
		),
	)
	return nil
}

// RenderHome renders just the #home region, for hx swaps
func RenderHome(v View) string {
	b := element.NewBuilder()
	element.RenderComponents(b, Home{View: v})
	return b.String()
}

// RenderGrid renders just the property grid region
func RenderGrid(v View) string {
	b := element.NewBuilder()
	element.RenderComponents(b, MainContent{View: v}.grid())
	return b.String()
}
