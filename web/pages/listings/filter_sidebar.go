package listings

import (
	"strconv"
	"strings"

	"github.com/rohanthewiz/element"
)

// Sidebar price slider
const (
	sidebarPriceMax    = 500
	sidebarPriceStep   = 10
	sidebarDefaultLow  = 50
	sidebarDefaultHigh = 250
)

var sidebarPropertyTypes = []string{"House", "Apartment", "Guesthouse", "Hotel", "Cabin"}

var sidebarAmenities = []string{
	"Wifi", "Kitchen", "Washer", "Dryer", "Air conditioning", "Heating",
	"Dedicated workspace", "TV", "Pool", "Hot tub", "Free parking", "EV charger",
}

var sidebarBookingOptions = []string{"Instant Book", "Self check-in", "Free cancellation"}

// FilterSidebar is the desktop filter panel. Its selectors are presentational;
// only opening and closing the panel is server state.
type FilterSidebar struct {
	Open bool
}

func (f FilterSidebar) Render(b *element.Builder) any {
	b.Aside("class", classIf("filter-sidebar", f.Open, "open"), "id", "filter-sidebar",
		"aria-hidden", strconv.FormatBool(!f.Open)).R(
		b.DivClass("sidebar-header").R(
			b.H2("class", "sidebar-title").T("Filters"),
			b.Form(actionAttrs("/ui/sidebar/close", "inline-form")...).R(
				b.ButtonClass("btn-close", "type", "submit", "title", "Close filters").T("×"),
			),
		),
		b.Form("class", "sidebar-body", "id", "sidebar-filters", "onsubmit", "return false;").R(
			b.DivClass("filter-group").R(
				b.H3("class", "filter-group-title").T("Price range"),
				b.DivClass("price-slider").R(
					b.Input("type", "range", "name", "price_min", "min", "0", "max", strconv.Itoa(sidebarPriceMax),
						"step", strconv.Itoa(sidebarPriceStep), "value", strconv.Itoa(sidebarDefaultLow)),
					b.Input("type", "range", "name", "price_max", "min", "0", "max", strconv.Itoa(sidebarPriceMax),
						"step", strconv.Itoa(sidebarPriceStep), "value", strconv.Itoa(sidebarDefaultHigh)),
				),
				b.DivClass("price-labels").R(
					b.Span().T("$"+strconv.Itoa(sidebarDefaultLow)),
					b.Span().T("$"+strconv.Itoa(sidebarDefaultHigh)),
				),
			),
			f.renderCheckGroup(b, "Property type", "type", sidebarPropertyTypes),
			f.renderCheckGroup(b, "Amenities", "amenity", sidebarAmenities),
			f.renderCheckGroup(b, "Booking options", "booking", sidebarBookingOptions),
			b.DivClass("sidebar-actions").R(
				b.ButtonClass("btn-link", "type", "reset").T("Clear all"),
			),
		),
		b.Form(actionAttrs("/ui/sidebar/close", "sidebar-footer")...).R(
			b.ButtonClass("btn-primary", "type", "submit").T("Show results"),
		),
	)
	return nil
}

func (f FilterSidebar) renderCheckGroup(b *element.Builder, title, name string, options []string) any {
	return b.DivClass("filter-group").R(
		b.H3("class", "filter-group-title").T(title),
		b.DivClass("check-grid").R(
			b.Wrap(func() {
				for _, opt := range options {
					b.LabelClass("check-item").R(
						b.Input("type", "checkbox", "name", name, "value", optionID(opt)),
						b.Span().T(opt),
					)
				}
			}),
		),
	)
}

// optionID turns a display label into a form value: "Hot tub" -> "hot-tub"
func optionID(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "-")
}
