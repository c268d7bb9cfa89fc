package listings

import (
	"strconv"

	"github.com/rohanthewiz/element"

	"staysearch/state"
)

type sheetOption struct {
	ID    string
	Label string
}

var sheetPropertyTypes = []sheetOption{
	{"house", "House"}, {"apartment", "Apartment"}, {"guesthouse", "Guesthouse"},
	{"hotel", "Hotel"}, {"cabin", "Cabin"},
}

var sheetAmenities = []sheetOption{
	{"wifi", "Wifi"}, {"kitchen", "Kitchen"}, {"washer", "Washer"}, {"dryer", "Dryer"},
	{"ac", "Air conditioning"}, {"heating", "Heating"}, {"pool", "Pool"}, {"tv", "TV"},
	{"parking", "Free parking"},
}

// MobileFilterSheet is the bottom sheet shown on small screens.
// It keeps its own price range in session state; Clear all resets that range.
type MobileFilterSheet struct {
	Open  bool
	Sheet state.SheetState
}

func (m MobileFilterSheet) Render(b *element.Builder) any {
	b.Div("class", classIf("sheet-backdrop", m.Open, "open"), "id", "mobile-filter-sheet",
		"aria-hidden", strconv.FormatBool(!m.Open)).R(
		b.DivClass("sheet").R(
			b.DivClass("sheet-header").R(
				b.Form(actionAttrs("/ui/sheet/close", "inline-form")...).R(
					b.ButtonClass("btn-close", "type", "submit", "title", "Close").T("×"),
				),
				b.H2("class", "sheet-title").T("Filters"),
				b.Form(actionAttrs("/ui/sheet/clear", "inline-form")...).R(
					b.ButtonClass("btn-link", "type", "submit").T("Clear all"),
				),
			),
			b.DivClass("sheet-body").R(
				b.DivClass("filter-group").R(
					b.H3("class", "filter-group-title").T("Price range"),
					b.Form(append(actionAttrs("/ui/sheet/price", "sheet-price"), "hx-trigger", "change")...).R(
						b.Input("type", "range", "name", "min", "min", strconv.Itoa(state.SheetPriceFloor),
							"max", strconv.Itoa(state.SheetPriceCeiling), "step", strconv.Itoa(state.SheetPriceStep),
							"value", strconv.Itoa(m.Sheet.PriceMin)),
						b.Input("type", "range", "name", "max", "min", strconv.Itoa(state.SheetPriceFloor),
							"max", strconv.Itoa(state.SheetPriceCeiling), "step", strconv.Itoa(state.SheetPriceStep),
							"value", strconv.Itoa(m.Sheet.PriceMax)),
						b.DivClass("price-boxes").R(
							b.DivClass("price-box").R(
								b.P("class", "price-box-label").T("Min price"),
								b.P("class", "price-box-value").T("$"+strconv.Itoa(m.Sheet.PriceMin)),
							),
							b.DivClass("price-box").R(
								b.P("class", "price-box-label").T("Max price"),
								b.P("class", "price-box-value").T("$"+strconv.Itoa(m.Sheet.PriceMax)),
							),
						),
						b.Button("type", "submit", "class", "btn-secondary btn-apply").T("Apply"),
					),
				),
				m.renderOptions(b, "Property type", "property", sheetPropertyTypes),
				m.renderOptions(b, "Amenities", "amenity", sheetAmenities),
			),
			b.Form(actionAttrs("/ui/sheet/close", "sheet-footer")...).R(
				b.ButtonClass("btn-primary btn-block", "type", "submit").T("Show results"),
			),
		),
	)
	return nil
}

func (m MobileFilterSheet) renderOptions(b *element.Builder, title, prefix string, options []sheetOption) any {
	return b.DivClass("filter-group").R(
		b.H3("class", "filter-group-title").T(title),
		b.DivClass("check-grid").R(
			b.Wrap(func() {
				for _, opt := range options {
					id := prefix + "-" + opt.ID
					b.DivClass("check-item").R(
						b.Input("type", "checkbox", "id", id),
						b.Label("for", id).T(opt.Label),
					)
				}
			}),
		),
	)
}
