package listings

import (
	"strconv"
	"time"

	"github.com/rohanthewiz/element"

	"staysearch/state"
)

// SearchBar is the location / dates / guests form. Submitting posts to /ui/search.
// The check-out input's min mirrors the selectable range of the form state.
type SearchBar struct {
	Form  state.SearchForm
	Now   time.Time
	Error string // validation message from the last submission
}

func (s SearchBar) Render(b *element.Builder) any {
	checkOutMin := state.FormatDate(s.Form.CheckOutMin(s.Now))

	b.Form(actionAttrs("/ui/search", "search-bar")...).R(
		b.DivClass("search-field search-location").R(
			b.LabelClass("search-label", "for", "search-location").T("Where"),
			b.Input("type", "text", "id", "search-location", "name", "location", "class", "search-input",
				"placeholder", "Search destinations", "value", esc(s.Form.Location), "autocomplete", "off"),
		),
		b.DivClass("search-field").R(
			b.LabelClass("search-label", "for", "search-check-in").T("Check in"),
			b.Input("type", "date", "id", "search-check-in", "name", "check_in", "class", "search-input",
				"value", state.FormatDate(s.Form.CheckIn)),
		),
		b.DivClass("search-field").R(
			b.LabelClass("search-label", "for", "search-check-out").T("Check out"),
			b.Input("type", "date", "id", "search-check-out", "name", "check_out", "class", "search-input",
				"value", state.FormatDate(s.Form.CheckOut), "min", checkOutMin),
		),
		b.DivClass("search-field").R(
			b.LabelClass("search-label", "for", "search-guests").T("Who"),
			b.Select("id", "search-guests", "name", "guests", "class", "search-select").R(
				b.Wrap(func() {
					for _, n := range state.GuestOptions() {
						attrs := []string{"value", strconv.Itoa(n)}
						if n == s.Form.Guests {
							attrs = append(attrs, "selected", "selected")
						}
						b.Option(attrs...).T(state.GuestLabel(n))
					}
				}),
			),
		),
		b.Button("type", "submit", "class", "btn-search", "title", "Search").R(
			b.SpanClass("search-icon").T("🔍"),
			b.SpanClass("search-text").T("Search"),
		),
		b.Wrap(func() {
			if s.Error != "" {
				b.P("class", "search-error", "role", "alert").T(esc(s.Error))
			}
		}),
	)
	return nil
}
