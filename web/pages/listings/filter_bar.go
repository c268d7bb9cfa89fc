package listings

import (
	"strconv"

	"github.com/rohanthewiz/element"

	"staysearch/state"
)

// FilterBar is the horizontal strip of category chips plus the panel openers
type FilterBar struct {
	Selected    state.FilterSet
	SidebarOpen bool
}

func (f FilterBar) Render(b *element.Builder) any {
	b.DivClass("filter-bar", "id", "filter-bar").R(
		b.DivClass("filter-chips").R(
			b.Wrap(func() {
				for _, chip := range state.FilterChips {
					active := f.Selected.Contains(chip.ID)
					b.Form(actionAttrs("/ui/filters/"+idPath(chip.ID)+"/toggle", "inline-form")...).R(
						b.Button("type", "submit", "class", classIf("filter-chip", active, "active"),
							"data-filter", chip.ID, "aria-pressed", strconv.FormatBool(active)).T(chip.Label),
					)
				}
			}),
		),
		b.Form(actionAttrs("/ui/sidebar/toggle", "inline-form desktop-only")...).R(
			b.Button("type", "submit", "class", classIf("btn-filters", f.SidebarOpen, "active"),
				"aria-expanded", strconv.FormatBool(f.SidebarOpen)).R(
				b.SpanClass("filters-icon").T("⚙"),
				b.Span().T("Filters"),
				b.Wrap(func() {
					if n := f.Selected.Len(); n > 0 {
						b.SpanClass("filter-count").T(strconv.Itoa(n))
					}
				}),
			),
		),
		b.Form(actionAttrs("/ui/sheet/open", "inline-form mobile-only")...).R(
			b.Button("type", "submit", "class", "btn-filters").R(
				b.SpanClass("filters-icon").T("⚙"),
				b.Span().T("Filters"),
			),
		),
	)
	return nil
}
