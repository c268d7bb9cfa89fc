package listings

import (
	"strconv"

	"github.com/rohanthewiz/element"

	"staysearch/models"
)

const starSVG = `<svg xmlns="http://www.w3.org/2000/svg" class="star" viewBox="0 0 24 24" fill="currentColor">` +
	`<path d="M12 2l2.4 7.4h7.6l-6 4.6 2.3 7-6.3-4.6-6.3 4.6 2.3-7-6-4.6h7.6z"/></svg>`

// PropertyCard shows one listing: image carousel, favorite toggle, superhost badge and details
type PropertyCard struct {
	Listing  models.Listing
	Favorite bool
	Layout   string // "grid", "list" or "popup"
}

func (p PropertyCard) Render(b *element.Builder) any {
	l := p.Listing
	layout := p.Layout
	if layout == "" {
		layout = "grid"
	}

	b.Div("class", "property-card card-"+layout, "data-listing-id", esc(l.ID)).R(
		b.DivClass("card-media").R(
			p.renderCarousel(b),
			b.Form(actionAttrs("/ui/favorites/"+idPath(l.ID)+"/toggle", "favorite-form")...).R(
				b.Button("type", "submit", "class", classIf("btn-favorite", p.Favorite, "active"),
					"title", "Save to favorites", "aria-pressed", strconv.FormatBool(p.Favorite)).T(heartGlyph(p.Favorite)),
			),
			b.Wrap(func() {
				if l.IsSuperhost {
					b.SpanClass("badge-superhost").T("Superhost")
				}
			}),
		),
		b.DivClass("card-details").R(
			b.DivClass("card-title-row").R(
				b.H3("class", "card-title").T(esc(l.Title)),
				b.SpanClass("card-rating").R(
					b.T(starSVG),
					b.Span().T(l.RatingLabel()),
				),
			),
			b.P("class", "card-location").T(esc(l.Location)),
			b.P("class", "card-dates").T(esc(l.Dates)),
			b.DivClass("card-price").R(
				b.SpanClass("price").T(l.PriceLabel()),
				b.SpanClass("price-unit").T(" night"),
			),
		),
	)
	return nil
}

// renderCarousel lays out every image; app.js pages through them client side.
// No images renders an empty frame.
func (p PropertyCard) renderCarousel(b *element.Builder) any {
	l := p.Listing
	return b.Div("class", "carousel", "data-index", "0").R(
		b.DivClass("carousel-track").R(
			b.Wrap(func() {
				for i, src := range l.Images {
					b.Div("class", classIf("carousel-item", i == 0, "active")).R(
						b.T(imgTag(src, l.Title+" - image "+strconv.Itoa(i+1), "card-image")),
					)
				}
			}),
		),
		b.Wrap(func() {
			if len(l.Images) > 1 {
				b.ButtonClass("carousel-prev", "type", "button", "title", "Previous image").T("‹")
				b.ButtonClass("carousel-next", "type", "button", "title", "Next image").T("›")
			}
		}),
	)
}

func heartGlyph(favorite bool) string {
	if favorite {
		return "♥"
	}
	return "♡"
}
