package listings

import (
	"strings"

	"github.com/rohanthewiz/element"
)

const logoSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1000 1000" class="logo-mark">` +
	`<path d="M499.9 222.7c-150.6 0-195 118.3-195 118.3s44.4 118.3 195 118.3 195-118.3 195-118.3-44.4-118.3-195-118.3zm0 196.3c-42.8 0-77.5-34.7-77.5-77.5s34.7-77.5 77.5-77.5 77.5 34.7 77.5 77.5-34.7 77.5-77.5 77.5zm-298 130.3c-3.5 7.1-6.9 14.3-10.2 21.5-23.2 50.1-42.7 101-42.7 140.8 0 129.6 105.4 235 235 235s235-105.4 235-235c0-39.8-19.5-90.7-42.7-140.8-3.3-7.2-6.7-14.4-10.2-21.5-89.5 122.8-274.2 122.8-364.2 0z"/>` +
	`<path d="M500 10C229.4 10 10 229.4 10 500s219.4 490 490 490 490-219.4 490-490S770.6 10 500 10zm311.9 558.9c0 172.3-140.3 312.6-312.6 312.6S187.4 741.2 187.4 568.9c0-50.9 21.2-110.1 47.6-166.7 3.5-7.6 7.1-15.1 10.7-22.6 97.9 134.8 299.3 134.8 397.2 0 3.6 7.5 7.2 15 10.7 22.6 26.4 56.7 47.6 115.9 47.6 166.7h.7z"/>` +
	`</svg>`

// Header is the top bar with the logo, the compact search pill and the user menu
type Header struct {
	UserName string // empty renders the guest menu
}

func (h Header) Render(b *element.Builder) any {
	b.HeaderClass("site-header").R(
		b.DivClass("site-header-inner").R(
			b.A("href", "/", "class", "logo").R(
				b.T(logoSVG),
				b.SpanClass("logo-text").T("airbnb"),
			),
			b.DivClass("search-pill").R(
				b.SpanClass("pill-item").T("Anywhere"),
				b.SpanClass("pill-divider").T("|"),
				b.SpanClass("pill-item").T("Any week"),
				b.SpanClass("pill-divider").T("|"),
				b.SpanClass("pill-item muted").T("Add guests"),
			),
			b.DivClass("user-nav").R(
				b.ButtonClass("btn-ghost host-link", "type", "button").T("Become a Host"),
				b.ButtonClass("btn-ghost btn-round", "type", "button", "title", "Language and region").T("🌐"),
				b.ButtonClass("user-menu", "type", "button").R(
					b.SpanClass("menu-icon").T("☰"),
					b.DivClass("user-avatar", "title", esc(h.displayName())).T(esc(h.initial())),
				),
			),
		),
	)
	return nil
}

func (h Header) displayName() string {
	if strings.TrimSpace(h.UserName) == "" {
		return "Guest"
	}
	return h.UserName
}

func (h Header) initial() string {
	r := []rune(h.displayName())
	return strings.ToUpper(string(r[0]))
}
