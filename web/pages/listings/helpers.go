package listings

import (
	"html"
	"net/url"
)

// HomeTarget is the region every /ui/* action swaps
const HomeTarget = "home"

// esc escapes user-facing text and attribute values; the builder writes them raw
func esc(s string) string {
	return html.EscapeString(s)
}

// idPath escapes a listing id for use as a path segment
func idPath(id string) string {
	return url.PathEscape(id)
}

// actionAttrs are the attributes of a form that posts to action.
// hx.js swaps the returned #home region in place; without JS the form posts and the server redirects back.
func actionAttrs(action, class string) []string {
	return []string{
		"method", "post", "action", action, "class", class,
		"hx-post", action, "hx-target", "#" + HomeTarget, "hx-swap", "outerHTML",
	}
}

// classIf appends extra to base when cond holds
func classIf(base string, cond bool, extra string) string {
	if cond {
		return base + " " + extra
	}
	return base
}

func imgTag(src, alt, class string) string {
	return `<img src="` + esc(src) + `" alt="` + esc(alt) + `" class="` + class + `" loading="lazy">`
}
