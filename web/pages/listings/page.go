package listings

import "github.com/rohanthewiz/element"

// Page is the full HTML document around the home region
type Page struct {
	Title string
	View  View
}

func NewPage(v View) Page {
	return Page{Title: "StaySearch - Find places to stay", View: v}
}

// Render generates the complete HTML document
func (p Page) Render() string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		p.renderHead(b),
		b.Body().R(
			element.RenderComponents(b, Home{View: p.View}),
			b.Script("src", "/static/js/app.js?v=1").R(),
		),
	)

	return "<!DOCTYPE html>" + b.String()
}

func (p Page) renderHead(b *element.Builder) any {
	return b.Head().R(
		b.Meta("charset", "UTF-8"),
		b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
		b.Title().T(esc(p.Title)),
		b.Link("rel", "icon", "href", "/favicon.ico"),
		b.Link("rel", "stylesheet", "href", "/static/css/app.css?v=1"),
		// hx.js drives every /ui/* action; forms still post without it
		b.Script("src", "/static/js/hx.js?v=1").R(),
	)
}
