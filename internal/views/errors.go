package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/development-sample/eceta.com/internal/i18n"
	"github.com/development-sample/eceta.com/internal/seo"
)

// NotFound renders the 404 page. Without Site Copy only the bare shell is used.
func NotFound(c Context) g.Node {
	d := c.dict()
	return statusPage(c, d.NotFound, c.href("/"))
}

// Unavailable renders the 503 page offered when a data source failed. The back link
// reloads the requested path.
func Unavailable(c Context) g.Node {
	d := c.dict()
	return statusPage(c, d.Unavailable, c.path())
}

func statusPage(c Context, s i18n.PageStrings, back string) g.Node {
	body := g.El("section", ID("status"), Class("status-page container"),
		H1(g.Text(s.Title)),
		P(g.Text(s.Body)),
		ButtonLink(back, Primary, g.Text(s.Back)),
	)
	if len(c.site().Navigation) == 0 {
		return bareDocument(c.locale(), s.Title, body)
	}
	return Document(c, Page{Title: s.Title, NoIndex: true, Main: body})
}

func bareDocument(l i18n.Locale, title string, body g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(l.HTMLLang()),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("robots"), Content("noindex")),
				TitleEl(g.Text(seo.Title(title, seo.SiteName))),
				Link(Rel("stylesheet"), Href("/assets/site.css")),
			),
			Body(Class("site site--bare"), g.El("main", ID("main"), Class("main"), body)),
		),
	})
}
