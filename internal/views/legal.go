package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/development-sample/eceta.com/internal/legal"
)

func LegalPage(c Context) Page {
	doc := c.Resolution.Data.Legal
	return Page{
		Title:       doc.Title,
		Description: doc.Intro,
		Main: g.El("article", ID("legal-"+string(doc.Kind)), Class("legal container"),
			H1(g.Text(doc.Title)),
			P(Class("legal__intro"), g.Text(doc.Intro)),
			g.Map(doc.Sections, func(s legal.Section) g.Node {
				return g.El("section", Class("legal__section"),
					H2(g.Text(s.Heading)),
					g.Map(s.Paragraphs, func(p string) g.Node { return P(g.Text(p)) }),
					g.If(len(s.Items) > 0, Ul(g.Map(s.Items, func(it string) g.Node { return Li(g.Text(it)) }))),
				)
			}),
			g.If(doc.Contact != "", P(Class("legal__contact"), g.Text(doc.Contact))),
			P(Class("legal__address"), g.Text(c.site().Footer.Address)),
		),
	}
}
