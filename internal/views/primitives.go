package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/development-sample/eceta.com/internal/reveal"
)

// ButtonVariant selects a button style.
type ButtonVariant string

const (
	Primary   ButtonVariant = "primary"
	Secondary ButtonVariant = "secondary"
	Outline   ButtonVariant = "outline"
	Ghost     ButtonVariant = "ghost"
)

func buttonClass(v ButtonVariant) string {
	if v == "" {
		v = Primary
	}
	return "btn btn--" + string(v)
}

// ActionButton renders a <button>. Callers pass the type attribute.
func ActionButton(v ButtonVariant, children ...g.Node) g.Node {
	return g.El("button", Class(buttonClass(v)), g.Group(children))
}

// ButtonLink renders a link styled as a button.
func ButtonLink(href string, v ButtonVariant, children ...g.Node) g.Node {
	return A(Href(href), Class(buttonClass(v)), g.Group(children))
}

// Card wraps content in a bordered panel.
func Card(children ...g.Node) g.Node {
	return Div(Class("card"), g.Group(children))
}

func CardHeader(title, description string) g.Node {
	return Div(Class("card__header"),
		H3(Class("card__title"), g.Text(title)),
		g.If(description != "", P(Class("card__description"), g.Text(description))),
	)
}

func CardContent(children ...g.Node) g.Node {
	return Div(Class("card__content"), g.Group(children))
}

// Badge renders a small pill label.
func Badge(variant, text string) g.Node {
	if variant == "" {
		variant = "default"
	}
	return Span(Class("badge badge--"+variant), g.Text(text))
}

// AccordionItem is one collapsible question.
type AccordionItem struct {
	Title string
	Body  string
}

// Accordion renders items as native disclosure widgets so they work without script.
func Accordion(id string, items []AccordionItem) g.Node {
	return Div(ID(id), Class("accordion"),
		g.Map(items, func(it AccordionItem) g.Node {
			return g.El("details", Class("accordion__item"),
				g.El("summary", Class("accordion__trigger"), g.Text(it.Title)),
				Div(Class("accordion__content"), P(g.Text(it.Body))),
			)
		}),
	)
}

// Container constrains content to the page width.
func Container(children ...g.Node) g.Node {
	return Div(Class("container"), g.Group(children))
}

var (
	revealThreshold = strconv.FormatFloat(reveal.DefaultThreshold, 'f', -1, 64)
	revealMargin    = "0px 0px -" + strconv.FormatFloat(reveal.DefaultBottomMargin*100, 'f', -1, 64) + "% 0px"
)

// revealSection fades in once scrolled into view.
func revealSection(id, class string, children ...g.Node) g.Node {
	return g.El("section", ID(id), Class("section "+class),
		g.Attr("data-animate", "fade"),
		g.Attr("data-reveal-threshold", revealThreshold),
		g.Attr("data-reveal-margin", revealMargin),
		Container(children...),
	)
}

func sectionHeading(title, lead string) g.Node {
	return Div(Class("section__heading"),
		H2(g.Text(title)),
		g.If(lead != "", P(Class("section__lead"), g.Text(lead))),
	)
}
