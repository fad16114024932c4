package views

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/development-sample/eceta.com/internal/content"
	"github.com/development-sample/eceta.com/internal/format"
)

func HomePage(c Context) Page {
	s := c.site()
	return Page{
		Main: g.Group([]g.Node{
			hero(c, s.Hero),
			revealSection("value-props", "value-props",
				sectionHeading(s.ValueProps.Title, ""),
				Div(Class("grid grid--4"),
					g.Map(s.ValueProps.Items, func(it content.Item) g.Node {
						return Card(CardHeader(it.Title, it.Description))
					}),
				),
			),
			revealSection("why-now", "why-now",
				sectionHeading(s.WhyNow.Title, ""),
				Ul(Class("checklist"), g.Map(s.WhyNow.Items, func(it string) g.Node {
					return Li(g.Text(it))
				})),
				P(Class("footnote"), g.Text(s.WhyNow.Footnote)),
			),
			revealSection("roadmap-timeline", "timeline",
				sectionHeading(s.Roadmap.Title, ""),
				g.El("ol", Class("timeline__list"), g.Map(s.Roadmap.Items, func(it content.RoadmapItem) g.Node {
					return Li(Class("timeline__item"),
						Badge("outline", it.Period),
						H3(g.Text(it.Headline)),
						P(g.Text(it.Description)),
					)
				})),
			),
			revealSection("partners", "partners",
				sectionHeading("Partner Pipeline", ""),
				partnerMarquee(s.PartnerLogos),
			),
		}),
	}
}

func hero(c Context, h content.Hero) g.Node {
	return g.El("section", ID("hero"), Class("hero"),
		Container(
			Badge("accent", h.Eyebrow),
			H1(Class("hero__title"), g.Text(h.Title)),
			P(Class("hero__subtitle"), g.Text(h.Subtitle)),
			Div(Class("hero__actions"),
				ButtonLink(c.href("/for-brands"), Primary, g.Text(h.PrimaryCTA)),
				ButtonLink(c.href("/contact"), Outline, g.Text(h.SecondaryCTA)),
			),
			g.El("dl", Class("hero__metrics"), g.Map(h.Metrics, func(m content.Metric) g.Node {
				return Div(Class("hero__metric"),
					g.El("dt", g.Text(m.Label)),
					g.El("dd", g.Text(m.Value)),
				)
			})),
		),
	)
}

// partnerMarquee repeats the logos once so the CSS loop is seamless; the copy is hidden
// from assistive technology.
func partnerMarquee(logos []string) g.Node {
	row := func(hidden bool) g.Node {
		return Ul(Class("marquee__row"), g.If(hidden, g.Attr("aria-hidden", "true")),
			g.Map(logos, func(name string) g.Node {
				return Li(Class("marquee__item"), g.Text(name))
			}),
		)
	}
	return Div(Class("marquee"), row(false), row(true))
}

func pageHero(title, description string) g.Node {
	return g.El("section", Class("page-hero"),
		Container(
			H1(g.Text(title)),
			g.If(description != "", P(Class("page-hero__description"), g.Text(description))),
		),
	)
}

func ProductPage(c Context) Page {
	p := c.site().Product
	return Page{
		Title:       p.Hero.Title,
		Description: p.Hero.Description,
		Main: g.Group([]g.Node{
			pageHero(p.Hero.Title, p.Hero.Description),
			revealSection("features", "features",
				Div(Class("grid grid--3"),
					g.Map(p.Features, func(f content.Feature) g.Node {
						return Card(CardHeader(f.Name, f.Description))
					}),
				),
			),
			revealSection("architecture", "architecture",
				sectionHeading(p.Architecture.Title, ""),
				g.El("ol", Class("stack"), g.Map(p.Architecture.Layers, func(layer string) g.Node {
					return Li(Class("stack__layer"), g.Text(layer))
				})),
			),
		}),
	}
}

func ForBrandsPage(c Context) Page {
	fb := c.site().ForBrands
	d := c.dict()
	faq := make([]AccordionItem, 0, len(c.Resolution.Data.FAQ))
	for _, it := range c.Resolution.Data.FAQ {
		faq = append(faq, AccordionItem{Title: it.Question, Body: it.Answer})
	}
	return Page{
		Title:       fb.Hero.Title,
		Description: fb.Hero.Description,
		Main: g.Group([]g.Node{
			pageHero(fb.Hero.Title, fb.Hero.Description),
			revealSection("benefits", "benefits",
				Div(Class("grid grid--2"),
					g.Map(fb.Benefits, func(it content.Item) g.Node {
						return Div(Class("benefit"),
							Badge("accent", it.Title),
							P(g.Text(it.Description)),
						)
					}),
				),
			),
			revealSection("case-studies", "case-studies",
				Div(Class("grid grid--3"),
					g.Map(fb.CaseStudies, func(cs content.CaseStudy) g.Node {
						return Card(CardHeader(cs.Brand, cs.Result))
					}),
				),
			),
			pricingSection(c),
			revealSection("faq", "faq",
				sectionHeading(fb.FAQHeadline, ""),
				Accordion("faq-list", faq),
			),
			revealSection("apply", "apply",
				sectionHeading(d.BrandsForm.Title, fb.PricingSummary),
				BrandForm(c),
			),
		}),
	}
}

func pricingSection(c Context) g.Node {
	d := c.dict()
	pricing := c.Resolution.Data.Pricing
	l := c.locale()
	taxLabel := d.Pricing.TaxIncluded
	if c.TaxExcluded {
		taxLabel = d.Pricing.TaxExcluded
	}
	toggle := "?tax=excluded"
	if c.TaxExcluded {
		toggle = "?tax=included"
	}
	return revealSection("pricing", "pricing",
		sectionHeading(d.Pricing.Title, ""),
		A(ID("tax-toggle"), Href(c.path()+toggle+"#pricing"), Class("switch"),
			g.Attr("role", "switch"),
			g.Attr("aria-checked", fmt.Sprint(!c.TaxExcluded)),
			Span(Class("switch__track"), g.Attr("aria-hidden", "true")),
			Span(Class("switch__label"), g.Text(d.Pricing.Toggle)),
		),
		Div(Class("grid grid--3 pricing__plans"),
			g.Map(pricing.Plans, func(p content.Plan) g.Node {
				price := p.PriceWithTax
				if c.TaxExcluded {
					price = p.Price
				}
				return Div(ID("plan-"+p.Slug), Class("card plan"),
					CardHeader(p.Name, p.Description),
					CardContent(
						P(Class("plan__price"),
							Span(Class("plan__amount"), g.Text(format.Yen(price, l))),
							Span(Class("plan__period"), g.Text(d.Pricing.PerMonth)),
							Span(Class("plan__tax"), g.Text(" ("+taxLabel+")")),
						),
						Ul(Class("plan__features"), g.Map(p.Features, func(f string) g.Node {
							return Li(g.Text(f))
						})),
						ButtonLink("#brand-form", Primary, g.Text(p.CTA)),
					),
				)
			}),
		),
		P(Class("footnote"), g.Text(pricing.TaxNote)),
	)
}

func MarketPage(c Context) Page {
	m := c.site().Market
	return Page{
		Title: m.Title,
		Main: g.Group([]g.Node{
			pageHero(m.Title, ""),
			revealSection("stats", "stats",
				Div(Class("grid grid--3"),
					g.Map(m.Stats, func(s content.Stat) g.Node {
						return Card(
							P(Class("stat__value"), g.Text(s.Value)),
							P(Class("stat__label"), g.Text(s.Label)),
							P(Class("stat__source"), g.Text(s.Source)),
						)
					}),
				),
			),
			g.If(len(m.Footnotes) > 0, revealSection("references", "references",
				H2(g.Text("References")),
				g.El("ol", Class("footnotes"), g.Map(m.Footnotes, func(f string) g.Node {
					return Li(g.Text(f))
				})),
			)),
		}),
	}
}

func PressPage(c Context) Page {
	p := c.site().Press
	return Page{
		Title:       p.Title,
		Description: p.Overview,
		Main: g.Group([]g.Node{
			pageHero(p.Title, p.Overview),
			revealSection("press-kit", "press-kit",
				H2(g.Text("Press Kit")),
				Ul(Class("assets"), g.Map(p.Assets, func(a content.Asset) g.Node {
					return Li(Class("assets__item"),
						Span(g.Text(a.Name)),
						A(Href(a.File), g.Attr("download"), Class(buttonClass(Outline)), g.Text(a.File)),
					)
				})),
			),
		}),
	}
}

func TeamPage(c Context) Page {
	t := c.site().Team
	return Page{
		Title:       t.Title,
		Description: t.Intro,
		Main: g.Group([]g.Node{
			pageHero(t.Title, t.Intro),
			revealSection("roles", "roles",
				Div(Class("grid grid--3"),
					g.Map(t.Roles, func(r content.Item) g.Node {
						return Card(CardHeader(r.Title, r.Description))
					}),
				),
			),
			revealSection("hiring", "hiring",
				sectionHeading(t.Hiring.Headline, ""),
				Div(Class("grid grid--2"),
					g.Map(t.Hiring.Roles, func(r content.Item) g.Node {
						return Card(CardHeader(r.Title, r.Description))
					}),
				),
				ButtonLink(c.href("/contact"), Outline, g.Text(c.dict().Nav.ContactUs)),
			),
		}),
	}
}

func VisionPage(c Context) Page {
	v := c.site().Vision
	list := func(id, title string, items []string) g.Node {
		return revealSection(id, "vision-list",
			sectionHeading(title, ""),
			Ul(g.Map(items, func(s string) g.Node { return Li(g.Text(s)) })),
		)
	}
	return Page{
		Title:       c.navLabel("vision"),
		Description: v.Mission,
		Main: g.Group([]g.Node{
			pageHero(c.navLabel("vision"), v.Mission),
			list("challenges", v.ChallengesTitle, v.Challenges),
			list("differentiators", v.DiffTitle, v.Differentiators),
			list("barriers", v.BarriersTitle, v.Barriers),
		}),
	}
}

func RoadmapPage(c Context) Page {
	r := c.site().RoadmapPage
	l := c.locale()
	return Page{
		Title: r.Title,
		Main: g.Group([]g.Node{
			pageHero(r.Title, ""),
			revealSection("milestones", "timeline",
				g.El("ol", Class("timeline__list"), g.Map(r.Milestones, func(m content.Item) g.Node {
					return Li(Class("timeline__item"),
						H3(g.Text(m.Title)),
						P(g.Text(m.Description)),
					)
				})),
			),
			revealSection("capital", "capital",
				sectionHeading(r.Capital.Title, ""),
				Ul(Class("capital"), g.Map(r.Capital.Items, func(s content.CapitalSplit) g.Node {
					return Li(Class("capital__item"),
						Span(Class("capital__label"), g.Text(s.Label)),
						Span(Class("capital__value"), g.Text(format.Percent(s.Value, l))),
						Span(Class("capital__bar"), g.Attr("style", fmt.Sprintf("width:%d%%", s.Value)), g.Attr("aria-hidden", "true")),
					)
				})),
			),
		}),
	}
}
