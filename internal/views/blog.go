package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/development-sample/eceta.com/internal/blog"
	"github.com/development-sample/eceta.com/internal/format"
	"github.com/development-sample/eceta.com/internal/seo"
)

func BlogIndexPage(c Context) Page {
	d := c.dict()
	posts := c.Resolution.Data.Posts
	var list g.Node
	if len(posts) == 0 {
		list = P(Class("blog__empty"), g.Text(d.Blog.Empty))
	} else {
		list = Div(Class("blog__list"), g.Map(posts, func(p blog.Post) g.Node {
			return postSummary(c, p)
		}))
	}
	return Page{
		Title:       d.Blog.Title,
		Description: c.site().Hero.Subtitle,
		Main: g.Group([]g.Node{
			pageHero(d.Blog.Title, c.site().Hero.Subtitle),
			revealSection("posts", "blog", list),
			revealSection("blog-newsletter", "blog-newsletter", newsletterPanel(c)),
		}),
	}
}

func postSummary(c Context, p blog.Post) g.Node {
	d := c.dict()
	href := c.href("/blog/" + p.Slug)
	return g.El("article", ID("post-"+p.Slug), Class("card post-summary"),
		H2(Class("post-summary__title"), A(Href(href), g.Text(p.FrontMatter.Title))),
		postMeta(c, p),
		P(Class("post-summary__excerpt"), g.Text(p.FrontMatter.Excerpt)),
		g.If(len(p.FrontMatter.Tags) > 0, Ul(Class("tags"), g.Map(p.FrontMatter.Tags, func(t string) g.Node {
			return Li(Class("tags__item"), g.Text("#"+t))
		}))),
		A(Href(href), Class("post-summary__more"), g.Text(d.Blog.ReadMore)),
	)
}

func postMeta(c Context, p blog.Post) g.Node {
	return P(Class("post-meta"),
		g.El("time", g.Attr("datetime", format.ISODate(p.FrontMatter.Date)), g.Text(format.Date(p.FrontMatter.Date, c.locale()))),
		g.Text(" · "),
		Span(Class("post-meta__reading"), g.Text(format.Template(c.dict().Blog.ReadingTime, p.ReadingMinutes))),
	)
}

func BlogPostPage(c Context) Page {
	p := c.Resolution.Data.Post
	l := c.locale()
	url := seo.AbsURL(c.BaseURL, l, c.Resolution.Segments)
	return Page{
		Title:       p.FrontMatter.Title,
		Description: p.FrontMatter.Excerpt,
		OGType:      "article",
		Crumb:       p.FrontMatter.Title,
		JSONLD: []any{seo.Article(seo.ArticleInput{
			Headline:      p.FrontMatter.Title,
			URL:           url,
			Description:   p.FrontMatter.Excerpt,
			DatePublished: p.FrontMatter.Date,
			InLanguage:    l.HTMLLang(),
			Keywords:      p.FrontMatter.Tags,
			Publisher:     seo.SiteName,
		})},
		Main: g.El("article", ID("post"), Class("post container"),
			Header(Class("post__header"),
				H1(g.Text(p.FrontMatter.Title)),
				postMeta(c, p),
			),
			Div(Class("post__body prose"), g.Raw(p.HTML)),
			A(Href(c.href("/blog")), Class("post__back"), g.Text("← "+c.dict().Blog.Title)),
		),
	}
}
