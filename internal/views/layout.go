package views

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/development-sample/eceta.com/internal/content"
	"github.com/development-sample/eceta.com/internal/i18n"
	"github.com/development-sample/eceta.com/internal/legal"
	"github.com/development-sample/eceta.com/internal/nav"
	"github.com/development-sample/eceta.com/internal/seo"
)

const (
	// DrawerID is the id of the mobile navigation drawer.
	DrawerID = "nav-drawer"
	// ThemeStorageKey is the localStorage key holding light, dark or system.
	ThemeStorageKey = "eceta-theme"
	// ConsentCookie is set once the visitor dismisses the cookie banner.
	ConsentCookie = "eceta-cookie-consent"

	htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
)

// Page is the output of a view: metadata plus the <main> content.
type Page struct {
	Title       string
	Description string
	Image       string
	// OGType defaults to "website".
	OGType string
	JSONLD []any
	// Crumb labels the last breadcrumb when the segment alone is not descriptive.
	Crumb string
	// NoIndex marks status pages; they carry no breadcrumbs.
	NoIndex bool
	Main    g.Node
}

var themeBootstrap = fmt.Sprintf(`(function(){try{var t=localStorage.getItem(%q)||"system";`+
	`var d=t==="dark"||(t==="system"&&matchMedia("(prefers-color-scheme: dark)").matches);`+
	`document.documentElement.dataset.theme=t;document.documentElement.classList.toggle("dark",d)}catch(e){}})();`,
	ThemeStorageKey)

// Document wraps a page in the full HTML shell: head metadata, header, drawer, footer and
// the cookie banner.
func Document(c Context, p Page) g.Node {
	l := c.locale()
	site := c.site()

	title := seo.Title(p.Title, site.SEO.Title)
	desc := p.Description
	if desc == "" {
		desc = site.SEO.Description
	}
	image := p.Image
	if image == "" {
		image = site.SEO.OGImage
	}
	meta := seo.Build(c.BaseURL, l, c.Resolution.Segments, title, desc, image)
	if p.OGType != "" {
		meta.OG.Type = p.OGType
	}
	if p.NoIndex {
		meta.Robots = "noindex"
	}

	ld := []any{seo.Organization(seo.SiteName, strings.TrimRight(c.BaseURL, "/"), strings.TrimRight(c.BaseURL, "/")+"/assets/logo.svg", site.Footer.Email)}
	var crumbs []nav.Crumb
	if !p.NoIndex {
		crumbs = breadcrumbs(c, p)
	}
	if len(crumbs) > 1 {
		items := make([]seo.BreadcrumbItem, 0, len(crumbs))
		for _, cr := range crumbs {
			items = append(items, seo.BreadcrumbItem{Name: cr.Label, Item: strings.TrimRight(c.BaseURL, "/") + cr.Href})
		}
		ld = append(ld, seo.BreadcrumbList(items))
	}
	ld = append(ld, p.JSONLD...)

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(l.HTMLLang()),
			g.Attr("data-theme", "system"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(meta.Title)),
				Meta(Name("description"), Content(meta.Description)),
				Meta(Name("robots"), Content(meta.Robots)),
				Link(Rel("canonical"), Href(meta.Canonical)),
				g.Map(meta.Alternates, func(a seo.Alternate) g.Node {
					return Link(Rel("alternate"), g.Attr("hreflang", a.HrefLang), Href(a.Href))
				}),
				openGraph(meta),
				Link(Rel("icon"), Href("/assets/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href("/assets/site.css")),
				Script(g.Raw(themeBootstrap)),
				analytics(c.Analytics),
				g.Map(ld, func(v any) g.Node {
					return Script(Type("application/ld+json"), g.Raw(seo.JSON(v)))
				}),
			),
			Body(
				Class("site"),
				A(Href("#main"), Class("skip-link"), g.Text(c.dict().Nav.Home)),
				header(c),
				navDrawer(c),
				g.El("main", ID("main"), Class("main"),
					g.If(len(crumbs) > 1, breadcrumbTrail(crumbs)),
					p.Main,
				),
				footer(c),
				g.If(!c.CookieConsent, cookieBanner(c)),
				Script(Src(htmxSrc), g.Attr("defer")),
				Script(Src("/assets/site.js"), g.Attr("defer")),
			),
		),
	})
}

func openGraph(m seo.Meta) g.Node {
	var nodes []g.Node
	prop := func(k, v string) {
		if v != "" {
			nodes = append(nodes, Meta(g.Attr("property", k), Content(v)))
		}
	}
	name := func(k, v string) {
		if v != "" {
			nodes = append(nodes, Meta(Name(k), Content(v)))
		}
	}
	prop("og:title", m.OG.Title)
	prop("og:description", m.OG.Description)
	prop("og:type", m.OG.Type)
	prop("og:url", m.OG.URL)
	prop("og:site_name", m.OG.SiteName)
	prop("og:locale", m.OG.Locale)
	prop("og:image", m.OG.Image)
	name("twitter:card", m.Twitter.Card)
	name("twitter:image", m.Twitter.Image)
	return g.Group(nodes)
}

func analytics(a Analytics) g.Node {
	var nodes []g.Node
	if a.GTMContainerID != "" {
		nodes = append(nodes, Script(g.Raw(fmt.Sprintf(
			`(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({"gtm.start":new Date().getTime(),event:"gtm.js"});`+
				`var f=d.getElementsByTagName(s)[0],j=d.createElement(s);j.async=true;`+
				`j.src="https://www.googletagmanager.com/gtm.js?id="+encodeURIComponent(i);f.parentNode.insertBefore(j,f);`+
				`})(window,document,"script","dataLayer",%s);`, seo.JSON(a.GTMContainerID)))))
	}
	if a.GA4MeasurementID != "" {
		nodes = append(nodes,
			Script(g.Attr("async"), Src("https://www.googletagmanager.com/gtag/js?id="+a.GA4MeasurementID)),
			Script(g.Raw(fmt.Sprintf(
				`window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}`+
					`gtag("js",new Date());gtag("config",%s,{debug_mode:%t});`, seo.JSON(a.GA4MeasurementID), a.Debug))),
		)
	}
	return g.Group(nodes)
}

func header(c Context) g.Node {
	l := c.locale()
	d := c.dict()
	items := nav.Build(c.site().Navigation, l, c.path())
	return Header(ID("site-header"), Class("header"),
		Div(Class("header__inner container"),
			A(Href(c.href("/")), Class("header__brand"),
				Span(Class("header__logo"), g.Text(seo.SiteName)),
				Span(Class("header__tagline"), g.Text(d.Nav.Tagline)),
			),
			g.El("nav", Class("header__nav"), g.Attr("aria-label", d.Nav.Menu),
				Ul(g.Map(items, func(it nav.RenderedItem) g.Node {
					return Li(navLink(it, "header__link", ""))
				})),
			),
			Div(Class("header__actions"),
				languageSwitcher(c, "header"),
				themeToggle(d, "theme-toggle"),
				A(Href(c.href("/for-brands")), Class(buttonClass(Primary)+" header__cta"), g.Text(c.site().Hero.PrimaryCTA)),
				g.El("button", ID("nav-drawer-open"), Type("button"), Class("header__menu"),
					g.Attr("data-drawer-toggle"),
					g.Attr("aria-controls", DrawerID),
					g.Attr("aria-expanded", "false"),
					g.Attr("aria-label", d.Nav.Open),
					Span(Class("header__menu-icon"), g.Attr("aria-hidden", "true")),
				),
			),
		),
	)
}

func navLink(it nav.RenderedItem, class, id string) g.Node {
	return A(g.If(id != "", ID(id)), Href(it.Href), Class(class),
		g.If(it.Active, g.Attr("aria-current", "page")),
		g.Text(it.Label),
	)
}

func languageSwitcher(c Context, prefix string) g.Node {
	d := c.dict()
	links := nav.Switcher(c.locale(), c.Resolution.Segments)
	return Div(Class("lang-switcher"), g.Attr("role", "group"), g.Attr("aria-label", d.Language),
		g.Map(links, func(ll nav.LocaleLink) g.Node {
			return A(ID(prefix+"-lang-"+ll.Locale.String()), Href(ll.Href),
				Class("lang-switcher__link"),
				g.Attr("hreflang", ll.Locale.HTMLLang()),
				g.Attr("lang", ll.Locale.HTMLLang()),
				g.If(ll.Active, g.Attr("aria-current", "true")),
				g.Text(strings.ToUpper(ll.Locale.String())),
			)
		}),
	)
}

func themeToggle(d i18n.Dictionary, id string) g.Node {
	return g.El("button", ID(id), Type("button"), Class("theme-toggle"),
		g.Attr("data-theme-toggle"),
		g.Attr("data-label-light", d.Light),
		g.Attr("data-label-dark", d.Dark),
		g.Attr("data-label-system", d.System),
		g.Attr("aria-label", d.System),
		Span(Class("theme-toggle__label"), g.Text(d.System)),
	)
}

func navDrawer(c Context) g.Node {
	d := c.dict()
	items := nav.Build(c.site().Navigation, c.locale(), c.path())
	links := make([]g.Node, 0, len(items))
	for i, it := range items {
		links = append(links, Li(navLink(it, "nav-drawer__link", fmt.Sprintf("drawer-link-%d", i))))
	}
	return g.Group([]g.Node{
		Div(Class("nav-drawer__backdrop"), g.Attr("data-drawer-backdrop"), g.Attr("hidden")),
		Div(ID(DrawerID), Class("nav-drawer"),
			g.Attr("role", "dialog"),
			g.Attr("aria-modal", "true"),
			g.Attr("aria-label", d.Nav.Menu),
			g.Attr("aria-hidden", "true"),
			Div(Class("nav-drawer__top"),
				Span(Class("nav-drawer__title"), g.Text(d.Nav.Menu)),
				g.El("button", ID("nav-drawer-close"), Type("button"), Class("nav-drawer__close"),
					g.Attr("data-drawer-toggle"),
					g.Attr("aria-controls", DrawerID),
					g.Attr("aria-expanded", "false"),
					g.Attr("aria-label", d.Nav.Close),
					g.Text("×"),
				),
			),
			Ul(Class("nav-drawer__list"), g.Group(links)),
			Div(Class("nav-drawer__footer"),
				languageSwitcher(c, "drawer"),
				themeToggle(d, "drawer-theme-toggle"),
				A(ID("drawer-cta"), Href(c.href("/for-brands")), Class(buttonClass(Primary)+" nav-drawer__link"), g.Text(c.site().Hero.PrimaryCTA)),
			),
		),
	})
}

func breadcrumbs(c Context, p Page) []nav.Crumb {
	l := c.locale()
	labels := nav.Labels(c.site().Navigation, l)
	labels["legal/"+string(legal.Privacy)] = c.dict().Footer.Privacy
	labels["legal/"+string(legal.Terms)] = c.dict().Footer.Terms
	crumbs := nav.Breadcrumbs(l, c.Resolution.Segments, c.dict().Nav.Home, labels)
	if p.Crumb != "" && len(crumbs) > 1 {
		crumbs[len(crumbs)-1].Label = p.Crumb
	}
	return crumbs
}

func breadcrumbTrail(crumbs []nav.Crumb) g.Node {
	return g.El("nav", Class("breadcrumbs container"), g.Attr("aria-label", "breadcrumb"),
		g.El("ol", g.Map(crumbs, func(cr nav.Crumb) g.Node {
			if cr.Active {
				return Li(Span(g.Attr("aria-current", "page"), g.Text(cr.Label)))
			}
			return Li(A(Href(cr.Href), g.Text(cr.Label)))
		})),
	)
}

func footer(c Context) g.Node {
	site := c.site()
	d := c.dict()
	items := nav.Build(site.Navigation, c.locale(), c.path())
	return Footer(ID("site-footer"), Class("footer"),
		Div(Class("footer__grid container"),
			Div(Class("footer__col"),
				P(Class("footer__cta"), g.Text(site.Footer.CTA)),
				ButtonLink(c.href("/contact"), Outline, g.Text(d.Nav.ContactUs)),
			),
			Div(Class("footer__col"),
				H3(g.Text(d.Nav.Menu)),
				Ul(g.Map(items, func(it nav.RenderedItem) g.Node {
					return Li(navLink(it, "footer__link", ""))
				})),
			),
			Div(Class("footer__col"),
				H3(g.Text(d.Footer.Contact)),
				P(g.Text(site.Footer.Address)),
				A(Href("mailto:"+site.Footer.Email), g.Text(site.Footer.Email)),
			),
			Div(Class("footer__col"),
				H3(g.Text(d.Nav.Policies)),
				Ul(
					Li(A(Href(c.href("/legal/privacy")), g.Text(d.Footer.Privacy))),
					Li(A(Href(c.href("/legal/terms")), g.Text(d.Footer.Terms))),
				),
			),
		),
		Div(Class("footer__bottom container"),
			P(Class("footer__copyright"),
				g.Textf("%s%d %s. %s", site.Footer.Copyright, c.year(), seo.SiteName, d.Footer.Rights),
			),
			Ul(Class("footer__social"),
				g.Map(site.Footer.Links, func(link content.Link) g.Node {
					return Li(A(Href(link.Href), Rel("noopener noreferrer"), g.Attr("target", "_blank"), g.Text(link.Label)))
				}),
			),
		),
	)
}

func cookieBanner(c Context) g.Node {
	d := c.dict()
	return Div(ID("cookie-banner"), Class("cookie-banner"),
		g.Attr("role", "region"),
		g.Attr("aria-label", d.Cookie.Message),
		g.Attr("data-cookie-banner"),
		P(g.Text(d.Cookie.Message)),
		ActionButton(Primary, ID("cookie-accept"), Type("button"),
			g.Attr("data-cookie-accept"),
			g.Attr("data-cookie-name", ConsentCookie),
			g.Text(d.Cookie.Accept),
		),
	)
}
