package seo

import (
	"strings"

	"github.com/development-sample/eceta.com/internal/i18n"
)

const SiteName = "ECeta"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
	Locale      string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Alternate is one hreflang link.
type Alternate struct {
	HrefLang string
	Href     string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	Alternates  []Alternate
	// JSONLD holds serialized structured data blocks.
	JSONLD []string
}

// Path returns the site-relative path of a locale-prefixed page.
func Path(l i18n.Locale, segments []string) string {
	p := "/" + l.String()
	for _, s := range segments {
		if s != "" {
			p += "/" + s
		}
	}
	return p
}

// AbsURL joins the base URL and the page path.
func AbsURL(baseURL string, l i18n.Locale, segments []string) string {
	return strings.TrimRight(baseURL, "/") + Path(l, segments)
}

// Build assembles page metadata: canonical URL, hreflang alternates for every locale plus
// x-default, OpenGraph and Twitter cards.
func Build(baseURL string, l i18n.Locale, segments []string, title, description, image string) Meta {
	canonical := AbsURL(baseURL, l, segments)
	if image != "" && strings.HasPrefix(image, "/") {
		image = strings.TrimRight(baseURL, "/") + image
	}
	alts := make([]Alternate, 0, len(i18n.Supported())+1)
	for _, alt := range i18n.Supported() {
		alts = append(alts, Alternate{HrefLang: alt.HTMLLang(), Href: AbsURL(baseURL, alt, segments)})
	}
	alts = append(alts, Alternate{HrefLang: "x-default", Href: AbsURL(baseURL, i18n.Default, segments)})

	card := "summary"
	if image != "" {
		card = "summary_large_image"
	}
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		Robots:      "index,follow",
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    SiteName,
			Locale:      strings.ReplaceAll(l.HTMLLang(), "-", "_"),
		},
		Twitter:    Twitter{Card: card, Image: image},
		Alternates: alts,
	}
}

// Title appends the site name unless the page title already is the site title.
func Title(page, site string) string {
	page = strings.TrimSpace(page)
	if page == "" || page == site {
		return site
	}
	return page + " | " + SiteName
}
