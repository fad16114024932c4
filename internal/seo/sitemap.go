package seo

import (
	"encoding/xml"
	"io"
	"time"

	"github.com/development-sample/eceta.com/internal/i18n"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string        `xml:"loc"`
	LastMod    string        `xml:"lastmod,omitempty"`
	Alternates []sitemapLink `xml:"xhtml:link"`
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	HrefLang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// SitemapEntry is one page of one locale.
type SitemapEntry struct {
	Locale   i18n.Locale
	Segments []string
	LastMod  time.Time
}

// WriteSitemap writes a sitemap with hreflang alternates for every entry.
func WriteSitemap(w io.Writer, baseURL string, entries []SitemapEntry) error {
	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
		URLs:  make([]sitemapURL, 0, len(entries)),
	}
	for _, e := range entries {
		u := sitemapURL{Loc: AbsURL(baseURL, e.Locale, e.Segments)}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.UTC().Format("2006-01-02")
		}
		for _, alt := range Build(baseURL, e.Locale, e.Segments, "", "", "").Alternates {
			u.Alternates = append(u.Alternates, sitemapLink{Rel: "alternate", HrefLang: alt.HrefLang, Href: alt.Href})
		}
		set.URLs = append(set.URLs, u)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return err
	}
	return enc.Flush()
}
