package nav

import (
	"strings"

	"github.com/development-sample/eceta.com/internal/content"
	"github.com/development-sample/eceta.com/internal/i18n"
)

// RenderedItem is a view model for navigation links.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// LocaleLink is one entry of the language switcher.
type LocaleLink struct {
	Locale i18n.Locale
	Href   string
	Active bool
}

// Build renders the Site Copy navigation for the locale with active state given the current
// path, e.g. "/ja/blog/launch".
func Build(links []content.Link, l i18n.Locale, currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(links))
	for _, link := range links {
		href := content.Href(link.Href, l)
		items = append(items, RenderedItem{
			Href:   href,
			Label:  link.Label,
			Active: isActive(href, currentPath, l),
		})
	}
	return items
}

func isActive(itemPath, currentPath string, l i18n.Locale) bool {
	home := "/" + l.String()
	if itemPath == home {
		return currentPath == home
	}
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

// Switcher maps the current locale-relative segments onto every supported locale.
func Switcher(current i18n.Locale, segments []string) []LocaleLink {
	out := make([]LocaleLink, 0, len(i18n.Supported()))
	for _, l := range i18n.Supported() {
		out = append(out, LocaleLink{Locale: l, Href: localePath(l, segments), Active: l == current})
	}
	return out
}

// Breadcrumbs builds breadcrumb entries for locale-relative segments. labels maps a first
// segment to its navigation label; unknown segments are prettified.
func Breadcrumbs(l i18n.Locale, segments []string, home string, labels map[string]string) []Crumb {
	crumbs := []Crumb{{Href: localePath(l, nil), Label: home, Active: len(segments) == 0}}
	for i := range segments {
		label := labels[strings.Join(segments[:i+1], "/")]
		if label == "" {
			label = titleFromSegment(segments[i])
		}
		crumbs = append(crumbs, Crumb{
			Href:   localePath(l, segments[:i+1]),
			Label:  label,
			Active: i == len(segments)-1,
		})
	}
	return crumbs
}

// Labels indexes navigation labels by their locale-relative path, e.g. "for-brands".
func Labels(links []content.Link, l i18n.Locale) map[string]string {
	prefix := "/" + l.String() + "/"
	out := make(map[string]string, len(links))
	for _, link := range links {
		href := content.Href(link.Href, l)
		if rel, ok := strings.CutPrefix(href, prefix); ok && rel != "" {
			out[rel] = link.Label
		}
	}
	return out
}

func localePath(l i18n.Locale, segments []string) string {
	p := "/" + l.String()
	if len(segments) > 0 {
		p += "/" + strings.Join(segments, "/")
	}
	return p
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	r[0] = toUpper(r[0])
	return string(r)
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
