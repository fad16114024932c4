package views

import (
	"time"

	"github.com/development-sample/eceta.com/internal/content"
	"github.com/development-sample/eceta.com/internal/forms"
	"github.com/development-sample/eceta.com/internal/i18n"
	"github.com/development-sample/eceta.com/internal/nav"
	"github.com/development-sample/eceta.com/internal/router"
	"github.com/development-sample/eceta.com/internal/seo"
)

// Analytics carries client instrumentation IDs. Empty IDs render no tags.
type Analytics struct {
	GA4MeasurementID string
	GTMContainerID   string
	Debug            bool
}

// FormStates holds the form snapshots rendered on the page.
type FormStates struct {
	Brand      forms.State[forms.BrandApplication]
	Contact    forms.State[forms.Contact]
	Newsletter forms.State[forms.Newsletter]
}

// Context is everything a view needs to render one response. Resolution.Data must carry
// Site Copy and the dictionary for the layout chrome.
type Context struct {
	Resolution    router.Resolution
	BaseURL       string
	CSRFToken     string
	CookieConsent bool
	// TaxExcluded switches the pricing table to pre-tax prices.
	TaxExcluded bool
	Analytics   Analytics
	Forms       FormStates
	// Now stamps the footer year; zero means the wall clock.
	Now time.Time
}

func (c Context) year() int {
	if c.Now.IsZero() {
		return time.Now().Year()
	}
	return c.Now.Year()
}

func (c Context) locale() i18n.Locale {
	if c.Resolution.Locale == "" {
		return i18n.Default
	}
	return c.Resolution.Locale
}

func (c Context) site() content.SiteCopy { return c.Resolution.Data.Copy }

func (c Context) dict() i18n.Dictionary { return c.Resolution.Data.Dictionary }

// path is the current locale-prefixed path, e.g. "/en/blog".
func (c Context) path() string { return seo.Path(c.locale(), c.Resolution.Segments) }

// href localises an absolute site path such as "/contact".
func (c Context) href(p string) string {
	if p == "" || p == "/" {
		return "/" + c.locale().String()
	}
	return "/" + c.locale().String() + p
}

// navLabel returns the navigation label for a locale-relative path such as "vision".
func (c Context) navLabel(rel string) string {
	if label := nav.Labels(c.site().Navigation, c.locale())[rel]; label != "" {
		return label
	}
	return rel
}
