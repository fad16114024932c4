package views

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/development-sample/eceta.com/internal/blog"
	"github.com/development-sample/eceta.com/internal/content"
	"github.com/development-sample/eceta.com/internal/drawer"
	"github.com/development-sample/eceta.com/internal/forms"
	"github.com/development-sample/eceta.com/internal/i18n"
	"github.com/development-sample/eceta.com/internal/router"
)

const testBaseURL = "https://eceta.com"

type fixture struct {
	router *router.Router
	dict   *i18n.Bundle
	posts  *blog.Store
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	c, err := content.New()
	require.NoError(t, err)
	d, err := i18n.Load(i18n.Embedded(), i18n.Default)
	require.NoError(t, err)
	b, err := blog.New(nil)
	require.NoError(t, err)
	return fixture{
		router: router.New(c, d, b, router.WithChrome(router.NeedCopy|router.NeedDictionary)),
		dict:   d,
		posts:  b,
	}
}

func (f fixture) context(t *testing.T, l i18n.Locale, segments ...string) Context {
	t.Helper()
	res, err := f.router.Resolve(context.Background(), l, segments)
	require.NoError(t, err)
	return Context{
		Resolution: res,
		BaseURL:    testBaseURL,
		CSRFToken:  "token-123",
		Now:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func render(t *testing.T, c Context) (*goquery.Document, string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, c))
	raw := buf.String()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	require.NoError(t, err)
	return doc, raw
}

func TestEveryRouteHasAView(t *testing.T) {
	for _, r := range router.Table() {
		_, ok := Lookup(r.Tag)
		require.True(t, ok, "route %s", r.Tag)
	}
}

func TestStaticPathsRender(t *testing.T) {
	f := newFixture(t)
	for _, l := range i18n.Supported() {
		paths, err := f.router.StaticPaths(context.Background(), l)
		require.NoError(t, err)
		for _, segs := range paths {
			doc, _ := render(t, f.context(t, l, segs...))
			name := l.String() + "/" + strings.Join(segs, "/")

			lang, _ := doc.Find("html").Attr("lang")
			require.Equal(t, l.HTMLLang(), lang, name)
			require.Equal(t, 1, doc.Find("h1").Length(), name)
			require.Equal(t, 3, doc.Find(`link[rel="alternate"][hreflang]`).Length(), name)
			require.NotEmpty(t, strings.TrimSpace(doc.Find("title").Text()), name)

			var sawOrg bool
			doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
				var v map[string]any
				require.NoError(t, json.Unmarshal([]byte(s.Text()), &v), name)
				if v["@type"] == "Organization" {
					sawOrg = true
				}
			})
			require.True(t, sawOrg, name)
		}
	}
}

func TestRendersFormMatchesMarkup(t *testing.T) {
	f := newFixture(t)
	paths, err := f.router.StaticPaths(context.Background(), i18n.En)
	require.NoError(t, err)
	for _, segs := range paths {
		c := f.context(t, i18n.En, segs...)
		doc, _ := render(t, c)
		for _, k := range forms.Kinds() {
			want := 0
			if RendersForm(c.Resolution.Tag, k) {
				want = 1
			}
			require.Equal(t, want, doc.Find("#"+FormID(k)).Length(), "%s on /%s", k, strings.Join(segs, "/"))
		}
	}
}

func TestHomeHeadingMentionsBrand(t *testing.T) {
	f := newFixture(t)
	doc, _ := render(t, f.context(t, i18n.Ja))
	require.Contains(t, doc.Find("h1").Text(), "ECeta")
	require.Equal(t, 0, doc.Find(".breadcrumbs").Length())

	en, ok := doc.Find("#header-lang-en").Attr("href")
	require.True(t, ok)
	require.Equal(t, "/en", en)
	require.Equal(t, "EN", doc.Find("#header-lang-en").Text())
	require.Contains(t, doc.Find(".footer__copyright").Text(), "2025 ECeta.")

	fade := doc.Find(`[data-animate="fade"]`)
	require.Positive(t, fade.Length())
	threshold, _ := fade.First().Attr("data-reveal-threshold")
	require.Equal(t, "0.24", threshold)
	margin, _ := fade.First().Attr("data-reveal-margin")
	require.Equal(t, "0px 0px -10% 0px", margin)
}

func TestForBrandsPricingAndFAQ(t *testing.T) {
	f := newFixture(t)
	c := f.context(t, i18n.Ja, "for-brands")
	doc, _ := render(t, c)

	var names []string
	doc.Find(".plan .card__title").Each(func(_ int, s *goquery.Selection) {
		names = append(names, s.Text())
	})
	require.Equal(t, []string{"スターター", "グロース", "エンタープライズ"}, names)
	require.Equal(t, "¥33,000", doc.Find("#plan-"+c.Resolution.Data.Pricing.Plans[0].Slug+" .plan__amount").Text())
	items := doc.Find("#faq-list details")
	require.NotEmpty(t, c.Resolution.Data.FAQ)
	require.Equal(t, len(c.Resolution.Data.FAQ), items.Length())
	for i, qa := range c.Resolution.Data.FAQ {
		item := items.Eq(i)
		require.Equal(t, qa.Question, strings.TrimSpace(item.Find("summary").Text()), "faq %d", i)
		require.Equal(t, qa.Answer, strings.TrimSpace(item.Find(".accordion__content").Text()), "faq %d", i)
	}

	c.TaxExcluded = true
	doc, _ = render(t, c)
	require.Equal(t, "¥30,000", doc.Find(".plan__amount").First().Text())
	checked, _ := doc.Find("#tax-toggle").Attr("aria-checked")
	require.Equal(t, "false", checked)
}

func TestBrandFormRendersFieldErrors(t *testing.T) {
	f := newFixture(t)
	c := f.context(t, i18n.Ja, "for-brands")
	c.Forms.Brand = forms.State[forms.BrandApplication]{
		Values: forms.BrandApplication{Company: "ECeta", Email: "nope"},
		Errors: forms.FieldErrors{"name": "required", "email": "email"},
		Status: forms.StatusIdle,
	}
	doc, _ := render(t, c)
	form := doc.Find("#" + FormID(forms.KindBrand))
	require.Equal(t, 1, form.Length())

	action, _ := form.Attr("action")
	require.Equal(t, "/ja/forms/brand", action)
	token, _ := form.Find(`input[name="_csrf"]`).Attr("value")
	require.Equal(t, "token-123", token)
	origin, _ := form.Find(`input[name="_origin"]`).Attr("value")
	require.Equal(t, "/ja/for-brands", origin)

	require.Equal(t, "必須項目です", form.Find("#brand-name-error").Text())
	require.Equal(t, "メールアドレスの形式が正しくありません", form.Find("#brand-email-error").Text())
	company, _ := form.Find("#brand-company").Attr("value")
	require.Equal(t, "ECeta", company)
	require.Equal(t, 0, form.Find("#brand-message-error").Length())
	require.Equal(t, "送信", strings.TrimSpace(form.Find(`button[type="submit"]`).Text()))
}

func TestFormStatusMessages(t *testing.T) {
	f := newFixture(t)
	c := f.context(t, i18n.En, "contact")
	c.Forms.Contact.Status = forms.StatusError
	c.Forms.Newsletter.Status = forms.StatusSuccess
	doc, _ := render(t, c)
	d := f.dict.MustDictionary(i18n.En)
	require.Equal(t, d.Contact.Error, doc.Find("#contact-form .form__status").Text())
	require.Equal(t, d.Newsletter.Success, doc.Find("#newsletter-form .form__status").Text())

	c.Forms.Contact.Status = forms.StatusSubmitting
	doc, _ = render(t, c)
	btn := doc.Find(`#contact-form button[type="submit"]`)
	_, disabled := btn.Attr("disabled")
	require.True(t, disabled)
	require.Equal(t, d.Form.Sending, btn.Text())
}

func TestBlogPostMatchesFrontMatter(t *testing.T) {
	f := newFixture(t)
	posts, err := f.posts.List(context.Background(), i18n.Ja)
	require.NoError(t, err)
	require.NotEmpty(t, posts)
	post := posts[0]

	doc, _ := render(t, f.context(t, i18n.Ja, "blog", post.Slug))
	require.Equal(t, post.FrontMatter.Title, doc.Find("article#post h1").Text())
	dt, _ := doc.Find("article#post time").Attr("datetime")
	require.Equal(t, post.FrontMatter.Date.Format("2006-01-02"), dt)
	require.Equal(t, post.FrontMatter.Date.Format("2006/1/2"), doc.Find("article#post time").Text())
	og, _ := doc.Find(`meta[property="og:type"]`).Attr("content")
	require.Equal(t, "article", og)

	var article map[string]any
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var v map[string]any
		require.NoError(t, json.Unmarshal([]byte(s.Text()), &v))
		if v["@type"] == "Article" {
			article = v
		}
	})
	require.NotNil(t, article)
	require.Equal(t, post.FrontMatter.Title, article["headline"])
	require.Equal(t, testBaseURL+"/ja/blog/"+post.Slug, article["url"])

	crumb := doc.Find(`.breadcrumbs [aria-current="page"]`).Text()
	require.Equal(t, post.FrontMatter.Title, crumb)
}

func TestBlogIndexListsPosts(t *testing.T) {
	f := newFixture(t)
	c := f.context(t, i18n.En, "blog")
	doc, _ := render(t, c)
	require.Equal(t, len(c.Resolution.Data.Posts), doc.Find(".post-summary").Length())
	first := c.Resolution.Data.Posts[0]
	require.Equal(t, "/en/blog/"+first.Slug, doc.Find(".post-summary__title a").First().AttrOr("href", ""))
	require.Contains(t, doc.Find(".post-meta__reading").First().Text(), "min read")
	require.Equal(t, 1, doc.Find("#newsletter-form").Length())
}

func TestLegalPageShowsAddress(t *testing.T) {
	f := newFixture(t)
	c := f.context(t, i18n.En, "legal", "terms")
	doc, _ := render(t, c)
	require.Equal(t, c.Resolution.Data.Legal.Title, doc.Find("h1").Text())
	require.Equal(t, c.Resolution.Data.Copy.Footer.Address, doc.Find(".legal__address").Text())
}

func TestDrawerMarkupIsFocusable(t *testing.T) {
	f := newFixture(t)
	_, raw := render(t, f.context(t, i18n.En, "product"))
	ids, err := drawer.Focusables(strings.NewReader(raw), DrawerID)
	require.NoError(t, err)
	require.Equal(t, "nav-drawer-close", ids[0])
	require.Equal(t, "drawer-cta", ids[len(ids)-1])
	require.Contains(t, ids, "drawer-link-0")
	require.Contains(t, ids, "drawer-theme-toggle")
}

func TestCookieBannerRespectsConsent(t *testing.T) {
	f := newFixture(t)
	c := f.context(t, i18n.En, "team")
	doc, _ := render(t, c)
	require.Equal(t, 1, doc.Find("#cookie-banner").Length())

	c.CookieConsent = true
	doc, _ = render(t, c)
	require.Equal(t, 0, doc.Find("#cookie-banner").Length())
}

func TestAnalyticsTags(t *testing.T) {
	f := newFixture(t)
	c := f.context(t, i18n.En, "market")
	_, raw := render(t, c)
	require.NotContains(t, raw, "googletagmanager")

	c.Analytics = Analytics{GA4MeasurementID: "G-TEST123"}
	_, raw = render(t, c)
	require.Contains(t, raw, "gtag/js?id=G-TEST123")
	require.Contains(t, raw, `gtag("config","G-TEST123"`)
}

func TestStatusPages(t *testing.T) {
	f := newFixture(t)
	d := f.dict.MustDictionary(i18n.Ja)

	var buf bytes.Buffer
	bare := Context{Resolution: router.Resolution{Locale: i18n.Ja, Data: router.Data{Dictionary: d}}}
	require.NoError(t, Unavailable(bare).Render(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	require.Equal(t, d.Unavailable.Title, doc.Find("h1").Text())
	require.Equal(t, 0, doc.Find("#site-header").Length())

	full := f.context(t, i18n.Ja)
	full.Resolution.Segments = []string{"missing"}
	buf.Reset()
	require.NoError(t, NotFound(full).Render(&buf))
	doc, err = goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	require.Equal(t, d.NotFound.Title, doc.Find("h1").Text())
	require.Equal(t, "noindex", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
	require.Equal(t, "/ja", doc.Find(".status-page a").AttrOr("href", ""))
}

func TestFormFragmentIsStandalone(t *testing.T) {
	f := newFixture(t)
	c := f.context(t, i18n.En, "contact")
	var buf bytes.Buffer
	require.NoError(t, FormFragment(c, forms.KindNewsletter).Render(&buf))
	require.True(t, strings.HasPrefix(buf.String(), `<form id="newsletter-form"`))
}
