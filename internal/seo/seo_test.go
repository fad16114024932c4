package seo

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/development-sample/eceta.com/internal/i18n"
)

func TestBuildAlternates(t *testing.T) {
	m := Build("https://eceta.com/", i18n.En, []string{"blog", "launch-announcement"}, "Launch", "desc", "/assets/og.png")
	require.Equal(t, "https://eceta.com/en/blog/launch-announcement", m.Canonical)
	require.Equal(t, []Alternate{
		{HrefLang: "ja-JP", Href: "https://eceta.com/ja/blog/launch-announcement"},
		{HrefLang: "en-US", Href: "https://eceta.com/en/blog/launch-announcement"},
		{HrefLang: "x-default", Href: "https://eceta.com/ja/blog/launch-announcement"},
	}, m.Alternates)
	require.Equal(t, "https://eceta.com/assets/og.png", m.OG.Image)
	require.Equal(t, "en_US", m.OG.Locale)
	require.Equal(t, "summary_large_image", m.Twitter.Card)
}

func TestPathForHome(t *testing.T) {
	require.Equal(t, "/ja", Path(i18n.Ja, nil))
	require.Equal(t, "/en/legal/terms", Path(i18n.En, []string{"legal", "terms"}))
}

func TestArticle(t *testing.T) {
	got := Article(ArticleInput{
		Headline:      "Launch",
		URL:           "https://eceta.com/en/blog/launch",
		Description:   "We launched",
		DatePublished: time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC),
		InLanguage:    "en-US",
	})
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(JSON(got)), &decoded))
	require.Equal(t, "Article", decoded["@type"])
	require.Equal(t, "2025-03-18", decoded["datePublished"])
	require.Equal(t, "We launched", decoded["description"])
	require.NotContains(t, decoded, "keywords")
}

func TestJSONEscapesScriptClose(t *testing.T) {
	require.NotContains(t, JSON(map[string]string{"x": "</script>"}), "</script>")
}

func TestWriteSitemap(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSitemap(&buf, "https://eceta.com", []SitemapEntry{
		{Locale: i18n.Ja},
		{Locale: i18n.En, Segments: []string{"product"}, LastMod: time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<?xml"))
	require.Contains(t, out, "<loc>https://eceta.com/ja</loc>")
	require.Contains(t, out, "<loc>https://eceta.com/en/product</loc>")
	require.Contains(t, out, "<lastmod>2025-02-04</lastmod>")
	require.Contains(t, out, `hreflang="x-default" href="https://eceta.com/ja/product"`)
}
