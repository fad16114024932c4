package blog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/development-sample/eceta.com/internal/i18n"
)

func TestEmbeddedPostsListNewestFirst(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	for _, l := range i18n.Supported() {
		posts, err := s.List(context.Background(), l)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		require.Equal(t, "launch-announcement", posts[0].Slug)
		require.True(t, posts[0].FrontMatter.Date.After(posts[1].FrontMatter.Date))
		for _, p := range posts {
			require.Equal(t, l, p.Locale)
			require.NotEmpty(t, p.FrontMatter.Excerpt)
			require.GreaterOrEqual(t, p.ReadingMinutes, 1)
		}
	}
}

func TestGetRendersMarkdown(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	post, err := s.Get(context.Background(), "why-mobile-first", i18n.En)
	require.NoError(t, err)
	require.Equal(t, "Why metaverse commerce must be mobile-first", post.FrontMatter.Title)
	require.Contains(t, post.HTML, "<h2")
	require.Contains(t, post.HTML, "<blockquote>")
	require.Equal(t, []string{"vision", "market"}, post.FrontMatter.Tags)
}

func TestGetUnknownSlug(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	for _, slug := range []string{"missing", "../ja/why-mobile-first", "", "Launch-Announcement"} {
		_, err := s.Get(context.Background(), slug, i18n.Ja)
		require.True(t, errors.Is(err, ErrNotFound), "slug %q", slug)
	}
}

func TestSlugIsScopedToLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"en/only-english.md": {Data: []byte("---\ntitle: Only English\ndate: 2025-01-01\n---\nHello")},
	}
	s, err := New(fsys)
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "only-english", i18n.En)
	require.NoError(t, err)
	_, err = s.Get(context.Background(), "only-english", i18n.Ja)
	require.ErrorIs(t, err, ErrNotFound)

	posts, err := s.List(context.Background(), i18n.Ja)
	require.NoError(t, err)
	require.Empty(t, posts)
}

func TestRenderedHTMLIsSanitised(t *testing.T) {
	fsys := fstest.MapFS{
		"en/xss.md": {Data: []byte("---\ntitle: Hostile\ndate: 2025-01-01\n---\n<script>alert(1)</script>\n\n[x](javascript:alert(1))\n\n[ok](https://eceta.com)")},
	}
	s, err := New(fsys)
	require.NoError(t, err)

	post, err := s.Get(context.Background(), "xss", i18n.En)
	require.NoError(t, err)
	require.NotContains(t, post.HTML, "<script")
	require.NotContains(t, post.HTML, "javascript:")
	require.Contains(t, post.HTML, `rel="nofollow"`)
}

func TestNewRejectsInvalidFrontMatter(t *testing.T) {
	cases := map[string]string{
		"missing title": "---\ndate: 2025-01-01\n---\nbody",
		"bad date":      "---\ntitle: x\ndate: someday\n---\nbody",
		"bad yaml":      "---\ntitle: [\n---\nbody",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(fstest.MapFS{"ja/post.md": {Data: []byte(doc)}})
			require.Error(t, err)
		})
	}
}

func TestReadingMinutes(t *testing.T) {
	require.Equal(t, 1, ReadingMinutes("short", i18n.En))
	require.Equal(t, 2, ReadingMinutes(strings.Repeat("word ", 201), i18n.En))
	require.Equal(t, 1, ReadingMinutes(strings.Repeat("あ", 500), i18n.Ja))
	require.Equal(t, 2, ReadingMinutes(strings.Repeat("あ", 501), i18n.Ja))
}
