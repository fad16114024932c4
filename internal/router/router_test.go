package router

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/development-sample/eceta.com/internal/blog"
	"github.com/development-sample/eceta.com/internal/content"
	"github.com/development-sample/eceta.com/internal/i18n"
)

func newTestRouter(t *testing.T, opts ...Option) *Router {
	t.Helper()
	c, err := content.New()
	require.NoError(t, err)
	d, err := i18n.Load(i18n.Embedded(), i18n.Default)
	require.NoError(t, err)
	b, err := blog.New(nil)
	require.NoError(t, err)
	return New(c, d, b, opts...)
}

var basePaths = [][]string{
	{}, {"product"}, {"for-brands"}, {"market"}, {"press"}, {"team"}, {"vision"},
	{"roadmap"}, {"contact"}, {"blog"}, {"legal", "privacy"}, {"legal", "terms"},
}

func TestBasePathsResolveForEveryLocale(t *testing.T) {
	r := newTestRouter(t)
	for _, l := range i18n.Supported() {
		for _, p := range basePaths {
			res, err := r.Resolve(context.Background(), l, p)
			require.NoError(t, err, "%s /%s", l, Path(p))
			require.Equal(t, l, res.Locale)
		}
	}
}

func TestUnknownPathsAreNotFound(t *testing.T) {
	r := newTestRouter(t)
	cases := [][]string{
		{"pricing"}, {"Product"}, {"product", "extra"}, {"legal"}, {"legal", "cookies"},
		{"legal", "privacy", "v2"}, {"blog", ""}, {"blog", "a", "b"}, {""}, {"for-brands", "faq"},
		{"ja"}, {"en", "product"}, {"contact-us"}, {"products"}, {".."},
	}
	for _, l := range i18n.Supported() {
		for _, segs := range cases {
			_, err := r.Resolve(context.Background(), l, segs)
			require.ErrorIs(t, err, ErrNotFound, "%s %q", l, segs)
		}
	}
}

func TestTableIsExplicit(t *testing.T) {
	tags := map[Tag]bool{}
	for _, route := range Table() {
		require.False(t, tags[route.Tag], "duplicate tag %s", route.Tag)
		tags[route.Tag] = true
	}
	require.Len(t, tags, 13)

	routes := Table()
	routes[1].Pattern[0] = "mutated"
	_, _, ok := Match([]string{"product"})
	require.True(t, ok, "Table must return a copy")
}

func TestBlogPostMatchesFrontMatter(t *testing.T) {
	r := newTestRouter(t)
	b, err := blog.New(nil)
	require.NoError(t, err)

	for _, l := range i18n.Supported() {
		posts, err := b.List(context.Background(), l)
		require.NoError(t, err)
		for _, want := range posts {
			res, err := r.Resolve(context.Background(), l, []string{"blog", want.Slug})
			require.NoError(t, err)
			require.Equal(t, BlogPost, res.Tag)
			require.Equal(t, want.Slug, res.Slug)
			require.Equal(t, want.FrontMatter.Title, res.Data.Post.FrontMatter.Title)
			require.True(t, want.FrontMatter.Date.Equal(res.Data.Post.FrontMatter.Date))
			require.Equal(t, want.FrontMatter.Excerpt, res.Data.Post.FrontMatter.Excerpt)
		}
		_, err = r.Resolve(context.Background(), l, []string{"blog", "no-such-post"})
		require.ErrorIs(t, err, ErrNotFound)
		var fe *FetchError
		require.False(t, errors.As(err, &fe), "missing post is not a fetch failure")
	}
}

func TestForBrandsFetchesEverything(t *testing.T) {
	r := newTestRouter(t)
	res, err := r.Resolve(context.Background(), i18n.Ja, []string{"for-brands"})
	require.NoError(t, err)
	require.Equal(t, ForBrands, res.Tag)
	require.True(t, res.Needs.Has(NeedCopy|NeedPricing|NeedFAQ|NeedDictionary))

	names := []string{}
	for _, p := range res.Data.Pricing.Plans {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"スターター", "グロース", "エンタープライズ"}, names)
	require.Len(t, res.Data.FAQ, 4)
	require.Equal(t, "必須項目です", res.Data.Dictionary.Validation.Required)
	require.NotEmpty(t, res.Data.Copy.ForBrands.Hero.Title)
}

func TestFetchFailureIsNotNotFound(t *testing.T) {
	r := newTestRouter(t)
	failing := &stubContent{ContentSource: r.content, pricingErr: errors.New("pricing service unavailable")}
	r = New(failing, r.dict, r.blog)

	res, err := r.Resolve(context.Background(), i18n.Ja, []string{"for-brands"})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "pricing", fe.Source)
	require.Empty(t, res.Tag, "no partial resolution on failure")

	// routes that do not need pricing are unaffected
	_, err = r.Resolve(context.Background(), i18n.Ja, []string{"product"})
	require.NoError(t, err)
}

func TestFetchesRunConcurrently(t *testing.T) {
	r := newTestRouter(t)
	barrier := newBarrier(3)
	r = New(&stubContent{ContentSource: r.content, barrier: barrier}, r.dict, r.blog)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := r.Resolve(ctx, i18n.En, []string{"for-brands"})
	require.NoError(t, err, "copy, pricing and faq must be in flight at the same time")
}

func TestLegalNeedsNoFetch(t *testing.T) {
	broken := &stubContent{copyErr: errors.New("down"), pricingErr: errors.New("down")}
	r := New(broken, nil, nil)

	res, err := r.Resolve(context.Background(), i18n.Ja, []string{"legal", "privacy"})
	require.NoError(t, err)
	require.Equal(t, LegalPrivacy, res.Tag)
	require.Equal(t, "プライバシーポリシー", res.Data.Legal.Title)

	res, err = r.Resolve(context.Background(), i18n.En, []string{"legal", "terms"})
	require.NoError(t, err)
	require.Equal(t, "Terms of Service", res.Data.Legal.Title)

	_, err = r.Resolve(context.Background(), i18n.En, []string{"product"})
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "copy", fe.Source)
}

func TestWithChromeAddsLayoutNeeds(t *testing.T) {
	r := newTestRouter(t, WithChrome(NeedCopy|NeedDictionary))
	res, err := r.Resolve(context.Background(), i18n.En, []string{"contact"})
	require.NoError(t, err)
	require.True(t, res.Needs.Has(NeedCopy|NeedDictionary))
	require.NotEmpty(t, res.Data.Copy.Contact.Headline)

	res, err = r.Resolve(context.Background(), i18n.En, []string{"legal", "terms"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Data.Dictionary.Footer.Terms)
}

func TestStaticPathsResolve(t *testing.T) {
	r := newTestRouter(t)
	for _, l := range i18n.Supported() {
		paths, err := r.StaticPaths(context.Background(), l)
		require.NoError(t, err)
		require.Len(t, paths, len(basePaths)+2)
		for _, p := range paths {
			_, err := r.Resolve(context.Background(), l, p)
			require.NoError(t, err, "%s /%s", l, Path(p))
		}
	}
}

func TestNeedString(t *testing.T) {
	require.Equal(t, "none", Need(0).String())
	require.Equal(t, "copy+faq", (NeedCopy | NeedFAQ).String())
}

type stubContent struct {
	ContentSource
	copyErr    error
	pricingErr error
	barrier    *barrier
}

func (s *stubContent) SiteCopy(ctx context.Context, l i18n.Locale) (content.SiteCopy, error) {
	if err := s.barrier.wait(ctx); err != nil {
		return content.SiteCopy{}, err
	}
	if s.copyErr != nil {
		return content.SiteCopy{}, s.copyErr
	}
	return s.ContentSource.SiteCopy(ctx, l)
}

func (s *stubContent) Pricing(ctx context.Context, l i18n.Locale) (content.Pricing, error) {
	if err := s.barrier.wait(ctx); err != nil {
		return content.Pricing{}, err
	}
	if s.pricingErr != nil {
		return content.Pricing{}, s.pricingErr
	}
	return s.ContentSource.Pricing(ctx, l)
}

func (s *stubContent) FAQ(ctx context.Context, l i18n.Locale) ([]content.FAQItem, error) {
	if err := s.barrier.wait(ctx); err != nil {
		return nil, err
	}
	return s.ContentSource.FAQ(ctx, l)
}

// barrier releases waiters once n of them have arrived.
type barrier struct {
	mu      sync.Mutex
	n       int
	release chan struct{}
}

func newBarrier(n int) *barrier {
	return &barrier{n: n, release: make(chan struct{})}
}

func (b *barrier) wait(ctx context.Context) error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	b.n--
	if b.n == 0 {
		close(b.release)
	}
	b.mu.Unlock()
	select {
	case <-b.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
