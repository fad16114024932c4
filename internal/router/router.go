package router

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/development-sample/eceta.com/internal/blog"
	"github.com/development-sample/eceta.com/internal/content"
	"github.com/development-sample/eceta.com/internal/i18n"
	"github.com/development-sample/eceta.com/internal/legal"
	"github.com/development-sample/eceta.com/internal/observability"
)

// ErrNotFound is returned when no route matches or a blog slug does not exist for the locale.
var ErrNotFound = errors.New("router: not found")

// FetchError reports a data source that failed while resolving a route.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("router: fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ContentSource supplies Site Copy, Pricing and FAQ.
type ContentSource interface {
	SiteCopy(ctx context.Context, l i18n.Locale) (content.SiteCopy, error)
	Pricing(ctx context.Context, l i18n.Locale) (content.Pricing, error)
	FAQ(ctx context.Context, l i18n.Locale) ([]content.FAQItem, error)
}

// DictionarySource supplies UI strings.
type DictionarySource interface {
	Dictionary(ctx context.Context, l i18n.Locale) (i18n.Dictionary, error)
}

// BlogSource supplies blog posts.
type BlogSource interface {
	List(ctx context.Context, l i18n.Locale) ([]blog.Post, error)
	Get(ctx context.Context, slug string, l i18n.Locale) (blog.Post, error)
}

// Data carries everything fetched for a route. Only the fields named by the
// resolution's Needs are populated.
type Data struct {
	Copy       content.SiteCopy
	Pricing    content.Pricing
	FAQ        []content.FAQItem
	Dictionary i18n.Dictionary
	Posts      []blog.Post
	Post       blog.Post
	Legal      legal.Document
}

// Resolution is the outcome of routing one request.
type Resolution struct {
	Tag      Tag
	Locale   i18n.Locale
	Segments []string
	Slug     string
	// Needs is the route's own requirement plus any chrome needs.
	Needs Need
	Data  Data
}

// Router resolves locale-relative segments to a route and its data.
type Router struct {
	content ContentSource
	dict    DictionarySource
	blog    BlogSource
	chrome  Need
}

// Option customises a Router.
type Option func(*Router)

// WithChrome adds needs fetched for every route, for layout elements such as the header.
func WithChrome(n Need) Option {
	return func(r *Router) { r.chrome |= n }
}

// New constructs a Router over the given sources.
func New(c ContentSource, d DictionarySource, b BlogSource, opts ...Option) *Router {
	r := &Router{content: c, dict: d, blog: b}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve matches segments and fetches the route's data concurrently. It returns
// ErrNotFound for unknown paths and missing posts, and a *FetchError when a source fails.
// Partial data is never returned.
func (r *Router) Resolve(ctx context.Context, l i18n.Locale, segments []string) (res Resolution, err error) {
	route, slug, ok := Match(segments)
	if !ok {
		return Resolution{}, ErrNotFound
	}
	needs := route.Needs | r.chrome

	ctx, span := observability.StartSpan(ctx, "router.Resolve", trace.WithAttributes(
		attribute.String("route.tag", string(route.Tag)),
		attribute.String("route.locale", string(l)),
		attribute.String("route.needs", needs.String()),
	))
	defer func() {
		if errors.Is(err, ErrNotFound) {
			observability.EndSpan(span, nil)
			return
		}
		observability.EndSpan(span, err)
	}()

	res = Resolution{
		Tag:      route.Tag,
		Locale:   l,
		Segments: append([]string(nil), segments...),
		Slug:     slug,
		Needs:    needs,
	}
	data, err := r.fetch(ctx, l, slug, needs)
	if err != nil {
		return Resolution{}, err
	}
	if route.Tag == LegalPrivacy || route.Tag == LegalTerms {
		data.Legal, _ = legal.Lookup(segments[1], l)
	}
	res.Data = data
	return res, nil
}

func (r *Router) fetch(ctx context.Context, l i18n.Locale, slug string, needs Need) (Data, error) {
	var data Data
	g, gctx := errgroup.WithContext(ctx)
	run := func(source string, fn func(context.Context) error) {
		g.Go(func() error {
			fctx, span := observability.StartSpan(gctx, "router.fetch "+source)
			err := fn(fctx)
			if errors.Is(err, ErrNotFound) {
				observability.EndSpan(span, nil)
				return err
			}
			observability.EndSpan(span, err)
			if err != nil {
				return &FetchError{Source: source, Err: err}
			}
			return nil
		})
	}

	if needs.Has(NeedCopy) {
		run("copy", func(ctx context.Context) (err error) {
			data.Copy, err = r.content.SiteCopy(ctx, l)
			return err
		})
	}
	if needs.Has(NeedPricing) {
		run("pricing", func(ctx context.Context) (err error) {
			data.Pricing, err = r.content.Pricing(ctx, l)
			return err
		})
	}
	if needs.Has(NeedFAQ) {
		run("faq", func(ctx context.Context) (err error) {
			data.FAQ, err = r.content.FAQ(ctx, l)
			return err
		})
	}
	if needs.Has(NeedDictionary) {
		run("dictionary", func(ctx context.Context) (err error) {
			data.Dictionary, err = r.dict.Dictionary(ctx, l)
			return err
		})
	}
	if needs.Has(NeedPosts) {
		run("posts", func(ctx context.Context) (err error) {
			data.Posts, err = r.blog.List(ctx, l)
			return err
		})
	}
	if needs.Has(NeedPost) {
		run("post", func(ctx context.Context) error {
			post, err := r.blog.Get(ctx, slug, l)
			if errors.Is(err, blog.ErrNotFound) {
				return ErrNotFound
			}
			data.Post = post
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return Data{}, err
	}
	return data, nil
}

// StaticPaths enumerates every renderable path for the locale: the fixed routes plus one
// blog/{slug} entry per post.
func (r *Router) StaticPaths(ctx context.Context, l i18n.Locale) ([][]string, error) {
	var paths [][]string
	for _, route := range table {
		if route.Static() {
			paths = append(paths, append([]string{}, route.Pattern...))
		}
	}
	posts, err := r.blog.List(ctx, l)
	if err != nil {
		return nil, &FetchError{Source: "posts", Err: err}
	}
	for _, p := range posts {
		paths = append(paths, []string{"blog", p.Slug})
	}
	return paths, nil
}
