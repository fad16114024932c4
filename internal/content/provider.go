package content

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/development-sample/eceta.com/internal/i18n"
	"github.com/development-sample/eceta.com/internal/observability"
)

//go:embed data
var embedded embed.FS

// Kind names one content document.
type Kind string

const (
	KindSite    Kind = "site"
	KindPricing Kind = "pricing"
	KindFAQ     Kind = "faq"
)

const defaultCacheTTL = 5 * time.Minute

// InvalidContentError lists the fields of a document that failed validation.
type InvalidContentError struct {
	Kind   Kind
	Locale i18n.Locale
	Fields []string
}

func (e *InvalidContentError) Error() string {
	return fmt.Sprintf("content: invalid %s/%s: [%s]", e.Locale, e.Kind, strings.Join(e.Fields, ", "))
}

// Provider serves Site Copy, Pricing and FAQ per locale. Embedded documents are decoded and
// validated once at construction; a configured CMS is consulted first and any remote failure
// falls back to the embedded copy. Returned values share backing arrays and must be treated as
// read-only.
type Provider struct {
	local   map[i18n.Locale]documents
	baseURL string
	http    *http.Client
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

type documents struct {
	copy    SiteCopy
	pricing Pricing
	faq     []FAQItem
}

type cacheEntry struct {
	value   any
	expires time.Time
}

// Option customises a Provider.
type Option func(*providerOptions)

type providerOptions struct {
	fsys    fs.FS
	baseURL string
	client  *http.Client
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

// WithFS replaces the embedded documents with fsys, laid out as {locale}/{kind}.yaml.
func WithFS(fsys fs.FS) Option {
	return func(o *providerOptions) { o.fsys = fsys }
}

// WithRemote enables the remote CMS at baseURL.
func WithRemote(baseURL string, client *http.Client) Option {
	return func(o *providerOptions) {
		o.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
		o.client = client
	}
}

// WithCacheTTL sets how long remote documents are cached.
func WithCacheTTL(d time.Duration) Option {
	return func(o *providerOptions) { o.ttl = d }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *providerOptions) { o.logger = logger }
}

// WithClock overrides the time source used for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(o *providerOptions) { o.now = now }
}

// Embedded exposes the bundled content documents.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// New loads and validates every document for every supported locale.
func New(opts ...Option) (*Provider, error) {
	o := providerOptions{ttl: defaultCacheTTL}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fsys == nil {
		o.fsys = Embedded()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.client == nil {
		o.client = &http.Client{Timeout: 5 * time.Second}
	}

	p := &Provider{
		local:   make(map[i18n.Locale]documents),
		baseURL: o.baseURL,
		http:    o.client,
		ttl:     o.ttl,
		logger:  o.logger,
		now:     o.now,
		cache:   make(map[string]cacheEntry),
	}
	for _, l := range i18n.Supported() {
		var docs documents
		if err := decodeLocal(o.fsys, l, KindSite, &docs.copy); err != nil {
			return nil, err
		}
		if err := decodeLocal(o.fsys, l, KindPricing, &docs.pricing); err != nil {
			return nil, err
		}
		var faq faqDocument
		if err := decodeLocal(o.fsys, l, KindFAQ, &faq); err != nil {
			return nil, err
		}
		docs.faq = faq.Items
		p.local[l] = docs
	}
	return p, nil
}

// SiteCopy returns the marketing copy for the locale.
func (p *Provider) SiteCopy(ctx context.Context, l i18n.Locale) (SiteCopy, error) {
	docs, err := p.documents(ctx, l)
	if err != nil {
		return SiteCopy{}, err
	}
	return fetch(ctx, p, KindSite, l, docs.copy)
}

// Pricing returns the plan list for the locale.
func (p *Provider) Pricing(ctx context.Context, l i18n.Locale) (Pricing, error) {
	docs, err := p.documents(ctx, l)
	if err != nil {
		return Pricing{}, err
	}
	return fetch(ctx, p, KindPricing, l, docs.pricing)
}

// FAQ returns the for-brands FAQ for the locale.
func (p *Provider) FAQ(ctx context.Context, l i18n.Locale) ([]FAQItem, error) {
	docs, err := p.documents(ctx, l)
	if err != nil {
		return nil, err
	}
	doc, err := fetch(ctx, p, KindFAQ, l, faqDocument{Items: docs.faq})
	if err != nil {
		return nil, err
	}
	return doc.Items, nil
}

func (p *Provider) documents(ctx context.Context, l i18n.Locale) (documents, error) {
	if err := ctx.Err(); err != nil {
		return documents{}, err
	}
	docs, ok := p.local[l]
	if !ok {
		return documents{}, fmt.Errorf("%w: %q", i18n.ErrUnsupportedLocale, l)
	}
	return docs, nil
}

func fetch[T any](ctx context.Context, p *Provider, kind Kind, l i18n.Locale, local T) (T, error) {
	if p.baseURL == "" {
		return local, nil
	}
	key := string(kind) + "|" + string(l)
	if v, ok := p.cached(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	var remote T
	err := p.fetchRemote(ctx, kind, l, &remote)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return local, ctxErr
		}
		p.logger.Warn("content: remote fetch failed, using embedded copy",
			zap.String("kind", string(kind)),
			zap.String("locale", string(l)),
			zap.Error(err),
		)
		remote = local
	}
	p.store(key, remote)
	return remote, nil
}

func (p *Provider) fetchRemote(ctx context.Context, kind Kind, l i18n.Locale, dst any) (err error) {
	ctx, span := observability.StartSpan(ctx, "content.fetchRemote")
	span.SetAttributes(attribute.String("content.kind", string(kind)), attribute.String("content.locale", string(l)))
	defer func() { observability.EndSpan(span, err) }()

	endpoint, err := url.JoinPath(p.baseURL, "content", string(kind))
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	q := req.URL.Query()
	q.Set("lang", string(l))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("content: remote status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("content: decode remote %s: %w", kind, err)
	}
	return validateDocument(kind, l, dst)
}

func (p *Provider) cached(key string) (any, bool) {
	p.mu.RLock()
	entry, ok := p.cache[key]
	p.mu.RUnlock()
	if !ok || p.now().After(entry.expires) {
		return nil, false
	}
	return entry.value, true
}

func (p *Provider) store(key string, value any) {
	if p.ttl <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache[key] = cacheEntry{value: value, expires: p.now().Add(p.ttl)}
}

func decodeLocal(fsys fs.FS, l i18n.Locale, kind Kind, dst any) error {
	name := path.Join(string(l), string(kind)+".yaml")
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("content: read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(strings.NewReader(string(raw)))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("content: decode %s: %w", name, err)
	}
	return validateDocument(kind, l, dst)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

func validateDocument(kind Kind, l i18n.Locale, doc any) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		fields = append(fields, ns)
	}
	return &InvalidContentError{Kind: kind, Locale: l, Fields: fields}
}

// Href expands the %locale% placeholder in a navigation href.
func Href(href string, l i18n.Locale) string {
	return strings.ReplaceAll(href, "%locale%", string(l))
}
