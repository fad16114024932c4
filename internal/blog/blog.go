package blog

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"

	"github.com/development-sample/eceta.com/internal/i18n"
)

//go:embed posts
var embedded embed.FS

// ErrNotFound is returned when no post exists for a slug and locale.
var ErrNotFound = errors.New("blog: not found")

const (
	wordsPerMinute = 200
	charsPerMinute = 500
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// FrontMatter is the YAML header of a post.
type FrontMatter struct {
	Title   string
	Date    time.Time
	Excerpt string
	Tags    []string
}

// Post is a rendered, sanitised blog post.
type Post struct {
	Slug           string
	Locale         i18n.Locale
	FrontMatter    FrontMatter
	HTML           string
	ReadingMinutes int
}

type rawFrontMatter struct {
	Title   string   `yaml:"title"`
	Date    string   `yaml:"date"`
	Excerpt string   `yaml:"excerpt"`
	Tags    []string `yaml:"tags"`
}

// Store holds every post, parsed and rendered once at load.
type Store struct {
	fsys   fs.FS
	md     goldmark.Markdown
	policy *bluemonday.Policy

	mu     sync.RWMutex
	lists  map[i18n.Locale][]Post
	bySlug map[i18n.Locale]map[string]Post
}

// Embedded exposes the bundled posts laid out as {locale}/{slug}.md.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "posts")
	if err != nil {
		panic(err)
	}
	return sub
}

// New loads every post from fsys.
func New(fsys fs.FS) (*Store, error) {
	if fsys == nil {
		fsys = Embedded()
	}
	s := &Store{
		fsys: fsys,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Typographer),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		policy: newPostPolicy(),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the post tree. The previous posts stay in place if loading fails.
func (s *Store) Reload() error {
	lists := make(map[i18n.Locale][]Post)
	bySlug := make(map[i18n.Locale]map[string]Post)
	for _, l := range i18n.Supported() {
		bySlug[l] = make(map[string]Post)
		entries, err := fs.ReadDir(s.fsys, string(l))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("blog: read %s: %w", l, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
				continue
			}
			slug := strings.TrimSuffix(entry.Name(), ".md")
			if !slugPattern.MatchString(slug) {
				return fmt.Errorf("blog: invalid slug %q in %s", slug, l)
			}
			post, err := s.load(l, slug)
			if err != nil {
				return err
			}
			bySlug[l][slug] = post
			lists[l] = append(lists[l], post)
		}
		sort.SliceStable(lists[l], func(i, j int) bool {
			a, b := lists[l][i].FrontMatter.Date, lists[l][j].FrontMatter.Date
			if a.Equal(b) {
				return lists[l][i].Slug < lists[l][j].Slug
			}
			return a.After(b)
		})
	}

	s.mu.Lock()
	s.lists = lists
	s.bySlug = bySlug
	s.mu.Unlock()
	return nil
}

// List returns the locale's posts, newest first.
func (s *Store) List(ctx context.Context, l i18n.Locale) ([]Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, ok := i18n.Parse(string(l)); !ok {
		return nil, fmt.Errorf("%w: %q", i18n.ErrUnsupportedLocale, l)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Post, len(s.lists[l]))
	copy(out, s.lists[l])
	return out, nil
}

// Get returns one post by slug. Unknown or malformed slugs yield ErrNotFound.
func (s *Store) Get(ctx context.Context, slug string, l i18n.Locale) (Post, error) {
	if err := ctx.Err(); err != nil {
		return Post{}, err
	}
	if !slugPattern.MatchString(slug) {
		return Post{}, ErrNotFound
	}
	s.mu.RLock()
	post, ok := s.bySlug[l][slug]
	s.mu.RUnlock()
	if !ok {
		return Post{}, ErrNotFound
	}
	return post, nil
}

func (s *Store) load(l i18n.Locale, slug string) (Post, error) {
	name := path.Join(string(l), slug+".md")
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return Post{}, fmt.Errorf("blog: read %s: %w", name, err)
	}
	fm, body := splitFrontMatter(string(data))
	var raw rawFrontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &raw); err != nil {
			return Post{}, fmt.Errorf("blog: parse front matter %s: %w", name, err)
		}
	}
	front := FrontMatter{
		Title:   strings.TrimSpace(raw.Title),
		Date:    parseDate(raw.Date),
		Excerpt: strings.TrimSpace(raw.Excerpt),
		Tags:    raw.Tags,
	}
	if front.Title == "" {
		return Post{}, fmt.Errorf("blog: %s: missing title", name)
	}
	if front.Date.IsZero() {
		return Post{}, fmt.Errorf("blog: %s: missing or invalid date %q", name, raw.Date)
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(body), &buf); err != nil {
		return Post{}, fmt.Errorf("blog: render %s: %w", name, err)
	}
	return Post{
		Slug:           slug,
		Locale:         l,
		FrontMatter:    front,
		HTML:           s.policy.Sanitize(buf.String()),
		ReadingMinutes: ReadingMinutes(body, l),
	}, nil
}

// ReadingMinutes estimates reading time: words for English, characters for Japanese.
func ReadingMinutes(body string, l i18n.Locale) int {
	var units, perMinute int
	if l.IsJa() {
		for _, r := range body {
			if !unicode.IsSpace(r) && !unicode.IsPunct(r) {
				units++
			}
		}
		perMinute = charsPerMinute
	} else {
		units = len(strings.Fields(body))
		perMinute = wordsPerMinute
	}
	minutes := int(math.Ceil(float64(units) / float64(perMinute)))
	if minutes < 1 {
		return 1
	}
	return minutes
}

func newPostPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span", "code")
	policy.AllowAttrs("id").OnElements("h2", "h3", "h4")
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
