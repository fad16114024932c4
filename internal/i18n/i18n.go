package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// Locale is one of the supported site languages.
type Locale string

const (
	Ja Locale = "ja"
	En Locale = "en"
)

// Default is used whenever no better locale can be negotiated.
const Default = Ja

var supported = []Locale{Ja, En}

// Supported returns the closed set of site locales in canonical order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse maps a URL segment to a supported locale. Matching is case-insensitive.
func Parse(s string) (Locale, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range supported {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

func (l Locale) String() string { return string(l) }

// IsJa reports whether the locale renders Japanese copy.
func (l Locale) IsJa() bool { return l == Ja }

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag {
	switch l {
	case En:
		return language.English
	default:
		return language.Japanese
	}
}

// HTMLLang returns the value used for <html lang> and hreflang.
func (l Locale) HTMLLang() string {
	switch l {
	case En:
		return "en-US"
	default:
		return "ja-JP"
	}
}

//go:embed locales/*.json
var embedded embed.FS

// Embedded exposes the bundled dictionaries.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}

// ErrUnsupportedLocale is returned when a dictionary is requested for an unknown locale.
var ErrUnsupportedLocale = errors.New("i18n: unsupported locale")

// Bundle holds one validated Dictionary per supported locale.
type Bundle struct {
	dict     map[Locale]Dictionary
	fallback Locale
	matcher  language.Matcher
}

// Load reads <locale>.json for every supported locale from fsys. Every dictionary must
// decode and pass validation; a missing or incomplete locale fails the whole load.
func Load(fsys fs.FS, fallback Locale) (*Bundle, error) {
	if _, ok := Parse(string(fallback)); !ok {
		return nil, fmt.Errorf("%w: fallback %q", ErrUnsupportedLocale, fallback)
	}
	b := &Bundle{
		dict:     make(map[Locale]Dictionary, len(supported)),
		fallback: fallback,
	}
	tags := []language.Tag{fallback.Tag()}
	for _, l := range supported {
		if l != fallback {
			tags = append(tags, l.Tag())
		}
	}
	b.matcher = language.NewMatcher(tags)

	for _, l := range supported {
		raw, err := fs.ReadFile(fsys, path.Join(".", string(l)+".json"))
		if err != nil {
			return nil, fmt.Errorf("load locale %s: %w", l, err)
		}
		var d Dictionary
		dec := json.NewDecoder(strings.NewReader(string(raw)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		if err := validateDictionary(d); err != nil {
			return nil, fmt.Errorf("validate %s: %w", l, err)
		}
		b.dict[l] = d
	}
	return b, nil
}

// Fallback returns the configured fallback locale.
func (b *Bundle) Fallback() Locale { return b.fallback }

// Dictionary returns the dictionary for the locale.
func (b *Bundle) Dictionary(_ context.Context, l Locale) (Dictionary, error) {
	d, ok := b.dict[l]
	if !ok {
		return Dictionary{}, fmt.Errorf("%w: %q", ErrUnsupportedLocale, l)
	}
	return d, nil
}

// MustDictionary is Dictionary for callers that already hold a validated locale.
func (b *Bundle) MustDictionary(l Locale) Dictionary {
	if d, ok := b.dict[l]; ok {
		return d
	}
	return b.dict[b.fallback]
}

// Resolve chooses the best supported locale from an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) Locale {
	prefs, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(prefs) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No {
		return b.fallback
	}
	tags := []Locale{b.fallback}
	for _, l := range supported {
		if l != b.fallback {
			tags = append(tags, l)
		}
	}
	if idx < 0 || idx >= len(tags) {
		return b.fallback
	}
	return tags[idx]
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// MissingKeysError lists dictionary keys that are absent or empty.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return "i18n: missing keys [" + strings.Join(e.Keys, ", ") + "]"
}

func validateDictionary(d Dictionary) error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	keys := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// strip the root type name: Dictionary.form.email -> form.email
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		keys = append(keys, ns)
	}
	return &MissingKeysError{Keys: keys}
}
