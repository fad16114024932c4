package forms

import (
	"errors"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind names one of the lead-capture forms.
type Kind string

const (
	KindBrand      Kind = "brand"
	KindContact    Kind = "contact"
	KindNewsletter Kind = "newsletter"
)

// Hidden fields carried by every rendered form.
const (
	CSRFField   = "_csrf"
	OriginField = "_origin"
)

var endpoints = map[Kind]string{
	KindBrand:      "/api/brands/apply",
	KindContact:    "/api/contact",
	KindNewsletter: "/api/newsletter/subscribe",
}

// Kinds lists every form kind.
func Kinds() []Kind { return []Kind{KindBrand, KindContact, KindNewsletter} }

// ParseKind validates a kind taken from a URL.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	_, ok := endpoints[k]
	return k, ok
}

// Endpoint is the path of the submission endpoint for the kind.
func (k Kind) Endpoint() string { return endpoints[k] }

// Values is implemented by the record type of each form.
type Values interface {
	Kind() Kind
}

// BrandApplication is submitted from the for-brands page.
type BrandApplication struct {
	Company  string `json:"company" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Category string `json:"category" validate:"required"`
	URL      string `json:"url" validate:"required,url"`
	SKU      string `json:"sku" validate:"required"`
	Timeline string `json:"timeline" validate:"required"`
	Message  string `json:"message,omitempty"`
}

func (BrandApplication) Kind() Kind { return KindBrand }

// Contact is the general enquiry form.
type Contact struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (Contact) Kind() Kind { return KindContact }

// Newsletter is the email opt-in.
type Newsletter struct {
	Email string `json:"email" validate:"required,email"`
}

func (Newsletter) Kind() Kind { return KindNewsletter }

// FieldErrors maps a field name (its JSON name) to the failed rule, e.g. "required".
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k+"="+fe[k])
	}
	sort.Strings(keys)
	return "forms: invalid fields: " + strings.Join(keys, ", ")
}

// Fields returns the failing field names in sorted order.
func (fe FieldErrors) Fields() []string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks v against its schema. It returns nil when every field passes.
func Validate(v Values) FieldErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"": "invalid"}
	}
	fe := make(FieldErrors, len(verrs))
	for _, e := range verrs {
		if _, seen := fe[e.Field()]; !seen {
			fe[e.Field()] = e.Tag()
		}
	}
	return fe
}

// Normalize trims surrounding whitespace from every string field.
func Normalize[T Values](v T) T {
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() != reflect.Struct {
		return v
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.CanSet() {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
	return v
}

// FromForm fills a values record from a url-encoded form, keyed by the fields' JSON names.
// Unknown form keys are ignored.
func FromForm[T Values](form url.Values) T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	if rv.Kind() != reflect.Struct {
		return v
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		name := strings.SplitN(rt.Field(i).Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" || rv.Field(i).Kind() != reflect.String {
			continue
		}
		rv.Field(i).SetString(strings.TrimSpace(form.Get(name)))
	}
	return v
}
