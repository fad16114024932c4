package i18n

// Dictionary is the typed set of short UI strings for one locale, grouped by feature area.
// Every field is required; Load rejects a locale file that leaves any of them empty.
type Dictionary struct {
	Language string `json:"language" validate:"required"`
	Light    string `json:"light" validate:"required"`
	Dark     string `json:"dark" validate:"required"`
	System   string `json:"system" validate:"required"`

	Nav         NavStrings         `json:"nav"`
	Form        FormStrings        `json:"form"`
	BrandsForm  StatusStrings      `json:"brandsForm"`
	ContactForm ContactFormStrings `json:"contactForm"`
	Contact     ResultStrings      `json:"contact"`
	Newsletter  NewsletterStrings  `json:"newsletter"`
	Validation  ValidationStrings  `json:"validation"`
	Blog        BlogStrings        `json:"blog"`
	Footer      FooterStrings      `json:"footer"`
	NotFound    PageStrings        `json:"notFound"`
	Unavailable PageStrings        `json:"unavailable"`
	Cookie      CookieStrings      `json:"cookie"`
	Pricing     PricingStrings     `json:"pricing"`
}

type NavStrings struct {
	Open      string `json:"open" validate:"required"`
	Close     string `json:"close" validate:"required"`
	Home      string `json:"home" validate:"required"`
	Policies  string `json:"policies" validate:"required"`
	Menu      string `json:"menu" validate:"required"`
	ContactUs string `json:"contactUs" validate:"required"`
	Tagline   string `json:"tagline" validate:"required"`
}

type FormStrings struct {
	Company  string `json:"company" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Category string `json:"category" validate:"required"`
	URL      string `json:"url" validate:"required"`
	SKU      string `json:"sku" validate:"required"`
	Timeline string `json:"timeline" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Submit   string `json:"submit" validate:"required"`
	Sending  string `json:"sending" validate:"required"`
}

type StatusStrings struct {
	Title   string `json:"title" validate:"required"`
	Success string `json:"success" validate:"required"`
	Error   string `json:"error" validate:"required"`
}

type ContactFormStrings struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
	Button  string `json:"button" validate:"required"`
}

type ResultStrings struct {
	Success string `json:"success" validate:"required"`
	Error   string `json:"error" validate:"required"`
}

type NewsletterStrings struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Placeholder string `json:"placeholder" validate:"required"`
	Button      string `json:"button" validate:"required"`
	Success     string `json:"success" validate:"required"`
	Error       string `json:"error" validate:"required"`
}

// ValidationStrings are the inline field error messages, keyed by validation rule.
type ValidationStrings struct {
	Required string `json:"required" validate:"required"`
	Email    string `json:"email" validate:"required"`
	URL      string `json:"url" validate:"required"`
	Invalid  string `json:"invalid" validate:"required"`
}

type BlogStrings struct {
	Title       string `json:"title" validate:"required"`
	ReadMore    string `json:"readMore" validate:"required"`
	ReadingTime string `json:"readingTime" validate:"required"`
	Empty       string `json:"empty" validate:"required"`
}

type FooterStrings struct {
	Rights  string `json:"rights" validate:"required"`
	Contact string `json:"contact" validate:"required"`
	Privacy string `json:"privacy" validate:"required"`
	Terms   string `json:"terms" validate:"required"`
}

type PageStrings struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
	Back  string `json:"back" validate:"required"`
}

type CookieStrings struct {
	Message string `json:"message" validate:"required"`
	Accept  string `json:"accept" validate:"required"`
}

type PricingStrings struct {
	Title       string `json:"title" validate:"required"`
	TaxIncluded string `json:"taxIncluded" validate:"required"`
	TaxExcluded string `json:"taxExcluded" validate:"required"`
	Toggle      string `json:"toggle" validate:"required"`
	PerMonth    string `json:"perMonth" validate:"required"`
}

// Message returns the localized message for a validation rule code such as "required".
func (v ValidationStrings) Message(code string) string {
	switch code {
	case "required":
		return v.Required
	case "email":
		return v.Email
	case "url", "http_url":
		return v.URL
	default:
		return v.Invalid
	}
}
