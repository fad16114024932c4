package views

import (
	"slices"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/development-sample/eceta.com/internal/forms"
	"github.com/development-sample/eceta.com/internal/i18n"
	"github.com/development-sample/eceta.com/internal/router"
)

// FormID returns the element id of a lead form. htmx swaps replace the element with this id.
func FormID(k forms.Kind) string { return string(k) + "-form" }

var formHosts = map[forms.Kind][]router.Tag{
	forms.KindBrand:      {router.ForBrands},
	forms.KindContact:    {router.Contact},
	forms.KindNewsletter: {router.Contact, router.BlogIndex},
}

// RendersForm reports whether the page for tag carries the form of kind k.
func RendersForm(tag router.Tag, k forms.Kind) bool {
	return slices.Contains(formHosts[k], tag)
}

type placeholders struct {
	company, name, email, category, url, sku, timeline, message string
	contactName, contactEmail, subject, contactMessage         string
}

var placeholderText = map[bool]placeholders{
	true: {
		company: "ECeta Inc.", name: "山田 花子", email: "team@brand.co", category: "アパレル",
		url: "https://brand.co", sku: "120", timeline: "2025年Q1", message: "導入背景や目標をご共有ください。",
		contactName: "山田 太郎", contactEmail: "you@example.com", subject: "取材のご依頼",
		contactMessage: "お問い合わせ内容をご記入ください。",
	},
	false: {
		company: "ECeta Inc.", name: "Jane Doe", email: "team@brand.co", category: "Apparel",
		url: "https://brand.co", sku: "120", timeline: "Q1 2025", message: "Tell us about your goals.",
		contactName: "Alex Kim", contactEmail: "you@example.com", subject: "Press inquiry",
		contactMessage: "Share your request here.",
	},
}

type field struct {
	name        string
	label       string
	placeholder string
	value       string
	// typ is an input type, or "textarea".
	typ      string
	optional bool
	err      string
}

func fieldNode(kind forms.Kind, f field, v i18n.ValidationStrings) g.Node {
	id := string(kind) + "-" + f.name
	errID := id + "-error"
	class := "field"
	if f.err != "" {
		class += " field--invalid"
	}
	attrs := []g.Node{
		ID(id), Name(f.name), Class("field__control"),
		g.If(f.placeholder != "", Placeholder(f.placeholder)),
		g.If(!f.optional, g.Attr("aria-required", "true")),
		g.If(f.err != "", g.Attr("aria-invalid", "true")),
		g.If(f.err != "", g.Attr("aria-describedby", errID)),
	}
	var control g.Node
	if f.typ == "textarea" {
		control = Textarea(append(attrs, g.Attr("rows", "4"), g.Text(f.value))...)
	} else {
		control = Input(append(attrs, Type(f.typ), Value(f.value))...)
	}
	return Div(Class(class),
		Label(g.Attr("for", id), Class("field__label"), g.Text(f.label)),
		control,
		g.If(f.err != "", P(ID(errID), Class("field__error"), g.Attr("role", "alert"), g.Text(v.Message(f.err)))),
	)
}

type formShell struct {
	kind       forms.Kind
	status     forms.Status
	submitting bool
	submit     string
	success    string
	failure    string
}

func (s formShell) render(c Context, fields ...g.Node) g.Node {
	d := c.dict()
	action := c.href("/forms/" + string(s.kind))
	label := s.submit
	if s.submitting {
		label = d.Form.Sending
	}
	return g.El("form", ID(FormID(s.kind)), Class("form form--"+string(s.kind)),
		g.Attr("method", "post"),
		g.Attr("action", action),
		g.Attr("novalidate"),
		g.Attr("hx-post", action),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type='submit']"),
		g.Attr("data-status", string(s.status)),
		Input(Type("hidden"), Name(forms.CSRFField), Value(c.CSRFToken)),
		Input(Type("hidden"), Name(forms.OriginField), Value(c.path())),
		g.Group(fields),
		ActionButton(Primary, Type("submit"),
			g.If(s.submitting, g.Attr("disabled")),
			g.Attr("data-sending-label", d.Form.Sending),
			g.Text(label),
		),
		P(Class("form__status"), g.Attr("role", "status"), g.Attr("aria-live", "polite"),
			g.If(s.status == forms.StatusSuccess, g.Text(s.success)),
			g.If(s.status == forms.StatusError, g.Text(s.failure)),
		),
	)
}

// BrandForm renders the brand application form from the current snapshot.
func BrandForm(c Context) g.Node {
	d := c.dict()
	st := c.Forms.Brand
	ph := placeholderText[c.locale().IsJa()]
	v := st.Values
	f := func(name, label, placeholder, value, typ string) g.Node {
		return fieldNode(forms.KindBrand, field{name: name, label: label, placeholder: placeholder, value: value, typ: typ, err: st.Errors[name]}, d.Validation)
	}
	return formShell{
		kind:       forms.KindBrand,
		status:     st.Status,
		submitting: st.Submitting(),
		submit:     d.Form.Submit,
		success:    d.BrandsForm.Success,
		failure:    d.BrandsForm.Error,
	}.render(c,
		Div(Class("form__grid"),
			f("company", d.Form.Company, ph.company, v.Company, "text"),
			f("name", d.Form.Name, ph.name, v.Name, "text"),
			f("email", d.Form.Email, ph.email, v.Email, "email"),
			f("category", d.Form.Category, ph.category, v.Category, "text"),
			f("url", d.Form.URL, ph.url, v.URL, "url"),
			f("sku", d.Form.SKU, ph.sku, v.SKU, "text"),
			f("timeline", d.Form.Timeline, ph.timeline, v.Timeline, "text"),
		),
		fieldNode(forms.KindBrand, field{
			name: "message", label: d.Form.Message, placeholder: ph.message, value: v.Message,
			typ: "textarea", optional: true, err: st.Errors["message"],
		}, d.Validation),
	)
}

// ContactForm renders the general enquiry form.
func ContactForm(c Context) g.Node {
	d := c.dict()
	st := c.Forms.Contact
	ph := placeholderText[c.locale().IsJa()]
	v := st.Values
	f := func(name, label, placeholder, value, typ string) g.Node {
		return fieldNode(forms.KindContact, field{name: name, label: label, placeholder: placeholder, value: value, typ: typ, err: st.Errors[name]}, d.Validation)
	}
	return formShell{
		kind:       forms.KindContact,
		status:     st.Status,
		submitting: st.Submitting(),
		submit:     d.ContactForm.Button,
		success:    d.Contact.Success,
		failure:    d.Contact.Error,
	}.render(c,
		f("name", d.Form.Name, ph.contactName, v.Name, "text"),
		f("email", d.Form.Email, ph.contactEmail, v.Email, "email"),
		f("subject", d.ContactForm.Subject, ph.subject, v.Subject, "text"),
		f("message", d.ContactForm.Message, ph.contactMessage, v.Message, "textarea"),
	)
}

// NewsletterForm renders the email opt-in.
func NewsletterForm(c Context) g.Node {
	d := c.dict()
	st := c.Forms.Newsletter
	return formShell{
		kind:       forms.KindNewsletter,
		status:     st.Status,
		submitting: st.Submitting(),
		submit:     d.Newsletter.Button,
		success:    d.Newsletter.Success,
		failure:    d.Newsletter.Error,
	}.render(c,
		fieldNode(forms.KindNewsletter, field{
			name: "email", label: d.Form.Email, placeholder: d.Newsletter.Placeholder,
			value: st.Values.Email, typ: "email", err: st.Errors["email"],
		}, d.Validation),
	)
}

func newsletterPanel(c Context) g.Node {
	d := c.dict()
	return Div(ID("newsletter"), Class("card newsletter"), g.Attr("data-animate", "fade"),
		CardHeader(d.Newsletter.Title, d.Newsletter.Description),
		CardContent(NewsletterForm(c)),
	)
}

// FormFragment renders only the form of the given kind, for htmx swaps.
func FormFragment(c Context, k forms.Kind) g.Node {
	switch k {
	case forms.KindBrand:
		return BrandForm(c)
	case forms.KindContact:
		return ContactForm(c)
	default:
		return NewsletterForm(c)
	}
}

func ContactPage(c Context) Page {
	d := c.dict()
	cc := c.site().Contact
	return Page{
		Title:       cc.Headline,
		Description: cc.Description,
		Main: g.Group([]g.Node{
			pageHero(cc.Headline, cc.Description),
			revealSection("contact-body", "contact",
				Div(Class("grid grid--2"),
					Div(Class("card"),
						CardHeader(d.Nav.ContactUs, ""),
						CardContent(ContactForm(c)),
					),
					newsletterPanel(c),
				),
			),
		}),
	}
}
