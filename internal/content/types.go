package content

// SiteCopy is the typed marketing copy for one locale. Hrefs may contain the
// %locale% placeholder, expanded by Href.
type SiteCopy struct {
	Navigation   []Link      `yaml:"navigation" json:"navigation" validate:"required,min=1,dive"`
	Hero         Hero        `yaml:"hero" json:"hero"`
	ValueProps   ValueProps  `yaml:"valueProps" json:"valueProps"`
	WhyNow       WhyNow      `yaml:"whyNow" json:"whyNow"`
	Roadmap      Roadmap     `yaml:"roadmap" json:"roadmap"`
	PartnerLogos []string    `yaml:"partnerLogos" json:"partnerLogos" validate:"required,dive,required"`
	Product      Product     `yaml:"product" json:"product"`
	ForBrands    ForBrands   `yaml:"forBrands" json:"forBrands"`
	Market       Market      `yaml:"market" json:"market"`
	Press        Press       `yaml:"press" json:"press"`
	Team         Team        `yaml:"team" json:"team"`
	Vision       Vision      `yaml:"vision" json:"vision"`
	RoadmapPage  RoadmapPage `yaml:"roadmapPage" json:"roadmapPage"`
	Contact      ContactCopy `yaml:"contact" json:"contact"`
	Footer       Footer      `yaml:"footer" json:"footer"`
	SEO          SEO         `yaml:"seo" json:"seo"`
}

type Link struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Href  string `yaml:"href" json:"href" validate:"required"`
}

type Hero struct {
	Eyebrow      string   `yaml:"eyebrow" json:"eyebrow" validate:"required"`
	Title        string   `yaml:"title" json:"title" validate:"required"`
	Subtitle     string   `yaml:"subtitle" json:"subtitle" validate:"required"`
	PrimaryCTA   string   `yaml:"primaryCta" json:"primaryCta" validate:"required"`
	SecondaryCTA string   `yaml:"secondaryCta" json:"secondaryCta" validate:"required"`
	Metrics      []Metric `yaml:"metrics" json:"metrics" validate:"required,dive"`
}

type Metric struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Value string `yaml:"value" json:"value" validate:"required"`
}

// Item is a titled blurb used by cards throughout the site.
type Item struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
}

type ValueProps struct {
	Title string `yaml:"title" json:"title" validate:"required"`
	Items []Item `yaml:"items" json:"items" validate:"required,dive"`
}

type WhyNow struct {
	Title    string   `yaml:"title" json:"title" validate:"required"`
	Items    []string `yaml:"items" json:"items" validate:"required,dive,required"`
	Footnote string   `yaml:"footnote" json:"footnote" validate:"required"`
}

type Roadmap struct {
	Title string        `yaml:"title" json:"title" validate:"required"`
	Items []RoadmapItem `yaml:"items" json:"items" validate:"required,dive"`
}

type RoadmapItem struct {
	Period      string `yaml:"period" json:"period" validate:"required"`
	Headline    string `yaml:"headline" json:"headline" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
}

type PageHero struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
}

type Product struct {
	Hero         PageHero     `yaml:"hero" json:"hero"`
	Features     []Feature    `yaml:"features" json:"features" validate:"required,dive"`
	Architecture Architecture `yaml:"architecture" json:"architecture"`
}

type Feature struct {
	Name        string `yaml:"name" json:"name" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
}

type Architecture struct {
	Title  string   `yaml:"title" json:"title" validate:"required"`
	Layers []string `yaml:"layers" json:"layers" validate:"required,dive,required"`
}

type ForBrands struct {
	Hero           PageHero    `yaml:"hero" json:"hero"`
	Benefits       []Item      `yaml:"benefits" json:"benefits" validate:"required,dive"`
	CaseStudies    []CaseStudy `yaml:"caseStudies" json:"caseStudies" validate:"required,dive"`
	PricingSummary string      `yaml:"pricingSummary" json:"pricingSummary" validate:"required"`
	FAQHeadline    string      `yaml:"faqHeadline" json:"faqHeadline" validate:"required"`
}

type CaseStudy struct {
	Brand  string `yaml:"brand" json:"brand" validate:"required"`
	Result string `yaml:"result" json:"result" validate:"required"`
}

type Market struct {
	Title     string   `yaml:"title" json:"title" validate:"required"`
	Stats     []Stat   `yaml:"stats" json:"stats" validate:"required,dive"`
	Footnotes []string `yaml:"footnotes" json:"footnotes" validate:"dive,required"`
}

type Stat struct {
	Label  string `yaml:"label" json:"label" validate:"required"`
	Value  string `yaml:"value" json:"value" validate:"required"`
	Source string `yaml:"source" json:"source" validate:"required"`
}

type Press struct {
	Title    string  `yaml:"title" json:"title" validate:"required"`
	Overview string  `yaml:"overview" json:"overview" validate:"required"`
	Assets   []Asset `yaml:"assets" json:"assets" validate:"required,dive"`
}

type Asset struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	File string `yaml:"file" json:"file" validate:"required"`
}

type Team struct {
	Title  string `yaml:"title" json:"title" validate:"required"`
	Intro  string `yaml:"intro" json:"intro" validate:"required"`
	Roles  []Item `yaml:"roles" json:"roles" validate:"required,dive"`
	Hiring Hiring `yaml:"hiring" json:"hiring"`
}

type Hiring struct {
	Headline string `yaml:"headline" json:"headline" validate:"required"`
	Roles    []Item `yaml:"roles" json:"roles" validate:"dive"`
}

type Vision struct {
	Mission         string   `yaml:"mission" json:"mission" validate:"required"`
	ChallengesTitle string   `yaml:"challengesTitle" json:"challengesTitle" validate:"required"`
	Challenges      []string `yaml:"challenges" json:"challenges" validate:"required,dive,required"`
	DiffTitle       string   `yaml:"differentiatorsTitle" json:"differentiatorsTitle" validate:"required"`
	Differentiators []string `yaml:"differentiators" json:"differentiators" validate:"required,dive,required"`
	BarriersTitle   string   `yaml:"barriersTitle" json:"barriersTitle" validate:"required"`
	Barriers        []string `yaml:"barriers" json:"barriers" validate:"required,dive,required"`
}

type RoadmapPage struct {
	Title      string  `yaml:"title" json:"title" validate:"required"`
	Milestones []Item  `yaml:"milestones" json:"milestones" validate:"required,dive"`
	Capital    Capital `yaml:"capital" json:"capital"`
}

type Capital struct {
	Title string         `yaml:"title" json:"title" validate:"required"`
	Items []CapitalSplit `yaml:"items" json:"items" validate:"required,dive"`
}

// CapitalSplit is a use-of-funds share in percent.
type CapitalSplit struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Value int    `yaml:"value" json:"value" validate:"gte=0,lte=100"`
}

type ContactCopy struct {
	Headline    string `yaml:"headline" json:"headline" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
}

type Footer struct {
	CTA       string `yaml:"cta" json:"cta" validate:"required"`
	Address   string `yaml:"address" json:"address" validate:"required"`
	Email     string `yaml:"email" json:"email" validate:"required,email"`
	Copyright string `yaml:"copyright" json:"copyright" validate:"required"`
	Links     []Link `yaml:"links" json:"links" validate:"dive"`
}

type SEO struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
	OGImage     string `yaml:"ogImage" json:"ogImage"`
}

// Pricing lists subscription plans. Prices are whole yen.
type Pricing struct {
	Plans   []Plan `yaml:"plans" json:"plans" validate:"required,min=1,dive"`
	TaxNote string `yaml:"taxNote" json:"taxNote" validate:"required"`
}

type Plan struct {
	Slug         string   `yaml:"slug" json:"slug" validate:"required"`
	Name         string   `yaml:"name" json:"name" validate:"required"`
	Description  string   `yaml:"description" json:"description" validate:"required"`
	Price        int64    `yaml:"price" json:"price" validate:"gte=0"`
	PriceWithTax int64    `yaml:"priceWithTax" json:"priceWithTax" validate:"gtefield=Price"`
	Features     []string `yaml:"features" json:"features" validate:"required,dive,required"`
	CTA          string   `yaml:"cta" json:"cta" validate:"required"`
}

type FAQItem struct {
	Question string `yaml:"question" json:"question" validate:"required"`
	Answer   string `yaml:"answer" json:"answer" validate:"required"`
}

// faqDocument wraps the FAQ list so it can be validated as a struct.
type faqDocument struct {
	Items []FAQItem `yaml:"items" json:"items" validate:"required,min=1,dive"`
}
