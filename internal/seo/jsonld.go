package seo

import (
	"encoding/json"
	"strings"
	"time"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
// "</" is escaped so the result can be embedded in a script element.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return strings.ReplaceAll(string(b), "</", `<\/`)
}

// Organization returns the Organization schema emitted on every page.
func Organization(name, url, logoURL, email string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	if email != "" {
		m["email"] = email
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, inLanguage string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if inLanguage != "" {
		m["inLanguage"] = inLanguage
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// ArticleInput describes a blog post for structured data.
type ArticleInput struct {
	Headline      string
	URL           string
	Description   string
	DatePublished time.Time
	InLanguage    string
	Keywords      []string
	Publisher     string
}

// Article returns the Article schema for a blog post.
func Article(in ArticleInput) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Article",
		"headline": in.Headline,
	}
	if in.URL != "" {
		m["url"] = in.URL
		m["mainEntityOfPage"] = in.URL
	}
	if in.Description != "" {
		m["description"] = in.Description
	}
	if !in.DatePublished.IsZero() {
		m["datePublished"] = in.DatePublished.Format("2006-01-02")
	}
	if in.InLanguage != "" {
		m["inLanguage"] = in.InLanguage
	}
	if len(in.Keywords) > 0 {
		m["keywords"] = strings.Join(in.Keywords, ", ")
	}
	if in.Publisher != "" {
		m["publisher"] = map[string]any{"@type": "Organization", "name": in.Publisher}
	}
	return m
}
