package router

import "strings"

// Tag identifies one page view.
type Tag string

const (
	Home         Tag = "home"
	Product      Tag = "product"
	ForBrands    Tag = "for-brands"
	Market       Tag = "market"
	Press        Tag = "press"
	Team         Tag = "team"
	Vision       Tag = "vision"
	Roadmap      Tag = "roadmap"
	Contact      Tag = "contact"
	BlogIndex    Tag = "blog"
	BlogPost     Tag = "blog-post"
	LegalPrivacy Tag = "legal-privacy"
	LegalTerms   Tag = "legal-terms"
)

// Need is a bitset of data sources a route requires.
type Need uint8

const (
	NeedCopy Need = 1 << iota
	NeedPricing
	NeedFAQ
	NeedDictionary
	NeedPosts
	NeedPost
)

var needNames = []struct {
	need Need
	name string
}{
	{NeedCopy, "copy"},
	{NeedPricing, "pricing"},
	{NeedFAQ, "faq"},
	{NeedDictionary, "dictionary"},
	{NeedPosts, "posts"},
	{NeedPost, "post"},
}

// Has reports whether every bit of x is set.
func (n Need) Has(x Need) bool { return n&x == x }

func (n Need) String() string {
	if n == 0 {
		return "none"
	}
	var parts []string
	for _, nn := range needNames {
		if n.Has(nn.need) {
			parts = append(parts, nn.name)
		}
	}
	return strings.Join(parts, "+")
}

const slugParam = "{slug}"

// Route is one row of the dispatch table. Pattern elements are literals except "{slug}",
// which matches any single non-empty segment.
type Route struct {
	Tag     Tag
	Pattern []string
	Needs   Need
}

// Static reports whether the route has no parameters.
func (r Route) Static() bool {
	for _, p := range r.Pattern {
		if p == slugParam {
			return false
		}
	}
	return true
}

var table = []Route{
	{Tag: Home, Pattern: nil, Needs: NeedCopy},
	{Tag: Product, Pattern: []string{"product"}, Needs: NeedCopy},
	{Tag: ForBrands, Pattern: []string{"for-brands"}, Needs: NeedCopy | NeedPricing | NeedFAQ | NeedDictionary},
	{Tag: Market, Pattern: []string{"market"}, Needs: NeedCopy},
	{Tag: Press, Pattern: []string{"press"}, Needs: NeedCopy},
	{Tag: Team, Pattern: []string{"team"}, Needs: NeedCopy},
	{Tag: Vision, Pattern: []string{"vision"}, Needs: NeedCopy},
	{Tag: Roadmap, Pattern: []string{"roadmap"}, Needs: NeedCopy},
	{Tag: Contact, Pattern: []string{"contact"}, Needs: NeedDictionary},
	{Tag: BlogIndex, Pattern: []string{"blog"}, Needs: NeedPosts | NeedDictionary},
	{Tag: BlogPost, Pattern: []string{"blog", slugParam}, Needs: NeedPost},
	{Tag: LegalPrivacy, Pattern: []string{"legal", "privacy"}, Needs: 0},
	{Tag: LegalTerms, Pattern: []string{"legal", "terms"}, Needs: 0},
}

// Table returns a copy of the route table in dispatch order.
func Table() []Route {
	out := make([]Route, len(table))
	for i, r := range table {
		out[i] = r
		out[i].Pattern = append([]string(nil), r.Pattern...)
	}
	return out
}

// Match finds the route for segments. The returned slug is set only for parameterised routes.
func Match(segments []string) (Route, string, bool) {
	for _, r := range table {
		if len(r.Pattern) != len(segments) {
			continue
		}
		slug, ok := matchPattern(r.Pattern, segments)
		if ok {
			return r, slug, true
		}
	}
	return Route{}, "", false
}

func matchPattern(pattern, segments []string) (string, bool) {
	var slug string
	for i, p := range pattern {
		seg := segments[i]
		if p == slugParam {
			if seg == "" {
				return "", false
			}
			slug = seg
			continue
		}
		if p != seg {
			return "", false
		}
	}
	return slug, true
}

// Path joins segments into a locale-relative path such as "blog/launch".
func Path(segments []string) string { return strings.Join(segments, "/") }
