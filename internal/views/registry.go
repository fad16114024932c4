package views

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"

	"github.com/development-sample/eceta.com/internal/router"
)

// View renders the page for one route.
type View func(Context) Page

var registry = map[router.Tag]View{
	router.Home:         HomePage,
	router.Product:      ProductPage,
	router.ForBrands:    ForBrandsPage,
	router.Market:       MarketPage,
	router.Press:        PressPage,
	router.Team:         TeamPage,
	router.Vision:       VisionPage,
	router.Roadmap:      RoadmapPage,
	router.Contact:      ContactPage,
	router.BlogIndex:    BlogIndexPage,
	router.BlogPost:     BlogPostPage,
	router.LegalPrivacy: LegalPage,
	router.LegalTerms:   LegalPage,
}

// Lookup returns the view registered for a route tag.
func Lookup(tag router.Tag) (View, bool) {
	v, ok := registry[tag]
	return v, ok
}

// Build renders the full document for the resolved route.
func Build(c Context) (g.Node, error) {
	view, ok := Lookup(c.Resolution.Tag)
	if !ok {
		return nil, fmt.Errorf("views: no view for route %q", c.Resolution.Tag)
	}
	return Document(c, view(c)), nil
}

// Render writes the full document for the resolved route.
func Render(w io.Writer, c Context) error {
	node, err := Build(c)
	if err != nil {
		return err
	}
	return node.Render(w)
}
