package drawer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrDrawerNotFound is returned by Focusables when no element carries the drawer id.
var ErrDrawerNotFound = errors.New("drawer: element not found")

// Focusables parses rendered markup and returns, in document order, the ids of the focusable
// elements inside the element whose id is drawerID. Focusable elements without an id are
// skipped.
func Focusables(r io.Reader, drawerID string) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("drawer: parse markup: %w", err)
	}
	root := findByID(doc, drawerID)
	if root == nil {
		return nil, fmt.Errorf("%w: %q", ErrDrawerNotFound, drawerID)
	}
	var ids []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n != root && isFocusable(n) {
			if id := attr(n, "id"); id != "" {
				ids = append(ids, id)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return ids, nil
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

func isFocusable(n *html.Node) bool {
	if hasAttr(n, "disabled") || hasAttr(n, "hidden") || attr(n, "aria-hidden") == "true" {
		return false
	}
	if ti, ok := lookupAttr(n, "tabindex"); ok {
		return strings.TrimSpace(ti) != "-1"
	}
	switch n.DataAtom {
	case atom.A, atom.Area:
		return hasAttr(n, "href")
	case atom.Button, atom.Select, atom.Textarea, atom.Summary:
		return true
	case atom.Input:
		return !strings.EqualFold(attr(n, "type"), "hidden")
	}
	return false
}

func attr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := lookupAttr(n, key)
	return ok
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
