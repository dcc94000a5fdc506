package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/net/html"

	"github.com/yuzvak/nhh-storefront/internal/domain/pricing"
)

const (
	panelClass    = "hw-product-panel"
	panelIDPrefix = "hw-prod-"
	itemClass     = "hw-product-item"
	nameClass     = "hw-product-name"
	ctaClass      = "hw-product-cta"
)

type Product struct {
	Name        string
	Subcategory string
	Index       int
	Count       int
	Price       decimal.Decimal
}

// Catalog is the set of priced products found on the hardware page, in page order.
type Catalog struct {
	products []Product
	byName   map[string]int
}

func New(products []Product) *Catalog {
	c := &Catalog{byName: make(map[string]int, len(products))}
	for _, p := range products {
		if _, exists := c.byName[p.Name]; !exists {
			c.byName[p.Name] = len(c.products)
		}
		c.products = append(c.products, p)
	}
	return c
}

// Scan walks an HTML page for product panels and prices every product it
// finds. Panels whose subcategory has no price band are left alone.
func Scan(r io.Reader, table pricing.Table) (*Catalog, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse catalog page: %w", err)
	}

	var products []Product
	walk(doc, func(n *html.Node) bool {
		if !hasClass(n, panelClass) {
			return true
		}

		sub := strings.TrimPrefix(attr(n, "id"), panelIDPrefix)
		band, ok := table.Lookup(sub)
		if !ok {
			return false
		}

		items := findAll(n, itemClass)
		for idx, item := range items {
			nameEl := findFirst(item, nameClass)
			if nameEl == nil || findFirst(item, ctaClass) == nil {
				continue
			}

			products = append(products, Product{
				Name:        strings.TrimSpace(textContent(nameEl)),
				Subcategory: sub,
				Index:       idx,
				Count:       len(items),
				Price:       pricing.Synthesize(band, idx, len(items)),
			})
		}
		return false
	})

	return New(products), nil
}

func (c *Catalog) Lookup(name string) (Product, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return Product{}, false
	}
	return c.products[idx], true
}

// LookupIn finds a product by name within one subcategory. An empty sub
// falls back to Lookup.
func (c *Catalog) LookupIn(name, sub string) (Product, bool) {
	if sub == "" {
		return c.Lookup(name)
	}
	for _, p := range c.products {
		if p.Name == name && p.Subcategory == sub {
			return p, true
		}
	}
	return Product{}, false
}

func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) BySubcategory(sub string) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Subcategory == sub {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, fn)
	}
}

func findAll(root *html.Node, class string) []*html.Node {
	var found []*html.Node
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		walk(child, func(n *html.Node) bool {
			if hasClass(n, class) {
				found = append(found, n)
			}
			return true
		})
	}
	return found
}

func findFirst(root *html.Node, class string) *html.Node {
	all := findAll(root, class)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(node *html.Node) bool {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		return true
	})
	return sb.String()
}
