package catalog

import "strings"

// FilterAll is the grid filter chip that shows every product.
const FilterAll = "All"

// Catalog is the immutable product list loaded at start.
type Catalog struct {
	products []Product
	byID     map[ID]int
}

// New indexes products by id. On duplicate ids the first product wins.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[ID]int, len(products)),
	}
	for i := range products {
		if _, dup := c.byID[products[i].ID]; !dup {
			c.byID[products[i].ID] = i
		}
	}
	return c
}

// Empty is the catalog used when loading fails.
func Empty() *Catalog { return New(nil) }

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Products returns the products in source order.
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	return c.products
}

// Find looks a product up by id.
func (c *Catalog) Find(id ID) (*Product, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.byID[ID(strings.TrimSpace(string(id)))]
	if !ok {
		return nil, false
	}
	return &c.products[i], true
}

// Filter keeps products whose badge equals filter. "All" or blank keeps
// everything.
func Filter(products []Product, filter string) []Product {
	filter = strings.TrimSpace(filter)
	if filter == "" || filter == FilterAll {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Badge == filter {
			out = append(out, p)
		}
	}
	return out
}
