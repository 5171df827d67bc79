// Package catalog holds the static reference data the assistant works from:
// the category taxonomy, substitutes, seasonal produce, co-occurrence pairings
// and the product attribute catalog.
//
// A Catalog is read-only once loaded. The default document is compiled into
// the binary; an alternate document can be loaded at startup with Load.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"shoplist/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultDocument []byte

type document struct {
	Taxonomy    []categoryEntry   `yaml:"taxonomy"`
	Substitutes []substituteEntry `yaml:"substitutes"`
	Seasonal    []string          `yaml:"seasonal"`
	Pairings    []Pairing         `yaml:"pairings"`
	Common      CommonItems       `yaml:"common"`
	Products    []productEntry    `yaml:"products"`
}

type categoryEntry struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

type substituteEntry struct {
	Item         string   `yaml:"item"`
	Alternatives []string `yaml:"alternatives"`
}

type productEntry struct {
	Name                  string `yaml:"name"`
	domain.ProductDetails `yaml:",inline"`
}

// Pairing suggests Suggest when Trigger is on the list and Suggest is not.
type Pairing struct {
	Trigger string `yaml:"trigger"`
	Suggest string `yaml:"suggest"`
	Message string `yaml:"message"`
}

// CommonItems is the generic suggestion shown for any non-empty list.
type CommonItems struct {
	Items   []string `yaml:"items"`
	Message string   `yaml:"message"`
}

// Product is a catalog record with its lower-cased lookup key.
type Product struct {
	Name    string
	Details domain.ProductDetails
}

type Catalog struct {
	taxonomy    []categoryEntry
	substitutes map[string][]string
	seasonal    []string
	pairings    []Pairing
	common      CommonItems
	products    []Product
	byProduct   map[string]domain.ProductDetails
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(defaultDocument)
})

// Default returns the compiled-in catalog.
func Default() *Catalog {
	c, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded document is invalid: %v", err))
	}
	return c
}

// Load reads a catalog document from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}

	c := &Catalog{
		substitutes: make(map[string][]string, len(doc.Substitutes)),
		byProduct:   make(map[string]domain.ProductDetails, len(doc.Products)),
		common: CommonItems{
			Items:   cleanList(doc.Common.Items),
			Message: strings.TrimSpace(doc.Common.Message),
		},
		seasonal: cleanList(doc.Seasonal),
	}

	seen := make(map[string]bool)
	for _, entry := range doc.Taxonomy {
		name := normalizeTextToken(entry.Category)
		if name == "" {
			return nil, fmt.Errorf("taxonomy entry with empty category")
		}
		if name == string(domain.CategoryOther) {
			return nil, fmt.Errorf("category %q is reserved", name)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate category %q", name)
		}
		seen[name] = true

		var keywords []string
		for _, k := range entry.Keywords {
			if k = normalizeTextToken(k); k != "" {
				keywords = append(keywords, k)
			}
		}
		c.taxonomy = append(c.taxonomy, categoryEntry{Category: name, Keywords: keywords})
	}

	for _, s := range doc.Substitutes {
		item := normalizeTextToken(s.Item)
		if item == "" {
			continue
		}
		c.substitutes[item] = cleanList(s.Alternatives)
	}

	for _, p := range doc.Pairings {
		trigger := normalizeTextToken(p.Trigger)
		suggest := strings.TrimSpace(p.Suggest)
		if trigger == "" || suggest == "" {
			return nil, fmt.Errorf("pairing needs both trigger and suggest (got %q -> %q)", p.Trigger, p.Suggest)
		}
		c.pairings = append(c.pairings, Pairing{Trigger: trigger, Suggest: suggest, Message: strings.TrimSpace(p.Message)})
	}

	for _, p := range doc.Products {
		name := normalizeTextToken(p.Name)
		if name == "" {
			return nil, fmt.Errorf("product entry with empty name")
		}
		if _, dup := c.byProduct[name]; dup {
			return nil, fmt.Errorf("duplicate product %q", name)
		}
		c.byProduct[name] = p.ProductDetails
		c.products = append(c.products, Product{Name: name, Details: p.ProductDetails})
	}

	return c, nil
}

// Categories lists taxonomy categories in declaration order.
func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, 0, len(c.taxonomy))
	for _, entry := range c.taxonomy {
		out = append(out, domain.Category(entry.Category))
	}
	return out
}

func (c *Catalog) Keywords(category domain.Category) []string {
	for _, entry := range c.taxonomy {
		if entry.Category == string(category) {
			return append([]string(nil), entry.Keywords...)
		}
	}
	return nil
}

// Substitutes returns alternatives for item, or nil if none are known.
func (c *Catalog) Substitutes(item string) []string {
	alts := c.substitutes[normalizeTextToken(item)]
	if len(alts) == 0 {
		return nil
	}
	return append([]string(nil), alts...)
}

func (c *Catalog) Seasonal() []string {
	return append([]string(nil), c.seasonal...)
}

func (c *Catalog) Pairings() []Pairing {
	return append([]Pairing(nil), c.pairings...)
}

func (c *Catalog) Common() CommonItems {
	return CommonItems{Items: append([]string(nil), c.common.Items...), Message: c.common.Message}
}

// Products lists product records in declaration order.
func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

func (c *Catalog) Product(name string) (domain.ProductDetails, bool) {
	d, ok := c.byProduct[normalizeTextToken(name)]
	return d, ok
}

// FindProductIn returns the first product, in declaration order, whose name
// occurs in text.
func (c *Catalog) FindProductIn(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, p := range c.products {
		if strings.Contains(lower, p.Name) {
			return p.Name, true
		}
	}
	return "", false
}

func normalizeTextToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func cleanList(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
