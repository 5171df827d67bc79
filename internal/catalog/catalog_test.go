package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shoplist/internal/domain"
)

func TestCategorize(t *testing.T) {
	c := Default()

	cases := map[string]domain.Category{
		"almond milk":        "dairy",
		"Bananas":            "produce",
		"2 bottles of water": "beverages",
		"Paper Towels":       "household",
		"xyz123":             domain.CategoryOther,
		"":                   domain.CategoryOther,
	}
	for name, want := range cases {
		if got := c.Categorize(name); got != want {
			t.Fatalf("unexpected category for %q: got %s want %s", name, got, want)
		}
	}
}

func TestCategorizeUsesDeclarationOrder(t *testing.T) {
	// "buttered popcorn" hits dairy (butter) before snacks (popcorn).
	if got := Default().Categorize("buttered popcorn"); got != "dairy" {
		t.Fatalf("expected first declared category to win, got %s", got)
	}
	// "chocolate milk cake" contains both milk and cake; dairy is declared first.
	if got := Default().Categorize("chocolate milk cake"); got != "dairy" {
		t.Fatalf("expected dairy, got %s", got)
	}
}

func TestDefaultCatalogContents(t *testing.T) {
	c := Default()

	cats := c.Categories()
	want := []domain.Category{"dairy", "produce", "meat", "bakery", "snacks", "beverages", "household"}
	if len(cats) != len(want) {
		t.Fatalf("unexpected category count: got %d want %d", len(cats), len(want))
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("unexpected category at %d: got %s want %s", i, cats[i], want[i])
		}
	}

	if got := c.Seasonal(); len(got) != 5 || got[0] != "pumpkin" {
		t.Fatalf("unexpected seasonal set: %v", got)
	}
	if got := c.Substitutes("Milk"); strings.Join(got, ",") != "almond milk,soy milk,oat milk" {
		t.Fatalf("unexpected milk substitutes: %v", got)
	}
	if got := c.Substitutes("caviar"); got != nil {
		t.Fatalf("expected no substitutes for unknown item, got %v", got)
	}

	details, ok := c.Product("iPhone 12")
	if !ok {
		t.Fatal("expected iphone 12 in product catalog")
	}
	if details.Processor != "A14 Bionic" {
		t.Fatalf("unexpected processor: %q", details.Processor)
	}
}

func TestFindProductInPrefersDeclarationOrder(t *testing.T) {
	c := Default()

	name, ok := c.FindProductIn("compare the samsung s21 and the oppo a9 battery")
	if !ok || name != "oppo a9" {
		t.Fatalf("expected first declared product to win, got %q ok=%v", name, ok)
	}
	if _, ok := c.FindProductIn("what about the pixel"); ok {
		t.Fatal("expected no product for unknown name")
	}
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	c := Default()
	seasonal := c.Seasonal()
	seasonal[0] = "mutated"
	if c.Seasonal()[0] != "pumpkin" {
		t.Fatal("catalog seasonal set was mutated through returned slice")
	}
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	docs := map[string]string{
		"reserved":  "taxonomy:\n  - category: other\n    keywords: [x]\n",
		"duplicate": "taxonomy:\n  - category: dairy\n  - category: Dairy\n",
		"empty":     "taxonomy:\n  - keywords: [x]\n",
		"pairing":   "pairings:\n  - trigger: milk\n",
		"product":   "products:\n  - battery: 1mAh\n",
		"yaml":      "taxonomy: [",
	}
	for name, doc := range docs {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected parse error", name)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
taxonomy:
  - category: Pets
    keywords: [" Kibble ", litter]
seasonal: [asparagus]
products:
  - name: Pixel 8
    battery: 4575mAh
    memory: 8GB/128GB
    processor: Tensor G3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := c.Categorize("dry kibble"); got != "pets" {
		t.Fatalf("unexpected category from loaded taxonomy: %s", got)
	}
	if got := c.Keywords("pets"); len(got) != 2 || got[0] != "kibble" {
		t.Fatalf("expected normalized keywords, got %v", got)
	}
	if _, ok := c.Product("pixel 8"); !ok {
		t.Fatal("expected product lookup by lower-cased name")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}
