package suggest

import (
	"reflect"
	"testing"

	"shoplist/internal/catalog"
	"shoplist/internal/domain"
)

func items(names ...string) []domain.ListItem {
	out := make([]domain.ListItem, 0, len(names))
	for _, n := range names {
		out = append(out, domain.ListItem{Name: n, Quantity: 1})
	}
	return out
}

func TestGenerateEmptyList(t *testing.T) {
	got := Generate(nil, catalog.Default())
	want := []domain.Suggestion{
		{Kind: domain.SuggestionSeasonal, Items: []string{"pumpkin", "squash", "cranberries"}, Message: "In season now"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected suggestions: got %+v want %+v", got, want)
	}
}

func TestGenerateMilkWithoutCereal(t *testing.T) {
	got := Generate(items("Milk", "apples"), catalog.Default())
	if len(got) != 3 {
		t.Fatalf("unexpected suggestion count: got %d want 3", len(got))
	}
	if !reflect.DeepEqual(got[1].Items, []string{"cereal"}) || got[1].Message != "Often bought together" {
		t.Fatalf("unexpected pairing suggestion: %+v", got[1])
	}
	want := domain.Suggestion{
		Kind:    domain.SuggestionRecommendation,
		Items:   []string{"bread", "eggs", "butter"},
		Message: "Commonly needed items",
	}
	if !reflect.DeepEqual(got[2], want) {
		t.Fatalf("unexpected common suggestion: got %+v want %+v", got[2], want)
	}
}

func TestGenerateSkipsPairingWhenSuggestionPresent(t *testing.T) {
	got := Generate(items("milk", "cereal"), catalog.Default())
	for _, s := range got {
		if s.Message == "Often bought together" {
			t.Fatalf("pairing should be suppressed when cereal is listed: %+v", got)
		}
	}
}

func TestGeneratePairingNeedsExactName(t *testing.T) {
	got := Generate(items("almond milk"), catalog.Default())
	for _, s := range got {
		if s.Message == "Often bought together" {
			t.Fatalf("pairing should only trigger on an exact name: %+v", got)
		}
	}
}

func TestGenerateWithoutSeasonalItems(t *testing.T) {
	c, err := catalog.Parse([]byte("common:\n  items: [rice]\n  message: Staples\n"))
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	if got := Generate(nil, c); len(got) != 0 {
		t.Fatalf("expected no suggestions, got %+v", got)
	}
	got := Generate(items("beans"), c)
	if len(got) != 1 || got[0].Message != "Staples" {
		t.Fatalf("unexpected suggestions: %+v", got)
	}
}
