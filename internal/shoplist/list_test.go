package shoplist

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"shoplist/internal/catalog"
	"shoplist/internal/domain"
)

func newTestList(t *testing.T) *List {
	t.Helper()
	n := 0
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	return New(catalog.Default(),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("item-%d", n)
		}),
		WithClock(func() time.Time { return base }),
	)
}

func mustAdd(t *testing.T, l *List, name string, qty int) domain.ListItem {
	t.Helper()
	item, err := l.Add(name, qty)
	if err != nil {
		t.Fatalf("Add(%q, %d) failed: %v", name, qty, err)
	}
	return item
}

func TestAddAndQueryRoundTrip(t *testing.T) {
	l := newTestList(t)

	mustAdd(t, l, "  Bananas ", 2)

	items := l.Query("")
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	got := items[0]
	if got.Name != "Bananas" || got.Quantity != 2 || got.Category != "produce" {
		t.Fatalf("unexpected item: %+v", got)
	}
	if got.ID != "item-1" {
		t.Fatalf("unexpected id: %q", got.ID)
	}
	if !got.AddedAt.Equal(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected added-at: %v", got.AddedAt)
	}
}

func TestAddRejectsBlankName(t *testing.T) {
	l := newTestList(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := l.Add(name, 1); !errors.Is(err, domain.ErrEmptyName) {
			t.Fatalf("expected ErrEmptyName for %q, got %v", name, err)
		}
	}
	if l.Len() != 0 {
		t.Fatalf("expected empty list after rejected adds, got %d", l.Len())
	}
}

func TestAddClampsQuantity(t *testing.T) {
	l := newTestList(t)

	for _, qty := range []int{0, -5} {
		if item := mustAdd(t, l, "eggs", qty); item.Quantity != 1 {
			t.Fatalf("expected clamped quantity 1 for %d, got %d", qty, item.Quantity)
		}
	}
}

func TestAddRejectsDuplicateIDs(t *testing.T) {
	l := New(catalog.Default(), WithIDGenerator(func() string { return "same" }))

	mustAdd(t, l, "milk", 1)
	if _, err := l.Add("bread", 1); err == nil {
		t.Fatal("expected duplicate id to be rejected")
	}
	if l.Len() != 1 {
		t.Fatalf("expected list to keep one item, got %d", l.Len())
	}
}

func TestDefaultIDsAreUnique(t *testing.T) {
	l := New(catalog.Default())
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		item := mustAdd(t, l, "apple", 1)
		if seen[item.ID] {
			t.Fatalf("duplicate id generated: %s", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestRemoveByID(t *testing.T) {
	l := newTestList(t)
	milk := mustAdd(t, l, "milk", 1)
	mustAdd(t, l, "bread", 1)

	removed, err := l.RemoveByID(milk.ID)
	if err != nil {
		t.Fatalf("RemoveByID failed: %v", err)
	}
	if removed.Name != "milk" {
		t.Fatalf("unexpected removed item: %+v", removed)
	}
	if _, err := l.RemoveByID(milk.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second removal, got %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("expected one item left, got %d", l.Len())
	}
}

func TestRemoveByQueryNotFoundLeavesListUnchanged(t *testing.T) {
	l := newTestList(t)
	mustAdd(t, l, "bread", 1)
	mustAdd(t, l, "eggs", 12)
	before := l.Items()

	if _, err := l.RemoveByQuery("milk"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := l.RemoveByQuery("  "); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank query, got %v", err)
	}

	after := l.Items()
	if len(after) != len(before) {
		t.Fatalf("list changed after failed removal: before=%d after=%d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("item %d changed: before=%+v after=%+v", i, before[i], after[i])
		}
	}
}

// Known limitation: an ambiguous query removes only the first match.
func TestRemoveByQueryRemovesFirstMatchOnly(t *testing.T) {
	l := newTestList(t)
	mustAdd(t, l, "Almond Milk", 1)
	mustAdd(t, l, "milk", 2)

	removed, err := l.RemoveByQuery("MILK")
	if err != nil {
		t.Fatalf("RemoveByQuery failed: %v", err)
	}
	if removed.Name != "Almond Milk" {
		t.Fatalf("expected first match to be removed, got %q", removed.Name)
	}
	if items := l.Items(); len(items) != 1 || items[0].Name != "milk" {
		t.Fatalf("unexpected remaining items: %+v", items)
	}
}

func TestSetQuantityClamps(t *testing.T) {
	l := newTestList(t)
	item := mustAdd(t, l, "apples", 4)

	for _, qty := range []int{0, -5} {
		got, err := l.SetQuantity(item.ID, qty)
		if err != nil {
			t.Fatalf("SetQuantity failed: %v", err)
		}
		if got.Quantity != 1 {
			t.Fatalf("expected quantity 1 after SetQuantity(%d), got %d", qty, got.Quantity)
		}
	}

	got, _ := l.SetQuantity(item.ID, 9)
	if got.Quantity != 9 {
		t.Fatalf("unexpected quantity: %d", got.Quantity)
	}
	if _, err := l.SetQuantity("missing", 3); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIncrementDecrement(t *testing.T) {
	l := newTestList(t)
	item := mustAdd(t, l, "apples", 3)

	if _, err := l.Increment(item.ID); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	got, err := l.Decrement(item.ID)
	if err != nil {
		t.Fatalf("Decrement failed: %v", err)
	}
	if got.Quantity != 3 {
		t.Fatalf("increment+decrement should restore quantity, got %d", got.Quantity)
	}

	one := mustAdd(t, l, "pear", 1)
	got, _ = l.Decrement(one.ID)
	if got.Quantity != 1 {
		t.Fatalf("decrement should floor at 1, got %d", got.Quantity)
	}
	_, _ = l.Increment(one.ID)
	got, _ = l.Decrement(one.ID)
	if got.Quantity != 1 {
		t.Fatalf("increment+decrement from 1 should restore 1, got %d", got.Quantity)
	}

	if _, err := l.Increment("missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClear(t *testing.T) {
	l := newTestList(t)
	mustAdd(t, l, "milk", 1)
	mustAdd(t, l, "bread", 1)

	l.Clear()
	if l.Len() != 0 {
		t.Fatalf("expected empty list, got %d", l.Len())
	}
	l.Clear()
	if l.Len() != 0 {
		t.Fatal("clearing an empty list should leave it empty")
	}
}

func TestSnapshotsAreNotAliased(t *testing.T) {
	l := newTestList(t)
	item := mustAdd(t, l, "milk", 1)

	snapshot := l.Items()
	snapshot[0].Quantity = 42
	if got, _ := l.Get(item.ID); got.Quantity != 1 {
		t.Fatalf("list mutated through snapshot: %d", got.Quantity)
	}

	mustAdd(t, l, "bread", 1)
	before := l.Items()
	if _, err := l.RemoveByID(item.ID); err != nil {
		t.Fatalf("RemoveByID failed: %v", err)
	}
	if before[0].Name != "milk" || before[1].Name != "bread" {
		t.Fatalf("earlier snapshot changed after removal: %+v", before)
	}
}

func TestQueryFiltersCaseInsensitively(t *testing.T) {
	l := newTestList(t)
	mustAdd(t, l, "Green Apples", 2)
	mustAdd(t, l, "apple juice", 1)
	mustAdd(t, l, "bread", 1)

	got := l.Query("APPLE")
	if len(got) != 2 || got[0].Name != "Green Apples" || got[1].Name != "apple juice" {
		t.Fatalf("unexpected query result: %+v", got)
	}
	if got := l.Query("caviar"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
	if got := l.Names(); len(got) != 3 || got[0] != "green apples" {
		t.Fatalf("unexpected names: %v", got)
	}
}

func TestGroupByCategory(t *testing.T) {
	l := newTestList(t)
	mustAdd(t, l, "bread", 1)  // bakery
	mustAdd(t, l, "milk", 1)   // dairy
	mustAdd(t, l, "bagel", 2)  // bakery
	mustAdd(t, l, "gadget", 1) // other
	mustAdd(t, l, "cheese", 1) // dairy

	groups := GroupByCategory(l.Items())
	wantOrder := []domain.Category{"bakery", "dairy", domain.CategoryOther}
	if len(groups) != len(wantOrder) {
		t.Fatalf("unexpected group count: got %d want %d", len(groups), len(wantOrder))
	}
	for i, cat := range wantOrder {
		if groups[i].Category != cat {
			t.Fatalf("unexpected group %d: got %s want %s", i, groups[i].Category, cat)
		}
	}
	if groups[0].Items[0].Name != "bread" || groups[0].Items[1].Name != "bagel" {
		t.Fatalf("unexpected bakery order: %+v", groups[0].Items)
	}
	if groups[1].Items[0].Name != "milk" || groups[1].Items[1].Name != "cheese" {
		t.Fatalf("unexpected dairy order: %+v", groups[1].Items)
	}

	if got := GroupByCategory(nil); len(got) != 0 {
		t.Fatalf("expected no groups for empty input, got %d", len(got))
	}
}
