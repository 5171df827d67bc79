// Package shoplist is the in-memory shopping list: an ordered collection of
// line items with add/remove/update/clear operations and filtered, grouped
// views. A List is owned by a single controller and is not safe for
// concurrent mutation.
package shoplist

import (
	"fmt"
	"strings"
	"time"

	"shoplist/internal/domain"

	"github.com/google/uuid"
)

// Categorizer assigns a taxonomy category to an item name.
type Categorizer interface {
	Categorize(name string) domain.Category
}

type List struct {
	categorizer Categorizer
	items       []domain.ListItem
	now         func() time.Time
	newID       func() string
}

type Option func(*List)

func WithClock(now func() time.Time) Option {
	return func(l *List) { l.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(l *List) { l.newID = newID }
}

func New(categorizer Categorizer, opts ...Option) *List {
	l := &List{
		categorizer: categorizer,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add appends a new item. Quantities below 1 are stored as 1.
func (l *List) Add(name string, quantity int) (domain.ListItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ListItem{}, domain.ErrEmptyName
	}
	id := l.newID()
	if l.indexOf(id) >= 0 {
		return domain.ListItem{}, fmt.Errorf("duplicate item id %q", id)
	}
	item := domain.ListItem{
		ID:       id,
		Name:     name,
		Quantity: clampQuantity(quantity),
		Category: l.categorizer.Categorize(name),
		AddedAt:  l.now(),
	}
	l.items = append(l.items, item)
	return item, nil
}

func (l *List) RemoveByID(id string) (domain.ListItem, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		return domain.ListItem{}, fmt.Errorf("%w: id %s", domain.ErrNotFound, id)
	}
	return l.removeAt(idx), nil
}

// RemoveByQuery removes the first item, in list order, whose name contains
// query case-insensitively. When several items match only the first goes.
func (l *List) RemoveByQuery(query string) (domain.ListItem, error) {
	lower := strings.ToLower(strings.TrimSpace(query))
	if lower == "" {
		return domain.ListItem{}, fmt.Errorf("%w: empty query", domain.ErrNotFound)
	}
	for i, item := range l.items {
		if strings.Contains(strings.ToLower(item.Name), lower) {
			return l.removeAt(i), nil
		}
	}
	return domain.ListItem{}, fmt.Errorf("%w: %q", domain.ErrNotFound, query)
}

func (l *List) SetQuantity(id string, quantity int) (domain.ListItem, error) {
	return l.update(id, func(int) int { return quantity })
}

func (l *List) Increment(id string) (domain.ListItem, error) {
	return l.update(id, func(q int) int { return q + 1 })
}

// Decrement lowers the quantity by one, never below 1.
func (l *List) Decrement(id string) (domain.ListItem, error) {
	return l.update(id, func(q int) int { return q - 1 })
}

func (l *List) Clear() {
	l.items = nil
}

func (l *List) Len() int {
	return len(l.items)
}

func (l *List) Get(id string) (domain.ListItem, bool) {
	idx := l.indexOf(id)
	if idx < 0 {
		return domain.ListItem{}, false
	}
	return l.items[idx], true
}

// Items returns a snapshot in insertion order.
func (l *List) Items() []domain.ListItem {
	return append([]domain.ListItem(nil), l.items...)
}

// Query returns items whose name contains term case-insensitively, or every
// item when term is blank.
func (l *List) Query(term string) []domain.ListItem {
	lower := strings.ToLower(strings.TrimSpace(term))
	if lower == "" {
		return l.Items()
	}
	var out []domain.ListItem
	for _, item := range l.items {
		if strings.Contains(strings.ToLower(item.Name), lower) {
			out = append(out, item)
		}
	}
	return out
}

// Names returns lower-cased item names in list order.
func (l *List) Names() []string {
	out := make([]string, 0, len(l.items))
	for _, item := range l.items {
		out = append(out, strings.ToLower(item.Name))
	}
	return out
}

func (l *List) update(id string, next func(int) int) (domain.ListItem, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		return domain.ListItem{}, fmt.Errorf("%w: id %s", domain.ErrNotFound, id)
	}
	l.items[idx].Quantity = clampQuantity(next(l.items[idx].Quantity))
	return l.items[idx], nil
}

func (l *List) indexOf(id string) int {
	for i, item := range l.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (l *List) removeAt(idx int) domain.ListItem {
	removed := l.items[idx]
	l.items = append(l.items[:idx:idx], l.items[idx+1:]...)
	return removed
}

func clampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
