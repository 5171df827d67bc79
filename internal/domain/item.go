package domain

import "time"

// Category is a taxonomy tag. CategoryOther is used when no keyword matches.
type Category string

const CategoryOther Category = "other"

func (c Category) String() string { return string(c) }

type ListItem struct {
	ID       string
	Name     string // trimmed, case preserved
	Quantity int    // always >= 1
	Category Category
	AddedAt  time.Time
}

// CategoryGroup is one section of the grouped list view.
type CategoryGroup struct {
	Category Category
	Items    []ListItem
}

type SuggestionKind string

const (
	SuggestionSeasonal       SuggestionKind = "seasonal"
	SuggestionRecommendation SuggestionKind = "recommendation"
)

type Suggestion struct {
	Kind    SuggestionKind
	Items   []string
	Message string
}

// ProductDetails is one product catalog record.
type ProductDetails struct {
	Battery   string `yaml:"battery" json:"battery"`
	Memory    string `yaml:"memory" json:"memory"`
	Processor string `yaml:"processor" json:"processor"`
}
