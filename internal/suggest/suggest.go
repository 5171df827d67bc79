// Package suggest derives smart suggestions from the current list contents.
package suggest

import (
	"strings"

	"shoplist/internal/catalog"
	"shoplist/internal/domain"
)

const (
	seasonalLimit   = 3
	seasonalMessage = "In season now"
)

// Source is the reference data suggestions are drawn from.
type Source interface {
	Seasonal() []string
	Pairings() []catalog.Pairing
	Common() catalog.CommonItems
}

// Generate returns seasonal picks, then pairings whose trigger is on the list
// and whose suggestion is not, then the common items when the list is
// non-empty. Names are compared lower-cased and exactly.
func Generate(items []domain.ListItem, src Source) []domain.Suggestion {
	var out []domain.Suggestion

	if seasonal := src.Seasonal(); len(seasonal) > 0 {
		if len(seasonal) > seasonalLimit {
			seasonal = seasonal[:seasonalLimit]
		}
		out = append(out, domain.Suggestion{
			Kind:    domain.SuggestionSeasonal,
			Items:   seasonal,
			Message: seasonalMessage,
		})
	}

	names := make(map[string]bool, len(items))
	for _, item := range items {
		names[strings.ToLower(strings.TrimSpace(item.Name))] = true
	}
	for _, p := range src.Pairings() {
		if names[strings.ToLower(p.Trigger)] && !names[strings.ToLower(p.Suggest)] {
			out = append(out, domain.Suggestion{
				Kind:    domain.SuggestionRecommendation,
				Items:   []string{p.Suggest},
				Message: p.Message,
			})
		}
	}

	if common := src.Common(); len(items) > 0 && len(common.Items) > 0 {
		out = append(out, domain.Suggestion{
			Kind:    domain.SuggestionRecommendation,
			Items:   common.Items,
			Message: common.Message,
		})
	}
	return out
}
