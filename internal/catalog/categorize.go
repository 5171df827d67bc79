package catalog

import (
	"strings"

	"shoplist/internal/domain"
)

// Categorize returns the first category, in taxonomy order, with a keyword
// contained in name. Names matching nothing are CategoryOther.
func (c *Catalog) Categorize(name string) domain.Category {
	lower := strings.ToLower(name)
	for _, entry := range c.taxonomy {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				return domain.Category(entry.Category)
			}
		}
	}
	return domain.CategoryOther
}
