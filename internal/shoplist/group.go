package shoplist

import "shoplist/internal/domain"

// GroupByCategory groups items by category. Groups appear in the order their
// category is first seen; items keep their relative order within a group.
func GroupByCategory(items []domain.ListItem) []domain.CategoryGroup {
	var groups []domain.CategoryGroup
	index := make(map[domain.Category]int)
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, domain.CategoryGroup{Category: item.Category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
