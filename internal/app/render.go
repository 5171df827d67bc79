package app

import (
	"fmt"
	"sort"
	"strings"

	"shoplist/internal/assistant"
	"shoplist/internal/domain"

	"golang.org/x/text/cases"
)

func (s *shell) render(out assistant.Outcome) {
	if out.Feedback != "" {
		fmt.Fprintln(s.out, out.Feedback)
	}

	title := cases.Title(s.ctl.Language())
	position := make(map[string]int, len(out.Items))
	for i, item := range out.Items {
		position[item.ID] = i + 1
	}

	header := fmt.Sprintf("Shopping list (%d item(s))", len(out.Items))
	if q := s.ctl.SearchQuery(); q != "" {
		header += fmt.Sprintf(", filtered by %q", q)
	}
	fmt.Fprintln(s.out, header+":")
	if len(out.Groups) == 0 {
		fmt.Fprintln(s.out, "  (empty)")
	}
	for _, group := range out.Groups {
		fmt.Fprintf(s.out, "  %s\n", title.String(group.Category.String()))
		for _, item := range group.Items {
			fmt.Fprintf(s.out, "    %d. %s x%d\n", position[item.ID], item.Name, item.Quantity)
		}
	}

	if len(out.Suggestions) > 0 {
		fmt.Fprintln(s.out, "Suggestions:")
		for _, sg := range out.Suggestions {
			fmt.Fprintf(s.out, "  %s: %s\n", sg.Message, strings.Join(sg.Items, ", "))
		}
	}
}

func sortedIntents(counts map[domain.Intent]int) []domain.Intent {
	out := make([]domain.Intent, 0, len(counts))
	for intent := range counts {
		out = append(out, intent)
	}
	sort.Slice(out, func(i, j int) bool {
		if counts[out[i]] != counts[out[j]] {
			return counts[out[i]] > counts[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}
