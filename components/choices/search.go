package choices

import (
	"sort"
	"strings"

	"github.com/goliatone/go-signupform/pkg/model"
)

// Search filters options whose label or value contains query, ignoring case.
// Prefix matches come first; otherwise the list order is kept. An empty
// query returns every option.
func Search(options []model.Option, query string) []model.Option {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]model.Option{}, options...)
	}

	q := strings.ToLower(query)
	matches := make([]matchedOption, 0, len(options))
	for _, option := range options {
		label := strings.ToLower(option.Label)
		value := strings.ToLower(option.Value)
		if !strings.Contains(label, q) && !strings.Contains(value, q) {
			continue
		}
		matches = append(matches, matchedOption{
			option:   option,
			isPrefix: strings.HasPrefix(label, q) || strings.HasPrefix(value, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].isPrefix && !matches[j].isPrefix
	})

	out := make([]model.Option, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.option)
	}
	return out
}

type matchedOption struct {
	option   model.Option
	isPrefix bool
}
