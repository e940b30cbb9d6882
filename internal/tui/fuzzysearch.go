package tui

import (
	"github.com/sahilm/fuzzy"

	"headrev/internal/registry"
)

func FilterUpstreams(query string, items []registry.Upstream) []registry.Upstream {
	if query == "" {
		return items
	}

	names := make([]string, 0, len(items))
	for _, u := range items {
		names = append(names, u.Name)
	}

	matches := fuzzy.FindFrom(query, stringSource(names))
	filtered := make([]registry.Upstream, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, items[match.Index])
	}

	return filtered
}

type stringSource []string

func (s stringSource) Len() int {
	return len(s)
}

func (s stringSource) String(i int) string {
	return s[i]
}
