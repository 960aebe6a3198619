package search

import (
	"strconv"
	"strings"
)

// PreviewCount is how many matches a collapsed list shows.
const PreviewCount = 5

// Matches reports whether query is a case-insensitive substring of name or a
// substring of id's decimal form. An empty query matches everything.
func Matches(query, name string, id int64) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(name), strings.ToLower(query)) {
		return true
	}
	return strings.Contains(strconv.FormatInt(id, 10), query)
}

// Filter keeps the items whose name or id matches query, preserving order.
func Filter[T any](items []T, query string, key func(T) (string, int64)) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		name, id := key(item)
		if Matches(query, name, id) {
			out = append(out, item)
		}
	}
	return out
}

// Page is one presentation of a filtered set: either the first PreviewCount
// items or all of them.
type Page[T any] struct {
	Query    string `json:"query"`
	Items    []T    `json:"items"`
	Total    int    `json:"total"`
	HasMore  bool   `json:"has_more"`
	Expanded bool   `json:"expanded"`
	Empty    bool   `json:"empty"`
}

func Preview[T any](query string, matched []T, viewAll bool) Page[T] {
	items := matched
	if !viewAll && len(items) > PreviewCount {
		items = items[:PreviewCount]
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Query:    query,
		Items:    items,
		Total:    len(matched),
		HasMore:  len(matched) > PreviewCount,
		Expanded: viewAll,
		Empty:    len(matched) == 0,
	}
}
