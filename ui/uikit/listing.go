// Package uikit carries the view plumbing every feature screen shares:
// text search, client-side pagination, mutation form modes with field
// errors, and the confirmation dialog.
package uikit

import "strings"

// MatchesSearch reports whether any of the record's searchable fields
// contains the query, case-insensitively. An empty query matches
// everything.
func MatchesSearch(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// TotalPages returns how many pages of size pageSize the count fills, at
// least 1.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages >= 1 && page > totalPages {
		return totalPages
	}
	return page
}

// Paginate slices the filtered list for the given page, clamping first.
func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	page = ClampPage(page, TotalPages(len(items), pageSize))
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
