package extractor

import (
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

// Dedupe keeps the first item for each lower-cased, trimmed description
// and preserves input order.
func Dedupe(items []models.ActionItem) []models.ActionItem {
	seen := make(map[string]struct{}, len(items))
	unique := make([]models.ActionItem, 0, len(items))

	for _, item := range items {
		key := dedupeKey(item.Description)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}

func dedupeKey(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}
