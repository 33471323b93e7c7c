// Package extractor finds action items in meeting text: who must do what,
// optionally by when. Deadline keywords ("by", "before", "due") only count
// at the start of a word, so "standby monday" and "overdue" are not read
// as deadlines.
package extractor

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

// Extractor finds action items in free text. It never fails: tagging
// errors yield an empty slice. Items are not deduplicated.
type Extractor interface {
	Extract(ctx context.Context, text string) []models.ActionItem
}

// SentenceTagger splits text into tagged sentences.
type SentenceTagger interface {
	Tag(ctx context.Context, text string) ([]models.Sentence, error)
}
