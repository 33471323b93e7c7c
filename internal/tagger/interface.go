package tagger

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

// Tagger splits text into sentences and tags named entities per sentence.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]models.Sentence, error)
	Close() error
}
