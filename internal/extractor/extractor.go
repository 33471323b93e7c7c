package extractor

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

// Extract tags text and runs the strategies over every sentence long
// enough to carry an action. The first matching strategy wins and each
// sentence yields at most one item.
func (e *implExtractor) Extract(ctx context.Context, text string) []models.ActionItem {
	items := []models.ActionItem{}

	sentences, err := e.tagger.Tag(ctx, text)
	if err != nil {
		e.logger.Error(ctx, "Error extracting action items: %v", err)
		return items
	}

	for _, s := range sentences {
		s.Text = strings.TrimSpace(s.Text)
		if len(strings.Fields(s.Text)) < e.minWords {
			continue
		}

		if item, ok := e.extractFromSentence(ctx, s); ok {
			items = append(items, item)
		}
	}

	e.logger.Info(ctx, "Extracted %d action items from %d sentences", len(items), len(sentences))
	return items
}

func (e *implExtractor) extractFromSentence(ctx context.Context, s models.Sentence) (models.ActionItem, bool) {
	for _, st := range e.strategies {
		if item, ok := st.match(s); ok {
			e.logger.Debug(ctx, "Strategy %s matched: %q", st.name, s.Text)
			return item, true
		}
	}
	return models.ActionItem{}, false
}
