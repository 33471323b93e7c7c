package tagger

import (
	"context"
	"fmt"
	"strings"

	"github.com/knights-analytics/hugot/pipelines"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

// Tag splits text into sentences and runs NER over all of them in one batch.
func (t *implTagger) Tag(ctx context.Context, text string) ([]models.Sentence, error) {
	parts, err := SplitSentences(text)
	if err != nil {
		return nil, err
	}
	sentences := make([]models.Sentence, len(parts))
	for i, p := range parts {
		sentences[i].Text = p
	}

	if t.ner == nil || len(parts) == 0 {
		return sentences, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	output, err := t.ner.RunPipeline(parts)
	if err != nil {
		return nil, fmt.Errorf("run token classification: %w", err)
	}
	if output == nil || len(output.Entities) != len(parts) {
		return nil, fmt.Errorf("token classification returned %d results for %d sentences", entityGroups(output), len(parts))
	}

	for i, group := range output.Entities {
		sentences[i].Entities = toEntities(parts[i], group)
	}

	t.logger.Debug(ctx, "Tagged %d sentences", len(sentences))
	return sentences, nil
}

func entityGroups(out *pipelines.TokenClassificationOutput) int {
	if out == nil {
		return 0
	}
	return len(out.Entities)
}

func toEntities(sentence string, group []pipelines.Entity) []models.Entity {
	entities := make([]models.Entity, 0, len(group))
	for _, e := range group {
		label := normalizeLabel(e.Entity)
		if label == "" {
			continue
		}
		text := strings.TrimSpace(e.Word)
		if start, end := int(e.Start), int(e.End); start < end && end <= len(sentence) {
			text = strings.TrimSpace(sentence[start:end])
		}
		if text == "" {
			continue
		}
		entities = append(entities, models.Entity{Label: label, Text: text})
	}
	return entities
}

// normalizeLabel maps model labels onto the ones the extractor reads.
// "O" and empty labels are dropped.
func normalizeLabel(raw string) string {
	label := strings.ToUpper(strings.TrimSpace(raw))
	label = strings.TrimPrefix(strings.TrimPrefix(label, "B-"), "I-")

	switch label {
	case "", "O":
		return ""
	case "PER", "PERSON":
		return models.LabelPerson
	case "DATE":
		return models.LabelDate
	default:
		return label
	}
}
