package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
)

const (
	// TooShortMarker is returned for input below the minimum word count.
	TooShortMarker = "Text too short to summarize."
	// ErrorMarker is returned when the engine fails.
	ErrorMarker = "Error generating summary."
)

// Summarize implements the chunked summary policy:
// one chunk is summarized directly; several chunks are summarized
// independently and joined, and the join gets exactly one more pass when
// it is still longer than the combined threshold.
func (s *implSummarizer) Summarize(ctx context.Context, text string) string {
	words := strings.Fields(text)
	if len(words) < s.policy.MinWords {
		s.logger.Debug(ctx, "Skipping summary: %d words < %d", len(words), s.policy.MinWords)
		return TooShortMarker
	}

	summary, err := s.summarizeWords(ctx, words)
	if err != nil {
		s.logger.Error(ctx, "Error in summarization: %v", err)
		return ErrorMarker
	}

	s.logger.Info(ctx, "Summary generated (%d words)", len(strings.Fields(summary)))
	return summary
}

func (s *implSummarizer) summarizeWords(ctx context.Context, words []string) (string, error) {
	chunks := chunkWords(words, s.policy.MaxChunkWords)

	if len(chunks) == 1 {
		return s.call(ctx, chunks[0], s.policy.Single)
	}

	s.logger.Info(ctx, "Summarizing %d chunks of up to %d words", len(chunks), s.policy.MaxChunkWords)

	summaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		out, err := s.call(ctx, chunk, s.policy.Chunk)
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		summaries = append(summaries, out)
	}

	combined := strings.Join(summaries, " ")
	if len(strings.Fields(combined)) <= s.policy.CombinedThreshold {
		return combined, nil
	}

	out, err := s.call(ctx, combined, s.policy.Combined)
	if err != nil {
		return "", fmt.Errorf("summarize combined: %w", err)
	}
	return out, nil
}

func (s *implSummarizer) call(ctx context.Context, text string, b config.Bounds) (string, error) {
	out, err := s.engine.Summarize(ctx, text, b.MaxLength, b.MinLength)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// chunkWords splits words into space-joined chunks of at most size words.
func chunkWords(words []string, size int) []string {
	chunks := make([]string, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := min(start+size, len(words))
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
