package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/minutes-flow/internal/extractor"
	"github.com/nguyentantai21042004/minutes-flow/internal/models"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
)

// ErrTranscriptionFailed is the only fatal pipeline outcome.
var ErrTranscriptionFailed = errors.New("transcription failed")

var errNoTranscript = errors.New("no transcript produced")

func (p *implProcessor) ProcessText(ctx context.Context, text string) models.Result {
	summary, items := p.analyse(ctx, text)
	return models.Result{
		Transcript:  text,
		Summary:     summary,
		ActionItems: items,
	}
}

func (p *implProcessor) ProcessAudio(ctx context.Context, mediaPath string) (models.Result, error) {
	var transcript string
	var err error

	if werr := with(ctx, p.engines.transcribe, func() {
		transcript, err = p.transcriber.Transcribe(ctx, mediaPath)
	}); werr != nil {
		err = werr
	}
	if err == nil && strings.TrimSpace(transcript) == "" {
		err = errNoTranscript
	}
	if err != nil {
		p.logger.Error(ctx, "Transcription failed for %s: %v", mediaPath, err)
		return models.Result{}, fmt.Errorf("%w: %w", ErrTranscriptionFailed, err)
	}

	return p.ProcessText(ctx, transcript), nil
}

// analyse runs summarization and extraction side by side. Neither branch
// can fail the other: each falls back to its own failure value.
func (p *implProcessor) analyse(ctx context.Context, text string) (string, []models.ActionItem) {
	summary := summarizer.ErrorMarker
	items := []models.ActionItem{}

	var g errgroup.Group
	g.Go(func() error {
		return with(ctx, p.engines.summarize, func() {
			summary = p.summarizer.Summarize(ctx, text)
		})
	})
	g.Go(func() error {
		return with(ctx, p.engines.tag, func() {
			items = extractor.Dedupe(p.extractor.Extract(ctx, text))
		})
	})

	if err := g.Wait(); err != nil {
		p.logger.Warn(ctx, "Analysis interrupted: %v", err)
	}
	return summary, items
}
