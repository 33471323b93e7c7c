package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/extractor"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/processor"
	"github.com/nguyentantai21042004/minutes-flow/internal/report"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
	"github.com/nguyentantai21042004/minutes-flow/internal/tagger"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
	"github.com/nguyentantai21042004/minutes-flow/pkg/executor"
)

// app holds the wired pipeline and whatever must be released on exit.
type app struct {
	cfg    *config.Config
	logger logger.Logger
	proc   processor.Processor
	tagger tagger.Tagger
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format)

	engine, err := newEngine(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create summarization engine: %w", err)
	}

	tg, err := tagger.New(cfg.Tagger, log)
	if err != nil {
		return nil, fmt.Errorf("create sentence tagger: %w", err)
	}
	if cfg.Tagger.ModelPath == "" {
		log.Warn(ctx, "No tagger model configured, entity tags disabled")
	}

	reports, err := report.New(cfg.Paths.Output, cfg.Report.Formats, log)
	if err != nil {
		_ = tg.Close()
		return nil, fmt.Errorf("create report writer: %w", err)
	}

	proc := processor.New(
		cfg,
		transcriber.New(cfg, executor.New(), log),
		summarizer.New(engine, cfg.Summary, log),
		extractor.New(tg, cfg.Extraction.MinSentenceWords, log),
		reports,
		log,
	)

	return &app{cfg: cfg, logger: log, proc: proc, tagger: tg}, nil
}

// newEngine falls back to an engine that always fails when no API key is
// configured. Summaries then read ErrorMarker and extraction still runs.
func newEngine(ctx context.Context, cfg *config.Config, log logger.Logger) (summarizer.Engine, error) {
	gemini, err := summarizer.NewGemini(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	if errors.Is(err, summarizer.ErrNoAPIKeys) {
		log.Warn(ctx, "No Gemini API keys configured (set %s), summaries are disabled", config.GeminiKeysEnv)
		return summarizer.Unavailable(err), nil
	}
	if err != nil {
		return nil, err
	}
	return gemini, nil
}

func (a *app) close() {
	if err := a.tagger.Close(); err != nil {
		a.logger.Warn(context.Background(), "Failed to release tagger: %v", err)
	}
	_ = logger.Sync(a.logger)
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Processing,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	var errs []error
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			errs = append(errs, fmt.Errorf("create directory %s: %w", dir, err))
		}
	}
	return errors.Join(errs...)
}
