package processor

import (
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/extractor"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/report"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	extractor   extractor.Extractor
	reports     report.Writer
	engines     *engineGuard
	logger      logger.Logger
	now         func() time.Time
	newID       func() string
}

// New creates a new Processor instance
func New(
	cfg *config.Config,
	tr transcriber.Transcriber,
	sum summarizer.Summarizer,
	ex extractor.Extractor,
	reports report.Writer,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cfg:         cfg,
		transcriber: tr,
		summarizer:  sum,
		extractor:   ex,
		reports:     reports,
		engines:     newEngineGuard(cfg.Performance.EngineConcurrency),
		logger:      log,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}
