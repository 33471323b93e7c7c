package summarizer

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

type implSummarizer struct {
	engine Engine
	policy config.SummaryConfig
	logger logger.Logger
}

// New creates a chunked Summarizer over engine. Zero fields in policy
// fall back to config.DefaultSummary.
func New(engine Engine, policy config.SummaryConfig, log logger.Logger) Summarizer {
	d := config.DefaultSummary()
	if policy.MinWords == 0 {
		policy.MinWords = d.MinWords
	}
	if policy.MaxChunkWords <= 0 {
		policy.MaxChunkWords = d.MaxChunkWords
	}
	if policy.CombinedThreshold == 0 {
		policy.CombinedThreshold = d.CombinedThreshold
	}
	if policy.Single == (config.Bounds{}) {
		policy.Single = d.Single
	}
	if policy.Chunk == (config.Bounds{}) {
		policy.Chunk = d.Chunk
	}
	if policy.Combined == (config.Bounds{}) {
		policy.Combined = d.Combined
	}

	return &implSummarizer{
		engine: engine,
		policy: policy,
		logger: log,
	}
}
