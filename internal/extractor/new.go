package extractor

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

// DefaultMinSentenceWords is the shortest sentence considered for extraction.
const DefaultMinSentenceWords = 5

type implExtractor struct {
	tagger     SentenceTagger
	minWords   int
	strategies []strategy
	logger     logger.Logger
}

// New creates an Extractor. minWords <= 0 uses DefaultMinSentenceWords.
func New(tagger SentenceTagger, minWords int, log logger.Logger) Extractor {
	if minWords <= 0 {
		minWords = DefaultMinSentenceWords
	}
	return &implExtractor{
		tagger:     tagger,
		minWords:   minWords,
		strategies: defaultStrategies(),
		logger:     log,
	}
}
