package tagger

import (
	"fmt"

	khugot "github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

// recognizer is the slice of the hugot token classification pipeline we use.
type recognizer interface {
	RunPipeline(inputs []string) (*pipelines.TokenClassificationOutput, error)
}

type implTagger struct {
	ner     recognizer
	logger  logger.Logger
	destroy func() error
}

// New creates a Tagger. Without a model path it only segments sentences
// and reports no entities.
func New(cfg config.TaggerConfig, log logger.Logger) (Tagger, error) {
	if cfg.ModelPath == "" {
		return &implTagger{logger: log}, nil
	}

	onnxFilename := cfg.OnnxFilename
	if onnxFilename == "" {
		onnxFilename = "model.onnx"
	}

	session, err := khugot.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("create hugot session: %w", err)
	}

	pipeline, err := khugot.NewPipeline(session, khugot.TokenClassificationConfig{
		ModelPath:    cfg.ModelPath,
		OnnxFilename: onnxFilename,
		Name:         fmt.Sprintf("ner:%s:%s", cfg.ModelPath, onnxFilename),
	})
	if err != nil {
		_ = session.Destroy()
		return nil, fmt.Errorf("create token classification pipeline: %w", err)
	}
	// group sub-word tokens into whole entities
	pipeline.AggregationStrategy = "SIMPLE"

	return &implTagger{
		ner:     pipeline,
		logger:  log,
		destroy: session.Destroy,
	}, nil
}

// newWithRecognizer is used by tests to plug in a fake NER pipeline.
func newWithRecognizer(ner recognizer, log logger.Logger) *implTagger {
	return &implTagger{ner: ner, logger: log}
}

func (t *implTagger) Close() error {
	if t.destroy == nil {
		return nil
	}
	return t.destroy()
}
