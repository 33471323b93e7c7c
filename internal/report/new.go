package report

import (
	"fmt"

	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

type implWriter struct {
	outputDir string
	formats   []string
	logger    logger.Logger
}

// New creates a Writer for outputDir. No formats means JSON only.
func New(outputDir string, formats []string, log logger.Logger) (Writer, error) {
	if len(formats) == 0 {
		formats = []string{FormatJSON}
	}
	for _, f := range formats {
		if _, ok := extensions[f]; !ok {
			return nil, fmt.Errorf("unknown report format %q", f)
		}
	}

	return &implWriter{
		outputDir: outputDir,
		formats:   formats,
		logger:    log,
	}, nil
}
