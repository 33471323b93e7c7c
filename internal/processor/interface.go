package processor

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

// Processor is the meeting pipeline: transcript in, summary and action
// items out.
type Processor interface {
	// ProcessText summarizes and extracts from text. It never fails.
	ProcessText(ctx context.Context, text string) models.Result
	// ProcessAudio transcribes mediaPath first. A transcription failure
	// returns an empty Result and an error wrapping ErrTranscriptionFailed.
	ProcessAudio(ctx context.Context, mediaPath string) (models.Result, error)
	// Process handles one inbox file end to end and writes its reports.
	Process(ctx context.Context, path string) error
}
