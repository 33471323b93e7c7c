package transcriber

import "context"

// Transcriber turns an audio or video file into transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath string) (string, error)
}
