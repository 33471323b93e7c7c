package summarizer

import "context"

// Summarizer condenses arbitrarily long text. It never fails: engine
// errors surface as ErrorMarker.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}

// Engine maps a bounded span of text to a shorter abstractive summary.
// maxLength and minLength are word counts.
type Engine interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}
