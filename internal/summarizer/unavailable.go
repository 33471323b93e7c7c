package summarizer

import "context"

type unavailableEngine struct {
	err error
}

// Unavailable returns an Engine that fails every call with err, so a
// missing backend yields ErrorMarker summaries instead of stopping the
// pipeline.
func Unavailable(err error) Engine {
	return unavailableEngine{err: err}
}

func (e unavailableEngine) Summarize(context.Context, string, int, int) (string, error) {
	return "", e.err
}
