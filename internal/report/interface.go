package report

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

// Supported report formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatDocx     = "docx"
)

// Writer persists a meeting report in every configured format.
type Writer interface {
	// Write returns the paths it wrote, in format order.
	Write(ctx context.Context, m models.Meeting) ([]string, error)
}
