package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

var extensions = map[string]string{
	FormatJSON:     ".json",
	FormatMarkdown: ".md",
	FormatDocx:     ".docx",
}

var reNonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func (w *implWriter) Write(ctx context.Context, m models.Meeting) ([]string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := filepath.Join(w.outputDir, baseName(m))
	paths := make([]string, 0, len(w.formats))

	for _, format := range w.formats {
		path := base + extensions[format]

		var err error
		switch format {
		case FormatJSON:
			err = writeJSON(m, path)
		case FormatMarkdown:
			err = os.WriteFile(path, []byte(renderMarkdown(m)), 0644)
		case FormatDocx:
			err = writeDocx(m, path)
		}
		if err != nil {
			return paths, fmt.Errorf("write %s report: %w", format, err)
		}

		w.logger.Info(ctx, "Report written: %s", path)
		paths = append(paths, path)
	}

	return paths, nil
}

func writeJSON(m models.Meeting, path string) error {
	if m.ActionItems == nil {
		m.ActionItems = []models.ActionItem{}
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// baseName is "<title-slug>_<first 8 chars of id>".
func baseName(m models.Meeting) string {
	slug := strings.Trim(reNonSlug.ReplaceAllString(strings.ToLower(m.Title), "-"), "-")
	if slug == "" {
		slug = "meeting"
	}

	id := m.ID
	if len(id) > 8 {
		id = id[:8]
	}
	if id == "" {
		return slug
	}
	return slug + "_" + id
}

// itemDetails describes everything about an item except its description.
func itemDetails(item models.ActionItem) string {
	assignee := item.Assignee
	if assignee == "" {
		assignee = "unassigned"
	}
	deadline := item.Deadline
	if !item.HasDeadline() {
		deadline = "no deadline"
	}
	return fmt.Sprintf("assignee: %s, deadline: %s, status: %s", assignee, deadline, item.Status)
}
