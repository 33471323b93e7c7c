package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

func renderMarkdown(m models.Meeting) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", m.Title)
	fmt.Fprintf(&b, "- **ID**: %s\n", m.ID)
	fmt.Fprintf(&b, "- **Source**: %s\n", m.Source)
	fmt.Fprintf(&b, "- **Status**: %s\n", m.Status)
	fmt.Fprintf(&b, "- **Created**: %s\n\n", m.CreatedAt.Format(time.RFC3339))

	b.WriteString("## Summary\n\n")
	if m.Summary != "" {
		b.WriteString(m.Summary)
	} else {
		b.WriteString("_No summary._")
	}
	b.WriteString("\n\n")

	b.WriteString("## Action Items\n\n")
	if len(m.ActionItems) == 0 {
		b.WriteString("_No action items._\n")
	}
	for _, item := range m.ActionItems {
		box := " "
		if item.Status == models.StatusCompleted {
			box = "x"
		}
		fmt.Fprintf(&b, "- [%s] **%s** (%s)\n", box, item.Description, itemDetails(item))
	}

	if m.Transcript != "" {
		b.WriteString("\n## Transcript\n\n")
		b.WriteString(m.Transcript)
		b.WriteString("\n")
	}

	return b.String()
}
