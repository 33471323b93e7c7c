package report

import (
	"fmt"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

const (
	fontName    = "Times New Roman"
	fontSize    = 13
	headingSize = 15
	titleSize   = 16
)

// writeDocx lays the meeting out the same way as the Markdown report.
func writeDocx(m models.Meeting, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), m.Title, true, titleSize)
	addField(doc.AddParagraph(""), "ID", m.ID)
	addField(doc.AddParagraph(""), "Source", string(m.Source))
	addField(doc.AddParagraph(""), "Status", string(m.Status))
	addField(doc.AddParagraph(""), "Created", m.CreatedAt.Format(time.RFC3339))

	addRun(doc.AddParagraph(""), "Summary", true, headingSize)
	summary := m.Summary
	if summary == "" {
		summary = "No summary."
	}
	addRun(doc.AddParagraph(""), summary, false, fontSize)

	addRun(doc.AddParagraph(""), "Action Items", true, headingSize)
	if len(m.ActionItems) == 0 {
		addRun(doc.AddParagraph(""), "No action items.", false, fontSize)
	}
	for i, item := range m.ActionItems {
		p := doc.AddParagraph("")
		addRun(p, fmt.Sprintf("%d. ", i+1), false, fontSize)
		addRun(p, item.Description, true, fontSize)
		addRun(p, " ("+itemDetails(item)+")", false, fontSize)
	}

	if m.Transcript != "" {
		addRun(doc.AddParagraph(""), "Transcript", true, headingSize)
		addRun(doc.AddParagraph(""), m.Transcript, false, fontSize)
	}

	return doc.SaveTo(path)
}

func addField(p *docx.Paragraph, label, value string) {
	addRun(p, label+": ", true, fontSize)
	addRun(p, value, false, fontSize)
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
