package extractor

import (
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

// deadlinePatterns are tried in order after tagged DATE entities. Each
// keyword must start a word: "standby monday" and "overdue" are not
// deadlines.
var deadlinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bby\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
	regexp.MustCompile(`(?i)\bby\s+(next\s+\w+)`),
	regexp.MustCompile(`(?i)\bby\s+(end\s+of\s+\w+)`),
	regexp.MustCompile(`(?i)\bby\s+(tomorrow|today)`),
	regexp.MustCompile(`(?i)\bbefore\s+([^.!?]+)`),
	regexp.MustCompile(`(?i)\bdue\s+([^.!?]+)`),
}

// connectors that introduce a tagged date at the end of a description.
var dateConnectors = map[string]bool{
	"by": true, "on": true, "before": true, "until": true, "due": true, "in": true, "at": true,
}

type deadline struct {
	text    string
	pattern *regexp.Regexp // nil when text came from a DATE entity
}

// resolveDeadline prefers the sentence's first DATE entity, then the
// textual patterns. The phrase is kept verbatim.
func resolveDeadline(s models.Sentence) deadline {
	if date, ok := s.FirstEntity(models.LabelDate); ok && strings.TrimSpace(date) != "" {
		return deadline{text: strings.TrimSpace(date)}
	}

	for _, re := range deadlinePatterns {
		if m := re.FindStringSubmatch(s.Text); m != nil {
			if text := strings.TrimSpace(m[1]); text != "" {
				return deadline{text: text, pattern: re}
			}
		}
	}
	return deadline{}
}

// trimFrom removes the deadline clause when it closes the description,
// so "review the budget by Friday" becomes "review the budget". A clause
// in the middle, or one that would leave nothing, is kept.
func (d deadline) trimFrom(desc string) string {
	if d.text == "" {
		return desc
	}

	var cut string
	if d.pattern != nil {
		cut = trimPatternClause(desc, d.pattern, d.text)
	} else {
		cut = trimDateEntity(desc, d.text)
	}

	if cut == "" {
		return desc
	}
	return cut
}

// trimPatternClause cuts the clause only when the tail match is the
// deadline that was resolved, so a second deadline phrase is never lost.
func trimPatternClause(desc string, re *regexp.Regexp, text string) string {
	locs := re.FindAllStringSubmatchIndex(desc, -1)
	if len(locs) == 0 {
		return ""
	}
	last := locs[len(locs)-1]
	if strings.TrimSpace(desc[last[1]:]) != "" {
		return ""
	}
	if strings.TrimSpace(desc[last[2]:last[3]]) != text {
		return ""
	}
	return strings.TrimSpace(desc[:last[0]])
}

// trimDateEntity cuts a tagged date only when a connector such as "by"
// or "on" introduces it. "the slides for Friday" stays whole.
func trimDateEntity(desc, date string) string {
	if len(desc) < len(date) || !strings.EqualFold(desc[len(desc)-len(date):], date) {
		return ""
	}
	head := strings.TrimSpace(desc[:len(desc)-len(date)])

	fields := strings.Fields(head)
	n := len(fields)
	if n == 0 || !dateConnectors[strings.ToLower(fields[n-1])] {
		return ""
	}
	return strings.TrimSpace(head[:strings.LastIndex(head, fields[n-1])])
}
