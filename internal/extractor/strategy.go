package extractor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

var (
	// <Name> will|should|must|needs to|has to <action>
	rePersonModal = regexp.MustCompile(`([A-Z][a-z]+)\s+(will|should|must|needs?\s+to|has\s+to)\s+([^.!?]+)`)
	// "Action item: <action>" or "Task: <action>"
	reExplicitLabel = regexp.MustCompile(`(?i)(?:action\s+item|task):\s*([^.!?]+)`)
	// [the] <word> team|marketing|development|sales needs to|should|must <action>
	reTeam = regexp.MustCompile(`(?i)(the\s+)?([A-Za-z]+\s+team|marketing|development|sales)\s+(needs?\s+to|should|must)\s+([^.!?]+)`)
)

// strategy recognises an action item in one sentence.
type strategy struct {
	name  string
	match func(s models.Sentence) (models.ActionItem, bool)
}

// defaultStrategies returns the strategies in priority order.
func defaultStrategies() []strategy {
	return []strategy{
		{name: "person-modal", match: matchPersonModal},
		{name: "explicit-label", match: matchExplicitLabel},
		{name: "team", match: matchTeam},
	}
}

func matchPersonModal(s models.Sentence) (models.ActionItem, bool) {
	m := rePersonModal.FindStringSubmatch(s.Text)
	if m == nil {
		return models.ActionItem{}, false
	}
	return newItem(s, m[3], m[1])
}

func matchExplicitLabel(s models.Sentence) (models.ActionItem, bool) {
	loc := reExplicitLabel.FindStringSubmatchIndex(s.Text)
	if loc == nil {
		return models.ActionItem{}, false
	}
	desc := s.Text[loc[2]:loc[3]]
	// the label itself must not be mistaken for a name
	rest := s.Text[:loc[0]] + " " + s.Text[loc[2]:]
	return newItem(s, desc, resolveAssignee(s, rest))
}

func matchTeam(s models.Sentence) (models.ActionItem, bool) {
	m := reTeam.FindStringSubmatch(s.Text)
	if m == nil {
		return models.ActionItem{}, false
	}
	return newItem(s, m[4], capitalizeFirst(strings.TrimSpace(m[2])))
}

// newItem builds a pending item; an empty description is no match.
func newItem(s models.Sentence, rawDesc, assignee string) (models.ActionItem, bool) {
	dl := resolveDeadline(s)

	desc := dl.trimFrom(strings.TrimSpace(rawDesc))
	if desc == "" {
		return models.ActionItem{}, false
	}

	return models.ActionItem{
		Description: capitalizeFirst(desc),
		Assignee:    assignee,
		Deadline:    dl.text,
		Status:      models.StatusPending,
	}, true
}

// capitalizeFirst upper-cases the first rune and leaves the rest alone.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
