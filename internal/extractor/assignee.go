package extractor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

// capitalised words that are never assignees
var assigneeStopList = map[string]bool{
	"The": true, "This": true, "That": true, "Team": true,
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

// resolveAssignee returns a tagged PERSON of at most two words, else the
// first capitalised alphabetic word of text longer than two letters that
// is not on the stop list, else "".
func resolveAssignee(s models.Sentence, text string) string {
	for _, e := range s.Entities {
		if e.Label == models.LabelPerson && len(strings.Fields(e.Text)) <= 2 && strings.TrimSpace(e.Text) != "" {
			return strings.TrimSpace(e.Text)
		}
	}

	for _, w := range strings.Fields(text) {
		if isNameLike(w) && !assigneeStopList[w] {
			return w
		}
	}
	return ""
}

func isNameLike(w string) bool {
	if utf8.RuneCountInString(w) <= 2 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(w)
	if !unicode.IsUpper(first) {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
