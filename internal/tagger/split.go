package tagger

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

var reBlankLine = regexp.MustCompile(`\n[ \t\r]*\n`)

// the Punkt model is parsed once and shared; Tokenize is read-only
var englishTokenizer = sync.OnceValues(func() (*sentences.DefaultSentenceTokenizer, error) {
	return english.NewSentenceTokenizer(nil)
})

// SplitSentences segments text with the English Punkt model. Blank lines
// always end a sentence and whitespace inside a sentence is collapsed.
func SplitSentences(text string) ([]string, error) {
	tokenizer, err := englishTokenizer()
	if err != nil {
		return nil, fmt.Errorf("load sentence model: %w", err)
	}

	var out []string
	for _, para := range reBlankLine.Split(text, -1) {
		if strings.TrimSpace(para) == "" {
			continue
		}
		for _, s := range tokenizer.Tokenize(para) {
			if norm := strings.Join(strings.Fields(s.Text), " "); norm != "" {
				out = append(out, norm)
			}
		}
	}
	return out, nil
}
