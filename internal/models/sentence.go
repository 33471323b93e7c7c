package models

// Entity labels the extractor cares about.
const (
	LabelPerson = "PERSON"
	LabelDate   = "DATE"
)

// Entity is a tagged span inside a sentence.
type Entity struct {
	Label string
	Text  string
}

// Sentence is one tagged sentence.
type Sentence struct {
	Text     string
	Entities []Entity
}

// FirstEntity returns the text of the first entity with label.
func (s Sentence) FirstEntity(label string) (string, bool) {
	for _, e := range s.Entities {
		if e.Label == label {
			return e.Text, true
		}
	}
	return "", false
}
