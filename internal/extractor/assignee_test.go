package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

func TestResolveAssignee(t *testing.T) {
	tests := []struct {
		name     string
		entities []models.Entity
		text     string
		want     string
	}{
		{"person entity", []models.Entity{{Label: models.LabelPerson, Text: "Ann Lee"}}, "ann lee owns it", "Ann Lee"},
		{"three word entity ignored", []models.Entity{{Label: models.LabelPerson, Text: "Ann Marie Lee"}}, "ask Ann", "Ann"},
		{"date entity ignored", []models.Entity{{Label: models.LabelDate, Text: "Friday"}}, "ask Carla", "Carla"},
		{"stop list", nil, "The Team This That Friday Sunday Omar", "Omar"},
		{"too short", nil, "Al and Bo and Cy", ""},
		{"first capitalised word wins", nil, "Email Jordan, please", "Email"},
		{"punctuation attached", nil, "send Jordan, now", ""},
		{"nothing", nil, "lower case only", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveAssignee(models.Sentence{Entities: tt.entities}, tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}
