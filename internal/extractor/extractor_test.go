package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/models"
	"github.com/nguyentantai21042004/minutes-flow/internal/tagger"
)

type stubTagger struct {
	sentences []models.Sentence
	err       error
}

func (s stubTagger) Tag(context.Context, string) ([]models.Sentence, error) {
	return s.sentences, s.err
}

func newSplittingExtractor(t *testing.T) Extractor {
	t.Helper()
	tg, err := tagger.New(config.TaggerConfig{}, logger.NewNop())
	require.NoError(t, err)
	return New(tg, 0, logger.NewNop())
}

func pending(desc, assignee, deadline string) models.ActionItem {
	return models.ActionItem{Description: desc, Assignee: assignee, Deadline: deadline, Status: models.StatusPending}
}

func TestExtractScenarios(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []models.ActionItem
	}{
		{
			name: "person modal with weekday deadline",
			text: "Sarah will review the budget by Friday.",
			want: []models.ActionItem{pending("Review the budget", "Sarah", "Friday")},
		},
		{
			name: "explicit label without person",
			text: "Action item: finalize the report.",
			want: []models.ActionItem{pending("Finalize the report", "", "")},
		},
		{
			name: "task label with before clause",
			text: "Task: email the client before the board meeting.",
			want: []models.ActionItem{pending("Email the client", "", "the board meeting")},
		},
		{
			name: "task label picks capitalised name",
			text: "Task: Bob to send the invoice.",
			want: []models.ActionItem{pending("Bob to send the invoice", "Bob", "")},
		},
		{
			name: "team pattern",
			text: "The marketing team should submit the campaign proposal by Wednesday.",
			want: []models.ActionItem{pending("Submit the campaign proposal", "Marketing team", "Wednesday")},
		},
		{
			name: "department pattern with end of clause",
			text: "Please note the finance team must prepare projections by end of month.",
			want: []models.ActionItem{pending("Prepare projections", "Finance team", "end of month")},
		},
		{
			name: "deadline in the middle stays in description",
			text: "John needs to coordinate with the QA team by tomorrow to resolve these issues.",
			want: []models.ActionItem{pending("Coordinate with the QA team by tomorrow to resolve these issues", "John", "tomorrow")},
		},
		{
			name: "due clause",
			text: "Mike has to send the invoice due next Monday.",
			want: []models.ActionItem{pending("Send the invoice", "Mike", "next Monday")},
		},
		{
			name: "by next clause",
			text: "Lena should draft the press release by next week!",
			want: []models.ActionItem{pending("Draft the press release", "Lena", "next week")},
		},
		{
			name: "second deadline phrase stays in description",
			text: "By Monday, Sarah will finish the report by Friday.",
			want: []models.ActionItem{pending("Finish the report by Friday", "Sarah", "Monday")},
		},
		{
			name: "person modal wins over team pattern",
			text: "The sales team must call Anna, and Anna will send the contract.",
			want: []models.ActionItem{pending("Send the contract", "Anna", "")},
		},
		{
			name: "short sentence is skipped",
			text: "John will do it.",
			want: []models.ActionItem{},
		},
		{
			name: "no pattern",
			text: "We talked about the weather for a while today.",
			want: []models.ActionItem{},
		},
		{
			name: "one item per sentence, several sentences",
			text: "Sarah will review the budget by Friday. Thanks everyone for coming today. Action item: finalize the report.",
			want: []models.ActionItem{
				pending("Review the budget", "Sarah", "Friday"),
				pending("Finalize the report", "", ""),
			},
		},
		{
			name: "duplicates survive extraction",
			text: "Sarah will review the budget by Friday. Tom will review the budget by Friday.",
			want: []models.ActionItem{
				pending("Review the budget", "Sarah", "Friday"),
				pending("Review the budget", "Tom", "Friday"),
			},
		},
	}

	ex := newSplittingExtractor(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ex.Extract(context.Background(), tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractUsesEntities(t *testing.T) {
	tests := []struct {
		name     string
		sentence models.Sentence
		want     models.ActionItem
	}{
		{
			name: "date entity preferred over pattern",
			sentence: models.Sentence{
				Text:     "Tom will ship the build by Friday after the March review.",
				Entities: []models.Entity{{Label: models.LabelDate, Text: "March"}},
			},
			want: pending("Ship the build by Friday after the March review", "Tom", "March"),
		},
		{
			name: "time entity does not replace pattern deadline",
			sentence: models.Sentence{
				Text:     "Tom will ship the build at 3pm by Friday.",
				Entities: []models.Entity{{Label: "TIME", Text: "3pm"}},
			},
			want: pending("Ship the build at 3pm", "Tom", "Friday"),
		},
		{
			name: "trailing date entity and connector trimmed",
			sentence: models.Sentence{
				Text:     "Priya must file the report on September 30th.",
				Entities: []models.Entity{{Label: models.LabelDate, Text: "September 30th"}},
			},
			want: pending("File the report", "Priya", "September 30th"),
		},
		{
			name: "date entity without connector keeps description",
			sentence: models.Sentence{
				Text:     "Tom will prepare the slides for Friday.",
				Entities: []models.Entity{{Label: models.LabelDate, Text: "Friday"}},
			},
			want: pending("Prepare the slides for Friday", "Tom", "Friday"),
		},
		{
			name: "date entity after from keeps description",
			sentence: models.Sentence{
				Text:     "Sarah will review the numbers from last week.",
				Entities: []models.Entity{{Label: models.LabelDate, Text: "last week"}},
			},
			want: pending("Review the numbers from last week", "Sarah", "last week"),
		},
		{
			name: "person entity for labelled item",
			sentence: models.Sentence{
				Text:     "Action item: Maria Lopez to draft the contract.",
				Entities: []models.Entity{{Label: models.LabelPerson, Text: "Maria Lopez"}},
			},
			want: pending("Maria Lopez to draft the contract", "Maria Lopez", ""),
		},
		{
			name: "long person entity falls back to word scan",
			sentence: models.Sentence{
				Text:     "Action item: Maria de la Cruz to draft the contract.",
				Entities: []models.Entity{{Label: models.LabelPerson, Text: "Maria de la Cruz"}},
			},
			want: pending("Maria de la Cruz to draft the contract", "Maria", ""),
		},
		{
			name: "stop list words are not assignees",
			sentence: models.Sentence{
				Text: "Task: review Monday notes with Team This quarter.",
			},
			want: pending("Review Monday notes with Team This quarter", "", ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := New(stubTagger{sentences: []models.Sentence{tt.sentence}}, 0, logger.NewNop())
			got := ex.Extract(context.Background(), tt.sentence.Text)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestExtractTaggerFailure(t *testing.T) {
	ex := New(stubTagger{err: errors.New("model crashed")}, 0, logger.NewNop())

	got := ex.Extract(context.Background(), "Sarah will review the budget by Friday.")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractShortSentences(t *testing.T) {
	sentences := []models.Sentence{
		{Text: "Sarah will review it."},
		{Text: "   Anna will   send  it.  "},
		{Text: "Action item: finalize."},
	}
	ex := New(stubTagger{sentences: sentences}, 0, logger.NewNop())

	assert.Empty(t, ex.Extract(context.Background(), ""))

	ex = New(stubTagger{sentences: sentences}, 4, logger.NewNop())
	got := ex.Extract(context.Background(), "")
	require.Len(t, got, 2)
	assert.Equal(t, "Sarah", got[0].Assignee)
	assert.Equal(t, "Anna", got[1].Assignee)
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"review the QA report", "Review the QA report"},
		{"éclair order", "Éclair order"},
		{"Already", "Already"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, capitalizeFirst(tt.in))
		})
	}
}
