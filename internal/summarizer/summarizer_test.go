package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

type engineCall struct {
	text     string
	max, min int
}

// recordingEngine answers with respond and records every call.
type recordingEngine struct {
	calls   []engineCall
	respond func(text string, call int) (string, error)
}

func (e *recordingEngine) Summarize(_ context.Context, text string, maxLength, minLength int) (string, error) {
	e.calls = append(e.calls, engineCall{text: text, max: maxLength, min: minLength})
	return e.respond(text, len(e.calls))
}

func echo(text string, _ int) (string, error) { return text, nil }

type mockEngine struct{ mock.Mock }

func (m *mockEngine) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	args := m.Called(ctx, text, maxLength, minLength)
	return args.String(0), args.Error(1)
}

func words(n int, w string) string {
	return strings.TrimSpace(strings.Repeat(w+" ", n))
}

func newTestSummarizer(e Engine) Summarizer {
	return New(e, config.DefaultSummary(), logger.NewNop())
}

func TestSummarizeTooShort(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"one word", "hello"},
		{"49 words", words(49, "word")},
		{"49 words with extra whitespace", "  " + strings.ReplaceAll(words(49, "word"), " ", "\n\t ") + "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockEngine{}
			got := newTestSummarizer(m).Summarize(context.Background(), tt.text)

			assert.Equal(t, TooShortMarker, got)
			m.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSummarizeSingleChunk(t *testing.T) {
	text := words(50, "budget")
	m := &mockEngine{}
	m.On("Summarize", mock.Anything, text, 150, 50).Return("  engine output  ", nil).Once()

	got := newTestSummarizer(m).Summarize(context.Background(), text)

	assert.Equal(t, "engine output", got)
	m.AssertExpectations(t)
}

func TestSummarizeSingleChunkEcho(t *testing.T) {
	text := "  " + words(50, "alpha") + "\n"
	e := &recordingEngine{respond: echo}

	got := newTestSummarizer(e).Summarize(context.Background(), text)

	require.Len(t, e.calls, 1)
	assert.Equal(t, words(50, "alpha"), got)
	assert.Equal(t, engineCall{text: words(50, "alpha"), max: 150, min: 50}, e.calls[0])
}

func TestSummarizeChunkBoundaries(t *testing.T) {
	// 1024 is still a single chunk
	e := &recordingEngine{respond: echo}
	newTestSummarizer(e).Summarize(context.Background(), words(1024, "w"))
	require.Len(t, e.calls, 1)
	assert.Equal(t, 150, e.calls[0].max)

	// 1025 words split into 1024 + 1
	e = &recordingEngine{respond: func(string, int) (string, error) { return "short", nil }}
	got := newTestSummarizer(e).Summarize(context.Background(), words(1025, "w"))
	require.Len(t, e.calls, 2)
	assert.Len(t, strings.Fields(e.calls[0].text), 1024)
	assert.Len(t, strings.Fields(e.calls[1].text), 1)
	assert.Equal(t, "short short", got)
}

func TestSummarizeMultiChunkConcatenates(t *testing.T) {
	text := words(1024, "a") + " " + words(1024, "b") + " " + words(52, "c")
	e := &recordingEngine{respond: func(text string, _ int) (string, error) {
		return "summary of " + strings.Fields(text)[0], nil
	}}

	got := newTestSummarizer(e).Summarize(context.Background(), text)

	require.Len(t, e.calls, 3)
	for _, c := range e.calls {
		assert.Equal(t, 100, c.max)
		assert.Equal(t, 30, c.min)
	}
	assert.Equal(t, "summary of a summary of b summary of c", got)
}

func TestSummarizeMultiChunkResummarizesOnce(t *testing.T) {
	text := words(1024, "a") + " " + words(1024, "b")
	e := &recordingEngine{respond: func(_ string, call int) (string, error) {
		// every answer is long enough to trigger another pass if one were allowed
		return words(60, "long"), nil
	}}

	got := newTestSummarizer(e).Summarize(context.Background(), text)

	require.Len(t, e.calls, 3)
	assert.Equal(t, engineCall{text: words(120, "long"), max: 200, min: 75}, e.calls[2])
	assert.Equal(t, words(60, "long"), got)
}

func TestSummarizeCombinedAtThresholdIsKept(t *testing.T) {
	text := words(1024, "a") + " " + words(1024, "b")
	e := &recordingEngine{respond: func(string, int) (string, error) { return words(50, "x"), nil }}

	got := newTestSummarizer(e).Summarize(context.Background(), text)

	assert.Len(t, e.calls, 2)
	assert.Equal(t, words(100, "x"), got)
}

func TestSummarizeEngineFailure(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		failOn int
	}{
		{"single chunk", words(60, "w"), 1},
		{"second chunk", words(1100, "w"), 2},
		{"combined pass", words(2048, "w"), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &recordingEngine{respond: func(_ string, call int) (string, error) {
				if call == tt.failOn {
					return "", errors.New("model unavailable")
				}
				return words(60, "s"), nil
			}}

			got := newTestSummarizer(e).Summarize(context.Background(), tt.text)
			assert.Equal(t, ErrorMarker, got)
		})
	}
}

func TestSummarizeUnavailableEngine(t *testing.T) {
	s := newTestSummarizer(Unavailable(ErrNoAPIKeys))

	assert.Equal(t, ErrorMarker, s.Summarize(context.Background(), words(60, "w")))
	assert.Equal(t, TooShortMarker, s.Summarize(context.Background(), words(10, "w")))
}

func TestNewAppliesDefaults(t *testing.T) {
	s := New(&recordingEngine{respond: echo}, config.SummaryConfig{MaxChunkWords: 10}, logger.NewNop()).(*implSummarizer)

	assert.Equal(t, 50, s.policy.MinWords)
	assert.Equal(t, 10, s.policy.MaxChunkWords)
	assert.Equal(t, config.Bounds{MaxLength: 200, MinLength: 75}, s.policy.Combined)
}

func TestChunkWords(t *testing.T) {
	tests := []struct {
		name string
		n    int
		size int
		want []int
	}{
		{"exact multiple", 6, 3, []int{3, 3}},
		{"remainder", 7, 3, []int{3, 3, 1}},
		{"smaller than size", 2, 3, []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := chunkWords(strings.Fields(words(tt.n, "w")), tt.size)
			var got []int
			for _, c := range chunks {
				got = append(got, len(strings.Fields(c)))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
