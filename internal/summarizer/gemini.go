package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/resilience"
)

const summaryPrompt = `You are summarizing a business meeting transcript.
Write one abstractive summary of the text below in plain prose, in the same language as the text.

Rules:
- Between %d and %d words
- No headings, bullet points or markdown
- Keep names, figures and dates exactly as they appear
- Do not invent facts that are not in the text

Text:
---
%s
---`

// ErrNoAPIKeys is returned when the Gemini engine has no keys to use.
var ErrNoAPIKeys = errors.New("no Gemini API keys configured")

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiEngine is an Engine backed by the Gemini API. It rotates through
// the supplied keys on quota errors and retries transient failures.
type GeminiEngine struct {
	apiKeys    []string
	model      string
	logger     logger.Logger
	retry      resilience.RetryConfig
	breaker    *resilience.Breaker
	newClient  func(ctx context.Context, key string) (contentGenerator, error)
	mu         sync.Mutex
	currentKey int
	clients    map[string]contentGenerator
}

// NewGemini creates a Gemini-backed Engine.
func NewGemini(apiKeys []string, model string, log logger.Logger) (*GeminiEngine, error) {
	if len(apiKeys) == 0 {
		return nil, ErrNoAPIKeys
	}

	e := &GeminiEngine{
		apiKeys:   apiKeys,
		model:     model,
		logger:    log,
		retry:     resilience.DefaultRetryConfig(),
		newClient: newGenaiClient,
		clients:   make(map[string]contentGenerator),
	}
	e.retry.OnRetry = func(ctx context.Context, attempt int, delay time.Duration, err error) {
		log.Warn(ctx, "Gemini call failed (attempt %d), retrying in %s: %v", attempt, delay, err)
	}
	// Breaker transitions are engine-wide, so no single call's context applies.
	e.breaker = resilience.NewBreaker(resilience.DefaultConfig("gemini"), func(from, to gobreaker.State) {
		log.Warn(context.Background(), "Gemini circuit breaker %s -> %s", from, to)
	})
	return e, nil
}

func newGenaiClient(ctx context.Context, key string) (contentGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

// Summarize implements Engine.
func (e *GeminiEngine) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, minLength, maxLength, text)

	return resilience.ExecuteWithResult(e.breaker, func() (string, error) {
		var out string
		err := resilience.Retry(ctx, e.retry, func() error {
			var err error
			out, err = e.callGemini(ctx, prompt)
			return err
		})
		return out, err
	})
}

// callGemini sends the prompt and returns the response text.
// Rotates API keys on 429 / quota errors.
func (e *GeminiEngine) callGemini(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for range len(e.apiKeys) {
		key, idx := e.key()

		client, err := e.client(ctx, key)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			e.rotateKey(idx)
			continue
		}

		result, err := client.GenerateContent(ctx, e.model, genai.Text(prompt), &genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0),
		})
		if err != nil {
			if isQuotaError(err) {
				e.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				e.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if text := responseText(result); text != "" {
			return strings.TrimSpace(text), nil
		}
		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text += part.Text
		}
	}
	return text
}

func (e *GeminiEngine) key() (string, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.apiKeys[e.currentKey], e.currentKey
}

// rotateKey advances past idx unless another caller already did.
func (e *GeminiEngine) rotateKey(idx int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.currentKey == idx {
		e.currentKey = (e.currentKey + 1) % len(e.apiKeys)
	}
}

func (e *GeminiEngine) client(ctx context.Context, key string) (contentGenerator, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c, ok := e.clients[key]; ok {
		return c, nil
	}
	c, err := e.newClient(ctx, key)
	if err != nil {
		return nil, err
	}
	e.clients[key] = c
	return c, nil
}
