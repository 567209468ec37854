package clients

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"google.golang.org/genai"

	"quotesmith.codes/tui/card"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

var (
	// ErrMissingAPIKey is returned when no Gemini API key is configured.
	ErrMissingAPIKey = errors.New("gemini API key is not configured")

	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("gemini returned no text")

	// ErrContentBlocked is returned when the prompt or answer was blocked.
	ErrContentBlocked = errors.New("gemini blocked the content")
)

// QuoteGenerator produces quote text for a card request.
type QuoteGenerator interface {
	GenerateQuote(ctx context.Context, req card.Request) (string, error)
}

// GeminiOptions tunes the underlying client. Zero values use the SDK defaults.
type GeminiOptions struct {
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiClient generates quotes with the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
	logger *log.Logger
}

// NewGeminiClient creates a GeminiClient for model.
func NewGeminiClient(ctx context.Context, apiKey, model string, logger *log.Logger, opts GeminiOptions) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		logger = log.Default()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 90 * time.Second}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: opts.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Model returns the model identifier requests are sent to.
func (c *GeminiClient) Model() string {
	return c.model
}

// GenerateQuote sends one prompt built from req and returns the trimmed reply.
func (c *GeminiClient) GenerateQuote(ctx context.Context, req card.Request) (string, error) {
	prompt := card.Prompt(req)
	start := time.Now()
	c.logger.Debug("requesting quote", "model", c.model, "topic", req.Topic, "tone", req.Tone, "language", req.Language)

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text, err := quoteFromResponse(resp)
	if err != nil {
		return "", err
	}

	c.logger.Info("quote generated", "model", c.model, "chars", len(text), "elapsed", time.Since(start).Round(time.Millisecond))
	return text, nil
}

// quoteFromResponse extracts the text of the first candidate.
func quoteFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", ErrEmptyResponse
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)", ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	candidate := resp.Candidates[0]
	if candidate == nil {
		return "", ErrEmptyResponse
	}
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: safety filter", ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		b.WriteString(part.Text)
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// unavailableGenerator fails every request with err.
type unavailableGenerator struct {
	err error
}

// Unavailable returns a QuoteGenerator that always fails with err. It stands
// in for the Gemini client when that could not be constructed.
func Unavailable(err error) QuoteGenerator {
	return unavailableGenerator{err: err}
}

func (g unavailableGenerator) GenerateQuote(context.Context, card.Request) (string, error) {
	return "", g.err
}
