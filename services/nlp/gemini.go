package nlp

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const extractPrompt = `Extract the first date expression from the text below.
Reply with the date expression only, nothing else. Reply NONE if the text
contains no date.

Text: %s`

// GeminiExtractor recognizes date entities with the Gemini API.
type GeminiExtractor struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *zap.Logger
}

// NewGeminiExtractor creates a Gemini-backed date extractor. Callers own the
// extractor's lifetime and must Close it on shutdown.
func NewGeminiExtractor(apiKey string, logger *zap.Logger) (*GeminiExtractor, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiExtractor{
		client: client,
		model:  client.GenerativeModel("models/gemini-1.5-flash"),
		logger: logger,
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiExtractor) Close() error {
	return g.client.Close()
}

func (g *GeminiExtractor) ExtractDate(ctx context.Context, text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(extractPrompt, text)))
	if err != nil {
		g.logger.Warn("gemini date extraction failed", zap.Error(err))
		return "", false
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", false
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	answer := strings.TrimSpace(sb.String())
	if answer == "" || strings.EqualFold(answer, "NONE") {
		return "", false
	}
	return answer, true
}
