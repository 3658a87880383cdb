package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"budgetwise/internal/core"
)

const systemPrompt = `You are an assistant that suggests spending categories for transactions.
Given a transaction description, suggest a spending category and a confidence level between 0 and 1.
Respond with a JSON object containing exactly two fields: "suggestedCategory" (string) and "confidence" (number).
No markdown, no commentary.`

// OpenAIClassifier asks an OpenAI-compatible chat-completion endpoint to
// label a description. Any scheme that speaks the chat-completion API
// works; the base URL is configurable for local models.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

func NewOpenAIClassifier(apiKey, baseURL, model string) *OpenAIClassifier {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClassifier{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAIClassifier) Classify(ctx context.Context, description string) (Prediction, error) {
	names := make([]string, len(core.Categories))
	for i, cat := range core.Categories {
		names[i] = cat.Name
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Known categories: %s.\nTransaction description: %s",
					strings.Join(names, ", "), description),
			},
		},
	})
	if err != nil {
		return Prediction{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Prediction{}, fmt.Errorf("chat completion: empty response")
	}

	var out struct {
		SuggestedCategory string  `json:"suggestedCategory"`
		Confidence        float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &out); err != nil {
		return Prediction{}, fmt.Errorf("decode model output: %w", err)
	}
	return Prediction{Label: out.SuggestedCategory, Confidence: out.Confidence}, nil
}
