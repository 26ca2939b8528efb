package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// CuratorClientInterface is a generative text model restricted to JSON output.
type CuratorClientInterface interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	Provider() string
}

// GeminiCuratorClient implements CuratorClientInterface using Google's Gemini models
type GeminiCuratorClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCuratorClient(apiKey, model string) (*GeminiCuratorClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCuratorClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiCuratorClient) Provider() string { return "gemini" }

func (c *GeminiCuratorClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: gemini returned no content", ErrMalformedModelOutput)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}

func (c *GeminiCuratorClient) Close() error {
	return c.client.Close()
}

// OpenAICuratorClient uses chat completions in JSON object mode.
type OpenAICuratorClient struct {
	client *openai.Client
	model  string
}

func NewOpenAICuratorClient(apiKey, model string) *OpenAICuratorClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAICuratorClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAICuratorClient) Provider() string { return "openai" }

func (c *OpenAICuratorClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai returned no choices", ErrMalformedModelOutput)
	}
	return resp.Choices[0].Message.Content, nil
}

// NewCuratorClient picks the provider by name.
func NewCuratorClient(provider, apiKey, model string) (CuratorClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAICuratorClient(apiKey, model), nil
	case "gemini":
		return NewGeminiCuratorClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported curator provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
