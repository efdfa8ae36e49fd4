package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/paperstack/backend/internal/config"
	"google.golang.org/genai"
)

const (
	summaryModel   = "gemini-2.0-flash"
	embeddingModel = "text-embedding-004"

	// Long extractions get truncated before they hit the model; the
	// summary only needs the head of the document anyway.
	maxSummaryInput = 20000
)

type AIClient struct {
	client     *genai.Client
	chatModel  string
	embedModel string
}

func NewAIClient(ctx context.Context, cfg config.AIConfig) (*AIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing AI_API_KEY")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, err
	}
	return &AIClient{client: client, chatModel: summaryModel, embedModel: embeddingModel}, nil
}

func (c *AIClient) Summarize(ctx context.Context, text string) (string, error) {
	if len(text) > maxSummaryInput {
		text = text[:maxSummaryInput]
	}
	prompt := "Summarize the following document in at most three sentences:\n\n" + text

	res, err := c.client.Models.GenerateContent(ctx, c.chatModel, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	summary := strings.TrimSpace(res.Text())
	if summary == "" {
		return "", fmt.Errorf("empty summary result")
	}
	return summary, nil
}

func (c *AIClient) EmbedText(ctx context.Context, text string) ([]float32, string, error) {
	if len(text) > maxSummaryInput {
		text = text[:maxSummaryInput]
	}
	res, err := c.client.Models.EmbedContent(ctx, c.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, c.embedModel, err
	}
	if res == nil || len(res.Embeddings) == 0 || res.Embeddings[0] == nil {
		return nil, c.embedModel, fmt.Errorf("empty embedding result")
	}
	return res.Embeddings[0].Values, c.embedModel, nil
}
