package googleai

import (
	"context"
	"fmt"

	"preorder-server/internal/observability"

	"google.golang.org/genai"
)

// visionModel extracts text from receipt images. Receipts are small images
// and flash-tier latency is what the upload pipeline budgets for.
const visionModel = "gemini-2.0-flash"

// VisionClient extracts raw text from receipt images using Gemini
type VisionClient struct {
	client *genai.Client
	logger *observability.Logger
}

// NewVisionClient creates a Gemini client for receipt text extraction
func NewVisionClient(apiKey string, logger *observability.Logger) (*VisionClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Google AI API key is required")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}

	return &VisionClient{
		client: client,
		logger: logger,
	}, nil
}

const extractPrompt = `Extract every line of text visible in this purchase receipt, top to bottom.
Output only the extracted text, no commentary. If the image contains no readable text, output nothing.`

// ExtractText runs OCR-style text extraction over an image or PDF page
func (c *VisionClient) ExtractText(ctx context.Context, data []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(data, mimeType),
		genai.NewPartFromText(extractPrompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, visionModel, contents, nil)
	if err != nil {
		c.logger.Error(ctx, "Gemini text extraction failed", err)
		return "", fmt.Errorf("text extraction failed: %w", err)
	}

	return resp.Text(), nil
}
