package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"preorder-server/internal/observability"
)

//go:generate mockgen -source=extractor.go -destination=mocks_test.go -package=ocr

// VisionClient extracts raw text from a receipt image or PDF.
type VisionClient interface {
	ExtractText(ctx context.Context, data []byte, mimeType string) (string, error)
}

// CompletionClient answers a system/user prompt pair with plain text.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

// Extraction is the sanitized output of a receipt scan. RedactedText is safe
// to hand to downstream parsers; RequiresManualReview is set when the
// contextual pass could not guarantee that all PII was caught.
type Extraction struct {
	RedactedText         string
	PIIDetected          []string
	RequiresManualReview bool
}

type Extractor struct {
	vision VisionClient
	llm    CompletionClient
	logger *observability.Logger
}

func NewExtractor(vision VisionClient, llm CompletionClient, logger *observability.Logger) *Extractor {
	return &Extractor{vision: vision, llm: llm, logger: logger}
}

const contextualPIISystemPrompt = `You review OCR text from retail receipts for personally identifiable information that regex patterns miss, such as street addresses, full names near billing labels, or account identifiers.
Respond with JSON only, no markdown, in this shape:
{"found": [{"category": "address", "text": "the exact substring"}], "uncertain": false}
Set "uncertain" to true if the text is too garbled to review confidently. Do not include order numbers, store names, or prices.`

type contextualFinding struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

type contextualResult struct {
	Found     []contextualFinding `json:"found"`
	Uncertain bool                `json:"uncertain"`
}

// Extract runs OCR on the uploaded file and removes PII in three layers:
// pattern redaction, a contextual LLM pass, and a manual review flag when the
// contextual pass fails or is unsure.
func (e *Extractor) Extract(ctx context.Context, data []byte, mimeType string) (Extraction, error) {
	raw, err := e.vision.ExtractText(ctx, data, mimeType)
	if err != nil {
		return Extraction{}, fmt.Errorf("vision extraction: %w", err)
	}
	if strings.TrimSpace(raw) == "" {
		return Extraction{}, fmt.Errorf("vision extraction returned no text")
	}

	redacted, categories := redactPatterns(raw)

	result := Extraction{
		RedactedText: redacted,
		PIIDetected:  categories,
	}

	reply, err := e.llm.Complete(ctx, contextualPIISystemPrompt, redacted)
	if err != nil {
		e.logger.InfoWithError(ctx, "contextual PII pass failed, flagging for manual review", err)
		result.RequiresManualReview = true
		return result, nil
	}

	var contextual contextualResult
	if err := json.Unmarshal([]byte(StripCodeFences(reply)), &contextual); err != nil {
		e.logger.InfoWithError(ctx, "contextual PII pass returned unparseable output, flagging for manual review", err)
		result.RequiresManualReview = true
		return result, nil
	}

	for _, finding := range contextual.Found {
		if finding.Text == "" {
			continue
		}
		result.RedactedText = strings.ReplaceAll(result.RedactedText, finding.Text, "[REDACTED_"+strings.ToUpper(finding.Category)+"]")
		result.PIIDetected = append(result.PIIDetected, finding.Category)
	}
	result.RequiresManualReview = contextual.Uncertain

	return result, nil
}

// StripCodeFences unwraps ```json ... ``` blocks that chat models sometimes
// add despite instructions. Shared by every consumer of model JSON output.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
