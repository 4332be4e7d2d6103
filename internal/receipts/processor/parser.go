package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"preorder-server/internal/observability"
	"preorder-server/internal/ocr"
	"preorder-server/internal/store"
)

// ParsedReceipt holds the structured fields extracted from redacted receipt
// text. PurchaseDate is a YYYY-MM-DD string, Confidence is the model's own
// 0-1 estimate of extraction quality.
type ParsedReceipt struct {
	Retailer             string  `json:"retailer"`
	Amount               float64 `json:"amount"`
	Currency             string  `json:"currency"`
	BookTitle            string  `json:"bookTitle"`
	PurchaseDate         string  `json:"purchaseDate"`
	Format               string  `json:"format"`
	Confidence           float64 `json:"confidence"`
	RequiresManualReview bool    `json:"requiresManualReview"`
	ManualReviewReason   string  `json:"manualReviewReason"`
}

const parseSystemPrompt = `You extract structured purchase facts from OCR text of retail receipts for the book "AI-Born".
Respond with JSON only, no markdown, in this shape:
{"retailer": "", "amount": 0, "currency": "USD", "bookTitle": "", "purchaseDate": "YYYY-MM-DD", "format": "", "confidence": 0.0, "requiresManualReview": false, "manualReviewReason": ""}
Rules:
- "format" must be one of hardcover, paperback, ebook, audiobook, or empty if unclear.
- Use an empty string or 0 for any field you cannot read, never guess.
- "confidence" is your 0 to 1 estimate that the extracted fields are correct.
- Set "requiresManualReview" true with a short reason when the receipt is ambiguous, such as multiple books or an unreadable total.`

// Parser extracts structured receipt fields from redacted text via an LLM.
type Parser struct {
	llm    CompletionClient
	logger *observability.Logger
}

func NewParser(llm CompletionClient, logger *observability.Logger) *Parser {
	return &Parser{llm: llm, logger: logger}
}

// Parse runs the extraction prompt and normalizes the model's output.
func (p *Parser) Parse(ctx context.Context, redactedText string) (ParsedReceipt, error) {
	reply, err := p.llm.Complete(ctx, parseSystemPrompt, redactedText)
	if err != nil {
		return ParsedReceipt{}, fmt.Errorf("receipt parse completion: %w", err)
	}

	var parsed ParsedReceipt
	if err := json.Unmarshal([]byte(ocr.StripCodeFences(reply)), &parsed); err != nil {
		return ParsedReceipt{}, fmt.Errorf("receipt parse output is not valid JSON: %w", err)
	}

	parsed.Format = normalizeFormat(parsed.Format)
	if parsed.Confidence < 0 {
		parsed.Confidence = 0
	}
	if parsed.Confidence > 1 {
		parsed.Confidence = 1
	}
	if parsed.Currency == "" && parsed.Amount > 0 {
		parsed.Currency = "USD"
	}

	return parsed, nil
}

// normalizeFormat maps free-form format text onto the known enum, empty when
// unrecognized so the field counts as missing rather than wrong
func normalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case store.FormatHardcover, "hardback":
		return store.FormatHardcover
	case store.FormatPaperback, "softcover", "trade paperback":
		return store.FormatPaperback
	case store.FormatEbook, "e-book", "kindle", "kindle edition", "digital":
		return store.FormatEbook
	case store.FormatAudiobook, "audio", "audible":
		return store.FormatAudiobook
	default:
		return ""
	}
}
