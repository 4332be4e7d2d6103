package processor

import "math"

// Score weights: the parser's own confidence carries most of the signal, each
// required field present adds a fixed amount on top.
const (
	confidenceWeight = 60
	fieldWeight      = 10
)

// Score computes the 0-100 verification score for a parsed receipt. It is
// deterministic: the same input always produces the same score.
func Score(parsed ParsedReceipt) int {
	score := int(math.Round(parsed.Confidence * confidenceWeight))

	if parsed.Retailer != "" {
		score += fieldWeight
	}
	if parsed.Amount > 0 {
		score += fieldWeight
	}
	if parsed.BookTitle != "" {
		score += fieldWeight
	}
	if parsed.PurchaseDate != "" {
		score += fieldWeight
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
