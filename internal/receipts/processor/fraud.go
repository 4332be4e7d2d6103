package processor

import (
	"fmt"
	"strings"
	"time"

	"preorder-server/internal/store"
)

// ExpectedBookTitle is the title every receipt must reference
const ExpectedBookTitle = "AI-Born"

// maxReceiptAgeMonths bounds how old a purchase may be; the pre-order window
// never runs longer than this.
const maxReceiptAgeMonths = 6

type priceBand struct {
	min float64
	max float64
}

// priceBands are the plausible price ranges per claimed format, in USD.
var priceBands = map[string]priceBand{
	store.FormatHardcover: {min: 15, max: 100},
	store.FormatPaperback: {min: 10, max: 50},
	store.FormatEbook:     {min: 5, max: 30},
	store.FormatAudiobook: {min: 5, max: 60},
}

// recognizedRetailers is the allow-list of retailers whose receipts we accept.
// Matching is case-insensitive substring in either direction, so that
// "Amazon.com" and "amazon" both pass.
var recognizedRetailers = []string{
	"amazon",
	"barnes & noble",
	"barnes and noble",
	"bookshop",
	"books-a-million",
	"target",
	"walmart",
	"costco",
	"indigo",
	"waterstones",
	"apple books",
	"google play",
	"kobo",
	"audible",
	"powell's",
}

// FraudCheck is the outcome of the fraud rules. Reasons are human-readable
// and surface on the rejected receipt.
type FraudCheck struct {
	IsFraudulent bool
	Reasons      []string
}

// CheckFraud runs the independent fraud rules against a parsed receipt. Any
// single failing rule makes the receipt fraudulent; all failing rules are
// reported. Missing fields are not fraud by themselves, the confidence score
// handles those.
func CheckFraud(parsed ParsedReceipt, now time.Time) FraudCheck {
	var reasons []string

	if parsed.Amount > 0 && parsed.Format != "" {
		if band, ok := priceBands[strings.ToLower(parsed.Format)]; ok {
			if parsed.Amount < band.min || parsed.Amount > band.max {
				reasons = append(reasons, fmt.Sprintf("Price $%.2f is outside the expected range for %s format", parsed.Amount, strings.ToLower(parsed.Format)))
			}
		}
	}

	if parsed.PurchaseDate != "" {
		if purchaseDate, err := time.Parse("2006-01-02", parsed.PurchaseDate); err == nil {
			if purchaseDate.After(now) {
				reasons = append(reasons, "Purchase date is in the future")
			} else if purchaseDate.Before(now.AddDate(0, -maxReceiptAgeMonths, 0)) {
				reasons = append(reasons, fmt.Sprintf("Receipt is older than %d months", maxReceiptAgeMonths))
			}
		}
	}

	if parsed.BookTitle != "" && !titleMatches(parsed.BookTitle, ExpectedBookTitle) {
		reasons = append(reasons, fmt.Sprintf("Book title %q does not match %q", parsed.BookTitle, ExpectedBookTitle))
	}

	if parsed.Retailer != "" && !retailerRecognized(parsed.Retailer) {
		reasons = append(reasons, fmt.Sprintf("Retailer %q is not recognized", parsed.Retailer))
	}

	return FraudCheck{
		IsFraudulent: len(reasons) > 0,
		Reasons:      reasons,
	}
}

// titleMatches fuzzily compares titles: case-insensitive, punctuation and
// whitespace stripped, substring in either direction. "AI-Born: A Novel"
// matches "AI-Born".
func titleMatches(got, want string) bool {
	g := normalizeTitle(got)
	w := normalizeTitle(want)
	if g == "" || w == "" {
		return false
	}
	return strings.Contains(g, w) || strings.Contains(w, g)
}

func normalizeTitle(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func retailerRecognized(retailer string) bool {
	r := strings.ToLower(strings.TrimSpace(retailer))
	for _, known := range recognizedRetailers {
		if strings.Contains(r, known) || strings.Contains(known, r) {
			return true
		}
	}
	return false
}
