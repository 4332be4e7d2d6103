package apierrors

import (
	"errors"
	"strings"

	downloadsProcessor "preorder-server/internal/downloads/processor"
	"preorder-server/internal/fulfillment"
	newsletterProcessor "preorder-server/internal/newsletter/processor"
	receiptsProcessor "preorder-server/internal/receipts/processor"
	"preorder-server/internal/store"
	"preorder-server/internal/tokens"
)

// MapError converts domain errors to APIErrors. Centralized so every handler
// returns consistent status codes and error codes for the same failure.
//
// If the error is already an APIError, it is returned as-is. Unknown errors
// become a sanitized 500.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Token codec errors. EXPIRED (410) is deliberately distinct from
	// INVALID/MALFORMED (403) so clients can say "request a new link"
	// instead of "broken link".
	case errors.Is(err, tokens.ErrTokenExpired):
		return Gone(CodeTokenExpired, "This download link has expired. Request a new one.")

	case errors.Is(err, tokens.ErrInvalidSignature):
		return Forbidden(CodeTokenInvalid, "This link is not valid. Contact support if you believe this is a mistake.")

	case errors.Is(err, tokens.ErrMalformedToken):
		return Forbidden(CodeTokenMalformed, "This link is not valid. Contact support if you believe this is a mistake.")

	case errors.Is(err, tokens.ErrMissingSecret):
		return ServiceUnavailable(CodeConfigurationError, "Downloads are temporarily unavailable.", err)

	// Download gate errors
	case errors.Is(err, downloadsProcessor.ErrAssetNotFound):
		return NotFound(CodeAssetNotFound, "Unknown download")

	case errors.Is(err, downloadsProcessor.ErrAssetMismatch):
		return Forbidden(CodeTokenInvalid, "This link is not valid for the requested download.")

	case errors.Is(err, downloadsProcessor.ErrClaimNotEligible):
		return Forbidden(CodeClaimNotApproved, "This download is no longer available for your claim.")

	case errors.Is(err, downloadsProcessor.ErrRateLimited):
		return TooManyRequests("Too many downloads. Try again later.")

	// Fulfillment errors
	case errors.Is(err, fulfillment.ErrClaimNotApproved):
		return Conflict(CodeClaimNotApproved, "Claim is not approved for delivery")

	// Receipt intake errors
	case errors.Is(err, receiptsProcessor.ErrFileTooLarge):
		return ContentTooLarge("Receipt file is too large. Maximum size is 10MB.")

	case errors.Is(err, receiptsProcessor.ErrUnsupportedFileType):
		return BadRequest(CodeUnsupportedFileType, "Upload a JPG, PNG, WebP, or PDF of your receipt.")

	// Newsletter errors
	case errors.Is(err, newsletterProcessor.ErrInvalidPurpose):
		return BadRequest(CodeTokenInvalid, "This link cannot be used for this action.")

	// Store errors
	case errors.Is(err, store.ErrDuplicateFileHash):
		return Conflict(CodeDuplicateReceipt, "This receipt has already been submitted")

	case errors.Is(err, store.ErrCodeExhausted):
		return Conflict(CodeCodeExhausted, "This code has reached its redemption limit")

	case errors.Is(err, store.ErrCodeNotRedeemable):
		return BadRequest(CodeCodeNotRedeemable, "This code is not valid or no longer active")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError identifies external collaborator failures by
// message content and maps them to 503s.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		return ServiceUnavailable(
			CodeEmailServiceError,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	if strings.Contains(errMsg, "openai") || strings.Contains(errMsg, "gemini") || strings.Contains(errMsg, "ai service") {
		return ServiceUnavailable(
			CodeAIServiceError,
			"Verification service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	return InternalError(err)
}
