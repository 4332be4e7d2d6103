package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"

	"preorder-server/internal/observability"
)

var (
	ErrSendingEmail  = errors.New("error sending email")
	ErrEmptyTemplate = errors.New("email template is empty")
)

//go:generate mockgen -source=service.go -destination=mocks_test.go -package=email

// MailClient sends a single HTML email and returns the provider message id.
type MailClient interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

// EmailService handles sending emails
type EmailService struct {
	mailClient    MailClient
	logger        *observability.Logger
	defaultSender string
	templates     map[string]string
}

// AssetLink is a single download link rendered into the bonus pack email.
type AssetLink struct {
	Title string
	URL   string
}

// TemplateData represents the data that can be used in templates
type TemplateData struct {
	Email           string
	BookTitle       string
	Retailer        string
	AssetLinks      []AssetLink
	FullPackLink    string
	RejectionReason string
	ConfirmLink     string
	UnsubscribeLink string
}

// New creates a new EmailService
func New(mailClient MailClient, defaultSender string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		templates: map[string]string{
			"bonus_pack_delivery": `
			<html>
				<body>
					<h1>Your {{.BookTitle}} Bonus Pack Is Here!</h1>
					<p>Thank you for pre-ordering {{.BookTitle}}. Your receipt has been verified and your bonus pack is ready to download.</p>
					<p>Each link below is valid for 24 hours:</p>
					<ul>
					{{range .AssetLinks}}	<li><a href="{{.URL}}">{{.Title}}</a></li>
					{{end}}</ul>
					<p>Or grab everything at once:</p>
					<p><a href="{{.FullPackLink}}" style="background-color: #2563EB; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Download the full pack</a></p>
					<p>If a link expires, reply to this email and we will send a fresh one.</p>
				</body>
			</html>
			`,
			"receipt_verified": `
			<html>
				<body>
					<h1>Receipt Verified</h1>
					<p>Good news! Your {{.Retailer}} receipt for {{.BookTitle}} has been verified.</p>
					<p>Your bonus pack download links are on their way in a separate email.</p>
				</body>
			</html>
			`,
			"receipt_rejected": `
			<html>
				<body>
					<h1>We Couldn't Verify Your Receipt</h1>
					<p>Unfortunately we were unable to verify your receipt for {{.BookTitle}}.</p>
					<p>Reason: {{.RejectionReason}}</p>
					<p>You can upload a clearer photo or a different receipt at any time. If you believe this is a mistake, reply to this email and a human will take a look.</p>
				</body>
			</html>
			`,
			"receipt_pending_review": `
			<html>
				<body>
					<h1>Receipt Under Review</h1>
					<p>Thanks for submitting your receipt for {{.BookTitle}}. It needs a quick manual check before we can send your bonus pack.</p>
					<p>We usually finish reviews within one business day. No action is needed from you.</p>
				</body>
			</html>
			`,
			"newsletter_confirmation": `
			<html>
				<body>
					<h1>Confirm Your Subscription</h1>
					<p>Please confirm that you want to receive {{.BookTitle}} updates:</p>
					<p><a href="{{.ConfirmLink}}" style="background-color: #2563EB; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Confirm subscription</a></p>
					<p>If you didn't sign up, you can safely ignore this email.</p>
				</body>
			</html>
			`,
			"newsletter_welcome": `
			<html>
				<body>
					<h1>You're In!</h1>
					<p>Thanks for confirming. You'll now get {{.BookTitle}} launch news, excerpts, and pre-order bonuses before anyone else.</p>
					<p><a href="{{.UnsubscribeLink}}">Unsubscribe</a> at any time.</p>
				</body>
			</html>
			`,
		},
	}
}

// renderTemplate renders a template with the provided data
func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	tmplStr, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	tmpl, err := template.New(templateName).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (s *EmailService) send(ctx context.Context, to, subject, templateName string, data TemplateData) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: templateName},
		observability.Field{Key: "recipient", Value: to},
	)

	htmlContent, err := s.renderTemplate(templateName, data)
	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("failed to render %s template", templateName), err)
		return fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	_, err = s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("failed to send %s email", templateName), err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// SendBonusPackEmail sends the delivery email with one download link per asset
// plus the full pack link. Returns the provider message id for delivery tracking.
func (s *EmailService) SendBonusPackEmail(ctx context.Context, to, bookTitle string, links []AssetLink, fullPackLink string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: "bonus_pack_delivery"},
		observability.Field{Key: "recipient", Value: to},
		observability.Field{Key: "asset_count", Value: len(links)},
	)

	if len(links) == 0 {
		return "", fmt.Errorf("no asset links to deliver")
	}

	data := TemplateData{
		Email:        to,
		BookTitle:    bookTitle,
		AssetLinks:   links,
		FullPackLink: fullPackLink,
	}

	htmlContent, err := s.renderTemplate("bonus_pack_delivery", data)
	if err != nil {
		s.logger.Error(ctx, "failed to render bonus pack delivery template", err)
		return "", fmt.Errorf("%w: %s", ErrEmptyTemplate, err.Error())
	}

	subject := fmt.Sprintf("Your %s bonus pack is ready", bookTitle)
	messageID, err := s.mailClient.SendEmail(ctx, s.defaultSender, to, subject, htmlContent)
	if err != nil {
		s.logger.Error(ctx, "failed to send bonus pack delivery email", err)
		return "", fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return messageID, nil
}

// SendReceiptVerifiedEmail notifies the buyer that verification succeeded.
func (s *EmailService) SendReceiptVerifiedEmail(ctx context.Context, to, bookTitle, retailer string) error {
	return s.send(ctx, to, fmt.Sprintf("Your %s receipt is verified", bookTitle), "receipt_verified", TemplateData{
		Email:     to,
		BookTitle: bookTitle,
		Retailer:  retailer,
	})
}

// SendReceiptRejectedEmail notifies the buyer that verification failed and why.
func (s *EmailService) SendReceiptRejectedEmail(ctx context.Context, to, bookTitle, reason string) error {
	return s.send(ctx, to, fmt.Sprintf("We couldn't verify your %s receipt", bookTitle), "receipt_rejected", TemplateData{
		Email:           to,
		BookTitle:       bookTitle,
		RejectionReason: reason,
	})
}

// SendReceiptPendingReviewEmail tells the buyer a human will review the receipt.
func (s *EmailService) SendReceiptPendingReviewEmail(ctx context.Context, to, bookTitle string) error {
	return s.send(ctx, to, fmt.Sprintf("Your %s receipt is under review", bookTitle), "receipt_pending_review", TemplateData{
		Email:     to,
		BookTitle: bookTitle,
	})
}

// SendNewsletterConfirmationEmail sends the double opt-in confirmation link.
func (s *EmailService) SendNewsletterConfirmationEmail(ctx context.Context, to, bookTitle, confirmLink string) error {
	return s.send(ctx, to, "Confirm your subscription", "newsletter_confirmation", TemplateData{
		Email:       to,
		BookTitle:   bookTitle,
		ConfirmLink: confirmLink,
	})
}

// SendNewsletterWelcomeEmail sends the post-confirmation welcome.
func (s *EmailService) SendNewsletterWelcomeEmail(ctx context.Context, to, bookTitle, unsubscribeLink string) error {
	return s.send(ctx, to, "Welcome aboard", "newsletter_welcome", TemplateData{
		Email:           to,
		BookTitle:       bookTitle,
		UnsubscribeLink: unsubscribeLink,
	})
}
