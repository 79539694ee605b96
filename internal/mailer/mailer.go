package mailer

import (
	"context"

	"quiz-backend/internal/apperror"
	"quiz-backend/internal/models"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
)

const resultSubject = "Your Money Personality Quiz Results"

const resultHTML = `
<div style="font-family: sans-serif; max-width: 560px; margin: 0 auto; padding: 24px;">
	<h2 style="color: #333;">Thanks for taking the quiz!</h2>
	<p>Your money personality result is attached to this email.</p>
	<p>Take a look at the practical steps in your result and pick one to try this week.</p>
	<p style="color: #aaa; font-size: 12px; margin-top: 24px;">
		You received this email because you asked for your quiz results to be sent here.
	</p>
</div>
`

// Mailer sends the quiz result email.
type Mailer interface {
	SendResult(ctx context.Context, to string, attachment *models.Attachment) error
}

type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer returns a mailer backed by Resend. With an empty apiKey the
// mailer only logs what it would have sent.
func NewResendMailer(apiKey, from string) *ResendMailer {
	m := &ResendMailer{from: from}
	if apiKey != "" {
		m.client = resend.NewClient(apiKey)
	}
	return m
}

// newResendMailerWithClient wraps an already configured client, e.g. one with
// a different base URL.
func newResendMailerWithClient(client *resend.Client, from string) *ResendMailer {
	return &ResendMailer{client: client, from: from}
}

func (m *ResendMailer) SendResult(ctx context.Context, to string, attachment *models.Attachment) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: resultSubject,
		Html:    resultHTML,
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.NewString(),
		},
	}
	if attachment != nil {
		params.Attachments = []*resend.Attachment{{
			Content:     attachment.Content,
			Filename:    attachment.Filename,
			ContentType: attachment.ContentType,
		}}
	}

	if m.client == nil {
		log.Warn().
			Str("to", to).
			Int("attachments", len(params.Attachments)).
			Msg("RESEND_API_KEY not set, skipping email send")
		return nil
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return apperror.NewExternalError("send result email", err)
	}
	log.Info().Str("email_id", sent.Id).Msg("Result email sent")
	return nil
}
