package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adnanmuhammad4393/henna-storefront/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// emailNotifier forwards order-outcome notifications to the business
// mailbox via SendGrid. Informational toasts are not mailed.
type emailNotifier struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	toEmail   string
	logger    *slog.Logger
}

func NewEmailNotifier(apiKey, fromEmail, fromName, toEmail string, logger *slog.Logger) Notifier {
	return &emailNotifier{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
		logger:    logger,
	}
}

func (e *emailNotifier) Notify(ctx context.Context, n models.Notification) {

	if n.Kind != models.NotificationSuccess {
		return
	}

	// The sink contract is fire-and-forget, so the send must not block the
	// checkout flow or surface its own failure to the caller.
	go func() {
		if err := e.send(n); err != nil {
			e.logger.Error("failed to forward notification email",
				slog.String("title", n.Title),
				slog.String("error", err.Error()),
			)
		}
	}()
}

func (e *emailNotifier) send(n models.Notification) error {

	from := mail.NewEmail(e.fromName, e.fromEmail)
	to := mail.NewEmail("", e.toEmail)

	message := mail.NewV3Mail()
	message.SetFrom(from)

	personalization := mail.NewPersonalization()
	personalization.AddTos(to)
	personalization.Subject = n.Title
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", n.Description))

	response, err := e.client.Send(message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}
