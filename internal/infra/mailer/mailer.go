// Package mailer delivers issued access credentials over MailerSend, with a
// log-only fallback for environments without an API key.
package mailer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"stayaccess/internal/domain/booking"
	"stayaccess/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/mailersend/mailersend-go"
)

const sendTimeout = 10 * time.Second

type MailerSendNotifier struct {
	client   *mailersend.Mailersend
	from     mailersend.From
	linkBase string
}

func NewMailerSendNotifier(cfg config.MailerConfig, linkBase string) *MailerSendNotifier {
	return &MailerSendNotifier{
		client: mailersend.NewMailersend(cfg.APIKey),
		from: mailersend.From{
			Name:  cfg.FromName,
			Email: cfg.FromEmail,
		},
		linkBase: linkBase,
	}
}

func (m *MailerSendNotifier) DeliverAccess(ctx context.Context, contact booking.Contact, tokenStr string, bookingID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	link := AccessLink(m.linkBase, bookingID, tokenStr)

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{
		Name:  contact.DisplayName(),
		Email: contact.ContactEmail(),
	}})
	msg.SetSubject("Your booking access link")
	msg.SetText(fmt.Sprintf("Use this link to view your booking (valid for a limited time): %s", link))
	msg.SetHTML(fmt.Sprintf(`<p>Use this link to view your booking (valid for a limited time):</p><p><a href="%s">%s</a></p>`, link, link))

	res, err := m.client.Email.Send(ctx, msg)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("mailersend error: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}

// DevNotifier logs the link instead of sending it. Used whenever MailerSend
// credentials are absent so local issuance still succeeds end to end.
type DevNotifier struct {
	linkBase string
}

func NewDevNotifier(linkBase string) *DevNotifier {
	return &DevNotifier{linkBase: linkBase}
}

func (d *DevNotifier) DeliverAccess(_ context.Context, contact booking.Contact, tokenStr string, bookingID uuid.UUID) error {
	slog.Info("dev mailer: access link",
		"to", contact.ContactEmail(),
		"contact_kind", contact.Kind().String(),
		"link", AccessLink(d.linkBase, bookingID, tokenStr))
	return nil
}

func AccessLink(base string, bookingID uuid.UUID, tokenStr string) string {
	return fmt.Sprintf("%s/%s?token=%s", strings.TrimRight(base, "/"), bookingID, tokenStr)
}
