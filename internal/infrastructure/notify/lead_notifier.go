package notify

import (
	"context"
	"errors"

	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/usecase/interfaces"
)

type htmlChat interface {
	SendHTML(ctx context.Context, text string) error
}

type htmlMailer interface {
	SendHTML(to, subject, html string) error
}

// LeadNotifier sends every lead to the shop chat and confirms order intents to
// the customer by email.
type LeadNotifier struct {
	chat   htmlChat
	mailer htmlMailer
}

var _ interfaces.INotifier = (*LeadNotifier)(nil)

func NewLeadNotifier(chat *Telegram, mailer *Email) *LeadNotifier {
	return &LeadNotifier{chat: chat, mailer: mailer}
}

func (n *LeadNotifier) NotifyOrderIntent(ctx context.Context, o entities.OrderIntent) error {
	chatErr := n.chat.SendHTML(ctx, orderIntentTelegram(o))
	mailErr := n.mailer.SendHTML(o.CustomerEmail, orderIntentEmailSubject(o), orderIntentEmail(o))
	return errors.Join(chatErr, mailErr)
}

func (n *LeadNotifier) NotifyContact(ctx context.Context, m entities.ContactMessage) error {
	return n.chat.SendHTML(ctx, contactTelegram(m))
}
