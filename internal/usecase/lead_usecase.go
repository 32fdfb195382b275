package usecase

import (
	"context"
	"errors"
	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/logging"
	"heritage_gold/internal/usecase/interfaces"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidLead      = errors.New("invalid lead")
	ErrNoItemsSelected  = errors.New("no items selected")
	ErrSubmissionFailed = errors.New("submission failed")
)

const (
	OrderIntentAck = "Your order intent has been saved. We will contact you shortly!"
	ContactAck     = "Thank you for your message. We will get back to you soon!"
)

// CustomerDetails is the contact block shared by order intents and cart submission.
type CustomerDetails struct {
	Name     string
	Email    string
	Phone    string
	Occasion string
	Timeline string
	Message  string
}

type OrderIntentInput struct {
	Customer CustomerDetails
	Items    []entities.OrderIntentLine
}

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type ILeadUseCase interface {
	SubmitOrderIntent(ctx context.Context, in OrderIntentInput) (entities.OrderIntent, error)
	SubmitContact(ctx context.Context, in ContactInput) (entities.ContactMessage, error)
}

type LeadUseCase struct {
	orders   interfaces.IOrderIntentRepository
	contacts interfaces.IContactRepository
	notifier interfaces.INotifier
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(orders interfaces.IOrderIntentRepository, contacts interfaces.IContactRepository, notifier interfaces.INotifier) *LeadUseCase {
	return &LeadUseCase{orders: orders, contacts: contacts, notifier: notifier}
}

// SubmitOrderIntent validates, stores and announces an order intent. The
// total is recomputed from the line estimates. Notification failures are
// logged and do not fail the submission.
func (u *LeadUseCase) SubmitOrderIntent(ctx context.Context, in OrderIntentInput) (entities.OrderIntent, error) {
	c := trimCustomer(in.Customer)
	if c.Name == "" || c.Phone == "" || c.Occasion == "" || c.Timeline == "" || !validEmail(c.Email) {
		return entities.OrderIntent{}, ErrInvalidLead
	}
	if len(in.Items) == 0 {
		return entities.OrderIntent{}, ErrNoItemsSelected
	}

	var total int64
	lines := make([]entities.OrderIntentLine, 0, len(in.Items))
	for _, l := range in.Items {
		l.ItemID = strings.TrimSpace(l.ItemID)
		if l.ItemID == "" || l.Estimate < 0 {
			return entities.OrderIntent{}, ErrInvalidLead
		}
		total += l.Estimate
		lines = append(lines, l)
	}

	o := entities.OrderIntent{
		OrderID:       shortID(),
		CustomerName:  c.Name,
		CustomerEmail: c.Email,
		CustomerPhone: c.Phone,
		Occasion:      c.Occasion,
		Timeline:      c.Timeline,
		Items:         lines,
		TotalEstimate: total,
		Message:       c.Message,
		Status:        entities.OrderIntentStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	saved, err := u.orders.Create(ctx, o)
	if err != nil {
		logging.Error("[lead][usecase] order intent persist failed", zap.String("order_id", o.OrderID), zap.Error(err))
		return entities.OrderIntent{}, errors.Join(ErrSubmissionFailed, err)
	}

	if err := u.notifier.NotifyOrderIntent(ctx, saved); err != nil {
		logging.Warn("[lead][usecase] order intent notification failed", zap.String("order_id", saved.OrderID), zap.Error(err))
	}
	logging.Info("[lead][usecase] order intent saved",
		zap.String("order_id", saved.OrderID),
		zap.Int("items", len(saved.Items)),
		zap.Int64("total_estimate", saved.TotalEstimate),
	)
	return saved, nil
}

func (u *LeadUseCase) SubmitContact(ctx context.Context, in ContactInput) (entities.ContactMessage, error) {
	m := entities.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
	if m.Name == "" || m.Phone == "" || m.Subject == "" || m.Message == "" || !validEmail(m.Email) {
		return entities.ContactMessage{}, ErrInvalidLead
	}
	m.InquiryID = shortID()
	m.CreatedAt = time.Now().UTC()

	saved, err := u.contacts.Create(ctx, m)
	if err != nil {
		logging.Error("[lead][usecase] contact persist failed", zap.String("inquiry_id", m.InquiryID), zap.Error(err))
		return entities.ContactMessage{}, errors.Join(ErrSubmissionFailed, err)
	}

	if err := u.notifier.NotifyContact(ctx, saved); err != nil {
		logging.Warn("[lead][usecase] contact notification failed", zap.String("inquiry_id", saved.InquiryID), zap.Error(err))
	}
	logging.Info("[lead][usecase] contact saved", zap.String("inquiry_id", saved.InquiryID))
	return saved, nil
}

func trimCustomer(c CustomerDetails) CustomerDetails {
	return CustomerDetails{
		Name:     strings.TrimSpace(c.Name),
		Email:    strings.TrimSpace(c.Email),
		Phone:    strings.TrimSpace(c.Phone),
		Occasion: strings.TrimSpace(c.Occasion),
		Timeline: strings.TrimSpace(c.Timeline),
		Message:  strings.TrimSpace(c.Message),
	}
}

func validEmail(v string) bool {
	if v == "" {
		return false
	}
	addr, err := mail.ParseAddress(v)
	return err == nil && addr.Address == v
}
