package request

import (
	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/usecase"
)

type CustomerRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	Occasion      string `json:"occasion" binding:"required"`
	Timeline      string `json:"timeline" binding:"required"`
	Message       string `json:"message"`
}

func (r CustomerRequest) ToDetails() usecase.CustomerDetails {
	return usecase.CustomerDetails{
		Name:     r.CustomerName,
		Email:    r.CustomerEmail,
		Phone:    r.CustomerPhone,
		Occasion: r.Occasion,
		Timeline: r.Timeline,
		Message:  r.Message,
	}
}

type OrderIntentItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Name     string `json:"name"`
	Estimate int64  `json:"estimate" binding:"gte=0"`
}

// OrderIntentRequest is the direct order-intent payload. total_estimate is
// accepted for compatibility but the server recomputes it.
type OrderIntentRequest struct {
	CustomerRequest
	Items         []OrderIntentItemRequest `json:"items" binding:"dive"`
	TotalEstimate int64                    `json:"total_estimate"`
}

func (r OrderIntentRequest) ToInput() usecase.OrderIntentInput {
	lines := make([]entities.OrderIntentLine, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, entities.OrderIntentLine{ItemID: it.ItemID, Name: it.Name, Estimate: it.Estimate})
	}
	return usecase.OrderIntentInput{Customer: r.ToDetails(), Items: lines}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (r ContactRequest) ToInput() usecase.ContactInput {
	return usecase.ContactInput{Name: r.Name, Email: r.Email, Phone: r.Phone, Subject: r.Subject, Message: r.Message}
}

type CartItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}
