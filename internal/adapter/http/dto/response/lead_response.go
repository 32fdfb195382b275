package response

import (
	"time"

	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/usecase"
)

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type OrderIntentResponse struct {
	Status        string `json:"status"`
	OrderID       string `json:"order_id"`
	TotalEstimate int64  `json:"total_estimate"`
	Message       string `json:"message"`
}

func FromOrderIntent(o entities.OrderIntent) OrderIntentResponse {
	return OrderIntentResponse{Status: "success", OrderID: o.OrderID, TotalEstimate: o.TotalEstimate, Message: usecase.OrderIntentAck}
}

type ContactResponse struct {
	Status    string `json:"status"`
	InquiryID string `json:"inquiry_id"`
	Message   string `json:"message"`
}

func FromContact(m entities.ContactMessage) ContactResponse {
	return ContactResponse{Status: "success", InquiryID: m.InquiryID, Message: usecase.ContactAck}
}

type CartLineResponse struct {
	ItemID   string    `json:"item_id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Purity   string    `json:"purity"`
	Estimate int64     `json:"estimate"`
	AddedAt  time.Time `json:"added_at"`
}

type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Count int                `json:"count"`
	Total int64              `json:"total_estimate"`
}

func FromCartView(v usecase.CartView) CartResponse {
	lines := make([]CartLineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, CartLineResponse{
			ItemID:   l.Item.ItemID,
			Name:     l.Item.Name,
			Type:     l.Item.Type,
			Purity:   l.Item.Purity,
			Estimate: l.Estimate,
			AddedAt:  l.AddedAt,
		})
	}
	return CartResponse{Items: lines, Count: len(lines), Total: v.Total}
}

type EducationResponse struct {
	Articles []entities.EducationArticle `json:"articles"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
