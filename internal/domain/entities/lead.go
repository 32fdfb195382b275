package entities

import "time"

type OrderIntentStatus string

const (
	OrderIntentStatusPending OrderIntentStatus = "pending"
)

// OrderIntentLine is one selected piece with the estimate the customer saw.
type OrderIntentLine struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Estimate int64  `json:"estimate"`
}

// OrderIntent is a non-binding expression of interest. It is never fulfilled
// by this service; the shop follows up by phone or email.
//
// Storage model (DynamoDB):
//   - PK: order_id
type OrderIntent struct {
	OrderID       string            `json:"order_id"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	CustomerPhone string            `json:"customer_phone"`
	Occasion      string            `json:"occasion"`
	Timeline      string            `json:"timeline"`
	Items         []OrderIntentLine `json:"items"`
	TotalEstimate int64             `json:"total_estimate"`
	Message       string            `json:"message,omitempty"`
	Status        OrderIntentStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

// ContactMessage is a general enquiry from the contact page.
//
// Storage model (DynamoDB):
//   - PK: inquiry_id
type ContactMessage struct {
	InquiryID string    `json:"inquiry_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
