package repository

import (
	"context"

	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/usecase/interfaces"
)

const (
	defaultOrderIntentsTableName = "order_intents"
	defaultContactsTableName     = "contacts"
)

type orderIntentLineItem struct {
	ItemID   string `dynamodbav:"item_id"`
	Name     string `dynamodbav:"name"`
	Estimate int64  `dynamodbav:"estimate"`
}

type orderIntentItem struct {
	ID            string                `dynamodbav:"id"`
	CustomerName  string                `dynamodbav:"customer_name"`
	CustomerEmail string                `dynamodbav:"customer_email"`
	CustomerPhone string                `dynamodbav:"customer_phone"`
	Occasion      string                `dynamodbav:"occasion"`
	Timeline      string                `dynamodbav:"timeline"`
	Items         []orderIntentLineItem `dynamodbav:"items"`
	TotalEstimate int64                 `dynamodbav:"total_estimate"`
	Message       string                `dynamodbav:"message,omitempty"`
	Status        string                `dynamodbav:"status"`
	CreatedAt     string                `dynamodbav:"created_at"`
}

type contactItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone"`
	Subject   string `dynamodbav:"subject"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"created_at"`
}

// OrderIntentDynamoRepository persists order intents.
//
// Table requirements:
//   - PK: id (string), the order id
type OrderIntentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderIntentRepository = (*OrderIntentDynamoRepository)(nil)

func NewOrderIntentDynamoRepository(ddb DynamoAPI, table string) *OrderIntentDynamoRepository {
	return &OrderIntentDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "ORDER_INTENTS_TABLE", defaultOrderIntentsTableName),
	}
}

func (r *OrderIntentDynamoRepository) Create(ctx context.Context, o entities.OrderIntent) (entities.OrderIntent, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toOrderIntentItem(o)); err != nil {
		return entities.OrderIntent{}, err
	}
	return o, nil
}

// GetByID returns a zero OrderIntent when the id is unknown.
func (r *OrderIntentDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrderIntent, error) {
	var it orderIntentItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.OrderIntent{}, err
	}
	return fromOrderIntentItem(it), nil
}

// ContactDynamoRepository persists contact messages.
//
// Table requirements:
//   - PK: id (string), the inquiry id
type ContactDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IContactRepository = (*ContactDynamoRepository)(nil)

func NewContactDynamoRepository(ddb DynamoAPI, table string) *ContactDynamoRepository {
	return &ContactDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "CONTACTS_TABLE", defaultContactsTableName),
	}
}

func (r *ContactDynamoRepository) Create(ctx context.Context, m entities.ContactMessage) (entities.ContactMessage, error) {
	it := contactItem{
		ID:        m.InquiryID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: formatTime(m.CreatedAt),
	}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.ContactMessage{}, err
	}
	return m, nil
}

func toOrderIntentItem(o entities.OrderIntent) orderIntentItem {
	lines := make([]orderIntentLineItem, 0, len(o.Items))
	for _, l := range o.Items {
		lines = append(lines, orderIntentLineItem{ItemID: l.ItemID, Name: l.Name, Estimate: l.Estimate})
	}
	return orderIntentItem{
		ID:            o.OrderID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		Occasion:      o.Occasion,
		Timeline:      o.Timeline,
		Items:         lines,
		TotalEstimate: o.TotalEstimate,
		Message:       o.Message,
		Status:        string(o.Status),
		CreatedAt:     formatTime(o.CreatedAt),
	}
}

func fromOrderIntentItem(it orderIntentItem) entities.OrderIntent {
	lines := make([]entities.OrderIntentLine, 0, len(it.Items))
	for _, l := range it.Items {
		lines = append(lines, entities.OrderIntentLine{ItemID: l.ItemID, Name: l.Name, Estimate: l.Estimate})
	}
	return entities.OrderIntent{
		OrderID:       it.ID,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		CustomerPhone: it.CustomerPhone,
		Occasion:      it.Occasion,
		Timeline:      it.Timeline,
		Items:         lines,
		TotalEstimate: it.TotalEstimate,
		Message:       it.Message,
		Status:        entities.OrderIntentStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
