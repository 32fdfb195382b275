package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"heritage_gold/internal/domain/entities"
	mock_interfaces "heritage_gold/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validOrderInput() OrderIntentInput {
	return OrderIntentInput{
		Customer: CustomerDetails{
			Name:     " Priya ",
			Email:    "priya@example.com",
			Phone:    "+91 90000 00000",
			Occasion: "wedding",
			Timeline: "1-3 months",
		},
		Items: []entities.OrderIntentLine{
			{ItemID: "NECK001", Name: "Lakshmi Temple Necklace", Estimate: 350000},
			{ItemID: "EAR001", Name: "Jhumka Earrings", Estimate: 75000},
		},
	}
}

func TestLeadUseCase_SubmitOrderIntent(t *testing.T) {
	t.Run("validation happens before persistence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderIntentRepository(ctrl)
		uc := NewLeadUseCase(orders, nil, nil)

		cases := []struct {
			name   string
			mutate func(in *OrderIntentInput)
			want   error
		}{
			{name: "name", mutate: func(in *OrderIntentInput) { in.Customer.Name = "  " }, want: ErrInvalidLead},
			{name: "email", mutate: func(in *OrderIntentInput) { in.Customer.Email = "not-an-email" }, want: ErrInvalidLead},
			{name: "phone", mutate: func(in *OrderIntentInput) { in.Customer.Phone = "" }, want: ErrInvalidLead},
			{name: "timeline", mutate: func(in *OrderIntentInput) { in.Customer.Timeline = "" }, want: ErrInvalidLead},
			{name: "no items", mutate: func(in *OrderIntentInput) { in.Items = nil }, want: ErrNoItemsSelected},
			{name: "negative estimate", mutate: func(in *OrderIntentInput) { in.Items[0].Estimate = -1 }, want: ErrInvalidLead},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				in := validOrderInput()
				tc.mutate(&in)
				_, err := uc.SubmitOrderIntent(context.Background(), in)
				if !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("persist error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderIntentRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewLeadUseCase(orders, nil, notifier)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.OrderIntent{}, errors.New("db"))

		_, err := uc.SubmitOrderIntent(context.Background(), validOrderInput())
		if !errors.Is(err, ErrSubmissionFailed) {
			t.Fatalf("expected ErrSubmissionFailed, got %v", err)
		}
	})

	t.Run("success survives notification failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderIntentRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewLeadUseCase(orders, nil, notifier)

		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderIntent{})).DoAndReturn(
			func(_ context.Context, o entities.OrderIntent) (entities.OrderIntent, error) {
				if len(o.OrderID) != 8 || o.OrderID != strings.ToUpper(o.OrderID) {
					t.Fatalf("unexpected order id %q", o.OrderID)
				}
				if o.Status != entities.OrderIntentStatusPending || o.TotalEstimate != 425000 || o.CustomerName != "Priya" {
					t.Fatalf("unexpected order intent: %+v", o)
				}
				return o, nil
			},
		)
		notifier.EXPECT().NotifyOrderIntent(gomock.Any(), gomock.Any()).Return(errors.New("telegram down"))

		o, err := uc.SubmitOrderIntent(context.Background(), validOrderInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.OrderID == "" {
			t.Fatalf("expected order id")
		}
	})
}

func TestLeadUseCase_SubmitContact(t *testing.T) {
	valid := ContactInput{Name: "Arun", Email: "arun@example.com", Phone: "98765", Subject: "Custom order", Message: "Can you make a chain?"}

	t.Run("invalid", func(t *testing.T) {
		uc := NewLeadUseCase(nil, nil, nil)
		in := valid
		in.Subject = " "
		if _, err := uc.SubmitContact(context.Background(), in); !errors.Is(err, ErrInvalidLead) {
			t.Fatalf("expected ErrInvalidLead, got %v", err)
		}
	})

	t.Run("persist error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contacts := mock_interfaces.NewMockIContactRepository(ctrl)
		uc := NewLeadUseCase(nil, contacts, nil)
		contacts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ContactMessage{}, errors.New("db"))

		if _, err := uc.SubmitContact(context.Background(), valid); !errors.Is(err, ErrSubmissionFailed) {
			t.Fatalf("expected ErrSubmissionFailed, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contacts := mock_interfaces.NewMockIContactRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewLeadUseCase(nil, contacts, notifier)
		contacts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.ContactMessage) (entities.ContactMessage, error) { return m, nil },
		)
		notifier.EXPECT().NotifyContact(gomock.Any(), gomock.Any()).Return(nil)

		m, err := uc.SubmitContact(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(m.InquiryID) != 8 || m.CreatedAt.IsZero() {
			t.Fatalf("unexpected contact: %+v", m)
		}
	})
}
