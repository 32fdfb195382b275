package request

import (
	"testing"

	"heritage_gold/internal/domain/guided"
	"heritage_gold/internal/domain/pricing"
)

func TestCalculateQuery_ToInput(t *testing.T) {
	in := CalculateQuery{Weight: 10, Purity: "18K"}.ToInput()
	if !in.IncludeTax {
		t.Fatalf("expected GST to default to included")
	}
	if in.LabourPerGram != nil {
		t.Fatalf("expected nil labour so the default applies, got %v", *in.LabourPerGram)
	}

	off := false
	labour := 650.0
	in = CalculateQuery{Weight: 10, LabourPerGram: &labour, IncludeGST: &off}.ToInput()
	if in.IncludeTax || *in.LabourPerGram != 650 {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestCatalogueQuery_ToFilter(t *testing.T) {
	featured := true
	f := CatalogueQuery{Type: " ring ", Occasion: "daily", Featured: &featured, MaxWeight: 8}.ToFilter()
	if f.Type != "ring" || f.Occasion != "daily" || f.Featured == nil || !*f.Featured || f.MaxWeight != 8 {
		t.Fatalf("unexpected filter: %+v", f)
	}
}

func TestGuidedRequest_ToCriteria(t *testing.T) {
	c := GuidedRequest{Occasion: "wedding", Recipient: "wife", Style: "medium"}.ToCriteria()
	if c.Budget != guided.DefaultBudget {
		t.Fatalf("expected default budget, got %+v", c.Budget)
	}
	if c.Occasion != guided.OccasionWedding || c.Recipient != guided.RecipientWife || c.Style != pricing.WeightMedium {
		t.Fatalf("unexpected criteria: %+v", c)
	}

	lo, hi := int64(200000), int64(100000)
	c = GuidedRequest{BudgetMin: &lo, BudgetMax: &hi}.ToCriteria()
	if c.Budget.Min != 200000 || c.Budget.Max != 100000 {
		t.Fatalf("inverted budget must pass through unchanged, got %+v", c.Budget)
	}
}

func TestOrderIntentRequest_ToInput(t *testing.T) {
	r := OrderIntentRequest{
		CustomerRequest: CustomerRequest{CustomerName: "Priya", CustomerEmail: "p@example.com", Message: "call after 6"},
		Items:           []OrderIntentItemRequest{{ItemID: "NK001", Name: "Necklace", Estimate: 100}},
		TotalEstimate:   999,
	}
	in := r.ToInput()
	if in.Customer.Name != "Priya" || in.Customer.Message != "call after 6" {
		t.Fatalf("unexpected customer: %+v", in.Customer)
	}
	if len(in.Items) != 1 || in.Items[0].ItemID != "NK001" || in.Items[0].Estimate != 100 {
		t.Fatalf("unexpected items: %+v", in.Items)
	}
}
