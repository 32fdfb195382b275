package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"heritage_gold/internal/adapter/http/handlers/mocks"
	"heritage_gold/internal/domain/cart"
	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validCustomer = `"customer_name":"Priya","customer_email":"priya@example.com","customer_phone":"9876543210","occasion":"wedding","timeline":"1-3 months"`

func TestLeadHandler_SubmitOrderIntent(t *testing.T) {
	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockILeadUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/order-intent", NewLeadHandler(uc).SubmitOrderIntent)
		return r, uc
	}

	t.Run("invalid email", func(t *testing.T) {
		r, _ := newRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/order-intent", `{"customer_name":"Priya","customer_email":"nope","customer_phone":"1","occasion":"wedding","timeline":"now","items":[{"item_id":"NK001"}]}`, nil)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("no items", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().SubmitOrderIntent(gomock.Any(), gomock.Any()).Return(entities.OrderIntent{}, usecase.ErrNoItemsSelected)

		w := doRequest(r, http.MethodPost, "/v1/order-intent", `{`+validCustomer+`,"items":[]}`, nil)
		expectStatus(t, w, http.StatusBadRequest)
		if body := decodeBody(t, w); body["code"] != "NO_ITEMS_SELECTED" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().SubmitOrderIntent(gomock.Any(), gomock.Any()).Return(entities.OrderIntent{}, errors.Join(usecase.ErrSubmissionFailed, errors.New("db")))

		w := doRequest(r, http.MethodPost, "/v1/order-intent", `{`+validCustomer+`,"items":[{"item_id":"NK001","name":"Necklace","estimate":100}]}`, nil)
		expectStatus(t, w, http.StatusBadGateway)
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().SubmitOrderIntent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.OrderIntentInput) (entities.OrderIntent, error) {
				if in.Customer.Email != "priya@example.com" || len(in.Items) != 2 || in.Items[1].Estimate != 250 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.OrderIntent{OrderID: "AB12CD34", TotalEstimate: 350}, nil
			},
		)

		w := doRequest(r, http.MethodPost, "/v1/order-intent", `{`+validCustomer+`,"items":[{"item_id":"NK001","name":"Necklace","estimate":100},{"item_id":"RG001","name":"Ring","estimate":250}],"total_estimate":1}`, nil)
		expectStatus(t, w, http.StatusCreated)
		body := decodeBody(t, w)
		if body["order_id"] != "AB12CD34" || body["message"] != usecase.OrderIntentAck || body["total_estimate"] != 350.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestLeadHandler_SubmitContact(t *testing.T) {
	newRouter := func(t *testing.T) (*gin.Engine, *mocks.MockILeadUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILeadUseCase(ctrl)
		r := gin.New()
		r.POST("/v1/contact", NewLeadHandler(uc).SubmitContact)
		return r, uc
	}

	t.Run("missing subject", func(t *testing.T) {
		r, _ := newRouter(t)
		w := doRequest(r, http.MethodPost, "/v1/contact", `{"name":"Ravi","email":"ravi@example.com","phone":"1","message":"hi"}`, nil)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newRouter(t)
		uc.EXPECT().SubmitContact(gomock.Any(), usecase.ContactInput{Name: "Ravi", Email: "ravi@example.com", Phone: "1", Subject: "Resize", Message: "hi"}).
			Return(entities.ContactMessage{InquiryID: "FF00AA11"}, nil)

		w := doRequest(r, http.MethodPost, "/v1/contact", `{"name":"Ravi","email":"ravi@example.com","phone":"1","subject":"Resize","message":"hi"}`, nil)
		expectStatus(t, w, http.StatusCreated)
		body := decodeBody(t, w)
		if body["inquiry_id"] != "FF00AA11" || body["message"] != usecase.ContactAck {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func newCartRouter(t *testing.T) (*gin.Engine, *mocks.MockICartUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICartUseCase(ctrl)
	h := NewCartHandler(uc)

	r := gin.New()
	r.GET("/v1/cart", h.Get)
	r.DELETE("/v1/cart", h.Clear)
	r.POST("/v1/cart/items", h.Add)
	r.DELETE("/v1/cart/items/:item_id", h.Remove)
	r.POST("/v1/cart/submit", h.Submit)
	return r, uc
}

var session = map[string]string{SessionHeader: "sess-1"}

func TestCartHandler(t *testing.T) {
	t.Run("missing session", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().Get("").Return(usecase.CartView{}, usecase.ErrMissingSession)

		w := doRequest(r, http.MethodGet, "/v1/cart", "", nil)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("get", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().Get("sess-1").Return(usecase.CartView{
			Lines: []cart.Line{{Item: entities.Item{ItemID: "NK001", Name: "Necklace"}, Estimate: 120510, AddedAt: time.Now()}},
			Total: 120510,
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/cart", "", session)
		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		if body["count"] != 1.0 || body["total_estimate"] != 120510.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("add duplicate", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().Add(gomock.Any(), "sess-1", "NK001").Return(usecase.CartView{}, cart.ErrAlreadyInCart)

		w := doRequest(r, http.MethodPost, "/v1/cart/items", `{"item_id":"NK001"}`, session)
		expectStatus(t, w, http.StatusConflict)
	})

	t.Run("add unknown item", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().Add(gomock.Any(), "sess-1", "XX").Return(usecase.CartView{}, usecase.ErrItemNotFound)

		w := doRequest(r, http.MethodPost, "/v1/cart/items", `{"item_id":"XX"}`, session)
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("add with catalogue down", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().Add(gomock.Any(), "sess-1", "NK001").Return(usecase.CartView{}, errors.Join(usecase.ErrCatalogueUnavailable, errors.New("timeout")))

		w := doRequest(r, http.MethodPost, "/v1/cart/items", `{"item_id":"NK001"}`, session)
		expectStatus(t, w, http.StatusBadGateway)
		if body := decodeBody(t, w); body["code"] != "CATALOGUE_UNAVAILABLE" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("remove missing line", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().Remove("sess-1", "NK001").Return(usecase.CartView{}, cart.ErrNotInCart)

		w := doRequest(r, http.MethodDelete, "/v1/cart/items/NK001", "", session)
		expectStatus(t, w, http.StatusNotFound)
	})

	t.Run("clear", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().Clear("sess-1").Return(nil)

		w := doRequest(r, http.MethodDelete, "/v1/cart", "", session)
		expectStatus(t, w, http.StatusNoContent)
	})

	t.Run("submit empty cart", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().Submit(gomock.Any(), "sess-1", gomock.Any()).Return(entities.OrderIntent{}, cart.ErrEmptyCart)

		w := doRequest(r, http.MethodPost, "/v1/cart/submit", `{`+validCustomer+`}`, session)
		expectStatus(t, w, http.StatusBadRequest)
		if body := decodeBody(t, w); body["code"] != "EMPTY_CART" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("submit invalid lead", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().Submit(gomock.Any(), "sess-1", gomock.Any()).Return(entities.OrderIntent{}, usecase.ErrInvalidLead)

		w := doRequest(r, http.MethodPost, "/v1/cart/submit", `{`+validCustomer+`}`, session)
		expectStatus(t, w, http.StatusBadRequest)
		if body := decodeBody(t, w); body["code"] != "INVALID_ORDER_INTENT" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("submit", func(t *testing.T) {
		r, uc := newCartRouter(t)
		uc.EXPECT().Submit(gomock.Any(), "sess-1", usecase.CustomerDetails{
			Name: "Priya", Email: "priya@example.com", Phone: "9876543210", Occasion: "wedding", Timeline: "1-3 months",
		}).Return(entities.OrderIntent{OrderID: "AB12CD34"}, nil)

		w := doRequest(r, http.MethodPost, "/v1/cart/submit", `{`+validCustomer+`}`, session)
		expectStatus(t, w, http.StatusCreated)
		if body := decodeBody(t, w); body["order_id"] != "AB12CD34" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
