package handlers

import (
	"errors"
	request "heritage_gold/internal/adapter/http/dto/request"
	response "heritage_gold/internal/adapter/http/dto/response"
	"heritage_gold/internal/usecase"
	"heritage_gold/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderIntentPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INTENT", "Name, a valid email, phone, occasion and timeline are required", http.StatusBadRequest)
	errInvalidContactPayload     = pkg.NewDomainErrorSimple("INVALID_CONTACT", "Name, a valid email, phone, subject and message are required", http.StatusBadRequest)
)

// LeadHandler accepts order intents and contact messages.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// SubmitOrderIntent godoc
// @Summary      Record a non-binding order intent
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body  request.OrderIntentRequest  true  "customer and selected items"
// @Success      201  {object}  response.OrderIntentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /order-intent [post]
func (h *LeadHandler) SubmitOrderIntent(c *gin.Context) {
	var payload request.OrderIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderIntentPayload.HTTPStatus, errInvalidOrderIntentPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.SubmitOrderIntent(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapLeadError(err, errInvalidOrderIntentPayload)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrderIntent(o))
}

// SubmitContact godoc
// @Summary      Send a contact message
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body  request.ContactRequest  true  "message"
// @Success      201  {object}  response.ContactResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /contact [post]
func (h *LeadHandler) SubmitContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContactPayload.HTTPStatus, errInvalidContactPayload.ToHTTPError())
		return
	}

	m, err := h.usecase.SubmitContact(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapLeadError(err, errInvalidContactPayload)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromContact(m))
}

func mapLeadError(err error, invalid *pkg.AppError) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLead):
		return invalid
	case errors.Is(err, usecase.ErrNoItemsSelected):
		return pkg.NewDomainErrorSimple("NO_ITEMS_SELECTED", "Select at least one item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionFailed):
		return pkg.NewDomainError("SUBMISSION_FAILED", "We could not save your request, please try again", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
