package handlers

import (
	"errors"
	request "heritage_gold/internal/adapter/http/dto/request"
	response "heritage_gold/internal/adapter/http/dto/response"
	"heritage_gold/internal/domain/cart"
	"heritage_gold/internal/usecase"
	"heritage_gold/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionHeader identifies the visitor whose cart a request operates on.
const SessionHeader = "X-Session-ID"

var errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// Get godoc
// @Summary      Current selection
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header  string  true  "visitor session"
// @Success      200  {object}  response.CartResponse
// @Router       /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.usecase.Get(c.GetHeader(SessionHeader))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCartView(view))
}

// Add godoc
// @Summary      Add an item to the selection
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string                   true  "visitor session"
// @Param        body          body    request.CartItemRequest  true  "item"
// @Success      200  {object}  response.CartResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /cart/items [post]
func (h *CartHandler) Add(c *gin.Context) {
	var payload request.CartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.Add(c.Request.Context(), c.GetHeader(SessionHeader), payload.ItemID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCartView(view))
}

// Remove godoc
// @Summary      Remove an item from the selection
// @Tags         cart
// @Produce      json
// @Param        X-Session-ID  header  string  true  "visitor session"
// @Param        item_id       path    string  true  "item id"
// @Success      200  {object}  response.CartResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /cart/items/{item_id} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	view, err := h.usecase.Remove(c.GetHeader(SessionHeader), c.Param("item_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCartView(view))
}

// Clear godoc
// @Summary      Empty the selection
// @Tags         cart
// @Param        X-Session-ID  header  string  true  "visitor session"
// @Success      204
// @Router       /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.usecase.Clear(c.GetHeader(SessionHeader)); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Submit godoc
// @Summary      Turn the selection into an order intent
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string                   true  "visitor session"
// @Param        body          body    request.CustomerRequest  true  "customer details"
// @Success      201  {object}  response.OrderIntentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /cart/submit [post]
func (h *CartHandler) Submit(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderIntentPayload.HTTPStatus, errInvalidOrderIntentPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.Submit(c.Request.Context(), c.GetHeader(SessionHeader), payload.ToDetails())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrderIntent(o))
}

func (h *CartHandler) fail(c *gin.Context, err error) {
	appErr := mapCartError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingSession):
		return pkg.NewDomainErrorSimple("MISSING_SESSION", "X-Session-ID header is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidItemID):
		return errInvalidCartPayload
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, cart.ErrAlreadyInCart):
		return pkg.NewDomainErrorSimple("ALREADY_IN_CART", "Item already in your selection", http.StatusConflict)
	case errors.Is(err, cart.ErrNotInCart):
		return pkg.NewDomainErrorSimple("NOT_IN_CART", "Item is not in your selection", http.StatusNotFound)
	case errors.Is(err, cart.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Your selection is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogueUnavailable):
		return pkg.NewDomainError("CATALOGUE_UNAVAILABLE", "Catalogue is temporarily unavailable", err, http.StatusBadGateway)
	default:
		return mapLeadError(err, errInvalidOrderIntentPayload)
	}
}
