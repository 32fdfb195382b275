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
	errInvalidCatalogueQuery = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid catalogue query", http.StatusBadRequest)
	errInvalidItemPayload    = pkg.NewDomainErrorSimple("INVALID_ITEM", "Invalid jewellery item", http.StatusBadRequest)
)

type CatalogueHandler struct {
	usecase usecase.ICatalogueUseCase
}

func NewCatalogueHandler(uc usecase.ICatalogueUseCase) *CatalogueHandler {
	return &CatalogueHandler{usecase: uc}
}

// List godoc
// @Summary      Query the jewellery catalogue
// @Tags         catalogue
// @Produce      json
// @Param        type        query  string  false  "jewellery type"
// @Param        occasion    query  string  false  "occasion"
// @Param        gender      query  string  false  "gender"
// @Param        purity      query  string  false  "purity label"
// @Param        featured    query  bool    false  "featured only"
// @Param        min_weight  query  number  false  "grams"
// @Param        max_weight  query  number  false  "grams"
// @Success      200  {object}  response.CatalogueResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /jewellery [get]
func (h *CatalogueHandler) List(c *gin.Context) {
	var q request.CatalogueQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidCatalogueQuery.HTTPStatus, errInvalidCatalogueQuery.ToHTTPError())
		return
	}

	items, rates, err := h.usecase.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		appErr := mapCatalogueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogue(items, rates))
}

// Get godoc
// @Summary      Single jewellery item with its price range
// @Tags         catalogue
// @Produce      json
// @Param        item_id  path  string  true  "item id"
// @Success      200  {object}  response.ItemDetailResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /jewellery/{item_id} [get]
func (h *CatalogueHandler) Get(c *gin.Context) {
	item, rates, err := h.usecase.Get(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		appErr := mapCatalogueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ItemDetailResponse{Item: response.FromPricedItem(item), Rates: response.FromRateTable(rates)})
}

// Create godoc
// @Summary      Add a jewellery item
// @Tags         catalogue
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreateItemRequest  true  "item"
// @Success      201  {object}  response.CreatedItemResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /jewellery [post]
func (h *CatalogueHandler) Create(c *gin.Context) {
	var payload request.CreateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidItemPayload.HTTPStatus, errInvalidItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCatalogueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.CreatedItemResponse{Status: "success", ItemID: item.ItemID})
}

func mapCatalogueError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidItem):
		return errInvalidItemPayload
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemAlreadyExists):
		return pkg.NewDomainErrorSimple("ITEM_ALREADY_EXISTS", "Item already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrCatalogueUnavailable):
		return pkg.NewDomainError("CATALOGUE_UNAVAILABLE", "Catalogue is temporarily unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
