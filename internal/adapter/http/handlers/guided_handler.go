package handlers

import (
	"errors"
	request "heritage_gold/internal/adapter/http/dto/request"
	response "heritage_gold/internal/adapter/http/dto/response"
	"heritage_gold/internal/domain/guided"
	"heritage_gold/internal/usecase"
	"heritage_gold/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidGuidedPayload = pkg.NewDomainErrorSimple("INVALID_GUIDED_INPUT", "Invalid guided selection", http.StatusBadRequest)

type GuidedHandler struct {
	usecase usecase.IGuidedUseCase
}

func NewGuidedHandler(uc usecase.IGuidedUseCase) *GuidedHandler {
	return &GuidedHandler{usecase: uc}
}

// Match godoc
// @Summary      Up to three catalogue pieces for the guided answers
// @Tags         guided
// @Accept       json
// @Produce      json
// @Param        body  body  request.GuidedRequest  true  "answers"
// @Success      200  {object}  response.GuidedResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /guided/matches [post]
func (h *GuidedHandler) Match(c *gin.Context) {
	var payload request.GuidedRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGuidedPayload.HTTPStatus, errInvalidGuidedPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Match(c.Request.Context(), payload.ToCriteria())
	if err != nil {
		appErr := mapGuidedError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGuidedResult(result))
}

func mapGuidedError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, guided.ErrInvalidOccasion):
		return pkg.NewDomainErrorSimple("INVALID_OCCASION", "Occasion must be wedding, daily, festival or gift", http.StatusBadRequest)
	case errors.Is(err, guided.ErrInvalidRecipient):
		return pkg.NewDomainErrorSimple("INVALID_RECIPIENT", "Recipient must be self, wife, daughter or mother", http.StatusBadRequest)
	case errors.Is(err, guided.ErrInvalidStyle):
		return pkg.NewDomainErrorSimple("INVALID_STYLE", "Style must be light, medium or heavy", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBudget):
		return pkg.NewDomainErrorSimple("INVALID_BUDGET", "Budget cannot be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogueUnavailable):
		return pkg.NewDomainError("CATALOGUE_UNAVAILABLE", "Catalogue is temporarily unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
