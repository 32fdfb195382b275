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
	errInvalidRatePayload      = pkg.NewDomainErrorSimple("INVALID_RATES", "Invalid rate payload", http.StatusBadRequest)
	errInvalidCalculationQuery = pkg.NewDomainErrorSimple("INVALID_CALCULATION", "weight must be a positive number", http.StatusBadRequest)
	errInvalidOldGoldPayload   = pkg.NewDomainErrorSimple("INVALID_OLD_GOLD_INPUT", "Invalid old gold payload", http.StatusBadRequest)
)

// PricingHandler serves the rate table, the price calculator and the
// old-gold exchange calculator.
type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// GetRates godoc
// @Summary      Current gold and silver rates
// @Tags         pricing
// @Produce      json
// @Param        refresh  query  bool  false  "bypass the rate cache"
// @Success      200  {object}  response.RateTableResponse
// @Router       /gold-price [get]
func (h *PricingHandler) GetRates(c *gin.Context) {
	refresh := c.Query("refresh") == "true"
	c.JSON(http.StatusOK, response.FromRateTable(h.usecase.Rates(c.Request.Context(), refresh)))
}

// UpdateRates godoc
// @Summary      Manually override the rate table
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        body  body  request.RateUpdateRequest  true  "rates per gram"
// @Success      200  {object}  response.RateTableResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /gold-price [post]
func (h *PricingHandler) UpdateRates(c *gin.Context) {
	var payload request.RateUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRatePayload.HTTPStatus, errInvalidRatePayload.ToHTTPError())
		return
	}

	table, err := h.usecase.UpdateRates(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRateTable(&table))
}

// Calculate godoc
// @Summary      Itemised price breakdown
// @Tags         pricing
// @Produce      json
// @Param        weight           query  number  true   "grams"
// @Param        purity           query  string  false  "24K, 22K or 18K"
// @Param        labour_per_gram  query  number  false  "making charge per gram"
// @Param        include_gst      query  bool    false  "add 3% GST (default true)"
// @Success      200  {object}  response.CalculateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /calculate-price [post]
func (h *PricingHandler) Calculate(c *gin.Context) {
	var q request.CalculateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidCalculationQuery.HTTPStatus, errInvalidCalculationQuery.ToHTTPError())
		return
	}

	b, rates, err := h.usecase.Calculate(c.Request.Context(), q.ToInput())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(b, rates))
}

// Profiles godoc
// @Summary      Jewellery types for the old-gold calculator
// @Tags         old-gold
// @Produce      json
// @Success      200  {array}  response.ProfileResponse
// @Router       /old-gold/profiles [get]
func (h *PricingHandler) Profiles(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromProfiles(h.usecase.Profiles()))
}

// AssessOldGold godoc
// @Summary      Old-gold exchange estimate
// @Tags         old-gold
// @Accept       json
// @Produce      json
// @Param        body  body  request.OldGoldRequest  true  "old gold weight and target type"
// @Success      200  {object}  response.AssessmentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /old-gold/assess [post]
func (h *PricingHandler) AssessOldGold(c *gin.Context) {
	var payload request.OldGoldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOldGoldPayload.HTTPStatus, errInvalidOldGoldPayload.ToHTTPError())
		return
	}

	a, err := h.usecase.AssessOldGold(c.Request.Context(), payload.OldWeight, payload.ProfileID)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAssessment(a))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWeight):
		return pkg.NewDomainErrorSimple("INVALID_WEIGHT", "weight must be a positive number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLabour):
		return pkg.NewDomainErrorSimple("INVALID_LABOUR", "labour charge cannot be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRates):
		return errInvalidRatePayload
	case errors.Is(err, usecase.ErrUnknownProfile):
		return pkg.NewDomainErrorSimple("UNKNOWN_PROFILE", "Unknown jewellery type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRatesUnavailable):
		return pkg.NewDomainError("RATES_UNAVAILABLE", "Rates are unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrRatePersistFailed):
		return pkg.NewDomainError("RATES_NOT_SAVED", "Rates could not be saved", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
