package handlers

import (
	"errors"
	request "heritage_gold/internal/adapter/http/dto/request"
	response "heritage_gold/internal/adapter/http/dto/response"
	"heritage_gold/internal/usecase"
	"heritage_gold/pkg"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var errInvalidGoldsmithPayload = pkg.NewDomainErrorSimple("INVALID_PROFILE", "Invalid goldsmith profile", http.StatusBadRequest)

// InfoHandler serves the goldsmith profile, educational content and health.
type InfoHandler struct {
	usecase usecase.IInfoUseCase
	now     func() time.Time
}

func NewInfoHandler(uc usecase.IInfoUseCase) *InfoHandler {
	return &InfoHandler{usecase: uc, now: time.Now}
}

// Health godoc
// @Summary      Liveness probe
// @Tags         info
// @Produce      json
// @Success      200  {object}  response.HealthResponse
// @Router       /health [get]
func (h *InfoHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{Status: "healthy", Timestamp: h.now().UTC()})
}

// Goldsmith godoc
// @Summary      Goldsmith profile
// @Tags         info
// @Produce      json
// @Success      200  {object}  entities.GoldsmithProfile
// @Failure      404  {object}  pkg.HTTPError
// @Router       /goldsmith [get]
func (h *InfoHandler) Goldsmith(c *gin.Context) {
	p, err := h.usecase.Goldsmith(c.Request.Context())
	if err != nil {
		appErr := mapInfoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateGoldsmith godoc
// @Summary      Replace the goldsmith profile
// @Tags         info
// @Accept       json
// @Produce      json
// @Param        body  body  request.GoldsmithRequest  true  "profile"
// @Success      200  {object}  response.StatusResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /goldsmith [post]
func (h *InfoHandler) UpdateGoldsmith(c *gin.Context) {
	var payload request.GoldsmithRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGoldsmithPayload.HTTPStatus, errInvalidGoldsmithPayload.ToHTTPError())
		return
	}

	if err := h.usecase.UpdateGoldsmith(c.Request.Context(), payload.ToEntity()); err != nil {
		appErr := mapInfoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.StatusResponse{Status: "success", Message: "Profile updated"})
}

// Education godoc
// @Summary      Buyer education articles
// @Tags         info
// @Produce      json
// @Success      200  {object}  response.EducationResponse
// @Router       /education [get]
func (h *InfoHandler) Education(c *gin.Context) {
	c.JSON(http.StatusOK, response.EducationResponse{Articles: h.usecase.Education()})
}

func mapInfoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidProfile):
		return errInvalidGoldsmithPayload
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
