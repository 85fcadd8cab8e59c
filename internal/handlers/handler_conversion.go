package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
	"github.com/SscSPs/currency_calculator/internal/dto"
	"github.com/SscSPs/currency_calculator/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conversionHandler handles HTTP requests related to conversions and pairs.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

// RegisterConversionRoutes registers routes related to conversions and pairs.
func RegisterConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	rg.POST("/conversions", h.convert)
	rg.GET("/pairs/:from/:to", h.getPair)
}

// convert godoc
// @Summary Convert an amount
// @Description Converts an amount from one currency to another through the cross-reference matrix. The result is truncated to the destination currency's precision.
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion request"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Currency pair not found in the cross matrix"
// @Failure 500 {object} ErrorResponse "Failed to convert"
// @Router /conversions [post]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  apperrors.MsgInvalidInput,
			Detail: err.Error(),
			System: apperrors.SystemApplication,
		})
		return
	}

	logger = logger.With(slog.String("from", req.From), slog.String("to", req.To))
	logger.Info("Received request to convert amount", slog.String("amount", req.Amount))

	conversion, err := h.conversionService.Convert(c.Request.Context(), req.From, req.To, req.Amount)
	if err != nil {
		respondError(c, logger, "Failed to convert amount", err)
		return
	}

	logger.Info("Amount converted successfully", slog.String("result", conversion.Result.String()))
	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}

// getPair godoc
// @Summary Explain a currency pair
// @Description Returns the cross matrix relation of an ordered pair, its effective rate and, for bridged pairs, the resolution of each leg
// @Tags pairs
// @Produce  json
// @Param   from path string true "Source currency code"
// @Param   to path string true "Destination currency code"
// @Success 200 {object} dto.PairResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Currency pair not found in the cross matrix"
// @Failure 500 {object} ErrorResponse "Failed to resolve pair"
// @Router /pairs/{from}/{to} [get]
func (h *conversionHandler) getPair(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to := c.Param("from"), c.Param("to")

	logger = logger.With(slog.String("from", from), slog.String("to", to))
	logger.Info("Received request to explain pair")

	resolution, err := h.conversionService.Explain(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, logger, "Failed to explain pair", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPairResponse(resolution))
}
