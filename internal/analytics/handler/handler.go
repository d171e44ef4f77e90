// Package handler provides HTTP handlers for analytics endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/civicpulse/civicpulse/internal/analytics/model"
	"github.com/civicpulse/civicpulse/internal/analytics/service"
	billmodel "github.com/civicpulse/civicpulse/internal/bill/model"
)

// Handler handles HTTP requests for analytics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new analytics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetMetrics handles GET /analytics/metrics?year= requests.
func (h *Handler) GetMetrics(c *gin.Context) {
	year := c.Query("year")
	if year == "" {
		errorResponse(c, "INVALID_REQUEST", "year parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetMetrics(c.Request.Context(), year)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetWordCloud handles GET /analytics/wordcloud?year= requests. An empty
// word list is a valid 200 response, not an error.
func (h *Handler) GetWordCloud(c *gin.Context) {
	year := c.Query("year")
	if year == "" {
		errorResponse(c, "INVALID_REQUEST", "year parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetWordCloud(c.Request.Context(), year)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetBillStatistics handles GET /analytics/billStatistics?year=&legislator=
// requests.
func (h *Handler) GetBillStatistics(c *gin.Context) {
	year := c.Query("year")
	if year == "" {
		errorResponse(c, "INVALID_REQUEST", "year parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetBillStatistics(c.Request.Context(), year, c.Query("legislator"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidYear):
		errorResponse(c, "INVALID_REQUEST", "year must be a four-digit year", http.StatusBadRequest)
	case errors.Is(err, billmodel.ErrYearNotFound):
		notFoundResponse(c, "no data for the requested session year")
	default:
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
