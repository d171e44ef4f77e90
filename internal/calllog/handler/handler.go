// Package handler provides HTTP handlers for call log endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/civicpulse/civicpulse/internal/calllog/model"
	"github.com/civicpulse/civicpulse/internal/calllog/service"
)

// Handler handles HTTP requests for call log endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new call log handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// RecordCall handles POST /calls requests.
func (h *Handler) RecordCall(c *gin.Context) {
	var req model.RecordCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.RecordCall(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrMissingLegislator) || errors.Is(err, model.ErrInvalidOutcome) {
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
			return
		}
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetCallCount handles GET /calls/count requests.
func (h *Handler) GetCallCount(c *gin.Context) {
	resp, err := h.service.GetCallCount(c.Request.Context())
	if err != nil {
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetRecentCalls handles GET /calls/recent?limit= requests.
func (h *Handler) GetRecentCalls(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			errorResponse(c, "INVALID_REQUEST", "limit must be an integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	resp, err := h.service.GetRecentCalls(c.Request.Context(), limit)
	if err != nil {
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
