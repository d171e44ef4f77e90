// Package router provides analytics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/civicpulse/civicpulse/internal/analytics/engine"
	"github.com/civicpulse/civicpulse/internal/analytics/handler"
	"github.com/civicpulse/civicpulse/internal/analytics/service"
	"github.com/civicpulse/civicpulse/internal/upstream"
)

// RegisterRoutes registers analytics module routes.
func RegisterRoutes(r *gin.Engine, fetcher upstream.Fetcher, logger *zap.SugaredLogger) {
	svc := service.New(fetcher, engine.DefaultOptions(), logger)
	h := handler.New(svc, logger)

	r.GET("/analytics/metrics", h.GetMetrics)
	r.GET("/analytics/wordcloud", h.GetWordCloud)
	r.GET("/analytics/billStatistics", h.GetBillStatistics)
}
