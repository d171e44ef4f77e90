// Package router provides call log module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/civicpulse/civicpulse/internal/calllog/handler"
	"github.com/civicpulse/civicpulse/internal/calllog/repository"
	"github.com/civicpulse/civicpulse/internal/calllog/service"
)

// RegisterRoutes registers call log module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.POST("/calls", h.RecordCall)
	r.GET("/calls/count", h.GetCallCount)
	r.GET("/calls/recent", h.GetRecentCalls)
}
