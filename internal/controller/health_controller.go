package controller

import (
	"net/http"
	"time"

	"github.com/achyut02/Ai-Placement-Tracker/config"
	"github.com/achyut02/Ai-Placement-Tracker/database"
	"github.com/achyut02/Ai-Placement-Tracker/internal/dto"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewHealthController(db *gorm.DB, cfg *config.Config) *HealthController {
	return &HealthController{db: db, cfg: cfg}
}

// Check godoc
// @Summary Liveness probe with dependency status
// @Tags Health
// @Produce json
// @Success 200 {object} dto.Response{data=dto.HealthResponse}
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	services := map[string]string{
		"database": "healthy",
		"gemini":   "configured",
	}
	if err := database.Ping(c.db); err != nil {
		services["database"] = "unhealthy: " + err.Error()
	}
	if c.cfg.GeminiApiKey == "" {
		services["gemini"] = "not configured"
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.HealthResponse{
		Message:     "AI Placement Tracker API is running",
		Timestamp:   time.Now().UTC(),
		Environment: c.cfg.Environment,
		Services:    services,
	}))
}
