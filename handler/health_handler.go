package handler

import (
	"context"
	"net/http"
	"time"

	"stickynotes/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthResponse struct {
	Status    string             `json:"status"`
	Database  string             `json:"database"`
	Host      utils.HostStats    `json:"host"`
	MongoPool utils.MongoMetrics `json:"mongo_pool"`
	Time      time.Time          `json:"time"`
}

type HealthHandler struct {
	ping        func(ctx context.Context) error
	cpuInterval time.Duration
	logger      *zap.Logger
}

// NewHealthHandler reports the database as down whenever ping fails.
func NewHealthHandler(ping func(ctx context.Context) error, cpuInterval time.Duration, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, cpuInterval: cpuInterval, logger: logger}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:    "ok",
		Database:  "up",
		Host:      utils.GetHostStats(ctx, h.cpuInterval),
		MongoPool: utils.GetMongoMetrics(),
		Time:      time.Now().UTC(),
	}

	status := http.StatusOK
	if h.ping != nil {
		if err := h.ping(ctx); err != nil {
			h.logger.Warn("health check: database unreachable", zap.Error(err))
			utils.TrackError("database", "health_ping")
			resp.Status = "degraded"
			resp.Database = "down"
			status = http.StatusServiceUnavailable
		}
	}

	c.JSON(status, resp)
}
