package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthHandler struct {
	DB  *gorm.DB
	Env string
}

type healthStatus struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Database    string `json:"database"`
	Environment string `json:"environment"`
}

func (h *HealthHandler) Check(c echo.Context) error {
	dbStatus := "connected"
	if h.DB == nil {
		dbStatus = "disconnected"
	} else if sqlDB, err := h.DB.DB(); err != nil || sqlDB.PingContext(c.Request().Context()) != nil {
		dbStatus = "disconnected"
	}

	status := "ok"
	code := http.StatusOK
	if dbStatus != "connected" {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, healthStatus{
		Status:      status,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Database:    dbStatus,
		Environment: h.Env,
	})
}
