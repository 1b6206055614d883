package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/cpu"

	"notemark/repository"
)

type HealthHandler struct {
	Store   *repository.Store
	started time.Time
}

func NewHealthHandler(store *repository.Store) *HealthHandler {
	return &HealthHandler{Store: store, started: time.Now()}
}

func (h *HealthHandler) Health(c *gin.Context) {
	mongoStatus := "up"
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		mongoStatus = "down"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"uptime":      time.Since(h.started).Round(time.Second).String(),
		"mongo":       mongoStatus,
		"cpu_percent": cpuPercent(),
	})
}

func cpuPercent() float64 {
	percentages, err := cpu.Percent(0, false)
	if err != nil || len(percentages) == 0 {
		return 0
	}
	return percentages[0]
}
