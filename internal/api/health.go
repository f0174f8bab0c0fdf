package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kiran797979/monad-blitz-hyderabad/internal/version"
)

// Health reports process uptime and database reachability.
func (h *ArenaHandler) Health(c *gin.Context) {
	dbOK := h.repo.Ping() == nil
	status := "ok"
	code := http.StatusOK
	if !dbOK {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().Unix(),
		"uptime":    int64(time.Since(h.started).Seconds()),
		"database":  dbOK,
	})
}

// Version returns build metadata injected at build time.
func (h *ArenaHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
	})
}
