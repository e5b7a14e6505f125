package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/llmcouncil/councild/pkg/database"
	"github.com/llmcouncil/councild/pkg/version"
)

// Health handles GET /healthz. Reports database health when a database is
// configured; the file-backed development mode reports it as disabled.
func (s *Server) Health(c *gin.Context) {
	body := gin.H{
		"status":  "ok",
		"service": version.AppName,
		"version": version.GitCommit,
	}

	if s.db == nil {
		body["database"] = gin.H{"status": "disabled"}
		c.JSON(http.StatusOK, body)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	body["database"] = dbHealth
	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	c.JSON(http.StatusOK, body)
}
