// Package api exposes the HTTP tools gateway: the two council tools, the
// conversation and account resources, and the health endpoint, all behind
// API-key auth.
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/llmcouncil/councild/pkg/config"
	"github.com/llmcouncil/councild/pkg/database"
	"github.com/llmcouncil/councild/pkg/services"
	"github.com/llmcouncil/councild/pkg/tools"
)

// Server wires the gin router to the services and the tool runtime.
type Server struct {
	cfg     *config.Config
	db      *database.Client
	auth    *services.AuthService
	store   services.ConversationStore
	usage   *services.UsageService
	runtime *tools.Runtime

	engine *gin.Engine
	http   *http.Server
}

// NewServer creates the HTTP server. db may be nil in the file-backed
// development mode; the account routes then answer 503.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	auth *services.AuthService,
	store services.ConversationStore,
	usage *services.UsageService,
	runtime *tools.Runtime,
) *Server {
	s := &Server{
		cfg:     cfg,
		db:      db,
		auth:    auth,
		store:   store,
		usage:   usage,
		runtime: runtime,
	}
	s.engine = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	if s.cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger())
	r.Use(corsHeaders())

	r.GET("/healthz", s.Health)

	v1 := r.Group("/v1")
	{
		toolsGroup := v1.Group("/tools", s.requireAuth(authForRun))
		toolsGroup.POST("/council.ask", s.CouncilAsk)
		toolsGroup.POST("/council.pipeline", s.CouncilPipeline)

		conv := v1.Group("/conversations", s.requireAuth(authForRead))
		conv.GET("", s.ListConversations)
		conv.POST("", s.CreateConversation)
		conv.GET("/:id", s.GetConversation)

		account := v1.Group("/account", s.requireAuth(authForRead))
		account.GET("/api-keys", s.ListAPIKeys)
		account.POST("/api-keys", s.CreateAPIKey)
		account.POST("/api-keys/:id/deactivate", s.DeactivateAPIKey)
		account.POST("/api-keys/:id/rotate", s.RotateAPIKey)
		account.GET("/usage", s.AccountUsage)
		account.GET("/limits", s.AccountLimits)
	}

	return r
}

// Handler returns the router, for tests driving the server in-process.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start begins serving on addr and blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests within the context's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
