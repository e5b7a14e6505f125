package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/llmcouncil/councild/ent"
	"github.com/llmcouncil/councild/pkg/tools"
)

const (
	apiKeyHeader = "X-API-Key"
	apiKeyCtxKey = "api_key"
	callerCtxKey = "caller"
	authForRead  = false
	authForRun   = true
)

// requireAuth authenticates the X-API-Key header. Endpoints that start
// billable runs (forRun) additionally enforce the monthly token cap before
// any run row exists. With ALLOW_NO_AUTH set, a missing key yields an
// anonymous caller instead of 401.
func (s *Server) requireAuth(forRun bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(apiKeyHeader)
		if raw == "" {
			if s.cfg.AllowNoAuth {
				c.Set(callerCtxKey, tools.Caller{})
				c.Next()
				return
			}
			abortError(c, http.StatusUnauthorized, "missing_api_key")
			return
		}

		key, err := s.auth.Authenticate(c.Request.Context(), raw)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		if err := s.auth.CheckRateLimit(key); err != nil {
			mapServiceError(c, err)
			return
		}
		if forRun {
			if err := s.auth.CheckMonthlyQuota(c.Request.Context(), key); err != nil {
				mapServiceError(c, err)
				return
			}
		}

		keyIDs, err := s.auth.AccountKeyIDs(c.Request.Context(), key)
		if err != nil {
			mapServiceError(c, err)
			return
		}

		c.Set(apiKeyCtxKey, key)
		c.Set(callerCtxKey, tools.Caller{
			OwnerKeyID:    &key.ID,
			AccountKeyIDs: keyIDs,
			HasAPIKey:     true,
		})
		c.Next()
	}
}

// caller returns the identity resolved by requireAuth.
func caller(c *gin.Context) tools.Caller {
	if v, ok := c.Get(callerCtxKey); ok {
		if cl, ok := v.(tools.Caller); ok {
			return cl
		}
	}
	return tools.Caller{}
}

// apiKey returns the authenticated key row, nil for anonymous callers.
func apiKey(c *gin.Context) *ent.ApiKey {
	if v, ok := c.Get(apiKeyCtxKey); ok {
		if key, ok := v.(*ent.ApiKey); ok {
			return key
		}
	}
	return nil
}

// requireKey is for account endpoints, which have no anonymous mode even
// under ALLOW_NO_AUTH.
func requireKey(c *gin.Context) (*ent.ApiKey, bool) {
	key := apiKey(c)
	if key == nil {
		abortError(c, http.StatusUnauthorized, "missing_api_key")
		return nil, false
	}
	return key, true
}
