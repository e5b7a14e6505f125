package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/llmcouncil/councild/ent"
	"github.com/llmcouncil/councild/pkg/services"
)

// apiKeyMetadata is the key view returned to clients. The plaintext key
// appears only in create/rotate responses, never here.
type apiKeyMetadata struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CreatedAt       string  `json:"created_at"`
	LastUsedAt      *string `json:"last_used_at"`
	IsActive        bool    `json:"is_active"`
	DeactivatedAt   *string `json:"deactivated_at"`
	RateLimitPerMin int     `json:"rate_limit_per_min"`
	MonthlyTokenCap *int    `json:"monthly_token_cap"`
}

func keyMetadata(row *ent.ApiKey) apiKeyMetadata {
	return apiKeyMetadata{
		ID:              row.ID.String(),
		Name:            row.Name,
		CreatedAt:       row.CreatedAt.UTC().Format(time.RFC3339),
		LastUsedAt:      timeString(row.LastUsedAt),
		IsActive:        row.IsActive && row.DeactivatedAt == nil,
		DeactivatedAt:   timeString(row.DeactivatedAt),
		RateLimitPerMin: row.RateLimitPerMin,
		MonthlyTokenCap: row.MonthlyTokenCap,
	}
}

func timeString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// createAPIKeyRequest is the POST /v1/account/api-keys body.
type createAPIKeyRequest struct {
	Name            string `json:"name"`
	RateLimitPerMin *int   `json:"rate_limit_per_min"`
	MonthlyTokenCap *int   `json:"monthly_token_cap"`
}

// ListAPIKeys handles GET /v1/account/api-keys.
func (s *Server) ListAPIKeys(c *gin.Context) {
	key, ok := requireKey(c)
	if !ok {
		return
	}

	rows, err := s.auth.ListKeys(c.Request.Context(), services.AccountRoot(key))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	out := make([]apiKeyMetadata, 0, len(rows))
	for _, row := range rows {
		out = append(out, keyMetadata(row))
	}
	c.JSON(http.StatusOK, out)
}

// CreateAPIKey handles POST /v1/account/api-keys. The plaintext key is
// returned exactly once.
func (s *Server) CreateAPIKey(c *gin.Context) {
	key, ok := requireKey(c)
	if !ok {
		return
	}

	var req createAPIKeyRequest
	if !bindStrict(c, &req) {
		return
	}

	created, plaintext, err := s.auth.CreateKey(
		c.Request.Context(), services.AccountRoot(key),
		req.Name, req.RateLimitPerMin, req.MonthlyTokenCap)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"api_key_id":    created.ID.String(),
		"plaintext_key": plaintext,
		"api_key":       keyMetadata(created),
	})
}

// DeactivateAPIKey handles POST /v1/account/api-keys/:id/deactivate.
func (s *Server) DeactivateAPIKey(c *gin.Context) {
	key, ok := requireKey(c)
	if !ok {
		return
	}
	target, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortError(c, http.StatusNotFound, "not_found")
		return
	}

	updated, err := s.auth.DeactivateKey(c.Request.Context(), services.AccountRoot(key), target)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, keyMetadata(updated))
}

// RotateAPIKey handles POST /v1/account/api-keys/:id/rotate: the old key
// stops working and a replacement with the same settings is minted.
func (s *Server) RotateAPIKey(c *gin.Context) {
	key, ok := requireKey(c)
	if !ok {
		return
	}
	target, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortError(c, http.StatusNotFound, "not_found")
		return
	}

	oldKey, newKey, plaintext, err := s.auth.RotateKey(c.Request.Context(), services.AccountRoot(key), target)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"old_key_id":    oldKey.ID.String(),
		"new_key_id":    newKey.ID.String(),
		"plaintext_key": plaintext,
		"new_key":       keyMetadata(newKey),
	})
}

// AccountUsage handles GET /v1/account/usage?from=YYYY-MM-DD&to=YYYY-MM-DD,
// inclusive of both days.
func (s *Server) AccountUsage(c *gin.Context) {
	key, ok := requireKey(c)
	if !ok {
		return
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid_date_range")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		abortError(c, http.StatusBadRequest, "invalid_date_range")
		return
	}
	if from.After(to) {
		abortError(c, http.StatusBadRequest, "invalid_date_range")
		return
	}

	totals, err := s.usage.UsageRange(c.Request.Context(), key.ID, from, to.AddDate(0, 0, 1))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from":                    from.Format("2006-01-02"),
		"to":                      to.Format("2006-01-02"),
		"total_prompt_tokens":     totals.TotalPromptTokens,
		"total_completion_tokens": totals.TotalCompletionTokens,
		"total_tokens":            totals.TotalTokens,
		"total_cost_estimated":    totals.TotalCostEstimated,
		"by_model":                totals.ByModel,
	})
}

// AccountLimits handles GET /v1/account/limits.
func (s *Server) AccountLimits(c *gin.Context) {
	key, ok := requireKey(c)
	if !ok {
		return
	}

	info, err := s.auth.Limits(c.Request.Context(), key)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"monthly_token_cap":      info.MonthlyTokenCap,
		"month_start":            info.MonthStart.UTC().Format(time.RFC3339),
		"tokens_used_this_month": info.TokensUsedThisMonth,
		"tokens_remaining":       info.TokensRemaining,
		"quota_exceeded":         info.QuotaExceeded,
	})
}
