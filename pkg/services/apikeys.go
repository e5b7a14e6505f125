package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/llmcouncil/councild/ent"
	"github.com/llmcouncil/councild/ent/apikey"
)

// keyGenAttempts bounds retries on the astronomically unlikely hash
// collision before giving up.
const keyGenAttempts = 3

// GenerateKey returns a fresh plaintext API key. The lc_ prefix makes keys
// recognizable in logs without revealing the secret part.
func GenerateKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate API key: %w", err)
	}
	return "lc_" + base64.RawURLEncoding.EncodeToString(buf), nil
}

// CreateKey mints a new key under the given account root and returns the
// row together with the plaintext, which is shown exactly once.
func (s *AuthService) CreateKey(ctx context.Context, root uuid.UUID, name string, rateLimitPerMin *int, monthlyTokenCap *int) (*ent.ApiKey, string, error) {
	if name == "" {
		name = "default"
	}
	rate := 60
	if rateLimitPerMin != nil {
		rate = *rateLimitPerMin
	}

	for i := 0; i < keyGenAttempts; i++ {
		plaintext, err := GenerateKey()
		if err != nil {
			return nil, "", err
		}

		builder := s.client.ApiKey.Create().
			SetKeyHash(HashKey(s.pepper, plaintext)).
			SetAccountID(root).
			SetName(name).
			SetIsActive(true).
			SetRateLimitPerMin(rate)
		if monthlyTokenCap != nil {
			builder.SetMonthlyTokenCap(*monthlyTokenCap)
		}

		key, err := builder.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			return nil, "", fmt.Errorf("failed to create API key: %w", err)
		}
		return key, plaintext, nil
	}
	return nil, "", fmt.Errorf("failed to create API key: hash collision persisted after %d attempts", keyGenAttempts)
}

// ListKeys returns every key in the account, newest first.
func (s *AuthService) ListKeys(ctx context.Context, root uuid.UUID) ([]*ent.ApiKey, error) {
	rows, err := s.client.ApiKey.Query().
		Where(apikey.Or(
			apikey.IDEQ(root),
			apikey.AccountIDEQ(root),
		)).
		Order(ent.Desc(apikey.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list API keys: %w", err)
	}
	return rows, nil
}

// DeactivateKey deactivates a key in the caller's account. Keys outside the
// account come back ErrNotFound; existence is not revealed across accounts.
func (s *AuthService) DeactivateKey(ctx context.Context, root, keyID uuid.UUID) (*ent.ApiKey, error) {
	target, err := s.accountKey(ctx, root, keyID)
	if err != nil {
		return nil, err
	}

	updated, err := s.client.ApiKey.UpdateOne(target).
		SetIsActive(false).
		SetDeactivatedAt(s.now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate API key: %w", err)
	}
	return updated, nil
}

// RotateKey deactivates the old key and mints a replacement carrying the
// same name, rate limit, and cap.
func (s *AuthService) RotateKey(ctx context.Context, root, keyID uuid.UUID) (oldKey, newKey *ent.ApiKey, plaintext string, err error) {
	oldKey, err = s.accountKey(ctx, root, keyID)
	if err != nil {
		return nil, nil, "", err
	}

	rate := oldKey.RateLimitPerMin
	newKey, plaintext, err = s.CreateKey(ctx, root, oldKey.Name, &rate, oldKey.MonthlyTokenCap)
	if err != nil {
		return nil, nil, "", err
	}

	oldKey, err = s.client.ApiKey.UpdateOne(oldKey).
		SetIsActive(false).
		SetDeactivatedAt(s.now()).
		Save(ctx)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to deactivate rotated key: %w", err)
	}
	return oldKey, newKey, plaintext, nil
}

// accountKey loads a key only when it belongs to the given account root.
func (s *AuthService) accountKey(ctx context.Context, root, keyID uuid.UUID) (*ent.ApiKey, error) {
	row, err := s.client.ApiKey.Get(ctx, keyID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: api key %s", ErrNotFound, keyID)
		}
		return nil, fmt.Errorf("failed to load API key: %w", err)
	}
	if row.ID != root && (row.AccountID == nil || *row.AccountID != root) {
		return nil, fmt.Errorf("%w: api key %s", ErrNotFound, keyID)
	}
	return row, nil
}

// LimitsInfo reports the caller's monthly quota position.
type LimitsInfo struct {
	MonthlyTokenCap     *int      `json:"monthly_token_cap"`
	MonthStart          time.Time `json:"month_start"`
	TokensUsedThisMonth int       `json:"tokens_used_this_month"`
	TokensRemaining     *int      `json:"tokens_remaining"`
	QuotaExceeded       bool      `json:"quota_exceeded"`
}

// Limits computes the quota view for one key's account.
func (s *AuthService) Limits(ctx context.Context, key *ent.ApiKey) (LimitsInfo, error) {
	keyIDs, err := s.AccountKeyIDs(ctx, key)
	if err != nil {
		return LimitsInfo{}, err
	}
	now := s.now()
	used, err := s.usage.MonthlyTokensUsed(ctx, keyIDs, now)
	if err != nil {
		return LimitsInfo{}, err
	}

	start, _ := monthWindow(now)
	info := LimitsInfo{
		MonthlyTokenCap:     key.MonthlyTokenCap,
		MonthStart:          start,
		TokensUsedThisMonth: used,
	}
	if tokenCap := key.MonthlyTokenCap; tokenCap != nil && *tokenCap > 0 {
		remaining := *tokenCap - used
		if remaining < 0 {
			remaining = 0
		}
		info.TokensRemaining = &remaining
		info.QuotaExceeded = used >= *tokenCap
	}
	return info, nil
}
