package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/llmcouncil/councild/ent"
	"github.com/llmcouncil/councild/ent/apikey"
)

// AuthService authenticates API keys and enforces per-key rate limits and
// per-account monthly token quotas. Keys are stored as peppered HMAC-SHA256
// hashes; the raw key never touches the database.
type AuthService struct {
	client *ent.Client
	usage  *UsageService
	pepper string

	// In-process fixed-window rate limiter, key id -> window counter.
	mu      sync.Mutex
	windows map[uuid.UUID]*rateWindow

	now func() time.Time
}

type rateWindow struct {
	minute time.Time
	count  int
}

// NewAuthService creates a new AuthService
func NewAuthService(client *ent.Client, usage *UsageService, pepper string) *AuthService {
	return &AuthService{
		client:  client,
		usage:   usage,
		pepper:  pepper,
		windows: map[uuid.UUID]*rateWindow{},
		now:     time.Now,
	}
}

// HashKey computes the peppered HMAC-SHA256 digest of a raw API key.
func HashKey(pepper, rawKey string) string {
	mac := hmac.New(sha256.New, []byte(pepper))
	mac.Write([]byte(rawKey))
	return hex.EncodeToString(mac.Sum(nil))
}

// Authenticate resolves a raw API key to its active ApiKey row.
func (s *AuthService) Authenticate(ctx context.Context, rawKey string) (*ent.ApiKey, error) {
	if rawKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrUnauthorized)
	}

	key, err := s.client.ApiKey.Query().
		Where(apikey.KeyHashEQ(HashKey(s.pepper, rawKey))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: unknown API key", ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up API key: %w", err)
	}
	if !key.IsActive {
		return nil, fmt.Errorf("%w: API key deactivated", ErrUnauthorized)
	}

	if _, err := s.client.ApiKey.UpdateOne(key).
		SetLastUsedAt(s.now()).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to touch API key: %w", err)
	}
	return key, nil
}

// CheckRateLimit counts one request against the key's fixed per-minute
// window and rejects when the window is full.
func (s *AuthService) CheckRateLimit(key *ent.ApiKey) error {
	limit := key.RateLimitPerMin
	if limit <= 0 {
		return nil
	}

	minute := s.now().Truncate(time.Minute)

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key.ID]
	if !ok || !w.minute.Equal(minute) {
		w = &rateWindow{minute: minute}
		s.windows[key.ID] = w
	}
	w.count++
	if w.count > limit {
		return fmt.Errorf("%w: %d requests this minute (limit %d)", ErrRateLimited, w.count, limit)
	}
	return nil
}

// AccountRoot returns the id that owns the key's account: its account_id
// when set, else the key itself.
func AccountRoot(key *ent.ApiKey) uuid.UUID {
	if key.AccountID != nil {
		return *key.AccountID
	}
	return key.ID
}

// AccountKeyIDs returns every key id in the key's account: the root plus
// all keys pointing at it.
func (s *AuthService) AccountKeyIDs(ctx context.Context, key *ent.ApiKey) ([]uuid.UUID, error) {
	root := AccountRoot(key)

	rows, err := s.client.ApiKey.Query().
		Where(apikey.Or(
			apikey.IDEQ(root),
			apikey.AccountIDEQ(root),
		)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load account keys: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(rows)+1)
	seen := map[uuid.UUID]bool{}
	for _, row := range rows {
		if !seen[row.ID] {
			seen[row.ID] = true
			ids = append(ids, row.ID)
		}
	}
	if !seen[key.ID] {
		ids = append(ids, key.ID)
	}
	return ids, nil
}

// CheckMonthlyQuota rejects the request when the key carries a monthly
// token cap and the account's usage this UTC month has reached it.
func (s *AuthService) CheckMonthlyQuota(ctx context.Context, key *ent.ApiKey) error {
	if key.MonthlyTokenCap == nil {
		return nil
	}

	keyIDs, err := s.AccountKeyIDs(ctx, key)
	if err != nil {
		return err
	}
	used, err := s.usage.MonthlyTokensUsed(ctx, keyIDs, s.now())
	if err != nil {
		return err
	}
	if used >= *key.MonthlyTokenCap {
		return fmt.Errorf("%w: %d tokens used of %d this month", ErrQuotaExceeded, used, *key.MonthlyTokenCap)
	}
	return nil
}
