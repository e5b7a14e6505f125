package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/llmcouncil/councild/ent"
)

func TestHashKey(t *testing.T) {
	h1 := HashKey("pepper", "sk-key")
	h2 := HashKey("pepper", "sk-key")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)

	// Different pepper or key yields a different digest.
	assert.NotEqual(t, h1, HashKey("other", "sk-key"))
	assert.NotEqual(t, h1, HashKey("pepper", "sk-other"))
}

func TestAccountRoot(t *testing.T) {
	root := uuid.New()

	key := &ent.ApiKey{ID: uuid.New()}
	assert.Equal(t, key.ID, AccountRoot(key))

	key.AccountID = &root
	assert.Equal(t, root, AccountRoot(key))
}

func TestCheckRateLimit(t *testing.T) {
	s := NewAuthService(nil, nil, "pepper")
	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	key := &ent.ApiKey{ID: uuid.New(), RateLimitPerMin: 3}

	for i := 0; i < 3; i++ {
		assert.NoError(t, s.CheckRateLimit(key))
	}
	err := s.CheckRateLimit(key)
	assert.ErrorIs(t, err, ErrRateLimited)

	// Window resets on the next minute.
	s.now = func() time.Time { return base.Add(time.Minute) }
	assert.NoError(t, s.CheckRateLimit(key))

	// A zero limit disables the check.
	unlimited := &ent.ApiKey{ID: uuid.New(), RateLimitPerMin: 0}
	for i := 0; i < 100; i++ {
		assert.NoError(t, s.CheckRateLimit(unlimited))
	}
}

func TestMonthWindow(t *testing.T) {
	now := time.Date(2026, 8, 24, 15, 30, 0, 0, time.FixedZone("X", 3*3600))
	start, end := monthWindow(now)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), end)

	// December rolls over the year.
	start, end = monthWindow(time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestVisible(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	assert.True(t, visible(nil, nil))
	assert.False(t, visible(nil, []uuid.UUID{other}))
	assert.True(t, visible(&owner, []uuid.UUID{other, owner}))
	assert.False(t, visible(&owner, []uuid.UUID{other}))
	assert.False(t, visible(&owner, nil))
}
