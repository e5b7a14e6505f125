// Package database provides the shared DB-backed test harness.
package database

import (
	"testing"

	"github.com/llmcouncil/councild/pkg/database"
	"github.com/llmcouncil/councild/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to the external PostgreSQL
// service container. In local dev: uses a shared testcontainer. Each test
// gets its own schema; cleanup is registered on the test.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
