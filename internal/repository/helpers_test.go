package repository

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/leadexchange/leadmarket/internal/config"
	"github.com/leadexchange/leadmarket/internal/db"
	"github.com/leadexchange/leadmarket/internal/models"
)

// setupTestDB connects to the database named by DB_* and applies migrations.
// Tests are skipped when no database is reachable.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, &cfg.Database, (&config.LoggerConfig{Level: "error"}).NewLogger())
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}

	if err := db.MigrateUp(cfg.Database.URL()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return database
}

func cleanupTestDB(t *testing.T, database *db.DB) {
	t.Helper()
	if err := database.Close(); err != nil {
		log.Printf("failed to close test database: %v", err)
	}
}

func truncateTables(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), `
		TRUNCATE TABLE idempotency_keys, transactions, lead_purchases, leads, upload_batches, accounts CASCADE
	`)
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

func newTestAccount(t *testing.T, database *db.DB, balance string) *models.Account {
	t.Helper()

	account, err := NewAccountRepository(database).ResolveOrCreate(context.Background(),
		models.Identity{ExternalID: "tg_" + uuid.NewString()[:8]}, decimal.RequireFromString(balance))
	require.NoError(t, err, "failed to create account")
	return account
}

func newTestLead(t *testing.T, database *db.DB, owner *models.Account, phone string) *models.Lead {
	t.Helper()

	lead := &models.Lead{
		Phone:  phone,
		Status: models.LeadStatusInMarket,
	}
	if owner != nil {
		lead.OwnerID = &owner.ID
	}
	require.NoError(t, NewLeadRepository(database).Create(context.Background(), lead), "failed to create lead")
	return lead
}

func strPtr(s string) *string {
	return &s
}
