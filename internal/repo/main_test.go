package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/yalrayes/rihla/migrations"
	"github.com/yalrayes/rihla/testutil"
)

// TestMain applies all pending migrations to the test database before any
// test in this package runs, so individual tests never think about schema
// state. When TEST_DATABASE_URL is unset every test skips itself instead.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	// goose wants a plain *sql.DB, not a pgx pool
	db := testutil.MustOpenSQLDB(dsn)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("TestMain: create goose provider: %v", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}
