package testutil

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type TestDB struct {
	DB      *sql.DB
	Cleanup func() error
}

// SetupTestDB creates a throwaway database on the server pointed at by
// TEST_DB_DSN so each test run starts from a clean slate.
func SetupTestDB() (*TestDB, error) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("TEST_DB_DSN env-var not set")
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN %q: %w", dsn, err)
	}

	adminDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open admin DB: %w", err)
	}

	dbName := fmt.Sprintf("testdb_%d", time.Now().UnixNano())
	if _, err := adminDB.Exec("CREATE DATABASE " + dbName); err != nil {
		adminDB.Close()
		return nil, err
	}

	u.Path = "/" + dbName
	testDSN := u.String()
	db, err := sql.Open("pgx", testDSN)
	if err != nil {
		adminDB.Exec("DROP DATABASE " + dbName)
		adminDB.Close()
		return nil, fmt.Errorf("open test DB %q: %w", testDSN, err)
	}

	cleanup := func() error {
		err := db.Close()
		if err != nil {
			return err
		}

		if _, err := adminDB.Exec("DROP DATABASE " + dbName); err != nil {
			adminDB.Close()
			return fmt.Errorf("drop database %q: %w", dbName, err)
		}

		return adminDB.Close()
	}

	return &TestDB{DB: db, Cleanup: cleanup}, nil
}
