package postgres

import (
	"database/sql"
	"fmt"

	"escrowship/internal/pkg/errs"

	"github.com/lib/pq"
)

// EnsureDatabase creates the application database when it does not exist
// yet. It connects to the server's maintenance database ("postgres") with
// database/sql and the pq driver, because GORM needs the target database
// to exist before it can open a connection pool against it.
func EnsureDatabase(host, port, user, password, dbName, sslMode string) error {
	if dbName == "" {
		return errs.NewValueIsRequiredError("dbName")
	}

	adminDSN := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		host, port, user, password, sslMode,
	)

	db, err := sql.Open("postgres", adminDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = db.Exec(fmt.Sprintf("CREATE DATABASE %s", pq.QuoteIdentifier(dbName)))
	return err
}

// DSN assembles the connection string for the application database.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode,
	)
}
