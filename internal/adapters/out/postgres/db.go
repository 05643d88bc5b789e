// Package postgres provides connection helpers shared by the PostgreSQL
// adapters.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"support/internal/pkg/errs"

	_ "github.com/lib/pq" // database/sql driver for the readiness probe
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const pingInterval = time.Second

// WaitForDatabase blocks until the database answers a ping or the context
// expires. Used at startup so the service does not race a container that is
// still initializing.
func WaitForDatabase(ctx context.Context, dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return errs.NewInfrastructureError("postgres", err)
	}
	defer db.Close()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return errs.NewInfrastructureError("postgres", err)
		case <-ticker.C:
		}
	}
}

// Connect opens a GORM connection to the database.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errs.NewInfrastructureError("postgres", err)
	}
	return db, nil
}
