//go:build integration

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"

	"github.com/Gunvolt24/cleanpos/migrations"
)

// ApplyMigrationsGoose — применяет встроенные миграции к базе по DSN.
func ApplyMigrationsGoose(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	applied, err := migrations.Up(ctx, db)
	if err != nil {
		return err
	}
	tcLogger.Printf("migrations applied: %v", applied)
	return nil
}
