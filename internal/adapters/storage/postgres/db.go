package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	ErrNotFound = errors.New("not found")
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para un servicio de consulta (catálogo chico)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate crea el esquema del catálogo si no existe. Catálogo chico de
// referencia: sin versionado de migraciones, solo IF NOT EXISTS.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS categories (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			color      TEXT NOT NULL DEFAULT '',
			position   INT  NOT NULL
		);

		CREATE TABLE IF NOT EXISTS drugs (
			id                   TEXT PRIMARY KEY,
			group_name           TEXT NOT NULL,
			name                 TEXT NOT NULL,
			variant_label        TEXT NOT NULL DEFAULT '',
			category_id          TEXT NOT NULL REFERENCES categories(id),
			presentation         TEXT NOT NULL DEFAULT '',
			dilution             TEXT NOT NULL DEFAULT '',
			concentration_label  TEXT NOT NULL DEFAULT '',
			dose_label           TEXT NOT NULL DEFAULT '',
			notes                TEXT NOT NULL DEFAULT '',
			kind                 TEXT NOT NULL,
			concentration_value  DOUBLE PRECISION NOT NULL,
			concentration_unit   TEXT NOT NULL,
			dose_unit            TEXT NOT NULL,
			weight_based         BOOLEAN NOT NULL,
			position             INT NOT NULL
		);
	`)
	return err
}
