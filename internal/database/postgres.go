package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"healthsync-backend/internal/config"
)

// Connect builds a pgx pool from config and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	// Simple protocol keeps the pool usable behind PgBouncer.
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "healthsync-backend"
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return pool, nil
}

// EnsureSchema creates the patient tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS patient_details (
			patient_id    TEXT PRIMARY KEY,
			full_name     TEXT NOT NULL,
			gender        TEXT,
			date_of_birth DATE NOT NULL,
			blood_group   TEXT,
			phone_number  TEXT,
			email         TEXT,
			address       TEXT,
			city          TEXT,
			state         TEXT,
			country       TEXT NOT NULL DEFAULT 'India',
			height_cm     DOUBLE PRECISION,
			weight_kg     DOUBLE PRECISION
		)`,
		`CREATE TABLE IF NOT EXISTS patient_vitals (
			vital_id           BIGSERIAL PRIMARY KEY,
			patient_id         TEXT NOT NULL REFERENCES patient_details(patient_id),
			recorded_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
			heart_rate_bpm     DOUBLE PRECISION,
			systolic_bp_mmhg   DOUBLE PRECISION,
			diastolic_bp_mmhg  DOUBLE PRECISION,
			body_temperature_c DOUBLE PRECISION,
			respiratory_rate   DOUBLE PRECISION,
			oxygen_saturation  DOUBLE PRECISION,
			notes              TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
