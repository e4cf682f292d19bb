package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Link tables carry no foreign keys: deleting a workout, exercise or day
// leaves its link rows behind.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS exercise_detail (
		exercise_detail_id SERIAL PRIMARY KEY,
		description        TEXT,
		equipment_needed   VARCHAR(255),
		weight             DOUBLE PRECISION,
		intensity          VARCHAR(50),
		rating             INTEGER,
		sets               INTEGER,
		reps               INTEGER
	);`,
	`CREATE TABLE IF NOT EXISTS exercise (
		exercise_id        SERIAL PRIMARY KEY,
		name               VARCHAR(255) NOT NULL,
		description        TEXT,
		muscle_group       VARCHAR(100),
		intensity          VARCHAR(50),
		rating             INTEGER,
		exercise_detail_id INTEGER
	);`,
	`CREATE TABLE IF NOT EXISTS workout (
		workout_id  SERIAL PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		description TEXT,
		intensity   VARCHAR(50),
		focus       VARCHAR(100),
		rating      INTEGER DEFAULT 5
	);`,
	`CREATE TABLE IF NOT EXISTS exercise_in_workout (
		exercise_id INTEGER NOT NULL,
		workout_id  INTEGER NOT NULL,
		PRIMARY KEY (exercise_id, workout_id)
	);`,
	`CREATE TABLE IF NOT EXISTS day (
		day_id VARCHAR(64) PRIMARY KEY
	);`,
	`CREATE TABLE IF NOT EXISTS workout_on_day (
		workout_id INTEGER     NOT NULL,
		day_id     VARCHAR(64) NOT NULL,
		PRIMARY KEY (workout_id, day_id)
	);`,
}

// SchemaSQL returns the full schema as a single script.
func SchemaSQL() string {
	return strings.Join(schemaStatements, "\n")
}

// EnsureSchema creates the tables that do not exist yet, in one transaction.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if err := WithTx(ctx, pool, func(tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("exec [%.40s...]: %w", stmt, err)
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	log.Debugf("schema ensured (%d tables)", len(schemaStatements))
	return nil
}
