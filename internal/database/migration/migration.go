package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id               UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name             TEXT        NOT NULL,
  email            TEXT        NOT NULL UNIQUE,
  sex              TEXT        NOT NULL,
  age              INT         NOT NULL CHECK (age > 0),
  height_cm        DOUBLE PRECISION NOT NULL CHECK (height_cm > 0),
  weight_kg        DOUBLE PRECISION NOT NULL CHECK (weight_kg > 0),
  activity_level   TEXT        NOT NULL,
  goal             TEXT        NOT NULL,
  calories         INT         NOT NULL,
  protein_g        INT         NOT NULL,
  carbs_g          INT         NOT NULL,
  fat_g            INT         NOT NULL,
  sleep_target_min INT         NOT NULL,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_chat_threads",
		SQL: `CREATE TABLE IF NOT EXISTS chat_threads (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id    UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  title      TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_chat_messages",
		SQL: `CREATE TABLE IF NOT EXISTS chat_messages (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  thread_id  UUID        NOT NULL REFERENCES chat_threads (id) ON DELETE CASCADE,
  seq        BIGINT      NOT NULL,
  role       TEXT        NOT NULL,
  content    TEXT        NOT NULL,
  category   TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (thread_id, seq)
);`,
	},
	{
		Name: "create_table_meals",
		SQL: `CREATE TABLE IF NOT EXISTS meals (
  id        UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id   UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  name      TEXT        NOT NULL,
  type      TEXT        NOT NULL,
  calories  INT         NOT NULL CHECK (calories >= 0),
  protein_g DOUBLE PRECISION NOT NULL CHECK (protein_g >= 0),
  carbs_g   DOUBLE PRECISION NOT NULL CHECK (carbs_g >= 0),
  fat_g     DOUBLE PRECISION NOT NULL CHECK (fat_g >= 0),
  eaten_at  TIMESTAMPTZ NOT NULL
);`,
	},
	{
		Name: "create_table_sleep_sessions",
		SQL: `CREATE TABLE IF NOT EXISTS sleep_sessions (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id      UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  bed_time     TIMESTAMPTZ NOT NULL,
  wake_time    TIMESTAMPTZ NOT NULL,
  quality      INT         NOT NULL CHECK (quality BETWEEN 1 AND 5),
  awakenings   INT         NOT NULL CHECK (awakenings >= 0),
  duration_min INT         NOT NULL CHECK (duration_min >= 0),
  efficiency   DOUBLE PRECISION NOT NULL CHECK (efficiency BETWEEN 0 AND 1)
);`,
	},
	{
		Name: "create_table_workouts",
		SQL: `CREATE TABLE IF NOT EXISTS workouts (
  id              UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id         UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  name            TEXT        NOT NULL,
  category        TEXT        NOT NULL,
  duration_min    INT         NOT NULL CHECK (duration_min > 0),
  calories_burned INT         NOT NULL CHECK (calories_burned >= 0),
  performed_at    TIMESTAMPTZ NOT NULL
);`,
	},
	{
		Name: "create_table_progress_photos",
		SQL: `CREATE TABLE IF NOT EXISTS progress_photos (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id      UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  storage_path TEXT        NOT NULL UNIQUE,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  content_type TEXT        NOT NULL,
  note         TEXT        NOT NULL DEFAULT '',
  taken_at     TIMESTAMPTZ NOT NULL,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_chat_messages_thread_seq",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_chat_messages_thread_seq ON chat_messages (thread_id, seq);`,
	},
	{
		Name: "create_index_meals_user_eaten_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_meals_user_eaten_at ON meals (user_id, eaten_at);`,
	},
	{
		Name: "create_index_sleep_sessions_user_bed_time",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_sleep_sessions_user_bed_time ON sleep_sessions (user_id, bed_time);`,
	},
	{
		Name: "create_index_workouts_user_performed_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_workouts_user_performed_at ON workouts (user_id, performed_at);`,
	},
}

// EnsureMigrated checks if the 'users' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.users') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
