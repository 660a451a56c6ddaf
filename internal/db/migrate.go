package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// RosterTables lists the tables a roster database must provide.
var RosterTables = []string{"members", "member_projects", "tasks", "activity_groups", "activities"}

// Migrate creates the roster schema. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// CheckSchema verifies that every roster table exists. It never modifies the
// database.
func CheckSchema(db *sql.DB) error {
	var missing []string
	for _, table := range RosterTables {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err == sql.ErrNoRows {
			missing = append(missing, table)
			continue
		}
		if err != nil {
			return fmt.Errorf("inspecting schema: %w", err)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("not a roster database: missing tables %s", strings.Join(missing, ", "))
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS members (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		position     TEXT NOT NULL DEFAULT '',
		avatar       TEXT NOT NULL DEFAULT '',
		availability TEXT NOT NULL DEFAULT '',
		order_index  INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS member_projects (
		member_id   TEXT NOT NULL REFERENCES members(id) ON DELETE CASCADE,
		project     TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (member_id, project)
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		member_id   TEXT NOT NULL REFERENCES members(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		status      TEXT NOT NULL,
		due_date    TEXT NOT NULL,
		start_date  TEXT,
		project     TEXT NOT NULL DEFAULT '',
		start_week  INTEGER,
		duration    INTEGER,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS activity_groups (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id          TEXT PRIMARY KEY,
		group_id    TEXT NOT NULL REFERENCES activity_groups(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		start_week  INTEGER NOT NULL CHECK(start_week >= 0),
		duration    INTEGER NOT NULL CHECK(duration > 0),
		status      TEXT NOT NULL,
		assignee    TEXT NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_member_projects_member ON member_projects(member_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_member ON tasks(member_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_group ON activities(group_id)`,
}
