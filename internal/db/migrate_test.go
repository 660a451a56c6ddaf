package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range RosterTables {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
	assert.NoError(t, CheckSchema(db))
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_member_projects_member", "idx_tasks_member", "idx_activities_group"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ActivityConstraints(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO activity_groups (id, title) VALUES ('g1', 'Backend')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO activities (id, group_id, title, start_week, duration, status)
		VALUES ('a1', 'g1', 'API Design', 0, 0, 'planning')`)
	assert.Error(t, err, "zero duration violates CHECK")

	_, err = db.Exec(`INSERT INTO activities (id, group_id, title, start_week, duration, status)
		VALUES ('a2', 'missing', 'Orphan', 0, 1, 'planning')`)
	assert.Error(t, err, "unknown group violates foreign key")
}

func TestOpenDB_MissingFile(t *testing.T) {
	_, err := OpenDB(filepath.Join(t.TempDir(), "nope.db"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenDB_RejectsForeignDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.db")
	raw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = raw.Exec(`CREATE TABLE notes (id TEXT PRIMARY KEY)`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	_, err = OpenDB(path)
	assert.ErrorContains(t, err, "missing tables members")
}

func TestOpenDB_FileIsReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.db")
	raw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, Migrate(raw))
	_, err = raw.Exec(`INSERT INTO members (id, name) VALUES ('m1', 'Emma Wilson')`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	db, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM members`).Scan(&name))
	assert.Equal(t, "Emma Wilson", name)

	_, err = db.Exec(`INSERT INTO members (id, name) VALUES ('m2', 'Mike Chen')`)
	assert.Error(t, err)
}
