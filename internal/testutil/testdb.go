package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/crewboard/internal/db"
	"github.com/alexanderramin/crewboard/internal/domain"
)

// NewTestDB creates an in-memory SQLite roster database with the schema
// applied. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// SeedRoster writes roster into database in one transaction. Slice order
// becomes order_index so reads come back in the same order.
func SeedRoster(t *testing.T, database *sql.DB, roster *domain.Roster) {
	t.Helper()
	ctx := context.Background()

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("beginning seed transaction: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := seed(ctx, tx, roster); err != nil {
		t.Fatalf("seeding roster: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("committing seed: %v", err)
	}
}

func seed(ctx context.Context, q db.DBTX, roster *domain.Roster) error {
	for i, m := range roster.Members {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO members (id, name, position, avatar, availability, order_index) VALUES (?, ?, ?, ?, ?, ?)`,
			m.ID, m.Name, m.Position, m.Avatar, m.Availability, i); err != nil {
			return err
		}
		for j, p := range m.Projects {
			if _, err := q.ExecContext(ctx,
				`INSERT INTO member_projects (member_id, project, order_index) VALUES (?, ?, ?)`,
				m.ID, p, j); err != nil {
				return err
			}
		}
		for j, task := range m.Tasks {
			if _, err := q.ExecContext(ctx,
				`INSERT INTO tasks (id, member_id, title, status, due_date, start_date, project, start_week, duration, order_index)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				task.ID, m.ID, task.Title, string(task.Status), task.DueDate, nullIfEmpty(task.StartDate),
				task.Project, nullableInt(task.StartWeek), nullableInt(task.Duration), j); err != nil {
				return err
			}
		}
	}
	for _, g := range roster.Groups {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO activity_groups (id, title, order_index) VALUES (?, ?, ?)`,
			g.ID, g.Title, g.OrderIndex); err != nil {
			return err
		}
		for j, a := range g.Activities {
			if _, err := q.ExecContext(ctx,
				`INSERT INTO activities (id, group_id, title, start_week, duration, status, assignee, order_index)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				a.ID, g.ID, a.Title, a.StartWeek, a.Duration, string(a.Status), a.Assignee, j); err != nil {
				return err
			}
		}
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
