package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/crewboard/internal/db"
	"github.com/alexanderramin/crewboard/internal/domain"
)

// SQLiteRosterRepo implements RosterRepo over a roster database. It only
// ever issues SELECT statements.
type SQLiteRosterRepo struct {
	db       *sql.DB
	snapshot db.SnapshotReader
}

// NewSQLiteRosterRepo creates a new SQLiteRosterRepo.
func NewSQLiteRosterRepo(database *sql.DB) *SQLiteRosterRepo {
	return &SQLiteRosterRepo{db: database, snapshot: db.NewSnapshot(database)}
}

func (r *SQLiteRosterRepo) ListMembers(ctx context.Context) ([]*domain.Member, error) {
	return listMembers(ctx, r.db)
}

func (r *SQLiteRosterRepo) ListActivityGroups(ctx context.Context) ([]*domain.ActivityGroup, error) {
	return listActivityGroups(ctx, r.db)
}

func (r *SQLiteRosterRepo) Snapshot(ctx context.Context) (*domain.Roster, error) {
	roster := &domain.Roster{}
	err := r.snapshot.Read(ctx, func(ctx context.Context, q db.DBTX) error {
		var err error
		if roster.Members, err = listMembers(ctx, q); err != nil {
			return err
		}
		roster.Groups, err = listActivityGroups(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}
	return roster, nil
}

func listMembers(ctx context.Context, q db.DBTX) ([]*domain.Member, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, name, position, avatar, availability
		FROM members ORDER BY order_index, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()

	var members []*domain.Member
	byID := make(map[string]*domain.Member)
	for rows.Next() {
		m := &domain.Member{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Position, &m.Avatar, &m.Availability); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}
		members = append(members, m)
		byID[m.ID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating members: %w", err)
	}

	if err := attachProjects(ctx, q, byID); err != nil {
		return nil, err
	}
	if err := attachTasks(ctx, q, byID); err != nil {
		return nil, err
	}
	return members, nil
}

func attachProjects(ctx context.Context, q db.DBTX, byID map[string]*domain.Member) error {
	rows, err := q.QueryContext(ctx, `SELECT member_id, project
		FROM member_projects ORDER BY member_id, order_index, rowid`)
	if err != nil {
		return fmt.Errorf("listing member projects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var memberID, project string
		if err := rows.Scan(&memberID, &project); err != nil {
			return fmt.Errorf("scanning member project: %w", err)
		}
		if m, ok := byID[memberID]; ok {
			m.Projects = append(m.Projects, project)
		}
	}
	return rows.Err()
}

func attachTasks(ctx context.Context, q db.DBTX, byID map[string]*domain.Member) error {
	rows, err := q.QueryContext(ctx, `SELECT id, member_id, title, status, due_date, start_date, project, start_week, duration
		FROM tasks ORDER BY order_index, rowid`)
	if err != nil {
		return fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t         domain.Task
			status    string
			startDate sql.NullString
			startWeek sql.NullInt64
			duration  sql.NullInt64
		)
		if err := rows.Scan(&t.ID, &t.MemberID, &t.Title, &status, &t.DueDate,
			&startDate, &t.Project, &startWeek, &duration); err != nil {
			return fmt.Errorf("scanning task: %w", err)
		}
		t.Status = domain.ParseTaskStatus(status)
		t.StartDate = stringFromNull(startDate)
		t.StartWeek = intFromNull(startWeek)
		t.Duration = intFromNull(duration)

		if m, ok := byID[t.MemberID]; ok {
			m.Tasks = append(m.Tasks, t)
		}
	}
	return rows.Err()
}

func listActivityGroups(ctx context.Context, q db.DBTX) ([]*domain.ActivityGroup, error) {
	rows, err := q.QueryContext(ctx, `SELECT id, title, order_index
		FROM activity_groups ORDER BY order_index, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing activity groups: %w", err)
	}
	defer rows.Close()

	var groups []*domain.ActivityGroup
	byID := make(map[string]*domain.ActivityGroup)
	for rows.Next() {
		g := &domain.ActivityGroup{}
		if err := rows.Scan(&g.ID, &g.Title, &g.OrderIndex); err != nil {
			return nil, fmt.Errorf("scanning activity group: %w", err)
		}
		groups = append(groups, g)
		byID[g.ID] = g
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity groups: %w", err)
	}
	rows.Close()

	actRows, err := q.QueryContext(ctx, `SELECT id, group_id, title, start_week, duration, status, assignee
		FROM activities ORDER BY order_index, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer actRows.Close()

	for actRows.Next() {
		var (
			a      domain.Activity
			status string
		)
		if err := actRows.Scan(&a.ID, &a.GroupID, &a.Title, &a.StartWeek, &a.Duration, &status, &a.Assignee); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		a.Status = domain.ParseTaskStatus(status)
		if g, ok := byID[a.GroupID]; ok {
			g.Activities = append(g.Activities, a)
		}
	}
	if err := actRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return groups, nil
}
