package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/crewboard/internal/domain"
	"github.com/alexanderramin/crewboard/internal/testutil"
)

func sampleRoster() *domain.Roster {
	sarah := testutil.NewTestMember("Sarah Johnson",
		testutil.WithMemberID("m1"),
		testutil.WithAvailability("Available today"),
		testutil.WithProjects("Mobile App Redesign", "Client Portal"),
		testutil.WithTasks(
			testutil.NewTestTask("Sprint Planning", "2024-01-15", testutil.WithTaskID("t1"), testutil.WithStatus(domain.TaskInProgress)),
			testutil.NewTestTask("Review Mockups", "2024-01-16", testutil.WithTaskID("t2"), testutil.WithStartDate("2024-01-10")),
			testutil.NewTestTask("Kickoff", "2024-01-12", testutil.WithTaskID("t3"), testutil.WithIndexExtent(1, 2)),
		),
	)
	mike := testutil.NewTestMember("Mike Chen", testutil.WithMemberID("m2"))

	backend := testutil.NewTestGroup("Backend Development", 1,
		testutil.NewTestActivity("API Design", 2, 2, domain.TaskCompleted),
	)
	design := testutil.NewTestGroup("UI/UX Design", 0,
		testutil.NewTestActivity("User Research", 0, 2, domain.TaskCompleted),
		testutil.NewTestActivity("Wireframing", 1, 3, domain.TaskInProgress),
	)

	return &domain.Roster{
		Members: []*domain.Member{sarah, mike},
		Groups:  []*domain.ActivityGroup{backend, design},
	}
}

// rosterRepos returns each implementation loaded with the same roster.
func rosterRepos(t *testing.T, roster *domain.Roster) map[string]RosterRepo {
	t.Helper()
	database := testutil.NewTestDB(t)
	testutil.SeedRoster(t, database, roster)

	return map[string]RosterRepo{
		"memory": NewMemoryRosterRepo(roster),
		"sqlite": NewSQLiteRosterRepo(database),
	}
}

func TestRosterRepo_ListMembers(t *testing.T) {
	for name, repo := range rosterRepos(t, sampleRoster()) {
		t.Run(name, func(t *testing.T) {
			members, err := repo.ListMembers(context.Background())
			require.NoError(t, err)
			require.Len(t, members, 2)

			sarah := members[0]
			assert.Equal(t, "Sarah Johnson", sarah.Name)
			assert.Equal(t, []string{"Mobile App Redesign", "Client Portal"}, sarah.Projects)
			require.Len(t, sarah.Tasks, 3)
			assert.Equal(t, []string{"t1", "t2", "t3"}, []string{sarah.Tasks[0].ID, sarah.Tasks[1].ID, sarah.Tasks[2].ID})
			assert.Equal(t, domain.TaskInProgress, sarah.Tasks[0].Status)
			assert.Equal(t, "m1", sarah.Tasks[0].MemberID)
			assert.Equal(t, "", sarah.Tasks[0].StartDate)
			assert.Equal(t, "2024-01-10", sarah.Tasks[1].StartDate)
			assert.False(t, sarah.Tasks[0].HasIndexExtent())
			require.True(t, sarah.Tasks[2].HasIndexExtent())
			assert.Equal(t, 1, *sarah.Tasks[2].StartWeek)
			assert.Equal(t, 2, *sarah.Tasks[2].Duration)

			assert.Empty(t, members[1].Tasks)
		})
	}
}

func TestRosterRepo_ListActivityGroupsOrdered(t *testing.T) {
	for name, repo := range rosterRepos(t, sampleRoster()) {
		t.Run(name, func(t *testing.T) {
			groups, err := repo.ListActivityGroups(context.Background())
			require.NoError(t, err)
			require.Len(t, groups, 2)

			assert.Equal(t, "UI/UX Design", groups[0].Title)
			assert.Equal(t, "Backend Development", groups[1].Title)
			require.Len(t, groups[0].Activities, 2)
			assert.Equal(t, "Wireframing", groups[0].Activities[1].Title)
			assert.Equal(t, 3, groups[0].Activities[1].Duration)
			assert.Equal(t, groups[0].ID, groups[0].Activities[1].GroupID)
		})
	}
}

func TestRosterRepo_Snapshot(t *testing.T) {
	for name, repo := range rosterRepos(t, sampleRoster()) {
		t.Run(name, func(t *testing.T) {
			roster, err := repo.Snapshot(context.Background())
			require.NoError(t, err)
			assert.Len(t, roster.Members, 2)
			assert.Len(t, roster.Groups, 2)
			assert.Equal(t, 3, roster.TaskCount())
		})
	}
}

func TestRosterRepo_EmptySource(t *testing.T) {
	for name, repo := range rosterRepos(t, &domain.Roster{}) {
		t.Run(name, func(t *testing.T) {
			roster, err := repo.Snapshot(context.Background())
			require.NoError(t, err)
			assert.Empty(t, roster.Members)
			assert.Empty(t, roster.Groups)
		})
	}
}

func TestMemoryRosterRepo_ReturnsCopies(t *testing.T) {
	source := sampleRoster()
	repo := NewMemoryRosterRepo(source)

	members, err := repo.ListMembers(context.Background())
	require.NoError(t, err)
	members[0].Name = "Changed"
	members[0].Tasks[0].Title = "Changed"
	*members[0].Tasks[2].StartWeek = 9

	assert.Equal(t, "Sarah Johnson", source.Members[0].Name)
	assert.Equal(t, "Sprint Planning", source.Members[0].Tasks[0].Title)
	assert.Equal(t, 1, *source.Members[0].Tasks[2].StartWeek)
}

func TestMemoryRosterRepo_Replace(t *testing.T) {
	repo := NewMemoryRosterRepo(nil)
	members, err := repo.ListMembers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, members)

	repo.Replace(sampleRoster())
	members, err = repo.ListMembers(context.Background())
	require.NoError(t, err)
	assert.Len(t, members, 2)
}
