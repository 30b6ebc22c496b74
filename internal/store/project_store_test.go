package store

import (
	"testing"
	"time"

	"github.com/ideahub-dev/ideahub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, gdb *gorm.DB, externalID string) {
	t.Helper()

	_, err := NewUserStore(gdb).Create(externalID, externalID, "pw")
	require.NoError(t, err)
}

func TestCreateProjectRoundTrip(t *testing.T) {
	gdb := newTestDB(t)
	seedUser(t, gdb, "alice")
	projects := NewProjectStore(gdb)

	due := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	project, err := projects.Create("alice", "website",
		[]TodoItemParams{
			{Title: "write copy", Description: "landing page", DueDate: &due},
			{Title: "deploy"},
		},
		[]ElementParams{
			{Data: "hello world", Type: "text"},
			{Data: "aGVhZGVyLnBuZw==", Type: "image"},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, "website", project.Name)
	require.Len(t, project.Owners, 1)

	require.Len(t, project.Todos, 2)
	for _, todo := range project.Todos {
		assert.Equal(t, project.ID, todo.ProjectID)
		assert.False(t, todo.Completed, "completed must default to false on write")
	}

	require.Len(t, project.Elements, 2)
	for i, element := range project.Elements {
		assert.Equal(t, project.ID, element.ProjectID)
		assert.Equal(t, i, element.Position, "position follows input order when unset")
	}
}

func TestCreateProjectExplicitPositions(t *testing.T) {
	gdb := newTestDB(t)
	seedUser(t, gdb, "alice")
	projects := NewProjectStore(gdb)

	five, zero := 5, 0

	project, err := projects.Create("alice", "website", nil, []ElementParams{
		{Data: "last", Type: "text", Position: &five},
		{Data: "first", Type: "text", Position: &zero},
	})
	require.NoError(t, err)

	// Elements come back ordered by position.
	require.Len(t, project.Elements, 2)
	assert.Equal(t, "first", project.Elements[0].Data)
	assert.Equal(t, "last", project.Elements[1].Data)
}

func TestCreateProjectOwnerNotFound(t *testing.T) {
	gdb := newTestDB(t)
	projects := NewProjectStore(gdb)

	_, err := projects.Create("ghost", "website", []TodoItemParams{{Title: "x"}}, nil)
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	var count int64
	require.NoError(t, gdb.Model(&models.Project{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "failed create must leave no project behind")
}

func TestCreateProjectDuplicateNamePerOwner(t *testing.T) {
	gdb := newTestDB(t)
	seedUser(t, gdb, "alice")
	seedUser(t, gdb, "bob")
	projects := NewProjectStore(gdb)

	_, err := projects.Create("alice", "website", nil, nil)
	require.NoError(t, err)

	_, err = projects.Create("alice", "website", nil, nil)
	assert.ErrorIs(t, err, ErrDuplicateProjectName)

	// Name uniqueness is per owner, not global.
	_, err = projects.Create("bob", "website", nil, nil)
	assert.NoError(t, err)
}

func TestGetProjectNotFound(t *testing.T) {
	projects := NewProjectStore(newTestDB(t))

	_, err := projects.GetByID(12345)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestListByOwnerEmpty(t *testing.T) {
	gdb := newTestDB(t)
	seedUser(t, gdb, "alice")
	projects := NewProjectStore(gdb)

	list, err := projects.ListByOwner("alice")
	require.NoError(t, err, "a user with zero projects is not an error")
	assert.Empty(t, list)
}

func TestListByOwnerUnknownUser(t *testing.T) {
	projects := NewProjectStore(newTestDB(t))

	_, err := projects.ListByOwner("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByOwnerOnlyOwnProjects(t *testing.T) {
	gdb := newTestDB(t)
	seedUser(t, gdb, "alice")
	seedUser(t, gdb, "bob")
	projects := NewProjectStore(gdb)

	_, err := projects.Create("alice", "website", nil, nil)
	require.NoError(t, err)
	_, err = projects.Create("bob", "robots", nil, nil)
	require.NoError(t, err)

	list, err := projects.ListByOwner("alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "website", list[0].Name)
}

func TestGetByOwnerAndName(t *testing.T) {
	gdb := newTestDB(t)
	seedUser(t, gdb, "alice")
	projects := NewProjectStore(gdb)

	created, err := projects.Create("alice", "website", nil, nil)
	require.NoError(t, err)

	found, err := projects.GetByOwnerAndName("alice", "website")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = projects.GetByOwnerAndName("alice", "robots")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateReplacesTodosWholesale(t *testing.T) {
	gdb := newTestDB(t)
	seedUser(t, gdb, "alice")
	projects := NewProjectStore(gdb)

	created, err := projects.Create("alice", "website",
		[]TodoItemParams{{Title: "old-1"}, {Title: "old-2"}},
		[]ElementParams{{Data: "keep me", Type: "text"}},
	)
	require.NoError(t, err)

	replacement := []TodoItemParams{{Title: "new-1"}, {Title: "new-2"}, {Title: "new-3"}}

	updated, err := projects.Update(created.ID, &replacement, nil)
	require.NoError(t, err)

	require.Len(t, updated.Todos, 3)
	for _, todo := range updated.Todos {
		assert.Contains(t, []string{"new-1", "new-2", "new-3"}, todo.Title)
	}

	// Elements were omitted from the update and stay untouched.
	require.Len(t, updated.Elements, 1)
	assert.Equal(t, "keep me", updated.Elements[0].Data)

	// Prior rows are gone, not soft-hidden.
	var count int64
	err = gdb.Unscoped().Model(&models.TodoItem{}).Where("project_id = ?", created.ID).Count(&count).Error
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestUpdateReplacesElementsWithEmptyList(t *testing.T) {
	gdb := newTestDB(t)
	seedUser(t, gdb, "alice")
	projects := NewProjectStore(gdb)

	created, err := projects.Create("alice", "website", nil, []ElementParams{{Data: "x", Type: "text"}})
	require.NoError(t, err)

	empty := []ElementParams{}

	updated, err := projects.Update(created.ID, nil, &empty)
	require.NoError(t, err)
	assert.Empty(t, updated.Elements)
}

func TestUpdateProjectNotFound(t *testing.T) {
	projects := NewProjectStore(newTestDB(t))

	todos := []TodoItemParams{{Title: "x"}}

	_, err := projects.Update(12345, &todos, nil)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestAddOwner(t *testing.T) {
	gdb := newTestDB(t)
	seedUser(t, gdb, "alice")
	seedUser(t, gdb, "bob")
	projects := NewProjectStore(gdb)

	created, err := projects.Create("alice", "website", nil, nil)
	require.NoError(t, err)

	updated, err := projects.AddOwner(created.ID, "bob")
	require.NoError(t, err)
	assert.Len(t, updated.Owners, 2)
}

func TestAddOwnerIdempotent(t *testing.T) {
	gdb := newTestDB(t)
	seedUser(t, gdb, "alice")
	seedUser(t, gdb, "bob")
	projects := NewProjectStore(gdb)

	created, err := projects.Create("alice", "website", nil, nil)
	require.NoError(t, err)

	_, err = projects.AddOwner(created.ID, "bob")
	require.NoError(t, err)

	updated, err := projects.AddOwner(created.ID, "bob")
	require.NoError(t, err)
	assert.Len(t, updated.Owners, 2)

	var count int64
	err = gdb.Model(&models.Ownership{}).Where("project_id = ?", created.ID).Count(&count).Error
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestAddOwnerMissingProjectOrUser(t *testing.T) {
	gdb := newTestDB(t)
	seedUser(t, gdb, "alice")
	projects := NewProjectStore(gdb)

	created, err := projects.Create("alice", "website", nil, nil)
	require.NoError(t, err)

	_, err = projects.AddOwner(12345, "alice")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = projects.AddOwner(created.ID, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
