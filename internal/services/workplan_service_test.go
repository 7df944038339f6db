package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fwfps/internal/models"
	"fwfps/internal/repository"
)

func newWorkplanService(t *testing.T) (*WorkplanService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Workplan{}, &models.WorkplanTask{}))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.Close()
	})

	return NewWorkplanService(repository.NewWorkplanRepository(db)), db
}

func TestCreateWorkplan_TitleRequired(t *testing.T) {
	service, _ := newWorkplanService(t)

	_, err := service.CreateWorkplan(CreateWorkplanInput{Description: "no title"})
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestCreateWorkplan_ProgressBounds(t *testing.T) {
	service, _ := newWorkplanService(t)

	_, err := service.CreateWorkplan(CreateWorkplanInput{Title: "low", Progress: -1})
	assert.ErrorIs(t, err, ErrProgressOutOfRange)

	_, err = service.CreateWorkplan(CreateWorkplanInput{Title: "high", Progress: 101})
	assert.ErrorIs(t, err, ErrProgressOutOfRange)

	wp, err := service.CreateWorkplan(CreateWorkplanInput{Title: "edge", Progress: 100})
	require.NoError(t, err)
	assert.Equal(t, 100, wp.Progress)

	wp, err = service.CreateWorkplan(CreateWorkplanInput{Title: "zero", Progress: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, wp.Progress)
}

func TestUpdateWorkplan_RejectionLeavesRecordUntouched(t *testing.T) {
	service, _ := newWorkplanService(t)

	wp, err := service.CreateWorkplan(CreateWorkplanInput{Title: "halfway", Progress: 50})
	require.NoError(t, err)

	bad := 101
	newTitle := "renamed"
	_, err = service.UpdateWorkplan(wp.ID, UpdateWorkplanInput{Title: &newTitle, Progress: &bad})
	assert.ErrorIs(t, err, ErrProgressOutOfRange)

	stored, err := service.GetWorkplan(wp.ID)
	require.NoError(t, err)
	assert.Equal(t, "halfway", stored.Title)
	assert.Equal(t, 50, stored.Progress)
}

func TestUpdateWorkplan_NotFound(t *testing.T) {
	service, _ := newWorkplanService(t)

	title := "x"
	_, err := service.UpdateWorkplan(12345, UpdateWorkplanInput{Title: &title})
	assert.ErrorIs(t, err, ErrWorkplanNotFound)
}

func TestDeleteWorkplan_NotFound(t *testing.T) {
	service, _ := newWorkplanService(t)

	err := service.DeleteWorkplan(12345)
	assert.ErrorIs(t, err, ErrWorkplanNotFound)
}

func TestUpdateTask_WrongParentNotFound(t *testing.T) {
	service, _ := newWorkplanService(t)

	first, err := service.CreateWorkplan(CreateWorkplanInput{Title: "first"})
	require.NoError(t, err)
	second, err := service.CreateWorkplan(CreateWorkplanInput{Title: "second"})
	require.NoError(t, err)

	task, err := service.CreateTask(first.ID, CreateTaskInput{Title: "belongs to first"})
	require.NoError(t, err)

	status := models.TaskStatusCompleted
	_, err = service.UpdateTask(second.ID, task.ID, UpdateTaskInput{Status: &status})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestUpdateTask_CompletedAtNotClearedOnReopen(t *testing.T) {
	service, _ := newWorkplanService(t)

	wp, err := service.CreateWorkplan(CreateWorkplanInput{Title: "plan"})
	require.NoError(t, err)
	task, err := service.CreateTask(wp.ID, CreateTaskInput{Title: "task"})
	require.NoError(t, err)
	require.Nil(t, task.CompletedAt)

	completed := models.TaskStatusCompleted
	updated, err := service.UpdateTask(wp.ID, task.ID, UpdateTaskInput{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	stamp := *updated.CompletedAt

	pending := models.TaskStatusPending
	reopened, err := service.UpdateTask(wp.ID, task.ID, UpdateTaskInput{Status: &pending})
	require.NoError(t, err)
	require.NotNil(t, reopened.CompletedAt)
	assert.Equal(t, stamp.Unix(), reopened.CompletedAt.Unix())
}

func TestListWorkplans_UnknownStatusMatchesNothing(t *testing.T) {
	service, _ := newWorkplanService(t)

	_, err := service.CreateWorkplan(CreateWorkplanInput{Title: "one", Status: models.WorkplanStatusActive})
	require.NoError(t, err)

	workplans, err := service.ListWorkplans(ListWorkplansInput{Status: "bogus"})
	require.NoError(t, err)
	assert.Empty(t, workplans)
}

func TestDashboard_EmptyStore(t *testing.T) {
	service, _ := newWorkplanService(t)

	dashboard, err := service.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(0), dashboard.TotalWorkplans)
	assert.Equal(t, int64(0), dashboard.PlannedWorkplans)
	assert.Equal(t, int64(0), dashboard.CancelledWorkplans)
	assert.NotNil(t, dashboard.RecentWorkplans)
	assert.Empty(t, dashboard.RecentWorkplans)
}

func TestClearWorkplanDates(t *testing.T) {
	service, _ := newWorkplanService(t)

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	wp, err := service.CreateWorkplan(CreateWorkplanInput{Title: "dated", StartDate: &start, EndDate: &end})
	require.NoError(t, err)

	updated, err := service.UpdateWorkplan(wp.ID, UpdateWorkplanInput{ClearStartDate: true})
	require.NoError(t, err)
	assert.Nil(t, updated.StartDate)
	require.NotNil(t, updated.EndDate)
}
