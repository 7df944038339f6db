package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fwfps/internal/models"
	"fwfps/internal/repository"
	"fwfps/internal/services"
)

// WorkplanHandlerTestSuite defines the test suite for WorkplanHandler
type WorkplanHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *WorkplanHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Workplan{},
		&models.WorkplanTask{},
		&models.PacOperation{},
		&models.PacSample{},
	)
	suite.Require().NoError(err)

	repo := repository.NewWorkplanRepository(suite.db)
	service := services.NewWorkplanService(repo)
	handler := NewWorkplanHandler(service)

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	workplans := suite.router.Group("/api/workplans")
	{
		workplans.GET("", handler.ListWorkplans)
		workplans.POST("", handler.CreateWorkplan)
		workplans.GET("/dashboard", handler.Dashboard)
		workplans.GET("/:id", handler.GetWorkplan)
		workplans.PUT("/:id", handler.UpdateWorkplan)
		workplans.DELETE("/:id", handler.DeleteWorkplan)
		workplans.GET("/:id/tasks", handler.ListTasks)
		workplans.POST("/:id/tasks", handler.CreateTask)
		workplans.PUT("/:id/tasks/:task_id", handler.UpdateTask)
		workplans.DELETE("/:id/tasks/:task_id", handler.DeleteTask)
	}
}

// TearDownTest runs after each test
func (suite *WorkplanHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *WorkplanHandlerTestSuite) perform(method, url string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *WorkplanHandlerTestSuite) createTestWorkplan(title string, status models.WorkplanStatus, priority models.Priority) *models.Workplan {
	workplan := &models.Workplan{
		Title:    title,
		Status:   status,
		Priority: priority,
	}
	suite.Require().NoError(suite.db.Create(workplan).Error)
	return workplan
}

func (suite *WorkplanHandlerTestSuite) createTestTask(workplanID uint64, title string) *models.WorkplanTask {
	task := &models.WorkplanTask{
		WorkplanID: workplanID,
		Title:      title,
		Status:     models.TaskStatusPending,
		Priority:   models.PriorityMedium,
	}
	suite.Require().NoError(suite.db.Create(task).Error)
	return task
}

func (suite *WorkplanHandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var response map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (suite *WorkplanHandlerTestSuite) TestCreateWorkplan_DefaultsApplied() {
	w := suite.perform("POST", "/api/workplans", gin.H{"title": "Q3 Inspections"})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), true, response["success"])

	workplan := response["workplan"].(map[string]any)
	assert.Equal(suite.T(), "Q3 Inspections", workplan["title"])
	assert.Equal(suite.T(), "planned", workplan["status"])
	assert.Equal(suite.T(), "medium", workplan["priority"])
	assert.Equal(suite.T(), float64(0), workplan["progress"])
	assert.Equal(suite.T(), float64(0), workplan["task_count"])
}

func (suite *WorkplanHandlerTestSuite) TestCreateWorkplan_TitleRequired() {
	w := suite.perform("POST", "/api/workplans", gin.H{"description": "no title"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *WorkplanHandlerTestSuite) TestCreateWorkplan_ProgressOutOfRange() {
	for _, progress := range []int{-1, 101} {
		w := suite.perform("POST", "/api/workplans", gin.H{"title": "Bad progress", "progress": progress})
		assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	}

	var count int64
	suite.db.Model(&models.Workplan{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)

	w := suite.perform("POST", "/api/workplans", gin.H{"title": "Good progress", "progress": 100})
	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *WorkplanHandlerTestSuite) TestListWorkplans_FilterByStatus() {
	suite.createTestWorkplan("A", models.WorkplanStatusActive, models.PriorityMedium)
	suite.createTestWorkplan("B", models.WorkplanStatusActive, models.PriorityHigh)
	suite.createTestWorkplan("C", models.WorkplanStatusCompleted, models.PriorityLow)

	w := suite.perform("GET", "/api/workplans?status=active", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), float64(2), response["total"])

	w = suite.perform("GET", "/api/workplans?status=cancelled", nil)
	response = suite.decode(w)
	assert.Equal(suite.T(), float64(0), response["total"])
}

func (suite *WorkplanHandlerTestSuite) TestListWorkplans_FilterByAssignedToSubstring() {
	wp := suite.createTestWorkplan("A", models.WorkplanStatusActive, models.PriorityMedium)
	suite.db.Model(wp).Update("assigned_to", "FDA Team Alpha")
	suite.createTestWorkplan("B", models.WorkplanStatusActive, models.PriorityMedium)

	w := suite.perform("GET", "/api/workplans?assigned_to=team+alpha", nil)
	response := suite.decode(w)
	assert.Equal(suite.T(), float64(1), response["total"])
}

func (suite *WorkplanHandlerTestSuite) TestListWorkplans_NewestFirst() {
	// insertion order deliberately disagrees with created_at order
	middle := &models.Workplan{
		Title: "middle", Status: models.WorkplanStatusActive, Priority: models.PriorityMedium,
		CreatedAt: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.Require().NoError(suite.db.Create(middle).Error)
	oldest := &models.Workplan{
		Title: "oldest", Status: models.WorkplanStatusActive, Priority: models.PriorityMedium,
		CreatedAt: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.Require().NoError(suite.db.Create(oldest).Error)
	newest := &models.Workplan{
		Title: "newest", Status: models.WorkplanStatusActive, Priority: models.PriorityMedium,
		CreatedAt: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.Require().NoError(suite.db.Create(newest).Error)

	w := suite.perform("GET", "/api/workplans", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	workplans := response["workplans"].([]any)
	suite.Require().Len(workplans, 3)
	titles := make([]string, len(workplans))
	for i, raw := range workplans {
		titles[i] = raw.(map[string]any)["title"].(string)
	}
	assert.Equal(suite.T(), []string{"newest", "middle", "oldest"}, titles)
}

func (suite *WorkplanHandlerTestSuite) TestGetWorkplan_NotFound() {
	w := suite.perform("GET", "/api/workplans/999", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *WorkplanHandlerTestSuite) TestUpdateWorkplan_SparsePatch() {
	wp := suite.createTestWorkplan("Original", models.WorkplanStatusPlanned, models.PriorityMedium)
	suite.db.Model(wp).Update("description", "A")

	w := suite.perform("PUT", "/api/workplans/1", gin.H{"title": "B"})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	workplan := response["workplan"].(map[string]any)
	assert.Equal(suite.T(), "B", workplan["title"])
	assert.Equal(suite.T(), "A", workplan["description"])
}

func (suite *WorkplanHandlerTestSuite) TestUpdateWorkplan_NullClearsDate() {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	wp := suite.createTestWorkplan("Dated", models.WorkplanStatusPlanned, models.PriorityMedium)
	suite.db.Model(wp).Update("start_date", start)

	w := suite.perform("PUT", "/api/workplans/1", map[string]any{"start_date": nil})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	workplan := response["workplan"].(map[string]any)
	assert.Nil(suite.T(), workplan["start_date"])
}

func (suite *WorkplanHandlerTestSuite) TestUpdateWorkplan_RefreshesUpdatedAt() {
	wp := suite.createTestWorkplan("Tracked", models.WorkplanStatusPlanned, models.PriorityMedium)

	var before models.Workplan
	suite.Require().NoError(suite.db.First(&before, wp.ID).Error)

	w := suite.perform("PUT", "/api/workplans/1", gin.H{"description": "touched"})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var after models.Workplan
	suite.Require().NoError(suite.db.First(&after, wp.ID).Error)
	assert.True(suite.T(), after.UpdatedAt.After(before.UpdatedAt))

	// a rejected patch must not advance updated_at
	w = suite.perform("PUT", "/api/workplans/1", gin.H{"progress": 101})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var unchanged models.Workplan
	suite.Require().NoError(suite.db.First(&unchanged, wp.ID).Error)
	assert.True(suite.T(), unchanged.UpdatedAt.Equal(after.UpdatedAt))
}

func (suite *WorkplanHandlerTestSuite) TestUpdateWorkplan_FractionalProgressRejected() {
	suite.createTestWorkplan("Fraction", models.WorkplanStatusActive, models.PriorityMedium)

	w := suite.perform("PUT", "/api/workplans/1", gin.H{"progress": 50.5})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var stored models.Workplan
	suite.Require().NoError(suite.db.First(&stored, 1).Error)
	assert.Equal(suite.T(), 0, stored.Progress)
}

func (suite *WorkplanHandlerTestSuite) TestDeleteWorkplan_CascadesTasks() {
	wp := suite.createTestWorkplan("With tasks", models.WorkplanStatusActive, models.PriorityMedium)
	task1 := suite.createTestTask(wp.ID, "task 1")
	task2 := suite.createTestTask(wp.ID, "task 2")

	w := suite.perform("DELETE", "/api/workplans/1", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var count int64
	suite.db.Model(&models.WorkplanTask{}).Where("id IN ?", []uint64{task1.ID, task2.ID}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)

	w = suite.perform("GET", "/api/workplans/1", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *WorkplanHandlerTestSuite) TestCreateTask_WorkplanNotFound() {
	w := suite.perform("POST", "/api/workplans/42/tasks", gin.H{"title": "orphan"})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var count int64
	suite.db.Model(&models.WorkplanTask{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *WorkplanHandlerTestSuite) TestTaskCount_TracksTasks() {
	wp := suite.createTestWorkplan("Counted", models.WorkplanStatusActive, models.PriorityMedium)
	suite.createTestTask(wp.ID, "one")
	suite.createTestTask(wp.ID, "two")
	suite.createTestTask(wp.ID, "three")

	w := suite.perform("GET", "/api/workplans/1", nil)
	response := suite.decode(w)
	workplan := response["workplan"].(map[string]any)
	assert.Equal(suite.T(), float64(3), workplan["task_count"])
	assert.Len(suite.T(), workplan["tasks"], 3)
}

func (suite *WorkplanHandlerTestSuite) TestUpdateTask_CompletedAtSetOnce() {
	wp := suite.createTestWorkplan("Lifecycle", models.WorkplanStatusActive, models.PriorityMedium)
	task := suite.createTestTask(wp.ID, "finish me")

	w := suite.perform("PUT", "/api/workplans/1/tasks/1", gin.H{"status": "completed"})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var first models.WorkplanTask
	suite.Require().NoError(suite.db.First(&first, task.ID).Error)
	suite.Require().NotNil(first.CompletedAt)

	w = suite.perform("PUT", "/api/workplans/1/tasks/1", gin.H{"status": "completed"})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var second models.WorkplanTask
	suite.Require().NoError(suite.db.First(&second, task.ID).Error)
	suite.Require().NotNil(second.CompletedAt)
	assert.Equal(suite.T(), first.CompletedAt.Unix(), second.CompletedAt.Unix())

	// moving away from completed does not clear the stamp
	w = suite.perform("PUT", "/api/workplans/1/tasks/1", gin.H{"status": "in_progress"})
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var third models.WorkplanTask
	suite.Require().NoError(suite.db.First(&third, task.ID).Error)
	assert.NotNil(suite.T(), third.CompletedAt)
}

func (suite *WorkplanHandlerTestSuite) TestUpdateTask_ProgressOutOfRange() {
	wp := suite.createTestWorkplan("Bounds", models.WorkplanStatusActive, models.PriorityMedium)
	suite.createTestTask(wp.ID, "task")

	w := suite.perform("PUT", "/api/workplans/1/tasks/1", gin.H{"progress": 101})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var task models.WorkplanTask
	suite.Require().NoError(suite.db.First(&task, 1).Error)
	assert.Equal(suite.T(), 0, task.Progress)
}

func (suite *WorkplanHandlerTestSuite) TestDashboard_Aggregates() {
	suite.createTestWorkplan("P", models.WorkplanStatusPlanned, models.PriorityLow)
	suite.createTestWorkplan("A1", models.WorkplanStatusActive, models.PriorityHigh)
	suite.createTestWorkplan("A2", models.WorkplanStatusActive, models.PriorityHigh)
	suite.createTestWorkplan("C", models.WorkplanStatusCompleted, models.PriorityCritical)

	w := suite.perform("GET", "/api/workplans/dashboard", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	dashboard := response["dashboard"].(map[string]any)
	assert.Equal(suite.T(), float64(4), dashboard["total_workplans"])
	assert.Equal(suite.T(), float64(1), dashboard["planned_workplans"])
	assert.Equal(suite.T(), float64(2), dashboard["active_workplans"])
	assert.Equal(suite.T(), float64(1), dashboard["completed_workplans"])
	assert.Equal(suite.T(), float64(0), dashboard["cancelled_workplans"])
	assert.Equal(suite.T(), float64(2), dashboard["high_priority"])
	assert.Len(suite.T(), dashboard["recent_workplans"], 4)
}

func TestWorkplanHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkplanHandlerTestSuite))
}
