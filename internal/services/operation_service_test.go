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

func newOperationService(t *testing.T) (*OperationService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.PacOperation{}, &models.PacSample{}))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.Close()
	})

	return NewOperationService(repository.NewOperationRepository(db)), db
}

func operationDate() time.Time {
	return time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)
}

func TestCreateOperation_RequiredFields(t *testing.T) {
	service, _ := newOperationService(t)

	_, err := service.CreateOperation(CreateOperationInput{FacilityName: "F", OperationDate: operationDate()})
	assert.ErrorIs(t, err, ErrOperationTypeRequired)

	_, err = service.CreateOperation(CreateOperationInput{OperationType: "audit", OperationDate: operationDate()})
	assert.ErrorIs(t, err, ErrFacilityNameRequired)

	_, err = service.CreateOperation(CreateOperationInput{OperationType: "audit", FacilityName: "F"})
	assert.ErrorIs(t, err, ErrOperationDateRequired)
}

func TestCreateOperation_Defaults(t *testing.T) {
	service, _ := newOperationService(t)

	op, err := service.CreateOperation(CreateOperationInput{
		OperationType: "inspection",
		FacilityName:  "ACME Foods",
		OperationDate: operationDate(),
	})
	require.NoError(t, err)
	assert.Equal(t, models.OperationStatusScheduled, op.Status)
	assert.Equal(t, models.PriorityMedium, op.Priority)
	assert.Equal(t, "low", op.RiskLevel)
	assert.Equal(t, "pending", op.ComplianceStatus)
}

func TestDashboard_FixedTypeSet(t *testing.T) {
	service, _ := newOperationService(t)

	// an investigation counts toward totals but has no per-type counter
	_, err := service.CreateOperation(CreateOperationInput{
		OperationType: "investigation",
		FacilityName:  "F",
		OperationDate: operationDate(),
	})
	require.NoError(t, err)

	dashboard, err := service.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(1), dashboard.TotalOperations)
	assert.Equal(t, int64(1), dashboard.ScheduledOperations)
	assert.Equal(t, int64(0), dashboard.Inspections)
	assert.Equal(t, int64(0), dashboard.Samplings)
	assert.Equal(t, int64(0), dashboard.Audits)
}

func TestCreateSample_ParentMissing(t *testing.T) {
	service, db := newOperationService(t)

	_, err := service.CreateSample(999, CreateSampleInput{SampleType: "water"})
	assert.ErrorIs(t, err, ErrOperationNotFound)

	var count int64
	db.Model(&models.PacSample{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateSample_RequiredTypeAndDefaults(t *testing.T) {
	service, _ := newOperationService(t)

	op, err := service.CreateOperation(CreateOperationInput{
		OperationType: "sampling",
		FacilityName:  "F",
		OperationDate: operationDate(),
	})
	require.NoError(t, err)

	_, err = service.CreateSample(op.ID, CreateSampleInput{})
	assert.ErrorIs(t, err, ErrSampleTypeRequired)

	sample, err := service.CreateSample(op.ID, CreateSampleInput{SampleType: "water"})
	require.NoError(t, err)
	assert.Equal(t, models.SampleStatusCollected, sample.Status)
	assert.NotNil(t, sample.CollectionDate)
}

func TestUpdateOperation_CompletedAtSetOnFirstCompletion(t *testing.T) {
	service, _ := newOperationService(t)

	op, err := service.CreateOperation(CreateOperationInput{
		OperationType: "audit",
		FacilityName:  "F",
		OperationDate: operationDate(),
	})
	require.NoError(t, err)
	require.Nil(t, op.CompletedAt)

	completed := models.OperationStatusCompleted
	updated, err := service.UpdateOperation(op.ID, UpdateOperationInput{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	stamp := *updated.CompletedAt

	again, err := service.UpdateOperation(op.ID, UpdateOperationInput{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.Equal(t, stamp.Unix(), again.CompletedAt.Unix())
}

func TestDeleteSample_WrongParent(t *testing.T) {
	service, _ := newOperationService(t)

	first, err := service.CreateOperation(CreateOperationInput{
		OperationType: "sampling",
		FacilityName:  "F1",
		OperationDate: operationDate(),
	})
	require.NoError(t, err)
	second, err := service.CreateOperation(CreateOperationInput{
		OperationType: "sampling",
		FacilityName:  "F2",
		OperationDate: operationDate(),
	})
	require.NoError(t, err)

	sample, err := service.CreateSample(first.ID, CreateSampleInput{SampleType: "soil"})
	require.NoError(t, err)

	err = service.DeleteSample(second.ID, sample.ID)
	assert.ErrorIs(t, err, ErrSampleNotFound)

	samples, err := service.ListSamples(first.ID)
	require.NoError(t, err)
	assert.Len(t, samples, 1)
}
