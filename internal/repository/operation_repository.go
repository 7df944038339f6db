package repository

import (
	"strings"

	"fwfps/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOperationRepository is a GORM implementation of OperationRepository
type GormOperationRepository struct {
	db *gorm.DB
}

// NewOperationRepository creates a new OperationRepository
func NewOperationRepository(db *gorm.DB) OperationRepository {
	return &GormOperationRepository{db: db}
}

// Create creates a new operation
func (r *GormOperationRepository) Create(operation *models.PacOperation) error {
	return r.db.Create(operation).Error
}

// FindByID finds an operation by ID with its samples
func (r *GormOperationRepository) FindByID(id uint64) (*models.PacOperation, error) {
	var operation models.PacOperation
	if err := r.db.Preload("Samples").First(&operation, id).Error; err != nil {
		return nil, err
	}
	return &operation, nil
}

// List retrieves operations matching the filter, newest operation_date first
func (r *GormOperationRepository) List(filter OperationFilter) ([]models.PacOperation, error) {
	query := r.db.Model(&models.PacOperation{})

	if filter.OperationType != "" {
		query = query.Where("operation_type = ?", filter.OperationType)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.Inspector != "" {
		query = query.Where("LOWER(inspector) LIKE ?", "%"+strings.ToLower(filter.Inspector)+"%")
	}

	var operations []models.PacOperation
	if err := query.Preload("Samples").Order("operation_date DESC").Find(&operations).Error; err != nil {
		return nil, err
	}
	return operations, nil
}

// Update persists changes to an operation. Loaded samples are left alone;
// child mutation never rides along with a parent update.
func (r *GormOperationRepository) Update(operation *models.PacOperation) error {
	return r.db.Omit(clause.Associations).Save(operation).Error
}

// Delete removes an operation and all of its samples in a single transaction
func (r *GormOperationRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("operation_id = ?", id).Delete(&models.PacSample{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PacOperation{}, id).Error
	})
}

// Count returns the total number of operations
func (r *GormOperationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.PacOperation{}).Count(&count).Error
	return count, err
}

// CountByStatus counts operations with the given status
func (r *GormOperationRepository) CountByStatus(status models.OperationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.PacOperation{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountByType counts operations with the given operation_type
func (r *GormOperationRepository) CountByType(operationType string) (int64, error) {
	var count int64
	err := r.db.Model(&models.PacOperation{}).Where("operation_type = ?", operationType).Count(&count).Error
	return count, err
}

// CountByPriority counts operations with the given priority
func (r *GormOperationRepository) CountByPriority(priority models.Priority) (int64, error) {
	var count int64
	err := r.db.Model(&models.PacOperation{}).Where("priority = ?", priority).Count(&count).Error
	return count, err
}

// ListRecent returns the most recently created operations with their samples
func (r *GormOperationRepository) ListRecent(limit int) ([]models.PacOperation, error) {
	var operations []models.PacOperation
	err := r.db.Preload("Samples").Order("created_at DESC").Limit(limit).Find(&operations).Error
	if err != nil {
		return nil, err
	}
	return operations, nil
}

// CreateSample creates a sample under an existing operation
func (r *GormOperationRepository) CreateSample(sample *models.PacSample) error {
	return r.db.Create(sample).Error
}

// FindSampleByID finds a sample by ID
func (r *GormOperationRepository) FindSampleByID(id uint64) (*models.PacSample, error) {
	var sample models.PacSample
	if err := r.db.First(&sample, id).Error; err != nil {
		return nil, err
	}
	return &sample, nil
}

// ListSamples returns all samples of an operation in insertion order
func (r *GormOperationRepository) ListSamples(operationID uint64) ([]models.PacSample, error) {
	var samples []models.PacSample
	if err := r.db.Where("operation_id = ?", operationID).Find(&samples).Error; err != nil {
		return nil, err
	}
	return samples, nil
}

// UpdateSample persists changes to a sample
func (r *GormOperationRepository) UpdateSample(sample *models.PacSample) error {
	return r.db.Save(sample).Error
}

// DeleteSample removes a single sample
func (r *GormOperationRepository) DeleteSample(id uint64) error {
	return r.db.Delete(&models.PacSample{}, id).Error
}
