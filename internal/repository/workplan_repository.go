package repository

import (
	"strings"

	"fwfps/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWorkplanRepository is a GORM implementation of WorkplanRepository
type GormWorkplanRepository struct {
	db *gorm.DB
}

// NewWorkplanRepository creates a new WorkplanRepository
func NewWorkplanRepository(db *gorm.DB) WorkplanRepository {
	return &GormWorkplanRepository{db: db}
}

// Create creates a new workplan
func (r *GormWorkplanRepository) Create(workplan *models.Workplan) error {
	return r.db.Create(workplan).Error
}

// FindByID finds a workplan by ID with its tasks
func (r *GormWorkplanRepository) FindByID(id uint64) (*models.Workplan, error) {
	var workplan models.Workplan
	if err := r.db.Preload("Tasks").First(&workplan, id).Error; err != nil {
		return nil, err
	}
	return &workplan, nil
}

// List retrieves workplans matching the filter, newest created first
func (r *GormWorkplanRepository) List(filter WorkplanFilter) ([]models.Workplan, error) {
	query := r.db.Model(&models.Workplan{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.AssignedTo != "" {
		query = query.Where("LOWER(assigned_to) LIKE ?", "%"+strings.ToLower(filter.AssignedTo)+"%")
	}

	var workplans []models.Workplan
	if err := query.Preload("Tasks").Order("created_at DESC").Find(&workplans).Error; err != nil {
		return nil, err
	}
	return workplans, nil
}

// Update persists changes to a workplan. Loaded tasks are left alone;
// child mutation never rides along with a parent update.
func (r *GormWorkplanRepository) Update(workplan *models.Workplan) error {
	return r.db.Omit(clause.Associations).Save(workplan).Error
}

// Delete removes a workplan and all of its tasks in a single transaction.
// No other operation can observe the workplan without its tasks or orphaned
// tasks without their workplan.
func (r *GormWorkplanRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workplan_id = ?", id).Delete(&models.WorkplanTask{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Workplan{}, id).Error
	})
}

// Count returns the total number of workplans
func (r *GormWorkplanRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Workplan{}).Count(&count).Error
	return count, err
}

// CountByStatus counts workplans with the given status
func (r *GormWorkplanRepository) CountByStatus(status models.WorkplanStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Workplan{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// CountByPriority counts workplans with the given priority
func (r *GormWorkplanRepository) CountByPriority(priority models.Priority) (int64, error) {
	var count int64
	err := r.db.Model(&models.Workplan{}).Where("priority = ?", priority).Count(&count).Error
	return count, err
}

// ListRecent returns the most recently created workplans with their tasks
func (r *GormWorkplanRepository) ListRecent(limit int) ([]models.Workplan, error) {
	var workplans []models.Workplan
	err := r.db.Preload("Tasks").Order("created_at DESC").Limit(limit).Find(&workplans).Error
	if err != nil {
		return nil, err
	}
	return workplans, nil
}

// CreateTask creates a task under an existing workplan
func (r *GormWorkplanRepository) CreateTask(task *models.WorkplanTask) error {
	return r.db.Create(task).Error
}

// FindTaskByID finds a task by ID
func (r *GormWorkplanRepository) FindTaskByID(id uint64) (*models.WorkplanTask, error) {
	var task models.WorkplanTask
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListTasks returns all tasks of a workplan in insertion order
func (r *GormWorkplanRepository) ListTasks(workplanID uint64) ([]models.WorkplanTask, error) {
	var tasks []models.WorkplanTask
	if err := r.db.Where("workplan_id = ?", workplanID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTask persists changes to a task
func (r *GormWorkplanRepository) UpdateTask(task *models.WorkplanTask) error {
	return r.db.Save(task).Error
}

// DeleteTask removes a single task
func (r *GormWorkplanRepository) DeleteTask(id uint64) error {
	return r.db.Delete(&models.WorkplanTask{}, id).Error
}
