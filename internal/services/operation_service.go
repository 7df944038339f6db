package services

import (
	"errors"
	"fmt"
	"time"

	"fwfps/internal/constants"
	"fwfps/internal/dto"
	"fwfps/internal/models"
	"fwfps/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrOperationNotFound     = errors.New("operation not found")
	ErrSampleNotFound        = errors.New("sample not found")
	ErrOperationTypeRequired = errors.New("operation_type is required")
	ErrFacilityNameRequired  = errors.New("facility_name is required")
	ErrOperationDateRequired = errors.New("operation_date is required")
	ErrSampleTypeRequired    = errors.New("sample_type is required")
)

// The dashboard breaks operation counts out for this fixed advisory set
// only. operation_type is open-ended in practice, so other values count
// toward totals without a dedicated bucket.
var dashboardOperationTypes = []string{"inspection", "sampling", "audit"}

// OperationService handles PAC operation and sample business logic.
type OperationService struct {
	repo repository.OperationRepository
}

// NewOperationService creates a new OperationService
func NewOperationService(repo repository.OperationRepository) *OperationService {
	return &OperationService{repo: repo}
}

// ListOperationsInput represents the optional list filters. Empty strings
// impose no constraint.
type ListOperationsInput struct {
	OperationType string
	Status        string
	Priority      string
	Inspector     string
}

// ListOperations returns operations matching all supplied filters, newest
// operation_date first.
func (s *OperationService) ListOperations(input ListOperationsInput) ([]models.PacOperation, error) {
	filter := repository.OperationFilter{
		OperationType: input.OperationType,
		Inspector:     input.Inspector,
	}
	if input.Status != "" {
		status := models.OperationStatus(input.Status)
		filter.Status = &status
	}
	if input.Priority != "" {
		priority := models.Priority(input.Priority)
		filter.Priority = &priority
	}

	operations, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	return operations, nil
}

// GetOperation returns an operation with its samples.
func (s *OperationService) GetOperation(id uint64) (*models.PacOperation, error) {
	operation, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperationNotFound
		}
		return nil, fmt.Errorf("failed to find operation: %w", err)
	}
	return operation, nil
}

// CreateOperationInput represents input for creating a PAC operation
type CreateOperationInput struct {
	OperationType   string
	FacilityName    string
	FacilityID      string
	FacilityAddress string
	OperationDate   time.Time
	Status          models.OperationStatus
	Priority        models.Priority
	Inspector       string
	InspectorID     *uint64
	Notes           string
	RiskLevel       string
}

// CreateOperation creates a new operation with defaults for omitted fields.
func (s *OperationService) CreateOperation(input CreateOperationInput) (*models.PacOperation, error) {
	if input.OperationType == "" {
		return nil, ErrOperationTypeRequired
	}
	if input.FacilityName == "" {
		return nil, ErrFacilityNameRequired
	}
	if input.OperationDate.IsZero() {
		return nil, ErrOperationDateRequired
	}

	if input.Status == "" {
		input.Status = models.OperationStatusScheduled
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	if input.RiskLevel == "" {
		input.RiskLevel = "low"
	}

	operation := &models.PacOperation{
		OperationType:    input.OperationType,
		FacilityName:     input.FacilityName,
		FacilityID:       input.FacilityID,
		FacilityAddress:  input.FacilityAddress,
		OperationDate:    input.OperationDate.UTC(),
		Status:           input.Status,
		Priority:         input.Priority,
		Inspector:        input.Inspector,
		InspectorID:      input.InspectorID,
		Notes:            input.Notes,
		RiskLevel:        input.RiskLevel,
		ComplianceStatus: "pending",
	}

	if err := s.repo.Create(operation); err != nil {
		return nil, fmt.Errorf("failed to create operation: %w", err)
	}

	return operation, nil
}

// UpdateOperationInput is a sparse patch for a PAC operation.
type UpdateOperationInput struct {
	OperationType    *string
	FacilityName     *string
	FacilityID       *string
	FacilityAddress  *string
	OperationDate    *time.Time
	Status           *models.OperationStatus
	Priority         *models.Priority
	Inspector        *string
	InspectorID      *uint64
	Notes            *string
	Findings         *string
	RiskLevel        *string
	ComplianceStatus *string
}

// UpdateOperation applies a sparse patch. The first transition into
// completed stamps completed_at; it stays set even if the status later
// moves away from completed.
func (s *OperationService) UpdateOperation(id uint64, input UpdateOperationInput) (*models.PacOperation, error) {
	operation, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperationNotFound
		}
		return nil, fmt.Errorf("failed to find operation: %w", err)
	}

	if input.OperationType != nil {
		if *input.OperationType == "" {
			return nil, ErrOperationTypeRequired
		}
		operation.OperationType = *input.OperationType
	}
	if input.FacilityName != nil {
		if *input.FacilityName == "" {
			return nil, ErrFacilityNameRequired
		}
		operation.FacilityName = *input.FacilityName
	}
	if input.FacilityID != nil {
		operation.FacilityID = *input.FacilityID
	}
	if input.FacilityAddress != nil {
		operation.FacilityAddress = *input.FacilityAddress
	}
	if input.OperationDate != nil {
		operation.OperationDate = input.OperationDate.UTC()
	}
	if input.Status != nil {
		operation.Status = *input.Status
		if *input.Status == models.OperationStatusCompleted && operation.CompletedAt == nil {
			now := time.Now().UTC()
			operation.CompletedAt = &now
		}
	}
	if input.Priority != nil {
		operation.Priority = *input.Priority
	}
	if input.Inspector != nil {
		operation.Inspector = *input.Inspector
	}
	if input.InspectorID != nil {
		operation.InspectorID = input.InspectorID
	}
	if input.Notes != nil {
		operation.Notes = *input.Notes
	}
	if input.Findings != nil {
		operation.Findings = *input.Findings
	}
	if input.RiskLevel != nil {
		operation.RiskLevel = *input.RiskLevel
	}
	if input.ComplianceStatus != nil {
		operation.ComplianceStatus = *input.ComplianceStatus
	}

	if err := s.repo.Update(operation); err != nil {
		return nil, fmt.Errorf("failed to update operation: %w", err)
	}

	return s.repo.FindByID(operation.ID)
}

// DeleteOperation removes an operation together with all of its samples.
func (s *OperationService) DeleteOperation(id uint64) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOperationNotFound
		}
		return fmt.Errorf("failed to find operation: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}
	return nil
}

// ListSamples returns the samples of an existing operation.
func (s *OperationService) ListSamples(operationID uint64) ([]models.PacSample, error) {
	if _, err := s.repo.FindByID(operationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperationNotFound
		}
		return nil, fmt.Errorf("failed to find operation: %w", err)
	}

	samples, err := s.repo.ListSamples(operationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list samples: %w", err)
	}
	return samples, nil
}

// CreateSampleInput represents input for creating a PAC sample
type CreateSampleInput struct {
	SampleType        string
	SampleDescription string
	SampleLocation    string
	TestType          string
	LabID             string
}

// CreateSample creates a sample under an existing operation. A missing
// operation is a not-found condition, distinct from validation failures on
// the sample itself.
func (s *OperationService) CreateSample(operationID uint64, input CreateSampleInput) (*models.PacSample, error) {
	if _, err := s.repo.FindByID(operationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOperationNotFound
		}
		return nil, fmt.Errorf("failed to find operation: %w", err)
	}

	if input.SampleType == "" {
		return nil, ErrSampleTypeRequired
	}

	now := time.Now().UTC()
	sample := &models.PacSample{
		OperationID:       operationID,
		SampleType:        input.SampleType,
		SampleDescription: input.SampleDescription,
		CollectionDate:    &now,
		SampleLocation:    input.SampleLocation,
		TestType:          input.TestType,
		Status:            models.SampleStatusCollected,
		LabID:             input.LabID,
	}

	if err := s.repo.CreateSample(sample); err != nil {
		return nil, fmt.Errorf("failed to create sample: %w", err)
	}

	return sample, nil
}

// UpdateSampleInput is a sparse patch for a PAC sample.
type UpdateSampleInput struct {
	SampleType        *string
	SampleDescription *string
	SampleLocation    *string
	TestType          *string
	Status            *models.SampleStatus
	Results           *string
	LabID             *string
}

// UpdateSample applies a sparse patch to a sample.
func (s *OperationService) UpdateSample(operationID, sampleID uint64, input UpdateSampleInput) (*models.PacSample, error) {
	sample, err := s.findSample(operationID, sampleID)
	if err != nil {
		return nil, err
	}

	if input.SampleType != nil {
		if *input.SampleType == "" {
			return nil, ErrSampleTypeRequired
		}
		sample.SampleType = *input.SampleType
	}
	if input.SampleDescription != nil {
		sample.SampleDescription = *input.SampleDescription
	}
	if input.SampleLocation != nil {
		sample.SampleLocation = *input.SampleLocation
	}
	if input.TestType != nil {
		sample.TestType = *input.TestType
	}
	if input.Status != nil {
		sample.Status = *input.Status
	}
	if input.Results != nil {
		sample.Results = *input.Results
	}
	if input.LabID != nil {
		sample.LabID = *input.LabID
	}

	if err := s.repo.UpdateSample(sample); err != nil {
		return nil, fmt.Errorf("failed to update sample: %w", err)
	}

	return sample, nil
}

// DeleteSample removes a single sample from an operation.
func (s *OperationService) DeleteSample(operationID, sampleID uint64) error {
	if _, err := s.findSample(operationID, sampleID); err != nil {
		return err
	}

	if err := s.repo.DeleteSample(sampleID); err != nil {
		return fmt.Errorf("failed to delete sample: %w", err)
	}
	return nil
}

func (s *OperationService) findSample(operationID, sampleID uint64) (*models.PacSample, error) {
	sample, err := s.repo.FindSampleByID(sampleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSampleNotFound
		}
		return nil, fmt.Errorf("failed to find sample: %w", err)
	}
	if sample.OperationID != operationID {
		return nil, ErrSampleNotFound
	}
	return sample, nil
}

// Dashboard computes the PAC summary fresh from the current records.
func (s *OperationService) Dashboard() (*dto.PacDashboard, error) {
	dashboard := &dto.PacDashboard{}

	total, err := s.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count operations: %w", err)
	}
	dashboard.TotalOperations = total

	for _, status := range models.OperationStatuses() {
		count, err := s.repo.CountByStatus(status)
		if err != nil {
			return nil, fmt.Errorf("failed to count operations by status: %w", err)
		}
		switch status {
		case models.OperationStatusScheduled:
			dashboard.ScheduledOperations = count
		case models.OperationStatusInProgress:
			dashboard.InProgressOperations = count
		case models.OperationStatusCompleted:
			dashboard.CompletedOperations = count
		case models.OperationStatusCancelled:
			dashboard.CancelledOperations = count
		}
	}

	for _, operationType := range dashboardOperationTypes {
		count, err := s.repo.CountByType(operationType)
		if err != nil {
			return nil, fmt.Errorf("failed to count operations by type: %w", err)
		}
		switch operationType {
		case "inspection":
			dashboard.Inspections = count
		case "sampling":
			dashboard.Samplings = count
		case "audit":
			dashboard.Audits = count
		}
	}

	highPriority, err := s.repo.CountByPriority(models.PriorityHigh)
	if err != nil {
		return nil, fmt.Errorf("failed to count high priority operations: %w", err)
	}
	dashboard.HighPriority = highPriority

	recent, err := s.repo.ListRecent(constants.DashboardRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent operations: %w", err)
	}
	dashboard.RecentOperations = dto.ToPacOperationDTOs(recent)

	return dashboard, nil
}
