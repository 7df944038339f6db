package dto

import "fwfps/internal/models"

// PacSampleDTO represents a PAC sample in API responses
type PacSampleDTO struct {
	ID                uint64              `json:"id"`
	OperationID       uint64              `json:"operation_id"`
	SampleType        string              `json:"sample_type"`
	SampleDescription string              `json:"sample_description"`
	CollectionDate    *string             `json:"collection_date"`
	SampleLocation    string              `json:"sample_location"`
	TestType          string              `json:"test_type"`
	Status            models.SampleStatus `json:"status"`
	Results           string              `json:"results"`
	LabID             string              `json:"lab_id"`
	CreatedAt         string              `json:"created_at"`
}

// PacOperationDTO represents a PAC operation in API responses. sample_count
// is derived from the loaded samples, never stored.
type PacOperationDTO struct {
	ID               uint64                 `json:"id"`
	OperationType    string                 `json:"operation_type"`
	FacilityName     string                 `json:"facility_name"`
	FacilityID       string                 `json:"facility_id"`
	FacilityAddress  string                 `json:"facility_address"`
	OperationDate    string                 `json:"operation_date"`
	Status           models.OperationStatus `json:"status"`
	Priority         models.Priority        `json:"priority"`
	Inspector        string                 `json:"inspector"`
	InspectorID      *uint64                `json:"inspector_id"`
	Notes            string                 `json:"notes"`
	Findings         string                 `json:"findings"`
	RiskLevel        string                 `json:"risk_level"`
	ComplianceStatus string                 `json:"compliance_status"`
	CreatedAt        string                 `json:"created_at"`
	UpdatedAt        string                 `json:"updated_at"`
	CompletedAt      *string                `json:"completed_at"`
	SampleCount      int                    `json:"sample_count"`
	Samples          []PacSampleDTO         `json:"samples"`
}

// ToPacSampleDTO converts a PacSample model to PacSampleDTO
func ToPacSampleDTO(sample models.PacSample) PacSampleDTO {
	return PacSampleDTO{
		ID:                sample.ID,
		OperationID:       sample.OperationID,
		SampleType:        sample.SampleType,
		SampleDescription: sample.SampleDescription,
		CollectionDate:    formatTimestampPtr(sample.CollectionDate),
		SampleLocation:    sample.SampleLocation,
		TestType:          sample.TestType,
		Status:            sample.Status,
		Results:           sample.Results,
		LabID:             sample.LabID,
		CreatedAt:         formatTimestamp(sample.CreatedAt),
	}
}

// ToPacSampleDTOs converts a slice of samples
func ToPacSampleDTOs(samples []models.PacSample) []PacSampleDTO {
	dtos := make([]PacSampleDTO, len(samples))
	for i, sample := range samples {
		dtos[i] = ToPacSampleDTO(sample)
	}
	return dtos
}

// ToPacOperationDTO converts a PacOperation model to PacOperationDTO
func ToPacOperationDTO(operation models.PacOperation) PacOperationDTO {
	return PacOperationDTO{
		ID:               operation.ID,
		OperationType:    operation.OperationType,
		FacilityName:     operation.FacilityName,
		FacilityID:       operation.FacilityID,
		FacilityAddress:  operation.FacilityAddress,
		OperationDate:    formatTimestamp(operation.OperationDate),
		Status:           operation.Status,
		Priority:         operation.Priority,
		Inspector:        operation.Inspector,
		InspectorID:      operation.InspectorID,
		Notes:            operation.Notes,
		Findings:         operation.Findings,
		RiskLevel:        operation.RiskLevel,
		ComplianceStatus: operation.ComplianceStatus,
		CreatedAt:        formatTimestamp(operation.CreatedAt),
		UpdatedAt:        formatTimestamp(operation.UpdatedAt),
		CompletedAt:      formatTimestampPtr(operation.CompletedAt),
		SampleCount:      len(operation.Samples),
		Samples:          ToPacSampleDTOs(operation.Samples),
	}
}

// ToPacOperationDTOs converts a slice of operations
func ToPacOperationDTOs(operations []models.PacOperation) []PacOperationDTO {
	dtos := make([]PacOperationDTO, len(operations))
	for i, operation := range operations {
		dtos[i] = ToPacOperationDTO(operation)
	}
	return dtos
}
