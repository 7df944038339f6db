package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fwfps/internal/dto"
	apierrors "fwfps/internal/errors"
	"fwfps/internal/models"
	"fwfps/internal/services"
)

// PacHandler coordinates PAC operation and sample HTTP handlers.
type PacHandler struct {
	service *services.OperationService
}

// NewPacHandler creates a new PacHandler.
func NewPacHandler(service *services.OperationService) *PacHandler {
	return &PacHandler{service: service}
}

// ListOperations returns all PAC operations, optionally filtered by type,
// status, priority and inspector substring.
func (h *PacHandler) ListOperations(c *gin.Context) {
	operationType := c.Query("type")
	if operationType == "" {
		operationType = c.Query("operation_type")
	}

	operations, err := h.service.ListOperations(services.ListOperationsInput{
		OperationType: operationType,
		Status:        c.Query("status"),
		Priority:      c.Query("priority"),
		Inspector:     c.Query("inspector"),
	})
	if err != nil {
		respondPacError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"operations": dto.ToPacOperationDTOs(operations),
		"total":      len(operations),
	})
}

// GetOperation returns a specific PAC operation by ID.
func (h *PacHandler) GetOperation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid operation id")
		return
	}

	operation, err := h.service.GetOperation(id)
	if err != nil {
		respondPacError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"operation": dto.ToPacOperationDTO(*operation),
	})
}

// CreateOperation creates a new PAC operation.
func (h *PacHandler) CreateOperation(c *gin.Context) {
	type CreateOperationRequest struct {
		OperationType   string  `json:"operation_type" binding:"required"`
		FacilityName    string  `json:"facility_name" binding:"required"`
		FacilityID      string  `json:"facility_id"`
		FacilityAddress string  `json:"facility_address"`
		OperationDate   string  `json:"operation_date" binding:"required"`
		Status          string  `json:"status"`
		Priority        string  `json:"priority"`
		Inspector       string  `json:"inspector"`
		InspectorID     *uint64 `json:"inspector_id"`
		Notes           string  `json:"notes"`
		RiskLevel       string  `json:"risk_level"`
	}

	var req CreateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	operationDate, err := parseTimestamp(req.OperationDate)
	if err != nil || operationDate == nil {
		apierrors.BadRequest(c, "Invalid operation_date")
		return
	}

	operation, err := h.service.CreateOperation(services.CreateOperationInput{
		OperationType:   req.OperationType,
		FacilityName:    req.FacilityName,
		FacilityID:      req.FacilityID,
		FacilityAddress: req.FacilityAddress,
		OperationDate:   *operationDate,
		Status:          models.OperationStatus(req.Status),
		Priority:        models.Priority(req.Priority),
		Inspector:       req.Inspector,
		InspectorID:     req.InspectorID,
		Notes:           req.Notes,
		RiskLevel:       req.RiskLevel,
	})
	if err != nil {
		respondPacError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Operation created successfully",
		"operation": dto.ToPacOperationDTO(*operation),
	})
}

// UpdateOperation applies a sparse patch to a PAC operation.
func (h *PacHandler) UpdateOperation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid operation id")
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateOperationInput{
		OperationType:    patchString(raw, "operation_type"),
		FacilityName:     patchString(raw, "facility_name"),
		FacilityID:       patchString(raw, "facility_id"),
		FacilityAddress:  patchString(raw, "facility_address"),
		Inspector:        patchString(raw, "inspector"),
		Notes:            patchString(raw, "notes"),
		Findings:         patchString(raw, "findings"),
		RiskLevel:        patchString(raw, "risk_level"),
		ComplianceStatus: patchString(raw, "compliance_status"),
	}
	if s := patchString(raw, "status"); s != nil {
		status := models.OperationStatus(*s)
		input.Status = &status
	}
	if p := patchString(raw, "priority"); p != nil {
		priority := models.Priority(*p)
		input.Priority = &priority
	}
	n, err := patchInt(raw, "inspector_id")
	if err != nil || (n != nil && *n < 0) {
		apierrors.BadRequest(c, "Invalid inspector_id")
		return
	}
	if n != nil {
		inspectorID := uint64(*n)
		input.InspectorID = &inspectorID
	}

	operationDate, err := patchTimestamp(raw, "operation_date")
	if err != nil {
		apierrors.BadRequest(c, "Invalid operation_date")
		return
	}
	input.OperationDate = operationDate

	operation, err := h.service.UpdateOperation(id, input)
	if err != nil {
		respondPacError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Operation updated successfully",
		"operation": dto.ToPacOperationDTO(*operation),
	})
}

// DeleteOperation removes an operation and cascades to its samples.
func (h *PacHandler) DeleteOperation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid operation id")
		return
	}

	if err := h.service.DeleteOperation(id); err != nil {
		respondPacError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Operation deleted successfully",
	})
}

// ListSamples returns the samples of an operation.
func (h *PacHandler) ListSamples(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid operation id")
		return
	}

	samples, err := h.service.ListSamples(id)
	if err != nil {
		respondPacError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"samples": dto.ToPacSampleDTOs(samples),
		"total":   len(samples),
	})
}

// CreateSample creates a new sample under an operation.
func (h *PacHandler) CreateSample(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid operation id")
		return
	}

	type CreateSampleRequest struct {
		SampleType        string `json:"sample_type" binding:"required"`
		SampleDescription string `json:"sample_description"`
		SampleLocation    string `json:"sample_location"`
		TestType          string `json:"test_type"`
		LabID             string `json:"lab_id"`
	}

	var req CreateSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	sample, err := h.service.CreateSample(id, services.CreateSampleInput{
		SampleType:        req.SampleType,
		SampleDescription: req.SampleDescription,
		SampleLocation:    req.SampleLocation,
		TestType:          req.TestType,
		LabID:             req.LabID,
	})
	if err != nil {
		respondPacError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Sample created successfully",
		"sample":  dto.ToPacSampleDTO(*sample),
	})
}

// UpdateSample applies a sparse patch to a sample.
func (h *PacHandler) UpdateSample(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid operation id")
		return
	}
	sampleID, ok := parseIDParam(c, "sample_id")
	if !ok {
		apierrors.BadRequest(c, "Invalid sample id")
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateSampleInput{
		SampleType:        patchString(raw, "sample_type"),
		SampleDescription: patchString(raw, "sample_description"),
		SampleLocation:    patchString(raw, "sample_location"),
		TestType:          patchString(raw, "test_type"),
		Results:           patchString(raw, "results"),
		LabID:             patchString(raw, "lab_id"),
	}
	if s := patchString(raw, "status"); s != nil {
		status := models.SampleStatus(*s)
		input.Status = &status
	}

	sample, err := h.service.UpdateSample(id, sampleID, input)
	if err != nil {
		respondPacError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sample updated successfully",
		"sample":  dto.ToPacSampleDTO(*sample),
	})
}

// DeleteSample removes a single sample from an operation.
func (h *PacHandler) DeleteSample(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		apierrors.BadRequest(c, "Invalid operation id")
		return
	}
	sampleID, ok := parseIDParam(c, "sample_id")
	if !ok {
		apierrors.BadRequest(c, "Invalid sample id")
		return
	}

	if err := h.service.DeleteSample(id, sampleID); err != nil {
		respondPacError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sample deleted successfully",
	})
}

// Dashboard returns the PAC aggregation.
func (h *PacHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.service.Dashboard()
	if err != nil {
		respondPacError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"dashboard": dashboard,
	})
}

// GetOperationTypes returns the advisory operation type list. Pure
// constants, no store access.
func (h *PacHandler) GetOperationTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"operation_types": []dto.Option{
			{Value: "inspection", Label: "Inspection"},
			{Value: "sampling", Label: "Sampling"},
			{Value: "audit", Label: "Audit"},
			{Value: "investigation", Label: "Investigation"},
		},
	})
}

// GetStatuses returns the operation status list.
func (h *PacHandler) GetStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"statuses": []dto.Option{
			{Value: "scheduled", Label: "Scheduled"},
			{Value: "in_progress", Label: "In Progress"},
			{Value: "completed", Label: "Completed"},
			{Value: "cancelled", Label: "Cancelled"},
		},
	})
}

// GetPriorities returns the priority list.
func (h *PacHandler) GetPriorities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"priorities": []dto.Option{
			{Value: "low", Label: "Low"},
			{Value: "medium", Label: "Medium"},
			{Value: "high", Label: "High"},
			{Value: "critical", Label: "Critical"},
		},
	})
}

func respondPacError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOperationNotFound):
		apierrors.NotFound(c, "Operation not found")
	case errors.Is(err, services.ErrSampleNotFound):
		apierrors.NotFound(c, "Sample not found")
	case errors.Is(err, services.ErrOperationTypeRequired),
		errors.Is(err, services.ErrFacilityNameRequired),
		errors.Is(err, services.ErrOperationDateRequired),
		errors.Is(err, services.ErrSampleTypeRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
