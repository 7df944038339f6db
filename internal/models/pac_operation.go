package models

import "time"

type PacOperation struct {
	ID               uint64          `gorm:"primarykey" json:"id"`
	OperationType    string          `gorm:"type:varchar(50);not null" json:"operation_type"`
	FacilityName     string          `gorm:"type:varchar(200);not null" json:"facility_name"`
	FacilityID       string          `gorm:"type:varchar(50)" json:"facility_id"`
	FacilityAddress  string          `gorm:"type:text" json:"facility_address"`
	OperationDate    time.Time       `gorm:"not null" json:"operation_date"`
	Status           OperationStatus `gorm:"type:varchar(50);not null;default:'scheduled'" json:"status"`
	Priority         Priority        `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	Inspector        string          `gorm:"type:varchar(100)" json:"inspector"`
	InspectorID      *uint64         `json:"inspector_id"`
	Notes            string          `gorm:"type:text" json:"notes"`
	Findings         string          `gorm:"type:text" json:"findings"`
	RiskLevel        string          `gorm:"type:varchar(20);default:'low'" json:"risk_level"`
	ComplianceStatus string          `gorm:"type:varchar(50);default:'pending'" json:"compliance_status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	CompletedAt      *time.Time      `json:"completed_at"`

	// Relations
	Samples []PacSample `gorm:"foreignKey:OperationID" json:"samples,omitempty"`
}
