package models

import "time"

type PacSample struct {
	ID                uint64       `gorm:"primarykey" json:"id"`
	OperationID       uint64       `gorm:"not null;index" json:"operation_id"`
	SampleType        string       `gorm:"type:varchar(100);not null" json:"sample_type"`
	SampleDescription string       `gorm:"type:varchar(200)" json:"sample_description"`
	CollectionDate    *time.Time   `json:"collection_date"`
	SampleLocation    string       `gorm:"type:varchar(200)" json:"sample_location"`
	TestType          string       `gorm:"type:varchar(100)" json:"test_type"`
	Status            SampleStatus `gorm:"type:varchar(50);default:'collected'" json:"status"`
	Results           string       `gorm:"type:text" json:"results"`
	LabID             string       `gorm:"type:varchar(50)" json:"lab_id"`
	CreatedAt         time.Time    `json:"created_at"`

	// Relations
	Operation PacOperation `gorm:"foreignKey:OperationID" json:"-"`
}
