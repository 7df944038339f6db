package models

import "time"

type Workplan struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Status      WorkplanStatus `gorm:"type:varchar(50);not null;default:'planned'" json:"status"`
	Priority    Priority       `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	StartDate   *time.Time     `gorm:"type:date" json:"start_date"`
	EndDate     *time.Time     `gorm:"type:date" json:"end_date"`
	AssignedTo  string         `gorm:"type:varchar(100)" json:"assigned_to"`
	Progress    int            `gorm:"default:0" json:"progress"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	CreatedBy   *uint64        `json:"created_by"`

	// Relations
	Tasks []WorkplanTask `gorm:"foreignKey:WorkplanID" json:"tasks,omitempty"`
}
