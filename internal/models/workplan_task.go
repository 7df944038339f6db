package models

import "time"

type WorkplanTask struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	WorkplanID  uint64     `gorm:"not null;index" json:"workplan_id"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	Priority    Priority   `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	DueDate     *time.Time `gorm:"type:date" json:"due_date"`
	AssignedTo  string     `gorm:"type:varchar(100)" json:"assigned_to"`
	Progress    int        `gorm:"default:0" json:"progress"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// Relations
	Workplan Workplan `gorm:"foreignKey:WorkplanID" json:"-"`
}
