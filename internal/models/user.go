package models

import "time"

type User struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	Username     string     `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(128)" json:"-"`
	FullName     string     `gorm:"type:varchar(100);not null" json:"full_name"`
	Role         string     `gorm:"type:varchar(50);not null;default:'user'" json:"role"`
	Department   string     `gorm:"type:varchar(100)" json:"department"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`

	// Relations
	Operations []PacOperation `gorm:"foreignKey:InspectorID" json:"-"`
	Workplans  []Workplan     `gorm:"foreignKey:CreatedBy" json:"-"`
}
