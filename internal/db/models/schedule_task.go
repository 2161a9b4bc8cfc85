package models

import (
	"time"

	"gorm.io/gorm"
)

// ScheduleTask is a persisted schedule phase for a project. TaskID is the
// estimator's synthetic ID; DependsOn holds the predecessor's TaskID (the
// chain is strictly linear).
type ScheduleTask struct {
	gorm.Model
	ProjectID uint      `json:"-" gorm:"not null;index"`
	TaskID    string    `json:"id" gorm:"not null;index"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Color     string    `json:"color"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Duration  int       `json:"duration"`
	DependsOn string    `json:"depends_on"`
	Cost      float64   `json:"cost"`
	Status    string    `json:"status" gorm:"default:planned"`
	Position  int       `json:"position"`
}

// TableName overrides the default table name
func (ScheduleTask) TableName() string {
	return "project_schedule_tasks"
}
