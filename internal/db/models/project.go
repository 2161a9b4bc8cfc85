package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectStatus tracks the processing state of an uploaded project.
type ProjectStatus string

// Project statuses.
const (
	ProjectStatusUploaded   ProjectStatus = "uploaded"
	ProjectStatusProcessing ProjectStatus = "processing"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusFailed     ProjectStatus = "failed"
)

// Project is an uploaded architectural project. TotalArea and ProjectType
// feed the estimator; everything else is identity and display.
type Project struct {
	gorm.Model
	OwnerID       uint           `json:"-" gorm:"not null;index"`
	Name          string         `json:"name" gorm:"not null;index"`
	Description   string         `json:"description" gorm:"type:text"`
	ProjectType   string         `json:"project_type"`
	TotalArea     float64        `json:"total_area"`
	FileURL       string         `json:"file_url"`
	Status        ProjectStatus  `json:"status" gorm:"default:uploaded"`
	BudgetItems   []BudgetItem   `json:"budget_items,omitempty" gorm:"foreignKey:ProjectID"`
	ScheduleTasks []ScheduleTask `json:"schedule_tasks,omitempty" gorm:"foreignKey:ProjectID"`
	CreatedAt     time.Time      `json:"created_at" gorm:"index"`
}
