// Package handlers provides HTTP request handling
package handlers

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for schedule dates.
const dateLayout = "2006-01-02"

// ScheduleGenerateParams defines the parameters for generating a schedule
type ScheduleGenerateParams struct {
	ProjectID uint `json:"project_id"`
	// StartDate is the chain start in YYYY-MM-DD form. Empty means today.
	StartDate string `json:"start_date,omitempty"`
}

// Validate validates the parameters for generating a schedule
func (p ScheduleGenerateParams) Validate() error {
	if p.ProjectID == 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgProjIDRequired))
	}
	if p.StartDate != "" {
		if _, err := time.Parse(dateLayout, p.StartDate); err != nil {
			return fmt.Errorf("start date must be in YYYY-MM-DD form")
		}
	}
	return nil
}

// Start resolves the chain start date, defaulting to the current day.
func (p ScheduleGenerateParams) Start() time.Time {
	if p.StartDate == "" {
		return time.Now().UTC()
	}
	start, _ := time.Parse(dateLayout, p.StartDate)
	return start
}

// ScheduleGetParams defines the parameters for retrieving a schedule
type ScheduleGetParams struct {
	ProjectID uint `json:"project_id"`
}

// Validate validates the parameters for retrieving a schedule
func (p ScheduleGetParams) Validate() error {
	if p.ProjectID == 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgProjIDRequired))
	}
	return nil
}

// ScheduleUpdateTaskParams defines the parameters for editing a schedule
// task. Nil fields are left untouched. Duration and start-date edits shift
// every downstream phase.
type ScheduleUpdateTaskParams struct {
	ProjectID uint     `json:"project_id"`
	TaskID    string   `json:"task_id"`
	Name      *string  `json:"name,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Color     *string  `json:"color,omitempty"`
	StartDate *string  `json:"start_date,omitempty"`
	Duration  *int     `json:"duration,omitempty"`
	Cost      *float64 `json:"cost,omitempty"`
	Status    *string  `json:"status,omitempty"`
}

// Validate validates the parameters for editing a schedule task
func (p ScheduleUpdateTaskParams) Validate() error {
	if p.ProjectID == 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgProjIDRequired))
	}
	if p.TaskID == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgSchedTaskIDRequired))
	}
	if p.Duration != nil && *p.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if p.StartDate != nil {
		if _, err := time.Parse(dateLayout, *p.StartDate); err != nil {
			return fmt.Errorf("start date must be in YYYY-MM-DD form")
		}
	}
	if p.Status != nil {
		switch *p.Status {
		case "planned", "in-progress", "completed":
		default:
			return fmt.Errorf("invalid task status: %s", *p.Status)
		}
	}
	return nil
}

// ScheduleAddTaskParams defines the parameters for appending a schedule task
type ScheduleAddTaskParams struct {
	ProjectID uint    `json:"project_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category,omitempty"`
	Color     string  `json:"color,omitempty"`
	Duration  int     `json:"duration"`
	Cost      float64 `json:"cost,omitempty"`
}

// Validate validates the parameters for appending a schedule task
func (p ScheduleAddTaskParams) Validate() error {
	if p.ProjectID == 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgProjIDRequired))
	}
	if p.Name == "" {
		return fmt.Errorf("task name is required")
	}
	if p.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if p.Cost < 0 {
		return fmt.Errorf("cost must not be negative")
	}
	return nil
}
