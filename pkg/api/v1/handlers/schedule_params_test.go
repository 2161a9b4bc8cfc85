package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleGenerateParams_Validate(t *testing.T) {
	tests := []struct {
		name        string
		params      ScheduleGenerateParams
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid_params_no_start_date",
			params: ScheduleGenerateParams{
				ProjectID: 1,
			},
			expectError: false,
		},
		{
			name: "valid_params_with_start_date",
			params: ScheduleGenerateParams{
				ProjectID: 1,
				StartDate: "2026-03-02",
			},
			expectError: false,
		},
		{
			name:        "missing_project_id",
			params:      ScheduleGenerateParams{},
			expectError: true,
			errorMsg:    strings.ToLower(ErrMsgProjIDRequired),
		},
		{
			name: "malformed_start_date",
			params: ScheduleGenerateParams{
				ProjectID: 1,
				StartDate: "02/03/2026",
			},
			expectError: true,
			errorMsg:    "start date must be in YYYY-MM-DD form",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.expectError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleGenerateParams_Start(t *testing.T) {
	p := ScheduleGenerateParams{ProjectID: 1, StartDate: "2026-03-02"}
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), p.Start())

	// Empty start date falls back to now
	p = ScheduleGenerateParams{ProjectID: 1}
	assert.WithinDuration(t, time.Now().UTC(), p.Start(), time.Minute)
}

func TestScheduleUpdateTaskParams_Validate(t *testing.T) {
	tests := []struct {
		name        string
		params      ScheduleUpdateTaskParams
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid_params",
			params: ScheduleUpdateTaskParams{
				ProjectID: 1,
				TaskID:    "task-2",
				Duration:  ptr(20),
				Status:    ptr("in-progress"),
			},
			expectError: false,
		},
		{
			name: "missing_task_id",
			params: ScheduleUpdateTaskParams{
				ProjectID: 1,
			},
			expectError: true,
			errorMsg:    strings.ToLower(ErrMsgSchedTaskIDRequired),
		},
		{
			name: "zero_duration",
			params: ScheduleUpdateTaskParams{
				ProjectID: 1,
				TaskID:    "task-2",
				Duration:  ptr(0),
			},
			expectError: true,
			errorMsg:    "duration must be positive",
		},
		{
			name: "malformed_start_date",
			params: ScheduleUpdateTaskParams{
				ProjectID: 1,
				TaskID:    "task-2",
				StartDate: ptr("March 2nd"),
			},
			expectError: true,
			errorMsg:    "start date must be in YYYY-MM-DD form",
		},
		{
			name: "invalid_status",
			params: ScheduleUpdateTaskParams{
				ProjectID: 1,
				TaskID:    "task-2",
				Status:    ptr("paused"),
			},
			expectError: true,
			errorMsg:    "invalid task status: paused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.expectError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleAddTaskParams_Validate(t *testing.T) {
	tests := []struct {
		name        string
		params      ScheduleAddTaskParams
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid_params",
			params: ScheduleAddTaskParams{
				ProjectID: 1,
				Name:      "Paisagismo",
				Category:  "acabamento",
				Duration:  10,
				Cost:      8000,
			},
			expectError: false,
		},
		{
			name: "missing_name",
			params: ScheduleAddTaskParams{
				ProjectID: 1,
				Duration:  10,
			},
			expectError: true,
			errorMsg:    "task name is required",
		},
		{
			name: "zero_duration",
			params: ScheduleAddTaskParams{
				ProjectID: 1,
				Name:      "Paisagismo",
			},
			expectError: true,
			errorMsg:    "duration must be positive",
		},
		{
			name: "negative_cost",
			params: ScheduleAddTaskParams{
				ProjectID: 1,
				Name:      "Paisagismo",
				Duration:  10,
				Cost:      -1,
			},
			expectError: true,
			errorMsg:    "cost must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.expectError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
