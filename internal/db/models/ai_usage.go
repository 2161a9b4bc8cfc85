package models

import (
	"gorm.io/gorm"
)

// AIUsageMetric records one assistant invocation for quota accounting and
// admin reporting.
type AIUsageMetric struct {
	gorm.Model
	UserID           uint   `json:"-" gorm:"not null;index"`
	ProjectID        uint   `json:"project_id" gorm:"index"`
	Operation        string `json:"operation" gorm:"index"`
	AIModel          string `json:"model" gorm:"column:model"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
}

// TableName overrides the default table name
func (AIUsageMetric) TableName() string {
	return "ai_usage_metrics"
}

// OperationUsage is a typed aggregation row for admin usage reports.
type OperationUsage struct {
	Operation        string `json:"operation"`
	Calls            int64  `json:"calls"`
	PromptTokens     int64  `json:"prompt_tokens"`
	CompletionTokens int64  `json:"completion_tokens"`
}
