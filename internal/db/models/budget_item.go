package models

import (
	"gorm.io/gorm"
)

// BudgetItem is a persisted budget line for a project. ItemID is the
// estimator's synthetic ID; regeneration replaces all rows wholesale, so the
// IDs are only stable within one generation pass.
type BudgetItem struct {
	gorm.Model
	ProjectID   uint    `json:"-" gorm:"not null;index"`
	ItemID      string  `json:"id" gorm:"not null;index"`
	Environment string  `json:"environment"`
	Material    string  `json:"material"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	Position    int     `json:"position"`
}

// TableName overrides the default table name
func (BudgetItem) TableName() string {
	return "project_budget_items"
}
