// Package handlers provides HTTP request handling
package handlers

import (
	"fmt"
	"strings"
)

// BudgetGenerateParams defines the parameters for generating a budget
type BudgetGenerateParams struct {
	ProjectID uint `json:"project_id"`
}

// Validate validates the parameters for generating a budget
func (p BudgetGenerateParams) Validate() error {
	if p.ProjectID == 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgProjIDRequired))
	}
	return nil
}

// BudgetGetParams defines the parameters for retrieving a budget
type BudgetGetParams struct {
	ProjectID uint `json:"project_id"`
}

// Validate validates the parameters for retrieving a budget
func (p BudgetGetParams) Validate() error {
	if p.ProjectID == 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgProjIDRequired))
	}
	return nil
}

// BudgetUpdateItemParams defines the parameters for editing a budget item.
// Nil fields are left untouched; totals are always recomputed server-side.
type BudgetUpdateItemParams struct {
	ProjectID   uint     `json:"project_id"`
	ItemID      string   `json:"item_id"`
	Environment *string  `json:"environment,omitempty"`
	Material    *string  `json:"material,omitempty"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	UnitPrice   *float64 `json:"unit_price,omitempty"`
}

// Validate validates the parameters for editing a budget item
func (p BudgetUpdateItemParams) Validate() error {
	if p.ProjectID == 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgProjIDRequired))
	}
	if p.ItemID == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgBudgItemIDRequired))
	}
	if p.Quantity != nil && *p.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	if p.UnitPrice != nil && *p.UnitPrice < 0 {
		return fmt.Errorf("unit price must not be negative")
	}
	return nil
}

// BudgetAddItemParams defines the parameters for appending a budget item
type BudgetAddItemParams struct {
	ProjectID   uint    `json:"project_id"`
	Environment string  `json:"environment"`
	Material    string  `json:"material"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
	UnitPrice   float64 `json:"unit_price"`
}

// Validate validates the parameters for appending a budget item
func (p BudgetAddItemParams) Validate() error {
	if p.ProjectID == 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgProjIDRequired))
	}
	if p.Material == "" {
		return fmt.Errorf("material is required")
	}
	if p.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	if p.UnitPrice < 0 {
		return fmt.Errorf("unit price must not be negative")
	}
	return nil
}

// BudgetRemoveItemParams defines the parameters for removing a budget item
type BudgetRemoveItemParams struct {
	ProjectID uint   `json:"project_id"`
	ItemID    string `json:"item_id"`
}

// Validate validates the parameters for removing a budget item
func (p BudgetRemoveItemParams) Validate() error {
	if p.ProjectID == 0 {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgProjIDRequired))
	}
	if p.ItemID == "" {
		return fmt.Errorf("%s", strings.ToLower(ErrMsgBudgItemIDRequired))
	}
	return nil
}
