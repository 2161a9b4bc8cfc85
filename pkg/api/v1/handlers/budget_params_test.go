package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestBudgetUpdateItemParams_Validate(t *testing.T) {
	tests := []struct {
		name        string
		params      BudgetUpdateItemParams
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid_params_no_optional_fields",
			params: BudgetUpdateItemParams{
				ProjectID: 1,
				ItemID:    "item-3",
			},
			expectError: false,
		},
		{
			name: "valid_params_with_patch_fields",
			params: BudgetUpdateItemParams{
				ProjectID: 1,
				ItemID:    "item-3",
				Material:  ptr("Porcelanato"),
				Quantity:  ptr(80.0),
				UnitPrice: ptr(95.5),
			},
			expectError: false,
		},
		{
			name: "missing_project_id",
			params: BudgetUpdateItemParams{
				ItemID: "item-3",
			},
			expectError: true,
			errorMsg:    strings.ToLower(ErrMsgProjIDRequired),
		},
		{
			name: "missing_item_id",
			params: BudgetUpdateItemParams{
				ProjectID: 1,
			},
			expectError: true,
			errorMsg:    strings.ToLower(ErrMsgBudgItemIDRequired),
		},
		{
			name: "negative_quantity",
			params: BudgetUpdateItemParams{
				ProjectID: 1,
				ItemID:    "item-3",
				Quantity:  ptr(-1.0),
			},
			expectError: true,
			errorMsg:    "quantity must not be negative",
		},
		{
			name: "negative_unit_price",
			params: BudgetUpdateItemParams{
				ProjectID: 1,
				ItemID:    "item-3",
				UnitPrice: ptr(-0.5),
			},
			expectError: true,
			errorMsg:    "unit price must not be negative",
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

func TestBudgetAddItemParams_Validate(t *testing.T) {
	tests := []struct {
		name        string
		params      BudgetAddItemParams
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid_params",
			params: BudgetAddItemParams{
				ProjectID: 1,
				Material:  "Argamassa",
				Quantity:  24,
				Unit:      "saco",
				UnitPrice: 32.9,
			},
			expectError: false,
		},
		{
			name: "missing_project_id",
			params: BudgetAddItemParams{
				Material: "Argamassa",
			},
			expectError: true,
			errorMsg:    strings.ToLower(ErrMsgProjIDRequired),
		},
		{
			name: "missing_material",
			params: BudgetAddItemParams{
				ProjectID: 1,
				Quantity:  24,
			},
			expectError: true,
			errorMsg:    "material is required",
		},
		{
			name: "negative_quantity",
			params: BudgetAddItemParams{
				ProjectID: 1,
				Material:  "Argamassa",
				Quantity:  -24,
			},
			expectError: true,
			errorMsg:    "quantity must not be negative",
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
