package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madenai/arqflow/pkg/api/v1/handlers"
)

// Flag names
const (
	flagProjectID   = "project-id"
	flagItemID      = "item-id"
	flagEnvironment = "environment"
	flagMaterial    = "material"
	flagQuantity    = "quantity"
	flagUnit        = "unit"
	flagUnitPrice   = "unit-price"
)

// GetBudgetsCmd returns the budgets command group
func GetBudgetsCmd() *cobra.Command {
	return budgetsCmd
}

func init() {
	budgetsCmd.AddCommand(generateBudgetCmd)
	budgetsCmd.AddCommand(getBudgetCmd)
	budgetsCmd.AddCommand(updateBudgetItemCmd)
	budgetsCmd.AddCommand(addBudgetItemCmd)
	budgetsCmd.AddCommand(removeBudgetItemCmd)

	for _, cmd := range []*cobra.Command{generateBudgetCmd, getBudgetCmd, updateBudgetItemCmd, addBudgetItemCmd, removeBudgetItemCmd} {
		cmd.Flags().UintP(flagProjectID, "i", 0, "Project ID")
		if err := cmd.MarkFlagRequired(flagProjectID); err != nil {
			panic(fmt.Errorf("failed to mark project-id flag as required for budget command: %w", err))
		}
	}

	// Add flags for update-item
	updateBudgetItemCmd.Flags().String(flagItemID, "", "Budget item ID")
	updateBudgetItemCmd.Flags().Float64(flagQuantity, -1, "New quantity")
	updateBudgetItemCmd.Flags().Float64(flagUnitPrice, -1, "New unit price")
	updateBudgetItemCmd.Flags().String(flagMaterial, "", "New material description")
	if err := updateBudgetItemCmd.MarkFlagRequired(flagItemID); err != nil {
		panic(fmt.Errorf("failed to mark item-id flag as required for update budget item command: %w", err))
	}

	// Add flags for add-item
	addBudgetItemCmd.Flags().String(flagEnvironment, "", "Item environment (e.g. Acabamentos)")
	addBudgetItemCmd.Flags().String(flagMaterial, "", "Item material description")
	addBudgetItemCmd.Flags().Float64(flagQuantity, 0, "Item quantity")
	addBudgetItemCmd.Flags().String(flagUnit, "", "Item unit (m², m³, m, un, kg, ton)")
	addBudgetItemCmd.Flags().Float64(flagUnitPrice, 0, "Item unit price")
	if err := addBudgetItemCmd.MarkFlagRequired(flagMaterial); err != nil {
		panic(fmt.Errorf("failed to mark material flag as required for add budget item command: %w", err))
	}

	// Add flags for remove-item
	removeBudgetItemCmd.Flags().String(flagItemID, "", "Budget item ID")
	if err := removeBudgetItemCmd.MarkFlagRequired(flagItemID); err != nil {
		panic(fmt.Errorf("failed to mark item-id flag as required for remove budget item command: %w", err))
	}
}

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Manage project budgets",
}

var generateBudgetCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a budget from the project's area and type",
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectID, err := cmd.Flags().GetUint(flagProjectID)
		if err != nil {
			return fmt.Errorf("error getting project-id flag: %w", err)
		}

		budget, err := apiClient.GenerateBudget(context.Background(), handlers.BudgetGenerateParams{ProjectID: projectID})
		if err != nil {
			return fmt.Errorf("error generating budget: %w", err)
		}

		return printJSON(budget)
	},
}

var getBudgetCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a project's budget",
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectID, err := cmd.Flags().GetUint(flagProjectID)
		if err != nil {
			return fmt.Errorf("error getting project-id flag: %w", err)
		}

		budget, err := apiClient.GetBudget(context.Background(), handlers.BudgetGetParams{ProjectID: projectID})
		if err != nil {
			return fmt.Errorf("error getting budget: %w", err)
		}

		return printJSON(budget)
	},
}

var updateBudgetItemCmd = &cobra.Command{
	Use:   "update-item",
	Short: "Edit one budget line; totals are recomputed server-side",
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectID, err := cmd.Flags().GetUint(flagProjectID)
		if err != nil {
			return fmt.Errorf("error getting project-id flag: %w", err)
		}
		itemID, err := cmd.Flags().GetString(flagItemID)
		if err != nil {
			return fmt.Errorf("error getting item-id flag: %w", err)
		}

		params := handlers.BudgetUpdateItemParams{
			ProjectID: projectID,
			ItemID:    itemID,
		}
		if cmd.Flags().Changed(flagQuantity) {
			quantity, err := cmd.Flags().GetFloat64(flagQuantity)
			if err != nil {
				return fmt.Errorf("error getting quantity flag: %w", err)
			}
			params.Quantity = &quantity
		}
		if cmd.Flags().Changed(flagUnitPrice) {
			unitPrice, err := cmd.Flags().GetFloat64(flagUnitPrice)
			if err != nil {
				return fmt.Errorf("error getting unit-price flag: %w", err)
			}
			params.UnitPrice = &unitPrice
		}
		if cmd.Flags().Changed(flagMaterial) {
			material, err := cmd.Flags().GetString(flagMaterial)
			if err != nil {
				return fmt.Errorf("error getting material flag: %w", err)
			}
			params.Material = &material
		}

		budget, err := apiClient.UpdateBudgetItem(context.Background(), params)
		if err != nil {
			return fmt.Errorf("error updating budget item: %w", err)
		}

		return printJSON(budget)
	},
}

var addBudgetItemCmd = &cobra.Command{
	Use:   "add-item",
	Short: "Append a user-defined budget line",
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectID, err := cmd.Flags().GetUint(flagProjectID)
		if err != nil {
			return fmt.Errorf("error getting project-id flag: %w", err)
		}
		environment, err := cmd.Flags().GetString(flagEnvironment)
		if err != nil {
			return fmt.Errorf("error getting environment flag: %w", err)
		}
		material, err := cmd.Flags().GetString(flagMaterial)
		if err != nil {
			return fmt.Errorf("error getting material flag: %w", err)
		}
		quantity, err := cmd.Flags().GetFloat64(flagQuantity)
		if err != nil {
			return fmt.Errorf("error getting quantity flag: %w", err)
		}
		unit, err := cmd.Flags().GetString(flagUnit)
		if err != nil {
			return fmt.Errorf("error getting unit flag: %w", err)
		}
		unitPrice, err := cmd.Flags().GetFloat64(flagUnitPrice)
		if err != nil {
			return fmt.Errorf("error getting unit-price flag: %w", err)
		}

		budget, err := apiClient.AddBudgetItem(context.Background(), handlers.BudgetAddItemParams{
			ProjectID:   projectID,
			Environment: environment,
			Material:    material,
			Quantity:    quantity,
			Unit:        unit,
			UnitPrice:   unitPrice,
		})
		if err != nil {
			return fmt.Errorf("error adding budget item: %w", err)
		}

		return printJSON(budget)
	},
}

var removeBudgetItemCmd = &cobra.Command{
	Use:   "remove-item",
	Short: "Remove a budget line",
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectID, err := cmd.Flags().GetUint(flagProjectID)
		if err != nil {
			return fmt.Errorf("error getting project-id flag: %w", err)
		}
		itemID, err := cmd.Flags().GetString(flagItemID)
		if err != nil {
			return fmt.Errorf("error getting item-id flag: %w", err)
		}

		budget, err := apiClient.RemoveBudgetItem(context.Background(), handlers.BudgetRemoveItemParams{
			ProjectID: projectID,
			ItemID:    itemID,
		})
		if err != nil {
			return fmt.Errorf("error removing budget item: %w", err)
		}

		return printJSON(budget)
	},
}
