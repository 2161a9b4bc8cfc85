package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/madenai/arqflow/internal/db/models"
)

// BudgetItemRepository handles database operations for budget line items
type BudgetItemRepository struct {
	db *gorm.DB
}

// NewBudgetItemRepository creates a new instance of BudgetItemRepository
func NewBudgetItemRepository(db *gorm.DB) *BudgetItemRepository {
	return &BudgetItemRepository{
		db: db,
	}
}

// ListByProject retrieves all budget items for a project in template order
func (r *BudgetItemRepository) ListByProject(ctx context.Context, projectID uint) ([]models.BudgetItem, error) {
	var items []models.BudgetItem
	err := r.db.WithContext(ctx).
		Where(models.BudgetItem{ProjectID: projectID}).
		Order("position").Find(&items).Error
	return items, err
}

// Replace deletes a project's budget items and inserts the given set in one
// transaction. Regeneration is wholesale by design.
func (r *BudgetItemRepository) Replace(ctx context.Context, projectID uint, items []models.BudgetItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("project_id = ?", projectID).
			Delete(&models.BudgetItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

// Update persists changes to an existing budget item
func (r *BudgetItemRepository) Update(ctx context.Context, item *models.BudgetItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Create inserts a single budget item
func (r *BudgetItemRepository) Create(ctx context.Context, item *models.BudgetItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// DeleteByItemID removes one budget line by its synthetic item ID
func (r *BudgetItemRepository) DeleteByItemID(ctx context.Context, projectID uint, itemID string) error {
	return r.db.WithContext(ctx).
		Where("project_id = ? AND item_id = ?", projectID, itemID).
		Delete(&models.BudgetItem{}).Error
}
