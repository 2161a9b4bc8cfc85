package services

import (
	"context"
	"errors"

	"github.com/madenai/arqflow/internal/db/models"
	"github.com/madenai/arqflow/internal/db/repos"
	"github.com/madenai/arqflow/internal/estimator"
	"github.com/madenai/arqflow/internal/external"
	"github.com/madenai/arqflow/internal/logger"
)

// Budget service errors
var (
	ErrBudgetNotGenerated  = errors.New("budget not generated for project")
	ErrBudgetItemNotFound  = errors.New("budget item not found")
	ErrBudgetPersistFailed = errors.New("failed to persist budget")
)

// Budget provides business logic for budget generation and editing. The
// estimator owns the arithmetic; this service owns persistence and ownership
// checks. Every edit round-trips through the estimator so totals are always
// re-derived, never trusted as stored.
type Budget struct {
	projects *repos.ProjectRepository
	items    *repos.BudgetItemRepository
	webhook  *external.WebhookClient
}

// NewBudgetService creates a new budget service instance.
func NewBudgetService(
	projects *repos.ProjectRepository,
	items *repos.BudgetItemRepository,
	webhook *external.WebhookClient,
) *Budget {
	return &Budget{
		projects: projects,
		items:    items,
		webhook:  webhook,
	}
}

// Generate derives a fresh budget from the project's area and type and
// replaces any previously stored items. Regeneration issues new item IDs.
func (s *Budget) Generate(ctx context.Context, ownerID uint, projectID uint) (*estimator.Budget, error) {
	project, err := s.projects.Get(ctx, ownerID, projectID)
	if err != nil {
		return nil, errors.Join(ErrProjectNotFound, err)
	}

	budget := estimator.GenerateBudget(estimator.ProjectInput{
		TotalArea:   project.TotalArea,
		ProjectType: project.ProjectType,
	})

	if err := s.items.Replace(ctx, project.ID, budgetRows(project.ID, budget)); err != nil {
		return nil, errors.Join(ErrBudgetPersistFailed, err)
	}
	if err := s.projects.UpdateStatus(ctx, project.ID, models.ProjectStatusCompleted); err != nil {
		logger.Warnf("failed to mark project %d completed: %v", project.ID, err)
	}

	if s.webhook != nil {
		go func() {
			event := external.WebhookEvent{
				Event:     external.EventBudgetGenerated,
				UserID:    ownerID,
				ProjectID: project.ID,
				Payload: map[string]interface{}{
					"grand_total": budget.GrandTotal,
				},
			}
			if err := s.webhook.Send(context.Background(), event); err != nil {
				logger.Warnf("webhook delivery failed for %s: %v", event.Event, err)
			}
		}()
	}
	return budget, nil
}

// Get loads the stored budget, re-deriving all aggregates from the rows.
func (s *Budget) Get(ctx context.Context, ownerID uint, projectID uint) (*estimator.Budget, error) {
	project, err := s.projects.Get(ctx, ownerID, projectID)
	if err != nil {
		return nil, errors.Join(ErrProjectNotFound, err)
	}

	rows, err := s.items.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrBudgetNotGenerated
	}
	return budgetFromRows(rows), nil
}

// UpdateItem applies a partial edit to one item and rewrites the stored
// budget with recomputed totals.
func (s *Budget) UpdateItem(ctx context.Context, ownerID uint, projectID uint, itemID string, patch estimator.BudgetItemPatch) (*estimator.Budget, error) {
	budget, err := s.Get(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	if !budget.UpdateItem(itemID, patch) {
		return nil, ErrBudgetItemNotFound
	}
	if err := s.items.Replace(ctx, projectID, budgetRows(projectID, budget)); err != nil {
		return nil, errors.Join(ErrBudgetPersistFailed, err)
	}
	return budget, nil
}

// AddItem appends a user-defined item and rewrites the stored budget.
func (s *Budget) AddItem(ctx context.Context, ownerID uint, projectID uint, item estimator.BudgetItem) (*estimator.Budget, error) {
	budget, err := s.Get(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	budget.AddItem(item)
	if err := s.items.Replace(ctx, projectID, budgetRows(projectID, budget)); err != nil {
		return nil, errors.Join(ErrBudgetPersistFailed, err)
	}
	return budget, nil
}

// RemoveItem deletes one item and rewrites the stored budget.
func (s *Budget) RemoveItem(ctx context.Context, ownerID uint, projectID uint, itemID string) (*estimator.Budget, error) {
	budget, err := s.Get(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	if !budget.RemoveItem(itemID) {
		return nil, ErrBudgetItemNotFound
	}
	if err := s.items.Replace(ctx, projectID, budgetRows(projectID, budget)); err != nil {
		return nil, errors.Join(ErrBudgetPersistFailed, err)
	}
	return budget, nil
}

// budgetRows maps a derived budget onto persistence rows, keeping the item
// order in Position.
func budgetRows(projectID uint, b *estimator.Budget) []models.BudgetItem {
	rows := make([]models.BudgetItem, len(b.Items))
	for i, item := range b.Items {
		rows[i] = models.BudgetItem{
			ProjectID:   projectID,
			ItemID:      item.ID,
			Environment: item.Environment,
			Material:    item.Material,
			Quantity:    item.Quantity,
			Unit:        string(item.Unit),
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
			Position:    i,
		}
	}
	return rows
}

// budgetFromRows rebuilds the estimator's budget from stored rows and
// recomputes every total.
func budgetFromRows(rows []models.BudgetItem) *estimator.Budget {
	items := make([]estimator.BudgetItem, len(rows))
	for i, row := range rows {
		items[i] = estimator.BudgetItem{
			ID:          row.ItemID,
			Environment: row.Environment,
			Material:    row.Material,
			Quantity:    row.Quantity,
			Unit:        estimator.Unit(row.Unit),
			UnitPrice:   row.UnitPrice,
		}
	}
	b := &estimator.Budget{Items: items}
	b.Recompute()
	return b
}
