package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/madenai/arqflow/internal/db/models"
)

// AIUsageRepository handles database operations for assistant usage metrics
type AIUsageRepository struct {
	db *gorm.DB
}

// NewAIUsageRepository creates a new instance of AIUsageRepository
func NewAIUsageRepository(db *gorm.DB) *AIUsageRepository {
	return &AIUsageRepository{
		db: db,
	}
}

// Create records one assistant invocation
func (r *AIUsageRepository) Create(ctx context.Context, metric *models.AIUsageMetric) error {
	return r.db.WithContext(ctx).Create(metric).Error
}

// CountByUser returns the number of recorded invocations for a user
func (r *AIUsageRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AIUsageMetric{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// UsageByOperation aggregates token counts per operation across all users
func (r *AIUsageRepository) UsageByOperation(ctx context.Context) ([]models.OperationUsage, error) {
	var rows []models.OperationUsage
	err := r.db.WithContext(ctx).Model(&models.AIUsageMetric{}).
		Select("operation, COUNT(*) as calls, COALESCE(SUM(prompt_tokens), 0) as prompt_tokens, COALESCE(SUM(completion_tokens), 0) as completion_tokens").
		Group("operation").Order("operation").Scan(&rows).Error
	return rows, err
}
