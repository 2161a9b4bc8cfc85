package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/madenai/arqflow/internal/db/models"
)

// SubscriptionRepository handles database operations for subscriptions
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new instance of SubscriptionRepository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{
		db: db,
	}
}

// GetByUser retrieves a user's subscription, creating the default free plan
// on first access.
func (r *SubscriptionRepository) GetByUser(ctx context.Context, userID uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.WithContext(ctx).Where(models.Subscription{UserID: userID}).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sub = models.Subscription{
			UserID:  userID,
			Plan:    models.PlanFree,
			Status:  models.SubscriptionActive,
			AIQuota: 20,
		}
		if err := r.db.WithContext(ctx).Create(&sub).Error; err != nil {
			return nil, err
		}
		return &sub, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Update persists changes to an existing subscription
func (r *SubscriptionRepository) Update(ctx context.Context, sub *models.Subscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

// CountByPlan returns the number of subscriptions per plan
func (r *SubscriptionRepository) CountByPlan(ctx context.Context) (map[models.SubscriptionPlan]int64, error) {
	type planCount struct {
		Plan  models.SubscriptionPlan
		Count int64
	}
	var rows []planCount
	err := r.db.WithContext(ctx).Model(&models.Subscription{}).
		Select("plan, COUNT(*) as count").Group("plan").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[models.SubscriptionPlan]int64, len(rows))
	for _, row := range rows {
		counts[row.Plan] = row.Count
	}
	return counts, nil
}
