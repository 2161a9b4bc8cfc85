package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/madenai/arqflow/internal/db/models"
)

// AlertRepository handles database operations for admin alerts
type AlertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new instance of AlertRepository
func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{
		db: db,
	}
}

// Create records a new alert
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

// List retrieves alerts with pagination, unacknowledged first
func (r *AlertRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.Alert, error) {
	var alerts []models.Alert
	query := r.db.WithContext(ctx)
	if opts != nil {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	err := query.Order("acknowledged, id desc").Find(&alerts).Error
	return alerts, err
}

// Acknowledge marks an alert as handled
func (r *AlertRepository) Acknowledge(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Alert{}).
		Where("id = ?", id).Update("acknowledged", true).Error
}
