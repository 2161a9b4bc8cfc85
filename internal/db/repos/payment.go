package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/madenai/arqflow/internal/db/models"
)

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new instance of PaymentRepository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
	}
}

// Create records a new payment attempt
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// Update persists changes to an existing payment
func (r *PaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Get retrieves a payment by ID, scoped to its user
func (r *PaymentRepository) Get(ctx context.Context, userID uint, id uint) (*models.Payment, error) {
	var payment models.Payment
	query := r.db.WithContext(ctx).Where(models.Payment{UserID: userID})
	if err := query.First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListByUser retrieves all payments for a user with pagination
func (r *PaymentRepository) ListByUser(ctx context.Context, userID uint, opts *models.ListOptions) ([]models.Payment, error) {
	var payments []models.Payment
	query := r.db.WithContext(ctx).Where(models.Payment{UserID: userID})
	if opts != nil {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	err := query.Order("id desc").Find(&payments).Error
	return payments, err
}

// SumApproved returns the total approved revenue across all users
func (r *PaymentRepository) SumApproved(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("status = ?", models.PaymentStatusAprovado).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}
