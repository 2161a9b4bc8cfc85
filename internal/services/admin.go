package services

import (
	"context"

	"github.com/madenai/arqflow/internal/db/models"
	"github.com/madenai/arqflow/internal/db/repos"
)

// AdminMetrics is the aggregate snapshot shown on the admin panel.
type AdminMetrics struct {
	TotalUsers      int64                             `json:"total_users"`
	TotalProjects   int64                             `json:"total_projects"`
	ApprovedRevenue float64                           `json:"approved_revenue"`
	PlanCounts      map[models.SubscriptionPlan]int64 `json:"plan_counts"`
	Usage           []models.OperationUsage           `json:"usage"`
}

// Admin provides the aggregation and alerting behind the admin panel.
type Admin struct {
	users    *repos.UserRepository
	projects *repos.ProjectRepository
	payments *repos.PaymentRepository
	subs     *repos.SubscriptionRepository
	usage    *repos.AIUsageRepository
	alerts   *repos.AlertRepository
}

// NewAdminService creates a new admin service instance.
func NewAdminService(
	users *repos.UserRepository,
	projects *repos.ProjectRepository,
	payments *repos.PaymentRepository,
	subs *repos.SubscriptionRepository,
	usage *repos.AIUsageRepository,
	alerts *repos.AlertRepository,
) *Admin {
	return &Admin{
		users:    users,
		projects: projects,
		payments: payments,
		subs:     subs,
		usage:    usage,
		alerts:   alerts,
	}
}

// Metrics assembles the admin dashboard snapshot.
func (s *Admin) Metrics(ctx context.Context) (*AdminMetrics, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	projectCount, err := s.projects.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.payments.SumApproved(ctx)
	if err != nil {
		return nil, err
	}
	planCounts, err := s.subs.CountByPlan(ctx)
	if err != nil {
		return nil, err
	}
	usage, err := s.usage.UsageByOperation(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminMetrics{
		TotalUsers:      userCount,
		TotalProjects:   projectCount,
		ApprovedRevenue: revenue,
		PlanCounts:      planCounts,
		Usage:           usage,
	}, nil
}

// UsageReport aggregates assistant token usage per operation.
func (s *Admin) UsageReport(ctx context.Context) ([]models.OperationUsage, error) {
	return s.usage.UsageByOperation(ctx)
}

// CreateAlert records an operational alert.
func (s *Admin) CreateAlert(ctx context.Context, alert *models.Alert) error {
	return s.alerts.Create(ctx, alert)
}

// ListAlerts retrieves alerts, unacknowledged first.
func (s *Admin) ListAlerts(ctx context.Context, opts *models.ListOptions) ([]models.Alert, error) {
	return s.alerts.List(ctx, opts)
}

// AcknowledgeAlert marks an alert as handled.
func (s *Admin) AcknowledgeAlert(ctx context.Context, id uint) error {
	return s.alerts.Acknowledge(ctx, id)
}

// GetSubscription returns the user's subscription, creating the free plan on
// first access.
func (s *Admin) GetSubscription(ctx context.Context, userID uint) (*models.Subscription, error) {
	return s.subs.GetByUser(ctx, userID)
}

// UpdateSubscription persists plan changes.
func (s *Admin) UpdateSubscription(ctx context.Context, sub *models.Subscription) error {
	return s.subs.Update(ctx, sub)
}
