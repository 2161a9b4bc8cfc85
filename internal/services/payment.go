package services

import (
	"context"
	"errors"

	"github.com/madenai/arqflow/internal/db/models"
	"github.com/madenai/arqflow/internal/db/repos"
	"github.com/madenai/arqflow/internal/external"
	"github.com/madenai/arqflow/internal/logger"
	"github.com/madenai/arqflow/internal/payments"
)

// Payment service errors
var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
)

// Payment provides business logic for charges. Records are written before
// the gateway call and updated after it, so a gateway failure still leaves a
// pending row for reconciliation.
type Payment struct {
	repo    *repos.PaymentRepository
	gateway payments.Gateway
	webhook *external.WebhookClient
}

// NewPaymentService creates a new payment service instance.
func NewPaymentService(repo *repos.PaymentRepository, gateway payments.Gateway, webhook *external.WebhookClient) *Payment {
	return &Payment{
		repo:    repo,
		gateway: gateway,
		webhook: webhook,
	}
}

// Charge submits a charge for the user and records its outcome.
func (s *Payment) Charge(ctx context.Context, user *models.User, amount float64, description string) (*models.Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidPaymentAmount
	}

	record := &models.Payment{
		UserID:      user.ID,
		Amount:      amount,
		Currency:    "BRL",
		Description: description,
		Status:      models.PaymentStatusPendente,
		Provider:    s.gateway.Name(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	result, err := s.gateway.CreateCharge(ctx, payments.ChargeRequest{
		Amount:      amount,
		Currency:    record.Currency,
		Description: description,
		PayerEmail:  user.Email,
	})
	if err != nil {
		logger.Errorf("charge failed for payment %d: %v", record.ID, err)
		record.Status = models.PaymentStatusRejeitado
		if updateErr := s.repo.Update(ctx, record); updateErr != nil {
			logger.Errorf("failed to record rejected payment %d: %v", record.ID, updateErr)
		}
		return record, err
	}

	record.ProviderPaymentID = result.ProviderPaymentID
	record.Status = statusFromProvider(result.ProviderStatus)
	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	if record.Status == models.PaymentStatusAprovado && s.webhook != nil {
		event := external.WebhookEvent{
			Event:  external.EventPaymentApproved,
			UserID: user.ID,
			Payload: map[string]interface{}{
				"amount":   record.Amount,
				"provider": record.Provider,
			},
		}
		go func() {
			if err := s.webhook.Send(context.Background(), event); err != nil {
				logger.Warnf("webhook delivery failed for %s: %v", event.Event, err)
			}
		}()
	}
	return record, nil
}

// GetPayment retrieves a payment by ID, scoped to its user.
func (s *Payment) GetPayment(ctx context.Context, userID uint, id uint) (*models.Payment, error) {
	payment, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, errors.Join(ErrPaymentNotFound, err)
	}
	return payment, nil
}

// ListPayments retrieves the user's payments.
func (s *Payment) ListPayments(ctx context.Context, userID uint, opts *models.ListOptions) ([]models.Payment, error) {
	return s.repo.ListByUser(ctx, userID, opts)
}

// statusFromProvider maps the gateway's status vocabulary onto the product's.
func statusFromProvider(providerStatus string) models.PaymentStatus {
	switch providerStatus {
	case "approved":
		return models.PaymentStatusAprovado
	case "rejected":
		return models.PaymentStatusRejeitado
	case "cancelled":
		return models.PaymentStatusCancelado
	default:
		return models.PaymentStatusPendente
	}
}
