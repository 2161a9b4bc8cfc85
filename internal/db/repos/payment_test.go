package repos

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/madenai/arqflow/internal/db/models"
)

type PaymentRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func (s *PaymentRepositoryTestSuite) createTestPayment(userID uint, amount float64, status models.PaymentStatus) *models.Payment {
	payment := &models.Payment{
		UserID:      userID,
		Amount:      amount,
		Currency:    "BRL",
		Description: "Assinatura plano pro",
		Status:      status,
		Provider:    "mercadopago",
	}
	err := s.paymentRepo.Create(s.ctx, payment)
	s.Require().NoError(err)
	return payment
}

func (s *PaymentRepositoryTestSuite) TestCreateAndGetPayment() {
	user := s.createTestUser()
	payment := s.createTestPayment(user.ID, 99.9, models.PaymentStatusPendente)
	s.Require().NotZero(payment.ID)

	retrieved, err := s.paymentRepo.Get(s.ctx, user.ID, payment.ID)
	s.Require().NoError(err)
	s.Require().Equal(payment.Amount, retrieved.Amount)
	s.Require().Equal(models.PaymentStatusPendente, retrieved.Status)
}

func (s *PaymentRepositoryTestSuite) TestGetPaymentScopedToUser() {
	user := s.createTestUser()
	payment := s.createTestPayment(user.ID, 99.9, models.PaymentStatusPendente)

	_, err := s.paymentRepo.Get(s.ctx, user.ID+1, payment.ID)
	s.Require().Error(err)
}

func (s *PaymentRepositoryTestSuite) TestUpdatePayment() {
	user := s.createTestUser()
	payment := s.createTestPayment(user.ID, 99.9, models.PaymentStatusPendente)

	payment.Status = models.PaymentStatusAprovado
	payment.ProviderPaymentID = "mp-12345"
	err := s.paymentRepo.Update(s.ctx, payment)
	s.Require().NoError(err)

	updated, err := s.paymentRepo.Get(s.ctx, user.ID, payment.ID)
	s.Require().NoError(err)
	s.Require().Equal(models.PaymentStatusAprovado, updated.Status)
	s.Require().Equal("mp-12345", updated.ProviderPaymentID)
}

func (s *PaymentRepositoryTestSuite) TestListPaymentsNewestFirst() {
	user := s.createTestUser()
	first := s.createTestPayment(user.ID, 50, models.PaymentStatusAprovado)
	second := s.createTestPayment(user.ID, 75, models.PaymentStatusPendente)
	s.createTestPayment(user.ID+1, 200, models.PaymentStatusAprovado) // someone else's payment

	payments, err := s.paymentRepo.ListByUser(s.ctx, user.ID, nil)
	s.Require().NoError(err)
	s.Require().Len(payments, 2)
	s.Require().Equal(second.ID, payments[0].ID)
	s.Require().Equal(first.ID, payments[1].ID)
}

func (s *PaymentRepositoryTestSuite) TestSumApprovedIgnoresOtherStatuses() {
	user := s.createTestUser()
	s.createTestPayment(user.ID, 100, models.PaymentStatusAprovado)
	s.createTestPayment(user.ID, 49.5, models.PaymentStatusAprovado)
	s.createTestPayment(user.ID, 300, models.PaymentStatusPendente)
	s.createTestPayment(user.ID, 300, models.PaymentStatusRejeitado)

	total, err := s.paymentRepo.SumApproved(s.ctx)
	s.Require().NoError(err)
	s.Require().InDelta(149.5, total, 0.001)
}

func TestPaymentRepositorySuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryTestSuite))
}
