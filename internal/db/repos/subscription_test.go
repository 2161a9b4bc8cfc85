package repos

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/madenai/arqflow/internal/db/models"
)

type SubscriptionRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func (s *SubscriptionRepositoryTestSuite) TestGetByUserCreatesFreePlan() {
	user := s.createTestUser()

	sub, err := s.subscriptionRepo.GetByUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().NotZero(sub.ID)
	s.Require().Equal(models.PlanFree, sub.Plan)
	s.Require().Equal(models.SubscriptionActive, sub.Status)
	s.Require().Equal(20, sub.AIQuota)

	// A second lookup returns the same row, not a new one
	again, err := s.subscriptionRepo.GetByUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Equal(sub.ID, again.ID)
}

func (s *SubscriptionRepositoryTestSuite) TestUpdateSubscription() {
	user := s.createTestUser()

	sub, err := s.subscriptionRepo.GetByUser(s.ctx, user.ID)
	s.Require().NoError(err)

	sub.Plan = models.PlanPro
	sub.AIQuota = 200
	err = s.subscriptionRepo.Update(s.ctx, sub)
	s.Require().NoError(err)

	updated, err := s.subscriptionRepo.GetByUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Equal(models.PlanPro, updated.Plan)
	s.Require().Equal(200, updated.AIQuota)
}

func (s *SubscriptionRepositoryTestSuite) TestCountByPlan() {
	for i := 0; i < 3; i++ {
		user := s.createTestUser()
		_, err := s.subscriptionRepo.GetByUser(s.ctx, user.ID)
		s.Require().NoError(err)
	}

	proUser := s.createTestUser()
	sub, err := s.subscriptionRepo.GetByUser(s.ctx, proUser.ID)
	s.Require().NoError(err)
	sub.Plan = models.PlanPro
	s.Require().NoError(s.subscriptionRepo.Update(s.ctx, sub))

	counts, err := s.subscriptionRepo.CountByPlan(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(int64(3), counts[models.PlanFree])
	s.Require().Equal(int64(1), counts[models.PlanPro])
}

func TestSubscriptionRepositorySuite(t *testing.T) {
	suite.Run(t, new(SubscriptionRepositoryTestSuite))
}
