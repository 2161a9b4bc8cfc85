package repos

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/madenai/arqflow/internal/db/models"
)

type AIUsageRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func (s *AIUsageRepositoryTestSuite) recordUsage(userID uint, operation string, prompt, completion int) {
	metric := &models.AIUsageMetric{
		UserID:           userID,
		ProjectID:        1,
		Operation:        operation,
		AIModel:          "gpt-4o-mini",
		PromptTokens:     prompt,
		CompletionTokens: completion,
	}
	err := s.usageRepo.Create(s.ctx, metric)
	s.Require().NoError(err)
}

func (s *AIUsageRepositoryTestSuite) TestCountByUser() {
	user := s.createTestUser()
	other := s.createTestUser()

	s.recordUsage(user.ID, "assistant.chat", 120, 80)
	s.recordUsage(user.ID, "assistant.chat", 90, 40)
	s.recordUsage(other.ID, "assistant.chat", 50, 30)

	count, err := s.usageRepo.CountByUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Equal(int64(2), count)
}

func (s *AIUsageRepositoryTestSuite) TestUsageByOperation() {
	user := s.createTestUser()

	s.recordUsage(user.ID, "assistant.chat", 120, 80)
	s.recordUsage(user.ID, "assistant.chat", 80, 20)
	s.recordUsage(user.ID, "budget.review", 200, 150)

	rows, err := s.usageRepo.UsageByOperation(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	// Ordered by operation name
	s.Require().Equal("assistant.chat", rows[0].Operation)
	s.Require().Equal(int64(2), rows[0].Calls)
	s.Require().Equal(int64(200), rows[0].PromptTokens)
	s.Require().Equal(int64(100), rows[0].CompletionTokens)

	s.Require().Equal("budget.review", rows[1].Operation)
	s.Require().Equal(int64(1), rows[1].Calls)
}

func TestAIUsageRepositorySuite(t *testing.T) {
	suite.Run(t, new(AIUsageRepositoryTestSuite))
}
