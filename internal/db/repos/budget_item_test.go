package repos

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/madenai/arqflow/internal/db/models"
)

type BudgetItemRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func (s *BudgetItemRepositoryTestSuite) budgetRows(projectID uint) []models.BudgetItem {
	return []models.BudgetItem{
		{ProjectID: projectID, ItemID: "item-a", Environment: "Fundação", Material: "Concreto", Quantity: 9.6, Unit: "m³", UnitPrice: 340, Total: 3264, Position: 0},
		{ProjectID: projectID, ItemID: "item-b", Environment: "Alvenaria", Material: "Tijolo", Quantity: 300, Unit: "m²", UnitPrice: 45, Total: 13500, Position: 1},
		{ProjectID: projectID, ItemID: "item-c", Environment: "Instalações", Material: "Elétrica", Quantity: 1, Unit: "un", UnitPrice: 10200, Total: 10200, Position: 2},
	}
}

func (s *BudgetItemRepositoryTestSuite) TestReplaceAndList() {
	project := s.createTestProject()

	err := s.budgetItemRepo.Replace(s.ctx, project.ID, s.budgetRows(project.ID))
	s.Require().NoError(err)

	items, err := s.budgetItemRepo.ListByProject(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Len(items, 3)

	// Rows come back in template order
	s.Require().Equal("item-a", items[0].ItemID)
	s.Require().Equal("item-b", items[1].ItemID)
	s.Require().Equal("item-c", items[2].ItemID)
}

func (s *BudgetItemRepositoryTestSuite) TestReplaceIsWholesale() {
	project := s.createTestProject()

	err := s.budgetItemRepo.Replace(s.ctx, project.ID, s.budgetRows(project.ID))
	s.Require().NoError(err)

	// A second replace with a smaller set leaves no leftovers
	err = s.budgetItemRepo.Replace(s.ctx, project.ID, []models.BudgetItem{
		{ProjectID: project.ID, ItemID: "item-z", Environment: "Acabamentos", Material: "Piso", Quantity: 114, Unit: "m²", UnitPrice: 62, Total: 7068, Position: 0},
	})
	s.Require().NoError(err)

	items, err := s.budgetItemRepo.ListByProject(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Require().Equal("item-z", items[0].ItemID)
}

func (s *BudgetItemRepositoryTestSuite) TestReplaceWithEmptyClears() {
	project := s.createTestProject()

	err := s.budgetItemRepo.Replace(s.ctx, project.ID, s.budgetRows(project.ID))
	s.Require().NoError(err)

	err = s.budgetItemRepo.Replace(s.ctx, project.ID, nil)
	s.Require().NoError(err)

	items, err := s.budgetItemRepo.ListByProject(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Empty(items)
}

func (s *BudgetItemRepositoryTestSuite) TestReplaceDoesNotTouchOtherProjects() {
	first := s.createTestProject()
	second := s.createTestProject()

	s.Require().NoError(s.budgetItemRepo.Replace(s.ctx, first.ID, s.budgetRows(first.ID)))
	s.Require().NoError(s.budgetItemRepo.Replace(s.ctx, second.ID, s.budgetRows(second.ID)))

	s.Require().NoError(s.budgetItemRepo.Replace(s.ctx, first.ID, nil))

	items, err := s.budgetItemRepo.ListByProject(s.ctx, second.ID)
	s.Require().NoError(err)
	s.Require().Len(items, 3)
}

func TestBudgetItemRepositorySuite(t *testing.T) {
	suite.Run(t, new(BudgetItemRepositoryTestSuite))
}
