package repos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/madenai/arqflow/internal/db/models"
)

type ScheduleTaskRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func (s *ScheduleTaskRepositoryTestSuite) scheduleRows(projectID uint) []models.ScheduleTask {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return []models.ScheduleTask{
		{ProjectID: projectID, TaskID: "task-a", Name: "Fundação", Category: "estrutural", StartDate: start, EndDate: start.AddDate(0, 0, 15), Duration: 15, Cost: 22000, Status: "planned", Position: 0},
		{ProjectID: projectID, TaskID: "task-b", Name: "Estrutura", Category: "estrutural", StartDate: start.AddDate(0, 0, 16), EndDate: start.AddDate(0, 0, 41), Duration: 25, DependsOn: "task-a", Cost: 35000, Status: "planned", Position: 1},
	}
}

func (s *ScheduleTaskRepositoryTestSuite) TestReplaceAndList() {
	project := s.createTestProject()

	err := s.scheduleTaskRepo.Replace(s.ctx, project.ID, s.scheduleRows(project.ID))
	s.Require().NoError(err)

	tasks, err := s.scheduleTaskRepo.ListByProject(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Len(tasks, 2)

	// Rows come back in chain order with the dependency link intact
	s.Require().Equal("task-a", tasks[0].TaskID)
	s.Require().Equal("task-b", tasks[1].TaskID)
	s.Require().Equal("task-a", tasks[1].DependsOn)
}

func (s *ScheduleTaskRepositoryTestSuite) TestReplaceIsWholesale() {
	project := s.createTestProject()

	err := s.scheduleTaskRepo.Replace(s.ctx, project.ID, s.scheduleRows(project.ID))
	s.Require().NoError(err)

	rows := s.scheduleRows(project.ID)[:1]
	err = s.scheduleTaskRepo.Replace(s.ctx, project.ID, rows)
	s.Require().NoError(err)

	tasks, err := s.scheduleTaskRepo.ListByProject(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Require().Equal("task-a", tasks[0].TaskID)
}

func (s *ScheduleTaskRepositoryTestSuite) TestReplaceWithEmptyClears() {
	project := s.createTestProject()

	err := s.scheduleTaskRepo.Replace(s.ctx, project.ID, s.scheduleRows(project.ID))
	s.Require().NoError(err)

	err = s.scheduleTaskRepo.Replace(s.ctx, project.ID, nil)
	s.Require().NoError(err)

	tasks, err := s.scheduleTaskRepo.ListByProject(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Empty(tasks)
}

func TestScheduleTaskRepositorySuite(t *testing.T) {
	suite.Run(t, new(ScheduleTaskRepositoryTestSuite))
}
