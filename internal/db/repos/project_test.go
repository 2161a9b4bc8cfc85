package repos

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/madenai/arqflow/internal/db/models"
)

type ProjectRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func (s *ProjectRepositoryTestSuite) TestCreateProject() {
	project := s.createTestProject()
	s.Require().NotZero(project.ID)

	created, err := s.projectRepo.Get(s.ctx, project.OwnerID, project.ID)
	s.Require().NoError(err)
	s.Require().Equal(project.Name, created.Name)
	s.Require().Equal(project.ProjectType, created.ProjectType)
	s.Require().Equal(project.TotalArea, created.TotalArea)
	s.Require().Equal(models.ProjectStatusUploaded, created.Status)
}

func (s *ProjectRepositoryTestSuite) TestGetProjectScopedToOwner() {
	project := s.createTestProject()

	// Retrieval by the owner works
	retrieved, err := s.projectRepo.Get(s.ctx, project.OwnerID, project.ID)
	s.Require().NoError(err)
	s.Require().Equal(project.ID, retrieved.ID)

	// Another owner cannot see it
	_, err = s.projectRepo.Get(s.ctx, project.OwnerID+1, project.ID)
	s.Require().Error(err)
}

func (s *ProjectRepositoryTestSuite) TestGetProjectByName() {
	project := s.createTestProject()

	retrieved, err := s.projectRepo.GetByName(s.ctx, project.OwnerID, project.Name)
	s.Require().NoError(err)
	s.Require().Equal(project.ID, retrieved.ID)

	_, err = s.projectRepo.GetByName(s.ctx, project.OwnerID+1, project.Name)
	s.Require().Error(err)
}

func (s *ProjectRepositoryTestSuite) TestListProjects() {
	ownerID := s.randomOwnerID()
	for i := 0; i < 3; i++ {
		s.createTestProjectForOwner(ownerID)
	}
	s.createTestProject() // someone else's project

	projects, err := s.projectRepo.List(s.ctx, ownerID, nil)
	s.Require().NoError(err)
	s.Require().Len(projects, 3)
	for _, p := range projects {
		s.Require().Equal(ownerID, p.OwnerID)
	}
}

func (s *ProjectRepositoryTestSuite) TestUpdateStatus() {
	project := s.createTestProject()

	err := s.projectRepo.UpdateStatus(s.ctx, project.ID, models.ProjectStatusCompleted)
	s.Require().NoError(err)

	updated, err := s.projectRepo.Get(s.ctx, project.OwnerID, project.ID)
	s.Require().NoError(err)
	s.Require().Equal(models.ProjectStatusCompleted, updated.Status)
}

func (s *ProjectRepositoryTestSuite) TestDeleteProject() {
	project := s.createTestProject()

	err := s.projectRepo.Delete(s.ctx, project.OwnerID, project.Name)
	s.Require().NoError(err)

	_, err = s.projectRepo.GetByName(s.ctx, project.OwnerID, project.Name)
	s.Require().Error(err)
}

func TestProjectRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
