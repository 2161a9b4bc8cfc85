package repos

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/madenai/arqflow/internal/db/models"
)

type UserRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func (s *UserRepositoryTestSuite) TestCreateAndGetUser() {
	user := s.createTestUser()
	s.Require().NotZero(user.ID)

	retrieved, err := s.userRepo.Get(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Equal(user.Email, retrieved.Email)
	s.Require().Equal(user.Company, retrieved.Company)
	s.Require().Equal(models.UserRoleUser, retrieved.Role)
}

func (s *UserRepositoryTestSuite) TestGetUserByEmail() {
	user := s.createTestUser()

	retrieved, err := s.userRepo.GetByEmail(s.ctx, user.Email)
	s.Require().NoError(err)
	s.Require().Equal(user.ID, retrieved.ID)

	_, err = s.userRepo.GetByEmail(s.ctx, "missing@example.com")
	s.Require().Error(err)
}

func (s *UserRepositoryTestSuite) TestUpdateUser() {
	user := s.createTestUser()

	user.City = "São Paulo"
	user.Country = "Brasil"
	err := s.userRepo.Update(s.ctx, user)
	s.Require().NoError(err)

	updated, err := s.userRepo.Get(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Equal("São Paulo", updated.City)
	s.Require().Equal("Brasil", updated.Country)
}

func (s *UserRepositoryTestSuite) TestDeleteUser() {
	user := s.createTestUser()

	err := s.userRepo.Delete(s.ctx, user.ID)
	s.Require().NoError(err)

	_, err = s.userRepo.Get(s.ctx, user.ID)
	s.Require().Error(err)
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
