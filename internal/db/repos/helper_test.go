package repos

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/madenai/arqflow/internal/db/models"
)

// DBRepositoryTestSuite provides a base test suite for repository tests
type DBRepositoryTestSuite struct {
	suite.Suite
	db               *gorm.DB
	ctx              context.Context
	userRepo         *UserRepository
	projectRepo      *ProjectRepository
	budgetItemRepo   *BudgetItemRepository
	scheduleTaskRepo *ScheduleTaskRepository
	paymentRepo      *PaymentRepository
	subscriptionRepo *SubscriptionRepository
	alertRepo        *AlertRepository
	usageRepo        *AIUsageRepository
}

// randomOwnerID creates a random owner ID using crypto/rand
func (s *DBRepositoryTestSuite) randomOwnerID() uint {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	s.Require().NoError(err, "Failed to generate random owner ID")
	return uint(n.Uint64() + 1) // +1 to avoid 0
}

// randomSuffix creates a random string suffix for unique names and emails
func (s *DBRepositoryTestSuite) randomSuffix() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000000))
	s.Require().NoError(err, "Failed to generate random suffix")
	return fmt.Sprintf("%d", n.Uint64())
}

func (s *DBRepositoryTestSuite) SetupTest() {
	// Create new in-memory database with JSON support
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_json=1"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		DryRun:                                   false,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "Failed to create in-memory database")

	// Run migrations
	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.BudgetItem{},
		&models.ScheduleTask{},
		&models.Payment{},
		&models.Subscription{},
		&models.Alert{},
		&models.AIUsageMetric{},
	)
	require.NoError(s.T(), err, "Failed to run database migrations")

	// Initialize repositories
	s.db = db
	s.userRepo = NewUserRepository(s.db)
	s.projectRepo = NewProjectRepository(s.db)
	s.budgetItemRepo = NewBudgetItemRepository(s.db)
	s.scheduleTaskRepo = NewScheduleTaskRepository(s.db)
	s.paymentRepo = NewPaymentRepository(s.db)
	s.subscriptionRepo = NewSubscriptionRepository(s.db)
	s.alertRepo = NewAlertRepository(s.db)
	s.usageRepo = NewAIUsageRepository(s.db)
	s.ctx = context.Background()
}

func (s *DBRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// Helper methods for creating test data

func (s *DBRepositoryTestSuite) createTestUser() *models.User {
	user := &models.User{
		Name:         "test-user",
		Email:        fmt.Sprintf("test-%s@example.com", s.randomSuffix()),
		PasswordHash: "not-a-real-hash",
		Company:      "Construtora Exemplo",
		Role:         models.UserRoleUser,
	}
	err := s.userRepo.Create(s.ctx, user)
	s.Require().NoError(err)
	return user
}

func (s *DBRepositoryTestSuite) createTestProject() *models.Project {
	return s.createTestProjectForOwner(s.randomOwnerID())
}

func (s *DBRepositoryTestSuite) createTestProjectForOwner(ownerID uint) *models.Project {
	project := &models.Project{
		OwnerID:     ownerID,
		Name:        fmt.Sprintf("casa-terrea-%s", s.randomSuffix()),
		Description: "Casa térrea com dois quartos",
		ProjectType: "residencial",
		TotalArea:   120,
		Status:      models.ProjectStatusUploaded,
		CreatedAt:   time.Now(),
	}
	err := s.projectRepo.Create(s.ctx, project)
	s.Require().NoError(err)
	return project
}

// TestDBRepository runs the test suite for the DBRepository to verify no panic
func TestDBRepository(t *testing.T) {
	suite.Run(t, new(DBRepositoryTestSuite))
}
