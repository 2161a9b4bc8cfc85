package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/madenai/arqflow/internal/db/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// Create creates a new project in the database
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Get retrieves a project by ID, scoped to its owner
func (r *ProjectRepository) Get(ctx context.Context, ownerID uint, id uint) (*models.Project, error) {
	var project models.Project
	query := r.db.WithContext(ctx).Where(models.Project{OwnerID: ownerID})
	if err := query.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByName retrieves a project by name from the database
func (r *ProjectRepository) GetByName(ctx context.Context, ownerID uint, name string) (*models.Project, error) {
	var project models.Project
	query := r.db.WithContext(ctx).Where(models.Project{
		OwnerID: ownerID,
		Name:    name,
	})
	if err := query.First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves all projects for an owner with pagination
func (r *ProjectRepository) List(ctx context.Context, ownerID uint, opts *models.ListOptions) ([]models.Project, error) {
	var projects []models.Project
	query := r.db.WithContext(ctx).Where(models.Project{OwnerID: ownerID})
	if opts != nil {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	err := query.Order("id").Find(&projects).Error
	return projects, err
}

// Update persists changes to an existing project
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// UpdateStatus sets the processing status of a project
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id uint, status models.ProjectStatus) error {
	return r.db.WithContext(ctx).Model(&models.Project{}).
		Where("id = ?", id).Update("status", status).Error
}

// Delete deletes a project by name from the database
func (r *ProjectRepository) Delete(ctx context.Context, ownerID uint, name string) error {
	return r.db.WithContext(ctx).Where(models.Project{
		OwnerID: ownerID,
		Name:    name,
	}).Delete(&models.Project{}).Error
}

// Count returns the total number of projects
func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&count).Error
	return count, err
}
