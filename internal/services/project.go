package services

import (
	"context"
	"errors"

	"github.com/madenai/arqflow/internal/db/models"
	"github.com/madenai/arqflow/internal/db/repos"
	"github.com/madenai/arqflow/internal/external"
	"github.com/madenai/arqflow/internal/logger"
)

// Project service errors
var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectCreateFailed = errors.New("failed to create project")
	ErrProjectNameTaken    = errors.New("project name already in use")
)

// Project provides business logic for project operations.
type Project struct {
	repo    *repos.ProjectRepository
	items   *repos.BudgetItemRepository
	tasks   *repos.ScheduleTaskRepository
	webhook *external.WebhookClient
}

// NewProjectService creates a new project service instance.
func NewProjectService(
	repo *repos.ProjectRepository,
	items *repos.BudgetItemRepository,
	tasks *repos.ScheduleTaskRepository,
	webhook *external.WebhookClient,
) *Project {
	return &Project{
		repo:    repo,
		items:   items,
		tasks:   tasks,
		webhook: webhook,
	}
}

// CreateProject registers an uploaded project and fires the automation
// webhook. Project names are unique per owner.
func (s *Project) CreateProject(ctx context.Context, project *models.Project) (uint, error) {
	if existing, err := s.repo.GetByName(ctx, project.OwnerID, project.Name); err == nil && existing != nil {
		return 0, ErrProjectNameTaken
	}

	if project.Status == "" {
		project.Status = models.ProjectStatusUploaded
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return 0, errors.Join(ErrProjectCreateFailed, err)
	}

	s.notify(external.WebhookEvent{
		Event:     external.EventProjectCreated,
		UserID:    project.OwnerID,
		ProjectID: project.ID,
		Payload: map[string]interface{}{
			"name":         project.Name,
			"project_type": project.ProjectType,
			"total_area":   project.TotalArea,
		},
	})
	return project.ID, nil
}

// GetProject retrieves a project by ID, scoped to its owner.
func (s *Project) GetProject(ctx context.Context, ownerID uint, projectID uint) (*models.Project, error) {
	project, err := s.repo.Get(ctx, ownerID, projectID)
	if err != nil {
		return nil, errors.Join(ErrProjectNotFound, err)
	}
	return project, nil
}

// GetProjectByName retrieves a project by name, scoped to its owner.
func (s *Project) GetProjectByName(ctx context.Context, ownerID uint, name string) (*models.Project, error) {
	project, err := s.repo.GetByName(ctx, ownerID, name)
	if err != nil {
		return nil, errors.Join(ErrProjectNotFound, err)
	}
	return project, nil
}

// ListProjects retrieves the owner's projects.
func (s *Project) ListProjects(ctx context.Context, ownerID uint, opts *models.ListOptions) ([]models.Project, error) {
	return s.repo.List(ctx, ownerID, opts)
}

// UpdateStatus moves a project through its processing lifecycle.
func (s *Project) UpdateStatus(ctx context.Context, projectID uint, status models.ProjectStatus) error {
	return s.repo.UpdateStatus(ctx, projectID, status)
}

// DeleteProject removes a project and its derived budget and schedule rows.
func (s *Project) DeleteProject(ctx context.Context, ownerID uint, name string) error {
	project, err := s.repo.GetByName(ctx, ownerID, name)
	if err != nil {
		return errors.Join(ErrProjectNotFound, err)
	}

	if err := s.items.Replace(ctx, project.ID, nil); err != nil {
		return err
	}
	if err := s.tasks.Replace(ctx, project.ID, nil); err != nil {
		return err
	}
	return s.repo.Delete(ctx, ownerID, name)
}

// notify posts a webhook event without blocking the request path.
func (s *Project) notify(event external.WebhookEvent) {
	if s.webhook == nil {
		return
	}
	go func() {
		if err := s.webhook.Send(context.Background(), event); err != nil {
			logger.Warnf("webhook delivery failed for %s: %v", event.Event, err)
		}
	}()
}
