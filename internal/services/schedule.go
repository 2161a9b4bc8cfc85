package services

import (
	"context"
	"errors"
	"time"

	"github.com/madenai/arqflow/internal/db/models"
	"github.com/madenai/arqflow/internal/db/repos"
	"github.com/madenai/arqflow/internal/estimator"
)

// Schedule service errors
var (
	ErrScheduleNotGenerated  = errors.New("schedule not generated for project")
	ErrScheduleTaskNotFound  = errors.New("schedule task not found")
	ErrSchedulePersistFailed = errors.New("failed to persist schedule")
)

// Schedule provides business logic for schedule generation and editing. Edits
// always rewrite the full task set: a duration change on one phase shifts
// every downstream phase, so partial row updates would leave stale dates.
type Schedule struct {
	projects *repos.ProjectRepository
	tasks    *repos.ScheduleTaskRepository
}

// NewScheduleService creates a new schedule service instance.
func NewScheduleService(projects *repos.ProjectRepository, tasks *repos.ScheduleTaskRepository) *Schedule {
	return &Schedule{
		projects: projects,
		tasks:    tasks,
	}
}

// Generate derives a fresh phase schedule chained from the given start date
// and replaces any previously stored tasks.
func (s *Schedule) Generate(ctx context.Context, ownerID uint, projectID uint, start time.Time) (*estimator.Schedule, error) {
	project, err := s.projects.Get(ctx, ownerID, projectID)
	if err != nil {
		return nil, errors.Join(ErrProjectNotFound, err)
	}

	schedule := estimator.GenerateSchedule(estimator.ProjectInput{
		TotalArea:   project.TotalArea,
		ProjectType: project.ProjectType,
	}, start)

	if err := s.tasks.Replace(ctx, project.ID, scheduleRows(project.ID, schedule)); err != nil {
		return nil, errors.Join(ErrSchedulePersistFailed, err)
	}
	return schedule, nil
}

// Get loads the stored schedule, re-deriving the complexity bucket and
// aggregates from the project and rows.
func (s *Schedule) Get(ctx context.Context, ownerID uint, projectID uint) (*estimator.Schedule, error) {
	project, err := s.projects.Get(ctx, ownerID, projectID)
	if err != nil {
		return nil, errors.Join(ErrProjectNotFound, err)
	}

	rows, err := s.tasks.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrScheduleNotGenerated
	}
	return scheduleFromRows(project, rows), nil
}

// UpdateTask applies a partial edit to one task, re-chains downstream dates,
// and rewrites the stored task set.
func (s *Schedule) UpdateTask(ctx context.Context, ownerID uint, projectID uint, taskID string, patch estimator.TaskPatch) (*estimator.Schedule, error) {
	schedule, err := s.Get(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	if !schedule.UpdateTask(taskID, patch) {
		return nil, ErrScheduleTaskNotFound
	}
	if err := s.tasks.Replace(ctx, projectID, scheduleRows(projectID, schedule)); err != nil {
		return nil, errors.Join(ErrSchedulePersistFailed, err)
	}
	return schedule, nil
}

// AddTask appends a task to the end of the chain and rewrites the stored
// task set.
func (s *Schedule) AddTask(ctx context.Context, ownerID uint, projectID uint, task estimator.ScheduleTask) (*estimator.Schedule, error) {
	schedule, err := s.Get(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}
	schedule.AddTask(task)
	if err := s.tasks.Replace(ctx, projectID, scheduleRows(projectID, schedule)); err != nil {
		return nil, errors.Join(ErrSchedulePersistFailed, err)
	}
	return schedule, nil
}

// scheduleRows maps a derived schedule onto persistence rows. The linear
// chain collapses each task's dependency list to its single predecessor.
func scheduleRows(projectID uint, s *estimator.Schedule) []models.ScheduleTask {
	rows := make([]models.ScheduleTask, len(s.Tasks))
	for i, task := range s.Tasks {
		dependsOn := ""
		if len(task.Dependencies) > 0 {
			dependsOn = task.Dependencies[0]
		}
		rows[i] = models.ScheduleTask{
			ProjectID: projectID,
			TaskID:    task.ID,
			Name:      task.Name,
			Category:  task.Category,
			Color:     task.Color,
			StartDate: task.StartDate,
			EndDate:   task.EndDate,
			Duration:  task.Duration,
			DependsOn: dependsOn,
			Cost:      task.Cost,
			Status:    string(task.Status),
			Position:  i,
		}
	}
	return rows
}

// scheduleFromRows rebuilds the estimator's schedule from stored rows and
// re-derives the aggregates via a re-chain pass.
func scheduleFromRows(project *models.Project, rows []models.ScheduleTask) *estimator.Schedule {
	tasks := make([]estimator.ScheduleTask, len(rows))
	for i, row := range rows {
		var deps []string
		if row.DependsOn != "" {
			deps = []string{row.DependsOn}
		}
		tasks[i] = estimator.ScheduleTask{
			ID:           row.TaskID,
			Name:         row.Name,
			Category:     row.Category,
			Color:        row.Color,
			StartDate:    row.StartDate,
			EndDate:      row.EndDate,
			Duration:     row.Duration,
			Dependencies: deps,
			Cost:         row.Cost,
			Status:       estimator.TaskStatus(row.Status),
		}
	}

	schedule := &estimator.Schedule{
		Tasks: tasks,
		Complexity: estimator.ComplexityFor(estimator.ProjectInput{
			TotalArea:   project.TotalArea,
			ProjectType: project.ProjectType,
		}),
	}
	schedule.Rechain()
	return schedule
}
