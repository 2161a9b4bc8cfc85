package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/madenai/arqflow/internal/db/models"
)

// ScheduleTaskRepository handles database operations for schedule tasks
type ScheduleTaskRepository struct {
	db *gorm.DB
}

// NewScheduleTaskRepository creates a new instance of ScheduleTaskRepository
func NewScheduleTaskRepository(db *gorm.DB) *ScheduleTaskRepository {
	return &ScheduleTaskRepository{
		db: db,
	}
}

// ListByProject retrieves all schedule tasks for a project in chain order
func (r *ScheduleTaskRepository) ListByProject(ctx context.Context, projectID uint) ([]models.ScheduleTask, error) {
	var tasks []models.ScheduleTask
	err := r.db.WithContext(ctx).
		Where(models.ScheduleTask{ProjectID: projectID}).
		Order("position").Find(&tasks).Error
	return tasks, err
}

// Replace deletes a project's schedule and inserts the given tasks in one
// transaction. Task edits cascade through the chain, so the whole set is
// always written back together.
func (r *ScheduleTaskRepository) Replace(ctx context.Context, projectID uint, tasks []models.ScheduleTask) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("project_id = ?", projectID).
			Delete(&models.ScheduleTask{}).Error; err != nil {
			return err
		}
		if len(tasks) == 0 {
			return nil
		}
		return tx.Create(&tasks).Error
	})
}
