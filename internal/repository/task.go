package repository

import (
	"context"

	"github.com/chxlky/taskboard-api/internal/apperror"
	"github.com/chxlky/taskboard-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	taskColumns   = "tasks.*, boards.name AS board_name"
	taskBoardJoin = "LEFT JOIN boards ON boards.id = tasks.board_id"
)

var (
	errTaskNotFound = apperror.NotFound("Task not found", nil)
	errNoTaskFields = apperror.Validation("No valid fields to update", nil)
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	task := models.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		BoardID:     in.BoardID,
	}
	if err := r.db.WithContext(ctx).Create(&task).Error; err != nil {
		return nil, translate(err, rules{
			failureForeignKey:   danglingBoard(in.BoardID),
			failureDuplicateKey: apperror.Conflict("Task already exists", nil),
		})
	}
	return r.GetByID(ctx, task.ID)
}

// List returns tasks newest first. Status and board filters match exactly,
// search matches title or description, and all given filters are ANDed.
func (r *TaskRepository) List(ctx context.Context, filter models.TaskFilter, req models.PageRequest) (models.Page[models.Task], error) {
	req = req.Normalize()
	page, err := paginate[models.Task](ctx, r.db, &models.Task{},
		func(db *gorm.DB) *gorm.DB {
			if filter.Status != "" {
				db = db.Where("tasks.status = ?", string(filter.Status))
			}
			if filter.BoardID != "" {
				db = db.Where("tasks.board_id = ?", filter.BoardID)
			}
			return db.Scopes(searchScope(filter.Search, "tasks.title", "tasks.description"))
		},
		func(db *gorm.DB) *gorm.DB {
			return db.Select(taskColumns).Joins(taskBoardJoin).
				Order("tasks.created_at DESC").Order("tasks.id DESC")
		},
		req,
	)
	if err != nil {
		return models.Page[models.Task]{}, translate(err, nil)
	}
	return page, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Select(taskColumns).
		Joins(taskBoardJoin).
		Where("tasks.id = ?", id).
		Take(&task).Error
	if err != nil {
		return nil, translate(err, rules{failureMissingRow: notFoundTask(id)})
	}
	return &task, nil
}

// Update applies only the fields set in patch. Moving a task to a board that
// does not exist is a Validation error, not NotFound.
func (r *TaskRepository) Update(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	if patch.Empty() {
		return nil, errNoTaskFields
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Task{}).Where("id = ?", id).Updates(patch.Columns())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		onFailure := rules{failureMissingRow: notFoundTask(id)}
		if patch.BoardID != nil {
			onFailure[failureForeignKey] = danglingBoard(*patch.BoardID)
		}
		return nil, translate(err, onFailure)
	}
	return r.GetByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{})
	if res.Error != nil {
		return translate(res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return notFoundTask(id)
	}
	return nil
}

func notFoundTask(id string) *apperror.Error {
	return apperror.NotFound(errTaskNotFound.Message, map[string]any{"taskId": id})
}

// danglingBoard reports a task pointing at a board that does not exist.
func danglingBoard(boardID string) *apperror.Error {
	return apperror.Validation("Board not found", map[string]any{"boardId": boardID})
}
