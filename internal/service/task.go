package service

import (
	"context"

	"github.com/chxlky/taskboard-api/internal/models"
	"go.uber.org/zap"
)

type TaskStore interface {
	Create(ctx context.Context, in models.TaskInput) (*models.Task, error)
	List(ctx context.Context, filter models.TaskFilter, req models.PageRequest) (models.Page[models.Task], error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Update(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, id string) error
}

type TaskService struct {
	store TaskStore
}

func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	task, err := s.store.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("Task created",
		zap.String("taskID", task.ID),
		zap.String("boardID", task.BoardID),
		zap.String("status", string(task.Status)))
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, filter models.TaskFilter, req models.PageRequest) (models.Page[models.Task], error) {
	return s.store.List(ctx, filter, req)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*models.Task, error) {
	return s.store.GetByID(ctx, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	task, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("Task updated", zap.String("taskID", id), zap.String("status", string(task.Status)))
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	zap.L().Debug("Task deleted", zap.String("taskID", id))
	return nil
}
