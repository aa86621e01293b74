package service

import (
	"context"
	"errors"
	"testing"

	"github.com/chxlky/taskboard-api/internal/apperror"
	"github.com/chxlky/taskboard-api/internal/models"
)

type fakeBoardStore struct {
	boards    map[string]models.Board
	lastReq   models.PageRequest
	lastQuery models.BoardFilter
	err       error
}

func (f *fakeBoardStore) Create(ctx context.Context, in models.BoardInput) (*models.Board, error) {
	if f.err != nil {
		return nil, f.err
	}
	b := models.Board{ID: "b1", Name: in.Name, Description: in.Description}
	f.boards[b.ID] = b
	return &b, nil
}

func (f *fakeBoardStore) List(ctx context.Context, filter models.BoardFilter, req models.PageRequest) (models.Page[models.Board], error) {
	f.lastQuery = filter
	f.lastReq = req
	items := make([]models.Board, 0, len(f.boards))
	for _, b := range f.boards {
		items = append(items, b)
	}
	return models.NewPage(items, int64(len(items)), req), f.err
}

func (f *fakeBoardStore) GetByID(ctx context.Context, id string) (*models.Board, error) {
	b, ok := f.boards[id]
	if !ok {
		return nil, apperror.NotFound("Board not found", nil)
	}
	return &b, nil
}

func (f *fakeBoardStore) Update(ctx context.Context, id string, patch models.BoardPatch) (*models.Board, error) {
	b, ok := f.boards[id]
	if !ok {
		return nil, apperror.NotFound("Board not found", nil)
	}
	if patch.Name != nil {
		b.Name = *patch.Name
	}
	f.boards[id] = b
	return &b, nil
}

func (f *fakeBoardStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.boards[id]; !ok {
		return apperror.NotFound("Board not found", nil)
	}
	delete(f.boards, id)
	return nil
}

func TestBoardServiceDelegates(t *testing.T) {
	store := &fakeBoardStore{boards: map[string]models.Board{}}
	svc := NewBoardService(store)
	ctx := context.Background()

	board, err := svc.CreateBoard(ctx, models.BoardInput{Name: "Sprint 1"})
	if err != nil || board.Name != "Sprint 1" {
		t.Fatalf("create: %+v %v", board, err)
	}

	req := models.PageRequest{Page: 2, Limit: 5}
	if _, err := svc.ListBoards(ctx, models.BoardFilter{Search: "spr"}, req); err != nil {
		t.Fatalf("list: %v", err)
	}
	if store.lastReq != req || store.lastQuery.Search != "spr" {
		t.Fatalf("expected list arguments to pass through, got %+v %+v", store.lastReq, store.lastQuery)
	}

	name := "Sprint 2"
	if updated, err := svc.UpdateBoard(ctx, "b1", models.BoardPatch{Name: &name}); err != nil || updated.Name != name {
		t.Fatalf("update: %+v %v", updated, err)
	}
	if err := svc.DeleteBoard(ctx, "b1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetBoard(ctx, "b1"); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected NotFound after delete, got %v", err)
	}
}

func TestBoardServicePropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewBoardService(&fakeBoardStore{boards: map[string]models.Board{}, err: boom})

	if _, err := svc.CreateBoard(context.Background(), models.BoardInput{Name: "x"}); !errors.Is(err, boom) {
		t.Fatalf("expected error to pass through unchanged, got %v", err)
	}
	if err := svc.DeleteBoard(context.Background(), "nope"); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

type fakeTaskStore struct {
	lastFilter models.TaskFilter
	lastPatch  models.TaskPatch
	err        error
}

func (f *fakeTaskStore) Create(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Task{ID: "t1", Title: in.Title, Status: in.Status, BoardID: in.BoardID}, nil
}

func (f *fakeTaskStore) List(ctx context.Context, filter models.TaskFilter, req models.PageRequest) (models.Page[models.Task], error) {
	f.lastFilter = filter
	return models.NewPage[models.Task](nil, 0, req), nil
}

func (f *fakeTaskStore) GetByID(ctx context.Context, id string) (*models.Task, error) {
	return &models.Task{ID: id}, nil
}

func (f *fakeTaskStore) Update(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	f.lastPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	return &models.Task{ID: id, Status: *patch.Status}, nil
}

func (f *fakeTaskStore) Delete(ctx context.Context, id string) error { return f.err }

func TestTaskServiceDelegates(t *testing.T) {
	store := &fakeTaskStore{}
	svc := NewTaskService(store)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, models.TaskInput{Title: "Fix bug", Status: models.TaskStatusTodo, BoardID: "b1"})
	if err != nil || task.Status != models.TaskStatusTodo {
		t.Fatalf("create: %+v %v", task, err)
	}

	filter := models.TaskFilter{Status: models.TaskStatusDone, BoardID: "b1", Search: "bug"}
	if _, err := svc.ListTasks(ctx, filter, models.PageRequest{Page: 1, Limit: 10}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if store.lastFilter != filter {
		t.Fatalf("expected filter to pass through, got %+v", store.lastFilter)
	}

	done := models.TaskStatusDone
	updated, err := svc.UpdateTask(ctx, "t1", models.TaskPatch{Status: &done})
	if err != nil || updated.Status != done || store.lastPatch.Status == nil {
		t.Fatalf("update: %+v %v", updated, err)
	}
}

func TestTaskServicePropagatesErrors(t *testing.T) {
	invalid := apperror.Validation("Board not found", nil)
	svc := NewTaskService(&fakeTaskStore{err: invalid})

	_, err := svc.CreateTask(context.Background(), models.TaskInput{Title: "x", Status: models.TaskStatusTodo, BoardID: "missing"})
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected Validation, got %v", err)
	}
	if err := svc.DeleteTask(context.Background(), "t1"); err != invalid {
		t.Fatalf("expected error to pass through unchanged, got %v", err)
	}
}
