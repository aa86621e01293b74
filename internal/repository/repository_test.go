package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/chxlky/taskboard-api/database"
	"github.com/chxlky/taskboard-api/internal/config"
	"github.com/chxlky/taskboard-api/internal/models"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Init(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   "file:" + name + "?mode=memory&cache=shared",
	})
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })
	return db
}

func strPtr(s string) *string { return &s }

func mustCreateBoard(t *testing.T, repo *BoardRepository, name string, description *string) *models.Board {
	t.Helper()
	board, err := repo.Create(context.Background(), models.BoardInput{Name: name, Description: description})
	if err != nil {
		t.Fatalf("create board %q: %v", name, err)
	}
	return board
}

func mustCreateTask(t *testing.T, repo *TaskRepository, in models.TaskInput) *models.Task {
	t.Helper()
	task, err := repo.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create task %q: %v", in.Title, err)
	}
	return task
}
