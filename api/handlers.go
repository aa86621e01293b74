package api

import (
	"context"
	"net/http"
	"time"

	"github.com/chxlky/taskboard-api/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BoardService interface {
	CreateBoard(ctx context.Context, in models.BoardInput) (*models.Board, error)
	ListBoards(ctx context.Context, filter models.BoardFilter, req models.PageRequest) (models.Page[models.Board], error)
	GetBoard(ctx context.Context, id string) (*models.Board, error)
	UpdateBoard(ctx context.Context, id string, patch models.BoardPatch) (*models.Board, error)
	DeleteBoard(ctx context.Context, id string) error
}

type TaskService interface {
	CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter, req models.PageRequest) (models.Page[models.Task], error)
	GetTask(ctx context.Context, id string) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	Boards BoardService
	Tasks  TaskService
	DB     Pinger
}

func (h *Handler) HealthCheckHandler(c *gin.Context) {
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			zap.L().Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
