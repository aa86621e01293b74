package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/chxlky/taskboard-api/internal/models"
	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Title       string            `json:"title" binding:"required,min=1,max=100"`
	Description *string           `json:"description" binding:"omitnil,max=500"`
	Status      models.TaskStatus `json:"status" binding:"required,taskstatus"`
	BoardID     string            `json:"boardId" binding:"required,uuid"`
}

type updateTaskRequest struct {
	Title       *string            `json:"title" binding:"omitnil,min=1,max=100"`
	Description *string            `json:"description" binding:"omitnil,max=500"`
	Status      *models.TaskStatus `json:"status" binding:"omitnil,taskstatus"`
	BoardID     *string            `json:"boardId" binding:"omitnil,uuid"`
}

type taskQuery struct {
	Page    int               `form:"page,default=1" binding:"min=1"`
	Limit   int               `form:"limit,default=10" binding:"min=1,max=100"`
	Status  models.TaskStatus `form:"status" binding:"omitempty,taskstatus"`
	BoardID string            `form:"boardId" binding:"omitempty,uuid"`
	Search  string            `form:"search"`
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(sourceBody, err))
		return
	}

	task, err := h.Tasks.CreateTask(c.Request.Context(), models.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		BoardID:     req.BoardID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c *gin.Context) {
	var q taskQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(invalidRequest(sourceQuery, err))
		return
	}

	page, err := h.Tasks.ListTasks(c.Request.Context(),
		models.TaskFilter{Status: q.Status, BoardID: q.BoardID, Search: q.Search},
		models.PageRequest{Page: q.Page, Limit: q.Limit},
	)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) GetTask(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		_ = c.Error(invalidRequest(sourcePath, err))
		return
	}

	task, err := h.Tasks.GetTask(c.Request.Context(), p.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		_ = c.Error(invalidRequest(sourcePath, err))
		return
	}
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(invalidRequest(sourceBody, err))
		return
	}

	task, err := h.Tasks.UpdateTask(c.Request.Context(), p.ID, models.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		BoardID:     req.BoardID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		_ = c.Error(invalidRequest(sourcePath, err))
		return
	}

	if err := h.Tasks.DeleteTask(c.Request.Context(), p.ID); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
