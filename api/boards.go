package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/chxlky/taskboard-api/internal/models"
	"github.com/gin-gonic/gin"
)

type idParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type createBoardRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description" binding:"omitnil,max=50"`
}

type updateBoardRequest struct {
	Name        *string `json:"name" binding:"omitnil,min=1,max=100"`
	Description *string `json:"description" binding:"omitnil,max=50"`
}

type boardQuery struct {
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=10" binding:"min=1,max=100"`
	Search string `form:"search"`
}

func (h *Handler) CreateBoard(c *gin.Context) {
	var req createBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(invalidRequest(sourceBody, err))
		return
	}

	board, err := h.Boards.CreateBoard(c.Request.Context(), models.BoardInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, board)
}

func (h *Handler) ListBoards(c *gin.Context) {
	var q boardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		_ = c.Error(invalidRequest(sourceQuery, err))
		return
	}

	page, err := h.Boards.ListBoards(c.Request.Context(),
		models.BoardFilter{Search: q.Search},
		models.PageRequest{Page: q.Page, Limit: q.Limit},
	)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) GetBoard(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		_ = c.Error(invalidRequest(sourcePath, err))
		return
	}

	board, err := h.Boards.GetBoard(c.Request.Context(), p.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *Handler) UpdateBoard(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		_ = c.Error(invalidRequest(sourcePath, err))
		return
	}
	var req updateBoardRequest
	// An empty body is an empty patch, rejected further down.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(invalidRequest(sourceBody, err))
		return
	}

	board, err := h.Boards.UpdateBoard(c.Request.Context(), p.ID, models.BoardPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *Handler) DeleteBoard(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		_ = c.Error(invalidRequest(sourcePath, err))
		return
	}

	if err := h.Boards.DeleteBoard(c.Request.Context(), p.ID); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
