package models

import (
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo  TaskStatus = "TODO"
	TaskStatusDoing TaskStatus = "DOING"
	TaskStatusDone  TaskStatus = "DONE"
)

// TaskStatuses lists every valid status in workflow order.
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusDoing, TaskStatusDone}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusDoing, TaskStatusDone:
		return true
	}
	return false
}

func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("invalid task status %q", s)
	}
	return status, nil
}

type Task struct {
	ID          string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title       string     `gorm:"size:100;not null" json:"title"`
	Description *string    `gorm:"size:500" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(5);not null;index;check:chk_tasks_status,status IN ('TODO','DOING','DONE')" json:"status"`
	BoardID     string     `gorm:"type:varchar(36);not null;index" json:"boardId"`
	CreatedAt   time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time  `json:"-"`

	// BoardName is joined from the owning board on read.
	BoardName string `gorm:"->;-:migration" json:"boardName"`

	Board *Board `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

type TaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	BoardID     string
}

type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	BoardID     *string
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.BoardID == nil
}

func (p TaskPatch) Columns() map[string]any {
	cols := make(map[string]any, 4)
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Status != nil {
		cols["status"] = string(*p.Status)
	}
	if p.BoardID != nil {
		cols["board_id"] = *p.BoardID
	}
	return cols
}

// TaskFilter fields are ANDed; zero values are ignored.
type TaskFilter struct {
	Status  TaskStatus
	BoardID string
	Search  string
}
