package models

import "time"

type Board struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description *string   `gorm:"size:50" json:"description"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`

	// TaskCount is computed on read and never stored.
	TaskCount int64 `gorm:"->;-:migration" json:"taskCount"`
}

type BoardInput struct {
	Name        string
	Description *string
}

type BoardPatch struct {
	Name        *string
	Description *string
}

func (p BoardPatch) Empty() bool {
	return p.Name == nil && p.Description == nil
}

// Columns returns the column/value pairs the patch sets.
func (p BoardPatch) Columns() map[string]any {
	cols := make(map[string]any, 2)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	return cols
}

type BoardFilter struct {
	Search string
}
