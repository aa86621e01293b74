package repository

import (
	"context"

	"github.com/chxlky/taskboard-api/internal/apperror"
	"github.com/chxlky/taskboard-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeletePolicy decides what happens to a board's tasks when the board is deleted.
type DeletePolicy string

const (
	// DeleteRestrict refuses to delete a board that still has tasks.
	DeleteRestrict DeletePolicy = "restrict"
	// DeleteCascade removes the board's tasks together with the board.
	DeleteCascade DeletePolicy = "cascade"
)

const boardColumns = "boards.*, (SELECT COUNT(*) FROM tasks WHERE tasks.board_id = boards.id) AS task_count"

var (
	errBoardNotFound = apperror.NotFound("Board not found", nil)
	errBoardHasTasks = apperror.Conflict("Board has tasks", nil)
	errNoBoardFields = apperror.Validation("No valid fields to update", nil)
)

type BoardRepository struct {
	db           *gorm.DB
	deletePolicy DeletePolicy
}

func NewBoardRepository(db *gorm.DB, policy DeletePolicy) *BoardRepository {
	if policy != DeleteCascade {
		policy = DeleteRestrict
	}
	return &BoardRepository{db: db, deletePolicy: policy}
}

func (r *BoardRepository) Create(ctx context.Context, in models.BoardInput) (*models.Board, error) {
	board := models.Board{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
	}
	if err := r.db.WithContext(ctx).Create(&board).Error; err != nil {
		return nil, translate(err, rules{
			failureDuplicateKey: apperror.Conflict("Board already exists", nil),
		})
	}
	return &board, nil
}

// List returns boards newest first. Search matches name or description.
func (r *BoardRepository) List(ctx context.Context, filter models.BoardFilter, req models.PageRequest) (models.Page[models.Board], error) {
	req = req.Normalize()
	page, err := paginate[models.Board](ctx, r.db, &models.Board{},
		searchScope(filter.Search, "boards.name", "boards.description"),
		func(db *gorm.DB) *gorm.DB {
			return db.Select(boardColumns).Order("boards.created_at DESC").Order("boards.id DESC")
		},
		req,
	)
	if err != nil {
		return models.Page[models.Board]{}, translate(err, nil)
	}
	return page, nil
}

func (r *BoardRepository) GetByID(ctx context.Context, id string) (*models.Board, error) {
	var board models.Board
	err := r.db.WithContext(ctx).
		Select(boardColumns).
		Where("boards.id = ?", id).
		Take(&board).Error
	if err != nil {
		return nil, translate(err, rules{failureMissingRow: notFoundBoard(id)})
	}
	return &board, nil
}

// Update applies only the fields set in patch. An empty patch is rejected
// before any statement runs.
func (r *BoardRepository) Update(ctx context.Context, id string, patch models.BoardPatch) (*models.Board, error) {
	if patch.Empty() {
		return nil, errNoBoardFields
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Board{}).Where("id = ?", id).Updates(patch.Columns())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, translate(err, rules{failureMissingRow: notFoundBoard(id)})
	}
	return r.GetByID(ctx, id)
}

func (r *BoardRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taskCount int64
		if err := tx.Model(&models.Task{}).Where("board_id = ?", id).Count(&taskCount).Error; err != nil {
			return err
		}
		if taskCount > 0 {
			if r.deletePolicy == DeleteRestrict {
				return apperror.Conflict(errBoardHasTasks.Message, map[string]any{
					"boardId":   id,
					"taskCount": taskCount,
				})
			}
			if err := tx.Where("board_id = ?", id).Delete(&models.Task{}).Error; err != nil {
				return err
			}
		}

		res := tx.Where("id = ?", id).Delete(&models.Board{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	return translate(err, rules{
		failureMissingRow: notFoundBoard(id),
		// a task inserted between the count and the delete
		failureForeignKey: errBoardHasTasks,
	})
}

func notFoundBoard(id string) *apperror.Error {
	return apperror.NotFound(errBoardNotFound.Message, map[string]any{"boardId": id})
}
