package service

import (
	"context"

	"github.com/chxlky/taskboard-api/internal/models"
	"go.uber.org/zap"
)

// BoardStore is the persistence contract BoardService depends on.
type BoardStore interface {
	Create(ctx context.Context, in models.BoardInput) (*models.Board, error)
	List(ctx context.Context, filter models.BoardFilter, req models.PageRequest) (models.Page[models.Board], error)
	GetByID(ctx context.Context, id string) (*models.Board, error)
	Update(ctx context.Context, id string, patch models.BoardPatch) (*models.Board, error)
	Delete(ctx context.Context, id string) error
}

type BoardService struct {
	store BoardStore
}

func NewBoardService(store BoardStore) *BoardService {
	return &BoardService{store: store}
}

func (s *BoardService) CreateBoard(ctx context.Context, in models.BoardInput) (*models.Board, error) {
	board, err := s.store.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("Board created", zap.String("boardID", board.ID), zap.String("name", board.Name))
	return board, nil
}

func (s *BoardService) ListBoards(ctx context.Context, filter models.BoardFilter, req models.PageRequest) (models.Page[models.Board], error) {
	return s.store.List(ctx, filter, req)
}

func (s *BoardService) GetBoard(ctx context.Context, id string) (*models.Board, error) {
	return s.store.GetByID(ctx, id)
}

func (s *BoardService) UpdateBoard(ctx context.Context, id string, patch models.BoardPatch) (*models.Board, error) {
	board, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("Board updated", zap.String("boardID", id))
	return board, nil
}

func (s *BoardService) DeleteBoard(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	zap.L().Debug("Board deleted", zap.String("boardID", id))
	return nil
}
