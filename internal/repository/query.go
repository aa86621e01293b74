package repository

import (
	"context"
	"strings"

	"github.com/chxlky/taskboard-api/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lower-cased LIKE pattern matching term anywhere.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// searchScope matches term case-insensitively against either column.
func searchScope(term, colA, colB string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		pattern := containsPattern(term)
		return db.Where(
			"(LOWER("+colA+`) LIKE ? ESCAPE '\' OR LOWER(`+colB+`) LIKE ? ESCAPE '\')`,
			pattern, pattern,
		)
	}
}

// paginate runs the count and the page fetch concurrently. The two reads do
// not share a snapshot, so total may drift from the page under writes.
func paginate[T any](
	ctx context.Context,
	db *gorm.DB,
	model any,
	filter func(*gorm.DB) *gorm.DB,
	page func(*gorm.DB) *gorm.DB,
	req models.PageRequest,
) (models.Page[T], error) {
	var (
		total int64
		items []T
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.WithContext(gctx).Model(model).Scopes(filter).Count(&total).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).Model(model).Scopes(filter, page).
			Offset(req.Offset()).
			Limit(req.Limit).
			Find(&items).Error
	})
	if err := g.Wait(); err != nil {
		return models.Page[T]{}, err
	}

	return models.NewPage(items, total, req), nil
}
