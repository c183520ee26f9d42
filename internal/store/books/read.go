package books

import (
	"context"
	"database/sql"
	"errors"

	"github.com/5w1tchy/library-catalog/internal/models"
	"github.com/doug-martin/goqu/v9"
)

func (s *Store) Get(ctx context.Context, id int64) (models.Book, error) {
	query, args, err := s.from().Select(columns...).Where(goqu.C("id").Eq(id)).Limit(1).ToSQL()
	if err != nil {
		return models.Book{}, err
	}

	var b models.Book
	if err := s.db.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, models.ErrNotFound
		}
		return models.Book{}, err
	}
	return b, nil
}
