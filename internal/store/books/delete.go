package books

import (
	"context"

	"github.com/5w1tchy/library-catalog/internal/models"
	"github.com/doug-martin/goqu/v9"
)

// Delete removes book id permanently.
func (s *Store) Delete(ctx context.Context, id int64) error {
	query, args, err := s.dialect.Delete(table).Prepared(true).Where(goqu.C("id").Eq(id)).ToSQL()
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
