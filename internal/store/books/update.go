package books

import (
	"context"
	"database/sql"
	"errors"

	"github.com/5w1tchy/library-catalog/internal/models"
	"github.com/5w1tchy/library-catalog/internal/store/dbx"
	"github.com/5w1tchy/library-catalog/internal/validate"
	"github.com/doug-martin/goqu/v9"
)

// Update replaces every editable field of book id with d.
func (s *Store) Update(ctx context.Context, id int64, d models.Draft) (models.Book, error) {
	if err := validate.Book(d); err != nil {
		return models.Book{}, err
	}

	query, args, err := s.dialect.Update(table).Prepared(true).
		Set(goqu.Record{
			"title":      d.Title,
			"author":     d.Author,
			"genre":      d.Genre,
			"year":       d.Year,
			"updated_at": goqu.L("NOW()"),
		}).
		Where(goqu.C("id").Eq(id)).
		Returning(columns...).
		ToSQL()
	if err != nil {
		return models.Book{}, err
	}

	var b models.Book
	if err := s.db.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, models.ErrNotFound
		}
		return models.Book{}, dbx.MapPGError(err)
	}
	return b, nil
}
