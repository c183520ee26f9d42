package books

import (
	"context"

	"github.com/5w1tchy/library-catalog/internal/models"
	"github.com/5w1tchy/library-catalog/internal/store/dbx"
	"github.com/5w1tchy/library-catalog/internal/validate"
	"github.com/doug-martin/goqu/v9"
)

// Create validates d and inserts it. Validation failures come back as
// *apperr.ValidationError, whether caught here or by a table constraint.
func (s *Store) Create(ctx context.Context, d models.Draft) (models.Book, error) {
	if err := validate.Book(d); err != nil {
		return models.Book{}, err
	}

	query, args, err := s.dialect.Insert(table).Prepared(true).
		Cols("title", "author", "genre", "year").
		Vals(goqu.Vals{d.Title, d.Author, d.Genre, d.Year}).
		Returning(columns...).
		ToSQL()
	if err != nil {
		return models.Book{}, err
	}

	var b models.Book
	if err := s.db.GetContext(ctx, &b, query, args...); err != nil {
		return models.Book{}, dbx.MapPGError(err)
	}
	return b, nil
}
