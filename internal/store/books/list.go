package books

import (
	"context"
	"fmt"
	"strings"

	"github.com/5w1tchy/library-catalog/internal/models"
	"github.com/doug-martin/goqu/v9"
)

// List returns one page of books ordered by title (id breaks ties) and the
// total number of books matching q.Term.
func (s *Store) List(ctx context.Context, q models.ListQuery) ([]models.Book, int, error) {
	ds := s.from()
	if term := strings.TrimSpace(q.Term); term != "" {
		p := containsPattern(term)
		ds = ds.Where(goqu.Or(
			goqu.C("genre").ILike(p),
			goqu.C("title").ILike(p),
			goqu.C("author").ILike(p),
			goqu.C("year").ILike(p),
		))
	}

	countSQL, countArgs, err := ds.Select(goqu.COUNT(goqu.Star())).ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := s.db.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	page := ds.Select(columns...).Order(goqu.C("title").Asc(), goqu.C("id").Asc())
	if q.Limit > 0 {
		page = page.Limit(uint(q.Limit))
	}
	if q.Offset > 0 {
		page = page.Offset(uint(q.Offset))
	}
	pageSQL, pageArgs, err := page.ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	books := []models.Book{}
	if err := s.db.SelectContext(ctx, &books, pageSQL, pageArgs...); err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	return books, total, nil
}

// All returns every book ordered by id. Used for catalog snapshots.
func (s *Store) All(ctx context.Context) ([]models.Book, error) {
	query, args, err := s.from().Select(columns...).Order(goqu.C("id").Asc()).ToSQL()
	if err != nil {
		return nil, err
	}
	books := []models.Book{}
	if err := s.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, fmt.Errorf("select all books: %w", err)
	}
	return books, nil
}
