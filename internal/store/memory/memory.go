// Package memory keeps books in process memory. Used when no DATABASE_URL is
// configured and in tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/5w1tchy/library-catalog/internal/models"
	"github.com/5w1tchy/library-catalog/internal/validate"
	"golang.org/x/text/cases"
)

type Store struct {
	mu     sync.Mutex
	books  map[int64]models.Book
	nextID int64
	now    func() time.Time
}

func New(seed ...models.Draft) *Store {
	s := &Store{
		books:  make(map[int64]models.Book),
		nextID: 1,
		now:    time.Now,
	}
	for _, d := range seed {
		if _, err := s.Create(context.Background(), d); err != nil {
			panic("memory: invalid seed book: " + err.Error())
		}
	}
	return s
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) List(_ context.Context, q models.ListQuery) ([]models.Book, int, error) {
	s.mu.Lock()
	matched := make([]models.Book, 0, len(s.books))
	term := strings.TrimSpace(q.Term)
	fold := cases.Fold()
	needle := fold.String(term)
	for _, b := range s.books {
		if term == "" || matches(fold, b, needle) {
			matched = append(matched, b)
		}
	}
	s.mu.Unlock()

	// case-insensitive title order, close to what a Postgres text collation gives
	keys := make(map[int64]string, len(matched))
	for _, b := range matched {
		keys[b.ID] = fold.String(b.Title)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if keys[a.ID] != keys[b.ID] {
			return keys[a.ID] < keys[b.ID]
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})

	total := len(matched)
	start := min(max(q.Offset, 0), total)
	end := total
	if q.Limit > 0 {
		end = min(start+q.Limit, total)
	}
	return matched[start:end], total, nil
}

func matches(fold cases.Caser, b models.Book, needle string) bool {
	for _, field := range []string{b.Genre, b.Title, b.Author, b.Year} {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}

// All returns every book ordered by id.
func (s *Store) All(context.Context) ([]models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) Get(_ context.Context, id int64) (models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return models.Book{}, models.ErrNotFound
	}
	return b, nil
}

func (s *Store) Create(_ context.Context, d models.Draft) (models.Book, error) {
	if err := validate.Book(d); err != nil {
		return models.Book{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	b := models.Book{
		ID:        s.nextID,
		Title:     d.Title,
		Author:    d.Author,
		Genre:     d.Genre,
		Year:      d.Year,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.books[b.ID] = b
	s.nextID++ // ids are never reused, even after Delete
	return b, nil
}

func (s *Store) Update(_ context.Context, id int64, d models.Draft) (models.Book, error) {
	if err := validate.Book(d); err != nil {
		return models.Book{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return models.Book{}, models.ErrNotFound
	}
	b.Title, b.Author, b.Genre, b.Year = d.Title, d.Author, d.Genre, d.Year
	b.UpdatedAt = s.now()
	s.books[id] = b
	return b, nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.books, id)
	return nil
}
