package maintenance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/5w1tchy/library-catalog/internal/store/dbx"
)

var schema = []struct {
	name string
	ddl  string
}{
	{"books table", `
CREATE TABLE IF NOT EXISTS books (
  id         BIGSERIAL PRIMARY KEY,
  title      TEXT NOT NULL CONSTRAINT books_title_check CHECK (btrim(title) <> ''),
  author     TEXT NOT NULL CONSTRAINT books_author_check CHECK (btrim(author) <> ''),
  genre      TEXT NOT NULL DEFAULT '',
  year       TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`},
	{"title index", `CREATE INDEX IF NOT EXISTS idx_books_title_id ON books (title, id);`},
}

// EnsureSchema creates the books table and its index when missing.
// Safe to run on every start.
func EnsureSchema(ctx context.Context, db dbx.Execer, log *slog.Logger) error {
	for _, step := range schema {
		if _, err := db.ExecContext(ctx, step.ddl); err != nil {
			return fmt.Errorf("[schema] ensure %s: %w", step.name, err)
		}
		log.Debug("[schema] ensured", "step", step.name)
	}
	return nil
}
