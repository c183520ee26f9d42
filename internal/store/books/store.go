package books

import (
	"context"
	"strings"

	"github.com/5w1tchy/library-catalog/internal/store/dbx"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"
)

const table = "books"

// columns selected into models.Book, in scan order.
var columns = []any{"id", "title", "author", "genre", "year", "created_at", "updated_at"}

// Store is the Postgres-backed book store.
type Store struct {
	pool    *sqlx.DB
	db      dbx.Conn // statements; *sqlx.DB or *sqlx.Tx
	dialect goqu.DialectWrapper
}

func New(db *sqlx.DB) *Store {
	return &Store{pool: db, db: db, dialect: goqu.Dialect("postgres")}
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error { return s.pool.PingContext(ctx) }

func (s *Store) from() *goqu.SelectDataset {
	return s.dialect.From(table).Prepared(true)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term literally anywhere.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
