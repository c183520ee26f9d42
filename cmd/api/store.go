package main

import (
	"context"

	"github.com/5w1tchy/library-catalog/internal/api/handlers"
	"github.com/5w1tchy/library-catalog/internal/api/handlers/books"
	"github.com/5w1tchy/library-catalog/internal/export"
	"github.com/5w1tchy/library-catalog/internal/maintenance"
	"github.com/5w1tchy/library-catalog/internal/repository/sqlconnect"
	bookstore "github.com/5w1tchy/library-catalog/internal/store/books"
	"github.com/5w1tchy/library-catalog/internal/store/memory"
)

// catalogStore is what the server and the export job need from a store.
type catalogStore interface {
	books.Store
	handlers.Pinger
	export.Source
}

// openStore picks Postgres when DATABASE_URL is set, memory otherwise.
// The returned func releases the connection pool.
func (a *app) openStore(ctx context.Context) (catalogStore, func(), error) {
	if a.cfg.DatabaseURL == "" {
		a.log.Info("[store] using in-memory store")
		return memory.New(), func() {}, nil
	}

	db, err := sqlconnect.ConnectDB(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := maintenance.EnsureSchema(ctx, db, a.log); err != nil {
		db.Close()
		return nil, nil, err
	}
	a.log.Info("[store] connected to postgres")
	return bookstore.New(db), func() { db.Close() }, nil
}
