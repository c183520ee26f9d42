// Package books serves the catalog pages under /books.
package books

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/5w1tchy/library-catalog/internal/api/middlewares"
	"github.com/5w1tchy/library-catalog/internal/models"
	"github.com/5w1tchy/library-catalog/internal/pagination"
	"github.com/5w1tchy/library-catalog/internal/view"
)

// Store is the record store the pages read and write.
type Store interface {
	List(ctx context.Context, q models.ListQuery) ([]models.Book, int, error)
	Get(ctx context.Context, id int64) (models.Book, error)
	Create(ctx context.Context, d models.Draft) (models.Book, error)
	Update(ctx context.Context, id int64, d models.Draft) (models.Book, error)
	Delete(ctx context.Context, id int64) error
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data view.Data) error
}

type Controller struct {
	store    Store
	view     Renderer
	log      *slog.Logger
	pageSize int
}

func New(store Store, r Renderer, log *slog.Logger, pageSize int) *Controller {
	if pageSize < 1 {
		pageSize = pagination.PageSize
	}
	return &Controller{store: store, view: r, log: log, pageSize: pageSize}
}

const (
	listTitle = "Library Manager"
	newTitle  = "New Book"
	editTitle = "Edit Book"
)

// handlerFunc returns anything it could not handle itself.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle is the single place unclassified failures end up: they are logged
// and answered with 500 and the raw error text.
func (c *Controller) handle(op string, fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			c.log.Error("[books] request failed",
				"op", op,
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", middlewares.GetRequestID(r),
				"err", err,
			)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func (c *Controller) render(w http.ResponseWriter, r *http.Request, status int, name string, data view.Data) error {
	if data == nil {
		data = view.Data{}
	}
	data["csrfToken"] = middlewares.CSRFTokenFrom(r.Context())
	return c.view.Render(w, status, name, data)
}

func (c *Controller) notFound(w http.ResponseWriter, r *http.Request) error {
	return c.render(w, r, http.StatusNotFound, view.Error, view.Data{
		"error": map[string]any{"status": http.StatusNotFound},
	})
}

func redirect(w http.ResponseWriter, r *http.Request, to string) error {
	http.Redirect(w, r, to, http.StatusFound)
	return nil
}

// bookID parses the {id} route segment. ok is false for anything that
// cannot name a stored book.
func bookID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// lookup resolves {id}; found is false when the not-found page should be shown.
func (c *Controller) lookup(r *http.Request) (book models.Book, found bool, err error) {
	id, ok := bookID(r)
	if !ok {
		return models.Book{}, false, nil
	}
	b, err := c.store.Get(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		return models.Book{}, false, nil
	}
	if err != nil {
		return models.Book{}, false, err
	}
	return b, true, nil
}

func draftFromForm(r *http.Request) (models.Draft, error) {
	if err := r.ParseForm(); err != nil {
		return models.Draft{}, err
	}
	return models.Draft{
		Title:  r.FormValue("title"),
		Author: r.FormValue("author"),
		Genre:  r.FormValue("genre"),
		Year:   r.FormValue("year"),
	}, nil
}

// NotFound renders the not-found page for paths outside /books.
func (c *Controller) NotFound() http.Handler {
	return c.handle("not_found", c.notFound)
}
