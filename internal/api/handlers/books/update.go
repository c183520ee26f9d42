package books

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/library-catalog/internal/api/apperr"
	"github.com/5w1tchy/library-catalog/internal/metrics"
	"github.com/5w1tchy/library-catalog/internal/models"
	"github.com/5w1tchy/library-catalog/internal/view"
)

func (c *Controller) editForm(w http.ResponseWriter, r *http.Request) error {
	b, found, err := c.lookup(r)
	if err != nil {
		return err
	}
	if !found {
		return c.notFound(w, r)
	}
	return c.render(w, r, http.StatusOK, view.BooksEdit, view.Data{
		"book":  models.DraftOf(b),
		"title": editTitle,
	})
}

func (c *Controller) update(w http.ResponseWriter, r *http.Request) error {
	b, found, err := c.lookup(r)
	if err != nil {
		return err
	}
	if !found {
		return c.notFound(w, r)
	}

	draft, err := draftFromForm(r)
	if err != nil {
		return err
	}
	draft.TargetID = b.ID

	_, err = c.store.Update(r.Context(), b.ID, draft)
	switch {
	case err == nil:
		return redirect(w, r, "/books/page/1")
	case errors.Is(err, models.ErrNotFound):
		// deleted between lookup and write
		return c.notFound(w, r)
	}

	verr, ok := apperr.AsValidation(err)
	if !ok {
		return err
	}
	metrics.ValidationFailures.WithLabelValues("update").Inc()
	return c.render(w, r, http.StatusOK, view.BooksEdit, view.Data{
		"book":   draft,
		"errors": verr.Fields,
		"title":  editTitle,
	})
}
