package books

import (
	"net/http"

	"github.com/5w1tchy/library-catalog/internal/api/apperr"
	"github.com/5w1tchy/library-catalog/internal/metrics"
	"github.com/5w1tchy/library-catalog/internal/models"
	"github.com/5w1tchy/library-catalog/internal/view"
)

func (c *Controller) newForm(w http.ResponseWriter, r *http.Request) error {
	return c.render(w, r, http.StatusOK, view.BooksNew, view.Data{
		"book":  models.Draft{},
		"title": newTitle,
	})
}

func (c *Controller) create(w http.ResponseWriter, r *http.Request) error {
	draft, err := draftFromForm(r)
	if err != nil {
		return err
	}

	if _, err := c.store.Create(r.Context(), draft); err != nil {
		verr, ok := apperr.AsValidation(err)
		if !ok {
			return err
		}
		metrics.ValidationFailures.WithLabelValues("create").Inc()
		return c.render(w, r, http.StatusOK, view.BooksNew, view.Data{
			"book":   draft,
			"errors": verr.Fields,
			"title":  newTitle,
		})
	}
	return redirect(w, r, "/books/")
}
