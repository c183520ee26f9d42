package books

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/library-catalog/internal/models"
)

func (c *Controller) destroy(w http.ResponseWriter, r *http.Request) error {
	b, found, err := c.lookup(r)
	if err != nil {
		return err
	}
	if !found {
		return c.notFound(w, r)
	}

	if err := c.store.Delete(r.Context(), b.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.notFound(w, r)
		}
		return err
	}
	return redirect(w, r, "/books")
}
