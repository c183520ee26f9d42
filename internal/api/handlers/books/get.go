package books

import (
	"net/http"

	"github.com/5w1tchy/library-catalog/internal/view"
)

func (c *Controller) show(w http.ResponseWriter, r *http.Request) error {
	b, found, err := c.lookup(r)
	if err != nil {
		return err
	}
	if !found {
		return c.notFound(w, r)
	}
	return c.render(w, r, http.StatusOK, view.BooksShow, view.Data{
		"book":  b,
		"title": b.Title,
	})
}
