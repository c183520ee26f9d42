package books

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/5w1tchy/library-catalog/internal/models"
	"github.com/5w1tchy/library-catalog/internal/pagination"
	"github.com/5w1tchy/library-catalog/internal/view"
)

func (c *Controller) list(w http.ResponseWriter, r *http.Request) error {
	return redirect(w, r, "/books/page/1")
}

func (c *Controller) listPage(w http.ResponseWriter, r *http.Request) error {
	return c.renderIndex(w, r, "", r.PathValue("page"))
}

// search treats a missing {page} like page 1.
func (c *Controller) search(w http.ResponseWriter, r *http.Request) error {
	term := strings.TrimSpace(r.PathValue("term"))
	return c.renderIndex(w, r, term, r.PathValue("page"))
}

func (c *Controller) searchSubmit(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	term := strings.TrimSpace(r.FormValue("term"))
	if term == "" {
		return redirect(w, r, "/books/")
	}
	return redirect(w, r, "/books/search/"+url.PathEscape(term)+"/1")
}

func (c *Controller) renderIndex(w http.ResponseWriter, r *http.Request, term, rawPage string) error {
	cur := pagination.New(rawPage, c.pageSize)
	books, total, err := c.store.List(r.Context(), models.ListQuery{
		Term:   term,
		Limit:  cur.Limit(),
		Offset: cur.Offset(),
	})
	if err != nil {
		return err
	}
	cur = cur.WithTotal(total)

	data := view.Data{
		"books":          books,
		"currentPage":    cur.CurrentPage,
		"totalPageCount": cur.TotalPageCount,
		"title":          listTitle,
	}
	if term != "" {
		data["search"] = term
	}
	return c.render(w, r, http.StatusOK, view.BooksIndex, data)
}
