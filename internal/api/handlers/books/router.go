package books

import "net/http"

// Routes returns the page routes relative to the /books mount point.
func (c *Controller) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", c.handle("list", c.list))
	mux.HandleFunc("GET /page/{page}", c.handle("list_page", c.listPage))
	mux.HandleFunc("GET /new", c.handle("new_form", c.newForm))
	mux.HandleFunc("POST /{$}", c.handle("create", c.create))

	mux.HandleFunc("GET /search/{term}", c.handle("search", c.search))
	mux.HandleFunc("GET /search/{term}/{page}", c.handle("search", c.search))
	mux.HandleFunc("POST /search", c.handle("search_submit", c.searchSubmit))

	mux.HandleFunc("GET /{id}", c.handle("show", c.show))
	mux.HandleFunc("POST /{id}/edit", c.handle("edit_form", c.editForm))
	mux.HandleFunc("POST /{id}/{$}", c.handle("update", c.update))
	mux.HandleFunc("POST /{id}", c.handle("update", c.update))
	mux.HandleFunc("POST /{id}/delete", c.handle("delete", c.destroy))

	mux.HandleFunc("/", c.handle("not_found", c.notFound))
	return mux
}
