package view

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/5w1tchy/library-catalog/internal/api/apperr"
	"github.com/5w1tchy/library-catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func TestRenderIndexWithPagination(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusOK, BooksIndex, Data{
		"title":          "Library Manager",
		"books":          []models.Book{{ID: 11, Title: "Kindred"}, {ID: 12, Title: "Lolita"}},
		"currentPage":    3,
		"totalPageCount": 3,
		"csrfToken":      "tok",
	})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, "<title>Library Manager</title>")
	assert.Contains(t, body, `<a href="/books/11">Kindred</a>`)
	assert.Contains(t, body, `<a href="/books/page/1">1</a>`)
	assert.Contains(t, body, `<span class="active">3</span>`)
	assert.Contains(t, body, `value="tok"`)
	assert.NotContains(t, body, "no value")
}

func TestRenderSearchLinksKeepTerm(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusOK, BooksIndex, Data{
		"title":          "Library Manager",
		"books":          []models.Book{{ID: 1, Title: "The Hobbit"}},
		"search":         "sci fi",
		"currentPage":    1,
		"totalPageCount": 2,
		"csrfToken":      "tok",
	})
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `href="/books/search/sci%20fi/2"`)
}

func TestRenderFormWithErrorsEscapesInput(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusOK, BooksEdit, Data{
		"title":     "Edit Book",
		"book":      models.Draft{TargetID: 7, Title: `<script>x</script>`, Author: ""},
		"errors":    []apperr.FieldError{{Field: "author", Code: "required", Message: `Please provide a value for "Author"`}},
		"csrfToken": "tok",
	})
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, `action="/books/7/"`)
	assert.Contains(t, body, `data-field="author"`)
	assert.NotContains(t, body, "<script>x</script>")
}

func TestRenderNotFound(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusNotFound, Error, Data{
		"error":     map[string]any{"status": http.StatusNotFound},
		"csrfToken": "tok",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page Not Found")
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusOK, "books/missing", Data{})
	require.Error(t, err)
	assert.Empty(t, rec.Body.String())
}

func TestRenderFailureWritesNothing(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/layout.html":        {Data: []byte(`{{define "layout"}}{{template "content" .}}{{end}}`)},
		"templates/partials/form.html": {Data: []byte(`{{define "errors"}}{{end}}`)},
		"templates/books/index.html":   {Data: []byte(`{{define "content"}}{{.book.Missing.Field}}{{end}}`)},
		"templates/books/new.html":     {Data: []byte(`{{define "content"}}{{end}}`)},
		"templates/books/edit.html":    {Data: []byte(`{{define "content"}}{{end}}`)},
		"templates/books/show.html":    {Data: []byte(`{{define "content"}}{{end}}`)},
		"templates/error.html":         {Data: []byte(`{{define "content"}}{{end}}`)},
	}
	r, err := NewFromFS(fsys)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = r.Render(rec, http.StatusOK, BooksIndex, Data{"book": models.Book{}})
	require.Error(t, err)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Content-Type"))
}

func TestSeq(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, seq(3))
	assert.Empty(t, seq(0))
}
