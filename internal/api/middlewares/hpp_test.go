package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	mw "github.com/5w1tchy/library-catalog/internal/api/middlewares"
)

func TestHPP_FiltersBody(t *testing.T) {
	var got url.Values
	h := mw.HPP(mw.DefaultHPPOptions())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Form
	}))

	body := "title=Dune&title=Evil&author=Frank+Herbert&is_admin=1"
	req := httptest.NewRequest("POST", "/books/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if v := got["title"]; len(v) != 1 || v[0] != "Dune" {
		t.Errorf("Expected first title only, got %v", v)
	}
	if got.Get("author") != "Frank Herbert" {
		t.Errorf("Expected author kept, got %q", got.Get("author"))
	}
	if _, ok := got["is_admin"]; ok {
		t.Error("Expected unknown parameter dropped")
	}
}

func TestHPP_FiltersQuery(t *testing.T) {
	var raw string
	h := mw.HPP(mw.DefaultHPPOptions())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw = r.URL.RawQuery
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/books/page/1?term=a&term=b&debug=1", nil))

	if raw != "term=a" {
		t.Errorf("Expected term=a, got %q", raw)
	}
}
