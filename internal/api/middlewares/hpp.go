package middlewares

import (
	"net/http"
	"slices"
	"strings"
)

// HPPOptions configures HTTP parameter pollution filtering: repeated
// parameters collapse to their first value and unknown ones are dropped.
type HPPOptions struct {
	CheckQuery                  bool
	CheckBody                   bool
	CheckBodyOnlyForContentType string
	Whitelist                   []string
}

func HPP(opts HPPOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if opts.CheckBody && r.Method == http.MethodPost && isCorrectContentType(r, opts.CheckBodyOnlyForContentType) {
				filterBodyParams(r, opts.Whitelist)
			}
			if opts.CheckQuery && r.URL.RawQuery != "" {
				filterQueryParams(r, opts.Whitelist)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isCorrectContentType(r *http.Request, contentType string) bool {
	return strings.Contains(r.Header.Get("Content-Type"), contentType)
}

func filterBodyParams(r *http.Request, whitelist []string) {
	if err := r.ParseForm(); err != nil {
		return
	}
	for _, form := range []map[string][]string{r.Form, r.PostForm} {
		for k, v := range form {
			if !slices.Contains(whitelist, k) {
				delete(form, k)
				continue
			}
			if len(v) > 1 {
				form[k] = v[:1]
			}
		}
	}
}

func filterQueryParams(r *http.Request, whitelist []string) {
	query := r.URL.Query()
	for k, v := range query {
		if len(v) > 1 {
			query.Set(k, v[0])
		}
		if !slices.Contains(whitelist, k) {
			query.Del(k)
		}
	}
	r.URL.RawQuery = query.Encode()
}

// DefaultHPPOptions whitelists the book form fields, the search term and
// the CSRF field.
func DefaultHPPOptions() HPPOptions {
	return HPPOptions{
		CheckQuery:                  true,
		CheckBody:                   true,
		CheckBodyOnlyForContentType: "application/x-www-form-urlencoded",
		Whitelist: []string{
			"title", "author", "genre", "year",
			"term",
			"csrf_token",
		},
	}
}
