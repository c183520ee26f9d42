package middlewares

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
)

type CSRFOptions struct {
	TokenHeader    string        // Default: "X-CSRF-Token"
	FormField      string        // Default: "csrf_token"
	CookieName     string        // Default: "csrf_token"
	CookiePath     string        // Default: "/"
	CookieSecure   bool          // Set to true in production with HTTPS
	CookieSameSite http.SameSite // Default: SameSiteStrictMode
}

func DefaultCSRFOptions() CSRFOptions {
	return CSRFOptions{
		TokenHeader:    "X-CSRF-Token",
		FormField:      "csrf_token",
		CookieName:     "csrf_token",
		CookiePath:     "/",
		CookieSecure:   false, // Set to true in production
		CookieSameSite: http.SameSiteStrictMode,
	}
}

const ctxKeyCSRFToken ctxKey = iota + 1

// CSRF implements the double-submit cookie pattern. Every request gets a
// token in its context (for forms); unsafe methods must echo the cookie
// value in the header or the form field.
func CSRF(opts CSRFOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var expectedToken string
			if cookie, err := r.Cookie(opts.CookieName); err == nil && cookie.Value != "" {
				expectedToken = cookie.Value
			} else {
				// fresh token: any unsafe request carrying it is necessarily a forgery
				expectedToken = generateCSRFToken()
				http.SetCookie(w, &http.Cookie{
					Name:     opts.CookieName,
					Value:    expectedToken,
					Path:     opts.CookiePath,
					Secure:   opts.CookieSecure,
					HttpOnly: true,
					SameSite: opts.CookieSameSite,
				})
				if !isSafeMethod(r.Method) {
					http.Error(w, "CSRF token validation failed", http.StatusForbidden)
					return
				}
			}
			r = r.WithContext(context.WithValue(r.Context(), ctxKeyCSRFToken, expectedToken))

			if isSafeMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			providedToken := r.Header.Get(opts.TokenHeader)
			if providedToken == "" {
				providedToken = r.FormValue(opts.FormField)
			}
			if !isValidCSRFToken(expectedToken, providedToken) {
				http.Error(w, "CSRF token validation failed", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CSRFTokenFrom returns the token forms should submit, or "" outside CSRF.
func CSRFTokenFrom(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyCSRFToken).(string)
	return v
}

func isSafeMethod(m string) bool {
	return m == http.MethodGet || m == http.MethodHead || m == http.MethodOptions
}

func generateCSRFToken() string {
	var b [32]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

func isValidCSRFToken(expected, provided string) bool {
	if expected == "" || provided == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}
