package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"github.com/landtekbiz/treetek-backend/config"
)

// PublishableKey enforces the static bearer credential the quote form ships
// with. It identifies the client bundle, not a user; when no key is
// configured the check is skipped entirely.
func PublishableKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := config.PublishableKey()
		if expected == "" {
			next.ServeHTTP(w, r)
			return
		}

		auth := r.Header.Get("Authorization")
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			http.Error(w, "missing bearer credential", http.StatusUnauthorized)
			return
		}
		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(expected)) != 1 {
			log.Printf("[SECURITY] Blocked - invalid publishable key. Path=%s", r.URL.Path)
			http.Error(w, "invalid credential", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
