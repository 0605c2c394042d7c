// handlers/auth.go
package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/landtekbiz/treetek-backend/config"
	"github.com/landtekbiz/treetek-backend/middleware"
)

type adminLoginReq struct {
	Key string `json:"key"`
}

type adminLoginResp struct {
	Token string `json:"token"`
}

// AdminLogin exchanges the pre-shared admin key for a session token. Every
// admin route verifies that token server-side; the key itself never gates a
// request directly.
func AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if !verifyAdminKey(req.Key) {
		http.Error(w, "invalid key", http.StatusUnauthorized)
		return
	}

	token, err := middleware.GenerateAdminToken()
	if err != nil {
		http.Error(w, "couldn't create token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, adminLoginResp{Token: token})
}

func verifyAdminKey(key string) bool {
	if key == "" {
		return false
	}
	if hash := config.AdminKeyHash(); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(config.AdminKey())) == 1
}
