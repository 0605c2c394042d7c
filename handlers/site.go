package handlers

import (
	"net/http"

	"github.com/landtekbiz/treetek-backend/config"
	"github.com/landtekbiz/treetek-backend/models"
)

// GetSiteInfo serves the display constants the contact page and footer
// render, plus the service list the quote form offers.
func GetSiteInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"phone":         config.BusinessPhone(),
		"email":         config.BusinessEmail(),
		"service_area":  config.ServiceArea(),
		"service_types": models.ServiceTypes,
	})
}
