package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/landtekbiz/treetek-backend/handlers"
	"github.com/landtekbiz/treetek-backend/middleware"
)

// RegisterRoutes wires the public site endpoints, the quote submission
// function, and the token-gated admin API.
func RegisterRoutes(quote *handlers.QuoteHandler, gallery *handlers.GalleryHandler, social *handlers.SocialHandler, requests *handlers.RequestsHandler) http.Handler {
	r := mux.NewRouter()

	// Public routes (no authentication required)
	r.HandleFunc("/api/v1/gallery", gallery.List).Methods("GET")
	r.HandleFunc("/api/v1/social", social.List).Methods("GET")
	r.HandleFunc("/api/v1/site", handlers.GetSiteInfo).Methods("GET")
	r.HandleFunc("/api/v1/admin/login", handlers.AdminLogin).Methods("POST")

	// Quote submission, kept at the path the deployed form posts to
	quoteChain := middleware.PublishableKey(http.HandlerFunc(quote.Handle))
	r.Handle("/functions/v1/request-quote", quoteChain).Methods("POST")
	r.Handle("/api/v1/quote", quoteChain).Methods("POST")

	// Local storage backend serves its objects from here
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// Protected admin routes (require a session token)
	admin := r.PathPrefix("/api/v1/admin").Subrouter()
	admin.Use(middleware.JWTMiddleware)
	admin.HandleFunc("/requests", requests.List).Methods("GET")
	admin.HandleFunc("/requests/export", requests.Export).Methods("GET")
	admin.HandleFunc("/gallery", gallery.Upload).Methods("POST")
	admin.HandleFunc("/gallery/{id}", gallery.Delete).Methods("DELETE")
	admin.HandleFunc("/social", social.Create).Methods("POST")
	admin.HandleFunc("/social/{id}", social.Delete).Methods("DELETE")
	admin.HandleFunc("/social/{id}/publish", social.TogglePublish).Methods("PATCH")

	return r
}
