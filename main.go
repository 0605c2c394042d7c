package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/landtekbiz/treetek-backend/config"
	"github.com/landtekbiz/treetek-backend/handlers"
	"github.com/landtekbiz/treetek-backend/pkg/mailer"
	"github.com/landtekbiz/treetek-backend/pkg/storage"
	"github.com/landtekbiz/treetek-backend/routes"
)

var (
	Version   = "dev"
	BuildTime = ""
)

func main() {

	versionFlag := flag.Bool("version", false, "Print version info and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("Version:   %s\n", Version)
		fmt.Printf("BuildTime: %s\n", BuildTime)
		os.Exit(0)
	}

	config.Connect()

	// Run migrations
	if err := config.Migrations(config.DB); err != nil {
		log.Fatalf("could not run migrations: %v", err)
	}

	ctx := context.Background()
	galleryStore, err := storage.NewFromEnv(ctx, config.GalleryBucket())
	if err != nil {
		log.Fatalf("could not init gallery storage: %v", err)
	}
	requestStore, err := storage.NewFromEnv(ctx, config.RequestsBucket())
	if err != nil {
		log.Fatalf("could not init request photo storage: %v", err)
	}

	mail := mailer.New(config.ResendAPIKey(), config.EmailFrom())
	if !mail.Enabled() {
		log.Println("RESEND_API_KEY not set, notification emails disabled")
	}

	quote := handlers.NewQuoteHandler(requestStore, mail)
	gallery := handlers.NewGalleryHandler(galleryStore)
	social := handlers.NewSocialHandler()
	requests := handlers.NewRequestsHandler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := routes.RegisterRoutes(quote, gallery, social, requests)
	handlerWithCORS := enableCORS(handler)
	log.Println("Server starting at port", port)
	log.Fatal(http.ListenAndServe(":"+port, handlerWithCORS))
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Required CORS headers
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Client-Info, Apikey")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		// Handle preflight (OPTIONS) before any other logic
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
