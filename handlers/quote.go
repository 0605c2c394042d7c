package handlers

import (
	"context"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/landtekbiz/treetek-backend/config"
	"github.com/landtekbiz/treetek-backend/models"
	"github.com/landtekbiz/treetek-backend/pkg/mailer"
	"github.com/landtekbiz/treetek-backend/pkg/storage"
)

const maxUploadMemory = 50 << 20

// QuoteHandler runs the submission pipeline: photo uploads, record insert,
// best-effort notification emails.
type QuoteHandler struct {
	db     *gorm.DB
	photos storage.Backend
	mail   *mailer.Mailer
}

func NewQuoteHandler(photos storage.Backend, mail *mailer.Mailer) *QuoteHandler {
	return &QuoteHandler{db: config.DB, photos: photos, mail: mail}
}

func (h *QuoteHandler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuoteRequest(r)
	if err != nil {
		log.Printf("quote: bad multipart form: %v", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid form data"})
		return
	}

	// Photos live under a fresh namespace so one submission's files stay
	// together in the bucket.
	requestID := uuid.New().String()
	var files []*multipart.FileHeader
	if r.MultipartForm != nil {
		files = r.MultipartForm.File["photos"]
	}
	req.Photos = uploadQuotePhotos(r.Context(), h.photos, requestID, files)

	if err := h.db.Create(&req).Error; err != nil {
		log.Printf("quote: insert failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to process request"})
		return
	}

	// The response is already decided; email failures only get logged.
	if h.mail.Enabled() {
		phone := config.BusinessPhone()
		email := config.BusinessEmail()
		if err := h.mail.SendOperatorAlert(r.Context(), config.AlertEmail(), req, phone, email); err != nil {
			log.Printf("quote: operator alert failed: %v", err)
		}
		if err := h.mail.SendCustomerAck(r.Context(), req, phone, email); err != nil {
			log.Printf("quote: customer ack failed: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// parseQuoteRequest extracts the scalar fields from the multipart body. A
// blank or unparseable preferred_date stores as NULL, never an empty string.
func parseQuoteRequest(r *http.Request) (models.ServiceRequest, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return models.ServiceRequest{}, err
	}

	req := models.ServiceRequest{
		Name:        r.FormValue("name"),
		Phone:       r.FormValue("phone"),
		Email:       r.FormValue("email"),
		Address:     r.FormValue("address"),
		City:        r.FormValue("city"),
		Zip:         r.FormValue("zip"),
		ServiceType: r.FormValue("service_type"),
		Urgency:     r.FormValue("urgency"),
		Description: r.FormValue("description"),
		Photos:      pq.StringArray{},
	}

	if raw := strings.TrimSpace(r.FormValue("preferred_date")); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			req.PreferredDate = &t
		} else {
			log.Printf("quote: ignoring unparseable preferred_date %q", raw)
		}
	}

	return req, nil
}

// uploadQuotePhotos stores each non-empty photo part and returns the public
// URLs in submission order. A failed upload is logged and skipped; the
// submission goes through with whatever made it.
func uploadQuotePhotos(ctx context.Context, backend storage.Backend, requestID string, files []*multipart.FileHeader) pq.StringArray {
	urls := pq.StringArray{}
	for _, fh := range files {
		if fh == nil || fh.Size == 0 {
			continue
		}

		f, err := fh.Open()
		if err != nil {
			log.Printf("quote: skipping photo %s: %v", fh.Filename, err)
			continue
		}

		key := storage.ObjectKey(requestID, fh.Filename)
		url, err := backend.Upload(ctx, key, fh.Header.Get("Content-Type"), f)
		f.Close()
		if err != nil {
			log.Printf("quote: upload failed for %s: %v", fh.Filename, err)
			continue
		}

		urls = append(urls, url)
	}
	return urls
}
