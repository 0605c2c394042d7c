package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/landtekbiz/treetek-backend/config"
	"github.com/landtekbiz/treetek-backend/models"
	"github.com/landtekbiz/treetek-backend/pkg/storage"
)

// fallbackGallery keeps the past-work page populated before any admin upload
// exists (or when the database is unreachable). These are the photos the
// site launched with.
var fallbackGallery = []models.GalleryImage{
	{
		URL:      "/images/past-work/bucket-truck-tree-service-new-smyrna-central-fl.jpg",
		Title:    "Bucket Truck Tree Service",
		Alt:      "TREE TEK bucket truck and wood chipper providing tree service in New Smyrna Beach, Central Florida.",
		Category: "Tree Service",
	},
	{
		URL:      "/images/past-work/crane-tree-removal-daytona-beach-central-fl.jpg",
		Title:    "Crane Tree Removal",
		Alt:      "TREE TEK performing crane-assisted tree removal in Daytona Beach, Central Florida.",
		Category: "Crane Work",
	},
	{
		URL:      "/images/past-work/dead-pine-removal-ormond-beach-central-fl.jpg",
		Title:    "Dead Pine Removal",
		Alt:      "TREE TEK using a bucket truck for dead pine removal in Ormond Beach, Central Florida.",
		Category: "Tree Removal",
	},
	{
		URL:      "/images/past-work/fallen-oak-cleanup-central-florida-tree-service.jpg",
		Title:    "Fallen Oak Cleanup",
		Alt:      "TREE TEK cleaning up fallen oak tree in Central Florida.",
		Category: "Storm Cleanup",
	},
	{
		URL:      "/images/past-work/hurricane-storm-damage-tree-removal-central-florida.jpg",
		Title:    "Hurricane Storm Damage",
		Alt:      "TREE TEK emergency response to hurricane storm damage in Central Florida.",
		Category: "Storm Cleanup",
	},
	{
		URL:      "/images/past-work/large-tree-removal-crane-service-port-orange-central-fl.jpg",
		Title:    "Large Tree Removal",
		Alt:      "TREE TEK crane service removing large tree in Port Orange, Central Florida.",
		Category: "Crane Work",
	},
	{
		URL:      "/images/past-work/log-hauling-mini-loader-tree-cleanup-central-fl.jpg",
		Title:    "Log Hauling & Cleanup",
		Alt:      "TREE TEK mini loader hauling logs during tree cleanup in Central Florida.",
		Category: "Tree Service",
	},
	{
		URL:      "/images/past-work/tree-removal-central-florida-brush-clearing.jpg",
		Title:    "Tree Removal & Brush Clearing",
		Alt:      "TREE TEK performing complete tree removal and brush clearing in Central Florida.",
		Category: "Tree Removal",
	},
}

// fallbackGalleryEntries stamps the built-in set with stable derived IDs and
// a current timestamp so consumers see the same shape as real rows.
func fallbackGalleryEntries() []models.GalleryImage {
	now := time.Now()
	entries := make([]models.GalleryImage, len(fallbackGallery))
	for i, img := range fallbackGallery {
		img.ID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(img.URL))
		img.CreatedAt = now
		entries[i] = img
	}
	return entries
}

// GalleryHandler owns the public past-work grid and the admin upload/delete
// flows against the gallery bucket.
type GalleryHandler struct {
	db    *gorm.DB
	store storage.Backend
}

func NewGalleryHandler(store storage.Backend) *GalleryHandler {
	return &GalleryHandler{db: config.DB, store: store}
}

// List serves the public past-work grid, newest first. The grid is never
// empty: fetch errors and empty tables both fall back to the built-in set.
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	var images []models.GalleryImage
	err := h.db.Order("created_at DESC").Find(&images).Error
	if err != nil {
		log.Printf("gallery: fetch failed: %v", err)
	}
	if err != nil || len(images) == 0 {
		writeJSON(w, http.StatusOK, fallbackGalleryEntries())
		return
	}
	writeJSON(w, http.StatusOK, images)
}

func (h *GalleryHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	title := r.FormValue("title")
	category := r.FormValue("category")
	alt := r.FormValue("alt")
	if title == "" || category == "" || alt == "" {
		http.Error(w, "title, category and alt are required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	key := storage.ObjectKey("", header.Filename)
	url, err := h.store.Upload(r.Context(), key, header.Header.Get("Content-Type"), file)
	if err != nil {
		log.Printf("gallery: upload failed for %s: %v", header.Filename, err)
		http.Error(w, "failed to store image", http.StatusInternalServerError)
		return
	}

	img := models.GalleryImage{
		Title:    title,
		Category: category,
		Alt:      alt,
		URL:      url,
	}
	if err := h.db.Create(&img).Error; err != nil {
		log.Printf("gallery: insert failed: %v", err)
		http.Error(w, "failed to save image record", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, img)
}

// Delete removes the stored object (best-effort, key recovered from the URL's
// trailing segment) and then the record. Only the record delete is fatal.
func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var img models.GalleryImage
	if err := h.db.First(&img, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	if key := storage.KeyFromURL(img.URL); key != "" {
		if err := h.store.Delete(r.Context(), key); err != nil {
			log.Printf("gallery: object delete failed for %s: %v", key, err)
		}
	}

	if err := h.db.Delete(&models.GalleryImage{}, "id = ?", id).Error; err != nil {
		log.Printf("gallery: record delete failed: %v", err)
		http.Error(w, "failed to delete record", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
