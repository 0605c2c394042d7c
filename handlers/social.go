package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/landtekbiz/treetek-backend/config"
	"github.com/landtekbiz/treetek-backend/models"
)

// SocialHandler owns the public feed and the admin mutations for social
// post links.
type SocialHandler struct {
	db *gorm.DB
}

func NewSocialHandler() *SocialHandler {
	return &SocialHandler{db: config.DB}
}

// List serves the public feed: published posts only, newest first.
func (h *SocialHandler) List(w http.ResponseWriter, r *http.Request) {
	var posts []models.SocialPost
	if err := h.db.Where("is_published = ?", true).Order("created_at DESC").Find(&posts).Error; err != nil {
		log.Printf("social: fetch failed: %v", err)
		http.Error(w, "failed to fetch posts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

type createSocialPostReq struct {
	Platform    string `json:"platform"`
	URL         string `json:"url"`
	Caption     string `json:"caption"`
	IsPublished bool   `json:"is_published"`
}

func (h *SocialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSocialPostReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if !models.ValidPlatform(req.Platform) {
		http.Error(w, "platform must be instagram or facebook", http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		http.Error(w, "url is required", http.StatusBadRequest)
		return
	}

	post := models.SocialPost{
		Platform:    req.Platform,
		URL:         req.URL,
		Caption:     req.Caption,
		IsPublished: req.IsPublished,
	}
	if err := h.db.Create(&post).Error; err != nil {
		log.Printf("social: insert failed: %v", err)
		http.Error(w, "failed to save post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *SocialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := h.db.Delete(&models.SocialPost{}, "id = ?", id)
	if result.Error != nil {
		log.Printf("social: delete failed: %v", result.Error)
		http.Error(w, "failed to delete post", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// TogglePublish flips is_published on exactly one record via a
// single-column update; nothing else on the row changes.
func (h *SocialHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var post models.SocialPost
	if err := h.db.First(&post, "id = ?", id).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	next := !post.IsPublished
	if err := h.db.Model(&post).UpdateColumn("is_published", next).Error; err != nil {
		log.Printf("social: toggle failed: %v", err)
		http.Error(w, "failed to update post", http.StatusInternalServerError)
		return
	}
	post.IsPublished = next

	writeJSON(w, http.StatusOK, post)
}
