package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryImage is one past-work photo. Created via admin upload, deleted via
// admin action; there is no update-in-place path.
type GalleryImage struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title     string    `gorm:"column:title;not null"    json:"title"`
	Category  string    `gorm:"column:category;not null" json:"category"`
	URL       string    `gorm:"column:url;not null"      json:"url"`
	Alt       string    `gorm:"column:alt;not null"      json:"alt"`
	CreatedAt time.Time `gorm:"autoCreateTime"           json:"created_at"`
}
