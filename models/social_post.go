package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
)

// SocialPost links out to a post on one of the company's social accounts.
// Only published posts appear on the public feed page.
type SocialPost struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Platform    string    `gorm:"column:platform;not null"           json:"platform"`
	URL         string    `gorm:"column:url;not null"                json:"url"`
	Caption     string    `gorm:"column:caption;type:text"           json:"caption"`
	IsPublished bool      `gorm:"column:is_published;default:false"  json:"is_published"`
	CreatedAt   time.Time `gorm:"autoCreateTime"                     json:"created_at"`
}

// ValidPlatform reports whether p is one of the enumerated platforms.
func ValidPlatform(p string) bool {
	return p == PlatformInstagram || p == PlatformFacebook
}
