package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	UrgencyNormal    = "Normal"
	UrgencyEmergency = "Emergency"
)

// ServiceTypes is the fixed set offered on the quote form. service_type stays
// free text in the database; this list drives the form selector and the
// query-parameter pre-fill.
var ServiceTypes = []string{
	"Tree Removal",
	"Trimming & Pruning",
	"Crane Work",
	"Storm Cleanup",
	"Stump Grinding",
}

// ServiceRequest is one customer quote submission. Rows are insert-only; the
// admin view never mutates or deletes them.
type ServiceRequest struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string         `gorm:"column:name;not null"                  json:"name"`
	Phone         string         `gorm:"column:phone;not null"                 json:"phone"`
	Email         string         `gorm:"column:email;not null"                 json:"email"`
	Address       string         `gorm:"column:address;not null"               json:"address"`
	City          string         `gorm:"column:city;not null"                  json:"city"`
	Zip           string         `gorm:"column:zip;not null"                   json:"zip"`
	ServiceType   string         `gorm:"column:service_type;not null"          json:"service_type"`
	Urgency       string         `gorm:"column:urgency;not null"               json:"urgency"`
	PreferredDate *time.Time     `gorm:"column:preferred_date;type:date"       json:"preferred_date"`
	Description   string         `gorm:"column:description;type:text;not null" json:"description"`
	// Photos holds public URLs in submission order; uploads that failed are
	// simply absent.
	Photos pq.StringArray `gorm:"column:photos;type:text[];not null" json:"photos"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
