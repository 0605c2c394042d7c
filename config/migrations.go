package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/landtekbiz/treetek-backend/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250812_create_tables",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
					return err
				}
				return tx.AutoMigrate(&models.ServiceRequest{}, &models.GalleryImage{}, &models.SocialPost{})
			},
		},
		{
			ID: "20250819_social_platform_check",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`ALTER TABLE social_posts
					ADD CONSTRAINT social_posts_platform_check
					CHECK (platform IN ('instagram', 'facebook'))`).Error
			},
		},
	})

	return m.Migrate()
}
