package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"v8e.it/flotta/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "10032026_create_master_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.Client{}, &models.Site{},
					&models.Driver{}, &models.Vehicle{})
			},
		},
		{
			ID: "10032026_create_activity_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Activity{}, &models.ActivityResource{})
			},
		},
		{
			ID: "11032026_create_document_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Document{}, &models.DocumentLine{},
					&models.ActivityDocument{}, &models.SyncRun{})
			},
		},
		{
			ID: "18032026_create_agenda_preferences",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.AgendaPreference{})
			},
		},
		{
			ID: "02042026_unique_activity_document_link",
			Migrate: func(tx *gorm.DB) error {
				// Dedupe any links created before the unique constraint existed,
				// keeping the oldest row per (activity_id, document_id).
				if err := tx.Exec(`DELETE FROM activity_documents a
					USING activity_documents b
					WHERE a.activity_id = b.activity_id
					  AND a.document_id = b.document_id
					  AND a.id > b.id`).Error; err != nil {
					return err
				}
				return tx.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_activity_document_link
					ON activity_documents(activity_id, document_id)`).Error
			},
		},
		{
			ID: "02042026_unique_document_identity",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_document_identity
					ON documents(codice_doc, numero_doc)`).Error
			},
		},
	})

	return m.Migrate()
}
