package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is a customer synchronized from the Arca ERP. The primary key is
// the Arca client id, so references stay stable across syncs.
type Client struct {
	ID             int64          `gorm:"primaryKey" json:"id"`
	RagioneSociale string         `gorm:"size:200;not null" json:"ragioneSociale"`
	PartitaIVA     string         `gorm:"size:20;index" json:"partitaIva"`
	CodiceFiscale  string         `gorm:"size:20" json:"codiceFiscale"`
	Email          string         `gorm:"size:150" json:"email"`
	Phone          string         `gorm:"size:30" json:"phone"`
	IsActive       bool           `gorm:"default:true" json:"isActive"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Sites []Site `gorm:"foreignKey:ClientID" json:"sites,omitempty"`
}
