package models

import (
	"time"

	"gorm.io/gorm"
)

// Site is a delivery/pickup destination belonging to a client
// (Arca "destinazione diversa"). Keyed by the Arca site id.
type Site struct {
	ID        int64          `gorm:"primaryKey" json:"id"`
	ClientID  int64          `gorm:"not null;index" json:"clientId"`
	Client    *Client        `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Name      string         `gorm:"size:200;not null" json:"name"`
	Address   string         `gorm:"size:255" json:"address"`
	City      string         `gorm:"size:100" json:"city"`
	Province  string         `gorm:"size:5" json:"province"`
	ZipCode   string         `gorm:"size:10" json:"zipCode"`
	IsActive  bool           `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
