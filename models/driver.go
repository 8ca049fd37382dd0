package models

import (
	"time"

	"gorm.io/gorm"
)

// DriverStatus is the operational status of a driver.
type DriverStatus string

const (
	DriverStatusAvailable   DriverStatus = "disponibile"
	DriverStatusOnLeave     DriverStatus = "ferie"
	DriverStatusSick        DriverStatus = "malattia"
	DriverStatusUnavailable DriverStatus = "non_disponibile"
)

// Driver is a company driver, keyed by the Arca personnel id.
type Driver struct {
	ID        int64          `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:150;not null" json:"name"`
	Phone     string         `gorm:"size:30" json:"phone"`
	Status    DriverStatus   `gorm:"type:varchar(20);default:'disponibile'" json:"status"`
	IsActive  bool           `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
