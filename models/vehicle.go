package models

import (
	"time"

	"gorm.io/gorm"
)

// VehicleStatus is the operational status of a vehicle.
type VehicleStatus string

const (
	VehicleStatusOperational VehicleStatus = "operativo"
	VehicleStatusMaintenance VehicleStatus = "manutenzione"
	VehicleStatusRetired     VehicleStatus = "dismesso"
)

// Vehicle is a fleet vehicle.
type Vehicle struct {
	ID        int64          `gorm:"primaryKey" json:"id"`
	Plate     string         `gorm:"size:20;uniqueIndex;not null" json:"plate"`
	Name      string         `gorm:"size:150" json:"name"` // display label, e.g. "Iveco Daily 35"
	Status    VehicleStatus  `gorm:"type:varchar(20);default:'operativo'" json:"status"`
	IsActive  bool           `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Label returns the display label used in agenda and conflict output.
func (v *Vehicle) Label() string {
	if v.Name != "" {
		return v.Name + " (" + v.Plate + ")"
	}
	return v.Plate
}
