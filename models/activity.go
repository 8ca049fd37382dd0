package models

import (
	"time"

	"gorm.io/gorm"
)

// ActivityStatus is the lifecycle status of a transport activity.
type ActivityStatus string

const (
	ActivityStatusUnassigned ActivityStatus = "non_assegnato"
	ActivityStatusAssigned   ActivityStatus = "assegnato"
	ActivityStatusDocIssued  ActivityStatus = "doc_emesso"
	ActivityStatusScheduled  ActivityStatus = "programmato"
	ActivityStatusInProgress ActivityStatus = "in_corso"
	ActivityStatusCompleted  ActivityStatus = "completato"
	ActivityStatusCancelled  ActivityStatus = "annullato"
)

// ValidActivityStatus reports whether s is a known status value.
func ValidActivityStatus(s ActivityStatus) bool {
	switch s {
	case ActivityStatusUnassigned, ActivityStatusAssigned, ActivityStatusDocIssued,
		ActivityStatusScheduled, ActivityStatusInProgress, ActivityStatusCompleted,
		ActivityStatusCancelled:
		return true
	}
	return false
}

// Activity is a scheduled transport job. StartAt is nullable because
// partially-filled forms are saved before a time slot is chosen; such
// activities are skipped by all scheduling logic.
type Activity struct {
	ID        int64          `gorm:"primaryKey" json:"id"`
	StartAt   *time.Time     `gorm:"index" json:"startAt"`
	EndAt     *time.Time     `json:"endAt"`
	Status    ActivityStatus `gorm:"type:varchar(20);default:'non_assegnato';index" json:"status"`
	ClientID  *int64         `gorm:"index" json:"clientId"`
	Client    *Client        `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	SiteID    *int64         `gorm:"index" json:"siteId"`
	Site      *Site          `gorm:"foreignKey:SiteID" json:"site,omitempty"`
	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Resources []ActivityResource `gorm:"foreignKey:ActivityID" json:"resources,omitempty"`
	Documents []Document         `gorm:"many2many:activity_documents;" json:"documents,omitempty"`
}

// ActivityResource is one (vehicle, driver) assignment within an activity.
// DriverID is nullable: a vehicle can be booked before a driver is chosen.
type ActivityResource struct {
	ID         int64    `gorm:"primaryKey" json:"id"`
	ActivityID int64    `gorm:"not null;index" json:"activityId"`
	VehicleID  int64    `gorm:"not null;index" json:"vehicleId"`
	Vehicle    *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	DriverID   *int64   `gorm:"index" json:"driverId"`
	Driver     *Driver  `gorm:"foreignKey:DriverID" json:"driver,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ActivityDocument links an activity to an ERP document. The
// (activity_id, document_id) pair is unique (enforced by migration).
type ActivityDocument struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	ActivityID int64     `gorm:"not null;index" json:"activityId"`
	DocumentID int64     `gorm:"not null;index" json:"documentId"`
	CreatedAt  time.Time `json:"createdAt"`
}
