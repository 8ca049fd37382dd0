package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Document is a shipping/transport document synchronized from the Arca ERP.
// Its external identity is the (codice_doc, numero_doc) composite, unique by
// migration; documents are never created by the UI, only linked to activities.
type Document struct {
	ID           int64          `gorm:"primaryKey" json:"id"`
	CodiceDoc    string         `gorm:"size:10;not null;index" json:"codiceDoc"`
	NumeroDoc    string         `gorm:"size:30;not null;index" json:"numeroDoc"`
	DataDoc      *time.Time     `gorm:"index" json:"dataDoc"`
	DataConsegna *time.Time     `json:"dataConsegna"`
	ClientID     int64          `gorm:"not null;index" json:"clientId"`
	Client       *Client        `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	SiteID       *int64         `gorm:"index" json:"siteId"`
	Site         *Site          `gorm:"foreignKey:SiteID" json:"site,omitempty"`
	Imponibile   float64        `json:"imponibile"`
	IVA          float64        `json:"iva"`
	Totale       float64        `json:"totale"`
	RawPayload   datatypes.JSON `json:"-"` // last payload received from Arca, kept for troubleshooting
	SyncedAt     time.Time      `json:"syncedAt"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Lines []DocumentLine `gorm:"foreignKey:DocumentID" json:"lines,omitempty"`
}

// DocumentLine is one article row of a document.
type DocumentLine struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	DocumentID  int64     `gorm:"not null;index" json:"documentId"`
	CodArt      string    `gorm:"size:30" json:"codArt"`
	Descrizione string    `gorm:"size:255" json:"descrizione"`
	Quantita    float64   `json:"quantita"`
	Prezzo      float64   `json:"prezzo"`
	Sconto      float64   `json:"sconto"`
	Totale      float64   `json:"totale"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SyncRun records one execution of the Arca synchronization job.
type SyncRun struct {
	ID         int64      `gorm:"primaryKey" json:"id"`
	StartedAt  time.Time  `gorm:"not null" json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt"`
	Documents  int        `json:"documents"`
	Clients    int        `json:"clients"`
	Sites      int        `json:"sites"`
	Drivers    int        `json:"drivers"`
	Error      string     `gorm:"type:text" json:"error,omitempty"`
}
