package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AgendaPreference stores the driver ordering and hidden drivers applied to
// the agenda view. One global record (IsGlobal=true, UserID nil) acts as the
// default; per-user records override it. Applied as a pure post-processing
// step over the grouping output, never mutating driver data.
type AgendaPreference struct {
	ID               int64         `gorm:"primaryKey" json:"id"`
	IsGlobal         bool          `gorm:"not null;default:false;uniqueIndex:idx_pref_scope" json:"isGlobal"`
	UserID           *uuid.UUID    `gorm:"type:uuid;uniqueIndex:idx_pref_scope" json:"userId"`
	OrderedDriverIDs pq.Int64Array `gorm:"type:bigint[]" json:"orderedDriverIds"`
	HiddenDriverIDs  pq.Int64Array `gorm:"type:bigint[]" json:"hiddenDriverIds"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}
