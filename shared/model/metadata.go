package model

import (
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"maps"
	"time"
)

// Metadata is the audit block every table carries.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}

// NewMetadata stamps a row created by actor now.
func NewMetadata(actor string) Metadata {
	now := timezone.Now()

	return Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  actor,
		ModifiedBy: actor,
	}
}

// Modified adds the modified_at/modified_by columns for actor to an update column map.
func Modified(actor string, fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields)+2)
	maps.Copy(out, fields)

	out[constant.FieldModifiedAt] = timezone.Now()
	out[constant.FieldModifiedBy] = actor

	return out
}
