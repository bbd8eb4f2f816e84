package dto

import (
	"hotel/shared/constant"
	"hotel/shared/model"
	"hotel/shared/timezone"
	"time"
)

// Metadata is the audit block as rendered in API responses, in the app timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at,omitempty"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(metadata model.Metadata) {
	m.CreatedAt = formatTime(metadata.CreatedAt)
	m.ModifiedAt = formatTime(metadata.ModifiedAt)
	m.CreatedBy = metadata.CreatedBy
	m.ModifiedBy = metadata.ModifiedBy
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t, constant.DateFormat)
}
