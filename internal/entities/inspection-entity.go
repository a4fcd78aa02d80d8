package entities

import (
	"time"

	"rigtrack/internal/lifecycle"
)

// Inspection rows are append-only: created through the inspection
// recording operation and never updated or deleted afterwards.
type Inspection struct {
	InspectionID   int64            `json:"inspection_id"`
	EquipmentID    string           `json:"equipment_id"`
	InspectionDate time.Time        `json:"inspection_date"`
	Result         lifecycle.Result `json:"result"`
	InspectorName  string           `json:"inspector_name"`
	Notes          *string          `json:"notes,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}
