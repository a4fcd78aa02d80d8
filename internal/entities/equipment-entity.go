package entities

import (
	"time"

	"rigtrack/internal/lifecycle"
)

type Equipment struct {
	EquipmentID   string           `json:"equipment_id"`
	EquipmentType string           `json:"equipment_type"`
	Name          *string          `json:"name,omitempty"`
	SerialNumber  *string          `json:"serial_number,omitempty"`
	DateAdded     time.Time        `json:"date_added"`
	ServiceDate   *time.Time       `json:"service_date,omitempty"`
	Status        lifecycle.Status `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`

	// Joined data, not columns of the equipment table.
	Type           *EquipmentType `json:"type,omitempty"`
	LastInspection *Inspection    `json:"last_inspection,omitempty"`
}
