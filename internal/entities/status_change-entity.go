package entities

import (
	"time"

	"rigtrack/internal/lifecycle"
)

// StatusChange is the append-only audit trail of lifecycle transitions.
// OldStatus is nil for the row recorded at creation. RedTagDate is set
// on the row that moved the equipment into RED_TAGGED.
type StatusChange struct {
	ChangeID    int64             `json:"change_id"`
	EquipmentID string            `json:"equipment_id"`
	OldStatus   *lifecycle.Status `json:"old_status,omitempty"`
	NewStatus   lifecycle.Status  `json:"new_status"`
	ChangeDate  time.Time         `json:"change_date"`
	RedTagDate  *time.Time        `json:"red_tag_date,omitempty"`
}
