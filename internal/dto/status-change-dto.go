package dto

type ChangeStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE RED_TAGGED DESTROYED"`
	// ChangeDate defaults to today when omitted.
	ChangeDate *string `json:"change_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type StatusChangeDTO struct {
	ChangeID    int64   `json:"change_id"`
	EquipmentID string  `json:"equipment_id"`
	OldStatus   *string `json:"old_status,omitempty"`
	NewStatus   string  `json:"new_status"`
	ChangeDate  string  `json:"change_date"`
	RedTagDate  *string `json:"red_tag_date,omitempty"`
}
