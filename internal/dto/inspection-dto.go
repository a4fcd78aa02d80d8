package dto

type CreateInspectionDTO struct {
	EquipmentID    string  `json:"equipment_id" validate:"required,equipment_id"`
	InspectionDate string  `json:"inspection_date" validate:"required,datetime=2006-01-02"`
	Result         string  `json:"result" validate:"required,oneof=PASS FAIL"`
	InspectorName  string  `json:"inspector_name" validate:"required,max=100"`
	Notes          *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type InspectionDTO struct {
	InspectionID   int64   `json:"inspection_id"`
	EquipmentID    string  `json:"equipment_id"`
	InspectionDate string  `json:"inspection_date"`
	Result         string  `json:"result"`
	InspectorName  string  `json:"inspector_name"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"created_at"`

	// RedTagged is true when recording this inspection red-tagged the
	// equipment (FAIL result).
	RedTagged bool `json:"red_tagged"`
}
