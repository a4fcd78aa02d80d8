package dto

type CreateEquipmentDTO struct {
	EquipmentType string  `json:"equipment_type" validate:"required,type_code"`
	Name          *string `json:"name,omitempty" validate:"omitempty,max=100"`
	SerialNumber  *string `json:"serial_number,omitempty" validate:"omitempty,max=50"`
	ServiceDate   *string `json:"service_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// CreateBatchDTO creates between 2 and 50 items of one type in a single
// transaction. Serials are positional and optional; a shorter list
// leaves the remaining items without a serial number.
type CreateBatchDTO struct {
	EquipmentType string   `json:"equipment_type" validate:"required,type_code"`
	Quantity      int      `json:"quantity" validate:"required,min=2,max=50"`
	Serials       []string `json:"serials,omitempty" validate:"omitempty,dive,max=50"`
	Name          *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	ServiceDate   *string  `json:"service_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateEquipmentDTO struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=100"`
	SerialNumber *string `json:"serial_number,omitempty" validate:"omitempty,max=50"`
}

type UpdateServiceDateDTO struct {
	ServiceDate string `json:"service_date" validate:"required,datetime=2006-01-02"`
}

type EquipmentListFilter struct {
	Status string
	Type   string
	Search string
	Limit  uint64
	Offset uint64
}

type EquipmentDTO struct {
	EquipmentID     string  `json:"equipment_id"`
	EquipmentType   string  `json:"equipment_type"`
	TypeDescription string  `json:"type_description,omitempty"`
	Name            *string `json:"name,omitempty"`
	SerialNumber    *string `json:"serial_number,omitempty"`
	DateAdded       string  `json:"date_added"`
	ServiceDate     *string `json:"service_date,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`

	LastInspection *InspectionDTO     `json:"last_inspection,omitempty"`
	Compliance     *ComplianceInfoDTO `json:"compliance,omitempty"`
}

// ComplianceInfoDTO is the derived compliance block attached to the
// equipment detail view.
type ComplianceInfoDTO struct {
	NextInspectionDue string  `json:"next_inspection_due"`
	InspectionOverdue bool    `json:"inspection_overdue"`
	ExpiryDate        *string `json:"expiry_date,omitempty"`
	DaysToExpiry      *int    `json:"days_to_expiry,omitempty"`
	DestroyByDate     *string `json:"destroy_by_date,omitempty"`
	DestroyDaysLeft   *int    `json:"destroy_days_left,omitempty"`
}

type BatchResultDTO struct {
	Created []EquipmentDTO `json:"created"`
}
