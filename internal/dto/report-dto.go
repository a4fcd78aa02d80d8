package dto

type OverdueInspectionDTO struct {
	EquipmentID        string  `json:"equipment_id"`
	EquipmentType      string  `json:"equipment_type"`
	TypeDescription    string  `json:"type_description"`
	LastInspectionDate *string `json:"last_inspection_date,omitempty"`
	NextDueDate        string  `json:"next_due_date"`
	DaysOverdue        int     `json:"days_overdue"`
}

type RedTaggedDTO struct {
	EquipmentID     string `json:"equipment_id"`
	EquipmentType   string `json:"equipment_type"`
	TypeDescription string `json:"type_description"`
	RedTagDate      string `json:"red_tag_date"`
	DestroyByDate   string `json:"destroy_by_date"`
	DaysRemaining   int    `json:"days_remaining"`
	Priority        string `json:"priority"`
}

type ExpiringDTO struct {
	EquipmentID     string `json:"equipment_id"`
	EquipmentType   string `json:"equipment_type"`
	TypeDescription string `json:"type_description"`
	ServiceDate     string `json:"service_date"`
	ExpiryDate      string `json:"expiry_date"`
	DaysRemaining   int    `json:"days_remaining"`
	Priority        string `json:"priority"`
}

type ComplianceReportDTO struct {
	OverdueInspections []OverdueInspectionDTO `json:"overdue_inspections"`
	RedTagged          []RedTaggedDTO         `json:"red_tagged"`
	Expiring           []ExpiringDTO          `json:"expiring"`
	Stats              StatsDTO               `json:"stats"`
}

type StatsDTO struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	RedTagged int `json:"red_tagged"`
	Destroyed int `json:"destroyed"`
}
