package entities

import "time"

type OverdueInspectionItem struct {
	EquipmentID              string     `json:"equipment_id"`
	EquipmentType            string     `json:"equipment_type"`
	TypeDescription          string     `json:"type_description"`
	LastInspectionDate       *time.Time `json:"last_inspection_date,omitempty"`
	InspectionIntervalMonths int        `json:"inspection_interval_months"`
	DateAdded                time.Time  `json:"date_added"`
}

type RedTaggedItem struct {
	EquipmentID     string    `json:"equipment_id"`
	EquipmentType   string    `json:"equipment_type"`
	TypeDescription string    `json:"type_description"`
	RedTagDate      time.Time `json:"red_tag_date"`
}

type ExpiringItem struct {
	EquipmentID     string    `json:"equipment_id"`
	EquipmentType   string    `json:"equipment_type"`
	TypeDescription string    `json:"type_description"`
	ServiceDate     time.Time `json:"service_date"`
	LifespanYears   int       `json:"lifespan_years"`
}

type EquipmentStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	RedTagged int `json:"red_tagged"`
	Destroyed int `json:"destroyed"`
}

// SummaryRow is the flat export shape: equipment joined with its type
// and latest inspection, consumed by the CSV/XLSX writers.
type SummaryRow struct {
	EquipmentID          string     `json:"equipment_id"`
	EquipmentType        string     `json:"equipment_type"`
	TypeDescription      string     `json:"type_description"`
	Name                 *string    `json:"name,omitempty"`
	SerialNumber         *string    `json:"serial_number,omitempty"`
	DateAdded            time.Time  `json:"date_added"`
	ServiceDate          *time.Time `json:"service_date,omitempty"`
	Status               string     `json:"status"`
	LastInspectionDate   *time.Time `json:"last_inspection_date,omitempty"`
	LastInspectionResult *string    `json:"last_inspection_result,omitempty"`
}
