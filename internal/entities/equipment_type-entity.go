package entities

type EquipmentType struct {
	TypeCode                 string `json:"type_code"`
	Description              string `json:"description"`
	IsSoftGoods              bool   `json:"is_soft_goods"`
	LifespanYears            *int   `json:"lifespan_years,omitempty"`
	InspectionIntervalMonths int    `json:"inspection_interval_months"`
	IsActive                 bool   `json:"is_active"`
	SortOrder                int    `json:"sort_order"`
}

// HasExpiration reports whether items of this type carry a fixed
// lifespan. Hardware never expires; soft goods always do.
func (t *EquipmentType) HasExpiration() bool {
	return t.IsSoftGoods && t.LifespanYears != nil
}
