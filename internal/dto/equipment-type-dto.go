package dto

type CreateEquipmentTypeDTO struct {
	TypeCode                 string `json:"type_code" validate:"required,type_code"`
	Description              string `json:"description" validate:"required,max=100"`
	IsSoftGoods              bool   `json:"is_soft_goods"`
	LifespanYears            *int   `json:"lifespan_years,omitempty" validate:"omitempty,min=1,max=50"`
	InspectionIntervalMonths int    `json:"inspection_interval_months" validate:"omitempty,min=1,max=60"`
}

type UpdateEquipmentTypeDTO struct {
	Description              *string `json:"description,omitempty" validate:"omitempty,max=100"`
	IsSoftGoods              *bool   `json:"is_soft_goods,omitempty"`
	LifespanYears            *int    `json:"lifespan_years,omitempty" validate:"omitempty,min=1,max=50"`
	InspectionIntervalMonths *int    `json:"inspection_interval_months,omitempty" validate:"omitempty,min=1,max=60"`
}

type EquipmentTypeDTO struct {
	TypeCode                 string `json:"type_code"`
	Description              string `json:"description"`
	IsSoftGoods              bool   `json:"is_soft_goods"`
	LifespanYears            *int   `json:"lifespan_years,omitempty"`
	InspectionIntervalMonths int    `json:"inspection_interval_months"`
	IsActive                 bool   `json:"is_active"`
	SortOrder                int    `json:"sort_order"`
}
