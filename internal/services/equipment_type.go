package services

import (
	"context"

	"rigtrack/internal/dto"
	"rigtrack/internal/entities"
	"rigtrack/internal/lifecycle"
	"rigtrack/internal/repositories"
	"rigtrack/pkg/apperrors"

	"go.uber.org/zap"
)

type EquipmentTypeServiceInterface interface {
	GetEquipmentTypes(ctx context.Context, activeOnly bool) ([]dto.EquipmentTypeDTO, error)
	FindEquipmentType(ctx context.Context, typeCode string) (*dto.EquipmentTypeDTO, error)
	CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error)
	UpdateEquipmentType(ctx context.Context, typeCode string, payload dto.UpdateEquipmentTypeDTO) error
	DeactivateEquipmentType(ctx context.Context, typeCode string) error
}

type EquipmentTypeService struct {
	typeRepo repositories.EquipmentTypeRepositoryInterface
	logger   *zap.Logger
}

func NewEquipmentTypeService(typeRepo repositories.EquipmentTypeRepositoryInterface, logger *zap.Logger) EquipmentTypeServiceInterface {
	return &EquipmentTypeService{typeRepo: typeRepo, logger: logger}
}

// validateLifespan enforces the category invariant: soft goods must
// carry a lifespan, hardware must not.
func validateLifespan(isSoftGoods bool, lifespanYears *int) error {
	if isSoftGoods && lifespanYears == nil {
		return apperrors.NewValidationError("soft goods require a lifespan in years")
	}
	if !isSoftGoods && lifespanYears != nil {
		return apperrors.NewValidationError("hardware has no fixed lifespan; omit lifespan_years")
	}
	return nil
}

func (s *EquipmentTypeService) GetEquipmentTypes(ctx context.Context, activeOnly bool) ([]dto.EquipmentTypeDTO, error) {
	types, err := s.typeRepo.GetEquipmentTypes(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	result := make([]dto.EquipmentTypeDTO, 0, len(types))
	for i := range types {
		result = append(result, *typeToDTO(&types[i]))
	}
	return result, nil
}

func (s *EquipmentTypeService) FindEquipmentType(ctx context.Context, typeCode string) (*dto.EquipmentTypeDTO, error) {
	et, err := s.typeRepo.FindEquipmentType(ctx, lifecycle.NormalizeTypeCode(typeCode))
	if err != nil {
		return nil, err
	}
	return typeToDTO(et), nil
}

func (s *EquipmentTypeService) CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	typeCode := lifecycle.NormalizeTypeCode(payload.TypeCode)
	if !lifecycle.ValidTypeCode(typeCode) {
		return nil, apperrors.NewValidationError("type code must be 1-2 uppercase letters, got %q", payload.TypeCode)
	}
	if err := validateLifespan(payload.IsSoftGoods, payload.LifespanYears); err != nil {
		return nil, err
	}

	interval := payload.InspectionIntervalMonths
	if interval <= 0 {
		interval = lifecycle.DefaultInspectionIntervalMonths
	}

	et := entities.EquipmentType{
		TypeCode:                 typeCode,
		Description:              payload.Description,
		IsSoftGoods:              payload.IsSoftGoods,
		LifespanYears:            payload.LifespanYears,
		InspectionIntervalMonths: interval,
		IsActive:                 true,
	}
	if err := s.typeRepo.CreateEquipmentType(ctx, et); err != nil {
		return nil, err
	}

	s.logger.Info("equipment type created", zap.String("type_code", typeCode))
	return s.FindEquipmentType(ctx, typeCode)
}

func (s *EquipmentTypeService) UpdateEquipmentType(ctx context.Context, typeCode string, payload dto.UpdateEquipmentTypeDTO) error {
	typeCode = lifecycle.NormalizeTypeCode(typeCode)
	current, err := s.typeRepo.FindEquipmentType(ctx, typeCode)
	if err != nil {
		return err
	}

	// Check the invariant against the row as it will look after the update.
	isSoft := current.IsSoftGoods
	if payload.IsSoftGoods != nil {
		isSoft = *payload.IsSoftGoods
	}
	lifespan := current.LifespanYears
	if payload.LifespanYears != nil {
		lifespan = payload.LifespanYears
	}
	if payload.IsSoftGoods != nil && !*payload.IsSoftGoods {
		lifespan = nil
	}
	if err := validateLifespan(isSoft, lifespan); err != nil {
		return err
	}

	return s.typeRepo.UpdateEquipmentType(ctx, typeCode, payload)
}

func (s *EquipmentTypeService) DeactivateEquipmentType(ctx context.Context, typeCode string) error {
	typeCode = lifecycle.NormalizeTypeCode(typeCode)
	if err := s.typeRepo.DeactivateEquipmentType(ctx, typeCode); err != nil {
		return err
	}
	s.logger.Info("equipment type deactivated", zap.String("type_code", typeCode))
	return nil
}

func typeToDTO(et *entities.EquipmentType) *dto.EquipmentTypeDTO {
	return &dto.EquipmentTypeDTO{
		TypeCode:                 et.TypeCode,
		Description:              et.Description,
		IsSoftGoods:              et.IsSoftGoods,
		LifespanYears:            et.LifespanYears,
		InspectionIntervalMonths: et.InspectionIntervalMonths,
		IsActive:                 et.IsActive,
		SortOrder:                et.SortOrder,
	}
}
