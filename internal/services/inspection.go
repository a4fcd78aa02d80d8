package services

import (
	"context"
	"strings"
	"time"

	"rigtrack/internal/dto"
	"rigtrack/internal/entities"
	"rigtrack/internal/lifecycle"
	"rigtrack/internal/repositories"
	"rigtrack/pkg/apperrors"
	"rigtrack/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type InspectionServiceInterface interface {
	RecordInspection(ctx context.Context, payload dto.CreateInspectionDTO) (*dto.InspectionDTO, error)
	GetEquipmentInspections(ctx context.Context, equipmentID string) ([]dto.InspectionDTO, error)
}

type InspectionService struct {
	inspectionRepo   repositories.InspectionRepositoryInterface
	equipmentRepo    repositories.EquipmentRepositoryInterface
	statusChangeRepo repositories.StatusChangeRepositoryInterface
	txManager        repositories.TxManagerInterface
	logger           *zap.Logger
}

func NewInspectionService(
	inspectionRepo repositories.InspectionRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	statusChangeRepo repositories.StatusChangeRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) InspectionServiceInterface {
	return &InspectionService{
		inspectionRepo:   inspectionRepo,
		equipmentRepo:    equipmentRepo,
		statusChangeRepo: statusChangeRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// RecordInspection appends an inspection for ACTIVE equipment. A FAIL
// result red-tags the equipment in the same transaction: from the
// caller's perspective the inspection and the status change either both
// happen or neither does.
func (s *InspectionService) RecordInspection(ctx context.Context, payload dto.CreateInspectionDTO) (*dto.InspectionDTO, error) {
	result, err := lifecycle.ParseResult(payload.Result)
	if err != nil {
		return nil, err
	}

	inspectionDate, err := utils.ParseDate(payload.InspectionDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid inspection date %q", payload.InspectionDate)
	}
	if inspectionDate.After(time.Now()) {
		return nil, apperrors.NewValidationError("inspection date cannot be in the future")
	}

	// The path-param endpoints uppercase the ID, the body field gets the
	// same treatment so d/001 and D/001 address one piece of equipment.
	equipmentID := strings.ToUpper(strings.TrimSpace(payload.EquipmentID))

	equipment, err := s.equipmentRepo.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if equipment.Status != lifecycle.StatusActive {
		return nil, &apperrors.InvalidStateError{Op: "record inspection", Status: string(equipment.Status)}
	}

	inspection := entities.Inspection{
		EquipmentID:    equipmentID,
		InspectionDate: inspectionDate,
		Result:         result,
		InspectorName:  payload.InspectorName,
		Notes:          payload.Notes,
		CreatedAt:      time.Now(),
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		id, err := s.inspectionRepo.CreateInspection(ctx, tx, inspection)
		if err != nil {
			return err
		}
		inspection.InspectionID = id

		if !result.Failed() {
			return nil
		}

		// Auto red-tag on failure.
		if err := lifecycle.ValidateTransition(equipment.Status, lifecycle.StatusRedTagged); err != nil {
			return err
		}
		if err := s.equipmentRepo.UpdateStatus(ctx, tx, equipmentID, string(equipment.Status), string(lifecycle.StatusRedTagged)); err != nil {
			return err
		}
		oldStatus := equipment.Status
		_, err = s.statusChangeRepo.CreateStatusChange(ctx, tx, entities.StatusChange{
			EquipmentID: equipmentID,
			OldStatus:   &oldStatus,
			NewStatus:   lifecycle.StatusRedTagged,
			ChangeDate:  inspectionDate,
			RedTagDate:  &inspectionDate,
		})
		return err
	})
	if err != nil {
		s.logger.Error("inspection recording failed",
			zap.String("equipment_id", equipmentID), zap.Error(err))
		return nil, err
	}

	if result.Failed() {
		s.logger.Warn("equipment red-tagged after failed inspection",
			zap.String("equipment_id", equipmentID),
			zap.String("inspector", payload.InspectorName))
	} else {
		s.logger.Info("inspection recorded",
			zap.String("equipment_id", equipmentID),
			zap.String("result", string(result)))
	}

	return inspectionToDTO(&inspection, result.Failed()), nil
}

func (s *InspectionService) GetEquipmentInspections(ctx context.Context, equipmentID string) ([]dto.InspectionDTO, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, equipmentID); err != nil {
		return nil, err
	}
	list, err := s.inspectionRepo.GetEquipmentInspections(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.InspectionDTO, 0, len(list))
	for i := range list {
		result = append(result, *inspectionToDTO(&list[i], false))
	}
	return result, nil
}

func inspectionToDTO(insp *entities.Inspection, redTagged bool) *dto.InspectionDTO {
	return &dto.InspectionDTO{
		InspectionID:   insp.InspectionID,
		EquipmentID:    insp.EquipmentID,
		InspectionDate: utils.FormatDate(insp.InspectionDate),
		Result:         string(insp.Result),
		InspectorName:  insp.InspectorName,
		Notes:          insp.Notes,
		CreatedAt:      utils.FormatDateTime(insp.CreatedAt),
		RedTagged:      redTagged,
	}
}
