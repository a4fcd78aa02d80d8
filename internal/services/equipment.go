package services

import (
	"context"
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

const (
	BatchMinQuantity = 2
	BatchMaxQuantity = 50
)

type EquipmentServiceInterface interface {
	GetEquipmentList(ctx context.Context, filter dto.EquipmentListFilter) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, equipmentID string) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	CreateBatch(ctx context.Context, payload dto.CreateBatchDTO) ([]dto.EquipmentDTO, error)
	ChangeStatus(ctx context.Context, equipmentID string, payload dto.ChangeStatusDTO) (*dto.StatusChangeDTO, error)
	UpdateEquipmentInfo(ctx context.Context, equipmentID string, payload dto.UpdateEquipmentDTO) error
	UpdateServiceDate(ctx context.Context, equipmentID string, payload dto.UpdateServiceDateDTO) error
	DeleteEquipment(ctx context.Context, equipmentID string) error
	GetStatusChanges(ctx context.Context, equipmentID string) ([]dto.StatusChangeDTO, error)
}

type EquipmentService struct {
	equipmentRepo    repositories.EquipmentRepositoryInterface
	typeRepo         repositories.EquipmentTypeRepositoryInterface
	inspectionRepo   repositories.InspectionRepositoryInterface
	statusChangeRepo repositories.StatusChangeRepositoryInterface
	txManager        repositories.TxManagerInterface
	logger           *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	typeRepo repositories.EquipmentTypeRepositoryInterface,
	inspectionRepo repositories.InspectionRepositoryInterface,
	statusChangeRepo repositories.StatusChangeRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo:    equipmentRepo,
		typeRepo:         typeRepo,
		inspectionRepo:   inspectionRepo,
		statusChangeRepo: statusChangeRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (s *EquipmentService) GetEquipmentList(ctx context.Context, filter dto.EquipmentListFilter) ([]dto.EquipmentDTO, uint64, error) {
	list, total, err := s.equipmentRepo.GetEquipmentList(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.EquipmentDTO, 0, len(list))
	for i := range list {
		result = append(result, *equipmentToDTO(&list[i], nil))
	}
	return result, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, equipmentID string) (*dto.EquipmentDTO, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	last, err := s.inspectionRepo.GetLastInspection(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	equipment.LastInspection = last

	return equipmentToDTO(equipment, s.complianceInfo(ctx, equipment)), nil
}

// complianceInfo derives the compliance block for the detail view: next
// inspection due, soft-goods expiry, and the destroy-by countdown for
// red-tagged items.
func (s *EquipmentService) complianceInfo(ctx context.Context, e *entities.Equipment) *dto.ComplianceInfoDTO {
	today := lifecycle.Date(time.Now())

	var lastDate *time.Time
	if e.LastInspection != nil {
		lastDate = &e.LastInspection.InspectionDate
	}

	interval := lifecycle.DefaultInspectionIntervalMonths
	var isSoft bool
	var lifespan *int
	if e.Type != nil {
		interval = e.Type.InspectionIntervalMonths
		isSoft = e.Type.IsSoftGoods
		lifespan = e.Type.LifespanYears
	}

	info := &dto.ComplianceInfoDTO{
		NextInspectionDue: utils.FormatDate(lifecycle.NextInspectionDue(lastDate, e.DateAdded, interval)),
	}
	if e.Status == lifecycle.StatusActive {
		info.InspectionOverdue = lifecycle.InspectionOverdue(lastDate, e.DateAdded, interval, today)
	}

	if expiry := lifecycle.ExpiryDate(e.ServiceDate, isSoft, lifespan); expiry != nil {
		info.ExpiryDate = utils.FormatDatePtr(expiry)
		info.DaysToExpiry = utils.IntPtr(lifecycle.DaysBetween(today, *expiry))
	}

	if e.Status == lifecycle.StatusRedTagged {
		changes, err := s.statusChangeRepo.GetStatusChanges(ctx, e.EquipmentID)
		if err != nil {
			s.logger.Warn("could not load status history for compliance block",
				zap.String("equipment_id", e.EquipmentID), zap.Error(err))
			return info
		}
		for _, sc := range changes {
			if sc.NewStatus == lifecycle.StatusRedTagged && sc.RedTagDate != nil {
				destroyBy := lifecycle.DestroyByDate(*sc.RedTagDate)
				info.DestroyByDate = utils.FormatDatePtr(&destroyBy)
				info.DestroyDaysLeft = utils.IntPtr(lifecycle.RedTagDaysRemaining(*sc.RedTagDate, today))
				break
			}
		}
	}
	return info
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	created, err := s.createMany(ctx, payload.EquipmentType, 1, nil, payload.Name, payload.SerialNumber, payload.ServiceDate)
	if err != nil {
		return nil, err
	}
	return &created[0], nil
}

func (s *EquipmentService) CreateBatch(ctx context.Context, payload dto.CreateBatchDTO) ([]dto.EquipmentDTO, error) {
	if payload.Quantity < BatchMinQuantity || payload.Quantity > BatchMaxQuantity {
		return nil, apperrors.NewValidationError("batch quantity must be between %d and %d, got %d",
			BatchMinQuantity, BatchMaxQuantity, payload.Quantity)
	}
	if len(payload.Serials) > payload.Quantity {
		return nil, apperrors.NewValidationError("got %d serial numbers for %d items", len(payload.Serials), payload.Quantity)
	}
	return s.createMany(ctx, payload.EquipmentType, payload.Quantity, payload.Serials, payload.Name, nil, payload.ServiceDate)
}

// createMany allocates sequential IDs and inserts quantity items in one
// transaction. The equipment_types row is locked first, so concurrent
// allocations for the same type serialize and never collide. Either the
// whole batch commits or none of it does.
func (s *EquipmentService) createMany(ctx context.Context, typeCode string, quantity int, serials []string, name, singleSerial, serviceDateStr *string) ([]dto.EquipmentDTO, error) {
	typeCode = lifecycle.NormalizeTypeCode(typeCode)
	if !lifecycle.ValidTypeCode(typeCode) {
		return nil, apperrors.NewValidationError("type code must be 1-2 uppercase letters, got %q", typeCode)
	}

	var serviceDate *time.Time
	if serviceDateStr != nil {
		parsed, err := utils.ParseDate(*serviceDateStr)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid service date %q", *serviceDateStr)
		}
		serviceDate = &parsed
	}

	now := time.Now()
	today := lifecycle.Date(now)
	var created []entities.Equipment

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		equipmentType, err := s.typeRepo.LockEquipmentType(ctx, tx, typeCode)
		if err != nil {
			return err
		}
		if !equipmentType.IsActive {
			return apperrors.NewValidationError("equipment type %s is deactivated", typeCode)
		}

		seq, err := s.equipmentRepo.MaxSequence(ctx, tx, typeCode)
		if err != nil {
			return err
		}

		for i := 0; i < quantity; i++ {
			equipmentID, err := lifecycle.FormatEquipmentID(typeCode, seq+i+1)
			if err != nil {
				return err
			}

			serial := singleSerial
			if i < len(serials) && serials[i] != "" {
				v := serials[i]
				serial = &v
			}

			item := entities.Equipment{
				EquipmentID:   equipmentID,
				EquipmentType: typeCode,
				Name:          name,
				SerialNumber:  serial,
				DateAdded:     today,
				ServiceDate:   serviceDate,
				Status:        lifecycle.StatusActive,
				CreatedAt:     now,
			}
			if err := s.equipmentRepo.CreateEquipment(ctx, tx, item); err != nil {
				return err
			}

			// Initial audit row: nothing -> ACTIVE.
			if _, err := s.statusChangeRepo.CreateStatusChange(ctx, tx, entities.StatusChange{
				EquipmentID: equipmentID,
				OldStatus:   nil,
				NewStatus:   lifecycle.StatusActive,
				ChangeDate:  now,
			}); err != nil {
				return err
			}
			created = append(created, item)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("equipment creation failed",
			zap.String("type_code", typeCode), zap.Int("quantity", quantity), zap.Error(err))
		return nil, err
	}

	ids := make([]string, len(created))
	result := make([]dto.EquipmentDTO, 0, len(created))
	for i := range created {
		ids[i] = created[i].EquipmentID
		result = append(result, *equipmentToDTO(&created[i], nil))
	}
	s.logger.Info("equipment created", zap.Strings("equipment_ids", ids))
	return result, nil
}

func (s *EquipmentService) ChangeStatus(ctx context.Context, equipmentID string, payload dto.ChangeStatusDTO) (*dto.StatusChangeDTO, error) {
	newStatus, err := lifecycle.ParseStatus(payload.Status)
	if err != nil {
		return nil, err
	}

	changeDate := lifecycle.Date(time.Now())
	if payload.ChangeDate != nil {
		parsed, err := utils.ParseDate(*payload.ChangeDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid change date %q", *payload.ChangeDate)
		}
		changeDate = parsed
	}

	equipment, err := s.equipmentRepo.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.ValidateTransition(equipment.Status, newStatus); err != nil {
		return nil, err
	}

	var redTagDate *time.Time
	if newStatus == lifecycle.StatusRedTagged {
		redTagDate = &changeDate
	}

	oldStatus := equipment.Status
	var change *entities.StatusChange
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.equipmentRepo.UpdateStatus(ctx, tx, equipmentID, string(oldStatus), string(newStatus)); err != nil {
			return err
		}
		change, err = s.statusChangeRepo.CreateStatusChange(ctx, tx, entities.StatusChange{
			EquipmentID: equipmentID,
			OldStatus:   &oldStatus,
			NewStatus:   newStatus,
			ChangeDate:  changeDate,
			RedTagDate:  redTagDate,
		})
		return err
	})
	if err != nil {
		s.logger.Error("status change failed",
			zap.String("equipment_id", equipmentID),
			zap.String("new_status", string(newStatus)),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("equipment status changed",
		zap.String("equipment_id", equipmentID),
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(newStatus)))
	return statusChangeToDTO(change), nil
}

func (s *EquipmentService) UpdateEquipmentInfo(ctx context.Context, equipmentID string, payload dto.UpdateEquipmentDTO) error {
	return s.equipmentRepo.UpdateEquipmentInfo(ctx, equipmentID, payload)
}

func (s *EquipmentService) UpdateServiceDate(ctx context.Context, equipmentID string, payload dto.UpdateServiceDateDTO) error {
	serviceDate, err := utils.ParseDate(payload.ServiceDate)
	if err != nil {
		return apperrors.NewValidationError("invalid service date %q", payload.ServiceDate)
	}
	return s.equipmentRepo.UpdateServiceDate(ctx, equipmentID, serviceDate)
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, equipmentID string) error {
	if _, err := s.equipmentRepo.FindEquipment(ctx, equipmentID); err != nil {
		return err
	}

	count, err := s.inspectionRepo.CountForEquipment(ctx, equipmentID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrHasInspectionHistory
	}

	return s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.equipmentRepo.DeleteEquipment(ctx, tx, equipmentID)
	})
}

func (s *EquipmentService) GetStatusChanges(ctx context.Context, equipmentID string) ([]dto.StatusChangeDTO, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, equipmentID); err != nil {
		return nil, err
	}
	changes, err := s.statusChangeRepo.GetStatusChanges(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.StatusChangeDTO, 0, len(changes))
	for i := range changes {
		result = append(result, *statusChangeToDTO(&changes[i]))
	}
	return result, nil
}

func equipmentToDTO(e *entities.Equipment, compliance *dto.ComplianceInfoDTO) *dto.EquipmentDTO {
	out := &dto.EquipmentDTO{
		EquipmentID:   e.EquipmentID,
		EquipmentType: e.EquipmentType,
		Name:          e.Name,
		SerialNumber:  e.SerialNumber,
		DateAdded:     utils.FormatDate(e.DateAdded),
		ServiceDate:   utils.FormatDatePtr(e.ServiceDate),
		Status:        string(e.Status),
		CreatedAt:     utils.FormatDateTime(e.CreatedAt),
		Compliance:    compliance,
	}
	if e.Type != nil {
		out.TypeDescription = e.Type.Description
	}
	if e.LastInspection != nil {
		out.LastInspection = inspectionToDTO(e.LastInspection, false)
	}
	return out
}

func statusChangeToDTO(sc *entities.StatusChange) *dto.StatusChangeDTO {
	out := &dto.StatusChangeDTO{
		ChangeID:    sc.ChangeID,
		EquipmentID: sc.EquipmentID,
		NewStatus:   string(sc.NewStatus),
		ChangeDate:  utils.FormatDate(sc.ChangeDate),
		RedTagDate:  utils.FormatDatePtr(sc.RedTagDate),
	}
	if sc.OldStatus != nil {
		v := string(*sc.OldStatus)
		out.OldStatus = &v
	}
	return out
}
