package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rigtrack/internal/dto"
	"rigtrack/internal/entities"
	"rigtrack/pkg/apperrors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentFields = "e.equipment_id, e.equipment_type, e.name, e.serial_number, e.date_added, e.service_date, e.status, e.created_at"

type EquipmentRepositoryInterface interface {
	GetEquipmentList(ctx context.Context, filter dto.EquipmentListFilter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, equipmentID string) (*entities.Equipment, error)
	// MaxSequence returns the highest allocated TYPE/NNN sequence for a
	// type, 0 when none exist. Callers must hold the type row lock (see
	// EquipmentTypeRepository.LockEquipmentType) before allocating from it.
	MaxSequence(ctx context.Context, tx pgx.Tx, typeCode string) (int, error)
	CreateEquipment(ctx context.Context, tx pgx.Tx, e entities.Equipment) error
	UpdateEquipmentInfo(ctx context.Context, equipmentID string, payload dto.UpdateEquipmentDTO) error
	UpdateServiceDate(ctx context.Context, equipmentID string, serviceDate time.Time) error
	UpdateStatus(ctx context.Context, tx pgx.Tx, equipmentID string, fromStatus, toStatus string) error
	DeleteEquipment(ctx context.Context, tx pgx.Tx, equipmentID string) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func (r *EquipmentRepository) GetEquipmentList(ctx context.Context, filter dto.EquipmentListFilter) ([]entities.Equipment, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	base := psql.Select().
		From("equipment e").
		Join("equipment_types et ON e.equipment_type = et.type_code")

	if filter.Status != "" {
		base = base.Where(sq.Eq{"e.status": filter.Status})
	}
	if filter.Type != "" {
		base = base.Where(sq.Eq{"e.equipment_type": filter.Type})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where(sq.Or{
			sq.ILike{"e.equipment_id": pattern},
			sq.ILike{"e.name": pattern},
			sq.ILike{"e.serial_number": pattern},
			sq.ILike{"et.description": pattern},
		})
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count equipment: %w", err)
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	listBuilder := base.
		Columns(equipmentFields, "et.description", "et.is_soft_goods", "et.lifespan_years", "et.inspection_interval_months", "et.is_active", "et.sort_order").
		OrderBy("e.equipment_type", "CAST(split_part(e.equipment_id, '/', 2) AS INTEGER)")
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(filter.Limit).Offset(filter.Offset)
	}
	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []entities.Equipment
	for rows.Next() {
		var e entities.Equipment
		var et entities.EquipmentType
		if err := rows.Scan(
			&e.EquipmentID,
			&e.EquipmentType,
			&e.Name,
			&e.SerialNumber,
			&e.DateAdded,
			&e.ServiceDate,
			&e.Status,
			&e.CreatedAt,
			&et.Description,
			&et.IsSoftGoods,
			&et.LifespanYears,
			&et.InspectionIntervalMonths,
			&et.IsActive,
			&et.SortOrder,
		); err != nil {
			return nil, 0, err
		}
		et.TypeCode = e.EquipmentType
		e.Type = &et
		list = append(list, e)
	}
	return list, total, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, equipmentID string) (*entities.Equipment, error) {
	query := fmt.Sprintf(`
		SELECT %s,
		       et.description, et.is_soft_goods, et.lifespan_years, et.inspection_interval_months, et.is_active, et.sort_order
		FROM equipment e
			JOIN equipment_types et ON e.equipment_type = et.type_code
		WHERE e.equipment_id = $1
	`, equipmentFields)

	var e entities.Equipment
	var et entities.EquipmentType

	err := r.storage.QueryRow(ctx, query, equipmentID).Scan(
		&e.EquipmentID,
		&e.EquipmentType,
		&e.Name,
		&e.SerialNumber,
		&e.DateAdded,
		&e.ServiceDate,
		&e.Status,
		&e.CreatedAt,
		&et.Description,
		&et.IsSoftGoods,
		&et.LifespanYears,
		&et.InspectionIntervalMonths,
		&et.IsActive,
		&et.SortOrder,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	et.TypeCode = e.EquipmentType
	e.Type = &et
	return &e, nil
}

func (r *EquipmentRepository) MaxSequence(ctx context.Context, tx pgx.Tx, typeCode string) (int, error) {
	query := `
		SELECT COALESCE(MAX(CAST(split_part(equipment_id, '/', 2) AS INTEGER)), 0)
		FROM equipment
		WHERE equipment_type = $1
	`
	var maxSeq int
	if err := tx.QueryRow(ctx, query, typeCode).Scan(&maxSeq); err != nil {
		return 0, err
	}
	return maxSeq, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, tx pgx.Tx, e entities.Equipment) error {
	query := `
		INSERT INTO equipment (equipment_id, equipment_type, name, serial_number, date_added, service_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := tx.Exec(ctx, query,
		e.EquipmentID,
		e.EquipmentType,
		e.Name,
		e.SerialNumber,
		e.DateAdded,
		e.ServiceDate,
		e.Status,
	)
	return err
}

func (r *EquipmentRepository) UpdateEquipmentInfo(ctx context.Context, equipmentID string, payload dto.UpdateEquipmentDTO) error {
	query := `
		UPDATE equipment
		SET name = COALESCE($1, name), serial_number = COALESCE($2, serial_number)
		WHERE equipment_id = $3
	`
	result, err := r.storage.Exec(ctx, query, payload.Name, payload.SerialNumber, equipmentID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) UpdateServiceDate(ctx context.Context, equipmentID string, serviceDate time.Time) error {
	result, err := r.storage.Exec(ctx, "UPDATE equipment SET service_date = $1 WHERE equipment_id = $2", serviceDate, equipmentID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateStatus writes the new status only if the row still carries the
// status the caller validated against. Callers resolve the equipment
// before calling, so zero affected rows means a concurrent writer won.
func (r *EquipmentRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, equipmentID string, fromStatus, toStatus string) error {
	result, err := tx.Exec(ctx,
		"UPDATE equipment SET status = $1 WHERE equipment_id = $2 AND status = $3",
		toStatus, equipmentID, fromStatus,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrStatusConflict
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, tx pgx.Tx, equipmentID string) error {
	// Audit rows first, the FK restricts deleting equipment that still
	// has status changes.
	if _, err := tx.Exec(ctx, "DELETE FROM status_changes WHERE equipment_id = $1", equipmentID); err != nil {
		return err
	}
	result, err := tx.Exec(ctx, "DELETE FROM equipment WHERE equipment_id = $1", equipmentID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
