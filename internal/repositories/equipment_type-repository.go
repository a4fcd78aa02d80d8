package repositories

import (
	"context"
	"errors"

	"rigtrack/internal/dto"
	"rigtrack/internal/entities"
	"rigtrack/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentTypeFields = "type_code, description, is_soft_goods, lifespan_years, inspection_interval_months, is_active, sort_order"

type EquipmentTypeRepositoryInterface interface {
	GetEquipmentTypes(ctx context.Context, activeOnly bool) ([]entities.EquipmentType, error)
	FindEquipmentType(ctx context.Context, typeCode string) (*entities.EquipmentType, error)
	CreateEquipmentType(ctx context.Context, et entities.EquipmentType) error
	UpdateEquipmentType(ctx context.Context, typeCode string, payload dto.UpdateEquipmentTypeDTO) error
	DeactivateEquipmentType(ctx context.Context, typeCode string) error
	// LockEquipmentType reads the type row FOR UPDATE inside tx. Every
	// equipment ID allocation for the type serializes on this lock.
	LockEquipmentType(ctx context.Context, tx pgx.Tx, typeCode string) (*entities.EquipmentType, error)
}

type EquipmentTypeRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentTypeRepository(storage *pgxpool.Pool) EquipmentTypeRepositoryInterface {
	return &EquipmentTypeRepository{storage: storage}
}

// findEquipmentType runs on the pool or inside a transaction; the lock
// variant appends FOR UPDATE so ID allocation serializes on the row.
func findEquipmentType(ctx context.Context, q querier, typeCode string, forUpdate bool) (*entities.EquipmentType, error) {
	query := "SELECT " + equipmentTypeFields + " FROM equipment_types WHERE type_code = $1"
	if forUpdate {
		query += " FOR UPDATE"
	}
	return scanEquipmentType(q.QueryRow(ctx, query, typeCode))
}

func scanEquipmentType(row pgx.Row) (*entities.EquipmentType, error) {
	var et entities.EquipmentType
	err := row.Scan(
		&et.TypeCode,
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
	return &et, nil
}

func (r *EquipmentTypeRepository) GetEquipmentTypes(ctx context.Context, activeOnly bool) ([]entities.EquipmentType, error) {
	query := "SELECT " + equipmentTypeFields + " FROM equipment_types"
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY sort_order, type_code"

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []entities.EquipmentType
	for rows.Next() {
		var et entities.EquipmentType
		if err := rows.Scan(
			&et.TypeCode,
			&et.Description,
			&et.IsSoftGoods,
			&et.LifespanYears,
			&et.InspectionIntervalMonths,
			&et.IsActive,
			&et.SortOrder,
		); err != nil {
			return nil, err
		}
		types = append(types, et)
	}
	return types, rows.Err()
}

func (r *EquipmentTypeRepository) FindEquipmentType(ctx context.Context, typeCode string) (*entities.EquipmentType, error) {
	return findEquipmentType(ctx, r.storage, typeCode, false)
}

func (r *EquipmentTypeRepository) CreateEquipmentType(ctx context.Context, et entities.EquipmentType) error {
	query := `
		INSERT INTO equipment_types (type_code, description, is_soft_goods, lifespan_years, inspection_interval_months, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM equipment_types))
	`
	_, err := r.storage.Exec(ctx, query,
		et.TypeCode,
		et.Description,
		et.IsSoftGoods,
		et.LifespanYears,
		et.InspectionIntervalMonths,
		et.IsActive,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewValidationError("equipment type %s already exists", et.TypeCode)
		}
		return err
	}
	return nil
}

func (r *EquipmentTypeRepository) UpdateEquipmentType(ctx context.Context, typeCode string, payload dto.UpdateEquipmentTypeDTO) error {
	// Hardware carries no lifespan. The lifespan column has to be cleared
	// in the same statement that flips is_soft_goods, otherwise the
	// soft_goods_lifespan check constraint rejects the intermediate row.
	query := `
		UPDATE equipment_types
		SET description = COALESCE($1, description),
		    is_soft_goods = COALESCE($2, is_soft_goods),
		    lifespan_years = CASE
		        WHEN NOT COALESCE($2, is_soft_goods) THEN NULL
		        ELSE COALESCE($3, lifespan_years)
		    END,
		    inspection_interval_months = COALESCE($4, inspection_interval_months)
		WHERE type_code = $5
	`
	result, err := r.storage.Exec(ctx, query,
		payload.Description,
		payload.IsSoftGoods,
		payload.LifespanYears,
		payload.InspectionIntervalMonths,
		typeCode,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentTypeRepository) DeactivateEquipmentType(ctx context.Context, typeCode string) error {
	result, err := r.storage.Exec(ctx, "UPDATE equipment_types SET is_active = FALSE WHERE type_code = $1", typeCode)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentTypeRepository) LockEquipmentType(ctx context.Context, tx pgx.Tx, typeCode string) (*entities.EquipmentType, error) {
	return findEquipmentType(ctx, tx, typeCode, true)
}
