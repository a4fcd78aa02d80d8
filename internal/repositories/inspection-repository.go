package repositories

import (
	"context"

	"rigtrack/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const inspectionFields = "inspection_id, equipment_id, inspection_date, result, inspector_name, notes, created_at"

type InspectionRepositoryInterface interface {
	// CreateInspection appends an inspection row inside tx and returns
	// its generated ID. Inspections are immutable, there is no update.
	CreateInspection(ctx context.Context, tx pgx.Tx, insp entities.Inspection) (int64, error)
	GetEquipmentInspections(ctx context.Context, equipmentID string) ([]entities.Inspection, error)
	GetLastInspection(ctx context.Context, equipmentID string) (*entities.Inspection, error)
	CountForEquipment(ctx context.Context, equipmentID string) (int, error)
}

type InspectionRepository struct {
	storage *pgxpool.Pool
}

func NewInspectionRepository(storage *pgxpool.Pool) InspectionRepositoryInterface {
	return &InspectionRepository{storage: storage}
}

func (r *InspectionRepository) CreateInspection(ctx context.Context, tx pgx.Tx, insp entities.Inspection) (int64, error) {
	query := `
		INSERT INTO inspections (equipment_id, inspection_date, result, inspector_name, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING inspection_id
	`
	var id int64
	err := tx.QueryRow(ctx, query,
		insp.EquipmentID,
		insp.InspectionDate,
		insp.Result,
		insp.InspectorName,
		insp.Notes,
	).Scan(&id)
	return id, err
}

func scanInspections(rows pgx.Rows) ([]entities.Inspection, error) {
	defer rows.Close()
	var list []entities.Inspection
	for rows.Next() {
		var insp entities.Inspection
		if err := rows.Scan(
			&insp.InspectionID,
			&insp.EquipmentID,
			&insp.InspectionDate,
			&insp.Result,
			&insp.InspectorName,
			&insp.Notes,
			&insp.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, insp)
	}
	return list, rows.Err()
}

func (r *InspectionRepository) GetEquipmentInspections(ctx context.Context, equipmentID string) ([]entities.Inspection, error) {
	query := "SELECT " + inspectionFields + " FROM inspections WHERE equipment_id = $1 ORDER BY inspection_date DESC, inspection_id DESC"
	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	return scanInspections(rows)
}

func (r *InspectionRepository) GetLastInspection(ctx context.Context, equipmentID string) (*entities.Inspection, error) {
	query := "SELECT " + inspectionFields + " FROM inspections WHERE equipment_id = $1 ORDER BY inspection_date DESC, inspection_id DESC LIMIT 1"
	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	list, err := scanInspections(rows)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (r *InspectionRepository) CountForEquipment(ctx context.Context, equipmentID string) (int, error) {
	var count int
	err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM inspections WHERE equipment_id = $1", equipmentID).Scan(&count)
	return count, err
}
