package repositories

import (
	"context"

	"rigtrack/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatusChangeRepositoryInterface interface {
	// CreateStatusChange appends one audit row inside tx. Prior rows are
	// never mutated or deleted.
	CreateStatusChange(ctx context.Context, tx pgx.Tx, sc entities.StatusChange) (*entities.StatusChange, error)
	GetStatusChanges(ctx context.Context, equipmentID string) ([]entities.StatusChange, error)
}

type StatusChangeRepository struct {
	storage *pgxpool.Pool
}

func NewStatusChangeRepository(storage *pgxpool.Pool) StatusChangeRepositoryInterface {
	return &StatusChangeRepository{storage: storage}
}

func (r *StatusChangeRepository) CreateStatusChange(ctx context.Context, tx pgx.Tx, sc entities.StatusChange) (*entities.StatusChange, error) {
	query := `
		INSERT INTO status_changes (equipment_id, old_status, new_status, change_date, red_tag_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING change_id
	`
	err := tx.QueryRow(ctx, query,
		sc.EquipmentID,
		sc.OldStatus,
		sc.NewStatus,
		sc.ChangeDate,
		sc.RedTagDate,
	).Scan(&sc.ChangeID)
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (r *StatusChangeRepository) GetStatusChanges(ctx context.Context, equipmentID string) ([]entities.StatusChange, error) {
	query := `
		SELECT change_id, equipment_id, old_status, new_status, change_date, red_tag_date
		FROM status_changes
		WHERE equipment_id = $1
		ORDER BY change_date DESC, change_id DESC
	`
	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.StatusChange
	for rows.Next() {
		var sc entities.StatusChange
		if err := rows.Scan(
			&sc.ChangeID,
			&sc.EquipmentID,
			&sc.OldStatus,
			&sc.NewStatus,
			&sc.ChangeDate,
			&sc.RedTagDate,
		); err != nil {
			return nil, err
		}
		list = append(list, sc)
	}
	return list, rows.Err()
}
