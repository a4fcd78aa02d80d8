package repositories

import (
	"context"
	"fmt"

	"rigtrack/internal/entities"
	"rigtrack/internal/lifecycle"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepository fetches candidate rows for the compliance reports.
// Classification (due dates, tiers) happens in the service layer with
// the lifecycle package, so the rules live in one place.
type ReportRepositoryInterface interface {
	GetOverdueCandidates(ctx context.Context) ([]entities.OverdueInspectionItem, error)
	GetRedTagged(ctx context.Context) ([]entities.RedTaggedItem, error)
	GetExpiringCandidates(ctx context.Context) ([]entities.ExpiringItem, error)
	GetStats(ctx context.Context) (*entities.EquipmentStats, error)
	GetEquipmentSummary(ctx context.Context) ([]entities.SummaryRow, error)
}

type reportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) ReportRepositoryInterface {
	return &reportRepository{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const lastInspectionJoin = `LEFT JOIN (
	SELECT equipment_id, MAX(inspection_date) AS inspection_date
	FROM inspections
	GROUP BY equipment_id
) li ON e.equipment_id = li.equipment_id`

func (r *reportRepository) GetOverdueCandidates(ctx context.Context) ([]entities.OverdueInspectionItem, error) {
	query, args, err := psql.Select(
		"e.equipment_id", "e.equipment_type", "et.description",
		"li.inspection_date", "et.inspection_interval_months", "e.date_added",
	).
		From("equipment e").
		Join("equipment_types et ON e.equipment_type = et.type_code").
		JoinClause(lastInspectionJoin).
		Where(sq.Eq{"e.status": lifecycle.StatusActive}).
		OrderBy("li.inspection_date ASC NULLS FIRST", "e.equipment_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build overdue query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.OverdueInspectionItem
	for rows.Next() {
		var it entities.OverdueInspectionItem
		if err := rows.Scan(
			&it.EquipmentID,
			&it.EquipmentType,
			&it.TypeDescription,
			&it.LastInspectionDate,
			&it.InspectionIntervalMonths,
			&it.DateAdded,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *reportRepository) GetRedTagged(ctx context.Context) ([]entities.RedTaggedItem, error) {
	query, args, err := psql.Select(
		"e.equipment_id", "e.equipment_type", "et.description",
		"MAX(sc.red_tag_date)",
	).
		From("equipment e").
		Join("equipment_types et ON e.equipment_type = et.type_code").
		Join("status_changes sc ON e.equipment_id = sc.equipment_id").
		Where(sq.Eq{"e.status": lifecycle.StatusRedTagged}).
		Where(sq.Eq{"sc.new_status": lifecycle.StatusRedTagged}).
		Where(sq.NotEq{"sc.red_tag_date": nil}).
		GroupBy("e.equipment_id", "e.equipment_type", "et.description").
		OrderBy("MAX(sc.red_tag_date) ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build red-tagged query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.RedTaggedItem
	for rows.Next() {
		var it entities.RedTaggedItem
		if err := rows.Scan(&it.EquipmentID, &it.EquipmentType, &it.TypeDescription, &it.RedTagDate); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *reportRepository) GetExpiringCandidates(ctx context.Context) ([]entities.ExpiringItem, error) {
	// Soft goods whose expiry falls within the next 12 months, already
	// expired items included so they surface as EXPIRED.
	query, args, err := psql.Select(
		"e.equipment_id", "e.equipment_type", "et.description",
		"e.service_date", "et.lifespan_years",
	).
		From("equipment e").
		Join("equipment_types et ON e.equipment_type = et.type_code").
		Where(sq.Eq{"e.status": lifecycle.StatusActive}).
		Where(sq.Eq{"et.is_soft_goods": true}).
		Where(sq.NotEq{"e.service_date": nil}).
		Where(sq.NotEq{"et.lifespan_years": nil}).
		Where(sq.Expr("(e.service_date + INTERVAL '1 year' * et.lifespan_years) <= CURRENT_DATE + INTERVAL '1 year'")).
		OrderBy("(e.service_date + INTERVAL '1 year' * et.lifespan_years) ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build expiring query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.ExpiringItem
	for rows.Next() {
		var it entities.ExpiringItem
		if err := rows.Scan(&it.EquipmentID, &it.EquipmentType, &it.TypeDescription, &it.ServiceDate, &it.LifespanYears); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *reportRepository) GetStats(ctx context.Context) (*entities.EquipmentStats, error) {
	rows, err := r.db.Query(ctx, "SELECT status, COUNT(*) FROM equipment GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats entities.EquipmentStats
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.Total += count
		switch lifecycle.Status(status) {
		case lifecycle.StatusActive:
			stats.Active = count
		case lifecycle.StatusRedTagged:
			stats.RedTagged = count
		case lifecycle.StatusDestroyed:
			stats.Destroyed = count
		}
	}
	return &stats, rows.Err()
}

func (r *reportRepository) GetEquipmentSummary(ctx context.Context) ([]entities.SummaryRow, error) {
	query, args, err := psql.Select(
		"e.equipment_id", "e.equipment_type", "et.description",
		"e.name", "e.serial_number", "e.date_added", "e.service_date", "e.status",
		"lr.inspection_date", "lr.result",
	).
		From("equipment e").
		Join("equipment_types et ON e.equipment_type = et.type_code").
		JoinClause(`LEFT JOIN (
			SELECT DISTINCT ON (equipment_id) equipment_id, inspection_date, result
			FROM inspections
			ORDER BY equipment_id, inspection_date DESC, inspection_id DESC
		) lr ON e.equipment_id = lr.equipment_id`).
		OrderBy("e.equipment_type", "CAST(split_part(e.equipment_id, '/', 2) AS INTEGER)").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build summary query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.SummaryRow
	for rows.Next() {
		var it entities.SummaryRow
		if err := rows.Scan(
			&it.EquipmentID,
			&it.EquipmentType,
			&it.TypeDescription,
			&it.Name,
			&it.SerialNumber,
			&it.DateAdded,
			&it.ServiceDate,
			&it.Status,
			&it.LastInspectionDate,
			&it.LastInspectionResult,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
