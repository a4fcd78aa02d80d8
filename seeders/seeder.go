package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rigtrack/internal/lifecycle"
	"rigtrack/pkg/utils"
)

// SeedDemoData fills the inventory tables with a small demo fleet. The
// equipment type dictionary comes from migrations and is left alone.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding demo inventory...")

	if err := seedInventory(ctx, db); err != nil {
		log.Fatalf("demo inventory seeding failed: %v", err)
	}
	log.Println("demo inventory seeded")
}

func seedInventory(ctx context.Context, db *pgxpool.Pool) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE inspections, status_changes, equipment RESTART IDENTITY CASCADE"); err != nil {
		return err
	}

	for _, e := range demoEquipmentData {
		if err := insertEquipment(ctx, tx, e); err != nil {
			return fmt.Errorf("equipment %s/%03d: %w", e.TypeCode, e.Sequence, err)
		}
	}
	for _, i := range demoInspectionData {
		if err := insertInspection(ctx, tx, i); err != nil {
			return fmt.Errorf("inspection for %s: %w", i.EquipmentID, err)
		}
	}

	return tx.Commit(ctx)
}

func insertEquipment(ctx context.Context, tx pgx.Tx, e demoEquipment) error {
	equipmentID, err := lifecycle.FormatEquipmentID(e.TypeCode, e.Sequence)
	if err != nil {
		return err
	}

	dateAdded, err := utils.ParseDate(e.DateAdded)
	if err != nil {
		return err
	}
	var serviceDate interface{}
	if e.ServiceDate != "" {
		parsed, err := utils.ParseDate(e.ServiceDate)
		if err != nil {
			return err
		}
		serviceDate = parsed
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO equipment (equipment_id, equipment_type, name, serial_number, date_added, service_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'ACTIVE')`,
		equipmentID, e.TypeCode, e.Name, e.Serial, dateAdded, serviceDate,
	); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO status_changes (equipment_id, old_status, new_status, change_date)
		VALUES ($1, NULL, 'ACTIVE', $2)`,
		equipmentID, dateAdded,
	)
	return err
}

func insertInspection(ctx context.Context, tx pgx.Tx, i demoInspection) error {
	date, err := utils.ParseDate(i.InspectionDate)
	if err != nil {
		return err
	}
	var notes interface{}
	if i.Notes != "" {
		notes = i.Notes
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO inspections (equipment_id, inspection_date, result, inspector_name, notes)
		VALUES ($1, $2, $3, $4, $5)`,
		i.EquipmentID, date, i.Result, i.InspectorName, notes,
	); err != nil {
		return err
	}

	// A failed inspection red-tags the item, same as the live flow does.
	if i.Result == string(lifecycle.ResultFail) {
		if _, err := tx.Exec(ctx,
			"UPDATE equipment SET status = 'RED_TAGGED' WHERE equipment_id = $1", i.EquipmentID,
		); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO status_changes (equipment_id, old_status, new_status, change_date, red_tag_date)
			VALUES ($1, 'ACTIVE', 'RED_TAGGED', $2, $2)`,
			i.EquipmentID, date,
		); err != nil {
			return err
		}
	}
	return nil
}
