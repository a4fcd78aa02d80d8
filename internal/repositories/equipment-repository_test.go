package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"rigtrack/internal/entities"
	"rigtrack/internal/lifecycle"
	"rigtrack/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

// TestMain connects to the test database named by TEST_DATABASE_URL,
// applies the migrations and runs the suite. Without the variable the
// integration tests are skipped entirely.
func TestMain(m *testing.M) {
	testDbURL := os.Getenv("TEST_DATABASE_URL")
	if testDbURL == "" {
		fmt.Println("TEST_DATABASE_URL is not set, skipping repository integration tests")
		return
	}

	applyMigrations(testDbURL)

	var err error
	testPool, err = pgxpool.New(context.Background(), testDbURL)
	if err != nil {
		log.Fatalf("failed to connect to the test database: %v", err)
	}
	defer testPool.Close()

	code := m.Run()
	os.Exit(code)
}

func applyMigrations(dbURL string) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("failed to open migration connection: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db, "../../migrations"); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}
}

// cleanupTables empties the inventory tables and restores the seeded
// type dictionary rows the tests mutate.
func cleanupTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE TABLE inspections, status_changes, equipment RESTART IDENTITY CASCADE;`)
	require.NoError(t, err, "failed to clean up tables")

	_, err = pool.Exec(context.Background(),
		`UPDATE equipment_types SET is_soft_goods = TRUE, lifespan_years = 10, is_active = TRUE WHERE type_code = 'R'`)
	require.NoError(t, err, "failed to restore the seeded rope type")
}

func seedEquipment(t *testing.T, pool *pgxpool.Pool, equipmentID, typeCode string, status lifecycle.Status) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO equipment (equipment_id, equipment_type, date_added, status) VALUES ($1, $2, $3, $4)`,
		equipmentID, typeCode, time.Now(), string(status))
	require.NoError(t, err)
}

// allocateOne replays the service's allocation sequence with the raw
// repository primitives: lock the type row, read the high-water mark,
// insert the next ID.
func allocateOne(ctx context.Context, txManager TxManagerInterface, equipmentRepo EquipmentRepositoryInterface, typeRepo EquipmentTypeRepositoryInterface, typeCode string) (string, error) {
	var allocated string
	err := txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := typeRepo.LockEquipmentType(ctx, tx, typeCode); err != nil {
			return err
		}
		maxSeq, err := equipmentRepo.MaxSequence(ctx, tx, typeCode)
		if err != nil {
			return err
		}
		id, err := lifecycle.FormatEquipmentID(typeCode, maxSeq+1)
		if err != nil {
			return err
		}
		if err := equipmentRepo.CreateEquipment(ctx, tx, entities.Equipment{
			EquipmentID:   id,
			EquipmentType: typeCode,
			DateAdded:     time.Now(),
			Status:        lifecycle.StatusActive,
		}); err != nil {
			return err
		}
		allocated = id
		return nil
	})
	return allocated, err
}

func TestEquipmentRepository_Integration_ConcurrentAllocation(t *testing.T) {
	require.NotNil(t, testPool, "testPool is not initialized")
	cleanupTables(t, testPool)

	equipmentRepo := NewEquipmentRepository(testPool)
	typeRepo := NewEquipmentTypeRepository(testPool)
	txManager := NewTxManager(testPool)

	const workers = 8
	ids := make(chan string, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := allocateOne(context.Background(), txManager, equipmentRepo, typeRepo, "D")
			if err != nil {
				errs <- err
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		require.NoError(t, err, "allocation must not fail under contention")
	}

	seen := make(map[string]bool, workers)
	for id := range ids {
		assert.False(t, seen[id], "duplicate ID %s allocated", id)
		seen[id] = true
	}
	require.Len(t, seen, workers)

	// Gapless: every sequence from 1 to workers was handed out.
	for seq := 1; seq <= workers; seq++ {
		id := fmt.Sprintf("D/%03d", seq)
		assert.True(t, seen[id], "expected %s to be allocated", id)
	}
}

func TestEquipmentRepository_Integration_UpdateStatusConditional(t *testing.T) {
	cleanupTables(t, testPool)
	seedEquipment(t, testPool, "D/001", "D", lifecycle.StatusActive)

	equipmentRepo := NewEquipmentRepository(testPool)
	txManager := NewTxManager(testPool)
	ctx := context.Background()

	err := txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return equipmentRepo.UpdateStatus(ctx, tx, "D/001", string(lifecycle.StatusActive), string(lifecycle.StatusRedTagged))
	})
	require.NoError(t, err)

	// A second writer that still believes the equipment is ACTIVE loses.
	err = txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return equipmentRepo.UpdateStatus(ctx, tx, "D/001", string(lifecycle.StatusActive), string(lifecycle.StatusDestroyed))
	})
	assert.ErrorIs(t, err, apperrors.ErrStatusConflict)

	found, err := equipmentRepo.FindEquipment(ctx, "D/001")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusRedTagged, found.Status)
}
