package services

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"rigtrack/internal/dto"
	"rigtrack/internal/entities"
	"rigtrack/internal/lifecycle"
	"rigtrack/pkg/apperrors"
)

// The services only ever hand the tx through to repositories, so the
// mock transaction manager can run the body with a nil tx.
type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(_ context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type mockEquipmentRepo struct {
	mu    sync.Mutex
	items map[string]*entities.Equipment
}

func newMockEquipmentRepo() *mockEquipmentRepo {
	return &mockEquipmentRepo{items: make(map[string]*entities.Equipment)}
}

func (m *mockEquipmentRepo) GetEquipmentList(_ context.Context, _ dto.EquipmentListFilter) ([]entities.Equipment, uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]entities.Equipment, 0, len(m.items))
	for _, e := range m.items {
		list = append(list, *e)
	}
	return list, uint64(len(list)), nil
}

func (m *mockEquipmentRepo) FindEquipment(_ context.Context, equipmentID string) (*entities.Equipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.items[equipmentID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (m *mockEquipmentRepo) MaxSequence(_ context.Context, _ pgx.Tx, typeCode string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	maxSeq := 0
	for id := range m.items {
		code, seq, err := lifecycle.SplitEquipmentID(id)
		if err == nil && code == typeCode && seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq, nil
}

func (m *mockEquipmentRepo) CreateEquipment(_ context.Context, _ pgx.Tx, e entities.Equipment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[e.EquipmentID] = &e
	return nil
}

func (m *mockEquipmentRepo) UpdateEquipmentInfo(_ context.Context, equipmentID string, payload dto.UpdateEquipmentDTO) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.items[equipmentID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if payload.Name != nil {
		e.Name = payload.Name
	}
	if payload.SerialNumber != nil {
		e.SerialNumber = payload.SerialNumber
	}
	return nil
}

func (m *mockEquipmentRepo) UpdateServiceDate(_ context.Context, equipmentID string, serviceDate time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.items[equipmentID]
	if !ok {
		return apperrors.ErrNotFound
	}
	e.ServiceDate = &serviceDate
	return nil
}

func (m *mockEquipmentRepo) UpdateStatus(_ context.Context, _ pgx.Tx, equipmentID string, fromStatus, toStatus string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.items[equipmentID]
	if !ok || string(e.Status) != fromStatus {
		return apperrors.ErrStatusConflict
	}
	e.Status = lifecycle.Status(toStatus)
	return nil
}

func (m *mockEquipmentRepo) DeleteEquipment(_ context.Context, _ pgx.Tx, equipmentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[equipmentID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.items, equipmentID)
	return nil
}

type mockTypeRepo struct {
	mu    sync.Mutex
	types map[string]*entities.EquipmentType
}

func newMockTypeRepo(types ...entities.EquipmentType) *mockTypeRepo {
	m := &mockTypeRepo{types: make(map[string]*entities.EquipmentType)}
	for i := range types {
		m.types[types[i].TypeCode] = &types[i]
	}
	return m
}

func (m *mockTypeRepo) GetEquipmentTypes(_ context.Context, activeOnly bool) ([]entities.EquipmentType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := make([]entities.EquipmentType, 0, len(m.types))
	for _, t := range m.types {
		if activeOnly && !t.IsActive {
			continue
		}
		list = append(list, *t)
	}
	return list, nil
}

func (m *mockTypeRepo) FindEquipmentType(_ context.Context, typeCode string) (*entities.EquipmentType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.types[typeCode]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (m *mockTypeRepo) CreateEquipmentType(_ context.Context, et entities.EquipmentType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.types[et.TypeCode]; ok {
		return apperrors.NewValidationError("equipment type %s already exists", et.TypeCode)
	}
	m.types[et.TypeCode] = &et
	return nil
}

func (m *mockTypeRepo) UpdateEquipmentType(_ context.Context, typeCode string, payload dto.UpdateEquipmentTypeDTO) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.types[typeCode]
	if !ok {
		return apperrors.ErrNotFound
	}
	if payload.Description != nil {
		t.Description = *payload.Description
	}
	if payload.IsSoftGoods != nil {
		t.IsSoftGoods = *payload.IsSoftGoods
		if !t.IsSoftGoods {
			t.LifespanYears = nil
		}
	}
	if payload.LifespanYears != nil {
		t.LifespanYears = payload.LifespanYears
	}
	if payload.InspectionIntervalMonths != nil {
		t.InspectionIntervalMonths = *payload.InspectionIntervalMonths
	}
	return nil
}

func (m *mockTypeRepo) DeactivateEquipmentType(_ context.Context, typeCode string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.types[typeCode]
	if !ok {
		return apperrors.ErrNotFound
	}
	t.IsActive = false
	return nil
}

func (m *mockTypeRepo) LockEquipmentType(ctx context.Context, _ pgx.Tx, typeCode string) (*entities.EquipmentType, error) {
	return m.FindEquipmentType(ctx, typeCode)
}

type mockInspectionRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []entities.Inspection
}

func (m *mockInspectionRepo) CreateInspection(_ context.Context, _ pgx.Tx, insp entities.Inspection) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	insp.InspectionID = m.nextID
	m.rows = append(m.rows, insp)
	return m.nextID, nil
}

func (m *mockInspectionRepo) GetEquipmentInspections(_ context.Context, equipmentID string) ([]entities.Inspection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Inspection
	for _, r := range m.rows {
		if r.EquipmentID == equipmentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockInspectionRepo) GetLastInspection(_ context.Context, equipmentID string) (*entities.Inspection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var last *entities.Inspection
	for i := range m.rows {
		r := m.rows[i]
		if r.EquipmentID != equipmentID {
			continue
		}
		if last == nil || r.InspectionDate.After(last.InspectionDate) {
			last = &r
		}
	}
	return last, nil
}

func (m *mockInspectionRepo) CountForEquipment(_ context.Context, equipmentID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, r := range m.rows {
		if r.EquipmentID == equipmentID {
			count++
		}
	}
	return count, nil
}

type mockStatusChangeRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []entities.StatusChange
}

func (m *mockStatusChangeRepo) CreateStatusChange(_ context.Context, _ pgx.Tx, sc entities.StatusChange) (*entities.StatusChange, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	sc.ChangeID = m.nextID
	m.rows = append(m.rows, sc)
	copied := sc
	return &copied, nil
}

func (m *mockStatusChangeRepo) GetStatusChanges(_ context.Context, equipmentID string) ([]entities.StatusChange, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.StatusChange
	for _, r := range m.rows {
		if r.EquipmentID == equipmentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockStatusChangeRepo) forEquipment(equipmentID string) []entities.StatusChange {
	out, _ := m.GetStatusChanges(context.Background(), equipmentID)
	return out
}
