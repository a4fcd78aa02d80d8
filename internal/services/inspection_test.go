package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rigtrack/internal/dto"
	"rigtrack/internal/entities"
	"rigtrack/internal/lifecycle"
	"rigtrack/pkg/apperrors"
)

type inspectionFixture struct {
	service       InspectionServiceInterface
	equipmentRepo *mockEquipmentRepo
	inspections   *mockInspectionRepo
	statusChanges *mockStatusChangeRepo
}

func newInspectionFixture() *inspectionFixture {
	f := &inspectionFixture{
		equipmentRepo: newMockEquipmentRepo(),
		inspections:   &mockInspectionRepo{},
		statusChanges: &mockStatusChangeRepo{},
	}
	f.service = NewInspectionService(f.inspections, f.equipmentRepo, f.statusChanges, &mockTxManager{}, zap.NewNop())
	return f
}

func (f *inspectionFixture) seedEquipment(equipmentID string, status lifecycle.Status) {
	f.equipmentRepo.items[equipmentID] = &entities.Equipment{
		EquipmentID:   equipmentID,
		EquipmentType: "D",
		DateAdded:     time.Now().AddDate(0, -2, 0),
		Status:        status,
		CreatedAt:     time.Now(),
	}
}

func TestRecordInspectionPass(t *testing.T) {
	f := newInspectionFixture()
	f.seedEquipment("D/001", lifecycle.StatusActive)

	res, err := f.service.RecordInspection(context.Background(), dto.CreateInspectionDTO{
		EquipmentID:    "D/001",
		InspectionDate: "2025-05-10",
		Result:         "PASS",
		InspectorName:  "M. Halimov",
	})
	require.NoError(t, err)
	assert.Equal(t, "PASS", res.Result)
	assert.False(t, res.RedTagged)

	stored, err := f.equipmentRepo.FindEquipment(context.Background(), "D/001")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusActive, stored.Status, "a pass must leave the status alone")
	assert.Empty(t, f.statusChanges.forEquipment("D/001"))
}

func TestRecordInspectionFailRedTags(t *testing.T) {
	f := newInspectionFixture()
	f.seedEquipment("D/001", lifecycle.StatusActive)

	res, err := f.service.RecordInspection(context.Background(), dto.CreateInspectionDTO{
		EquipmentID:    "D/001",
		InspectionDate: "2025-05-10",
		Result:         "FAIL",
		InspectorName:  "S. Rahimova",
	})
	require.NoError(t, err)
	assert.True(t, res.RedTagged)

	stored, err := f.equipmentRepo.FindEquipment(context.Background(), "D/001")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusRedTagged, stored.Status)

	changes := f.statusChanges.forEquipment("D/001")
	require.Len(t, changes, 1, "exactly one audit row for the auto red-tag")
	require.NotNil(t, changes[0].OldStatus)
	assert.Equal(t, lifecycle.StatusActive, *changes[0].OldStatus)
	assert.Equal(t, lifecycle.StatusRedTagged, changes[0].NewStatus)

	// The red-tag date is the inspection date, not the recording time.
	require.NotNil(t, changes[0].RedTagDate)
	assert.Equal(t, "2025-05-10", changes[0].RedTagDate.Format("2006-01-02"))

	count, err := f.inspections.CountForEquipment(context.Background(), "D/001")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecordInspectionNormalizesEquipmentID(t *testing.T) {
	f := newInspectionFixture()
	f.seedEquipment("D/001", lifecycle.StatusActive)

	res, err := f.service.RecordInspection(context.Background(), dto.CreateInspectionDTO{
		EquipmentID:    "d/001",
		InspectionDate: "2025-05-10",
		Result:         "PASS",
		InspectorName:  "M. Halimov",
	})
	require.NoError(t, err, "a lowercase body ID addresses the same equipment as the path params")
	assert.Equal(t, "D/001", res.EquipmentID)

	count, err := f.inspections.CountForEquipment(context.Background(), "D/001")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecordInspectionRejectsNonActive(t *testing.T) {
	for _, status := range []lifecycle.Status{lifecycle.StatusRedTagged, lifecycle.StatusDestroyed} {
		f := newInspectionFixture()
		f.seedEquipment("D/001", status)

		_, err := f.service.RecordInspection(context.Background(), dto.CreateInspectionDTO{
			EquipmentID:    "D/001",
			InspectionDate: "2025-05-10",
			Result:         "PASS",
			InspectorName:  "M. Halimov",
		})
		var stateErr *apperrors.InvalidStateError
		require.ErrorAs(t, err, &stateErr, "status=%s", status)
		assert.Equal(t, string(status), stateErr.Status)

		count, _ := f.inspections.CountForEquipment(context.Background(), "D/001")
		assert.Zero(t, count, "no inspection row for the refused recording")
	}
}

func TestRecordInspectionUnknownEquipment(t *testing.T) {
	f := newInspectionFixture()

	_, err := f.service.RecordInspection(context.Background(), dto.CreateInspectionDTO{
		EquipmentID:    "D/001",
		InspectionDate: "2025-05-10",
		Result:         "PASS",
		InspectorName:  "M. Halimov",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRecordInspectionRejectsFutureDate(t *testing.T) {
	f := newInspectionFixture()
	f.seedEquipment("D/001", lifecycle.StatusActive)

	future := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	_, err := f.service.RecordInspection(context.Background(), dto.CreateInspectionDTO{
		EquipmentID:    "D/001",
		InspectionDate: future,
		Result:         "PASS",
		InspectorName:  "M. Halimov",
	})
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestRecordInspectionRejectsBadResult(t *testing.T) {
	f := newInspectionFixture()
	f.seedEquipment("D/001", lifecycle.StatusActive)

	_, err := f.service.RecordInspection(context.Background(), dto.CreateInspectionDTO{
		EquipmentID:    "D/001",
		InspectionDate: "2025-05-10",
		Result:         "ok",
		InspectorName:  "M. Halimov",
	})
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
