package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rigtrack/pkg/apperrors"
)

func TestFormatEquipmentID(t *testing.T) {
	id, err := FormatEquipmentID("D", 1)
	require.NoError(t, err)
	assert.Equal(t, "D/001", id)

	id, err = FormatEquipmentID("RP", 42)
	require.NoError(t, err)
	assert.Equal(t, "RP/042", id)

	id, err = FormatEquipmentID("H", 999)
	require.NoError(t, err)
	assert.Equal(t, "H/999", id)
}

func TestFormatEquipmentIDCapacity(t *testing.T) {
	_, err := FormatEquipmentID("H", 1000)
	var capErr *apperrors.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "H", capErr.TypeCode)
}

func TestFormatEquipmentIDRejectsBadInput(t *testing.T) {
	var validationErr *apperrors.ValidationError

	_, err := FormatEquipmentID("d", 1)
	assert.ErrorAs(t, err, &validationErr, "lowercase code")

	_, err = FormatEquipmentID("ABC", 1)
	assert.ErrorAs(t, err, &validationErr, "too long")

	_, err = FormatEquipmentID("D", 0)
	assert.ErrorAs(t, err, &validationErr, "zero sequence")
}

func TestSplitEquipmentID(t *testing.T) {
	typeCode, seq, err := SplitEquipmentID("RP/042")
	require.NoError(t, err)
	assert.Equal(t, "RP", typeCode)
	assert.Equal(t, 42, seq)

	for _, bad := range []string{"", "D", "D/", "D/1", "D/0001", "D/000", "d/001", "ABC/001", "D-001"} {
		_, _, err := SplitEquipmentID(bad)
		assert.Error(t, err, "id=%q", bad)
	}
}

func TestValidEquipmentID(t *testing.T) {
	assert.True(t, ValidEquipmentID("D/001"))
	assert.True(t, ValidEquipmentID("RP/999"))
	assert.False(t, ValidEquipmentID("D/000"))
	assert.False(t, ValidEquipmentID("d/001"))
	assert.False(t, ValidEquipmentID("D/1000"))
}

func TestNormalizeTypeCode(t *testing.T) {
	assert.Equal(t, "RP", NormalizeTypeCode("  rp "))
	assert.Equal(t, "D", NormalizeTypeCode("d"))
}
