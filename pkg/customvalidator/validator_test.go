package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rigtrack/pkg/apperrors"
)

type typeCodePayload struct {
	Code string `validate:"required,type_code"`
}

type equipmentIDPayload struct {
	ID string `validate:"required,equipment_id"`
}

func newTestValidator(t *testing.T) *CustomValidator {
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return NewValidator(v)
}

func TestTypeCodeRule(t *testing.T) {
	cv := newTestValidator(t)

	assert.NoError(t, cv.Validate(&typeCodePayload{Code: "D"}))
	assert.NoError(t, cv.Validate(&typeCodePayload{Code: "RP"}))
	assert.NoError(t, cv.Validate(&typeCodePayload{Code: "rp"}), "case is normalized before matching")

	for _, bad := range []string{"ABC", "1", "D1", "-"} {
		assert.Error(t, cv.Validate(&typeCodePayload{Code: bad}), "code=%q", bad)
	}
}

func TestEquipmentIDRule(t *testing.T) {
	cv := newTestValidator(t)

	assert.NoError(t, cv.Validate(&equipmentIDPayload{ID: "D/001"}))
	assert.NoError(t, cv.Validate(&equipmentIDPayload{ID: "RP/999"}))
	assert.NoError(t, cv.Validate(&equipmentIDPayload{ID: "d/001"}), "case is normalized before matching")

	for _, bad := range []string{"D001", "D/1", "D/0001", "ABC/001"} {
		assert.Error(t, cv.Validate(&equipmentIDPayload{ID: bad}), "id=%q", bad)
	}
}

func TestValidateFoldsFieldErrors(t *testing.T) {
	cv := newTestValidator(t)

	err := cv.Validate(&typeCodePayload{Code: "bogus"})
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "type_code")
}
