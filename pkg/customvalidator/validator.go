package customvalidator

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"rigtrack/pkg/apperrors"
)

var (
	typeCodeRegex    = regexp.MustCompile(`^[A-Z]{1,2}$`)
	equipmentIDRegex = regexp.MustCompile(`^[A-Z]{1,2}/\d{3}$`)
)

// RegisterCustomValidations wires the domain-specific rules into the
// validator instance used by the request binding layer.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("type_code", isTypeCode); err != nil {
		return err
	}
	if err := v.RegisterValidation("equipment_id", isEquipmentID); err != nil {
		return err
	}
	return nil
}

func isTypeCode(fl validator.FieldLevel) bool {
	return typeCodeRegex.MatchString(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
}

func isEquipmentID(fl validator.FieldLevel) bool {
	return equipmentIDRegex.MatchString(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
}

// CustomValidator adapts go-playground/validator to echo's Validator
// interface and folds field errors into one ValidationError.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field()+" failed on '"+fe.Tag()+"'")
		}
		return apperrors.NewValidationError("validation failed: %s", strings.Join(fields, "; "))
	}
	return err
}
