package lifecycle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"rigtrack/pkg/apperrors"
)

// Equipment IDs look like D/001 or RP/042: a 1-2 letter type code, a
// slash, and a zero-padded 3-digit sequence between 001 and 999.
const MaxSequence = 999

var (
	equipmentIDPattern = regexp.MustCompile(`^[A-Z]{1,2}/\d{3}$`)
	typeCodePattern    = regexp.MustCompile(`^[A-Z]{1,2}$`)
)

func ValidTypeCode(code string) bool {
	return typeCodePattern.MatchString(code)
}

func ValidEquipmentID(id string) bool {
	if !equipmentIDPattern.MatchString(id) {
		return false
	}
	_, seq, err := SplitEquipmentID(id)
	return err == nil && seq >= 1
}

// FormatEquipmentID builds TYPE/NNN from a type code and sequence
// number. Sequences past 999 do not fit the format and fail with a
// CapacityError.
func FormatEquipmentID(typeCode string, seq int) (string, error) {
	if !ValidTypeCode(typeCode) {
		return "", apperrors.NewValidationError("type code must be 1-2 uppercase letters, got %q", typeCode)
	}
	if seq < 1 {
		return "", apperrors.NewValidationError("equipment sequence must be positive, got %d", seq)
	}
	if seq > MaxSequence {
		return "", &apperrors.CapacityError{TypeCode: typeCode}
	}
	return fmt.Sprintf("%s/%03d", typeCode, seq), nil
}

// SplitEquipmentID splits TYPE/NNN into type code and sequence.
func SplitEquipmentID(id string) (string, int, error) {
	parts := strings.SplitN(id, "/", 2)
	if len(parts) != 2 {
		return "", 0, apperrors.NewValidationError("malformed equipment ID %q", id)
	}
	typeCode := parts[0]
	if !ValidTypeCode(typeCode) {
		return "", 0, apperrors.NewValidationError("malformed equipment ID %q", id)
	}
	seq, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 3 || seq < 1 || seq > MaxSequence {
		return "", 0, apperrors.NewValidationError("malformed equipment ID %q", id)
	}
	return typeCode, seq, nil
}

// NormalizeTypeCode uppercases and trims a user supplied type code.
func NormalizeTypeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
