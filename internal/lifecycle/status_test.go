package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rigtrack/pkg/apperrors"
)

func TestValidateTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		to   Status
		ok   bool
	}{
		{"active to red tagged", StatusActive, StatusRedTagged, true},
		{"active to destroyed", StatusActive, StatusDestroyed, true},
		{"red tagged to destroyed", StatusRedTagged, StatusDestroyed, true},
		{"red tagged back to active", StatusRedTagged, StatusActive, false},
		{"destroyed to active", StatusDestroyed, StatusActive, false},
		{"destroyed to red tagged", StatusDestroyed, StatusRedTagged, false},
		{"active to active", StatusActive, StatusActive, false},
		{"red tagged to red tagged", StatusRedTagged, StatusRedTagged, false},
		{"destroyed to destroyed", StatusDestroyed, StatusDestroyed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTransition(tc.from, tc.to)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			var transitionErr *apperrors.InvalidTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, string(tc.from), transitionErr.From)
			assert.Equal(t, string(tc.to), transitionErr.To)
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("RED_TAGGED")
	require.NoError(t, err)
	assert.Equal(t, StatusRedTagged, s)

	_, err = ParseStatus("retired")
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestParseResult(t *testing.T) {
	r, err := ParseResult("FAIL")
	require.NoError(t, err)
	assert.True(t, r.Failed())

	r, err = ParseResult("PASS")
	require.NoError(t, err)
	assert.False(t, r.Failed())

	_, err = ParseResult("ok")
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
