package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

type sample struct {
	Title   string  `json:"title" validate:"notblank"`
	DueDate string  `json:"dueDate" validate:"notblank,datetime=2006-01-02"`
	Score   float64 `json:"score" validate:"gte=0,lte=100"`
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(sample{Title: "Essay", DueDate: "2025-03-01", Score: 100}))
}

func TestStructReportsFirstFieldByJSONName(t *testing.T) {
	cases := []struct {
		name  string
		in    sample
		field string
	}{
		{"blank title", sample{Title: "   ", DueDate: "2025-03-01"}, "title"},
		{"bad date", sample{Title: "Essay", DueDate: "03/01/2025"}, "dueDate"},
		{"score too high", sample{Title: "Essay", DueDate: "2025-03-01", Score: 101}, "score"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

			var ce *apperrors.CustomError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tc.field, ce.Field)
		})
	}
}
