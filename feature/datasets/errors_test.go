package datasets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"sales.csv", true},
		{"Report.CSV", true},
		{"销售数据.csv", true},
		{"", false},
		{"   ", false},
		{"../etc/passwd.csv", false},
		{"a/b.csv", false},
		{`a\b.csv`, false},
		{"x..csv", false},
		{"notes.txt", false},
		{".csv", false},
		{"csv", false},
	}
	for _, tt := range tests {
		err := ValidateName(tt.name)
		if tt.valid {
			assert.NoError(t, err, tt.name)
		} else {
			assert.ErrorIs(t, err, ErrInvalidName, tt.name)
		}
	}
}

func TestNotFoundError(t *testing.T) {
	err := error(&NotFoundError{Filename: "sale.csv", Suggestions: []string{"sales.csv"}})
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, `dataset "sale.csv" not found (did you mean: sales.csv?)`, err.Error())

	bare := &NotFoundError{Filename: "x.csv"}
	assert.Equal(t, `dataset "x.csv" not found`, bare.Error())
}
