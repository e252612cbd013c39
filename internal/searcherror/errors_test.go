package searcherror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMalformedInputError(t *testing.T) {
	tests := []struct {
		name     string
		err      *MalformedInputError
		expected string
	}{
		{
			name:     "without cause",
			err:      &MalformedInputError{Source: "bucket.json", Reason: "entry 2 is not a mapping"},
			expected: "malformed input in bucket.json: entry 2 is not a mapping",
		},
		{
			name:     "with cause",
			err:      &MalformedInputError{Source: "budget.csv", Reason: "cannot decode rows", Err: errors.New("bare quote")},
			expected: "malformed input in budget.csv: cannot decode rows: bare quote",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrMalformedInput))
		})
	}
}

func TestMalformedInputError_UnwrapThroughWrapping(t *testing.T) {
	cause := errors.New("yaml: line 1")
	wrapped := fmt.Errorf("loading taxonomy: %w", &MalformedInputError{Source: "x", Reason: "y", Err: cause})

	assert.ErrorIs(t, wrapped, ErrMalformedInput)
	assert.ErrorIs(t, wrapped, cause)

	var target *MalformedInputError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "x", target.Source)
}

func TestMissingFieldError(t *testing.T) {
	err := &MissingFieldError{Field: "budget_code"}
	assert.Equal(t, "field 'budget_code' does not exist in the proposal schema", err.Error())
	assert.ErrorIs(t, err, ErrMissingField)
	assert.NotErrorIs(t, err, ErrUnknownFilter)
}

func TestUnknownFilterError(t *testing.T) {
	err := &UnknownFilterError{Key: "who", Allowed: []string{"category", "proposer"}}
	assert.Equal(t, "unknown filter 'who' (allowed: [category proposer])", err.Error())
	assert.ErrorIs(t, err, ErrUnknownFilter)

	bare := &UnknownFilterError{Key: "x"}
	assert.Equal(t, "unknown filter 'x'", bare.Error())
}
