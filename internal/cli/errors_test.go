package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/carboncalc/internal/emissions"
)

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"sector", fmt.Errorf("%w: %q", emissions.ErrInvalidSector, "x"), ExitInvalidInput},
		{"missing field", fmt.Errorf("wrapped: %w", emissions.ErrMissingField), ExitInvalidInput},
		{"unknown factor", errors.Join(errors.New("a"), emissions.ErrUnknownFactor), ExitInvalidInput},
		{"other", errors.New("disk full"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := invalidInput(tt.err)
			assert.Equal(t, tt.want, ExitCode(err))
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.err.Error(), err.Error())
		})
	}

	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, "exit status 2", (&ExitError{ExitCode: 2}).Error())
}
