package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/carboncalc/internal/cli"
	"github.com/rshade/carboncalc/internal/emissions"
	"github.com/rshade/carboncalc/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.Equal(t, "carboncalc", root.Use)
	})
}

func TestExtractExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error returns 0", err: nil, want: cli.ExitOK},
		{name: "generic error", err: errors.New("boom"), want: cli.ExitFailure},
		{
			name: "invalid input",
			err:  &cli.ExitError{ExitCode: cli.ExitInvalidInput, Err: emissions.ErrInvalidSector},
			want: cli.ExitInvalidInput,
		},
		{
			name: "wrapped exit error",
			err:  fmt.Errorf("outer: %w", &cli.ExitError{ExitCode: 3}),
			want: 3,
		},
		{
			name: "joined exit error",
			err:  errors.Join(errors.New("outer"), &cli.ExitError{ExitCode: cli.ExitInvalidInput}),
			want: cli.ExitInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractExitCode(tt.err))
		})
	}
}
