package cli_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/carboncalc/internal/cli"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestConfirmOverwrite(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  cli.PromptResult
	}{
		{"y", "y\n", cli.PromptResult{Accepted: true}},
		{"YES", "YES\n", cli.PromptResult{Accepted: true}},
		{"padded yes", "  yes  \n", cli.PromptResult{Accepted: true}},
		{"n", "n\n", cli.PromptResult{}},
		{"empty defaults to no", "\n", cli.PromptResult{}},
		{"other text", "maybe\n", cli.PromptResult{}},
		{"EOF", "", cli.PromptResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := cli.ConfirmOverwrite(&out, strings.NewReader(tt.input), "/tmp/config.yaml")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "? /tmp/config.yaml already exists. Overwrite it? [y/N] ", out.String())
		})
	}

	t.Run("read error cancels", func(t *testing.T) {
		got := cli.ConfirmOverwrite(&bytes.Buffer{}, failingReader{}, "x")
		assert.True(t, got.Cancelled)
		assert.False(t, got.Accepted)
	})
}
