package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user typed "y" or "yes".
	Accepted bool
	// Cancelled is true if reading the answer failed.
	Cancelled bool
}

// ConfirmOverwrite asks whether an existing file may be replaced.
// Callers decide whether prompting is possible; in non-interactive runs
// they should skip it and require --force instead.
//
// The prompt defaults to "No" when the user presses Enter without input.
func ConfirmOverwrite(writer io.Writer, reader io.Reader, path string) PromptResult {
	fmt.Fprintf(writer, "? %s already exists. Overwrite it? [y/N] ", path)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if scanner.Err() != nil {
			return PromptResult{Cancelled: true}
		}
		// EOF (Ctrl+D) declines.
		return PromptResult{}
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{}
	}
}
