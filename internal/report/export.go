package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/carboncalc/internal/logging"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// Export writes the report into dir once per format and returns the written
// paths in format order. dir is created when missing; existing files are
// overwritten.
func (r *Report) Export(ctx context.Context, dir string, formats []Format) ([]string, error) {
	log := logging.FromContext(ctx)

	if len(formats) == 0 {
		formats = []Format{FormatPDF}
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}

	paths := make([]string, len(formats))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, f.FileName())
			if err := r.writeFile(path, f); err != nil {
				return err
			}
			paths[i] = path
			log.Debug().
				Str("component", "report").
				Str("format", string(f)).
				Str("path", path).
				Msg("report written")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func (r *Report) writeFile(path string, f Format) (err error) {
	file, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return r.Write(file, f)
}
