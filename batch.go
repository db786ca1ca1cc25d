package strokegrid

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/strokegrid/strokegrid/internal/parallel"
)

// Runner processes a directory of glyph documents into stroke-progression
// diagrams, one output file per input file.
//
// Glyphs are independent, so files are handled by a worker pool. A glyph
// that fails to parse or compose is logged, counted and skipped; the run
// continues. Only a missing input directory or an unusable output directory
// aborts the whole run.
type Runner struct {
	// InputDir is the directory of glyph SVG files. It must exist.
	InputDir string

	// OutputDir receives the diagrams. It is created if missing.
	OutputDir string

	// Workers sets the parallelism. 0 or negative means GOMAXPROCS.
	Workers int

	// Options configures diagram composition.
	Options Options

	// OnDiagram, if set, runs after a diagram has been written, with the
	// input filename and the composed diagram. An error marks the file as
	// failed. Called from worker goroutines.
	OnDiagram func(file string, d *Diagram) error

	// OnFile, if set, is called once per input file as it completes,
	// successfully or not. Called from worker goroutines.
	OnFile func(file string, err error)
}

// Failure records one skipped input file.
type Failure struct {
	File string
	Err  error
}

// Summary reports the outcome of a batch run.
type Summary struct {
	Processed int
	Failed    int
	Failures  []Failure // in input order
}

// OutputName returns the diagram filename for an input glyph filename:
// the .svg suffix is replaced with -strokes.svg.
func OutputName(input string) string {
	return strings.TrimSuffix(input, ".svg") + "-strokes.svg"
}

// Run processes every *.svg file in the input directory.
//
// The returned error is non-nil only for whole-run failures; per-file
// problems are reported in the Summary.
func (r *Runner) Run() (*Summary, error) {
	if err := r.Options.Validate(); err != nil {
		return nil, err
	}
	info, err := os.Stat(r.InputDir)
	if err != nil {
		return nil, fmt.Errorf("strokegrid: input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("strokegrid: input path %s is not a directory", r.InputDir)
	}
	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("strokegrid: output directory: %w", err)
	}

	entries, err := os.ReadDir(r.InputDir)
	if err != nil {
		return nil, fmt.Errorf("strokegrid: reading input directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".svg") {
			continue
		}
		files = append(files, e.Name())
	}

	results := make([]error, len(files))
	tasks := make([]func(), len(files))
	for i, name := range files {
		i, name := i, name
		tasks[i] = func() {
			err := r.processFile(name)
			if err != nil {
				Logger().Warn("glyph skipped", "file", name, "err", err)
			}
			results[i] = err
			if r.OnFile != nil {
				r.OnFile(name, err)
			}
		}
	}

	pool := parallel.NewWorkerPool(r.Workers)
	pool.ExecuteAll(tasks)
	pool.Close()

	s := &Summary{}
	for i, err := range results {
		if err != nil {
			s.Failed++
			s.Failures = append(s.Failures, Failure{File: files[i], Err: err})
			continue
		}
		s.Processed++
	}
	return s, nil
}

// processFile composes and writes one diagram. Nothing is written for a
// glyph that fails to parse or compose.
func (r *Runner) processFile(name string) error {
	g, err := LoadGlyph(filepath.Join(r.InputDir, name))
	if err != nil {
		return err
	}
	d, err := Compose(g, r.Options)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := d.WriteSVG(&buf); err != nil {
		return err
	}
	out := filepath.Join(r.OutputDir, OutputName(name))
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return err
	}

	if r.OnDiagram != nil {
		if err := r.OnDiagram(name, d); err != nil {
			return err
		}
	}
	Logger().Debug("diagram written",
		"file", name, "strokes", len(g.Strokes), "paths", d.PathCount())
	return nil
}
