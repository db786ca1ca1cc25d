// Command strokegrid generates stroke-progression diagrams from a directory
// of KanjiVG stroke-order SVG files.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"gopkg.in/yaml.v3"

	"github.com/strokegrid/strokegrid"
	"github.com/strokegrid/strokegrid/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "strokegrid: %v\n", err)
		os.Exit(1)
	}
}

// config is the YAML configuration layout: the composition options inline,
// plus the run settings.
type config struct {
	strokegrid.Options `yaml:",inline"`

	InputDir  string  `yaml:"input_dir"`
	OutputDir string  `yaml:"output_dir"`
	Workers   int     `yaml:"workers"`
	PNG       bool    `yaml:"png"`
	PNGScale  float64 `yaml:"png_scale"`
}

func run() error {
	in := flag.String("in", "kanjivg/kanji", "Input directory of glyph SVG files")
	out := flag.String("out", "strokes", "Output directory for diagrams")
	configPath := flag.String("config", "", "YAML configuration file")
	boxes := flag.Int("boxes", 6, "Panels per diagram row")
	jobs := flag.Int("jobs", 0, "Parallel workers (0 = all CPUs)")
	writePNG := flag.Bool("png", false, "Also write a PNG preview next to each diagram")
	pngScale := flag.Float64("png-scale", 2, "PNG preview scale factor")
	quiet := flag.Bool("quiet", false, "Suppress the progress bar")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Generate stroke-progression diagrams from stroke-order glyph files.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s -in kanjivg/kanji -out strokes\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -in kanjivg/kanji -out strokes -boxes 8 -png\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		return fmt.Errorf("unexpected argument %q", flag.Arg(0))
	}

	cfg := config{
		Options:   strokegrid.DefaultOptions(),
		InputDir:  *in,
		OutputDir: *out,
		Workers:   *jobs,
		PNG:       *writePNG,
		PNGScale:  *pngScale,
	}
	cfg.BoxesPerLine = *boxes

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("parse config %s: %w", *configPath, err)
		}
		// Explicit flags win over the config file.
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "in":
				cfg.InputDir = *in
			case "out":
				cfg.OutputDir = *out
			case "boxes":
				cfg.BoxesPerLine = *boxes
			case "jobs":
				cfg.Workers = *jobs
			case "png":
				cfg.PNG = *writePNG
			case "png-scale":
				cfg.PNGScale = *pngScale
			}
		})
	}

	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}
	strokegrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	runner := &strokegrid.Runner{
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
		Workers:   cfg.Workers,
		Options:   cfg.Options,
	}
	if cfg.PNG {
		runner.OnDiagram = func(file string, d *strokegrid.Diagram) error {
			name := strings.TrimSuffix(strokegrid.OutputName(file), ".svg") + ".png"
			return render.WritePNG(filepath.Join(cfg.OutputDir, name), d, cfg.PNGScale)
		}
	}
	if !*quiet {
		if total, err := countInputs(cfg.InputDir); err == nil && total > 0 {
			bar := progressbar.Default(int64(total))
			defer bar.Close()
			runner.OnFile = func(string, error) { bar.Add(1) }
		}
	}

	summary, err := runner.Run()
	if err != nil {
		return err
	}
	fmt.Printf("Generated %d stroke diagrams.\n", summary.Processed)
	if summary.Failed > 0 {
		fmt.Printf("Skipped %d files.\n", summary.Failed)
	}
	return nil
}

// countInputs counts the glyph files a run will visit, for progress sizing.
func countInputs(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".svg") {
			n++
		}
	}
	return n, nil
}
