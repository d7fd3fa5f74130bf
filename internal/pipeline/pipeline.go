// Package pipeline runs the analysis end to end: load, preprocess, plot,
// analyse, report.
package pipeline

import (
	"context"
	"io"
	"time"

	"gotrends/internal"
	"gotrends/internal/analysis"
	"gotrends/internal/config"
	"gotrends/internal/dataset"
	"gotrends/internal/errors"
	"gotrends/internal/plots"
	"gotrends/internal/profiling"

	"github.com/google/uuid"
)

// Result is what a run produced
type Result struct {
	RunID   string
	Column  string
	Moments analysis.Moments
	Rows    int // rows left after preprocessing
}

// Runner wires the stages together
type Runner struct {
	cfg    *config.Config
	out    io.Writer
	logger *internal.Logger
}

// NewRunner creates a runner printing the analysis to out
func NewRunner(cfg *config.Config, out io.Writer, logger *internal.Logger) *Runner {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Runner{cfg: cfg, out: out, logger: logger}
}

// Run executes the pipeline once. The stages are strictly sequential; ctx is
// checked between them.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	runID := uuid.New().String()
	start := time.Now()
	r.logger.Info("[Pipeline] run %s started on %s", runID, r.cfg.Data.File)

	frame, err := dataset.Load(r.cfg.Data.File)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dataset")
	}

	frame, err = profiling.NewPreprocessor(r.out, r.logger).Run(frame)
	if err != nil {
		return nil, errors.Wrap(err, "preprocessing failed")
	}

	col, err := selectColumn(frame, r.cfg.Data.TargetColumn)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("[Pipeline] analysing column %s", col)

	plotter := plots.NewPlotter(r.out, r.cfg.Output.Dir, r.cfg.Plot.HistogramBins, r.logger)
	stages := []struct {
		name string
		run  func(*dataset.Frame) error
	}{
		{"relational plot", plotter.Relational},
		{"statistical plot", plotter.Statistical},
		{"categorical plot", plotter.Categorical},
	}
	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := stage.run(frame); err != nil {
			return nil, errors.Wrapf(err, "%s failed", stage.name)
		}
	}

	moments, err := analysis.StatisticalAnalysis(frame, col)
	if err != nil {
		return nil, errors.Wrap(err, "statistical analysis failed")
	}
	analysis.Writing(r.out, moments, col)
	r.logger.Debug("[Pipeline] %s: %s", col, moments)

	if r.cfg.Output.HTMLReport != "" {
		if err := plotter.WriteHTMLReport(frame, r.cfg.Output.HTMLReport); err != nil {
			return nil, errors.Wrap(err, "interactive report failed")
		}
	}

	r.logger.Info("[Pipeline] run %s finished in %v", runID, time.Since(start))
	return &Result{RunID: runID, Column: col, Moments: moments, Rows: frame.Nrow()}, nil
}

// selectColumn returns the configured target column, or the first numeric one.
func selectColumn(frame *dataset.Frame, target string) (string, error) {
	numeric := frame.NumericColumns()
	if len(numeric) == 0 {
		return "", errors.NoNumericColumns("No numeric columns available for analysis.")
	}
	if target == "" {
		return numeric[0], nil
	}
	if !frame.IsNumeric(target) {
		return "", errors.InvalidInput("target column " + target + " is not a numeric column")
	}
	return target, nil
}
