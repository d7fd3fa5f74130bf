package profiling

import (
	"fmt"
	"io"

	"gotrends/internal"
	"gotrends/internal/analysis"
	"gotrends/internal/dataset"
	"gotrends/internal/errors"
)

// Preprocessor reports on a freshly loaded frame and removes incomplete rows.
type Preprocessor struct {
	out    io.Writer
	logger *internal.Logger
}

// NewPreprocessor creates a preprocessor printing to out
func NewPreprocessor(out io.Writer, logger *internal.Logger) *Preprocessor {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Preprocessor{out: out, logger: logger}
}

// Run prints the frame info, descriptive statistics and missing counts, drops
// every row holding a missing value if there are any, prints the correlation
// matrix of what is left and returns it. An empty result is not an error.
func (p *Preprocessor) Run(frame *dataset.Frame) (*dataset.Frame, error) {
	WriteInfo(p.out, frame)
	fmt.Fprintln(p.out)

	summaries, err := Describe(frame)
	if err != nil {
		return nil, errors.Wrap(err, "failed to describe dataset")
	}
	WriteDescribe(p.out, summaries)
	fmt.Fprintln(p.out)

	WriteMissing(p.out, frame.MissingCounts())

	cleaned := frame
	if frame.HasMissing() {
		cleaned, err = frame.DropMissing()
		if err != nil {
			return nil, errors.Wrap(err, "failed to drop rows with missing values")
		}
		p.logger.Info("[Preprocessor] dropped %d of %d rows with missing values",
			frame.Nrow()-cleaned.Nrow(), frame.Nrow())
		if cleaned.Nrow() == 0 {
			p.logger.Warn("[Preprocessor] no complete rows left")
		}
	} else {
		fmt.Fprintln(p.out, "\n No missing values found")
	}
	fmt.Fprintln(p.out)

	corr, err := analysis.Correlation(cleaned)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute correlation matrix")
	}
	WriteCorrelation(p.out, corr)

	return cleaned, nil
}
