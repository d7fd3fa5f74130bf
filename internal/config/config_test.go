package config

import (
	"testing"

	"gotrends/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"DATA_FILE", "OUTPUT_DIR", "HTML_REPORT", "TARGET_COLUMN", "HIST_BINS", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATA_FILE", "sales.xlsx")
	t.Setenv("OUTPUT_DIR", "out")
	t.Setenv("HTML_REPORT", "report.html")
	t.Setenv("TARGET_COLUMN", " price ")
	t.Setenv("HIST_BINS", "35")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sales.xlsx", cfg.Data.File)
	assert.Equal(t, "price", cfg.Data.TargetColumn)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, "report.html", cfg.Output.HTMLReport)
	assert.Equal(t, 35, cfg.Plot.HistogramBins)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
}

func TestLoad_InvalidBins(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HIST_BINS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestValidate_RequiresDataFile(t *testing.T) {
	cfg := Default()
	cfg.Data.File = "  "
	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}
