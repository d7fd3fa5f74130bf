package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"gotrends/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoad_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(completeCSV), 0o644))

	frame, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, frame.Nrow())
	assert.Equal(t, []string{"height", "weight"}, frame.NumericColumns())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	assert.Contains(t, err.Error(), "nope.csv not found")
}

func TestLoad_MalformedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2,3\n\"4,5\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestLoad_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")

	book := excelize.NewFile()
	sheet := book.GetSheetName(0)
	rows := [][]interface{}{
		{"region", "sales", "units"},
		{"north", 120.5, 10},
		{"south", 99.25, 7},
		{"east", 80, nil},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, book.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, book.SaveAs(path))
	require.NoError(t, book.Close())

	frame, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, frame.Nrow())
	assert.Equal(t, []string{"region", "sales", "units"}, frame.Names())
	assert.Equal(t, []string{"sales", "units"}, frame.NumericColumns())
	assert.Equal(t, []MissingCount{
		{Column: "region", Count: 0},
		{Column: "sales", Count: 0},
		{Column: "units", Count: 1},
	}, frame.MissingCounts())
}
