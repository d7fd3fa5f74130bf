package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gotrends/internal"
	"gotrends/internal/errors"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"
)

// Load reads a dataset from disk. Files ending in .xlsx are read from their
// first sheet; everything else is parsed as comma-separated text with a header row.
func Load(path string) (*Frame, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NotFound("dataset file " + path)
	}

	start := time.Now()
	var (
		frame *Frame
		err   error
	)
	if strings.ToLower(filepath.Ext(path)) == ".xlsx" {
		frame, err = readExcel(path)
	} else {
		frame, err = readCSVFile(path)
	}
	if err != nil {
		return nil, err
	}

	internal.DefaultLogger.Debug("[DataReader] %s loaded in %v (%d rows, %d columns)",
		path, time.Since(start), frame.Nrow(), frame.Ncol())
	return frame, nil
}

// ReadCSV parses comma-separated text with a header row.
func ReadCSV(r io.Reader) (*Frame, error) {
	return newFrame(dataframe.ReadCSV(r, loadOptions()...))
}

func readCSVFile(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	frame, err := ReadCSV(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CSV file %s", path)
	}
	return frame, nil
}

func readExcel(path string) (*Frame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, err, "failed to open Excel file")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.InvalidInput("Excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, err, fmt.Sprintf("failed to read sheet %s", sheets[0]))
	}
	if len(rows) == 0 {
		return nil, errors.InvalidInput("Excel sheet is empty")
	}

	frame, err := FromRecords(padRows(rows))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read Excel file %s", path)
	}
	return frame, nil
}

// padRows squares off rows; excelize drops trailing empty cells.
func padRows(rows [][]string) [][]string {
	width := len(rows[0])
	out := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, width)
		for j := 0; j < width && j < len(row); j++ {
			padded[j] = strings.TrimSpace(row[j])
		}
		out[i] = padded
	}
	return out
}
