package vocab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet column layout shared by .xlsx and .csv catalogues:
//
//	id | fr | en | ipa | type | difficulty
//
// The first row is a header and is skipped.
const (
	colID = iota
	colFR
	colEN
	colIPA
	colType
	colDifficulty
)

// LoadCatalogue reads a catalogue from a .yaml/.yml, .xlsx or .csv file.
func LoadCatalogue(path string) (*Catalogue, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("vocab: read %s: %w", path, err)
		}
		return ParseCatalogue(data)
	case ".xlsx":
		return loadExcel(path)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("vocab: open %s: %w", path, err)
		}
		defer f.Close()
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("vocab: unsupported catalogue format %q", ext)
	}
}

func loadExcel(path string) (*Catalogue, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", ErrInvalidCatalogue, path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("vocab: read rows: %w", err)
	}
	return fromRows(rows)
}

// ReadCSV parses a CSV catalogue.
func ReadCSV(r io.Reader) (*Catalogue, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("vocab: read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return fromRows(rows)
}

// fromRows converts spreadsheet rows into entries. Rows without a French
// term are skipped. Blank ids are assigned after the largest explicit id.
func fromRows(rows [][]string) (*Catalogue, error) {
	var (
		entries []Entry
		missing []int
		maxID   int
	)

	for i, row := range rows {
		if i == 0 {
			continue
		}
		if strings.TrimSpace(cell(row, colFR)) == "" {
			continue
		}

		e := Entry{
			FR:             cell(row, colFR),
			EN:             cell(row, colEN),
			IPA:            cell(row, colIPA),
			PartOfSpeech:   cell(row, colType),
			BaseDifficulty: 1,
		}

		if raw := cell(row, colID); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: id %q is not a number", ErrInvalidCatalogue, i+1, raw)
			}
			e.ID = id
			maxID = max(maxID, id)
		} else {
			missing = append(missing, len(entries))
		}

		if raw := cell(row, colDifficulty); raw != "" {
			d, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: difficulty %q is not a number", ErrInvalidCatalogue, i+1, raw)
			}
			if d >= 1 {
				e.BaseDifficulty = d
			}
		}

		entries = append(entries, e)
	}

	for _, idx := range missing {
		maxID++
		entries[idx].ID = maxID
	}

	return NewCatalogue(entries)
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
