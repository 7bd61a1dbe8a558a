package forecast

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Table is a raw tabular dataset: one header row plus data rows, as read
// from an upload before any cleaning.
type Table struct {
	Header []string
	Rows   [][]string
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV parses CSV content into a Table. Files with a UTF-8 BOM are read
// as UTF-8; everything else is decoded as ISO-8859-1, the encoding the
// retail exports this tool receives are written in.
func ReadCSV(r io.Reader) (*Table, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv content: %w", err)
	}

	var reader io.Reader
	if bytes.HasPrefix(content, utf8BOM) {
		reader = bytes.NewReader(content[len(utf8BOM):])
	} else {
		reader = transform.NewReader(bytes.NewReader(content), charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return tableFromRows(rows)
}

// ReadXLSX parses the first sheet of an xlsx workbook into a Table.
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return tableFromRows(rows)
}

func tableFromRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("input has no header row")
	}
	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}
