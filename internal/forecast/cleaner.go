package forecast

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrMissingColumn is returned when a required column is absent from the
// input header.
var ErrMissingColumn = errors.New("missing required column")

// Required input column names, case-sensitive.
const (
	colInvoiceDate = "InvoiceDate"
	colQuantity    = "Quantity"
	colUnitPrice   = "UnitPrice"
	colCountry     = "Country"
	colDescription = "Description"
)

// timestampLayouts are tried in order when parsing InvoiceDate. Exports seen
// in the wild carry either ISO timestamps or US-style invoice timestamps.
// Datetimes are naive; no timezone normalization is performed.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/06 15:04",
}

// Clean validates and normalizes raw rows into SaleRecords. Rows with a
// missing or unparseable required field are dropped, not repaired; the
// second return value counts the dropped rows. A required column missing
// from the header invalidates the whole table. Zero valid rows is not an
// error: downstream stages treat it as an empty dataset.
func Clean(table *Table) ([]SaleRecord, int, error) {
	idx, err := mapColumns(table.Header)
	if err != nil {
		return nil, 0, err
	}

	records := make([]SaleRecord, 0, len(table.Rows))
	dropped := 0
	for _, row := range table.Rows {
		rec, ok := parseRow(row, idx)
		if !ok {
			dropped++
			continue
		}
		records = append(records, rec)
	}
	return records, dropped, nil
}

type columnIndex struct {
	invoiceDate int
	quantity    int
	unitPrice   int
	country     int
	description int
	max         int
}

func mapColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}

	var idx columnIndex
	for _, col := range []struct {
		name   string
		target *int
	}{
		{colInvoiceDate, &idx.invoiceDate},
		{colQuantity, &idx.quantity},
		{colUnitPrice, &idx.unitPrice},
		{colCountry, &idx.country},
		{colDescription, &idx.description},
	} {
		i, ok := pos[col.name]
		if !ok {
			return columnIndex{}, fmt.Errorf("%w: %q", ErrMissingColumn, col.name)
		}
		*col.target = i
		if i > idx.max {
			idx.max = i
		}
	}
	return idx, nil
}

func parseRow(row []string, idx columnIndex) (SaleRecord, bool) {
	if len(row) <= idx.max {
		return SaleRecord{}, false
	}

	ts, ok := parseTimestamp(row[idx.invoiceDate])
	if !ok {
		return SaleRecord{}, false
	}
	qty, ok := parseQuantity(row[idx.quantity])
	if !ok {
		return SaleRecord{}, false
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(row[idx.unitPrice]), 64)
	if err != nil {
		return SaleRecord{}, false
	}
	country := strings.TrimSpace(row[idx.country])
	description := strings.TrimSpace(row[idx.description])
	if country == "" || description == "" {
		return SaleRecord{}, false
	}

	return SaleRecord{
		Timestamp:   ts,
		Quantity:    qty,
		UnitPrice:   price,
		Country:     country,
		Description: description,
	}, true
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseQuantity accepts plain integers and integral floats; some exports
// format unit counts as "6.0".
func parseQuantity(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.Trunc(f) != f {
		return 0, false
	}
	return int(f), true
}
