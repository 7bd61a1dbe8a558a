package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHeader() []string {
	return []string{"InvoiceDate", "Quantity", "UnitPrice", "Country", "Description"}
}

func TestClean_ParsesValidRows(t *testing.T) {
	table := &Table{
		Header: testHeader(),
		Rows: [][]string{
			{"2024-01-01 10:15", "10", "2.5", "United Kingdom", "RED MUG"},
			{"2024-01-02", "3.0", "1.25", "France", "CROISSANT"},
		},
	}
	records, dropped, err := Clean(table)
	require.NoError(t, err)
	assert.Equal(t, 0, dropped)
	require.Len(t, records, 2)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 15, 0, 0, time.UTC), records[0].Timestamp)
	assert.Equal(t, 10, records[0].Quantity)
	assert.Equal(t, 25.0, records[0].Revenue())
	assert.Equal(t, 3, records[1].Quantity)
}

func TestClean_DropsMalformedRows(t *testing.T) {
	table := &Table{
		Header: testHeader(),
		Rows: [][]string{
			{"2024-01-01 10:15", "10", "2.5", "United Kingdom", "RED MUG"},
			{"", "10", "2.5", "United Kingdom", "RED MUG"},
			{"not a date", "10", "2.5", "United Kingdom", "MUG"},
			{"2024-01-01", "ten", "2.5", "United Kingdom", "MUG"},
			{"2024-01-01", "1.5", "2.5", "United Kingdom", "MUG"},
			{"2024-01-01", "10", "", "United Kingdom", "MUG"},
			{"2024-01-01", "10", "2.5", "", "MUG"},
			{"2024-01-01", "10", "2.5", "United Kingdom", ""},
			{"2024-01-01", "10"},
		},
	}
	records, dropped, err := Clean(table)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 8, dropped)
}

func TestClean_KeepsNegativeQuantities(t *testing.T) {
	table := &Table{
		Header: testHeader(),
		Rows:   [][]string{{"2024-01-01", "-4", "2.5", "France", "RETURNED MUG"}},
	}
	records, dropped, err := Clean(table)
	require.NoError(t, err)
	assert.Equal(t, 0, dropped)
	require.Len(t, records, 1)
	assert.Equal(t, -4, records[0].Quantity)
	assert.Equal(t, -10.0, records[0].Revenue())
}

func TestClean_MissingColumn(t *testing.T) {
	table := &Table{
		Header: []string{"InvoiceDate", "Quantity", "UnitPrice", "Country"},
		Rows:   [][]string{{"2024-01-01", "1", "1.0", "France"}},
	}
	_, _, err := Clean(table)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestClean_TimestampLayouts(t *testing.T) {
	for _, raw := range []string{
		"2024-01-02 15:04:05",
		"2024-01-02 15:04",
		"2024-01-02T15:04:05",
		"2024-01-02",
		"1/2/2024 15:04",
	} {
		table := &Table{
			Header: testHeader(),
			Rows:   [][]string{{raw, "1", "1.0", "France", "MUG"}},
		}
		records, dropped, err := Clean(table)
		require.NoError(t, err, raw)
		assert.Equal(t, 0, dropped, raw)
		require.Len(t, records, 1, raw)
		assert.Equal(t, 2024, records[0].Timestamp.Year(), raw)
		assert.Equal(t, time.January, records[0].Timestamp.Month(), raw)
		assert.Equal(t, 2, records[0].Timestamp.Day(), raw)
	}
}

func TestClean_HeaderOnlyTableIsEmptyDataset(t *testing.T) {
	records, dropped, err := Clean(&Table{Header: testHeader()})
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 0, dropped)
}
