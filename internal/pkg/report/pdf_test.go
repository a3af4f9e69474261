package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderProducesPDF(t *testing.T) {
	b := NewBuilder("Placement Report", "Academic Year 2025-26")
	b.AddTable(Table{
		Title: "Department Statistics",
		Columns: []Column{
			{Header: "Branch", Width: 60},
			{Header: "Total", Width: 30},
			{Header: "Placed", Width: 30},
			{Header: "Rate %", Width: 30},
		},
		Rows: [][]string{
			{"CSE", "120", "96", "80.0"},
			{"ISE", "60", "42", "70.0"},
		},
	})

	out, err := b.Output()
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestBuilderPaginatesLongTables(t *testing.T) {
	b := NewBuilder("Detailed Report", "")

	rows := make([][]string, 0, 120)
	for i := 0; i < 120; i++ {
		rows = append(rows, []string{fmt.Sprintf("4SF22CS%03d", i), "Student", "CSE"})
	}
	b.AddTable(Table{
		Title: "Students",
		Columns: []Column{
			{Header: "USN", Width: 50},
			{Header: "Name", Width: 70},
			{Header: "Branch", Width: 40},
		},
		Rows: rows,
	})

	out, err := b.Output()
	require.NoError(t, err)
	// 120 rows at 7mm cannot fit one page, so the document must span
	// multiple pages.
	assert.Greater(t, countPages(out), 1)
}

func countPages(pdf []byte) int {
	n := 0
	needle := []byte("/Type /Page")
	exclude := []byte("/Type /Pages")
	for i := 0; i+len(needle) <= len(pdf); i++ {
		if string(pdf[i:i+len(needle)]) == string(needle) {
			if i+len(exclude) <= len(pdf) && string(pdf[i:i+len(exclude)]) == string(exclude) {
				continue
			}
			n++
		}
	}
	return n
}

func TestAddKeyValues(t *testing.T) {
	b := NewBuilder("Analytics Report", "")
	b.AddKeyValues("Summary", [][2]string{
		{"Total Students", "180"},
		{"Placed", "138"},
		{"Placement Rate", "76.7%"},
	})

	out, err := b.Output()
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
