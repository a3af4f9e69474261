// Package report renders placement statistics into PDF documents with a
// fixed-column table layout.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageBottomLimit = 277.0 // A4 height 297mm minus bottom margin
	rowHeight       = 7.0
	headerHeight    = 8.0
	leftMargin      = 10.0
)

// Column describes one table column: header text and width in millimetres.
type Column struct {
	Header string
	Width  float64
}

// Table is a titled grid of rows. Rows render in input order; when the
// cursor passes the printable height a new page is started and the header
// row is repainted.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]string
}

// Builder assembles a multi-section PDF document.
type Builder struct {
	pdf *gofpdf.Fpdf
}

// NewBuilder starts a portrait A4 document with a title header.
func NewBuilder(title, subtitle string) *Builder {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")

	if subtitle != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, subtitle, "", 1, "C", false, 0, "")
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Generated "+time.Now().Format("02 Jan 2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	return &Builder{pdf: pdf}
}

// AddTable paints a table section at the current cursor position.
func (b *Builder) AddTable(t Table) {
	if t.Title != "" {
		b.ensureRoom(12 + headerHeight)
		b.pdf.SetFont("Helvetica", "B", 12)
		b.pdf.CellFormat(0, 8, t.Title, "", 1, "L", false, 0, "")
		b.pdf.Ln(1)
	}

	b.paintHeader(t.Columns)

	b.pdf.SetFont("Helvetica", "", 9)
	for _, row := range t.Rows {
		if b.pdf.GetY()+rowHeight > pageBottomLimit {
			b.pdf.AddPage()
			b.paintHeader(t.Columns)
			b.pdf.SetFont("Helvetica", "", 9)
		}

		b.pdf.SetX(leftMargin)
		for i, col := range t.Columns {
			text := ""
			if i < len(row) {
				text = row[i]
			}
			b.pdf.CellFormat(col.Width, rowHeight, text, "1", 0, "L", false, 0, "")
		}
		b.pdf.Ln(rowHeight)
	}
	b.pdf.Ln(4)
}

// AddKeyValues paints a two-column summary block (label, value).
func (b *Builder) AddKeyValues(title string, pairs [][2]string) {
	b.AddTable(Table{
		Title:   title,
		Columns: []Column{{Header: "Metric", Width: 90}, {Header: "Value", Width: 60}},
		Rows:    kvRows(pairs),
	})
}

func kvRows(pairs [][2]string) [][]string {
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{p[0], p[1]})
	}
	return rows
}

// paintHeader draws the header row at the current cursor.
func (b *Builder) paintHeader(cols []Column) {
	b.pdf.SetX(leftMargin)
	b.pdf.SetFont("Helvetica", "B", 9)
	b.pdf.SetFillColor(230, 230, 230)
	for _, col := range cols {
		b.pdf.CellFormat(col.Width, headerHeight, col.Header, "1", 0, "C", true, 0, "")
	}
	b.pdf.Ln(headerHeight)
}

// ensureRoom starts a fresh page when fewer than need millimetres remain.
func (b *Builder) ensureRoom(need float64) {
	if b.pdf.GetY()+need > pageBottomLimit {
		b.pdf.AddPage()
	}
}

// Output finalizes the document and returns the PDF bytes.
func (b *Builder) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
