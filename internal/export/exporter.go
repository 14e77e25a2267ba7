// Package export renders tabular data as styled xlsx workbooks.
package export

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	ContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	defaultSheet    = "Sheet1"
	maxSheetNameLen = 31
)

var ErrNoColumns = errors.New("export requires at least one column")

// Row maps column keys to raw values
type Row map[string]interface{}

// Column declares one exported column. Width is in characters; zero keeps the default.
type Column struct {
	Header string
	Key    string
	Width  float64
	Format Formatter
}

// Sheet is everything needed to build a single-sheet workbook
type Sheet struct {
	Name     string
	Title    string
	Subtitle string
	Columns  []Column
	Rows     []Row
	// Skip is the number of records preceding Rows; serial columns continue from it.
	Skip int
}

// Workbook is a built spreadsheet
type Workbook struct {
	file      *excelize.File
	sheet     string
	headerRow int
	lastRow   int
}

// Artifact is a workbook ready for download
type Artifact struct {
	Filename string
	Workbook *Workbook
}

// Build lays out the sheet: optional title and subtitle rows, a spacer, the header row and
// the data rows. Every cell from the header row down gets a thin border.
func Build(s Sheet) (*Workbook, error) {
	if len(s.Columns) == 0 {
		return nil, ErrNoColumns
	}

	f := excelize.NewFile()
	name := SheetName(s.Name)
	if err := f.SetSheetName(defaultSheet, name); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	b := &builder{file: f, sheet: name, columns: s.Columns}
	if err := b.styles(); err != nil {
		f.Close()
		return nil, err
	}

	row := 1
	if s.Title != "" {
		if err := b.banner(row, s.Title, b.titleStyle); err != nil {
			f.Close()
			return nil, err
		}
		row++
	}
	if s.Subtitle != "" {
		if err := b.banner(row, s.Subtitle, b.subtitleStyle); err != nil {
			f.Close()
			return nil, err
		}
		row++
	}
	if s.Title != "" || s.Subtitle != "" {
		row++
	}

	headerRow := row
	if err := b.header(row); err != nil {
		f.Close()
		return nil, err
	}

	for i, r := range s.Rows {
		row++
		if err := b.data(row, i, s.Skip, r); err != nil {
			f.Close()
			return nil, err
		}
	}

	return &Workbook{file: f, sheet: name, headerRow: headerRow, lastRow: row}, nil
}

// SheetName strips characters a sheet name cannot hold and truncates it to 31 runes
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	name = strings.Trim(name, "'")
	if name == "" {
		return defaultSheet
	}
	if runes := []rune(name); len(runes) > maxSheetNameLen {
		name = string(runes[:maxSheetNameLen])
	}
	return name
}

// Sheet returns the worksheet name
func (w *Workbook) Sheet() string {
	return w.sheet
}

// HeaderRow returns the 1-based row holding column headers
func (w *Workbook) HeaderRow() int {
	return w.headerRow
}

// Bytes serializes the workbook
func (w *Workbook) Bytes() ([]byte, error) {
	buf, err := w.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteTo streams the workbook to dst
func (w *Workbook) WriteTo(dst io.Writer) (int64, error) {
	n, err := w.file.WriteTo(dst)
	if err != nil {
		return n, fmt.Errorf("failed to write workbook: %w", err)
	}
	return n, nil
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

// StreamToResponse writes wb as an attachment download
func StreamToResponse(rw http.ResponseWriter, wb *Workbook, filename string) error {
	body, err := wb.Bytes()
	if err != nil {
		return err
	}

	header := rw.Header()
	header.Set("Content-Type", ContentType)
	header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	header.Set("Content-Length", fmt.Sprintf("%d", len(body)))
	rw.WriteHeader(http.StatusOK)

	if _, err := rw.Write(body); err != nil {
		return fmt.Errorf("failed to stream workbook: %w", err)
	}
	return nil
}

type builder struct {
	file    *excelize.File
	sheet   string
	columns []Column

	titleStyle    int
	subtitleStyle int
	headerStyle   int
	cellStyle     int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func (b *builder) styles() error {
	var err error

	b.titleStyle, err = b.file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}

	b.subtitleStyle, err = b.file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Italic: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create subtitle style: %w", err)
	}

	b.headerStyle, err = b.file.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F2F2F2"}},
		Border: thinBorder(),
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	b.cellStyle, err = b.file.NewStyle(&excelize.Style{Border: thinBorder()})
	if err != nil {
		return fmt.Errorf("failed to create cell style: %w", err)
	}
	return nil
}

// banner writes text in the first column, merged across every column when there is more than one
func (b *builder) banner(row int, text string, style int) error {
	first, last, err := b.rowBounds(row)
	if err != nil {
		return err
	}
	if err := b.file.SetCellValue(b.sheet, first, text); err != nil {
		return fmt.Errorf("failed to write banner: %w", err)
	}
	if first != last {
		if err := b.file.MergeCell(b.sheet, first, last); err != nil {
			return fmt.Errorf("failed to merge banner: %w", err)
		}
	}
	if err := b.file.SetCellStyle(b.sheet, first, last, style); err != nil {
		return fmt.Errorf("failed to style banner: %w", err)
	}
	return nil
}

func (b *builder) header(row int) error {
	for i, col := range b.columns {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := b.file.SetCellValue(b.sheet, cell, col.Header); err != nil {
			return fmt.Errorf("failed to write header %q: %w", col.Header, err)
		}
		if col.Width > 0 {
			name, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return err
			}
			if err := b.file.SetColWidth(b.sheet, name, name, col.Width); err != nil {
				return fmt.Errorf("failed to set width of %q: %w", col.Header, err)
			}
		}
	}

	first, last, err := b.rowBounds(row)
	if err != nil {
		return err
	}
	if err := b.file.SetCellStyle(b.sheet, first, last, b.headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	return nil
}

func (b *builder) data(row, index, skip int, r Row) error {
	for i, col := range b.columns {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		value := cellValue(col.Format.Apply(r[col.Key], skip, index))
		if err := b.file.SetCellValue(b.sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write %s: %w", cell, err)
		}
	}

	first, last, err := b.rowBounds(row)
	if err != nil {
		return err
	}
	if err := b.file.SetCellStyle(b.sheet, first, last, b.cellStyle); err != nil {
		return fmt.Errorf("failed to style row %d: %w", row, err)
	}
	return nil
}

func (b *builder) rowBounds(row int) (string, string, error) {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return "", "", err
	}
	last, err := excelize.CoordinatesToCellName(len(b.columns), row)
	if err != nil {
		return "", "", err
	}
	return first, last, nil
}
