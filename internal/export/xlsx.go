package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/OpaceDigitalAgency/driving-lesson-hunter/internal/centres"
)

const (
	SheetName   = "Centres"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var headers = []interface{}{
	"Name", "Address", "Postcode", "Latitude", "Longitude", "Distance (miles)",
}

// WriteXLSX renders the centres of a search result as a single-sheet workbook
func WriteXLSX(w io.Writer, result *centres.SearchResult) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	if err := sw.SetRow("A1", headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, c := range result.Centres {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			c.Name, c.Address, c.Postcode, c.Latitude, c.Longitude, c.Distance,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Filename returns the attachment name for a search result
func Filename(result *centres.SearchResult) string {
	return fmt.Sprintf("test-centres-%s-%dmi.xlsx", sanitize(result.UserPostcode), result.Radius)
}

func sanitize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ' || r == '-' || r == '_':
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "search"
	}
	return string(out)
}
