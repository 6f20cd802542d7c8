package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/utils"
)

// AnnouncementsXLSX renders the filtered announcement list as a one-sheet
// workbook with the same columns as the CSV export.
func AnnouncementsXLSX(items []v1.AnnouncementDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Announcements"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, name := range announcementHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}

	for row, a := range items {
		values := []string{
			a.Title,
			a.Category,
			utils.DisplayDateRange(a.StartDate.Time, a.EndDate.Time),
			a.Priority,
			a.Description,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
