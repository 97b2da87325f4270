package service

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"videometrics-profiles/internal/domain"

	"github.com/xuri/excelize/v2"
)

// SubProfileExportHeader lists the export columns in order.
var SubProfileExportHeader = []string{
	"Name",
	"Area Type",
	"Description",
	"Tags",
	"Cameras",
	"Schedules",
	"Alerts",
	"Active",
	"Created At",
	"Updated At",
}

// GenerateSubProfileExport builds an Excel workbook of the given sub-profile
// list. An empty list yields a sheet with only the header row.
func GenerateSubProfileExport(subProfiles []*domain.SubProfile) ([]byte, error) {
	f := excelize.NewFile()
	// Note: no deferred Close, WriteTo needs the file open

	sheetName := "Sub Profiles"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range SubProfileExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to style header cell: %w", err)
		}
	}

	for row, sp := range subProfiles {
		values := []any{
			sp.Name,
			sp.AreaType,
			sp.Description,
			strings.Join(sp.Tags, ", "),
			len(sp.CameraLocations),
			len(sp.MonitoringSchedules),
			len(sp.AlertSettings),
			strconv.FormatBool(sp.IsActive),
			sp.CreatedAt,
			sp.UpdatedAt,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell value: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}

	return buf.Bytes(), nil
}
