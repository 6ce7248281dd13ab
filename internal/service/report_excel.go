package service

import (
	"bytes"
	"fmt"

	"spine-intake/internal/catalog"
	"spine-intake/internal/domain"

	"github.com/xuri/excelize/v2"
)

// PainAreaReportHeader 导出表头
var PainAreaReportHeader = []string{
	"Region",
	"Intensity",
	"View",
	"Group",
	"Detail",
	"X",
	"Y",
	"Notes",
}

const reportSheet = "Pain Areas"

// GeneratePainAreaReport 生成单个会话的疼痛标记 Excel（一行一个标记）
func GeneratePainAreaReport(areas []domain.PainArea) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so Close is called explicitly below

	index, err := f.NewSheet(reportSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range PainAreaReportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(reportSheet, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(reportSheet, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	columnWidths := []float64{
		32, // Region
		10, // Intensity
		8,  // View
		28, // Group
		8,  // Detail
		10, // X
		10, // Y
		48, // Notes
	}
	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(reportSheet, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, a := range areas {
		row := i + 2 // 第1行是表头
		detail := "No"
		if a.DetailVariant {
			detail = "Yes"
		}
		group := fmt.Sprintf("%d", a.SourceGroupID)
		if a.OriginView.Valid() {
			if name := catalog.GroupName(a.OriginView, a.SourceGroupID); name != "" {
				group = fmt.Sprintf("%d %s", a.SourceGroupID, name)
			}
		}
		values := []any{
			a.Region,
			a.Intensity,
			a.OriginView.Title(),
			group,
			detail,
			a.Coordinates.X,
			a.Coordinates.Y,
			a.Notes(),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(reportSheet, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", row, err)
		}
	}

	if err := f.SetPanes(reportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}
	return buf.Bytes(), nil
}
