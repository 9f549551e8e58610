// Package report renders downloadable spreadsheets.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sirene/bombeiros-api/internal/core/domain"
)

const (
	auditSheet     = "Auditoria"
	dataHoraLayout = "02/01/2006 15:04:05"
)

var auditHeaders = []string{"Data/Hora", "Matrícula", "Nome", "ID Militar", "Ação", "IP de Origem"}

var auditWidths = []float64{20, 14, 30, 38, 60, 18}

// XLSX renders reports as Excel workbooks.
type XLSX struct {
	// Location used to print timestamps. Nil means UTC.
	Location *time.Location
}

// RenderAuditoria writes one row per entry under a frozen, styled header.
func (x XLSX) RenderAuditoria(entries []*domain.LogAuditoria) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", auditSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#B71C1C"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := f.SetSheetRow(auditSheet, "A1", &auditHeaders); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(auditHeaders), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(auditSheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	for i, w := range auditWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(auditSheet, col, col, w); err != nil {
			return nil, fmt.Errorf("column width: %w", err)
		}
	}

	loc := x.Location
	if loc == nil {
		loc = time.UTC
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			e.DataHora.In(loc).Format(dataHoraLayout),
			e.Matricula,
			e.Nome,
			e.IDMilitar,
			e.Acao,
			e.IPOrigem,
		}
		if err := f.SetSheetRow(auditSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(auditSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
