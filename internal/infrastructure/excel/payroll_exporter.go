// Package excel genera la planilla XLSX de nómina.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Flota-api/internal/application/usecase"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

const sheetName = "Nomina"

// Columnas fijas de la planilla, en este orden.
var headers = []string{
	"Month", "Year", "Driver Name", "Employee ID",
	"Basic Salary", "Allowances", "Deductions", "Net Pay",
}

var _ usecase.PayrollExporter = (*PayrollExporter)(nil)

// PayrollExporter implementa usecase.PayrollExporter usando excelize.
type PayrollExporter struct{}

// NewPayrollExporter construye el exportador.
func NewPayrollExporter() *PayrollExporter { return &PayrollExporter{} }

// Export genera el XLSX con una fila por nómina y devuelve sus bytes.
func (e *PayrollExporter) Export(entries []*entity.PayrollEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: eliminar hoja por defecto: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DCE6F1"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de cabecera: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("excel: cabecera %s: %w", h, err)
		}
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastCol, headerStyle); err != nil {
		return nil, fmt.Errorf("excel: aplicar estilo: %w", err)
	}

	for i, entry := range entries {
		rowNum := i + 2
		values := []any{
			entry.Month,
			entry.Year,
			entry.DriverName,
			entry.EmployeeID,
			entry.BasicSalary,
			entry.Allowances,
			entry.Deductions,
			entry.NetPay,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowNum)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", rowNum, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
