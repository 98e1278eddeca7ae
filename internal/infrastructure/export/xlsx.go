// Package export contiene los exportadores que dependen de librerías de
// archivo pesadas; los formatos de texto (CSV, ICS) viven en la capa de
// aplicación.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	appexport "github.com/jhoicas/PhotoCRM-api/internal/application/export"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
)

const sheetName = "Customers"

// BuildCustomersXLSX genera un libro XLSX con el listado de clientes, con
// las mismas columnas que el export CSV (campos fijos más los campos
// personalizados definidos).
func BuildCustomersXLSX(customers []entity.Customer, customFields []entity.CustomField) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	fields := appexport.CustomerFields()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de cabecera: %w", err)
	}

	col := 1
	for _, field := range fields {
		if err := setCell(f, col, 1, field.Label); err != nil {
			return nil, err
		}
		col++
	}
	for _, field := range customFields {
		if err := setCell(f, col, 1, field.Label); err != nil {
			return nil, err
		}
		col++
	}
	lastHeader, _ := excelize.CoordinatesToCellName(col-1, 1)
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("xlsx: aplicar estilo: %w", err)
	}

	for i, c := range customers {
		rowIdx := i + 2
		col = 1
		for _, field := range fields {
			var value any
			switch field.Key {
			case "revenue":
				value = c.Revenue
			case "adjustment":
				value = c.Adjustment
			default:
				value = appexport.FieldValue(c, field.Key)
			}
			if err := setCell(f, col, rowIdx, value); err != nil {
				return nil, err
			}
			col++
		}
		for _, field := range customFields {
			if err := setCell(f, col, rowIdx, c.CustomFields[field.ID]); err != nil {
				return nil, err
			}
			col++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("xlsx: coordenadas (%d,%d): %w", col, row, err)
	}
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		return fmt.Errorf("xlsx: celda %s: %w", cell, err)
	}
	return nil
}
