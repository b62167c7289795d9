package producto

import (
	"context"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportarProductos renders the canonical product collection as an xlsx
// workbook and returns the bytes plus a filename.
func (s *ProductoServiceImpl) ExportarProductos(ctx context.Context) ([]byte, string, error) {
	productos, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Productos"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Nombre", "Descripción", "Cantidad", "Cantidad mínima", "Expiración", "Categoría"}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, p := range productos {
		row := rowIdx + 2

		expiracion := ""
		if p.Expiracion != nil {
			expiracion = p.Expiracion.Format("02-01-2006")
		}
		categoria := ""
		if p.Categoria != nil {
			categoria = p.Categoria.Nombre
		}

		values := []interface{}{p.Nombre, p.Descripcion, p.Cantidad, p.CantidadMinima, expiracion, categoria}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, row)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := "productos-" + time.Now().Format("2006-01-02") + ".xlsx"
	return buffer.Bytes(), filename, nil
}
