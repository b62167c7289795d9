package producto

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"homestock/internal/common/models"

	"github.com/xuri/excelize/v2"
)

func TestExportarProductos(t *testing.T) {
	service, productoRepo, _, _, _ := newTestProductoService()
	ctx := context.Background()

	expiracion := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	if err := productoRepo.Create(ctx, &models.Producto{
		Nombre:         "Arroz",
		Descripcion:    "1kg",
		Cantidad:       4,
		CantidadMinima: 2,
		Expiracion:     &expiracion,
		Categoria:      &models.Categoria{Nombre: "despensa"},
	}); err != nil {
		t.Fatal(err)
	}

	data, filename, err := service.ExportarProductos(ctx)
	if err != nil {
		t.Fatalf("ExportarProductos: %v", err)
	}
	if !strings.HasPrefix(filename, "productos-") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("unexpected filename %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("generated workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Productos")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "Nombre" {
		t.Errorf("expected header Nombre, got %q", rows[0][0])
	}
	if rows[1][0] != "Arroz" || rows[1][4] != "15-09-2026" || rows[1][5] != "despensa" {
		t.Errorf("unexpected data row: %+v", rows[1])
	}
}
