package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/report"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestLoansTable(t *testing.T) {
	t.Parallel()
	due := model.NewDate(2024, time.March, 10)
	tbl := report.LoansTable([]model.LoanInfo{
		{ID: 1, Libro: "Rayuela", Usuario: "Ana", FechaPrestamo: model.NewDate(2024, time.March, 1), FechaDevolucion: &due, Devuelto: true},
		{ID: 2, Libro: "Ficciones", Usuario: "Luis", FechaPrestamo: model.NewDate(2024, time.April, 2)},
	})

	require.Equal(t, []string{"ID", "Libro", "Usuario", "Fecha Préstamo", "Fecha Devolución", "Devuelto"}, tbl.Header)
	require.Equal(t, [][]string{
		{"1", "Rayuela", "Ana", "2024-03-01", "2024-03-10", "Sí"},
		{"2", "Ficciones", "Luis", "2024-04-02", "N/A", "No"},
	}, tbl.Rows)
}

func TestTableDocument_EmptyTableKeepsHeader(t *testing.T) {
	t.Parallel()
	doc := report.TableDocument(report.BooksTable(nil))

	require.Len(t, doc.Elements, 3)
	require.Equal(t, report.Heading{Text: "Reporte de Tabla"}, doc.Elements[0])
	tbl, ok := doc.Elements[2].(report.Table)
	require.True(t, ok)
	require.Equal(t, []string{"ID", "Título", "Autor", "Disponible"}, tbl.Header)
	require.Empty(t, tbl.Rows)

	pdf, err := report.Render(doc)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestReportsTable_Timestamp(t *testing.T) {
	t.Parallel()
	tbl := report.ReportsTable([]model.Report{
		{ID: 7, Fecha: time.Date(2024, 5, 1, 9, 30, 5, 0, time.UTC), TipoDescripcion: "tabla"},
	})
	require.Equal(t, [][]string{{"7", "2024-05-01 09:30:05", "tabla"}}, tbl.Rows)
}

func TestReceiptDocument(t *testing.T) {
	t.Parallel()
	doc := report.ReceiptDocument(model.LoanReceipt{
		ID:            3,
		Titulo:        "Pedro Páramo",
		Autor:         "Juan Rulfo",
		Nombre:        "Ana",
		FechaPrestamo: model.NewDate(2024, time.January, 15),
	})

	var texts []string
	for _, el := range doc.Elements {
		if p, ok := el.(report.Paragraph); ok {
			texts = append(texts, p.Text)
		}
	}
	require.Equal(t, report.Heading{Text: "Comprobante de Préstamo"}, doc.Elements[0])
	require.Equal(t, []string{
		"ID Préstamo: 3",
		"Libro: Pedro Páramo",
		"Autor: Juan Rulfo",
		"Usuario: Ana",
		"Fecha de Préstamo: 2024-01-15",
		"Fecha de Devolución: N/A",
	}, texts)

	pdf, err := report.Render(doc)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestChart(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		top    []model.BookLoanCount
		months []model.MonthLoanCount
	}{
		{
			name: "ok",
			top: []model.BookLoanCount{
				{Titulo: "Rayuela", Prestamos: 4},
				{Titulo: "Ficciones", Prestamos: 2},
			},
			months: []model.MonthLoanCount{
				{Mes: "2024-01", Prestamos: 1},
				{Mes: "2024-02", Prestamos: 5},
			},
		},
		{
			name: "no loans",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			png, err := report.Chart(tt.top, tt.months)
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(png, pngMagic))

			pdf, err := report.Render(report.ChartDocument(png))
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
		})
	}
}
