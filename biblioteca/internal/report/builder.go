package report

import (
	"fmt"
	"strconv"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
)

const (
	TitleTable   = "Reporte de Tabla"
	TitleChart   = "Reporte de Análisis de Préstamos"
	TitleReceipt = "Comprobante de Préstamo"

	notAvailable    = "N/A"
	timestampLayout = "2006-01-02 15:04:05"
)

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

func dueDate(d *model.Date) string {
	if d == nil || d.IsZero() {
		return notAvailable
	}
	return d.String()
}

func BooksTable(books []model.Book) Table {
	t := Table{Header: []string{"ID", "Título", "Autor", "Disponible"}}
	for _, b := range books {
		t.Rows = append(t.Rows, []string{strconv.Itoa(b.ID), b.Titulo, b.Autor, yesNo(b.Disponible)})
	}
	return t
}

func UsersTable(users []model.User) Table {
	t := Table{Header: []string{"ID", "Nombre", "Correo"}}
	for _, u := range users {
		t.Rows = append(t.Rows, []string{strconv.Itoa(u.ID), u.Nombre, u.Correo})
	}
	return t
}

func AvailableTable(books []model.Book) Table {
	t := Table{Header: []string{"ID", "Título", "Autor"}}
	for _, b := range books {
		t.Rows = append(t.Rows, []string{strconv.Itoa(b.ID), b.Titulo, b.Autor})
	}
	return t
}

func LoansTable(loans []model.LoanInfo) Table {
	t := Table{Header: []string{"ID", "Libro", "Usuario", "Fecha Préstamo", "Fecha Devolución", "Devuelto"}}
	for _, l := range loans {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(l.ID),
			l.Libro,
			l.Usuario,
			l.FechaPrestamo.String(),
			dueDate(l.FechaDevolucion),
			yesNo(l.Devuelto),
		})
	}
	return t
}

func ReportsTable(reports []model.Report) Table {
	t := Table{Header: []string{"ID", "Fecha", "Tipo"}}
	for _, r := range reports {
		t.Rows = append(t.Rows, []string{strconv.Itoa(r.ID), r.Fecha.Format(timestampLayout), r.TipoDescripcion})
	}
	return t
}

func TableDocument(t Table) Document {
	var doc Document
	doc.Add(Heading{Text: TitleTable}, Spacer{Height: titleGap}, t)
	return doc
}

// ChartDocument embeds the chart PNG at 6x4 inches.
func ChartDocument(png []byte) Document {
	var doc Document
	doc.Add(
		Heading{Text: TitleChart},
		Spacer{Height: titleGap},
		Image{PNG: png, Width: 6, Height: 4},
	)
	return doc
}

func ReceiptDocument(r model.LoanReceipt) Document {
	var doc Document
	doc.Add(
		Heading{Text: TitleReceipt},
		Spacer{Height: titleGap},
		Paragraph{Text: fmt.Sprintf("ID Préstamo: %d", r.ID)},
		Paragraph{Text: "Libro: " + r.Titulo},
		Paragraph{Text: "Autor: " + r.Autor},
		Paragraph{Text: "Usuario: " + r.Nombre},
		Paragraph{Text: "Fecha de Préstamo: " + r.FechaPrestamo.String()},
		Paragraph{Text: "Fecha de Devolución: " + dueDate(r.FechaDevolucion)},
	)
	return doc
}
