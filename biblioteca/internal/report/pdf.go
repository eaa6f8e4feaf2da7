package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	mmPerInch = 25.4
	margin    = 20.0

	fontFamily = "Helvetica"
)

type rgb struct{ r, g, b int }

var (
	headerFill = rgb{128, 128, 128}
	headerText = rgb{245, 245, 245}
	rowFill    = rgb{245, 245, 220}
	rowAltFill = rgb{255, 255, 255}
	black      = rgb{0, 0, 0}
)

// Render writes doc as a single A4 PDF held in memory.
func Render(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle("Biblioteca", true)
	pdf.AddPage()

	// core fonts are cp1252; accented Spanish text needs translating
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	w := writer{pdf: pdf, tr: tr}

	for i, el := range doc.Elements {
		switch el := el.(type) {
		case Heading:
			w.heading(el)
		case Paragraph:
			w.paragraph(el)
		case Spacer:
			pdf.Ln(el.Height * mmPerInch)
		case Table:
			w.table(el)
		case Image:
			w.image(fmt.Sprintf("image-%d", i), el)
		default:
			return nil, errors.Errorf("unknown element %T", el)
		}
		if err := pdf.Error(); err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "pdf output")
	}
	return buf.Bytes(), nil
}

type writer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (w writer) fill(c rgb)  { w.pdf.SetFillColor(c.r, c.g, c.b) }
func (w writer) color(c rgb) { w.pdf.SetTextColor(c.r, c.g, c.b) }

func (w writer) heading(h Heading) {
	w.color(black)
	w.pdf.SetFont(fontFamily, "B", 18)
	w.pdf.MultiCell(0, 9, w.tr(h.Text), "", "L", false)
}

func (w writer) paragraph(p Paragraph) {
	w.color(black)
	w.pdf.SetFont(fontFamily, "", 10)
	w.pdf.MultiCell(0, 6, w.tr(p.Text), "", "L", false)
}

func (w writer) contentWidth() float64 {
	pageW, _ := w.pdf.GetPageSize()
	left, _, right, _ := w.pdf.GetMargins()
	return pageW - left - right
}

// columnWidths sizes columns to their widest cell and shrinks them
// proportionally when the table is wider than the page.
func (w writer) columnWidths(t Table) []float64 {
	const pad = 4.0
	widths := make([]float64, len(t.Header))

	w.pdf.SetFont(fontFamily, "B", 12)
	for i, h := range t.Header {
		widths[i] = w.pdf.GetStringWidth(w.tr(h)) + pad
	}
	w.pdf.SetFont(fontFamily, "", 10)
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if cw := w.pdf.GetStringWidth(w.tr(row[i])) + pad; cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	var total float64
	for _, cw := range widths {
		total += cw
	}
	if limit := w.contentWidth(); total > limit {
		for i := range widths {
			widths[i] *= limit / total
		}
	}
	return widths
}

func (w writer) table(t Table) {
	if len(t.Header) == 0 {
		return
	}
	widths := w.columnWidths(t)
	var total float64
	for _, cw := range widths {
		total += cw
	}
	left, _, _, _ := w.pdf.GetMargins()
	x := left + (w.contentWidth()-total)/2

	w.pdf.SetDrawColor(black.r, black.g, black.b)
	w.pdf.SetLineWidth(0.3)

	w.pdf.SetX(x)
	w.pdf.SetFont(fontFamily, "B", 12)
	w.fill(headerFill)
	w.color(headerText)
	for i, h := range t.Header {
		w.pdf.CellFormat(widths[i], 10, w.tr(h), "1", 0, "C", true, 0, "")
	}
	w.pdf.Ln(-1)

	w.pdf.SetFont(fontFamily, "", 10)
	w.color(black)
	for n, row := range t.Rows {
		if n%2 == 0 {
			w.fill(rowFill)
		} else {
			w.fill(rowAltFill)
		}
		w.pdf.SetX(x)
		for i := range widths {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			w.pdf.CellFormat(widths[i], 7, w.tr(cell), "1", 0, "C", true, 0, "")
		}
		w.pdf.Ln(-1)
	}
}

func (w writer) image(name string, img Image) {
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	w.pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(img.PNG))
	width := img.Width * mmPerInch
	left, _, _, _ := w.pdf.GetMargins()
	x := left + (w.contentWidth()-width)/2
	w.pdf.ImageOptions(name, x, -1, width, img.Height*mmPerInch, true, opt, 0, "")
}
