// Package pdf renderiza los documentos imprimibles del estudio con Maroto v2.
//
// Layout de la página A4 (factura/presupuesto):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: INVOICE/QUOTE + N° y fechas │ Emisor               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RECEPTOR: Nombre + contacto                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Cant | P.Unit | Importe               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / TOTAL                       │
//	│  FOOTER: datos bancarios + mensaje                          │
//	└─────────────────────────────────────────────────────────────┘
//
// Los textos del PDF van en inglés: la fuente base (helvetica) no cubre
// caracteres japoneses, y los importes sí respetan la moneda configurada.
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/PhotoCRM-api/internal/application/documents"
	"github.com/jhoicas/PhotoCRM-api/pkg/currency"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 40, Green: 52, Blue: 78}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ documents.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa documents.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// RenderDocument genera el PDF de una factura o presupuesto.
func (g *MarotoPDFGenerator) RenderDocument(_ context.Context, m *documents.Model) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(documentTitle(m.Kind)+" "+m.Number, true).
		WithAuthor(nonEmpty(m.SenderName, "PhotoCRM"), true).
		Build()

	pdf := maroto.New(cfg)

	pdf.AddRows(headerRow(m))
	pdf.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	pdf.AddRows(recipientRow(m))
	pdf.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	pdf.AddRows(tableHeaderRow())
	for _, r := range itemRows(m) {
		pdf.AddRows(r)
	}

	pdf.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	pdf.AddRows(totalsRow(m))

	for _, r := range footerRows(m) {
		pdf.AddRows(r)
	}

	doc, err := pdf.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// RenderContract genera el PDF de un contrato ya resuelto.
func (g *MarotoPDFGenerator) RenderContract(_ context.Context, c *documents.Contract) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).WithRightMargin(20).
		WithTopMargin(20).WithBottomMargin(20).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(c.Title, true).
		Build()

	pdf := maroto.New(cfg)

	pdf.AddRows(row.New(12).Add(col.New(12).Add(
		text.New(c.Title, props.Text{
			Style: fontstyle.Bold, Size: 16, Align: align.Center,
			Color: colorPrimary, Top: 2,
		}),
	)))
	pdf.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, paragraph := range strings.Split(c.Body, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			pdf.AddRows(row.New(4))
			continue
		}
		pdf.AddRows(row.New(6).Add(col.New(12).Add(
			text.New(paragraph, props.Text{Size: 10, Top: 1}),
		)))
	}

	// Bloque de firmas
	pdf.AddRows(row.New(20))
	pdf.AddRows(row.New(12).Add(
		col.New(5).Add(
			text.New("_________________________", props.Text{Size: 10, Top: 1}),
			text.New("Client signature / Date", props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(2),
		col.New(5).Add(
			text.New("_________________________", props.Text{Size: 10, Top: 1}),
			text.New("Studio signature / Date", props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
	))

	doc, err := pdf.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar contrato: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + número y fechas (izq), datos del emisor (der).
func headerRow(m *documents.Model) core.Row {
	senderLines := []string{m.SenderName}
	if m.SenderAddress != "" {
		senderLines = append(senderLines, m.SenderAddress)
	}
	contact := joinNonEmpty("   |   ", m.SenderPhone, m.SenderEmail)
	if contact != "" {
		senderLines = append(senderLines, contact)
	}

	left := col.New(6).Add(
		text.New(documentTitle(m.Kind), props.Text{
			Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
		}),
		text.New("No. "+m.Number, props.Text{Style: fontstyle.Bold, Size: 10, Top: 10}),
		text.New("Issue date: "+m.IssueDate, props.Text{Size: 8, Top: 16, Color: colorGray}),
		text.New(dueLabel(m.Kind)+": "+m.DueDate, props.Text{Size: 8, Top: 20, Color: colorGray}),
	)

	right := col.New(6)
	top := 1.0
	for i, l := range senderLines {
		style := props.Text{Size: 8, Align: align.Right, Top: top, Color: colorGray}
		if i == 0 {
			style = props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: top}
		}
		right.Add(text.New(l, style))
		top += 5
	}

	return row.New(26).Add(left, right)
}

// recipientRow: datos del cliente.
func recipientRow(m *documents.Model) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(m.RecipientName, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
			text.New(nonEmpty(m.RecipientContact, "—"), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 6, align.Left),
		h("Qty", 1, align.Center),
		h("Unit price", 2, align.Right),
		h("Amount", 3, align.Right),
	)
}

// itemRows: una fila por línea del documento.
func itemRows(m *documents.Model) []core.Row {
	result := make([]core.Row, 0, len(m.Items))
	for _, item := range m.Items {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				item.Description,
				props.Text{Size: 9, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%g", item.Quantity),
				props.Text{Size: 9, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				currency.Format(m.Currency, item.UnitPrice),
				props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				currency.Format(m.Currency, item.Amount),
				props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(m *documents.Model) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 12,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 12,
		})
	}

	taxLabel := nonEmpty(m.TaxLabel, "Tax")
	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			text.New(taxLabel+":", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6,
			}),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value(currency.Format(m.Currency, m.Subtotal)),
			text.New(currency.Format(m.Currency, m.Tax), props.Text{
				Size: 9, Align: align.Right, Right: 1, Top: 6,
			}),
			grandValue(currency.Format(m.Currency, m.Total)),
		),
	)
}

// footerRows: datos bancarios (si hay) + mensaje final.
func footerRows(m *documents.Model) []core.Row {
	var rows []core.Row
	rows = append(rows, row.New(4))

	if m.SenderBank != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("PAYMENT DETAILS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(m.SenderBank, props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}

	if m.Message != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New(m.Message, props.Text{Size: 9, Top: 3, Color: colorGray}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func documentTitle(kind string) string {
	if kind == documents.KindQuote {
		return "QUOTE"
	}
	return "INVOICE"
}

func dueLabel(kind string) string {
	if kind == documents.KindQuote {
		return "Valid until"
	}
	return "Due date"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
