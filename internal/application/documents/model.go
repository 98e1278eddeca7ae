// Package documents arma los documentos imprimibles del estudio: facturas,
// presupuestos y contratos. El armado resuelve cadenas de fallback (override
// del request → datos del cliente → perfil de emisor guardado → configuración
// de empresa) y deja el render PDF detrás de un puerto.
package documents

import "context"

// Tipos de documento.
const (
	KindInvoice = "invoice"
	KindQuote   = "quote"
)

// Line línea de factura o presupuesto, con el importe ya calculado.
type Line struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// Model documento listo para renderizar.
type Model struct {
	Kind      string `json:"kind"`
	Number    string `json:"number"`
	IssueDate string `json:"issueDate"`
	DueDate   string `json:"dueDate"`

	SenderName    string `json:"senderName"`
	SenderAddress string `json:"senderAddress"`
	SenderEmail   string `json:"senderEmail"`
	SenderPhone   string `json:"senderPhone"`
	SenderBank    string `json:"senderBank"`

	RecipientName    string `json:"recipientName"`
	RecipientContact string `json:"recipientContact"`

	Items    []Line  `json:"items"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	TaxLabel string  `json:"taxLabel"`

	Currency string `json:"currency"`
	Message  string `json:"message"`
	Template string `json:"template"` // estilo visual, ej. "modern"
}

// Contract contrato ya resuelto: título y cuerpo con los placeholders
// sustituidos.
type Contract struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PDFGenerator puerto de render a PDF.
type PDFGenerator interface {
	RenderDocument(ctx context.Context, m *Model) ([]byte, error)
	RenderContract(ctx context.Context, c *Contract) ([]byte, error)
}
