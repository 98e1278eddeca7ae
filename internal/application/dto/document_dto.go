package dto

// LineItemInput línea explícita de factura o presupuesto. Si no se envía
// ninguna, el documento lleva una sola línea "<plan> Session" por el revenue
// del cliente.
type LineItemInput struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// DocumentRequest overrides opcionales al generar factura/presupuesto.
// Todo campo vacío cae en cadena: valores del cliente → perfil de emisor
// guardado → configuración de impuestos → valor por defecto.
type DocumentRequest struct {
	Number    string `json:"number"`
	IssueDate string `json:"issueDate"` // "YYYY-MM-DD"
	DueDate   string `json:"dueDate"`

	SenderName    string `json:"senderName"`
	SenderAddress string `json:"senderAddress"`
	SenderEmail   string `json:"senderEmail"`
	SenderPhone   string `json:"senderPhone"`
	SenderBank    string `json:"senderBank"`

	RecipientName    string `json:"recipientName"`
	RecipientContact string `json:"recipientContact"`

	Items   []LineItemInput `json:"items"`
	Message string          `json:"message"`
}

// ContractRequest generación de contrato desde plantilla.
type ContractRequest struct {
	TemplateType string `json:"templateType"` // wedding | portrait | commercial
	Template     string `json:"template"`     // texto de plantilla; vacío = la guardada o la del tipo
}
