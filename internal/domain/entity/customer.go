package entity

// Fechas de hito de un cliente. Cada una es opcional y se guarda como
// string "YYYY-MM-DD" (los datos importados pueden traer otros formatos).
const (
	MilestoneInquiry  = "inquiry"
	MilestoneContract = "contract"
	MilestoneMeeting  = "meeting"
	MilestoneShooting = "shooting"
	MilestoneBilling  = "billing"
)

// PlanDetails desglose del plan aplicado a un cliente. Nunca se confía en la
// forma persistida: se renormaliza en cada carga y en cada guardado.
type PlanDetails struct {
	PlanName   string  `json:"planName"`
	BasePrice  float64 `json:"basePrice"`
	Options    string  `json:"options"`
	TotalPrice float64 `json:"totalPrice"`
}

// ExtraChargeItem cargo adicional de un cliente. El monto puede ser negativo
// (descuentos); solo se descartan las entradas completamente vacías.
type ExtraChargeItem struct {
	Name   string  `json:"name"`
	Detail string  `json:"detail"`
	Amount float64 `json:"amount"`
}

// Task tarea libre asociada a un cliente.
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
	Due  string `json:"due,omitempty"`
}

// InvoiceLine línea de factura guardada en el cliente para proponerla en la
// siguiente emisión.
type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Customer registro de cliente del estudio fotográfico. Los nombres JSON
// siguen el formato de snapshot histórico (customerName, notes) para que los
// archivos exportados se puedan reimportar tal cual.
//
// Invariante de precio: Revenue == PlanDetails.BasePrice + Σ(ExtraCharges.Amount) + Adjustment.
// Los campos Costume*/HairMakeup* son del esquema anterior; se migran a
// ExtraCharges al editar el registro, nunca de forma automática.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"customerName"`
	Furigana string `json:"furigana,omitempty"`
	Contact  string `json:"contact"`
	Email    string `json:"email,omitempty"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`

	InquiryDate  string `json:"inquiryDate,omitempty"`
	ContractDate string `json:"contractDate,omitempty"`
	MeetingDate  string `json:"meetingDate,omitempty"`
	ShootingDate string `json:"shootingDate,omitempty"`
	BillingDate  string `json:"billingDate,omitempty"`

	PaymentChecked bool   `json:"paymentChecked"`
	AssignedTo     string `json:"assignedTo,omitempty"` // id de fotógrafo del equipo
	Tasks          []Task `json:"tasks"`

	// PlanMasterID referencia por nombre al catálogo de planes; Plan conserva
	// el texto libre (registros antiguos o planes fuera de catálogo).
	Plan         string            `json:"plan"`
	PlanMasterID string            `json:"planMasterId,omitempty"`
	PlanDetails  PlanDetails       `json:"planDetails"`
	ExtraCharges []ExtraChargeItem `json:"extraChargeItems"`
	Adjustment   float64           `json:"adjustment"`
	Revenue      float64           `json:"revenue"`

	// Esquema anterior (pre extraChargeItems).
	Costume         string  `json:"costume,omitempty"`
	CostumePrice    float64 `json:"costumePrice,omitempty"`
	HairMakeup      string  `json:"hairMakeup,omitempty"`
	HairMakeupPrice float64 `json:"hairMakeupPrice,omitempty"`

	CustomFields map[string]string `json:"customFields,omitempty"`

	// Últimos valores usados al emitir factura para este cliente. Se
	// proponen de nuevo en la siguiente emisión.
	InvoiceNumber           string        `json:"invoiceNumber,omitempty"`
	InvoiceIssueDate        string        `json:"invoiceIssueDate,omitempty"`
	InvoiceDueDate          string        `json:"invoiceDueDate,omitempty"`
	InvoiceMessage          string        `json:"invoiceMessage,omitempty"`
	InvoiceItems            []InvoiceLine `json:"invoiceItems,omitempty"`
	InvoiceSenderName       string        `json:"invoiceSenderName,omitempty"`
	InvoiceSenderContact    string        `json:"invoiceSenderContact,omitempty"`
	InvoiceRecipientName    string        `json:"invoiceRecipientName,omitempty"`
	InvoiceRecipientContact string        `json:"invoiceRecipientContact,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// MilestoneDates devuelve las fechas de hito presentes, indexadas por tipo.
func (c Customer) MilestoneDates() map[string]string {
	out := make(map[string]string, 5)
	if c.InquiryDate != "" {
		out[MilestoneInquiry] = c.InquiryDate
	}
	if c.ContractDate != "" {
		out[MilestoneContract] = c.ContractDate
	}
	if c.MeetingDate != "" {
		out[MilestoneMeeting] = c.MeetingDate
	}
	if c.ShootingDate != "" {
		out[MilestoneShooting] = c.ShootingDate
	}
	if c.BillingDate != "" {
		out[MilestoneBilling] = c.BillingDate
	}
	return out
}
