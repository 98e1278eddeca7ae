package entity

// Monedas soportadas para mostrar importes.
const (
	CurrencyUSD = "USD"
	CurrencyJPY = "JPY"
	CurrencyEUR = "EUR"
)

// TaxSettings configuración de impuestos y datos de la empresa (singleton).
// Included distingue entre tasa incluida en el precio y tasa añadida aparte.
type TaxSettings struct {
	Enabled              bool    `json:"enabled"`
	Rate                 float64 `json:"rate"`  // porcentaje, ej. 10
	Label                string  `json:"label"` // ej. "Tax", "消費税"
	Included             bool    `json:"included"`
	CompanyName          string  `json:"companyName"`
	Address              string  `json:"address"`
	Email                string  `json:"email"`
	Phone                string  `json:"phone"`
	Bank                 string  `json:"bank"`
	InvoiceTemplate      string  `json:"invoiceTemplate"`
	InvoiceFooterMessage string  `json:"invoiceFooterMessage"`
}

// DefaultTaxSettings valores por defecto cuando no hay nada persistido.
// Los valores guardados se superponen campo a campo sobre estos.
func DefaultTaxSettings() TaxSettings {
	return TaxSettings{
		Enabled:              false,
		Rate:                 10,
		Label:                "Tax",
		Included:             false,
		InvoiceTemplate:      "modern",
		InvoiceFooterMessage: "Thank you for your business.",
	}
}

// SenderProfile identidad del emisor usada la última vez que se generó una
// factura; se reutiliza como valor inicial en la siguiente.
type SenderProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Bank    string `json:"bank"`
}

// CustomField definición de campo personalizado de cliente.
type CustomField struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// CalendarFilters qué tipos de hito se muestran en el calendario y en el
// export ICS. Por defecto todos activos.
type CalendarFilters struct {
	Inquiry  bool `json:"inquiry"`
	Contract bool `json:"contract"`
	Meeting  bool `json:"meeting"`
	Shooting bool `json:"shooting"`
	Billing  bool `json:"billing"`
}

// DefaultCalendarFilters todos los hitos visibles.
func DefaultCalendarFilters() CalendarFilters {
	return CalendarFilters{Inquiry: true, Contract: true, Meeting: true, Shooting: true, Billing: true}
}

// Show indica si un tipo de hito está activo en los filtros.
func (f CalendarFilters) Show(milestone string) bool {
	switch milestone {
	case MilestoneInquiry:
		return f.Inquiry
	case MilestoneContract:
		return f.Contract
	case MilestoneMeeting:
		return f.Meeting
	case MilestoneShooting:
		return f.Shooting
	case MilestoneBilling:
		return f.Billing
	}
	return false
}
