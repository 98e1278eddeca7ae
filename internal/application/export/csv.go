// Package export produce los formatos de archivo descargables del listado de
// clientes: CSV, iCalendar y XLSX (este último detrás de un puerto, lo
// implementa infraestructura).
package export

import (
	"strconv"
	"strings"

	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
)

// FieldDef columna del export: clave interna y etiqueta de cabecera.
type FieldDef struct {
	Key   string
	Label string
}

// CustomerFields columnas fijas del export de clientes, en orden.
func CustomerFields() []FieldDef {
	return []FieldDef{
		{Key: "name", Label: "Name"},
		{Key: "furigana", Label: "Furigana"},
		{Key: "contact", Label: "Contact"},
		{Key: "email", Label: "Email"},
		{Key: "location", Label: "Location"},
		{Key: "inquiryDate", Label: "Inquiry Date"},
		{Key: "contractDate", Label: "Contract Date"},
		{Key: "meetingDate", Label: "Meeting Date"},
		{Key: "shootingDate", Label: "Shooting Date"},
		{Key: "billingDate", Label: "Billing Date"},
		{Key: "plan", Label: "Plan"},
		{Key: "revenue", Label: "Revenue"},
		{Key: "adjustment", Label: "Adjustment"},
		{Key: "paymentChecked", Label: "Paid"},
		{Key: "assignedTo", Label: "Assigned To"},
		{Key: "notes", Label: "Notes"},
	}
}

// FieldValue valor de una columna fija para un cliente, como texto.
func FieldValue(c entity.Customer, key string) string {
	switch key {
	case "name":
		return c.Name
	case "furigana":
		return c.Furigana
	case "contact":
		return c.Contact
	case "email":
		return c.Email
	case "location":
		return c.Location
	case "inquiryDate":
		return c.InquiryDate
	case "contractDate":
		return c.ContractDate
	case "meetingDate":
		return c.MeetingDate
	case "shootingDate":
		return c.ShootingDate
	case "billingDate":
		return c.BillingDate
	case "plan":
		return c.Plan
	case "revenue":
		return formatAmount(c.Revenue)
	case "adjustment":
		return formatAmount(c.Adjustment)
	case "paymentChecked":
		if c.PaymentChecked {
			return "yes"
		}
		return "no"
	case "assignedTo":
		return c.AssignedTo
	case "notes":
		return c.Notes
	}
	return ""
}

// BuildCustomersCSV genera el CSV de clientes: BOM UTF-8 (para que Excel lo
// abra bien), todas las celdas entre comillas dobles y comillas internas
// duplicadas. Los campos personalizados definidos van como columnas extra.
func BuildCustomersCSV(customers []entity.Customer, customFields []entity.CustomField) []byte {
	fields := CustomerFields()

	var b strings.Builder
	b.WriteString("\uFEFF") // BOM UTF-8

	header := make([]string, 0, len(fields)+len(customFields))
	for _, f := range fields {
		header = append(header, f.Label)
	}
	for _, f := range customFields {
		header = append(header, f.Label)
	}
	writeCSVRow(&b, header)

	for _, c := range customers {
		row := make([]string, 0, len(fields)+len(customFields))
		for _, f := range fields {
			row = append(row, FieldValue(c, f.Key))
		}
		for _, f := range customFields {
			row = append(row, c.CustomFields[f.ID])
		}
		writeCSVRow(&b, row)
	}
	return []byte(b.String())
}

// writeCSVRow escribe una fila con cada celda siempre entre comillas.
func writeCSVRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
