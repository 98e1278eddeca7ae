// Package customer contiene la lógica de saneamiento de registros de cliente.
// Los documentos persistidos pueden venir de versiones anteriores del esquema
// o de imports externos, así que nunca se confía en su forma: todo registro
// pasa por Normalize en cada carga y en cada guardado.
package customer

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/pricing"
)

// FromRaw construye un Customer desde un documento JSON decodificado como
// map. Cada campo se coacciona de forma defensiva (números guardados como
// string, booleanos como 0/1, objetos ausentes) y el resultado se normaliza.
func FromRaw(raw map[string]any) entity.Customer {
	c := entity.Customer{
		ID:       cast.ToString(raw["id"]),
		Name:     rawString(raw, "customerName", "name"),
		Furigana: cast.ToString(raw["furigana"]),
		Contact:  cast.ToString(raw["contact"]),
		Email:    cast.ToString(raw["email"]),
		Location: cast.ToString(raw["location"]),
		Notes:    rawString(raw, "notes", "memo"),

		InquiryDate:  cast.ToString(raw["inquiryDate"]),
		ContractDate: cast.ToString(raw["contractDate"]),
		MeetingDate:  cast.ToString(raw["meetingDate"]),
		ShootingDate: cast.ToString(raw["shootingDate"]),
		BillingDate:  cast.ToString(raw["billingDate"]),

		PaymentChecked: cast.ToBool(raw["paymentChecked"]),
		AssignedTo:     cast.ToString(raw["assignedTo"]),

		Plan:         cast.ToString(raw["plan"]),
		PlanMasterID: cast.ToString(raw["planMasterId"]),
		Adjustment:   cast.ToFloat64(raw["adjustment"]),
		Revenue:      cast.ToFloat64(raw["revenue"]),

		Costume:         cast.ToString(raw["costume"]),
		CostumePrice:    cast.ToFloat64(raw["costumePrice"]),
		HairMakeup:      cast.ToString(raw["hairMakeup"]),
		HairMakeupPrice: cast.ToFloat64(raw["hairMakeupPrice"]),

		CustomFields: cast.ToStringMapString(raw["customFields"]),

		InvoiceNumber:           cast.ToString(raw["invoiceNumber"]),
		InvoiceIssueDate:        cast.ToString(raw["invoiceIssueDate"]),
		InvoiceDueDate:          cast.ToString(raw["invoiceDueDate"]),
		InvoiceMessage:          rawString(raw, "invoiceMessage", "invoiceMemo"),
		InvoiceSenderName:       cast.ToString(raw["invoiceSenderName"]),
		InvoiceSenderContact:    cast.ToString(raw["invoiceSenderContact"]),
		InvoiceRecipientName:    cast.ToString(raw["invoiceRecipientName"]),
		InvoiceRecipientContact: cast.ToString(raw["invoiceRecipientContact"]),

		CreatedAt: cast.ToString(raw["createdAt"]),
		UpdatedAt: cast.ToString(raw["updatedAt"]),
	}

	if pd := cast.ToStringMap(raw["planDetails"]); pd != nil {
		c.PlanDetails = entity.PlanDetails{
			PlanName:   cast.ToString(pd["planName"]),
			BasePrice:  cast.ToFloat64(pd["basePrice"]),
			Options:    cast.ToString(pd["options"]),
			TotalPrice: cast.ToFloat64(pd["totalPrice"]),
		}
	}
	for _, item := range cast.ToSlice(raw["extraChargeItems"]) {
		m := cast.ToStringMap(item)
		c.ExtraCharges = append(c.ExtraCharges, entity.ExtraChargeItem{
			Name:   cast.ToString(m["name"]),
			Detail: cast.ToString(m["detail"]),
			Amount: cast.ToFloat64(m["amount"]),
		})
	}
	for _, item := range cast.ToSlice(raw["invoiceItems"]) {
		m := cast.ToStringMap(item)
		c.InvoiceItems = append(c.InvoiceItems, entity.InvoiceLine{
			Description: cast.ToString(m["description"]),
			Quantity:    cast.ToFloat64(m["quantity"]),
			UnitPrice:   cast.ToFloat64(m["unitPrice"]),
		})
	}
	for _, item := range cast.ToSlice(raw["tasks"]) {
		m := cast.ToStringMap(item)
		c.Tasks = append(c.Tasks, entity.Task{
			ID:   cast.ToString(m["id"]),
			Text: cast.ToString(m["text"]),
			Done: cast.ToBool(m["done"]),
			Due:  cast.ToString(m["due"]),
		})
	}

	return Normalize(c)
}

// Normalize deja el registro en forma canónica: planDetails bien formado
// (total con fallback a revenue), cargos sin entradas vacías y slices no
// nulos. Es idempotente: normalizar un registro ya normalizado no lo cambia.
func Normalize(c entity.Customer) entity.Customer {
	if c.PlanDetails.TotalPrice == 0 {
		c.PlanDetails.TotalPrice = c.Revenue
	}
	c.ExtraCharges = filterExtras(c.ExtraCharges)
	if c.Tasks == nil {
		c.Tasks = []entity.Task{}
	}
	return c
}

// rawString lee la primera clave presente con valor no vacío. Las claves
// alternativas cubren registros guardados con nombres de campo viejos.
func rawString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if v := cast.ToString(raw[key]); v != "" {
			return v
		}
	}
	return ""
}

// filterExtras descarta solo las entradas completamente vacías: sin nombre,
// sin detalle y monto cero. Un monto negativo (descuento) se conserva.
func filterExtras(items []entity.ExtraChargeItem) []entity.ExtraChargeItem {
	out := make([]entity.ExtraChargeItem, 0, len(items))
	for _, it := range items {
		if it.Name == "" && it.Detail == "" && it.Amount == 0 {
			continue
		}
		out = append(out, it)
	}
	return out
}

// WithLegacyExtras sintetiza cargos desde los campos costume/hairMakeup del
// esquema anterior cuando el registro aún no tiene extraChargeItems. Solo se
// aplica al abrir el registro para edición; no se persiste hasta que el
// usuario guarda.
func WithLegacyExtras(c entity.Customer) entity.Customer {
	if len(c.ExtraCharges) > 0 {
		return c
	}
	var extras []entity.ExtraChargeItem
	if c.Costume != "" || c.CostumePrice != 0 {
		extras = append(extras, entity.ExtraChargeItem{Name: "Costume", Detail: c.Costume, Amount: c.CostumePrice})
	}
	if c.HairMakeup != "" || c.HairMakeupPrice != 0 {
		extras = append(extras, entity.ExtraChargeItem{Name: "Hair & Makeup", Detail: c.HairMakeup, Amount: c.HairMakeupPrice})
	}
	if len(extras) == 0 {
		return c
	}
	c.ExtraCharges = extras
	return c
}

// ApplyPricing recalcula los campos derivados de precio. Si enteredTotal no
// es nil el usuario editó el total a mano: el ajuste se recalcula para que el
// invariante revenue = base + cargos + ajuste siga valiendo.
func ApplyPricing(c entity.Customer, enteredTotal *float64) entity.Customer {
	base := decimal.NewFromFloat(c.PlanDetails.BasePrice)
	extras := make([]decimal.Decimal, 0, len(c.ExtraCharges))
	for _, it := range c.ExtraCharges {
		extras = append(extras, decimal.NewFromFloat(it.Amount))
	}

	if enteredTotal != nil {
		adj := pricing.AdjustmentFor(decimal.NewFromFloat(*enteredTotal), base, extras)
		c.Adjustment, _ = adj.Float64()
	}

	total := pricing.GrandTotal(base, extras, decimal.NewFromFloat(c.Adjustment))
	v, _ := total.Float64()
	c.Revenue = v
	c.PlanDetails.TotalPrice = v
	return c
}
