// Package pricing concentra la aritmética de precios de los clientes:
// total del plan (base + cargos + ajuste), ajuste inverso cuando se edita el
// total directamente, y desglose de impuestos. Todo se calcula con
// shopspring/decimal y se convierte a float64 solo en los bordes.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// TaxConfig parámetros de impuesto aplicables a un importe.
type TaxConfig struct {
	Enabled  bool
	Rate     decimal.Decimal // porcentaje, ej. 10 = 10%
	Included bool            // true: el importe ya incluye el impuesto
}

// TaxBreakdown desglose resultante de aplicar TaxConfig a un importe.
type TaxBreakdown struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ExtraChargeTotal suma los montos de los cargos adicionales.
func ExtraChargeTotal(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// GrandTotal total final de un cliente: base + cargos + ajuste. Este valor se
// refleja idéntico en totalPrice y en revenue.
func GrandTotal(basePrice decimal.Decimal, extras []decimal.Decimal, adjustment decimal.Decimal) decimal.Decimal {
	return basePrice.Add(ExtraChargeTotal(extras)).Add(adjustment)
}

// AdjustmentFor ajuste necesario para que el total coincida con un valor
// editado a mano: entered - (base + cargos).
func AdjustmentFor(entered, basePrice decimal.Decimal, extras []decimal.Decimal) decimal.Decimal {
	return entered.Sub(basePrice.Add(ExtraChargeTotal(extras)))
}

// CalculateTax desglosa un importe según la configuración de impuesto.
//
//   - Deshabilitado: {amount, 0, amount}.
//   - Incluido:  subtotal = amount / (1 + rate/100); tax = amount - subtotal.
//   - Excluido:  tax = amount * rate/100; total = amount + tax.
func CalculateTax(amount decimal.Decimal, cfg TaxConfig) TaxBreakdown {
	if !cfg.Enabled {
		return TaxBreakdown{Subtotal: amount, Tax: decimal.Zero, Total: amount}
	}
	rate := cfg.Rate.Div(hundred)
	if cfg.Included {
		subtotal := amount.Div(decimal.NewFromInt(1).Add(rate))
		return TaxBreakdown{
			Subtotal: subtotal,
			Tax:      amount.Sub(subtotal),
			Total:    amount,
		}
	}
	tax := amount.Mul(rate)
	return TaxBreakdown{
		Subtotal: amount,
		Tax:      tax,
		Total:    amount.Add(tax),
	}
}
