package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/PhotoCRM-api/internal/domain/pricing"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// ──────────────────────────────────────────────────────────────────────────────
// GrandTotal / AdjustmentFor
// ──────────────────────────────────────────────────────────────────────────────

func TestGrandTotal_BaseMasCargosMasAjuste(t *testing.T) {
	total := pricing.GrandTotal(d(50000), []decimal.Decimal{d(3000), d(2000)}, d(-500))
	assert.True(t, total.Equal(d(54500)), "total = base + cargos + ajuste, obtuvo %s", total)
}

func TestGrandTotal_SinCargos(t *testing.T) {
	total := pricing.GrandTotal(d(30000), nil, decimal.Zero)
	assert.True(t, total.Equal(d(30000)))
}

func TestGrandTotal_CargoNegativo(t *testing.T) {
	// Los descuentos son cargos con monto negativo; no se filtran.
	total := pricing.GrandTotal(d(10000), []decimal.Decimal{d(-1500)}, decimal.Zero)
	assert.True(t, total.Equal(d(8500)))
}

func TestAdjustmentFor_TotalEditadoAMano(t *testing.T) {
	// El usuario escribe 60000 como total; el ajuste absorbe la diferencia.
	adj := pricing.AdjustmentFor(d(60000), d(50000), []decimal.Decimal{d(3000)})
	assert.True(t, adj.Equal(d(7000)), "ajuste = total - (base + cargos), obtuvo %s", adj)

	// El invariante se conserva: recomputar el total con ese ajuste da el valor editado.
	total := pricing.GrandTotal(d(50000), []decimal.Decimal{d(3000)}, adj)
	assert.True(t, total.Equal(d(60000)))
}

func TestAdjustmentFor_PuedeSerNegativo(t *testing.T) {
	adj := pricing.AdjustmentFor(d(45000), d(50000), nil)
	assert.True(t, adj.Equal(d(-5000)))
}

// ──────────────────────────────────────────────────────────────────────────────
// CalculateTax
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateTax_Deshabilitado(t *testing.T) {
	got := pricing.CalculateTax(d(100), pricing.TaxConfig{Enabled: false})
	assert.True(t, got.Subtotal.Equal(d(100)))
	assert.True(t, got.Tax.IsZero())
	assert.True(t, got.Total.Equal(d(100)))
}

func TestCalculateTax_IncluidoEnElPrecio(t *testing.T) {
	got := pricing.CalculateTax(d(110), pricing.TaxConfig{Enabled: true, Rate: d(10), Included: true})
	assert.True(t, got.Subtotal.Equal(d(100)), "subtotal = 110 / 1.1, obtuvo %s", got.Subtotal)
	assert.True(t, got.Tax.Equal(d(10)), "tax = 110 - subtotal, obtuvo %s", got.Tax)
	assert.True(t, got.Total.Equal(d(110)), "total no cambia cuando el impuesto está incluido")
}

func TestCalculateTax_Excluido(t *testing.T) {
	got := pricing.CalculateTax(d(100), pricing.TaxConfig{Enabled: true, Rate: d(10), Included: false})
	assert.True(t, got.Subtotal.Equal(d(100)))
	assert.True(t, got.Tax.Equal(d(10)))
	assert.True(t, got.Total.Equal(d(110)))
}

func TestCalculateTax_TasaCero(t *testing.T) {
	got := pricing.CalculateTax(d(500), pricing.TaxConfig{Enabled: true, Rate: decimal.Zero, Included: false})
	assert.True(t, got.Tax.IsZero())
	assert.True(t, got.Total.Equal(d(500)))
}
