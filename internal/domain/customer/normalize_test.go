package customer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PhotoCRM-api/internal/domain/customer"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Normalize
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_EsIdempotente(t *testing.T) {
	c := entity.Customer{
		ID:      "c1",
		Name:    "Tanaka",
		Revenue: 55000,
		PlanDetails: entity.PlanDetails{PlanName: "Wedding", BasePrice: 50000},
		ExtraCharges: []entity.ExtraChargeItem{
			{Name: "Album", Amount: 5000},
			{}, // entrada vacía, debe desaparecer
		},
	}

	once := customer.Normalize(c)
	twice := customer.Normalize(once)
	assert.Equal(t, once, twice, "normalizar un registro ya normalizado debe ser un no-op")
}

func TestNormalize_TotalPriceCaeARevenue(t *testing.T) {
	c := customer.Normalize(entity.Customer{Revenue: 42000})
	assert.Equal(t, 42000.0, c.PlanDetails.TotalPrice)
}

func TestNormalize_FiltraSoloEntradasCompletamenteVacias(t *testing.T) {
	c := customer.Normalize(entity.Customer{
		ExtraCharges: []entity.ExtraChargeItem{
			{Name: "", Detail: "", Amount: 0},
			{Name: "Discount", Amount: -1000}, // monto negativo se conserva
			{Detail: "extra hour", Amount: 0}, // tiene detalle, se conserva
		},
	})
	require.Len(t, c.ExtraCharges, 2)
	assert.Equal(t, "Discount", c.ExtraCharges[0].Name)
	assert.Equal(t, "extra hour", c.ExtraCharges[1].Detail)
}

func TestNormalize_SlicesNoNulos(t *testing.T) {
	c := customer.Normalize(entity.Customer{})
	assert.NotNil(t, c.Tasks)
	assert.NotNil(t, c.ExtraCharges)
}

// ──────────────────────────────────────────────────────────────────────────────
// FromRaw: coerción defensiva de documentos con forma vieja o parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestFromRaw_NumerosComoString(t *testing.T) {
	c := customer.FromRaw(map[string]any{
		"id":      "c1",
		"name":    "Sato",
		"revenue": "55000",
		"planDetails": map[string]any{
			"planName":  "Portrait",
			"basePrice": "50000",
		},
		"extraChargeItems": []any{
			map[string]any{"name": "Album", "amount": "5000"},
		},
	})

	assert.Equal(t, 55000.0, c.Revenue)
	assert.Equal(t, 50000.0, c.PlanDetails.BasePrice)
	require.Len(t, c.ExtraCharges, 1)
	assert.Equal(t, 5000.0, c.ExtraCharges[0].Amount)
}

func TestFromRaw_NombresDeCampoDelSnapshotHistorico(t *testing.T) {
	c := customer.FromRaw(map[string]any{
		"id":             "c9",
		"customerName":   "Tanaka Yuki",
		"notes":          "alergia al flash",
		"invoiceMessage": "Gracias por su preferencia",
		"invoiceItems": []any{
			map[string]any{"description": "Wedding Session", "quantity": 1, "unitPrice": "50000"},
		},
	})

	assert.Equal(t, "Tanaka Yuki", c.Name)
	assert.Equal(t, "alergia al flash", c.Notes)
	assert.Equal(t, "Gracias por su preferencia", c.InvoiceMessage)
	require.Len(t, c.InvoiceItems, 1)
	assert.Equal(t, 50000.0, c.InvoiceItems[0].UnitPrice)
}

func TestFromRaw_NombresDeCampoNuevosComoAlternativa(t *testing.T) {
	c := customer.FromRaw(map[string]any{
		"id":          "c10",
		"name":        "Sato",
		"memo":        "nota vieja",
		"invoiceMemo": "mensaje viejo",
	})

	assert.Equal(t, "Sato", c.Name)
	assert.Equal(t, "nota vieja", c.Notes)
	assert.Equal(t, "mensaje viejo", c.InvoiceMessage)
}

func TestFromRaw_DocumentoMinimo(t *testing.T) {
	c := customer.FromRaw(map[string]any{"id": "c2"})
	assert.Equal(t, "c2", c.ID)
	assert.Zero(t, c.Revenue)
	assert.NotNil(t, c.Tasks)
	assert.Empty(t, c.ExtraCharges)
}

func TestFromRaw_TasksYPaymentComoValoresSueltos(t *testing.T) {
	c := customer.FromRaw(map[string]any{
		"id":             "c3",
		"paymentChecked": 1, // registros viejos guardaban 0/1
		"tasks": []any{
			map[string]any{"id": "t1", "text": "enviar álbum", "done": "true"},
		},
	})
	assert.True(t, c.PaymentChecked)
	require.Len(t, c.Tasks, 1)
	assert.True(t, c.Tasks[0].Done)
}

// ──────────────────────────────────────────────────────────────────────────────
// WithLegacyExtras
// ──────────────────────────────────────────────────────────────────────────────

func TestWithLegacyExtras_SintetizaDesdeCamposViejos(t *testing.T) {
	c := customer.WithLegacyExtras(entity.Customer{
		Costume:         "kimono",
		CostumePrice:    8000,
		HairMakeup:      "full",
		HairMakeupPrice: 6000,
	})
	require.Len(t, c.ExtraCharges, 2)
	assert.Equal(t, "Costume", c.ExtraCharges[0].Name)
	assert.Equal(t, 8000.0, c.ExtraCharges[0].Amount)
	assert.Equal(t, "Hair & Makeup", c.ExtraCharges[1].Name)
}

func TestWithLegacyExtras_NoTocaRegistrosConCargos(t *testing.T) {
	c := customer.WithLegacyExtras(entity.Customer{
		Costume:      "kimono",
		CostumePrice: 8000,
		ExtraCharges: []entity.ExtraChargeItem{{Name: "Album", Amount: 5000}},
	})
	require.Len(t, c.ExtraCharges, 1, "si ya hay extraChargeItems no se migra nada")
	assert.Equal(t, "Album", c.ExtraCharges[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyPricing
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyPricing_RecalculaRevenueYTotal(t *testing.T) {
	c := customer.ApplyPricing(entity.Customer{
		PlanDetails:  entity.PlanDetails{BasePrice: 50000},
		ExtraCharges: []entity.ExtraChargeItem{{Name: "Album", Amount: 5000}},
		Adjustment:   -500,
	}, nil)
	assert.Equal(t, 54500.0, c.Revenue)
	assert.Equal(t, 54500.0, c.PlanDetails.TotalPrice)
}

func TestApplyPricing_TotalEditadoRecalculaAjuste(t *testing.T) {
	entered := 60000.0
	c := customer.ApplyPricing(entity.Customer{
		PlanDetails:  entity.PlanDetails{BasePrice: 50000},
		ExtraCharges: []entity.ExtraChargeItem{{Name: "Album", Amount: 5000}},
	}, &entered)
	assert.Equal(t, 5000.0, c.Adjustment, "ajuste = total editado - (base + cargos)")
	assert.Equal(t, 60000.0, c.Revenue)
}
