package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PhotoCRM-api/internal/application/export"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
)

func TestBuildCustomersCSV_EmpiezaConBOM(t *testing.T) {
	out := export.BuildCustomersCSV(nil, nil)
	assert.True(t, strings.HasPrefix(string(out), "\uFEFF"), "el CSV debe empezar con BOM UTF-8")
}

func TestBuildCustomersCSV_TodasLasCeldasEntreComillas(t *testing.T) {
	out := export.BuildCustomersCSV([]entity.Customer{
		{Name: "Tanaka", Contact: "090-1111", Plan: "Wedding", Revenue: 55000},
	}, nil)

	lines := strings.Split(strings.TrimRight(string(out), "\r\n"), "\r\n")
	require.Len(t, lines, 2)

	cells := strings.Split(lines[1], ",")
	require.Len(t, cells, len(export.CustomerFields()), "una columna por campo definido")
	for _, cell := range cells {
		assert.True(t, strings.HasPrefix(cell, `"`) && strings.HasSuffix(cell, `"`),
			"cada celda va entre comillas dobles: %s", cell)
	}
	assert.Contains(t, lines[1], `"55000"`)
}

func TestBuildCustomersCSV_DuplicaComillasInternas(t *testing.T) {
	out := export.BuildCustomersCSV([]entity.Customer{
		{Name: `Yuki "Photo" Tanaka`},
	}, nil)
	assert.Contains(t, string(out), `"Yuki ""Photo"" Tanaka"`)
}

func TestBuildCustomersCSV_CamposPersonalizadosComoColumnasExtra(t *testing.T) {
	fields := []entity.CustomField{{ID: "custom_a", Label: "Pet Name"}}
	out := export.BuildCustomersCSV([]entity.Customer{
		{Name: "Sato", CustomFields: map[string]string{"custom_a": "Pochi"}},
		{Name: "Tanaka"}, // sin valor: columna vacía
	}, fields)

	lines := strings.Split(strings.TrimRight(string(out), "\r\n"), "\r\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], `"Pet Name"`))
	assert.True(t, strings.HasSuffix(lines[1], `"Pochi"`))
	assert.True(t, strings.HasSuffix(lines[2], `""`))
}

func TestFieldValue_Pago(t *testing.T) {
	assert.Equal(t, "yes", export.FieldValue(entity.Customer{PaymentChecked: true}, "paymentChecked"))
	assert.Equal(t, "no", export.FieldValue(entity.Customer{}, "paymentChecked"))
}
