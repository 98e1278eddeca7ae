package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/application/usecase"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
)

func sampleCustomers() []entity.Customer {
	return []entity.Customer{
		{ID: "1", Name: "Tanaka Yuki", Contact: "090-1111", ShootingDate: "2024-05-10", PaymentChecked: true, Revenue: 50000, AssignedTo: "ph1"},
		{ID: "2", Name: "Sato Ren", Contact: "090-2222", ShootingDate: "2024-05-25", PaymentChecked: false, Revenue: 30000, AssignedTo: "ph2"},
		{ID: "3", Name: "Suzuki Mei", Contact: "090-3333", ShootingDate: "2024-06-02", PaymentChecked: false, Revenue: 80000, AssignedTo: "ph1"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// FilterCustomers
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterCustomers_PorMes(t *testing.T) {
	got := usecase.FilterCustomers(sampleCustomers(), dto.FilterRequest{Month: "2024-05"})
	require.Len(t, got, 2, "solo los clientes cuya shootingDate empieza por 2024-05")
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestFilterCustomers_MesAll_NoFiltra(t *testing.T) {
	got := usecase.FilterCustomers(sampleCustomers(), dto.FilterRequest{Month: "all"})
	assert.Len(t, got, 3)
}

func TestFilterCustomers_PorTexto_SinMayusculas(t *testing.T) {
	got := usecase.FilterCustomers(sampleCustomers(), dto.FilterRequest{Query: "tanaka"})
	require.Len(t, got, 1)
	assert.Equal(t, "Tanaka Yuki", got[0].Name)

	// También busca en el contacto
	got = usecase.FilterCustomers(sampleCustomers(), dto.FilterRequest{Query: "090-2222"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilterCustomers_PorPago(t *testing.T) {
	paid := usecase.FilterCustomers(sampleCustomers(), dto.FilterRequest{Payment: "paid"})
	require.Len(t, paid, 1)
	assert.Equal(t, "1", paid[0].ID)

	unpaid := usecase.FilterCustomers(sampleCustomers(), dto.FilterRequest{Payment: "unpaid"})
	assert.Len(t, unpaid, 2)
}

func TestFilterCustomers_PorAsignado(t *testing.T) {
	got := usecase.FilterCustomers(sampleCustomers(), dto.FilterRequest{AssignedTo: "ph1"})
	assert.Len(t, got, 2)
}

func TestFilterCustomers_FiltrosCombinados(t *testing.T) {
	got := usecase.FilterCustomers(sampleCustomers(), dto.FilterRequest{Month: "2024-05", Payment: "unpaid"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// SortCustomers
// ──────────────────────────────────────────────────────────────────────────────

func TestSortCustomers_RevenueNumerico(t *testing.T) {
	got := usecase.SortCustomers(sampleCustomers(), "revenue", "asc")
	assert.Equal(t, []string{"2", "1", "3"}, ids(got))

	got = usecase.SortCustomers(sampleCustomers(), "revenue", "desc")
	assert.Equal(t, []string{"3", "1", "2"}, ids(got))
}

func TestSortCustomers_TextoSinMayusculas(t *testing.T) {
	list := []entity.Customer{
		{ID: "a", Name: "suzuki"},
		{ID: "b", Name: "Sato"},
		{ID: "c", Name: "TANAKA"},
	}
	got := usecase.SortCustomers(list, "name", "asc")
	assert.Equal(t, []string{"b", "a", "c"}, ids(got))
}

func TestSortCustomers_Estable(t *testing.T) {
	list := []entity.Customer{
		{ID: "a", Plan: "Wedding", Revenue: 100},
		{ID: "b", Plan: "Wedding", Revenue: 200},
		{ID: "c", Plan: "Portrait", Revenue: 300},
	}
	got := usecase.SortCustomers(list, "plan", "asc")
	// "Portrait" < "Wedding"; los dos Wedding conservan su orden relativo.
	assert.Equal(t, []string{"c", "a", "b"}, ids(got))
}

func TestSortCustomers_NoMutaLaEntrada(t *testing.T) {
	list := sampleCustomers()
	_ = usecase.SortCustomers(list, "revenue", "desc")
	assert.Equal(t, "1", list[0].ID, "la lista original no debe reordenarse")
}

func TestTotalRevenue(t *testing.T) {
	assert.Equal(t, 160000.0, usecase.TotalRevenue(sampleCustomers()))
	assert.Zero(t, usecase.TotalRevenue(nil))
}

func ids(list []entity.Customer) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.ID
	}
	return out
}
