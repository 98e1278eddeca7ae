package sync_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PhotoCRM-api/internal/application/sync"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// MergeCustomers: last-write-wins por updatedAt
// ──────────────────────────────────────────────────────────────────────────────

func TestMergeCustomers_EntranteMasReciente_Reemplaza(t *testing.T) {
	local := []entity.Customer{{ID: "a", Name: "Local", UpdatedAt: "2024-01-01"}}
	incoming := []entity.Customer{{ID: "a", Name: "Importado", UpdatedAt: "2024-02-01"}}

	merged, added, updated := sync.MergeCustomers(local, incoming)
	require.Len(t, merged, 1)
	assert.Equal(t, "Importado", merged[0].Name)
	assert.Zero(t, added)
	assert.Equal(t, 1, updated)
}

func TestMergeCustomers_EntranteMasViejo_ConservaLocal(t *testing.T) {
	local := []entity.Customer{{ID: "a", Name: "Local", UpdatedAt: "2024-02-01"}}
	incoming := []entity.Customer{{ID: "a", Name: "Importado", UpdatedAt: "2024-01-01"}}

	merged, added, updated := sync.MergeCustomers(local, incoming)
	assert.Equal(t, "Local", merged[0].Name)
	assert.Zero(t, added)
	assert.Zero(t, updated)
}

func TestMergeCustomers_Empate_GanaLocal(t *testing.T) {
	local := []entity.Customer{{ID: "a", Name: "Local", UpdatedAt: "2024-02-01"}}
	incoming := []entity.Customer{{ID: "a", Name: "Importado", UpdatedAt: "2024-02-01"}}

	merged, _, updated := sync.MergeCustomers(local, incoming)
	assert.Equal(t, "Local", merged[0].Name, "en empate de timestamp se conserva lo local")
	assert.Zero(t, updated)
}

func TestMergeCustomers_SinUpdatedAt_SiemprePierde(t *testing.T) {
	local := []entity.Customer{{ID: "a", Name: "Local", UpdatedAt: "2001-01-01"}}
	incoming := []entity.Customer{{ID: "a", Name: "Importado"}} // sin timestamp → época

	merged, _, updated := sync.MergeCustomers(local, incoming)
	assert.Equal(t, "Local", merged[0].Name)
	assert.Zero(t, updated)
}

func TestMergeCustomers_IdNuevo_SeAnade(t *testing.T) {
	local := []entity.Customer{{ID: "a", Name: "Local"}}
	incoming := []entity.Customer{{ID: "b", Name: "Nuevo", UpdatedAt: "2024-01-01"}}

	merged, added, updated := sync.MergeCustomers(local, incoming)
	require.Len(t, merged, 2)
	assert.Equal(t, 1, added)
	assert.Zero(t, updated)
	assert.Equal(t, "Nuevo", merged[1].Name)
}

func TestMergeCustomers_TimestampIlegible_CuentaComoEpoca(t *testing.T) {
	local := []entity.Customer{{ID: "a", Name: "Local", UpdatedAt: "no-es-fecha"}}
	incoming := []entity.Customer{{ID: "a", Name: "Importado", UpdatedAt: "2024-01-01T10:00:00Z"}}

	merged, _, updated := sync.MergeCustomers(local, incoming)
	assert.Equal(t, "Importado", merged[0].Name)
	assert.Equal(t, 1, updated)
}

// ──────────────────────────────────────────────────────────────────────────────
// MergeTeam: gana lo local, se añade lo nuevo
// ──────────────────────────────────────────────────────────────────────────────

func TestMergeTeam(t *testing.T) {
	local := []entity.Photographer{{ID: "p1", Name: "Aki"}}
	incoming := []entity.Photographer{
		{ID: "p1", Name: "Aki (editado fuera)"},
		{ID: "p2", Name: "Ren"},
	}

	merged, added := sync.MergeTeam(local, incoming)
	require.Len(t, merged, 2)
	assert.Equal(t, "Aki", merged[0].Name, "en conflicto de id gana lo local, sin mirar timestamps")
	assert.Equal(t, "Ren", merged[1].Name)
	assert.Equal(t, 1, added)
}

// ──────────────────────────────────────────────────────────────────────────────
// MergeOptions / MergePlanMaster
// ──────────────────────────────────────────────────────────────────────────────

func TestMergeOptions_UnionSinDuplicados(t *testing.T) {
	local := map[string][]string{"locations": {"Studio A", "Beach"}}
	incoming := map[string][]string{
		"locations": {"Beach", "Park"},
		"delivery":  {"Mail"},
	}

	merged := sync.MergeOptions(local, incoming)
	assert.Equal(t, []string{"Studio A", "Beach", "Park"}, merged["locations"])
	assert.Equal(t, []string{"Mail"}, merged["delivery"])
}

func TestMergePlanMaster_EntranteSobreescribePorNombre(t *testing.T) {
	local := []entity.PlanEntry{{Name: "Wedding", Price: 100000}}
	incoming := []entity.PlanEntry{
		{Name: "wedding", Price: 120000}, // mismo nombre, distinta caja
		{Name: "Portrait", Price: 30000},
	}

	merged := sync.MergePlanMaster(local, incoming)
	require.Len(t, merged, 2)
	assert.Equal(t, 120000.0, merged[0].Price, "la entrada entrante con el mismo nombre sobreescribe")
	assert.Equal(t, "Portrait", merged[1].Name)
}
