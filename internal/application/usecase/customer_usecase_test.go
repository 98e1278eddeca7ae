package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/application/usecase"
	"github.com/jhoicas/PhotoCRM-api/internal/domain"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
)

// memStore implementación en memoria del puerto DocumentStore para tests.
type memStore struct {
	docs map[string]json.RawMessage
}

func newMemStore() *memStore { return &memStore{docs: map[string]json.RawMessage{}} }

func (s *memStore) Get(_ context.Context, userID, key string) (json.RawMessage, error) {
	doc, ok := s.docs[userID+"/"+key]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (s *memStore) Put(_ context.Context, userID, key string, doc json.RawMessage) error {
	s.docs[userID+"/"+key] = doc
	return nil
}

func (s *memStore) Delete(_ context.Context, userID, key string) error {
	delete(s.docs, userID+"/"+key)
	return nil
}

const testUser = "u1"

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerCreate_CalculaRevenue(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemStore())

	created, err := uc.Create(context.Background(), testUser, dto.CustomerInput{
		Name:         "Tanaka",
		PlanDetails:  entity.PlanDetails{PlanName: "Wedding", BasePrice: 50000},
		ExtraCharges: []entity.ExtraChargeItem{{Name: "Album", Amount: 5000}},
		Adjustment:   -500,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	assert.Equal(t, 54500.0, created.Revenue, "revenue = base + cargos + ajuste")
	assert.Equal(t, 54500.0, created.PlanDetails.TotalPrice)
	assert.NotEmpty(t, created.UpdatedAt)
}

func TestCustomerCreate_SinNombre_EntradaInvalida(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemStore())
	_, err := uc.Create(context.Background(), testUser, dto.CustomerInput{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerCreate_RevenueEditadoRecalculaAjuste(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemStore())
	entered := 60000.0
	created, err := uc.Create(context.Background(), testUser, dto.CustomerInput{
		Name:        "Sato",
		PlanDetails: entity.PlanDetails{BasePrice: 50000},
		Revenue:     &entered,
	})
	require.NoError(t, err)
	assert.Equal(t, 10000.0, created.Adjustment)
	assert.Equal(t, 60000.0, created.Revenue)
}

func TestCustomerUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemStore())
	_, err := uc.Update(context.Background(), testUser, "nope", dto.CustomerInput{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerDelete_YListado(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemStore())
	ctx := context.Background()

	a, err := uc.Create(ctx, testUser, dto.CustomerInput{Name: "A"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, testUser, dto.CustomerInput{Name: "B"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, testUser, a.ID))

	list, err := uc.List(ctx, testUser, dto.FilterRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "B", list.Items[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de plan contra el catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerCreate_ResuelvePlanDelCatalogo(t *testing.T) {
	store := newMemStore()
	plans, _ := json.Marshal([]entity.PlanEntry{{Name: "Wedding Premium", Price: 120000}})
	require.NoError(t, store.Put(context.Background(), testUser, "plan_master", plans))

	uc := usecase.NewCustomerUseCase(store)
	created, err := uc.Create(context.Background(), testUser, dto.CustomerInput{
		Name:         "Tanaka",
		PlanMasterID: "wedding premium", // la búsqueda no distingue mayúsculas
	})
	require.NoError(t, err)
	assert.Equal(t, "Wedding Premium", created.Plan)
	assert.Equal(t, 120000.0, created.PlanDetails.BasePrice)
	assert.Equal(t, 120000.0, created.Revenue)
}

func TestCustomerCreate_PlanFueraDeCatalogo_ConservaTextoLibre(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemStore())
	created, err := uc.Create(context.Background(), testUser, dto.CustomerInput{
		Name:         "Sato",
		Plan:         "Plan Antiguo",
		PlanMasterID: "ya-no-existe",
	})
	require.NoError(t, err)
	assert.Equal(t, "Plan Antiguo", created.Plan, "la referencia rota no se repara en silencio")
}

// ──────────────────────────────────────────────────────────────────────────────
// Migración de campos del esquema viejo
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerGet_SintetizaCargosLegacySoloEnLectura(t *testing.T) {
	store := newMemStore()
	old, _ := json.Marshal([]map[string]any{{
		"id":           "c1",
		"name":         "Registro Viejo",
		"costume":      "kimono",
		"costumePrice": 8000,
	}})
	require.NoError(t, store.Put(context.Background(), testUser, "customers", old))

	uc := usecase.NewCustomerUseCase(store)
	got, err := uc.Get(context.Background(), testUser, "c1")
	require.NoError(t, err)
	require.Len(t, got.ExtraCharges, 1)
	assert.Equal(t, "Costume", got.ExtraCharges[0].Name)
	assert.Equal(t, 8000.0, got.ExtraCharges[0].Amount)

	// La migración no se persiste hasta que el usuario guarde.
	list, err := uc.List(context.Background(), testUser, dto.FilterRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Items[0].ExtraCharges)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tareas
// ──────────────────────────────────────────────────────────────────────────────

func TestTareas_AltaToggleBorrado(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemStore())
	ctx := context.Background()

	c, err := uc.Create(ctx, testUser, dto.CustomerInput{Name: "Tanaka"})
	require.NoError(t, err)

	c, err = uc.AddTask(ctx, testUser, c.ID, dto.TaskInput{Text: "enviar álbum", Due: "2024-06-01"})
	require.NoError(t, err)
	require.Len(t, c.Tasks, 1)
	assert.False(t, c.Tasks[0].Done)

	c, err = uc.ToggleTask(ctx, testUser, c.ID, c.Tasks[0].ID)
	require.NoError(t, err)
	assert.True(t, c.Tasks[0].Done)

	c, err = uc.DeleteTask(ctx, testUser, c.ID, c.Tasks[0].ID)
	require.NoError(t, err)
	assert.Empty(t, c.Tasks)
}

func TestAddTask_TextoVacio(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemStore())
	ctx := context.Background()
	c, err := uc.Create(ctx, testUser, dto.CustomerInput{Name: "Tanaka"})
	require.NoError(t, err)

	_, err = uc.AddTask(ctx, testUser, c.ID, dto.TaskInput{Text: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
