package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PhotoCRM-api/internal/infrastructure/store"
	"github.com/jhoicas/PhotoCRM-api/pkg/logger"
)

// fakeStore DocumentStore en memoria con fallos configurables.
type fakeStore struct {
	docs    map[string]json.RawMessage
	failGet bool
	failPut bool
}

func newFakeStore() *fakeStore { return &fakeStore{docs: map[string]json.RawMessage{}} }

func (s *fakeStore) Get(_ context.Context, userID, key string) (json.RawMessage, error) {
	if s.failGet {
		return nil, errors.New("conexión perdida")
	}
	doc, ok := s.docs[userID+"/"+key]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (s *fakeStore) Put(_ context.Context, userID, key string, doc json.RawMessage) error {
	if s.failPut {
		return errors.New("conexión perdida")
	}
	s.docs[userID+"/"+key] = doc
	return nil
}

func (s *fakeStore) Delete(_ context.Context, userID, key string) error {
	delete(s.docs, userID+"/"+key)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func TestResolve_PrimerValorDefinido(t *testing.T) {
	cloud := json.RawMessage(`"nube"`)
	local := json.RawMessage(`"local"`)
	fallback := json.RawMessage(`"default"`)

	assert.Equal(t, cloud, store.Resolve(cloud, local, fallback))
	assert.Equal(t, local, store.Resolve(nil, local, fallback))
	assert.Equal(t, fallback, store.Resolve(nil, nil, fallback))
	assert.Nil(t, store.Resolve(nil, nil, nil))
}

func TestTiered_GetPrefiereLaNube(t *testing.T) {
	cloud := newFakeStore()
	local := newFakeStore()
	cloud.docs["u1/customers"] = json.RawMessage(`["nube"]`)
	local.docs["u1/customers"] = json.RawMessage(`["local"]`)

	tiered := store.NewTiered(cloud, local, testLogger())
	doc, err := tiered.Get(context.Background(), "u1", "customers")
	require.NoError(t, err)
	assert.JSONEq(t, `["nube"]`, string(doc))
	assert.JSONEq(t, `["nube"]`, string(local.docs["u1/customers"]),
		"la lectura de nube refresca la copia local")
}

func TestTiered_GetCaeALocalSiLaNubeFalla(t *testing.T) {
	cloud := newFakeStore()
	cloud.failGet = true
	local := newFakeStore()
	local.docs["u1/customers"] = json.RawMessage(`["local"]`)

	tiered := store.NewTiered(cloud, local, testLogger())
	doc, err := tiered.Get(context.Background(), "u1", "customers")
	require.NoError(t, err)
	assert.JSONEq(t, `["local"]`, string(doc))
}

func TestTiered_GetCaeALocalSiLaNubeNoTieneElDocumento(t *testing.T) {
	cloud := newFakeStore()
	local := newFakeStore()
	local.docs["u1/customers"] = json.RawMessage(`["local"]`)

	tiered := store.NewTiered(cloud, local, testLogger())
	doc, err := tiered.Get(context.Background(), "u1", "customers")
	require.NoError(t, err)
	assert.JSONEq(t, `["local"]`, string(doc))
}

func TestTiered_PutEscribeLocalPrimero(t *testing.T) {
	cloud := newFakeStore()
	cloud.failPut = true
	local := newFakeStore()

	tiered := store.NewTiered(cloud, local, testLogger())
	err := tiered.Put(context.Background(), "u1", "customers", json.RawMessage(`[]`))
	assert.Error(t, err, "el fallo de nube se reporta")
	assert.JSONEq(t, `[]`, string(local.docs["u1/customers"]),
		"la copia local queda guardada aunque la nube falle")
}

func TestTiered_ModoSoloLocal(t *testing.T) {
	local := newFakeStore()
	tiered := store.NewTiered(nil, local, testLogger())
	ctx := context.Background()

	require.NoError(t, tiered.Put(ctx, "local", "theme", json.RawMessage(`"dark"`)))
	doc, err := tiered.Get(ctx, "local", "theme")
	require.NoError(t, err)
	assert.Equal(t, `"dark"`, string(doc))
	require.NoError(t, tiered.Delete(ctx, "local", "theme"))
	doc, err = tiered.Get(ctx, "local", "theme")
	require.NoError(t, err)
	assert.Nil(t, doc)
}
