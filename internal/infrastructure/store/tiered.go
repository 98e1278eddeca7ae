// Package store compone los DocumentStore de nube y local en un almacenamiento
// por niveles: la nube manda cuando está disponible y lo local actúa de caché
// y de respaldo offline.
package store

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/PhotoCRM-api/internal/domain/repository"
	"github.com/jhoicas/PhotoCRM-api/pkg/logger"
)

var _ repository.DocumentStore = (*Tiered)(nil)

// Tiered DocumentStore en dos niveles. Las lecturas prefieren la nube y caen
// a local si falla o no tiene el documento; las escrituras van primero a
// local (no perder datos nunca) y después a la nube. Con cloud nil el store
// trabaja en modo solo local.
type Tiered struct {
	cloud repository.DocumentStore
	local repository.DocumentStore
	log   *logger.Logger
}

// NewTiered construye el store por niveles. cloud puede ser nil (modo local).
func NewTiered(cloud, local repository.DocumentStore, log *logger.Logger) *Tiered {
	return &Tiered{cloud: cloud, local: local, log: log}
}

// Resolve devuelve el primer documento definido en orden nube, local,
// fallback. Es la regla de resolución de todo el almacenamiento por niveles,
// separada para poder probarla de forma aislada.
func Resolve(cloud, local, fallback json.RawMessage) json.RawMessage {
	if cloud != nil {
		return cloud
	}
	if local != nil {
		return local
	}
	return fallback
}

// Get lee de la nube y cae a local ante error o ausencia. Una lectura de
// nube exitosa refresca la copia local.
func (t *Tiered) Get(ctx context.Context, userID, key string) (json.RawMessage, error) {
	if t.cloud == nil {
		return t.local.Get(ctx, userID, key)
	}
	doc, err := t.cloud.Get(ctx, userID, key)
	if err != nil {
		t.log.Warn().Err(err).Str("key", key).Msg("nube no disponible, leyendo copia local")
		return t.local.Get(ctx, userID, key)
	}
	if doc == nil {
		local, err := t.local.Get(ctx, userID, key)
		if err != nil {
			return nil, err
		}
		return Resolve(doc, local, nil), nil
	}
	if putErr := t.local.Put(ctx, userID, key, doc); putErr != nil {
		t.log.Warn().Err(putErr).Str("key", key).Msg("no se pudo refrescar la copia local")
	}
	return doc, nil
}

// Put escribe primero en local y después en la nube. Un fallo de nube se
// reporta como error pero la copia local ya quedó guardada.
func (t *Tiered) Put(ctx context.Context, userID, key string, doc json.RawMessage) error {
	if err := t.local.Put(ctx, userID, key, doc); err != nil {
		return err
	}
	if t.cloud == nil {
		return nil
	}
	return t.cloud.Put(ctx, userID, key, doc)
}

// Delete elimina en ambos niveles.
func (t *Tiered) Delete(ctx context.Context, userID, key string) error {
	if err := t.local.Delete(ctx, userID, key); err != nil {
		return err
	}
	if t.cloud == nil {
		return nil
	}
	return t.cloud.Delete(ctx, userID, key)
}
