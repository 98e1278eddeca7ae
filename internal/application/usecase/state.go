// Package usecase implementa los casos de uso de la aplicación sobre el
// puerto DocumentStore. Cada colección vive como un documento JSON completo
// bajo una clave por usuario; las escrituras reemplazan el documento entero.
package usecase

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/jhoicas/PhotoCRM-api/internal/domain/customer"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/repository"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// loadDoc decodifica el documento de una clave en out. Devuelve false si la
// clave no existe. Un documento que no decodifica se trata como ausente: los
// datos malformados se defienden con defaults, no con errores.
func loadDoc(ctx context.Context, store repository.DocumentStore, userID, key string, out any) (bool, error) {
	raw, err := store.Get(ctx, userID, key)
	if err != nil {
		return false, fmt.Errorf("cargar %q: %w", key, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := codec.Unmarshal(raw, out); err != nil {
		return false, nil
	}
	return true, nil
}

// saveDoc serializa v y sobreescribe el documento de la clave.
func saveDoc(ctx context.Context, store repository.DocumentStore, userID, key string, v any) error {
	raw, err := codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar %q: %w", key, err)
	}
	if err := store.Put(ctx, userID, key, raw); err != nil {
		return fmt.Errorf("guardar %q: %w", key, err)
	}
	return nil
}

// loadCustomers carga la lista de clientes normalizando registro a registro.
// Los documentos pueden venir de esquemas viejos, así que se decodifican como
// maps y se coaccionan campo a campo.
func loadCustomers(ctx context.Context, store repository.DocumentStore, userID string) ([]entity.Customer, error) {
	var rows []map[string]any
	if _, err := loadDoc(ctx, store, userID, repository.KeyCustomers, &rows); err != nil {
		return nil, err
	}
	out := make([]entity.Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, customer.FromRaw(row))
	}
	return out, nil
}

// saveCustomers persiste la lista completa de clientes, normalizada.
func saveCustomers(ctx context.Context, store repository.DocumentStore, userID string, list []entity.Customer) error {
	normalized := make([]entity.Customer, 0, len(list))
	for _, c := range list {
		normalized = append(normalized, customer.Normalize(c))
	}
	return saveDoc(ctx, store, userID, repository.KeyCustomers, normalized)
}

// loadPlans carga el catálogo de planes.
func loadPlans(ctx context.Context, store repository.DocumentStore, userID string) ([]entity.PlanEntry, error) {
	var plans []entity.PlanEntry
	if _, err := loadDoc(ctx, store, userID, repository.KeyPlanMaster, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}
