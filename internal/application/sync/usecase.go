package sync

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/domain"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/customer"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/repository"
	"github.com/jhoicas/PhotoCRM-api/pkg/currency"
	"github.com/jhoicas/PhotoCRM-api/pkg/logger"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// UseCase export e import de snapshots completos del estado del usuario.
type UseCase struct {
	store repository.DocumentStore
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.DocumentStore, log *logger.Logger) *UseCase {
	return &UseCase{store: store, log: log}
}

// Export arma el snapshot completo con todo el estado del usuario. Es el
// mismo formato de archivo que produce el import, así que un export se puede
// reimportar tal cual.
func (uc *UseCase) Export(ctx context.Context, userID string) (*dto.Snapshot, error) {
	snap := &dto.Snapshot{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	customers, err := uc.loadCustomers(ctx, userID)
	if err != nil {
		return nil, err
	}
	snap.Customers = customers

	if _, err := uc.loadInto(ctx, userID, repository.KeyOptions, &snap.Options); err != nil {
		return nil, err
	}
	if _, err := uc.loadInto(ctx, userID, repository.KeyPlanMaster, &snap.PlanMaster); err != nil {
		return nil, err
	}
	if _, err := uc.loadInto(ctx, userID, repository.KeyTeam, &snap.Team); err != nil {
		return nil, err
	}
	if _, err := uc.loadInto(ctx, userID, repository.KeyExpenses, &snap.Expenses); err != nil {
		return nil, err
	}
	if _, err := uc.loadInto(ctx, userID, repository.KeyCustomFields, &snap.CustomFields); err != nil {
		return nil, err
	}

	var tax entity.TaxSettings
	if ok, err := uc.loadInto(ctx, userID, repository.KeyTaxSettings, &tax); err != nil {
		return nil, err
	} else if ok {
		snap.TaxSettings = &tax
	}
	var profile entity.SenderProfile
	if ok, err := uc.loadInto(ctx, userID, repository.KeySenderProfile, &profile); err != nil {
		return nil, err
	} else if ok {
		snap.SenderProfile = &profile
	}
	var code string
	if ok, err := uc.loadInto(ctx, userID, repository.KeyCurrency, &code); err != nil {
		return nil, err
	} else if ok {
		snap.Currency = code
	}

	return snap, nil
}

// Import reconcilia un snapshot contra el estado actual y persiste el
// resultado. Devuelve cuántos clientes entraron nuevos, cuántos se
// reemplazaron por ser más recientes y cuántos miembros de equipo se sumaron.
func (uc *UseCase) Import(ctx context.Context, userID string, raw []byte) (*dto.MergeStats, error) {
	var snap dto.RawSnapshot
	if err := codec.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: snapshot ilegible", domain.ErrInvalidInput)
	}

	incoming := make([]entity.Customer, 0, len(snap.Customers))
	for _, row := range snap.Customers {
		incoming = append(incoming, customer.FromRaw(row))
	}

	local, err := uc.loadCustomers(ctx, userID)
	if err != nil {
		return nil, err
	}
	merged, added, updated := MergeCustomers(local, incoming)
	if err := uc.save(ctx, userID, repository.KeyCustomers, merged); err != nil {
		return nil, err
	}

	stats := &dto.MergeStats{Added: added, Updated: updated}

	if len(snap.Team) > 0 {
		var team []entity.Photographer
		if _, err := uc.loadInto(ctx, userID, repository.KeyTeam, &team); err != nil {
			return nil, err
		}
		mergedTeam, newMembers := MergeTeam(team, snap.Team)
		if err := uc.save(ctx, userID, repository.KeyTeam, mergedTeam); err != nil {
			return nil, err
		}
		stats.Team = newMembers
	}

	if len(snap.Options) > 0 {
		var options map[string][]string
		if _, err := uc.loadInto(ctx, userID, repository.KeyOptions, &options); err != nil {
			return nil, err
		}
		if err := uc.save(ctx, userID, repository.KeyOptions, MergeOptions(options, snap.Options)); err != nil {
			return nil, err
		}
	}

	if len(snap.PlanMaster) > 0 {
		var plans []entity.PlanEntry
		if _, err := uc.loadInto(ctx, userID, repository.KeyPlanMaster, &plans); err != nil {
			return nil, err
		}
		if err := uc.save(ctx, userID, repository.KeyPlanMaster, MergePlanMaster(plans, snap.PlanMaster)); err != nil {
			return nil, err
		}
	}

	if len(snap.Expenses) > 0 {
		var expenses []entity.Expense
		if _, err := uc.loadInto(ctx, userID, repository.KeyExpenses, &expenses); err != nil {
			return nil, err
		}
		if err := uc.save(ctx, userID, repository.KeyExpenses, mergeExpenses(expenses, snap.Expenses)); err != nil {
			return nil, err
		}
	}

	if len(snap.CustomFields) > 0 {
		var fields []entity.CustomField
		if _, err := uc.loadInto(ctx, userID, repository.KeyCustomFields, &fields); err != nil {
			return nil, err
		}
		if err := uc.save(ctx, userID, repository.KeyCustomFields, mergeCustomFields(fields, snap.CustomFields)); err != nil {
			return nil, err
		}
	}

	// Configuración singleton: el snapshot la trae completa y sobreescribe.
	if snap.TaxSettings != nil {
		if err := uc.save(ctx, userID, repository.KeyTaxSettings, snap.TaxSettings); err != nil {
			return nil, err
		}
	}
	if snap.SenderProfile != nil {
		if err := uc.save(ctx, userID, repository.KeySenderProfile, snap.SenderProfile); err != nil {
			return nil, err
		}
	}
	if snap.Currency != "" && currency.IsSupported(snap.Currency) {
		if err := uc.save(ctx, userID, repository.KeyCurrency, snap.Currency); err != nil {
			return nil, err
		}
	}

	uc.log.Info().
		Str("user_id", userID).
		Int("added", stats.Added).
		Int("updated", stats.Updated).
		Int("team", stats.Team).
		Msg("snapshot importado")

	return stats, nil
}

func mergeCustomFields(local, incoming []entity.CustomField) []entity.CustomField {
	merged := make([]entity.CustomField, len(local))
	copy(merged, local)
	seen := make(map[string]bool, len(local))
	for _, f := range local {
		seen[f.ID] = true
	}
	for _, in := range incoming {
		if seen[in.ID] {
			continue
		}
		seen[in.ID] = true
		merged = append(merged, in)
	}
	return merged
}

func (uc *UseCase) loadCustomers(ctx context.Context, userID string) ([]entity.Customer, error) {
	var rows []map[string]any
	if _, err := uc.loadInto(ctx, userID, repository.KeyCustomers, &rows); err != nil {
		return nil, err
	}
	out := make([]entity.Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, customer.FromRaw(row))
	}
	return out, nil
}

func (uc *UseCase) loadInto(ctx context.Context, userID, key string, out any) (bool, error) {
	raw, err := uc.store.Get(ctx, userID, key)
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

func (uc *UseCase) save(ctx context.Context, userID, key string, v any) error {
	raw, err := codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar %q: %w", key, err)
	}
	return uc.store.Put(ctx, userID, key, raw)
}
