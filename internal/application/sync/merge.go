// Package sync implementa el import/export de snapshots JSON y la
// reconciliación contra el estado actual. La política de merge de clientes es
// last-write-wins por updatedAt; el equipo se mezcla con "gana lo local".
package sync

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
)

// MergeCustomers reconcilia la lista local con la importada, por id. Un
// registro entrante reemplaza al local solo si su updatedAt es estrictamente
// posterior; en empate gana lo local. updatedAt ausente o ilegible cuenta
// como época (siempre pierde). Los ids nuevos se añaden al final.
func MergeCustomers(local, incoming []entity.Customer) (merged []entity.Customer, added, updated int) {
	merged = make([]entity.Customer, len(local))
	copy(merged, local)

	index := make(map[string]int, len(local))
	for i, c := range local {
		index[c.ID] = i
	}

	for _, in := range incoming {
		i, ok := index[in.ID]
		if !ok {
			index[in.ID] = len(merged)
			merged = append(merged, in)
			added++
			continue
		}
		if parseUpdatedAt(in.UpdatedAt).After(parseUpdatedAt(merged[i].UpdatedAt)) {
			merged[i] = in
			updated++
		}
	}
	return merged, added, updated
}

// MergeTeam mezcla el equipo por id: en conflicto gana lo local, los ids
// nuevos se añaden. Sin comparación de timestamps.
func MergeTeam(local, incoming []entity.Photographer) (merged []entity.Photographer, added int) {
	merged = make([]entity.Photographer, len(local))
	copy(merged, local)

	seen := make(map[string]bool, len(local))
	for _, m := range local {
		seen[m.ID] = true
	}
	for _, in := range incoming {
		if seen[in.ID] {
			continue
		}
		seen[in.ID] = true
		merged = append(merged, in)
		added++
	}
	return merged, added
}

// MergeOptions une las listas de opciones por nombre de lista, deduplicando
// valores. Se conserva el orden local y los valores entrantes nuevos van al
// final de cada lista.
func MergeOptions(local, incoming map[string][]string) map[string][]string {
	merged := make(map[string][]string, len(local)+len(incoming))
	for name, values := range local {
		merged[name] = append([]string(nil), values...)
	}
	for name, values := range incoming {
		seen := make(map[string]bool, len(merged[name]))
		for _, v := range merged[name] {
			seen[v] = true
		}
		for _, v := range values {
			if seen[v] {
				continue
			}
			seen[v] = true
			merged[name] = append(merged[name], v)
		}
	}
	return merged
}

// MergePlanMaster mezcla catálogos de planes por nombre (sin distinguir
// mayúsculas): una entrada entrante con el mismo nombre sobreescribe la
// local, las nuevas se añaden al final.
func MergePlanMaster(local, incoming []entity.PlanEntry) []entity.PlanEntry {
	merged := make([]entity.PlanEntry, len(local))
	copy(merged, local)

	index := make(map[string]int, len(local))
	for i, p := range local {
		index[strings.ToLower(p.Name)] = i
	}
	for _, in := range incoming {
		key := strings.ToLower(in.Name)
		if i, ok := index[key]; ok {
			merged[i] = in
			continue
		}
		index[key] = len(merged)
		merged = append(merged, in)
	}
	return merged
}

// mergeExpenses añade gastos por id, sin reemplazar los existentes.
func mergeExpenses(local, incoming []entity.Expense) []entity.Expense {
	merged := make([]entity.Expense, len(local))
	copy(merged, local)

	seen := make(map[string]bool, len(local))
	for _, e := range local {
		seen[e.ID] = true
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

// parseUpdatedAt interpreta el timestamp con tolerancia de formato; vacío o
// ilegible cae a la época Unix.
func parseUpdatedAt(s string) time.Time {
	if s == "" {
		return time.Unix(0, 0).UTC()
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return t
}
