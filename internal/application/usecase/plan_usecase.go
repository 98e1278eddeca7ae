package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/domain"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/repository"
)

// PlanUseCase catálogo de planes. La clave de cada entrada es su nombre,
// comparado sin distinguir mayúsculas; renombrar o borrar un plan deja a los
// clientes que lo referenciaban con su texto libre, sin reparación automática.
type PlanUseCase struct {
	store repository.DocumentStore
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(store repository.DocumentStore) *PlanUseCase {
	return &PlanUseCase{store: store}
}

// List devuelve el catálogo completo.
func (uc *PlanUseCase) List(ctx context.Context, userID string) ([]entity.PlanEntry, error) {
	plans, err := loadPlans(ctx, uc.store, userID)
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []entity.PlanEntry{}
	}
	return plans, nil
}

// Create añade un plan. El nombre es obligatorio y único en el catálogo.
func (uc *PlanUseCase) Create(ctx context.Context, userID string, in dto.PlanInput) (*entity.PlanEntry, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	plans, err := loadPlans(ctx, uc.store, userID)
	if err != nil {
		return nil, err
	}
	if findPlan(plans, name) >= 0 {
		return nil, domain.ErrDuplicate
	}
	entry := entity.PlanEntry{Name: name, Price: in.Price}
	plans = append(plans, entry)
	if err := saveDoc(ctx, uc.store, userID, repository.KeyPlanMaster, plans); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update modifica un plan identificado por su nombre actual. Un rename a un
// nombre ya existente es conflicto.
func (uc *PlanUseCase) Update(ctx context.Context, userID, name string, in dto.PlanInput) (*entity.PlanEntry, error) {
	newName := strings.TrimSpace(in.Name)
	if newName == "" {
		return nil, domain.ErrInvalidInput
	}
	plans, err := loadPlans(ctx, uc.store, userID)
	if err != nil {
		return nil, err
	}
	i := findPlan(plans, name)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	if !strings.EqualFold(name, newName) && findPlan(plans, newName) >= 0 {
		return nil, domain.ErrDuplicate
	}
	plans[i] = entity.PlanEntry{Name: newName, Price: in.Price}
	if err := saveDoc(ctx, uc.store, userID, repository.KeyPlanMaster, plans); err != nil {
		return nil, err
	}
	return &plans[i], nil
}

// Delete quita un plan del catálogo.
func (uc *PlanUseCase) Delete(ctx context.Context, userID, name string) error {
	plans, err := loadPlans(ctx, uc.store, userID)
	if err != nil {
		return err
	}
	i := findPlan(plans, name)
	if i < 0 {
		return domain.ErrNotFound
	}
	plans = append(plans[:i], plans[i+1:]...)
	return saveDoc(ctx, uc.store, userID, repository.KeyPlanMaster, plans)
}

func findPlan(plans []entity.PlanEntry, name string) int {
	for i, p := range plans {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}
