package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/PhotoCRM-api/internal/application/dto"
	"github.com/jhoicas/PhotoCRM-api/internal/domain"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/entity"
	"github.com/jhoicas/PhotoCRM-api/internal/domain/repository"
)

// TeamUseCase equipo del estudio (fotógrafos asignables a clientes).
type TeamUseCase struct {
	store repository.DocumentStore
}

// NewTeamUseCase construye el caso de uso.
func NewTeamUseCase(store repository.DocumentStore) *TeamUseCase {
	return &TeamUseCase{store: store}
}

// List devuelve el equipo completo.
func (uc *TeamUseCase) List(ctx context.Context, userID string) ([]entity.Photographer, error) {
	team, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		team = []entity.Photographer{}
	}
	return team, nil
}

// Add incorpora un miembro. Rol vacío cae a photographer; rol desconocido es
// entrada inválida.
func (uc *TeamUseCase) Add(ctx context.Context, userID string, in dto.TeamMemberInput) (*entity.Photographer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.TeamRolePhotographer
	}
	if !entity.ValidTeamRole(role) {
		return nil, domain.ErrInvalidInput
	}
	team, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	member := entity.Photographer{
		ID:    uuid.New().String(),
		Name:  name,
		Email: in.Email,
		Role:  role,
		Color: in.Color,
	}
	team = append(team, member)
	if err := saveDoc(ctx, uc.store, userID, repository.KeyTeam, team); err != nil {
		return nil, err
	}
	return &member, nil
}

// Remove quita un miembro del equipo. Los clientes que lo tenían asignado
// conservan el id; el listado lo muestra como no asignado.
func (uc *TeamUseCase) Remove(ctx context.Context, userID, id string) error {
	team, err := uc.load(ctx, userID)
	if err != nil {
		return err
	}
	for i, m := range team {
		if m.ID == id {
			team = append(team[:i], team[i+1:]...)
			return saveDoc(ctx, uc.store, userID, repository.KeyTeam, team)
		}
	}
	return domain.ErrNotFound
}

func (uc *TeamUseCase) load(ctx context.Context, userID string) ([]entity.Photographer, error) {
	var team []entity.Photographer
	if _, err := loadDoc(ctx, uc.store, userID, repository.KeyTeam, &team); err != nil {
		return nil, err
	}
	return team, nil
}
