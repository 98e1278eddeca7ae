package repository

import "github.com/jhoicas/PhotoCRM-api/internal/domain/entity"

// UserRepository puerto de persistencia de cuentas de acceso.
// Los métodos de búsqueda devuelven (nil, nil) cuando no hay resultado.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
