package entity

import "time"

// User cuenta de acceso a la API. El sistema es single-tenant: cada usuario
// tiene su propio espacio de documentos, identificado por su ID.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | photographer | assistant
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
