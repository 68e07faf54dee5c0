package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin     = "admin"
	RoleMecanico  = "mecanico"
	RoleRecepcion = "recepcion"
)

// User representa un usuario del taller con acceso a la API.
type User struct {
	ID           string // uuid
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
