package entity

import "time"

// Roles válidos para User. El primer usuario registrado queda como admin;
// todos los siguientes son client.
const (
	RolAdmin  = "admin"
	RolClient = "client"
)

// User representa un usuario del sistema (cliente o administrador del restaurante).
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string // bcrypt hash, nunca plano en dominio después de persistir
	Mesa      string // identificador de la mesa asignada, "0" si no tiene
	Rol       string // admin, client
	CreatedAt time.Time
	UpdatedAt time.Time
}
