package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest entrada para actualizar el perfil propio.
// Solo name, email y newPassword pasan el filtro de campos permitidos;
// rol nunca se acepta desde el cliente.
type UpdateProfileRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// RegisterResponse salida del registro: solo el token del usuario nuevo.
type RegisterResponse struct {
	Token string `json:"token"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mesa      string    `json:"mesa"`
	Rol       string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse salida del login: token con claims completos + usuario sin password.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileResponse proyección mínima del perfil propio.
type ProfileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
