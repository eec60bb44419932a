package auth

import (
	"net/mail"
	"unicode/utf8"
)

// Reglas de forma para registro y login. Se acumulan todos los mensajes
// violados para responderlos juntos en un solo 400.
const (
	msgName     = "el nombre debe tener entre 2 y 32 caracteres"
	msgEmail    = "el formato de mail no es válido"
	msgPassword = "la clave debe tener entre 6 y 12 caracteres"
)

func validName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 2 && n <= 32
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func validPassword(password string) bool {
	n := len(password)
	return n >= 6 && n <= 12
}

// ValidateRegister valida nombre, email y clave para el registro.
// Devuelve la lista de reglas violadas (vacía si todo está bien).
func ValidateRegister(name, email, password string) []string {
	var violations []string
	if !validName(name) {
		violations = append(violations, msgName)
	}
	if !validEmail(email) {
		violations = append(violations, msgEmail)
	}
	if !validPassword(password) {
		violations = append(violations, msgPassword)
	}
	return violations
}

// ValidateLogin valida email y clave para el login.
func ValidateLogin(email, password string) []string {
	var violations []string
	if !validEmail(email) {
		violations = append(violations, msgEmail)
	}
	if !validPassword(password) {
		violations = append(violations, msgPassword)
	}
	return violations
}

// ValidateUpdate valida los campos presentes en una actualización de perfil.
// Los campos vacíos no se validan: una actualización es parcial.
func ValidateUpdate(name, email, newPassword string) []string {
	var violations []string
	if name != "" && !validName(name) {
		violations = append(violations, msgName)
	}
	if email != "" && !validEmail(email) {
		violations = append(violations, msgEmail)
	}
	if newPassword != "" && !validPassword(newPassword) {
		violations = append(violations, msgPassword)
	}
	return violations
}
