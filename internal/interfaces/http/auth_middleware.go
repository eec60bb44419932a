package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/pkg/jwt"
)

// Locals keys para los claims del usuario autenticado en Fiber.
const (
	LocalUserID = "user_id"
	LocalName   = "name"
	LocalEmail  = "email"
	LocalRol    = "rol"
)

// AuthMiddleware valida el Bearer Token JWT y deja los claims en c.Locals.
// Distingue tres fallos con mensajes propios: header ausente, token vencido
// y token inválido (malformado o con firma incorrecta).
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("se requiere header con token válido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("se requiere header con token válido"))
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("el token ha expirado"))
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("el token no es válido"))
		}
		// Un token firmado pero sin id de usuario no identifica a nadie.
		if claims.UserID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("el token no es válido"))
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalName, claims.Name)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRol, claims.Rol)
		return c.Next()
	}
}

// RequireAdmin exige rol admin en los claims. Debe usarse DESPUÉS de AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRol(c) != entity.RolAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.Err("acceso denegado: no eres administrador"))
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetName devuelve el nombre del contexto.
func GetName(c *fiber.Ctx) string {
	return localString(c, LocalName)
}

// GetEmail devuelve el email del contexto.
func GetEmail(c *fiber.Ctx) string {
	return localString(c, LocalEmail)
}

// GetRol devuelve el rol del contexto.
func GetRol(c *fiber.Ctx) string {
	return localString(c, LocalRol)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
