package http

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
)

// RequireFields exige que el body JSON traiga cada campo con un valor no
// "falsy" (ausente, null, string vacío, 0 o false). Responde 400 nombrando
// el primer campo faltante, en el orden en que se declararon.
func RequireFields(fields ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body map[string]interface{}
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
		}
		for _, field := range fields {
			if isFalsy(body[field]) {
				return c.Status(fiber.StatusBadRequest).JSON(
					dto.Err(fmt.Sprintf("el campo %q es requerido", field)))
			}
		}
		return c.Next()
	}
}

// FilterAllowed devuelve una copia del body JSON con solo las claves
// permitidas, listo para deserializar en el DTO. Evita que campos
// privilegiados (por ejemplo rol) lleguen a persistirse en un update.
func FilterAllowed(body []byte, allowed ...string) ([]byte, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, err
	}
	out := make(map[string]json.RawMessage, len(allowed))
	for _, key := range allowed {
		if v, ok := m[key]; ok {
			out[key] = v
		}
	}
	return json.Marshal(out)
}

// isFalsy replica la semántica de "campo presente" del body JSON:
// null, "", 0 y false cuentan como ausentes.
func isFalsy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case float64:
		return t == 0
	case bool:
		return !t
	default:
		return false
	}
}
