package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerMiddleware_SpecAusente_NoHacePanic(t *testing.T) {
	// Sin el archivo, el arranque debe seguir sin UI en lugar de caerse.
	var mw interface{}
	assert.NotPanics(t, func() {
		mw = swaggerMiddleware(filepath.Join(t.TempDir(), "no-existe.json"), "Restaurante API")
	})
	assert.Nil(t, mw)
}

func TestSwaggerMiddleware_SpecPresente_RegistraUI(t *testing.T) {
	spec := filepath.Join(t.TempDir(), "swagger.json")
	require.NoError(t, os.WriteFile(spec, []byte(`{"swagger":"2.0","info":{"title":"t","version":"1"},"paths":{}}`), 0o644))

	mw := swaggerMiddleware(spec, "Restaurante API")
	assert.NotNil(t, mw)
}

func TestSwaggerSpec_EstaVersionado(t *testing.T) {
	// El spec estático que sirve la UI debe estar en el repo, junto al binario.
	_, err := os.Stat(filepath.Join("..", "..", "docs", "swagger.json"))
	assert.NoError(t, err, "docs/swagger.json debe existir en el árbol")
}
