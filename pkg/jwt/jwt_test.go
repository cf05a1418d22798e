package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tareas-api/pkg/jwt"
)

func TestGenerateYParse(t *testing.T) {
	token, err := jwt.Generate("secreto", 42, "Manager", "tareas-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "Manager", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("secreto", 42, "Employee", "tareas-api", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)
}

func TestParse_TokenMalformado(t *testing.T) {
	_, _, err := jwt.Parse("secreto", "no-es-un-jwt")
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración negativa: el token nace vencido.
	token, err := jwt.Generate("secreto", 42, "Employee", "tareas-api", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse("secreto", token)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", 42, "Employee", "tareas-api", 60)
	assert.Error(t, err)

	_, _, err = jwt.Parse("", "lo-que-sea")
	assert.Error(t, err)
}
