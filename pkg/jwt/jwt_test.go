package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/crm-ventas-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "crm-ventas-test"
)

var testIdentity = pkgjwt.Identity{
	ID:        "00000000-0000-0000-0000-000000000001",
	Email:     "ana@example.com",
	FirstName: "Ana",
	LastName:  "Gómez",
}

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	got, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, got)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testIdentity, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestParse_Malformado(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testIdentity, testIssuer, 60)
	assert.Error(t, err)
}
