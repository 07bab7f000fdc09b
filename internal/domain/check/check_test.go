package check_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printers-api/internal/domain"
	"github.com/jhoicas/printers-api/internal/domain/check"
)

func str(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Primitiva Field
// ──────────────────────────────────────────────────────────────────────────────

func TestField_ObligatorioAusente(t *testing.T) {
	err := check.Mandatory("username", nil, check.NotEmpty, "cannot be empty", nil)
	require.Error(t, err)

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.True(t, vErr.Missing)
	assert.Equal(t, "field username must be present, but was missing", err.Error())
}

func TestField_OpcionalAusente_NoAplicaNada(t *testing.T) {
	applied := false
	err := check.Optional("model", nil, check.NotEmpty, "cannot be empty",
		func(string) { applied = true })
	assert.NoError(t, err)
	assert.False(t, applied, "un campo opcional ausente no debe tocar el destino")
}

func TestField_PresenteInvalido(t *testing.T) {
	err := check.Optional("alias", str(""), check.NotEmpty, "cannot be empty", nil)
	require.Error(t, err)
	assert.Equal(t, "while validating alias: cannot be empty", err.Error())
}

func TestField_PresenteValido_Aplica(t *testing.T) {
	var got string
	err := check.Mandatory("alias", str("hp-sotano"), check.NotEmpty, "cannot be empty",
		func(s string) { got = s })
	require.NoError(t, err)
	assert.Equal(t, "hp-sotano", got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicados
// ──────────────────────────────────────────────────────────────────────────────

func TestIsPDF(t *testing.T) {
	assert.True(t, check.IsPDF("informe.pdf"))
	assert.False(t, check.IsPDF("informe.doc"))
	assert.False(t, check.IsPDF(""))
	assert.False(t, check.IsPDF("pdf"))
}

func TestIsBool(t *testing.T) {
	assert.True(t, check.IsBool("true"))
	assert.True(t, check.IsBool("false"))
	assert.False(t, check.IsBool("True"))
	assert.False(t, check.IsBool("1"))
	assert.False(t, check.IsBool(""))
}

func TestIsValidIP(t *testing.T) {
	valid := []string{
		"192.168.1.1",
		"10.0.0.1",
		"255.255.255.254",
		"1.2.3.4",
	}
	for _, ip := range valid {
		assert.True(t, check.IsValidIP(ip), "debe aceptar %s", ip)
	}

	invalid := []string{
		"",
		"no-es-una-ip",
		"256.1.1.1",
		"1.2.3",
		"1.2.3.4.5",
		"192.168.1.1 ",    // no anclada
		"x192.168.1.1",    // prefijo extraño
		"0.0.0.7",         // solo válida como origen
		"255.255.255.255", // broadcast
		"127.0.0.1",       // loopback
	}
	for _, ip := range invalid {
		assert.False(t, check.IsValidIP(ip), "debe rechazar %q", ip)
	}
}
