package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printers-api/internal/application/dto"
	"github.com/jhoicas/printers-api/internal/domain"
	"github.com/jhoicas/printers-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	e := newEnv(t)
	v := e.login(t, adminUser, adminPass)

	assert.Equal(t, adminUser, v.Username)
	assert.Contains(t, v.Roles, entity.RoleAdmin)
	assert.Empty(t, v.Printers)
	assert.Empty(t, v.Jobs)
	assert.Empty(t, v.Groups)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	e := newEnv(t)
	_, err := e.auth.Login(e.ctx, dto.LoginRequest{
		Username: str(adminUser), Password: str("otra-cosa"),
	})
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}

// Usuario inexistente y password incorrecta fallan con el mismo error: la
// respuesta no debe delatar qué cuentas existen.
func TestLogin_UsuarioInexistente_MismoError(t *testing.T) {
	e := newEnv(t)
	_, err := e.auth.Login(e.ctx, dto.LoginRequest{
		Username: str("nadie"), Password: str("da igual"),
	})
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestLogin_CamposAusentes(t *testing.T) {
	e := newEnv(t)

	_, err := e.auth.Login(e.ctx, dto.LoginRequest{Password: str("x")})
	require.Error(t, err)
	assert.Equal(t, "field username must be present, but was missing", err.Error())

	_, err = e.auth.Login(e.ctx, dto.LoginRequest{Username: str(adminUser)})
	require.Error(t, err)
	assert.Equal(t, "field password must be present, but was missing", err.Error())
}

// La clave maestra abre sesión como cualquier usuario habilitado sin conocer
// su password real.
func TestLogin_ClaveMaestra(t *testing.T) {
	e := newEnv(t)
	e.newUser(t, "carla", "su-password")

	v, err := e.auth.Login(e.ctx, dto.LoginRequest{
		Username: str("carla"), Password: str(masterKey),
	})
	require.NoError(t, err)
	assert.Equal(t, "carla", v.Username)
}

// Un usuario deshabilitado no puede entrar, ni siquiera con la clave maestra.
func TestLogin_UsuarioDeshabilitado(t *testing.T) {
	e := newEnv(t)
	e.newUser(t, "dario", "su-password")
	admin := e.adminToken(t)

	list, err := e.users.List(e.ctx, admin)
	require.NoError(t, err)
	var darioID int64
	for _, u := range list {
		if u.Username == "dario" {
			darioID = u.ID
		}
	}
	require.NotZero(t, darioID)

	_, err = e.users.Set(e.ctx, admin, dto.SetUserRequest{ID: &darioID, Enabled: str("false")})
	require.NoError(t, err)

	_, err = e.auth.Login(e.ctx, dto.LoginRequest{Username: str("dario"), Password: str("su-password")})
	assert.ErrorIs(t, err, domain.ErrAuthFailed)

	_, err = e.auth.Login(e.ctx, dto.LoginRequest{Username: str("dario"), Password: str(masterKey)})
	assert.ErrorIs(t, err, domain.ErrAuthFailed,
		"la clave maestra no debe saltarse la deshabilitación")
}

// Cada login crea una sesión independiente.
func TestLogin_SesionesIndependientes(t *testing.T) {
	e := newEnv(t)
	t1 := e.adminToken(t)
	t2 := e.adminToken(t)
	assert.NotEqual(t, t1, t2)

	require.NoError(t, e.auth.Logout(e.ctx, t1))

	_, err := e.auth.List(e.ctx, t2)
	assert.NoError(t, err, "cerrar una sesión no debe afectar a las demás")
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout y list
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_InvalidaElToken(t *testing.T) {
	e := newEnv(t)
	tok := e.adminToken(t)

	require.NoError(t, e.auth.Logout(e.ctx, tok))

	_, err := e.auth.List(e.ctx, tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	err = e.auth.Logout(e.ctx, tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken, "un logout repetido debe fallar")
}

func TestList_TokenDesconocido(t *testing.T) {
	e := newEnv(t)
	_, err := e.auth.List(e.ctx, "token-que-no-existe")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	var vErr *domain.ValidationError
	assert.False(t, errors.As(err, &vErr), "no es un error de validación de campo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Administrador inicial
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureAdmin_NoRecreaSiHayUsuarios(t *testing.T) {
	e := newEnv(t)
	created, err := e.auth.EnsureAdmin(e.ctx, "otro-admin", "otra-pass")
	require.NoError(t, err)
	assert.False(t, created, "con usuarios existentes no debe crearse nada")

	_, err = e.auth.Login(e.ctx, dto.LoginRequest{
		Username: str("otro-admin"), Password: str("otra-pass"),
	})
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}
