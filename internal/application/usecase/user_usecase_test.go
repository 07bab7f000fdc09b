package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printers-api/internal/application/dto"
	"github.com/jhoicas/printers-api/internal/domain"
)

func findUser(t *testing.T, list []dto.AdminUserView, username string) dto.AdminUserView {
	t.Helper()
	for _, u := range list {
		if u.Username == username {
			return u
		}
	}
	t.Fatalf("usuario %q ausente del listado", username)
	return dto.AdminUserView{}
}

// ──────────────────────────────────────────────────────────────────────────────
// adduser / ulist
// ──────────────────────────────────────────────────────────────────────────────

func TestAddUser_RequiereAdmin(t *testing.T) {
	e := newEnv(t)
	tok := e.newUser(t, "berta", "pass-berta")

	_, err := e.users.Add(e.ctx, tok, dto.AddUserRequest{
		Username: str("colado"), Password: str("x"),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "only admins can do this", err.Error())
}

func TestAddUser_UsernameDuplicado(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken(t)
	e.newUser(t, "berta", "pass-berta")

	_, err := e.users.Add(e.ctx, admin, dto.AddUserRequest{
		Username: str("berta"), Password: str("otra"),
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestAddUser_DevuelveListadoConContadores(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken(t)

	list, err := e.users.Add(e.ctx, admin, dto.AddUserRequest{
		Username: str("berta"), Password: str("pass-berta"),
	})
	require.NoError(t, err)
	require.Len(t, list, 2)

	berta := findUser(t, list, "berta")
	assert.True(t, berta.Enabled)
	assert.Zero(t, berta.TokenCount)
	assert.Zero(t, berta.PrinterCount)

	adm := findUser(t, list, adminUser)
	assert.Equal(t, 1, adm.TokenCount, "la sesión del propio admin cuenta")
}

// ──────────────────────────────────────────────────────────────────────────────
// setuser
// ──────────────────────────────────────────────────────────────────────────────

func TestSetUser_EnabledInvalido(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken(t)
	list, err := e.users.List(e.ctx, admin)
	require.NoError(t, err)
	id := list[0].ID

	_, err = e.users.Set(e.ctx, admin, dto.SetUserRequest{ID: &id, Enabled: str("maybe")})
	require.Error(t, err)
	assert.Equal(t, "while validating enabled: must be 'true' or 'false'", err.Error())
}

func TestSetUser_ActualizacionParcial(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken(t)
	e.newUser(t, "berta", "pass-berta")

	list, err := e.users.List(e.ctx, admin)
	require.NoError(t, err)
	berta := findUser(t, list, "berta")

	// Solo enabled: el username no debe cambiar.
	list, err = e.users.Set(e.ctx, admin, dto.SetUserRequest{ID: &berta.ID, Enabled: str("false")})
	require.NoError(t, err)
	updated := findUser(t, list, "berta")
	assert.False(t, updated.Enabled)

	// Cambio de password: la vieja deja de valer.
	_, err = e.users.Set(e.ctx, admin, dto.SetUserRequest{
		ID: &berta.ID, Enabled: str("true"), Password: str("nueva-pass"),
	})
	require.NoError(t, err)

	_, err = e.auth.Login(e.ctx, dto.LoginRequest{Username: str("berta"), Password: str("pass-berta")})
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
	e.login(t, "berta", "nueva-pass")
}

func TestSetUser_IdInexistente(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken(t)

	_, err := e.users.Set(e.ctx, admin, dto.SetUserRequest{ID: i64(9999), Enabled: str("true")})
	require.Error(t, err)
	assert.Equal(t, "no such user: 9999", err.Error())
}

func TestSetUser_IdAusente(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken(t)

	_, err := e.users.Set(e.ctx, admin, dto.SetUserRequest{Enabled: str("true")})
	require.Error(t, err)
	assert.Equal(t, "field id must be present, but was missing", err.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// rmuser
// ──────────────────────────────────────────────────────────────────────────────

// Eliminar un usuario arrastra todo lo suyo: sesiones, impresoras, trabajos
// y grupos desaparecen con él.
func TestRmUser_CascadaCompleta(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken(t)
	tok := e.newUser(t, "berta", "pass-berta")

	pid := e.newPrinter(t, tok, "hp-pasillo")
	gid := e.newGroup(t, tok, "planta-baja")
	_, err := e.printers.Set(e.ctx, tok, dto.SetPrinterRequest{ID: &pid, Groups: ids(gid)})
	require.NoError(t, err)
	e.newJob(t, tok, pid, "acta.pdf")

	list, err := e.users.List(e.ctx, admin)
	require.NoError(t, err)
	berta := findUser(t, list, "berta")
	require.Equal(t, 1, berta.PrinterCount)
	require.Equal(t, 1, berta.JobCount)
	require.Equal(t, 1, berta.GroupCount)

	list, err = e.users.Remove(e.ctx, admin, dto.IDRequest{ID: &berta.ID})
	require.NoError(t, err)
	for _, u := range list {
		assert.NotEqual(t, "berta", u.Username)
	}

	// Su sesión viva queda huérfana y deja de valer.
	_, err = e.auth.List(e.ctx, tok)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestRmUser_RequiereAdmin(t *testing.T) {
	e := newEnv(t)
	tok := e.newUser(t, "berta", "pass-berta")

	_, err := e.users.Remove(e.ctx, tok, dto.IDRequest{ID: i64(1)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUList_RequiereAdmin(t *testing.T) {
	e := newEnv(t)
	tok := e.newUser(t, "berta", "pass-berta")

	_, err := e.users.List(e.ctx, tok)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
