package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printers-api/internal/application/dto"
	"github.com/jhoicas/printers-api/internal/application/usecase"
	"github.com/jhoicas/printers-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: entorno completo sobre el almacén en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	adminUser = "admin"
	adminPass = "admin-secreta"
	masterKey = "llave-maestra-de-test"
)

type env struct {
	ctx      context.Context
	store    *memory.Store
	auth     *usecase.AuthUseCase
	users    *usecase.UserUseCase
	printers *usecase.PrinterUseCase
	groups   *usecase.GroupUseCase
	jobs     *usecase.JobUseCase
}

// newEnv construye el entorno de test con el administrador inicial creado.
func newEnv(t *testing.T) *env {
	t.Helper()
	st := memory.NewStore()
	e := &env{
		ctx:      context.Background(),
		store:    st,
		auth:     usecase.NewAuthUseCase(st, masterKey),
		users:    usecase.NewUserUseCase(st),
		printers: usecase.NewPrinterUseCase(st),
		groups:   usecase.NewGroupUseCase(st),
		jobs:     usecase.NewJobUseCase(st),
	}
	created, err := e.auth.EnsureAdmin(e.ctx, adminUser, adminPass)
	require.NoError(t, err)
	require.True(t, created, "el almacén vacío debe arrancar con el administrador inicial")
	return e
}

// login abre sesión y devuelve la vista del usuario.
func (e *env) login(t *testing.T, username, password string) *dto.UserView {
	t.Helper()
	v, err := e.auth.Login(e.ctx, dto.LoginRequest{Username: str(username), Password: str(password)})
	require.NoError(t, err)
	require.NotEmpty(t, v.Token)
	return v
}

// adminToken abre una sesión de administrador.
func (e *env) adminToken(t *testing.T) string {
	t.Helper()
	return e.login(t, adminUser, adminPass).Token
}

// newUser da de alta un usuario normal (vía admin) y devuelve su token.
func (e *env) newUser(t *testing.T, username, password string) string {
	t.Helper()
	admin := e.adminToken(t)
	_, err := e.users.Add(e.ctx, admin, dto.AddUserRequest{
		Username: str(username), Password: str(password),
	})
	require.NoError(t, err)
	return e.login(t, username, password).Token
}

// newPrinter da de alta una impresora con solo alias y devuelve su id.
func (e *env) newPrinter(t *testing.T, token, alias string) int64 {
	t.Helper()
	v, err := e.printers.Add(e.ctx, token, dto.AddPrinterRequest{Alias: str(alias)})
	require.NoError(t, err)
	for _, p := range v.Printers {
		if p.Alias == alias {
			return p.ID
		}
	}
	t.Fatalf("la impresora %q no aparece en la vista", alias)
	return 0
}

// newGroup da de alta un grupo vacío y devuelve su id.
func (e *env) newGroup(t *testing.T, token, name string) int64 {
	t.Helper()
	v, err := e.groups.Add(e.ctx, token, dto.AddGroupRequest{Name: str(name)})
	require.NoError(t, err)
	for _, g := range v.Groups {
		if g.Name == name {
			return g.ID
		}
	}
	t.Fatalf("el grupo %q no aparece en la vista", name)
	return 0
}

// newJob encola un trabajo PDF en la impresora y devuelve su id.
func (e *env) newJob(t *testing.T, token string, printerID int64, fileName string) int64 {
	t.Helper()
	v, err := e.jobs.Add(e.ctx, token, dto.AddJobRequest{
		FileName: str(fileName), Printer: &printerID, Owner: str("tester"),
	})
	require.NoError(t, err)
	var found int64
	for _, j := range v.Jobs {
		if j.FileName == fileName && j.ID > found {
			found = j.ID
		}
	}
	require.NotZero(t, found, "el trabajo %q no aparece en la vista", fileName)
	return found
}

// printerView localiza una impresora en la vista por id.
func printerView(t *testing.T, v *dto.UserView, id int64) dto.PrinterView {
	t.Helper()
	for _, p := range v.Printers {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("impresora %d ausente de la vista", id)
	return dto.PrinterView{}
}

// groupView localiza un grupo en la vista por id.
func groupView(t *testing.T, v *dto.UserView, id int64) dto.GroupView {
	t.Helper()
	for _, g := range v.Groups {
		if g.ID == id {
			return g
		}
	}
	t.Fatalf("grupo %d ausente de la vista", id)
	return dto.GroupView{}
}

func str(s string) *string { return &s }
func i64(n int64) *int64   { return &n }

func ids(ns ...int64) *[]int64 {
	v := append([]int64{}, ns...)
	return &v
}
