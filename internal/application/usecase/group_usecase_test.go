package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printers-api/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// addgroup
// ──────────────────────────────────────────────────────────────────────────────

func TestAddGroup_NombreObligatorio(t *testing.T) {
	e := newEnv(t)
	tok := e.newUser(t, "berta", "pass-berta")

	_, err := e.groups.Add(e.ctx, tok, dto.AddGroupRequest{})
	require.Error(t, err)
	assert.Equal(t, "field name must be present, but was missing", err.Error())

	_, err = e.groups.Add(e.ctx, tok, dto.AddGroupRequest{Name: str("")})
	require.Error(t, err)
	assert.Equal(t, "while validating name: cannot be empty", err.Error())
}

func TestAddGroup_ConImpresoras(t *testing.T) {
	e := newEnv(t)
	tok := e.newUser(t, "berta", "pass-berta")
	p1 := e.newPrinter(t, tok, "hp-sotano")
	p2 := e.newPrinter(t, tok, "epson-atico")

	v, err := e.groups.Add(e.ctx, tok, dto.AddGroupRequest{
		Name: str("planta-baja"), Printers: ids(p1, p2),
	})
	require.NoError(t, err)
	require.Len(t, v.Groups, 1)
	gid := v.Groups[0].ID

	assert.ElementsMatch(t, []int64{p1, p2}, groupView(t, v, gid).Printers)
	assert.Equal(t, []int64{gid}, printerView(t, v, p1).Groups)
	assert.Equal(t, []int64{gid}, printerView(t, v, p2).Groups)
}

// Los ids repetidos en la lista cuentan una sola vez.
func TestAddGroup_ImpresorasDuplicadas(t *testing.T) {
	e := newEnv(t)
	tok := e.newUser(t, "berta", "pass-berta")
	p1 := e.newPrinter(t, tok, "hp-sotano")

	v, err := e.groups.Add(e.ctx, tok, dto.AddGroupRequest{
		Name: str("planta-baja"), Printers: ids(p1, p1, p1),
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{p1}, groupView(t, v, v.Groups[0].ID).Printers)
}

// ──────────────────────────────────────────────────────────────────────────────
// setgroup
// ──────────────────────────────────────────────────────────────────────────────

// name es obligatorio también en la actualización, a diferencia del resto
// de set*: así se comporta el API al que este sirve de reemplazo.
func TestSetGroup_NombreObligatorioTambienAlActualizar(t *testing.T) {
	e := newEnv(t)
	tok := e.newUser(t, "berta", "pass-berta")
	gid := e.newGroup(t, tok, "planta-baja")

	_, err := e.groups.Set(e.ctx, tok, dto.SetGroupRequest{ID: &gid})
	require.Error(t, err)
	assert.Equal(t, "field name must be present, but was missing", err.Error())
}

func TestSetGroup_ReconciliaImpresoras(t *testing.T) {
	e := newEnv(t)
	tok := e.newUser(t, "berta", "pass-berta")
	p1 := e.newPrinter(t, tok, "hp-sotano")
	p2 := e.newPrinter(t, tok, "epson-atico")
	p3 := e.newPrinter(t, tok, "brother-hall")
	gid := e.newGroup(t, tok, "planta-baja")

	_, err := e.groups.Set(e.ctx, tok, dto.SetGroupRequest{
		ID: &gid, Name: str("planta-baja"), Printers: ids(p1, p2),
	})
	require.NoError(t, err)

	v, err := e.groups.Set(e.ctx, tok, dto.SetGroupRequest{
		ID: &gid, Name: str("planta-baja"), Printers: ids(p2, p3),
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []int64{p2, p3}, groupView(t, v, gid).Printers)
	assert.Empty(t, printerView(t, v, p1).Groups, "p1 salió del grupo por reconciliación")
	assert.Equal(t, []int64{gid}, printerView(t, v, p3).Groups)
}

// Sin printers en la petición, la pertenencia actual no se toca.
func TestSetGroup_SinPrintersNoTocaPertenencia(t *testing.T) {
	e := newEnv(t)
	tok := e.newUser(t, "berta", "pass-berta")
	p1 := e.newPrinter(t, tok, "hp-sotano")
	gid := e.newGroup(t, tok, "planta-baja")
	_, err := e.groups.Set(e.ctx, tok, dto.SetGroupRequest{
		ID: &gid, Name: str("planta-baja"), Printers: ids(p1),
	})
	require.NoError(t, err)

	v, err := e.groups.Set(e.ctx, tok, dto.SetGroupRequest{ID: &gid, Name: str("renombrado")})
	require.NoError(t, err)

	g := groupView(t, v, gid)
	assert.Equal(t, "renombrado", g.Name)
	assert.Equal(t, []int64{p1}, g.Printers)
}

// ──────────────────────────────────────────────────────────────────────────────
// rmgroup
// ──────────────────────────────────────────────────────────────────────────────

func TestRmGroup_ImpresorasSobreviven(t *testing.T) {
	e := newEnv(t)
	tok := e.newUser(t, "berta", "pass-berta")
	p1 := e.newPrinter(t, tok, "hp-sotano")
	gid := e.newGroup(t, tok, "planta-baja")
	_, err := e.groups.Set(e.ctx, tok, dto.SetGroupRequest{
		ID: &gid, Name: str("planta-baja"), Printers: ids(p1),
	})
	require.NoError(t, err)

	v, err := e.groups.Remove(e.ctx, tok, dto.IDRequest{ID: &gid})
	require.NoError(t, err)

	assert.Empty(t, v.Groups)
	require.Len(t, v.Printers, 1)
	assert.Empty(t, printerView(t, v, p1).Groups, "la impresora pierde la referencia al grupo")
}

func TestRmGroup_AjenoInvisible(t *testing.T) {
	e := newEnv(t)
	tokA := e.newUser(t, "ana", "pass-ana")
	gid := e.newGroup(t, tokA, "grupo-de-ana")

	tokB := e.newUser(t, "bruno", "pass-bruno")
	_, err := e.groups.Remove(e.ctx, tokB, dto.IDRequest{ID: &gid})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such group")
}
