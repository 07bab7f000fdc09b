package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/printers-api/internal/domain/entity"
	"github.com/jhoicas/printers-api/internal/domain/repository"
)

var _ repository.GroupRepository = (*GroupRepo)(nil)

// GroupRepo implementación del puerto GroupRepository sobre PostgreSQL.
// La relación Printer↔PGroup vive en printer_groups: una fila por par, así
// que ambos lados de la relación son siempre las mismas filas.
type GroupRepo struct {
	q Querier
}

// NewGroupRepository construye el adaptador de persistencia para grupos.
func NewGroupRepository(q Querier) *GroupRepo {
	return &GroupRepo{q: q}
}

// Create persiste un nuevo grupo y asigna su id.
func (r *GroupRepo) Create(ctx context.Context, g *entity.PGroup) error {
	query := `
		INSERT INTO pgroups (instance_id, name)
		VALUES ($1, $2)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, g.OwnerID, g.Name).Scan(&g.ID); err != nil {
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

// FindByIDAndOwner obtiene un grupo por id y dueño; (nil, nil) si no
// existe o pertenece a otro usuario (indistinguibles a propósito).
func (r *GroupRepo) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.PGroup, error) {
	query := `
		SELECT id, instance_id, name
		FROM pgroups WHERE id = $1 AND instance_id = $2`
	var g entity.PGroup
	err := r.q.QueryRow(ctx, query, id, ownerID).Scan(&g.ID, &g.OwnerID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	return &g, nil
}

// Update actualiza un grupo.
func (r *GroupRepo) Update(ctx context.Context, g *entity.PGroup) error {
	if _, err := r.q.Exec(ctx, `UPDATE pgroups SET name = $2 WHERE id = $1`, g.ID, g.Name); err != nil {
		return fmt.Errorf("update group: %w", err)
	}
	return nil
}

// Delete elimina un grupo; la cascada limpia sus filas de unión.
func (r *GroupRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM pgroups WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	return nil
}

// ListByOwner lista los grupos del usuario ordenados por id.
func (r *GroupRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.PGroup, error) {
	query := `
		SELECT id, instance_id, name
		FROM pgroups WHERE instance_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()
	var list []*entity.PGroup
	for rows.Next() {
		var g entity.PGroup
		if err := rows.Scan(&g.ID, &g.OwnerID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// CountByOwner cuenta los grupos del usuario.
func (r *GroupRepo) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM pgroups WHERE instance_id = $1`, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count groups: %w", err)
	}
	return n, nil
}

// PrinterIDs devuelve las impresoras del grupo, ordenadas por id.
func (r *GroupRepo) PrinterIDs(ctx context.Context, groupID int64) ([]int64, error) {
	return r.linkIDs(ctx,
		`SELECT printer_id FROM printer_groups WHERE group_id = $1 ORDER BY printer_id`, groupID)
}

// GroupIDsOf devuelve los grupos de la impresora, ordenados por id.
func (r *GroupRepo) GroupIDsOf(ctx context.Context, printerID int64) ([]int64, error) {
	return r.linkIDs(ctx,
		`SELECT group_id FROM printer_groups WHERE printer_id = $1 ORDER BY group_id`, printerID)
}

func (r *GroupRepo) linkIDs(ctx context.Context, query string, arg int64) ([]int64, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Link da de alta el par impresora-grupo (idempotente).
func (r *GroupRepo) Link(ctx context.Context, printerID, groupID int64) error {
	query := `
		INSERT INTO printer_groups (printer_id, group_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
	if _, err := r.q.Exec(ctx, query, printerID, groupID); err != nil {
		return fmt.Errorf("link printer-group: %w", err)
	}
	return nil
}

// Unlink da de baja el par impresora-grupo.
func (r *GroupRepo) Unlink(ctx context.Context, printerID, groupID int64) error {
	query := `DELETE FROM printer_groups WHERE printer_id = $1 AND group_id = $2`
	if _, err := r.q.Exec(ctx, query, printerID, groupID); err != nil {
		return fmt.Errorf("unlink printer-group: %w", err)
	}
	return nil
}

// DetachPrinter saca la impresora de todos sus grupos.
func (r *GroupRepo) DetachPrinter(ctx context.Context, printerID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM printer_groups WHERE printer_id = $1`, printerID); err != nil {
		return fmt.Errorf("detach printer: %w", err)
	}
	return nil
}

// DetachGroup saca el grupo de todas las impresoras.
func (r *GroupRepo) DetachGroup(ctx context.Context, groupID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM printer_groups WHERE group_id = $1`, groupID); err != nil {
		return fmt.Errorf("detach group: %w", err)
	}
	return nil
}
