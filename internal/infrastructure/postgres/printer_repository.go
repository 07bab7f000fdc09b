package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/printers-api/internal/domain/entity"
	"github.com/jhoicas/printers-api/internal/domain/repository"
)

var _ repository.PrinterRepository = (*PrinterRepo)(nil)

// PrinterRepo implementación del puerto PrinterRepository sobre PostgreSQL.
type PrinterRepo struct {
	q Querier
}

// NewPrinterRepository construye el adaptador de persistencia para impresoras.
func NewPrinterRepository(q Querier) *PrinterRepo {
	return &PrinterRepo{q: q}
}

// Create persiste una nueva impresora y asigna su id.
func (r *PrinterRepo) Create(ctx context.Context, p *entity.Printer) error {
	query := `
		INSERT INTO printers (instance_id, alias, model, location, ip, ink, paper)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.OwnerID, p.Alias, p.Model, p.Location, p.IP, p.Ink, p.Paper,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert printer: %w", err)
	}
	return nil
}

// FindByIDAndOwner obtiene una impresora por id y dueño. Devuelve
// (nil, nil) tanto si el id no existe como si pertenece a otro usuario:
// el llamante no debe poder distinguir ambos casos.
func (r *PrinterRepo) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Printer, error) {
	query := `
		SELECT id, instance_id, alias, model, location, ip, ink, paper
		FROM printers WHERE id = $1 AND instance_id = $2`
	var p entity.Printer
	err := r.q.QueryRow(ctx, query, id, ownerID).Scan(
		&p.ID, &p.OwnerID, &p.Alias, &p.Model, &p.Location, &p.IP, &p.Ink, &p.Paper,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get printer: %w", err)
	}
	return &p, nil
}

// Update actualiza una impresora.
func (r *PrinterRepo) Update(ctx context.Context, p *entity.Printer) error {
	query := `
		UPDATE printers SET alias = $2, model = $3, location = $4, ip = $5, ink = $6, paper = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Alias, p.Model, p.Location, p.IP, p.Ink, p.Paper,
	)
	if err != nil {
		return fmt.Errorf("update printer: %w", err)
	}
	return nil
}

// Delete elimina una impresora; las cascadas arrastran su cola de trabajos
// y sus filas de unión con grupos.
func (r *PrinterRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM printers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete printer: %w", err)
	}
	return nil
}

// ListByOwner lista las impresoras del usuario ordenadas por id.
func (r *PrinterRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Printer, error) {
	query := `
		SELECT id, instance_id, alias, model, location, ip, ink, paper
		FROM printers WHERE instance_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list printers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Printer
	for rows.Next() {
		var p entity.Printer
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Alias, &p.Model, &p.Location, &p.IP, &p.Ink, &p.Paper); err != nil {
			return nil, fmt.Errorf("scan printer: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountByOwner cuenta las impresoras del usuario.
func (r *PrinterRepo) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM printers WHERE instance_id = $1`, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count printers: %w", err)
	}
	return n, nil
}
