package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/printers-api/internal/domain/entity"
	"github.com/jhoicas/printers-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implementación del puerto JobRepository sobre PostgreSQL. La
// cola de una impresora son sus filas de jobs ordenadas por queue_pos.
type JobRepo struct {
	q Querier
}

// NewJobRepository construye el adaptador de persistencia para trabajos.
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

// Create persiste un nuevo trabajo y asigna su id.
func (r *JobRepo) Create(ctx context.Context, j *entity.Job) error {
	query := `
		INSERT INTO jobs (instance_id, printer_id, queue_pos, owner, file_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		j.OwnerID, j.PrinterID, j.QueuePos, j.Owner, j.FileName,
	).Scan(&j.ID)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// FindByIDAndOwner obtiene un trabajo por id y dueño; (nil, nil) si no
// existe o pertenece a otro usuario (indistinguibles a propósito).
func (r *JobRepo) FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Job, error) {
	query := `
		SELECT id, instance_id, printer_id, queue_pos, owner, file_name
		FROM jobs WHERE id = $1 AND instance_id = $2`
	var j entity.Job
	err := r.q.QueryRow(ctx, query, id, ownerID).Scan(
		&j.ID, &j.OwnerID, &j.PrinterID, &j.QueuePos, &j.Owner, &j.FileName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &j, nil
}

// Update actualiza un trabajo (incluida su cola y posición).
func (r *JobRepo) Update(ctx context.Context, j *entity.Job) error {
	query := `
		UPDATE jobs SET printer_id = $2, queue_pos = $3, owner = $4, file_name = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, j.ID, j.PrinterID, j.QueuePos, j.Owner, j.FileName)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// Delete elimina un trabajo.
func (r *JobRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

// ListByOwner lista los trabajos del usuario ordenados por id.
func (r *JobRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Job, error) {
	query := `
		SELECT id, instance_id, printer_id, queue_pos, owner, file_name
		FROM jobs WHERE instance_id = $1 ORDER BY id`
	return r.list(ctx, query, ownerID)
}

// ListByPrinter devuelve la cola completa de la impresora en orden.
func (r *JobRepo) ListByPrinter(ctx context.Context, printerID int64) ([]*entity.Job, error) {
	query := `
		SELECT id, instance_id, printer_id, queue_pos, owner, file_name
		FROM jobs WHERE printer_id = $1 ORDER BY queue_pos, id`
	return r.list(ctx, query, printerID)
}

func (r *JobRepo) list(ctx context.Context, query string, arg int64) ([]*entity.Job, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Job
	for rows.Next() {
		var j entity.Job
		if err := rows.Scan(&j.ID, &j.OwnerID, &j.PrinterID, &j.QueuePos, &j.Owner, &j.FileName); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}

// CountByOwner cuenta los trabajos del usuario.
func (r *JobRepo) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE instance_id = $1`, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return n, nil
}

// QueueIDs devuelve los ids de la cola de la impresora en orden.
func (r *JobRepo) QueueIDs(ctx context.Context, printerID int64) ([]int64, error) {
	query := `SELECT id FROM jobs WHERE printer_id = $1 ORDER BY queue_pos, id`
	rows, err := r.q.Query(ctx, query, printerID)
	if err != nil {
		return nil, fmt.Errorf("queue ids: %w", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan queue id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// QueueLen devuelve la longitud de la cola de la impresora.
func (r *JobRepo) QueueLen(ctx context.Context, printerID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE printer_id = $1`, printerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("queue len: %w", err)
	}
	return n, nil
}

// QueueTail devuelve la primera posición tras la mayor queue_pos de la cola.
func (r *JobRepo) QueueTail(ctx context.Context, printerID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(MAX(queue_pos) + 1, 0) FROM jobs WHERE printer_id = $1`,
		printerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("queue tail: %w", err)
	}
	return n, nil
}
