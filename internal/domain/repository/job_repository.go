package repository

import (
	"context"

	"github.com/jhoicas/printers-api/internal/domain/entity"
)

// JobRepository define el puerto de persistencia para Job. La cola de una
// impresora es la lista de trabajos con ese printer_id ordenada por
// queue_pos (y por id como desempate).
type JobRepository interface {
	Create(ctx context.Context, j *entity.Job) error // asigna j.ID
	FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Job, error)
	Update(ctx context.Context, j *entity.Job) error
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Job, error)
	CountByOwner(ctx context.Context, ownerID int64) (int, error)

	// ListByPrinter devuelve la cola completa en orden.
	ListByPrinter(ctx context.Context, printerID int64) ([]*entity.Job, error)
	// QueueIDs devuelve solo los ids de la cola en orden.
	QueueIDs(ctx context.Context, printerID int64) ([]int64, error)
	QueueLen(ctx context.Context, printerID int64) (int, error)
	// QueueTail devuelve la posición libre al final de la cola: una más que
	// la mayor queue_pos existente. Las posiciones pueden tener huecos tras
	// borrados, así que no coincide necesariamente con QueueLen.
	QueueTail(ctx context.Context, printerID int64) (int, error)
}
