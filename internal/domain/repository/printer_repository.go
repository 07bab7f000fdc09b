package repository

import (
	"context"

	"github.com/jhoicas/printers-api/internal/domain/entity"
)

// PrinterRepository define el puerto de persistencia para Printer.
// FindByIDAndOwner es el punto único de alcance de propiedad: una búsqueda
// con dueño distinto devuelve (nil, nil), igual que un id inexistente.
type PrinterRepository interface {
	Create(ctx context.Context, p *entity.Printer) error // asigna p.ID
	FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.Printer, error)
	Update(ctx context.Context, p *entity.Printer) error
	// Delete elimina la impresora y, en cascada, sus trabajos encolados y
	// sus filas de unión con grupos.
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Printer, error)
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
}
