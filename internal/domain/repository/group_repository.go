package repository

import (
	"context"

	"github.com/jhoicas/printers-api/internal/domain/entity"
)

// GroupRepository define el puerto de persistencia para PGroup y es el único
// dueño de la relación muchos-a-muchos Printer↔PGroup: cada par es una fila
// de la tabla de unión, de modo que ambos lados de la relación son siempre
// la misma información y la simetría no puede divergir.
type GroupRepository interface {
	Create(ctx context.Context, g *entity.PGroup) error // asigna g.ID
	FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*entity.PGroup, error)
	Update(ctx context.Context, g *entity.PGroup) error
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.PGroup, error)
	CountByOwner(ctx context.Context, ownerID int64) (int, error)

	// Lado grupo→impresoras de la relación, ordenado por id de impresora.
	PrinterIDs(ctx context.Context, groupID int64) ([]int64, error)
	// Lado impresora→grupos de la relación, ordenado por id de grupo.
	GroupIDsOf(ctx context.Context, printerID int64) ([]int64, error)
	// Link añade el par (idempotente); Unlink lo elimina.
	Link(ctx context.Context, printerID, groupID int64) error
	Unlink(ctx context.Context, printerID, groupID int64) error
	// DetachPrinter saca la impresora de todos sus grupos (rmprinter).
	DetachPrinter(ctx context.Context, printerID int64) error
	// DetachGroup saca el grupo de todas las impresoras (rmgroup).
	DetachGroup(ctx context.Context, groupID int64) error
}
