package repository

import (
	"context"

	"github.com/jhoicas/printers-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Find* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error // asigna u.ID
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	// Delete elimina el usuario; el almacén cascada tokens, trabajos,
	// impresoras (con sus filas de unión) y grupos del usuario.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.User, error)
	Count(ctx context.Context) (int, error)
}
