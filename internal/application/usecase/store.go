package usecase

import (
	"context"

	"github.com/jhoicas/printers-api/internal/domain/repository"
)

// Store ejecuta un callback con repositorios atados a una transacción del
// almacén. Cada operación de la API corre entera dentro de un Run: si el
// callback devuelve error, nada de lo hecho queda visible.
type Store interface {
	Run(ctx context.Context, fn func(r *repository.Repos) error) error
}
