package repository

import (
	"context"

	"github.com/jhoicas/printers-api/internal/domain/entity"
)

// TokenRepository define el puerto de persistencia para Token.
type TokenRepository interface {
	Create(ctx context.Context, t *entity.Token) error // asigna t.ID
	// FindByKey devuelve (nil, nil) si ninguna sesión tiene esa clave.
	FindByKey(ctx context.Context, key string) (*entity.Token, error)
	DeleteByKey(ctx context.Context, key string) error
	CountByUser(ctx context.Context, userID int64) (int, error)
}
