package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/printers-api/internal/domain/entity"
	"github.com/jhoicas/printers-api/internal/domain/repository"
)

var _ repository.TokenRepository = (*TokenRepo)(nil)

// TokenRepo implementación del puerto TokenRepository sobre PostgreSQL.
type TokenRepo struct {
	q Querier
}

// NewTokenRepository construye el adaptador de persistencia para tokens.
func NewTokenRepository(q Querier) *TokenRepo {
	return &TokenRepo{q: q}
}

// Create persiste un token de sesión y asigna su id.
func (r *TokenRepo) Create(ctx context.Context, t *entity.Token) error {
	query := `INSERT INTO tokens (key, user_id) VALUES ($1, $2) RETURNING id`
	if err := r.q.QueryRow(ctx, query, t.Key, t.UserID).Scan(&t.ID); err != nil {
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

// FindByKey busca una sesión por su clave; (nil, nil) si no existe.
func (r *TokenRepo) FindByKey(ctx context.Context, key string) (*entity.Token, error) {
	query := `SELECT id, key, user_id FROM tokens WHERE key = $1`
	var t entity.Token
	err := r.q.QueryRow(ctx, query, key).Scan(&t.ID, &t.Key, &t.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get token by key: %w", err)
	}
	return &t, nil
}

// DeleteByKey elimina la sesión con esa clave.
func (r *TokenRepo) DeleteByKey(ctx context.Context, key string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM tokens WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

// CountByUser cuenta las sesiones vivas de un usuario.
func (r *TokenRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM tokens WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tokens: %w", err)
	}
	return n, nil
}
