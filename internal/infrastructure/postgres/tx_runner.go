package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/printers-api/internal/application/usecase"
	"github.com/jhoicas/printers-api/internal/domain/repository"
)

var _ usecase.Store = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos atados a la tx y
// hace Commit o Rollback. Cada operación de la API pasa entera por aquí.
func (r *TxRunner) Run(ctx context.Context, fn func(repos *repository.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := &repository.Repos{
		Users:    NewUserRepository(tx),
		Tokens:   NewTokenRepository(tx),
		Printers: NewPrinterRepository(tx),
		Groups:   NewGroupRepository(tx),
		Jobs:     NewJobRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
