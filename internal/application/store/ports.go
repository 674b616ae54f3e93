package store

import (
	"context"

	"github.com/jhoicas/golden-store/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con un StoreRepository atado a ella.
// Si fn devuelve error se hace rollback; si no, commit.
type TxRunner interface {
	RunStore(ctx context.Context, fn func(repo repository.StoreRepository) error) error
}
