package repository

import (
	"context"

	"github.com/protecfuego/gestion-api/internal/domain/entity"
)

// StatementFilter filtros de listado de estados de cuenta.
type StatementFilter struct {
	ClientID string // vacío = todos
	Limit    int
	Offset   int
}

// AccountStatementRepository define el puerto de persistencia para estados de cuenta.
// GetByID devuelve (nil, nil) si no existe.
type AccountStatementRepository interface {
	Create(ctx context.Context, s *entity.AccountStatement) error
	GetByID(ctx context.Context, id string) (*entity.AccountStatement, error)
	List(ctx context.Context, f StatementFilter) ([]*entity.AccountStatement, int, error)
	// Update guarda solo si la versión almacenada es expectedVersion (domain.ErrConflict si no)
	// y deja s.Version en la nueva versión.
	Update(ctx context.Context, s *entity.AccountStatement, expectedVersion int) error
	Delete(ctx context.Context, id string) error
}
