// Package memory implementa los repositorios en memoria (desarrollo local sin base de datos y pruebas).
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/protecfuego/gestion-api/internal/domain"
	"github.com/protecfuego/gestion-api/internal/domain/entity"
	"github.com/protecfuego/gestion-api/internal/domain/repository"
)

var _ repository.AccountStatementRepository = (*AccountStatementRepo)(nil)

// AccountStatementRepo repositorio thread-safe; guarda copias para que los llamadores
// no compartan slices de movimientos con el almacén.
type AccountStatementRepo struct {
	mu       sync.RWMutex
	byID     map[string]*entity.AccountStatement
	byNumber map[string]string // numero -> id
}

// NewAccountStatementRepository construye el repositorio vacío.
func NewAccountStatementRepository() *AccountStatementRepo {
	return &AccountStatementRepo{
		byID:     make(map[string]*entity.AccountStatement),
		byNumber: make(map[string]string),
	}
}

func (r *AccountStatementRepo) Create(_ context.Context, s *entity.AccountStatement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byNumber[s.Number]; ok {
		return domain.ErrDuplicate
	}
	if _, ok := r.byID[s.ID]; ok {
		return domain.ErrDuplicate
	}
	r.byID[s.ID] = clone(s)
	r.byNumber[s.Number] = s.ID
	return nil
}

func (r *AccountStatementRepo) GetByID(_ context.Context, id string) (*entity.AccountStatement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return clone(s), nil
}

func (r *AccountStatementRepo) List(_ context.Context, f repository.StatementFilter) ([]*entity.AccountStatement, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*entity.AccountStatement
	for _, s := range r.byID {
		if f.ClientID == "" || s.ClientID == f.ClientID {
			all = append(all, s)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].Number < all[j].Number
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	total := len(all)
	if f.Offset >= total {
		return []*entity.AccountStatement{}, total, nil
	}
	end := total
	if f.Limit > 0 && f.Offset+f.Limit < total {
		end = f.Offset + f.Limit
	}
	out := make([]*entity.AccountStatement, 0, end-f.Offset)
	for _, s := range all[f.Offset:end] {
		out = append(out, clone(s))
	}
	return out, total, nil
}

func (r *AccountStatementRepo) Update(_ context.Context, s *entity.AccountStatement, expectedVersion int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byID[s.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if cur.Version != expectedVersion {
		return domain.ErrConflict
	}
	s.Version = expectedVersion + 1
	stored := clone(s)
	stored.Number = cur.Number
	stored.CreatedAt = cur.CreatedAt
	stored.CreatedBy = cur.CreatedBy
	stored.Warnings = nil
	r.byID[s.ID] = stored
	return nil
}

func (r *AccountStatementRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.byNumber, s.Number)
	delete(r.byID, id)
	return nil
}

func clone(s *entity.AccountStatement) *entity.AccountStatement {
	c := *s
	c.Movements = append([]entity.Movement(nil), s.Movements...)
	c.Warnings = append([]string(nil), s.Warnings...)
	return &c
}
