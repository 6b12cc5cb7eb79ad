package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/protecfuego/gestion-api/internal/domain"
	"github.com/protecfuego/gestion-api/internal/domain/entity"
	"github.com/protecfuego/gestion-api/internal/domain/repository"
)

var _ repository.AccountStatementRepository = (*AccountStatementRepo)(nil)

const statementColumns = `id, numero, cliente_id, cliente_nombre, periodo_desde, periodo_hasta,
	saldo_anterior, movimientos, saldo_actual, observaciones, version, created_by, created_at, updated_at`

// AccountStatementRepo guarda cada estado de cuenta como una fila con los movimientos en JSONB.
type AccountStatementRepo struct {
	q Querier
}

// NewAccountStatementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountStatementRepository(q Querier) *AccountStatementRepo {
	return &AccountStatementRepo{q: q}
}

// Create persiste un nuevo estado de cuenta.
func (r *AccountStatementRepo) Create(ctx context.Context, s *entity.AccountStatement) error {
	movs, err := encodeMovements(s.Movements)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO estados_cuenta (` + statementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(ctx, query,
		s.ID, s.Number, s.ClientID, s.ClientName, nullDate(s.Period.From), nullDate(s.Period.To),
		s.PriorBalance, movs, s.CurrentBalance, s.Observations, s.Version, s.CreatedBy,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: numero %s", domain.ErrDuplicate, s.Number)
		}
		return fmt.Errorf("insert estado de cuenta: %w", err)
	}
	return nil
}

// GetByID obtiene un estado de cuenta; nil, nil si no existe.
func (r *AccountStatementRepo) GetByID(ctx context.Context, id string) (*entity.AccountStatement, error) {
	query := `SELECT ` + statementColumns + ` FROM estados_cuenta WHERE id = $1`
	s, err := scanStatement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get estado de cuenta: %w", err)
	}
	return s, nil
}

// List pagina por fecha de creación descendente, opcionalmente filtrando por cliente.
func (r *AccountStatementRepo) List(ctx context.Context, f repository.StatementFilter) ([]*entity.AccountStatement, int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM estados_cuenta WHERE ($1::text = '' OR cliente_id = $1)`, f.ClientID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count estados de cuenta: %w", err)
	}

	query := `
		SELECT ` + statementColumns + `
		FROM estados_cuenta
		WHERE ($1::text = '' OR cliente_id = $1)
		ORDER BY created_at DESC, numero
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, f.ClientID, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list estados de cuenta: %w", err)
	}
	defer rows.Close()

	var list []*entity.AccountStatement
	for rows.Next() {
		s, err := scanStatement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan estado de cuenta: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list estados de cuenta: %w", err)
	}
	return list, total, nil
}

// Update guarda si la versión almacenada coincide con expectedVersion e incrementa s.Version.
// numero, created_by y created_at no se tocan.
func (r *AccountStatementRepo) Update(ctx context.Context, s *entity.AccountStatement, expectedVersion int) error {
	movs, err := encodeMovements(s.Movements)
	if err != nil {
		return err
	}
	query := `
		UPDATE estados_cuenta SET
			cliente_nombre = $2, periodo_desde = $3, periodo_hasta = $4,
			saldo_anterior = $5, movimientos = $6, saldo_actual = $7,
			observaciones = $8, version = version + 1, updated_at = $9
		WHERE id = $1 AND version = $10`
	tag, err := r.q.Exec(ctx, query,
		s.ID, s.ClientName, nullDate(s.Period.From), nullDate(s.Period.To),
		s.PriorBalance, movs, s.CurrentBalance, s.Observations, s.UpdatedAt, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("update estado de cuenta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM estados_cuenta WHERE id = $1)`, s.ID).Scan(&exists); err != nil {
			return fmt.Errorf("update estado de cuenta: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	s.Version = expectedVersion + 1
	return nil
}

// Delete elimina un estado de cuenta.
func (r *AccountStatementRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM estados_cuenta WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete estado de cuenta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanStatement(row pgx.Row) (*entity.AccountStatement, error) {
	var (
		s        entity.AccountStatement
		from, to *time.Time
		movsJSON []byte
	)
	err := row.Scan(
		&s.ID, &s.Number, &s.ClientID, &s.ClientName, &from, &to,
		&s.PriorBalance, &movsJSON, &s.CurrentBalance, &s.Observations, &s.Version,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Period = entity.Period{From: fromNullDate(from), To: fromNullDate(to)}
	s.Movements, s.Warnings, err = decodeMovements(movsJSON)
	if err != nil {
		return nil, fmt.Errorf("estado %s: %w", s.ID, err)
	}
	return &s, nil
}
