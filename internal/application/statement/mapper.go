package statement

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/protecfuego/gestion-api/internal/application/dto"
	"github.com/protecfuego/gestion-api/internal/domain"
	"github.com/protecfuego/gestion-api/internal/domain/entity"
	"github.com/protecfuego/gestion-api/internal/domain/ledger"
)

func toResponse(s *entity.AccountStatement) *dto.StatementResponse {
	sum := ledger.Summarize(s.PriorBalance, s.Movements)
	return &dto.StatementResponse{
		ID:            s.ID,
		Numero:        s.Number,
		ClienteID:     s.ClientID,
		ClienteNombre: s.ClientName,
		Periodo:       toPeriodDTO(s.Period),
		SaldoAnterior: sum.PriorBalance,
		Movimientos:   toMovementResponses(s.PriorBalance, s.Movements),
		Observaciones: s.Observations,
		SaldoActual:   sum.CurrentBalance,
		TotalCargos:   sum.TotalCharges,
		TotalAbonos:   sum.TotalCredits,
		Version:       s.Version,
		Advertencias:  s.Warnings,
		CreadoPor:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toMovementResponses(prior decimal.Decimal, movs []entity.Movement) []dto.MovementResponse {
	running := ledger.RunningBalances(prior, movs)
	out := make([]dto.MovementResponse, 0, len(movs))
	for i, m := range movs {
		out = append(out, dto.MovementResponse{
			ID:             m.ID,
			Fecha:          ledger.FormatDate(m.Date),
			Concepto:       m.Concept,
			Monto:          m.Amount,
			TipoMovimiento: ledger.Classify(m.Amount),
			SaldoAcumulado: running[i],
		})
	}
	return out
}

func toPeriodDTO(p entity.Period) dto.PeriodDTO {
	return dto.PeriodDTO{Desde: ledger.FormatDate(p.From), Hasta: ledger.FormatDate(p.To)}
}

func parsePeriod(p dto.PeriodDTO) (entity.Period, error) {
	from, err := ledger.ParseDate(p.Desde)
	if err != nil {
		return entity.Period{}, err
	}
	to, err := ledger.ParseDate(p.Hasta)
	if err != nil {
		return entity.Period{}, err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return entity.Period{}, errors.Join(domain.ErrInvalidDate, errors.New("periodo: hasta es anterior a desde"))
	}
	return entity.Period{From: from, To: to}, nil
}

// parsePriorBalance: vacío = 0; ilegible = domain.ErrInvalidAmount.
func parsePriorBalance(raw any) (decimal.Decimal, error) {
	if s, ok := raw.(string); raw == nil || (ok && strings.TrimSpace(s) == "") {
		return decimal.Zero, nil
	}
	return ledger.ParseAmount(raw)
}

// RowErrors traduce un *ledger.ValidationError a DTOs (fila base 1).
func RowErrors(err error) []dto.RowErrorDTO {
	ve, ok := ledger.IsValidationError(err)
	if !ok {
		return nil
	}
	out := make([]dto.RowErrorDTO, 0, len(ve.Rows))
	for _, r := range ve.Rows {
		out = append(out, dto.RowErrorDTO{
			Fila:    r.Row + 1,
			ID:      r.MovementID,
			Campo:   r.Field,
			Valor:   r.Value,
			Mensaje: r.Err.Error(),
		})
	}
	return out
}

func warningStrings(ws []ledger.Warning) []string {
	if len(ws) == 0 {
		return nil
	}
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.String())
	}
	return out
}
