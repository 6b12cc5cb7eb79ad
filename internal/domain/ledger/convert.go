package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/protecfuego/gestion-api/internal/domain"
	"github.com/protecfuego/gestion-api/internal/domain/entity"
)

// RowError error de validación de un campo de una fila.
type RowError struct {
	Row        int // índice base 0 en la lista recibida
	MovementID int
	Field      string
	Value      string
	Err        error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("fila %d, %s %q: %v", e.Row+1, e.Field, e.Value, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// ValidationError agrupa todos los errores de filas que bloquean el guardado.
type ValidationError struct {
	Rows []*RowError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Rows))
	for _, r := range e.Rows {
		msgs = append(msgs, r.Error())
	}
	return "movimientos inválidos: " + strings.Join(msgs, "; ")
}

// Unwrap permite errors.Is(err, domain.ErrInvalidAmount) sobre cualquiera de las filas.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Rows))
	for _, r := range e.Rows {
		errs = append(errs, r)
	}
	return errs
}

// BuildMovements convierte movimientos ya migrados a entidades, de forma estricta:
// montos y fechas ilegibles se acumulan en un *ValidationError. Las filas vacías se
// descartan y los movimientos sin id reciben max(id)+1 en orden.
func BuildMovements(raw []RawMovement) ([]entity.Movement, error) {
	out := make([]entity.Movement, 0, len(raw))
	var rowErrs []*RowError
	seen := make(map[int]bool, len(raw))

	for i, r := range raw {
		if r.IsBlank() {
			continue
		}
		if r.Format() == FormatLegacy {
			rowErrs = append(rowErrs, &RowError{Row: i, MovementID: r.ID, Field: "monto",
				Value: displayRaw(r.Debe), Err: fmt.Errorf("%w: formato legado sin migrar", domain.ErrInvalidAmount)})
			continue
		}
		amount, err := ParseAmount(r.Monto)
		if err != nil {
			rowErrs = append(rowErrs, &RowError{Row: i, MovementID: r.ID, Field: "monto", Value: displayRaw(r.Monto), Err: domain.ErrInvalidAmount})
		}
		date, err := ParseDate(r.Fecha)
		if err != nil {
			rowErrs = append(rowErrs, &RowError{Row: i, MovementID: r.ID, Field: "fecha", Value: r.Fecha, Err: domain.ErrInvalidDate})
		}
		if r.ID > 0 {
			if seen[r.ID] {
				rowErrs = append(rowErrs, &RowError{Row: i, MovementID: r.ID, Field: "id", Value: fmt.Sprint(r.ID), Err: domain.ErrDuplicateMovementID})
			}
			seen[r.ID] = true
		}
		out = append(out, entity.Movement{
			ID:      r.ID,
			Date:    date,
			Concept: strings.TrimSpace(r.Concepto),
			Amount:  amount,
		})
	}
	if len(rowErrs) > 0 {
		return nil, &ValidationError{Rows: rowErrs}
	}
	assignMissingIDs(out)
	return out, nil
}

// LoadMovements convierte movimientos de forma tolerante (datos históricos y vista previa):
// nunca falla, pero cada valor degradado queda registrado como advertencia.
func LoadMovements(raw []RawMovement) ([]entity.Movement, []Warning) {
	out := make([]entity.Movement, 0, len(raw))
	var warns []Warning
	seen := make(map[int]bool, len(raw))

	for i, r := range raw {
		if _, err := ParseAmount(r.Monto); err != nil && !isEmptyRaw(r.Monto) {
			warns = append(warns, Warning{Row: i, MovementID: r.ID, Code: WarnUnreadableAmount,
				Message: fmt.Sprintf("monto ilegible %q, se toma 0", displayRaw(r.Monto))})
		}
		date, err := ParseDate(r.Fecha)
		if err != nil {
			warns = append(warns, Warning{Row: i, MovementID: r.ID, Code: WarnUnreadableDate,
				Message: fmt.Sprintf("fecha ilegible %q", r.Fecha)})
		}
		id := r.ID
		if id > 0 && seen[id] {
			warns = append(warns, Warning{Row: i, MovementID: id, Code: WarnReassignedID,
				Message: "id duplicado, se reasigna"})
			id = 0
		}
		if id > 0 {
			seen[id] = true
		}
		out = append(out, entity.Movement{
			ID:      id,
			Date:    date,
			Concept: strings.TrimSpace(r.Concepto),
			Amount:  ToNumber(r.Monto),
		})
	}
	assignMissingIDs(out)
	return out, warns
}

// FromMovements representación de almacenamiento (formato unificado) de las entidades.
func FromMovements(movs []entity.Movement) []RawMovement {
	out := make([]RawMovement, 0, len(movs))
	for _, m := range movs {
		out = append(out, RawMovement{
			ID:       m.ID,
			Fecha:    FormatDate(m.Date),
			Concepto: m.Concept,
			Monto:    m.Amount.String(),
		})
	}
	return out
}

// ParseDate acepta "YYYY-MM-DD" o una marca ISO-8601 completa (se conserva solo la fecha).
// La cadena vacía es una fecha sin definir (time.Time cero).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if len(s) > len(entity.DateLayout) && s[len(entity.DateLayout)] == 'T' {
		if _, err := time.Parse(time.RFC3339Nano, s); err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
		}
		s = s[:len(entity.DateLayout)]
	}
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate inverso de ParseDate; la fecha cero se representa como "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(entity.DateLayout)
}

// IsValidationError indica si err contiene errores de filas.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func assignMissingIDs(movs []entity.Movement) {
	next := NextMovementID(movs)
	for i := range movs {
		if movs[i].ID <= 0 {
			movs[i].ID = next
			next++
		}
	}
}
