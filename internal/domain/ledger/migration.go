package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WarningCode tipo de advertencia de integridad de datos.
type WarningCode string

const (
	WarnMigrationAmbiguity WarningCode = "MIGRATION_AMBIGUITY"
	WarnUnreadableAmount   WarningCode = "UNREADABLE_AMOUNT"
	WarnUnreadableDate     WarningCode = "UNREADABLE_DATE"
	WarnReassignedID       WarningCode = "REASSIGNED_ID"
)

// Warning advertencia sobre una fila concreta. Row es el índice (base 0) en la lista original.
type Warning struct {
	Row        int
	MovementID int
	Code       WarningCode
	Message    string
}

func (w Warning) String() string {
	return fmt.Sprintf("fila %d (id %d): %s", w.Row+1, w.MovementID, w.Message)
}

// MigrateLegacyMovements convierte cada movimiento legado (debe/haber) a monto firmado y
// normaliza el monto de los ya unificados. Cada elemento se clasifica por separado, por lo
// que las listas mixtas se migran correctamente. Es pura e idempotente.
//
// Regla legada: monto = debe si debe > 0, si no -haber. Si hay tipo o número se antepone
// al concepto como "{TIPO} {numero} - {concepto}".
func MigrateLegacyMovements(movs []RawMovement) ([]RawMovement, []Warning) {
	if movs == nil {
		return nil, nil
	}
	out := make([]RawMovement, 0, len(movs))
	var warns []Warning
	for i, m := range movs {
		if m.Format() == FormatLegacy {
			migrated, ambiguous := migrateLegacy(m)
			if ambiguous {
				warns = append(warns, Warning{
					Row:        i,
					MovementID: m.ID,
					Code:       WarnMigrationAmbiguity,
					Message: fmt.Sprintf("debe (%s) y haber (%s) informados a la vez; se toma debe",
						displayRaw(m.Debe), displayRaw(m.Haber)),
				})
			}
			out = append(out, migrated)
			continue
		}
		m.Monto = normalizedText(m.Monto)
		out = append(out, m)
	}
	return out, warns
}

func migrateLegacy(m RawMovement) (RawMovement, bool) {
	debe := ToNumber(m.Debe)
	haber := ToNumber(m.Haber)

	var amount decimal.Decimal
	if debe.IsPositive() {
		amount = debe
	} else {
		amount = haber.Neg()
	}

	return RawMovement{
		ID:       m.ID,
		Fecha:    m.Fecha,
		Concepto: legacyConcept(m.Tipo, m.Numero, m.Concepto),
		Monto:    amount.String(),
	}, !debe.IsZero() && !haber.IsZero()
}

func legacyConcept(tipo, numero, concepto string) string {
	tipo = cases.Upper(language.Spanish).String(strings.TrimSpace(tipo))
	prefix := strings.TrimSpace(tipo + " " + strings.TrimSpace(numero))
	concepto = strings.TrimSpace(concepto)
	switch {
	case prefix == "":
		return concepto
	case concepto == "":
		return prefix
	default:
		return prefix + " - " + concepto
	}
}

// normalizedText devuelve la forma normalizada del monto, o su texto original si no es
// legible (la validación estricta lo reporta después). nil queda como cadena vacía.
func normalizedText(raw any) string {
	if s, ok := NormalizeAmount(raw); ok {
		return s
	}
	return displayRaw(raw)
}
