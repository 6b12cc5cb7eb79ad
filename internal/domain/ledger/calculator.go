package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/protecfuego/gestion-api/internal/domain/entity"
)

// Kind clasificación de un movimiento para presentación.
type Kind string

const (
	KindCharge  Kind = "cargo"
	KindCredit  Kind = "abono"
	KindNeutral Kind = "neutro"
)

// Classify: positivo = cargo, negativo = abono, cero = neutro.
func Classify(amount decimal.Decimal) Kind {
	switch amount.Sign() {
	case 1:
		return KindCharge
	case -1:
		return KindCredit
	default:
		return KindNeutral
	}
}

// Totals sumas de cargos y de abonos (ambas no negativas).
type Totals struct {
	Charges decimal.Decimal
	Credits decimal.Decimal
}

// ComputeTotals suma los cargos y los abonos por separado. Los movimientos en cero
// no cuentan en ninguno de los dos.
func ComputeTotals(movs []entity.Movement) Totals {
	charges, credits := decimal.Zero, decimal.Zero
	for _, m := range movs {
		switch Classify(m.Amount) {
		case KindCharge:
			charges = charges.Add(m.Amount)
		case KindCredit:
			credits = credits.Sub(m.Amount)
		}
	}
	return Totals{Charges: Round2(charges), Credits: Round2(credits)}
}

// ComputeCurrentBalance saldo actual = round2(saldo anterior + Σ montos).
func ComputeCurrentBalance(prior decimal.Decimal, movs []entity.Movement) decimal.Decimal {
	return Round2(prior.Add(sumAmounts(movs)))
}

// RunningBalances saldo acumulado después de cada movimiento, en orden de presentación.
func RunningBalances(prior decimal.Decimal, movs []entity.Movement) []decimal.Decimal {
	out := make([]decimal.Decimal, len(movs))
	acc := prior
	for i, m := range movs {
		acc = acc.Add(m.Amount)
		out[i] = Round2(acc)
	}
	return out
}

// Summary cifras de conciliación de un estado de cuenta.
type Summary struct {
	PriorBalance   decimal.Decimal
	TotalCharges   decimal.Decimal
	TotalCredits   decimal.Decimal
	CurrentBalance decimal.Decimal
}

// Summarize calcula totales y saldo actual en una sola pasada de lectura.
func Summarize(prior decimal.Decimal, movs []entity.Movement) Summary {
	t := ComputeTotals(movs)
	return Summary{
		PriorBalance:   Round2(prior),
		TotalCharges:   t.Charges,
		TotalCredits:   t.Credits,
		CurrentBalance: ComputeCurrentBalance(prior, movs),
	}
}

// Recompute actualiza el saldo actual derivado del estado de cuenta.
func Recompute(s *entity.AccountStatement) Summary {
	sum := Summarize(s.PriorBalance, s.Movements)
	s.CurrentBalance = sum.CurrentBalance
	return sum
}

// NextMovementID devuelve max(id)+1, o 1 si la lista está vacía.
func NextMovementID(movs []entity.Movement) int {
	maxID := 0
	for _, m := range movs {
		if m.ID > maxID {
			maxID = m.ID
		}
	}
	return maxID + 1
}

func sumAmounts(movs []entity.Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movs {
		total = total.Add(m.Amount)
	}
	return total
}
