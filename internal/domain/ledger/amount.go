package ledger

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/protecfuego/gestion-api/internal/domain"
)

var (
	// nonAmountChars todo lo que no sea dígito, punto o signo menos.
	nonAmountChars = regexp.MustCompile(`[^0-9.\-]`)
	// amountPattern signo opcional, dígitos, a lo sumo un punto decimal.
	amountPattern = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)
)

// NormalizeAmount limpia un monto de forma desconocida (string, número, nil) y devuelve
// su representación textual sin pérdida de precisión. Retorna ("", false) si el valor
// no es un monto válido (texto no numérico, varios signos, varios puntos).
func NormalizeAmount(raw any) (string, bool) {
	s, ok := rawText(raw)
	if !ok {
		return "", false
	}
	s = nonAmountChars.ReplaceAllString(strings.TrimSpace(s), "")
	if !amountPattern.MatchString(s) {
		return "", false
	}
	return s, true
}

// ParseAmount convierte un monto crudo a decimal. A diferencia de ToNumber no
// degrada a cero: un valor ilegible devuelve domain.ErrInvalidAmount.
func ParseAmount(raw any) (decimal.Decimal, error) {
	s, ok := NormalizeAmount(raw)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, displayRaw(raw))
	}
	d, err := decimal.NewFromString(canonical(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, s)
	}
	return d, nil
}

// ToNumber convierte un monto crudo a decimal y devuelve cero si no se puede leer.
// Solo debe usarse para vistas previas y datos históricos; el guardado usa ParseAmount.
func ToNumber(raw any) decimal.Decimal {
	d, err := ParseAmount(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Round2 redondea a centavos (half away from zero).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// canonical completa las formas abreviadas que acepta amountPattern ("12.", ".5", "-.5").
func canonical(s string) string {
	s = strings.TrimSuffix(s, ".")
	switch {
	case strings.HasPrefix(s, "-."):
		return "-0" + s[1:]
	case strings.HasPrefix(s, "."):
		return "0" + s
	}
	return s
}

func rawText(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case json.Number:
		// Los números JSON pueden traer exponente ("1e3"); se expanden sin pasar por float.
		if d, err := decimal.NewFromString(v.String()); err == nil {
			return d.String(), true
		}
		return v.String(), true
	case decimal.Decimal:
		return v.String(), true
	case *decimal.Decimal:
		if v == nil {
			return "", false
		}
		return v.String(), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 32), true
	case int:
		return strconv.Itoa(v), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

func displayRaw(raw any) string {
	if s, ok := rawText(raw); ok {
		return s
	}
	if raw == nil {
		return ""
	}
	return fmt.Sprintf("%v", raw)
}

func isEmptyRaw(raw any) bool {
	s, ok := rawText(raw)
	return !ok || strings.TrimSpace(s) == ""
}
