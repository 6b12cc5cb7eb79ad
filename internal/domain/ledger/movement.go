package ledger

import "strings"

// Format formato de almacenamiento de un movimiento.
type Format int

const (
	// FormatUnified monto firmado único ("monto").
	FormatUnified Format = iota
	// FormatLegacy columnas separadas "debe"/"haber", opcionalmente con "tipo" y "numero".
	FormatLegacy
)

func (f Format) String() string {
	if f == FormatLegacy {
		return "legado"
	}
	return "unificado"
}

// RawMovement movimiento tal como llega del formulario o del almacenamiento.
// Los montos son de forma desconocida (string, número, nil) hasta validarse.
type RawMovement struct {
	ID       int    `json:"id"`
	Fecha    string `json:"fecha"`
	Concepto string `json:"concepto"`
	Monto    any    `json:"monto,omitempty"`

	// Campos del formato legado; ausentes después de migrar.
	Debe   any    `json:"debe,omitempty"`
	Haber  any    `json:"haber,omitempty"`
	Tipo   string `json:"tipo,omitempty"`
	Numero string `json:"numero,omitempty"`
}

// Format clasifica el movimiento por sí mismo, sin mirar al resto de la lista.
func (m RawMovement) Format() Format {
	if m.Debe != nil || m.Haber != nil {
		return FormatLegacy
	}
	return FormatUnified
}

// IsBlank indica una fila vacía (sin fecha, concepto ni monto), como la fila inicial del formulario.
func (m RawMovement) IsBlank() bool {
	return m.Format() == FormatUnified &&
		strings.TrimSpace(m.Fecha) == "" &&
		strings.TrimSpace(m.Concepto) == "" &&
		isEmptyRaw(m.Monto)
}
