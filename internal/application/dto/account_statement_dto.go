package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/protecfuego/gestion-api/internal/domain/ledger"
)

// PeriodDTO ventana de reporte (fechas YYYY-MM-DD, vacías si no se definieron).
type PeriodDTO struct {
	Desde string `json:"desde"`
	Hasta string `json:"hasta"`
}

// CreateStatementRequest body para POST /api/estados-cuenta.
// El estado de cuenta nace sin movimientos.
type CreateStatementRequest struct {
	Numero        string    `json:"numero"`
	ClienteID     string    `json:"clienteId"`
	ClienteNombre string    `json:"clienteNombre"`
	Periodo       PeriodDTO `json:"periodo"`
	SaldoAnterior any       `json:"saldoAnterior"` // número o texto
	Observaciones string    `json:"observaciones"`
}

// UpdateStatementRequest body para PUT /api/estados-cuenta/:id.
// Movimientos acepta formato unificado o legado (debe/haber) y reemplaza la lista completa;
// es obligatorio igual que Version ([] vacía el libro).
type UpdateStatementRequest struct {
	Numero        string               `json:"numero,omitempty"` // inmutable: si viene debe coincidir
	ClienteNombre string               `json:"clienteNombre"`
	Periodo       PeriodDTO            `json:"periodo"`
	SaldoAnterior any                  `json:"saldoAnterior"`
	Movimientos   []ledger.RawMovement `json:"movimientos" validate:"required"`
	Observaciones string               `json:"observaciones"`
	Version       int                  `json:"version" validate:"required"`
}

// MovementRequest body para POST/PUT de un movimiento individual.
// Version es opcional; si viene se verifica contra la almacenada.
type MovementRequest struct {
	ledger.RawMovement
	Version int `json:"version,omitempty"`
}

// PreviewRequest body para POST /api/estados-cuenta/calcular.
type PreviewRequest struct {
	SaldoAnterior any                  `json:"saldoAnterior"`
	Movimientos   []ledger.RawMovement `json:"movimientos"`
}

// MovementResponse movimiento en respuestas, con su clasificación y saldo acumulado.
type MovementResponse struct {
	ID             int             `json:"id"`
	Fecha          string          `json:"fecha"`
	Concepto       string          `json:"concepto"`
	Monto          decimal.Decimal `json:"monto"`
	TipoMovimiento ledger.Kind     `json:"tipoMovimiento"`
	SaldoAcumulado decimal.Decimal `json:"saldoAcumulado"`
}

// StatementResponse estado de cuenta con cifras derivadas.
type StatementResponse struct {
	ID            string             `json:"id"`
	Numero        string             `json:"numero"`
	ClienteID     string             `json:"clienteId"`
	ClienteNombre string             `json:"clienteNombre"`
	Periodo       PeriodDTO          `json:"periodo"`
	SaldoAnterior decimal.Decimal    `json:"saldoAnterior"`
	Movimientos   []MovementResponse `json:"movimientos"`
	Observaciones string             `json:"observaciones"`
	SaldoActual   decimal.Decimal    `json:"saldoActual"`
	TotalCargos   decimal.Decimal    `json:"totalCargos"`
	TotalAbonos   decimal.Decimal    `json:"totalAbonos"`
	Version       int                `json:"version"`
	Advertencias  []string           `json:"advertencias,omitempty"`
	CreadoPor     string             `json:"creadoPor,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// StatementListResponse página de estados de cuenta.
type StatementListResponse struct {
	Items []*StatementResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// PreviewResponse resultado del cálculo sin guardar. PuedeGuardar es false si hay errores.
type PreviewResponse struct {
	SaldoAnterior decimal.Decimal    `json:"saldoAnterior"`
	Movimientos   []MovementResponse `json:"movimientos"`
	TotalCargos   decimal.Decimal    `json:"totalCargos"`
	TotalAbonos   decimal.Decimal    `json:"totalAbonos"`
	SaldoActual   decimal.Decimal    `json:"saldoActual"`
	Advertencias  []string           `json:"advertencias,omitempty"`
	Errores       []RowErrorDTO      `json:"errores,omitempty"`
	PuedeGuardar  bool               `json:"puedeGuardar"`
}
