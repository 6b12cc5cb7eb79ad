package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fecha calendario usado en estados de cuenta (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Period ventana de reporte de un estado de cuenta.
type Period struct {
	From time.Time // desde (cero = sin definir)
	To   time.Time // hasta (cero = sin definir)
}

// Movement línea del estado de cuenta con monto firmado.
// Monto positivo = cargo (aumenta lo adeudado), negativo = abono.
type Movement struct {
	ID      int // único dentro del estado de cuenta, no global
	Date    time.Time
	Concept string
	Amount  decimal.Decimal
}

// AccountStatement estado de cuenta de un cliente.
// CurrentBalance es derivado: siempre PriorBalance + Σ Amount redondeado a 2 decimales.
type AccountStatement struct {
	ID             string
	Number         string // asignado externamente, inmutable
	ClientID       string
	ClientName     string
	Period         Period
	PriorBalance   decimal.Decimal
	Movements      []Movement // orden de inserción = orden de presentación
	CurrentBalance decimal.Decimal
	Observations   string
	Version        int // control de concurrencia optimista
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Warnings advertencias producidas al cargar movimientos legados; no se persisten.
	Warnings []string
}

// MovementByID devuelve el índice del movimiento con ese id, o -1.
func (s *AccountStatement) MovementByID(id int) int {
	for i, m := range s.Movements {
		if m.ID == id {
			return i
		}
	}
	return -1
}
