package dto

import "github.com/shopspring/decimal"

func init() {
	// Los montos viajan como números JSON (saldoAnterior, monto, saldoActual).
	decimal.MarshalJSONWithoutQuotes = true
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	Detalles []RowErrorDTO `json:"detalles,omitempty"`
}

// RowErrorDTO error de validación de una fila de movimientos (Fila base 1; 0 = cabecera).
type RowErrorDTO struct {
	Fila    int    `json:"fila"`
	ID      int    `json:"id,omitempty"`
	Campo   string `json:"campo"`
	Valor   string `json:"valor"`
	Mensaje string `json:"mensaje"`
}
