// Package ledger contiene la lógica del libro de movimientos de un estado de cuenta:
// normalización de montos, migración del formato legado debe/haber a monto firmado,
// totales de cargos y abonos, y saldo actual.
//
// Todas las funciones son puras. Los montos se manejan con decimal.Decimal de punta a
// punta; el redondeo a centavos es "half away from zero" (0.005 → 0.01, -0.005 → -0.01).
package ledger
