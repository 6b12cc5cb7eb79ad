package statement

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/protecfuego/gestion-api/internal/domain/entity"
	"github.com/protecfuego/gestion-api/internal/domain/ledger"
)

// StatementDocument datos que necesita el generador para la representación gráfica.
type StatementDocument struct {
	Statement       *entity.AccountStatement
	Summary         ledger.Summary
	RunningBalances []decimal.Decimal // uno por movimiento, mismo orden
	GeneratedAt     time.Time
}

// StatementPDFGenerator puerto de salida para exportar un estado de cuenta a PDF.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, doc StatementDocument) ([]byte, error)
}
