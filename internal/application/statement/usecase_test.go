package statement_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protecfuego/gestion-api/internal/application/dto"
	"github.com/protecfuego/gestion-api/internal/application/statement"
	"github.com/protecfuego/gestion-api/internal/domain"
	"github.com/protecfuego/gestion-api/internal/domain/entity"
	"github.com/protecfuego/gestion-api/internal/domain/ledger"
	"github.com/protecfuego/gestion-api/internal/infrastructure/memory"
)

var (
	admin   = entity.Actor{UserID: "u-admin", Role: entity.RoleAdmin}
	tecnico = entity.Actor{UserID: "u-tec", Role: entity.RoleTecnico}
	cliente = entity.Actor{UserID: "u-cli", ClientID: "cli-1", Role: entity.RoleCliente}
	otro    = entity.Actor{UserID: "u-otro", ClientID: "cli-2", Role: entity.RoleCliente}

	sinMovimientos = []ledger.RawMovement{}
)

type fakePDF struct {
	got statement.StatementDocument
	err error
}

func (f *fakePDF) GenerateStatementPDF(_ context.Context, doc statement.StatementDocument) ([]byte, error) {
	f.got = doc
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func newUseCase() (*statement.UseCase, *fakePDF) {
	pdf := &fakePDF{}
	return statement.NewUseCase(memory.NewAccountStatementRepository(), pdf, nil), pdf
}

func createStatement(t *testing.T, uc *statement.UseCase) *dto.StatementResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), admin, dto.CreateStatementRequest{
		Numero:        "EC-2024-001",
		ClienteID:     "cli-1",
		ClienteNombre: "Edificio Torre Norte",
		Periodo:       dto.PeriodDTO{Desde: "2024-01-01", Hasta: "2024-01-31"},
		SaldoAnterior: "1000.00",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SinMovimientosYSaldoIgualAlAnterior(t *testing.T) {
	uc, _ := newUseCase()
	out := createStatement(t, uc)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 1, out.Version)
	assert.Empty(t, out.Movimientos)
	assert.Equal(t, "1000.00", out.SaldoActual.StringFixed(2))
	assert.Equal(t, "2024-01-01", out.Periodo.Desde)
	assert.Equal(t, "u-admin", out.CreadoPor)
}

func TestCreate_NumeroDuplicado(t *testing.T) {
	uc, _ := newUseCase()
	createStatement(t, uc)

	_, err := uc.Create(context.Background(), admin, dto.CreateStatementRequest{Numero: "EC-2024-001", ClienteID: "cli-9"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_Validaciones(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, admin, dto.CreateStatementRequest{ClienteID: "cli-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "numero requerido")

	_, err = uc.Create(ctx, admin, dto.CreateStatementRequest{Numero: "X", ClienteID: "c",
		Periodo: dto.PeriodDTO{Desde: "2024-02-01", Hasta: "2024-01-01"}})
	assert.ErrorIs(t, err, domain.ErrInvalidDate, "periodo invertido")

	_, err = uc.Create(ctx, admin, dto.CreateStatementRequest{Numero: "X", ClienteID: "c", SaldoAnterior: "mil"})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestCreate_SoloAdmin(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Create(context.Background(), tecnico, dto.CreateStatementRequest{Numero: "X", ClienteID: "c"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición completa
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_MigraLegadoYRecalcula(t *testing.T) {
	uc, _ := newUseCase()
	created := createStatement(t, uc)

	out, err := uc.Update(context.Background(), admin, created.ID, dto.UpdateStatementRequest{
		SaldoAnterior: 1000.0,
		Version:       1,
		Movimientos: []ledger.RawMovement{
			{ID: 1, Fecha: "2024-01-05", Debe: 500.0, Haber: 0.0, Tipo: "factura", Numero: "A-12", Concepto: "Recarga"},
			{ID: 2, Fecha: "2024-01-20", Monto: json.Number("-200"), Concepto: "Pago"},
			{Fecha: "2024-01-25", Monto: "0", Concepto: "Visita sin cargo"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Version)
	assert.Equal(t, "500.00", out.TotalCargos.StringFixed(2))
	assert.Equal(t, "200.00", out.TotalAbonos.StringFixed(2))
	assert.Equal(t, "1300.00", out.SaldoActual.StringFixed(2))
	require.Len(t, out.Movimientos, 3)
	assert.Equal(t, "FACTURA A-12 - Recarga", out.Movimientos[0].Concepto)
	assert.Equal(t, ledger.KindCharge, out.Movimientos[0].TipoMovimiento)
	assert.Equal(t, ledger.KindCredit, out.Movimientos[1].TipoMovimiento)
	assert.Equal(t, ledger.KindNeutral, out.Movimientos[2].TipoMovimiento)
	assert.Equal(t, 3, out.Movimientos[2].ID, "la fila sin id recibe max+1")
	assert.Equal(t, "1300.00", out.Movimientos[2].SaldoAcumulado.StringFixed(2))

	stored, err := uc.Get(context.Background(), tecnico, created.ID)
	require.NoError(t, err)
	assert.Equal(t, out.SaldoActual.String(), stored.SaldoActual.String())
}

func TestUpdate_MontoInvalidoBloqueaGuardado(t *testing.T) {
	uc, _ := newUseCase()
	created := createStatement(t, uc)

	_, err := uc.Update(context.Background(), admin, created.ID, dto.UpdateStatementRequest{
		Version:     1,
		Movimientos: []ledger.RawMovement{{ID: 1, Monto: "abc"}, {ID: 2, Monto: "10"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	rows := statement.RowErrors(err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Fila)
	assert.Equal(t, "monto", rows[0].Campo)

	stored, _ := uc.Get(context.Background(), admin, created.ID)
	assert.Equal(t, 1, stored.Version, "no se guardó nada")
}

func TestUpdate_VersionVieja_Conflicto(t *testing.T) {
	uc, _ := newUseCase()
	created := createStatement(t, uc)
	ctx := context.Background()

	_, err := uc.Update(ctx, admin, created.ID, dto.UpdateStatementRequest{Version: 1, Observaciones: "primero", Movimientos: sinMovimientos})
	require.NoError(t, err)

	_, err = uc.Update(ctx, admin, created.ID, dto.UpdateStatementRequest{Version: 1, Observaciones: "segundo", Movimientos: sinMovimientos})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdate_NumeroInmutableYVersionRequerida(t *testing.T) {
	uc, _ := newUseCase()
	created := createStatement(t, uc)
	ctx := context.Background()

	_, err := uc.Update(ctx, admin, created.ID, dto.UpdateStatementRequest{Version: 1, Numero: "OTRO", Movimientos: sinMovimientos})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, admin, created.ID, dto.UpdateStatementRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, admin, "no-existe", dto.UpdateStatementRequest{Version: 1, Movimientos: sinMovimientos})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_SinMovimientos_NoBorraElLibro(t *testing.T) {
	uc, _ := newUseCase()
	created := createStatement(t, uc)
	ctx := context.Background()

	saved, err := uc.Update(ctx, admin, created.ID, dto.UpdateStatementRequest{
		Version:     1,
		Movimientos: []ledger.RawMovement{{ID: 1, Fecha: "2024-01-05", Concepto: "Servicio", Monto: "500"}},
	})
	require.NoError(t, err)
	require.Len(t, saved.Movimientos, 1)

	// Un cliente que sólo cambia observaciones y omite la clave no debe vaciar el libro.
	_, err = uc.Update(ctx, admin, created.ID, dto.UpdateStatementRequest{Version: saved.Version, Observaciones: "solo nota"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := uc.Get(ctx, admin, created.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Movimientos, 1, "los movimientos guardados siguen intactos")
	assert.Equal(t, saved.Version, stored.Version)

	// Con [] explícito sí se vacía.
	cleared, err := uc.Update(ctx, admin, created.ID, dto.UpdateStatementRequest{Version: saved.Version, Movimientos: sinMovimientos})
	require.NoError(t, err)
	assert.Empty(t, cleared.Movimientos)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición por fila
// ──────────────────────────────────────────────────────────────────────────────

func TestMovimientos_AgregarEditarQuitar(t *testing.T) {
	uc, _ := newUseCase()
	created := createStatement(t, uc)
	ctx := context.Background()

	out, err := uc.AddMovement(ctx, admin, created.ID, dto.MovementRequest{
		RawMovement: ledger.RawMovement{ID: 99, Fecha: "2024-01-03", Concepto: "Inspección", Monto: "250.50"},
	})
	require.NoError(t, err)
	require.Len(t, out.Movimientos, 1)
	assert.Equal(t, 1, out.Movimientos[0].ID, "el id recibido se ignora")

	out, err = uc.AddMovement(ctx, admin, created.ID, dto.MovementRequest{
		RawMovement: ledger.RawMovement{Haber: "100", Concepto: "Pago parcial"},
		Version:     out.Version,
	})
	require.NoError(t, err)
	require.Len(t, out.Movimientos, 2)
	assert.Equal(t, 2, out.Movimientos[1].ID)
	assert.Equal(t, "-100", out.Movimientos[1].Monto.String())
	assert.Equal(t, "1150.50", out.SaldoActual.StringFixed(2))

	out, err = uc.UpdateMovement(ctx, admin, created.ID, 1, dto.MovementRequest{
		RawMovement: ledger.RawMovement{Fecha: "2024-01-03", Concepto: "Inspección anual", Monto: "300"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Inspección anual", out.Movimientos[0].Concepto)
	assert.Equal(t, 1, out.Movimientos[0].ID)
	assert.Equal(t, "1200.00", out.SaldoActual.StringFixed(2))

	out, err = uc.RemoveMovement(ctx, admin, created.ID, 1, 0)
	require.NoError(t, err)
	require.Len(t, out.Movimientos, 1)
	assert.Equal(t, 2, out.Movimientos[0].ID)
	assert.Equal(t, "900.00", out.SaldoActual.StringFixed(2))
	assert.Equal(t, 5, out.Version)
}

func TestMovimientos_Errores(t *testing.T) {
	uc, _ := newUseCase()
	created := createStatement(t, uc)
	ctx := context.Background()

	_, err := uc.AddMovement(ctx, admin, created.ID, dto.MovementRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fila vacía")

	_, err = uc.AddMovement(ctx, admin, created.ID, dto.MovementRequest{RawMovement: ledger.RawMovement{Monto: "x"}})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.AddMovement(ctx, admin, created.ID, dto.MovementRequest{RawMovement: ledger.RawMovement{Monto: "1"}, Version: 7})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.RemoveMovement(ctx, admin, created.ID, 42, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.AddMovement(ctx, tecnico, created.ID, dto.MovementRequest{RawMovement: ledger.RawMovement{Monto: "1"}})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta y permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_ClienteSoloVeLosPropios(t *testing.T) {
	uc, _ := newUseCase()
	created := createStatement(t, uc)
	ctx := context.Background()

	_, err := uc.Get(ctx, cliente, created.ID)
	assert.NoError(t, err)

	_, err = uc.Get(ctx, otro, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Get(ctx, admin, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_ClienteForzadoASuCliente(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	createStatement(t, uc)
	_, err := uc.Create(ctx, admin, dto.CreateStatementRequest{Numero: "EC-2", ClienteID: "cli-2"})
	require.NoError(t, err)

	all, err := uc.List(ctx, tecnico, "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Page.Total)
	assert.Equal(t, 20, all.Page.Limit)

	own, err := uc.List(ctx, cliente, "", 500, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, own.Page.Total)
	assert.Equal(t, 100, own.Page.Limit)
	assert.Equal(t, "cli-1", own.Items[0].ClienteID)

	_, err = uc.List(ctx, cliente, "cli-2", 10, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDelete(t *testing.T) {
	uc, _ := newUseCase()
	created := createStatement(t, uc)
	ctx := context.Background()

	assert.ErrorIs(t, uc.Delete(ctx, tecnico, created.ID), domain.ErrForbidden)
	require.NoError(t, uc.Delete(ctx, admin, created.ID))
	assert.ErrorIs(t, uc.Delete(ctx, admin, created.ID), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vista previa
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculate_MontoIlegibleValeCeroPeroBloquea(t *testing.T) {
	uc, _ := newUseCase()

	out := uc.Calculate(dto.PreviewRequest{
		SaldoAnterior: "1000",
		Movimientos: []ledger.RawMovement{
			{ID: 1, Monto: "500"},
			{ID: 2, Monto: "abc"},
			{ID: 3, Debe: 0.0, Haber: 200.0, Concepto: "Pago"},
		},
	})

	assert.Equal(t, "500.00", out.TotalCargos.StringFixed(2))
	assert.Equal(t, "200.00", out.TotalAbonos.StringFixed(2))
	assert.Equal(t, "1300.00", out.SaldoActual.StringFixed(2))
	assert.False(t, out.PuedeGuardar)
	require.Len(t, out.Errores, 1)
	assert.Equal(t, 2, out.Errores[0].Fila)
	assert.Equal(t, ledger.KindNeutral, out.Movimientos[1].TipoMovimiento)
	assert.NotEmpty(t, out.Advertencias)
}

func TestCalculate_SaldoAnteriorInvalido(t *testing.T) {
	uc, _ := newUseCase()
	out := uc.Calculate(dto.PreviewRequest{SaldoAnterior: "--1"})
	assert.False(t, out.PuedeGuardar)
	assert.Equal(t, "saldoAnterior", out.Errores[0].Campo)
	assert.True(t, out.SaldoActual.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestExportPDF(t *testing.T) {
	uc, pdf := newUseCase()
	created := createStatement(t, uc)
	ctx := context.Background()
	_, err := uc.AddMovement(ctx, admin, created.ID, dto.MovementRequest{RawMovement: ledger.RawMovement{Monto: "-250", Concepto: "Pago"}})
	require.NoError(t, err)

	data, name, err := uc.ExportPDF(ctx, cliente, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), data)
	assert.Equal(t, "estado_cuenta_EC-2024-001.pdf", name)
	assert.Equal(t, "750.00", pdf.got.Summary.CurrentBalance.StringFixed(2))
	require.Len(t, pdf.got.RunningBalances, 1)
	assert.WithinDuration(t, time.Now(), pdf.got.GeneratedAt, time.Minute)

	pdf.err = errors.New("sin fuentes")
	_, _, err = uc.ExportPDF(ctx, admin, created.ID)
	assert.Error(t, err)
}
