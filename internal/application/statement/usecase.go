package statement

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/protecfuego/gestion-api/internal/application/dto"
	"github.com/protecfuego/gestion-api/internal/domain"
	"github.com/protecfuego/gestion-api/internal/domain/entity"
	"github.com/protecfuego/gestion-api/internal/domain/ledger"
	"github.com/protecfuego/gestion-api/internal/domain/repository"
	"github.com/protecfuego/gestion-api/pkg/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// UseCase casos de uso de estados de cuenta: alta, edición del libro de movimientos,
// consulta, vista previa del cálculo y exportación a PDF.
type UseCase struct {
	repo repository.AccountStatementRepository
	pdf  StatementPDFGenerator
	log  *logger.Logger
	now  func() time.Time
}

// NewUseCase construye el caso de uso. pdf puede ser nil si no se exporta.
func NewUseCase(repo repository.AccountStatementRepository, pdf StatementPDFGenerator, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		repo: repo,
		pdf:  pdf,
		log:  log.WithComponent("estados-cuenta"),
		now:  time.Now,
	}
}

// Create da de alta un estado de cuenta sin movimientos (solo admin).
func (uc *UseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateStatementRequest) (*dto.StatementResponse, error) {
	if !actor.CanWrite() {
		return nil, domain.ErrForbidden
	}
	number := strings.TrimSpace(in.Numero)
	clientID := strings.TrimSpace(in.ClienteID)
	if number == "" || clientID == "" {
		return nil, fmt.Errorf("%w: numero y clienteId son requeridos", domain.ErrInvalidInput)
	}
	period, err := parsePeriod(in.Periodo)
	if err != nil {
		return nil, err
	}
	prior, err := parsePriorBalance(in.SaldoAnterior)
	if err != nil {
		return nil, fmt.Errorf("saldoAnterior: %w", err)
	}

	now := uc.now()
	s := &entity.AccountStatement{
		ID:           uuid.New().String(),
		Number:       number,
		ClientID:     clientID,
		ClientName:   strings.TrimSpace(in.ClienteNombre),
		Period:       period,
		PriorBalance: prior,
		Movements:    []entity.Movement{},
		Observations: in.Observaciones,
		Version:      1,
		CreatedBy:    actor.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	ledger.Recompute(s)

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	uc.log.Info().Str("id", s.ID).Str("numero", s.Number).Str("user_id", actor.UserID).Msg("estado de cuenta creado")
	return toResponse(s), nil
}

// Get devuelve un estado de cuenta con cifras recalculadas.
func (uc *UseCase) Get(ctx context.Context, actor entity.Actor, id string) (*dto.StatementResponse, error) {
	s, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toResponse(s), nil
}

// List pagina estados de cuenta. Un cliente solo ve los propios.
func (uc *UseCase) List(ctx context.Context, actor entity.Actor, clientID string, limit, offset int) (*dto.StatementListResponse, error) {
	switch actor.Role {
	case entity.RoleAdmin, entity.RoleTecnico:
	case entity.RoleCliente:
		if clientID != "" && clientID != actor.ClientID {
			return nil, domain.ErrForbidden
		}
		if actor.ClientID == "" {
			return nil, domain.ErrForbidden
		}
		clientID = actor.ClientID
	default:
		return nil, domain.ErrForbidden
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	list, total, err := uc.repo.List(ctx, repository.StatementFilter{ClientID: clientID, Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	out := &dto.StatementListResponse{
		Items: make([]*dto.StatementResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}
	for _, s := range list {
		out.Items = append(out.Items, toResponse(s))
	}
	return out, nil
}

// Update reemplaza cabecera y movimientos. Migra filas legadas, valida de forma estricta
// (cualquier monto o fecha ilegible bloquea el guardado) y recalcula el saldo actual.
func (uc *UseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateStatementRequest) (*dto.StatementResponse, error) {
	if !actor.CanWrite() {
		return nil, domain.ErrForbidden
	}
	if in.Version <= 0 {
		return nil, fmt.Errorf("%w: version requerida", domain.ErrInvalidInput)
	}
	// Reemplazo completo: sin la clave se borraría el libro; vaciarlo exige [] explícito.
	if in.Movimientos == nil {
		return nil, fmt.Errorf("%w: movimientos requerido (usar [] para vaciar)", domain.ErrInvalidInput)
	}
	s, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if n := strings.TrimSpace(in.Numero); n != "" && n != s.Number {
		return nil, fmt.Errorf("%w: el número del estado de cuenta no se puede modificar", domain.ErrInvalidInput)
	}
	if s.Version != in.Version {
		return nil, domain.ErrConflict
	}

	period, err := parsePeriod(in.Periodo)
	if err != nil {
		return nil, err
	}
	prior, err := parsePriorBalance(in.SaldoAnterior)
	if err != nil {
		return nil, fmt.Errorf("saldoAnterior: %w", err)
	}
	migrated, warns := ledger.MigrateLegacyMovements(in.Movimientos)
	uc.logWarnings(s, warns)
	movs, err := ledger.BuildMovements(migrated)
	if err != nil {
		return nil, err
	}

	s.ClientName = strings.TrimSpace(in.ClienteNombre)
	s.Period = period
	s.PriorBalance = prior
	s.Movements = movs
	s.Observations = in.Observaciones
	s.Warnings = warningStrings(warns)
	return uc.save(ctx, actor, s, in.Version)
}

// AddMovement agrega un movimiento al final con id max+1.
func (uc *UseCase) AddMovement(ctx context.Context, actor entity.Actor, id string, in dto.MovementRequest) (*dto.StatementResponse, error) {
	s, expected, err := uc.loadForEdit(ctx, actor, id, in.Version)
	if err != nil {
		return nil, err
	}
	m, err := uc.buildOne(s, in.RawMovement)
	if err != nil {
		return nil, err
	}
	m.ID = ledger.NextMovementID(s.Movements)
	s.Movements = append(s.Movements, m)
	return uc.save(ctx, actor, s, expected)
}

// UpdateMovement reemplaza fecha, concepto y monto de un movimiento existente.
func (uc *UseCase) UpdateMovement(ctx context.Context, actor entity.Actor, id string, movementID int, in dto.MovementRequest) (*dto.StatementResponse, error) {
	s, expected, err := uc.loadForEdit(ctx, actor, id, in.Version)
	if err != nil {
		return nil, err
	}
	idx := s.MovementByID(movementID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: movimiento %d", domain.ErrNotFound, movementID)
	}
	m, err := uc.buildOne(s, in.RawMovement)
	if err != nil {
		return nil, err
	}
	m.ID = movementID
	s.Movements[idx] = m
	return uc.save(ctx, actor, s, expected)
}

// RemoveMovement quita un movimiento conservando el orden del resto.
func (uc *UseCase) RemoveMovement(ctx context.Context, actor entity.Actor, id string, movementID, version int) (*dto.StatementResponse, error) {
	s, expected, err := uc.loadForEdit(ctx, actor, id, version)
	if err != nil {
		return nil, err
	}
	idx := s.MovementByID(movementID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: movimiento %d", domain.ErrNotFound, movementID)
	}
	s.Movements = append(s.Movements[:idx:idx], s.Movements[idx+1:]...)
	return uc.save(ctx, actor, s, expected)
}

// Delete elimina un estado de cuenta (solo admin).
func (uc *UseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if !actor.CanWrite() {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("id", id).Str("user_id", actor.UserID).Msg("estado de cuenta eliminado")
	return nil
}

// Calculate recalcula cifras sin guardar, como el formulario en cada edición: los montos
// ilegibles valen cero, pero se informan los errores que bloquearían el guardado.
func (uc *UseCase) Calculate(in dto.PreviewRequest) *dto.PreviewResponse {
	migrated, migWarns := ledger.MigrateLegacyMovements(in.Movimientos)
	movs, loadWarns := ledger.LoadMovements(migrated)
	prior := ledger.ToNumber(in.SaldoAnterior)
	sum := ledger.Summarize(prior, movs)

	var rowErrs []dto.RowErrorDTO
	if _, err := parsePriorBalance(in.SaldoAnterior); err != nil {
		rowErrs = append(rowErrs, dto.RowErrorDTO{
			Campo:   "saldoAnterior",
			Valor:   fmt.Sprint(in.SaldoAnterior),
			Mensaje: domain.ErrInvalidAmount.Error(),
		})
	}
	if _, err := ledger.BuildMovements(migrated); err != nil {
		rowErrs = append(rowErrs, RowErrors(err)...)
	}

	return &dto.PreviewResponse{
		SaldoAnterior: sum.PriorBalance,
		Movimientos:   toMovementResponses(prior, movs),
		TotalCargos:   sum.TotalCharges,
		TotalAbonos:   sum.TotalCredits,
		SaldoActual:   sum.CurrentBalance,
		Advertencias:  warningStrings(append(migWarns, loadWarns...)),
		Errores:       rowErrs,
		PuedeGuardar:  len(rowErrs) == 0,
	}
}

// ExportPDF genera la representación gráfica del estado de cuenta.
func (uc *UseCase) ExportPDF(ctx context.Context, actor entity.Actor, id string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("pdf: generador no configurado")
	}
	s, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, "", err
	}
	doc := StatementDocument{
		Statement:       s,
		Summary:         ledger.Summarize(s.PriorBalance, s.Movements),
		RunningBalances: ledger.RunningBalances(s.PriorBalance, s.Movements),
		GeneratedAt:     uc.now(),
	}
	data, err := uc.pdf.GenerateStatementPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	name := unsafeFilenameChars.ReplaceAllString(s.Number, "_")
	return data, fmt.Sprintf("estado_cuenta_%s.pdf", name), nil
}

func (uc *UseCase) load(ctx context.Context, actor entity.Actor, id string) (*entity.AccountStatement, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener estado de cuenta: %w", err)
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.CanRead(s.ClientID) {
		return nil, domain.ErrForbidden
	}
	if len(s.Warnings) > 0 {
		uc.log.Warn().Str("id", s.ID).Strs("advertencias", s.Warnings).Msg("movimientos almacenados con datos degradados")
	}
	return s, nil
}

// loadForEdit carga para edición de una fila; version 0 toma la versión leída.
func (uc *UseCase) loadForEdit(ctx context.Context, actor entity.Actor, id string, version int) (*entity.AccountStatement, int, error) {
	if !actor.CanWrite() {
		return nil, 0, domain.ErrForbidden
	}
	s, err := uc.load(ctx, actor, id)
	if err != nil {
		return nil, 0, err
	}
	if version > 0 && version != s.Version {
		return nil, 0, domain.ErrConflict
	}
	return s, s.Version, nil
}

func (uc *UseCase) buildOne(s *entity.AccountStatement, raw ledger.RawMovement) (entity.Movement, error) {
	migrated, warns := ledger.MigrateLegacyMovements([]ledger.RawMovement{raw})
	uc.logWarnings(s, warns)
	if migrated[0].IsBlank() {
		return entity.Movement{}, fmt.Errorf("%w: movimiento vacío", domain.ErrInvalidInput)
	}
	// El id lo asigna el caso de uso; no se valida el recibido.
	migrated[0].ID = 0
	movs, err := ledger.BuildMovements(migrated)
	if err != nil {
		return entity.Movement{}, err
	}
	return movs[0], nil
}

func (uc *UseCase) save(ctx context.Context, actor entity.Actor, s *entity.AccountStatement, expectedVersion int) (*dto.StatementResponse, error) {
	sum := ledger.Recompute(s)
	s.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, s, expectedVersion); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("id", s.ID).
		Str("numero", s.Number).
		Int("version", s.Version).
		Int("movimientos", len(s.Movements)).
		Str("saldo_actual", sum.CurrentBalance.StringFixed(2)).
		Str("user_id", actor.UserID).
		Msg("estado de cuenta guardado")
	return toResponse(s), nil
}

func (uc *UseCase) logWarnings(s *entity.AccountStatement, warns []ledger.Warning) {
	for _, w := range warns {
		uc.log.Warn().
			Str("id", s.ID).
			Int("fila", w.Row+1).
			Int("movimiento_id", w.MovementID).
			Str("code", string(w.Code)).
			Msg(w.Message)
	}
}
