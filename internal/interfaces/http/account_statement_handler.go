package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/protecfuego/gestion-api/internal/application/dto"
	"github.com/protecfuego/gestion-api/internal/application/statement"
)

// StatementHandler maneja las peticiones HTTP de estados de cuenta (protegido).
type StatementHandler struct {
	uc *statement.UseCase
}

// NewStatementHandler construye el handler.
func NewStatementHandler(uc *statement.UseCase) *StatementHandler {
	return &StatementHandler{uc: uc}
}

// Calculate godoc
// @Summary      Vista previa del cálculo (no guarda)
// @Description  Migra filas en formato legado (debe/haber), recalcula totales y saldo, y devuelve los errores que bloquearían el guardado.
// @Tags         estados-cuenta
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreviewRequest  true  "Saldo anterior y movimientos"
// @Success      200   {object}  dto.PreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/estados-cuenta/calcular [post]
func (h *StatementHandler) Calculate(c *fiber.Ctx) error {
	var in dto.PreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.Calculate(in))
}

// List godoc
// @Summary      Listar estados de cuenta
// @Tags         estados-cuenta
// @Security     Bearer
// @Produce      json
// @Param        clienteId  query  string  false  "Filtrar por cliente"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200        {object}  dto.StatementListResponse
// @Failure      403        {object}  dto.ErrorResponse
// @Router       /api/estados-cuenta [get]
func (h *StatementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetActor(c), c.Query("clienteId"), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener estado de cuenta
// @Tags         estados-cuenta
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del estado de cuenta"
// @Success      200  {object}  dto.StatementResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estados-cuenta/{id} [get]
func (h *StatementHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Descargar estado de cuenta en PDF
// @Tags         estados-cuenta
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del estado de cuenta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estados-cuenta/{id}/pdf [get]
func (h *StatementHandler) ExportPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.ExportPDF(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// Create godoc
// @Summary      Crear estado de cuenta
// @Tags         estados-cuenta
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStatementRequest  true  "Cabecera del estado de cuenta"
// @Success      201   {object}  dto.StatementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/estados-cuenta [post]
func (h *StatementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStatementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Guardar estado de cuenta completo
// @Description  Reemplazo completo: movimientos es obligatorio y reemplaza la lista guardada (enviar [] para vaciarla). Acepta formato unificado o legado. Requiere la versión leída; si otro usuario guardó antes responde 409.
// @Tags         estados-cuenta
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del estado de cuenta"
// @Param        body  body  dto.UpdateStatementRequest  true  "Estado de cuenta"
// @Success      200   {object}  dto.StatementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/estados-cuenta/{id} [put]
func (h *StatementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStatementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar estado de cuenta
// @Tags         estados-cuenta
// @Security     Bearer
// @Param        id   path  string  true  "ID del estado de cuenta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estados-cuenta/{id} [delete]
func (h *StatementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddMovement godoc
// @Summary      Agregar movimiento
// @Tags         estados-cuenta
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del estado de cuenta"
// @Param        body  body  dto.MovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.StatementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/estados-cuenta/{id}/movimientos [post]
func (h *StatementHandler) AddMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddMovement(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateMovement godoc
// @Summary      Editar movimiento
// @Tags         estados-cuenta
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id     path  string               true  "ID del estado de cuenta"
// @Param        movId  path  int                  true  "ID del movimiento"
// @Param        body   body  dto.MovementRequest  true  "Movimiento"
// @Success      200    {object}  dto.StatementResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      422    {object}  dto.ErrorResponse
// @Router       /api/estados-cuenta/{id}/movimientos/{movId} [put]
func (h *StatementHandler) UpdateMovement(c *fiber.Ctx) error {
	movID, err := c.ParamsInt("movId")
	if err != nil || movID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "movId debe ser un entero positivo"})
	}
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateMovement(c.UserContext(), GetActor(c), c.Params("id"), movID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveMovement godoc
// @Summary      Quitar movimiento
// @Tags         estados-cuenta
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true   "ID del estado de cuenta"
// @Param        movId    path   int     true   "ID del movimiento"
// @Param        version  query  int     false  "Versión leída (control de concurrencia)"
// @Success      200      {object}  dto.StatementResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/estados-cuenta/{id}/movimientos/{movId} [delete]
func (h *StatementHandler) RemoveMovement(c *fiber.Ctx) error {
	movID, err := c.ParamsInt("movId")
	if err != nil || movID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "movId debe ser un entero positivo"})
	}
	out, err := h.uc.RemoveMovement(c.UserContext(), GetActor(c), c.Params("id"), movID, c.QueryInt("version", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
