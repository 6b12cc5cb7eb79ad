package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/protecfuego/gestion-api/internal/application/statement"
	"github.com/protecfuego/gestion-api/internal/domain/entity"
	"github.com/protecfuego/gestion-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StatementUC *statement.UseCase
	JWTSecret   string
	JWTIssuer   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestLogger(deps.Log))

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	readers := RequireRole(entity.RoleAdmin, entity.RoleTecnico, entity.RoleCliente)
	writers := RequireRole(entity.RoleAdmin)

	// Estados de cuenta
	statements := protected.Group("/estados-cuenta")
	h := NewStatementHandler(deps.StatementUC)
	statements.Post("/calcular", readers, h.Calculate)
	statements.Get("/", readers, h.List)
	statements.Get("/:id", readers, h.GetByID)
	statements.Get("/:id/pdf", readers, h.ExportPDF)
	statements.Post("/", writers, h.Create)
	statements.Put("/:id", writers, h.Update)
	statements.Delete("/:id", writers, h.Delete)
	statements.Post("/:id/movimientos", writers, h.AddMovement)
	statements.Put("/:id/movimientos/:movId", writers, h.UpdateMovement)
	statements.Delete("/:id/movimientos/:movId", writers, h.RemoveMovement)
}
