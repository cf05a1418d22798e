package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tareas-api/internal/application/auth"
	"github.com/jhoicas/Tareas-api/internal/application/usecase"
	"github.com/jhoicas/Tareas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TaskUC    *usecase.TaskUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Tasks (protegido: Bearer Token + RBAC por ruta)
	tasks := api.Group("/tasks", AuthMiddleware(deps.JWTSecret))
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Get("/", RequireRole(entity.RoleEmployee, entity.RoleManager), taskHandler.List)
	tasks.Post("/", RequireRole(entity.RoleEmployee), taskHandler.Create)
	tasks.Get("/:id", RequireRole(entity.RoleEmployee, entity.RoleManager), taskHandler.GetByID)
	tasks.Put("/:id", RequireRole(entity.RoleEmployee), taskHandler.Update)
	tasks.Patch("/:id/status", RequireRole(entity.RoleManager), taskHandler.UpdateStatus)
	tasks.Delete("/:id", RequireRole(entity.RoleEmployee), taskHandler.Delete)
}
