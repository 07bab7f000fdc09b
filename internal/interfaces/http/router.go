package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/printers-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *usecase.AuthUseCase
	UserUC    *usecase.UserUseCase
	PrinterUC *usecase.PrinterUseCase
	GroupUC   *usecase.GroupUseCase
	JobUC     *usecase.JobUseCase
}

// Router registra las rutas de la API. Salvo login, todas las operaciones
// llevan el token de sesión en la ruta: /api/:token/<operación>.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	printerHandler := NewPrinterHandler(deps.PrinterUC)
	groupHandler := NewGroupHandler(deps.GroupUC)
	jobHandler := NewJobHandler(deps.JobUC)

	// Auth (público)
	api.Post("/login", authHandler.Login)

	// Sesión
	session := api.Group("/:token")
	session.Post("/logout", authHandler.Logout)
	session.Post("/list", authHandler.List)

	// Usuarios (solo admins)
	session.Post("/ulist", userHandler.List)
	session.Post("/adduser", userHandler.Add)
	session.Post("/setuser", userHandler.Set)
	session.Post("/rmuser", userHandler.Remove)

	// Impresoras
	session.Post("/addprinter", printerHandler.Add)
	session.Post("/setprinter", printerHandler.Set)
	session.Post("/rmprinter", printerHandler.Remove)

	// Grupos
	session.Post("/addgroup", groupHandler.Add)
	session.Post("/setgroup", groupHandler.Set)
	session.Post("/rmgroup", groupHandler.Remove)

	// Trabajos
	session.Post("/addjob", jobHandler.Add)
	session.Post("/setjob", jobHandler.Set)
	session.Post("/rmjob", jobHandler.Remove)
}
