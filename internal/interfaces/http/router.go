package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-server/internal/application/auth"
	"github.com/jhoicas/inventario-server/internal/application/usecase"
)

// Nombres fijos bajo los que se publican los dos servicios lógicos en el
// mismo puerto de escucha.
const (
	AuthServicePath      = "/api/v1/auth"
	InventoryServicePath = "/api/v1/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	EmployeeUC *usecase.EmployeeUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra (bind) los dos servicios bajo sus nombres fijos. El
// shutdown del listener los despublica a la vez.
func Router(app *fiber.App, deps RouterDeps) {
	// AuthService (público)
	authGroup := app.Group(AuthServicePath)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// InventoryService (requiere Bearer Token)
	inv := app.Group(InventoryServicePath, AuthMiddleware(deps.JWTSecret))

	products := inv.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Gestión de empleados: además del filtro por claim, cada caso de uso
	// re-verifica el rol del actor contra la DB.
	employees := inv.Group("/employees", RequireRole("admin"))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
}
