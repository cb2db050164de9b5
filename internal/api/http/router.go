package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/http/handlers"
	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Departments    *handlers.DepartmentHandler
	Employees      *handlers.EmployeeHandler
	Salaries       *handlers.SalaryHandler
	Promotions     *handlers.PromotionHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Every protected route pairs the bearer
// middleware with at most one role guard; role checks are exact matches.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/", cfg.Auth.Register)
	authGroup.Post("/token", cfg.Auth.Login)
	authGroup.Get("", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin), cfg.Auth.ListUsers)

	department := app.Group("/department", cfg.AuthMiddleware.Handle)
	department.Post("/createdepartment", auth.RequireRole(domain.RoleAdmin), cfg.Departments.Create)
	department.Get("", auth.RequireAuthenticated(), cfg.Departments.List)
	department.Get("/:departmentId", auth.RequireAuthenticated(), cfg.Departments.Get)
	department.Put("/:departmentId", auth.RequireRole(domain.RoleAdmin), cfg.Departments.Update)
	department.Delete("/:departmentId", auth.RequireRole(domain.RoleAdmin), cfg.Departments.Delete)

	employees := app.Group("/employees", cfg.AuthMiddleware.Handle)
	employees.Post("/createemployee", auth.RequireRole(domain.RoleAdmin), cfg.Employees.Create)
	employees.Get("", auth.RequireAuthenticated(), cfg.Employees.List)
	employees.Get("/:employeeId", auth.RequireAuthenticated(), cfg.Employees.Get)
	employees.Put("/:employeeId", auth.RequireRole(domain.RoleManager), cfg.Employees.Update)
	employees.Delete("/:employeeId", auth.RequireRole(domain.RoleAdmin), cfg.Employees.Delete)

	promotions := app.Group("/promotions", cfg.AuthMiddleware.Handle)
	promotions.Post("/createpromotion", auth.RequireRole(domain.RoleManager), cfg.Promotions.Create)
	promotions.Get("", auth.RequireRole(domain.RoleAdmin), cfg.Promotions.List)
	promotions.Get("/:promotionId", auth.RequireAuthenticated(), cfg.Promotions.Get)
	promotions.Delete("/:promotionId", auth.RequireRole(domain.RoleAdmin), cfg.Promotions.Delete)

	salary := app.Group("/salary", cfg.AuthMiddleware.Handle)
	salary.Post("", auth.RequireRole(domain.RoleManager), cfg.Salaries.Create)
	salary.Get("/:employeeId", auth.RequireAuthenticated(), cfg.Salaries.Get)
	salary.Put("/:employeeId", auth.RequireRole(domain.RoleManager), cfg.Salaries.Update)
	salary.Delete("/:employeeId", auth.RequireRole(domain.RoleAdmin), cfg.Salaries.Delete)
}
