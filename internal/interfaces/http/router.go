package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/taller-api/internal/application/analytics"
	"github.com/jhoicas/taller-api/internal/application/auth"
	"github.com/jhoicas/taller-api/internal/application/repairs"
	"github.com/jhoicas/taller-api/internal/application/sales"
	"github.com/jhoicas/taller-api/internal/application/usecase"
	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	ClientUC    *usecase.ClientUseCase
	CreateSale  *sales.CreateSaleUseCase
	SaleQuery   *sales.SaleQueryUseCase
	RepairUC    *repairs.RepairUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API con sus roles permitidos.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	sellerOrAdmin := RequireRole(entity.RoleSeller, entity.RoleAdmin)
	techOrAdmin := RequireRole(entity.RoleTechnician, entity.RoleAdmin)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleSeller, entity.RoleTechnician)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Products (lectura para todos, escritura solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/:id", anyRole, productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Clients (vendedor y admin)
	clients := protected.Group("/clients", sellerOrAdmin)
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Sales (vendedor y admin; el vendedor solo ve las suyas)
	salesGroup := protected.Group("/sales", sellerOrAdmin)
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SaleQuery)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Repairs
	repairsGroup := protected.Group("/repairs")
	repairHandler := NewRepairHandler(deps.RepairUC)
	repairsGroup.Get("/technicians/:section", sellerOrAdmin, userHandler.TechniciansBySection)
	repairsGroup.Post("/", sellerOrAdmin, repairHandler.Create)
	repairsGroup.Get("/", anyRole, repairHandler.List)
	repairsGroup.Put("/:id/status", techOrAdmin, repairHandler.UpdateStatus)
	repairsGroup.Put("/:id/diagnosis", techOrAdmin, repairHandler.AddDiagnosis)

	// Dashboard (solo admin)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", adminOnly, dashboardHandler.Summary)
}
