// Package http expone la API REST del punto de venta sobre Fiber.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartshoe/pos-api/internal/application/analytics"
	"github.com/smartshoe/pos-api/internal/application/auth"
	"github.com/smartshoe/pos-api/internal/application/sales"
	"github.com/smartshoe/pos-api/internal/application/usecase"
	"github.com/smartshoe/pos-api/internal/domain/entity"
	"github.com/smartshoe/pos-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias inyectadas al router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	CatalogUC    *usecase.CatalogUseCase
	InventoryUC  *usecase.InventoryUseCase
	CreateSaleUC *sales.CreateSaleUseCase
	SalesUC      *sales.SalesUseCase
	DashboardUC  *analytics.DashboardUseCase
	ReportsUC    *analytics.ReportsUseCase
	Renderer     *pdf.InvoiceRenderer
	JWTSecret    string
}

// Router registra todas las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// ── Rutas públicas ────────────────────────────────────────────────────────
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// ── Rutas protegidas ──────────────────────────────────────────────────────
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	categories := protected.Group("/categories")
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin), catalogHandler.DeleteCategory)
	brands := protected.Group("/brands")
	brands.Post("/", catalogHandler.CreateBrand)
	brands.Get("/", catalogHandler.ListBrands)
	brands.Delete("/:id", RequireRole(entity.RoleAdmin), catalogHandler.DeleteBrand)

	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory := protected.Group("/inventory")
	inventory.Post("/stock-in", inventoryHandler.StockIn)
	inventory.Get("/transactions", inventoryHandler.ListTransactions)

	// Los reportes van ANTES de /sales/:id para que "analytics" no se
	// capture como id de venta.
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	reports := protected.Group("/sales/analytics")
	reports.Get("/overview", reportsHandler.Overview)
	reports.Get("/trend", reportsHandler.Trend)
	reports.Get("/categories", reportsHandler.Categories)
	reports.Get("/brands", reportsHandler.Brands)
	reports.Get("/top-products", reportsHandler.TopProducts)
	reports.Get("/inventory", reportsHandler.Inventory)

	saleHandler := NewSaleHandler(deps.CreateSaleUC, deps.SalesUC, deps.Renderer)
	salesGroup := protected.Group("/sales")
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/invoice", saleHandler.Invoice)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/sales-trend", dashboardHandler.SalesTrend)
	dashboard.Get("/low-stock", dashboardHandler.LowStock)
}
