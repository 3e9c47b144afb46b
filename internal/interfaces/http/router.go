package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wsantos/estoque-api/internal/application/analytics"
	"github.com/wsantos/estoque-api/internal/application/auth"
	"github.com/wsantos/estoque-api/internal/application/reports"
	"github.com/wsantos/estoque-api/internal/application/sales"
	"github.com/wsantos/estoque-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	RecordSale  *sales.RecordSaleUseCase
	ListSales   *sales.ListSalesUseCase
	DashboardUC *analytics.DashboardUseCase
	SalesReport *reports.SalesReportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Put("/:id/stock", productHandler.UpdateStock)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/image", productHandler.UploadImage)
	products.Get("/:id/image", productHandler.GetImage)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.RecordSale, deps.ListSales)
	salesGroup.Post("/", saleHandler.Record)
	salesGroup.Get("/", saleHandler.List)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Reports (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.SalesReport)
	reportsGroup.Get("/sales/pdf", reportHandler.SalesPDF)
}
