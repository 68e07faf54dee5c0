package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/taller-api/internal/application/auth"
	"github.com/jhoicas/taller-api/internal/application/billing"
	"github.com/jhoicas/taller-api/internal/application/registry"
	"github.com/jhoicas/taller-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	VehicleUC       *registry.VehicleUseCase
	ServiceRecordUC *registry.ServiceRecordUseCase
	InvoiceUC       *billing.InvoiceUseCase
	PDFUC           *billing.PDFUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
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

	// Vehicles (protegido)
	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Post("/", vehicleHandler.Register)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id", RequireRole(entity.RoleAdmin), vehicleHandler.Delete)

	// Historial de servicios por vehículo (protegido)
	serviceHandler := NewServiceRecordHandler(deps.ServiceRecordUC)
	vehicles.Post("/:id/services", serviceHandler.Add)
	vehicles.Get("/:id/services", serviceHandler.List)
	vehicles.Get("/:id/services/summary", serviceHandler.Summary)
	protected.Delete("/services/:serviceId", serviceHandler.Delete)

	// Facturación (protegido)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	vehicles.Post("/:id/invoices", invoiceHandler.Create)
	vehicles.Get("/:id/invoices", invoiceHandler.ListByVehicle)
	vehicles.Get("/:id/invoices/summary", invoiceHandler.Summary)

	invoices := protected.Group("/invoices")
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id/status", invoiceHandler.UpdateStatus)
	invoices.Delete("/:id", RequireRole(entity.RoleAdmin), invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
}
