package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Facturas-api/internal/application/analytics"
	"github.com/jhoicas/Facturas-api/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC   *billing.InvoiceUseCase
	CustomerUC  *billing.CustomerUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas del dashboard.
func Router(app *fiber.App, deps RouterDeps) {
	dashboard := app.Group("/dashboard")

	// Invoices: listado + formularios de crear/editar + acción inline de borrar
	invoices := dashboard.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Post("/:id", invoiceHandler.Update)
	invoices.Post("/:id/delete", invoiceHandler.Delete)

	// Customers: solo lectura, para el selector del formulario
	customers := dashboard.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)

	// Resumen para las tarjetas del dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
