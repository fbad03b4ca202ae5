package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/lot-allocation-bff/internal/application/allocation"
	"github.com/jhoicas/lot-allocation-bff/internal/application/usecase"
	"github.com/jhoicas/lot-allocation-bff/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LotUC      *usecase.LotUseCase
	OrderUC    *usecase.OrderUseCase
	FilterUC   *usecase.FilterUseCase
	PlanningUC *usecase.PlanningUseCase
	SAPUC      *usecase.SAPUseCase
	MasterUC   *usecase.MasterUseCase
	Sessions   *allocation.SessionStore
	Metrics    *metrics.Metrics // opcional
	JWTSecret  string
	// MasterRoles roles con acceso a acciones masivas; vacío = cualquier usuario autenticado.
	MasterRoles []string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	var onSessions func(int)
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
		onSessions = deps.Metrics.SetSessions
	}

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Lots
	lots := protected.Group("/lots")
	lotHandler := NewLotHandler(deps.LotUC)
	lots.Get("/", lotHandler.List)
	lots.Post("/", lotHandler.Create)
	lots.Get("/grouped", lotHandler.Grouped)
	lots.Get("/:id", lotHandler.GetByID)
	lots.Put("/:id", lotHandler.Update)
	lots.Post("/:id/lock", lotHandler.Lock)
	lots.Post("/:id/unlock", lotHandler.Unlock)

	// Orders
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/allocation-slip", orderHandler.AllocationSlip)

	// Filters
	filters := protected.Group("/filters")
	filterHandler := NewFilterHandler(deps.FilterUC)
	filters.Get("/", filterHandler.Current)
	filters.Post("/resolve", filterHandler.Resolve)

	// Allocation (引当)
	sessions := protected.Group("/allocation/sessions")
	allocHandler := NewAllocationHandler(deps.Sessions, deps.OrderUC, deps.FilterUC, onSessions)
	sessions.Post("/", allocHandler.CreateSession)
	sessions.Get("/:sid", allocHandler.GetSession)
	sessions.Delete("/:sid", allocHandler.ResetSession)
	sessions.Post("/:sid/filters", allocHandler.ResolveFilters)
	sessions.Get("/:sid/toast", allocHandler.Toast)
	sessions.Post("/:sid/drag-assign", allocHandler.DragAssign)
	sessions.Get("/:sid/lines/:lineId", allocHandler.Line)
	sessions.Get("/:sid/lines/:lineId/candidates", allocHandler.Candidates)
	sessions.Put("/:sid/lines/:lineId/lots/:lotId", allocHandler.AssignLot)
	sessions.Post("/:sid/lines/:lineId/save", allocHandler.Save)
	sessions.Post("/:sid/lines/:lineId/cancel", allocHandler.Cancel)
	sessions.Post("/:sid/lines/:lineId/warehouse-allocations", allocHandler.WarehouseAllocations)

	// Planning y SAP
	planningHandler := NewPlanningHandler(deps.PlanningUC, deps.SAPUC)
	protected.Get("/replenishment/recommendations", planningHandler.Recommendations)
	protected.Post("/replenishment/run", planningHandler.RunReplenishment)
	protected.Get("/forecast", planningHandler.Forecast)
	protected.Post("/sap/sales-orders", planningHandler.RegisterSAPOrders)

	// Masters
	masters := protected.Group("/masters", RequireRole(deps.MasterRoles...))
	masterHandler := NewMasterHandler(deps.MasterUC)
	masters.Post("/:resource/bulk-delete", masterHandler.BulkDelete)
	masters.Post("/:resource/bulk-restore", masterHandler.BulkRestore)
}
