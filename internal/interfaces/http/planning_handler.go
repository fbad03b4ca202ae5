package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/lot-allocation-bff/internal/application/dto"
	"github.com/jhoicas/lot-allocation-bff/internal/application/usecase"
	"github.com/jhoicas/lot-allocation-bff/internal/application/validation"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

// PlanningHandler reposición, pronóstico de demanda e integración SAP (protegido).
type PlanningHandler struct {
	planning *usecase.PlanningUseCase
	sap      *usecase.SAPUseCase
}

// NewPlanningHandler construye el handler.
func NewPlanningHandler(planning *usecase.PlanningUseCase, sap *usecase.SAPUseCase) *PlanningHandler {
	return &PlanningHandler{planning: planning, sap: sap}
}

// Recommendations godoc
// @Summary      Recomendaciones de reposición
// @Tags         planning
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Almacén"
// @Success      200  {array}   entity.ReplenishmentRecommendation
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/replenishment/recommendations [get]
func (h *PlanningHandler) Recommendations(c *fiber.Ctx) error {
	out, err := h.planning.Recommendations(c.UserContext(), c.Query("warehouse_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RunReplenishment godoc
// @Summary      Recalcular recomendaciones de reposición
// @Tags         planning
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.ReplenishmentRun  false  "Alcance del cálculo"
// @Success      200   {array}   entity.ReplenishmentRecommendation
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/replenishment/run [post]
func (h *PlanningHandler) RunReplenishment(c *fiber.Ctx) error {
	var in entity.ReplenishmentRun
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	out, err := h.planning.Run(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Forecast godoc
// @Summary      Pronóstico diario de demanda
// @Tags         planning
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Producto"
// @Param        date_from   query  string  false  "Desde (YYYY-MM-DD)"
// @Param        date_to     query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {array}   entity.DemandForecast
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/forecast [get]
func (h *PlanningHandler) Forecast(c *fiber.Ctx) error {
	var q dto.ForecastQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, queryError(err))
	}
	if r := validation.Validate(q); !r.OK() {
		return writeError(c, r.Err())
	}
	out, err := h.planning.Forecast(c.UserContext(), q.Filter())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RegisterSAPOrders godoc
// @Summary      Registrar pedidos de venta SAP
// @Tags         sap
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SAPSalesOrdersRequest  true  "Pedidos"
// @Success      201   {object}  entity.SAPRegisterResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sap/sales-orders [post]
func (h *PlanningHandler) RegisterSAPOrders(c *fiber.Ctx) error {
	var in dto.SAPSalesOrdersRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.sap.Register(c.UserContext(), in.Orders)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
