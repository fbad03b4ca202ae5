package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/lot-allocation-bff/internal/application/allocation"
	"github.com/jhoicas/lot-allocation-bff/internal/application/dto"
	"github.com/jhoicas/lot-allocation-bff/internal/application/usecase"
	"github.com/jhoicas/lot-allocation-bff/internal/application/validation"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

// AllocationHandler pantalla de asignación de lotes (引当): sesión, borrador por línea,
// acciones contra el backend y toast.
type AllocationHandler struct {
	store   *allocation.SessionStore
	orders  *usecase.OrderUseCase
	filters *usecase.FilterUseCase
	// onSessions recibe el número de sesiones abiertas tras crear una (métricas).
	onSessions func(n int)
}

// NewAllocationHandler construye el handler. filters y onSessions pueden ser nil.
func NewAllocationHandler(store *allocation.SessionStore, orders *usecase.OrderUseCase, filters *usecase.FilterUseCase, onSessions func(n int)) *AllocationHandler {
	return &AllocationHandler{store: store, orders: orders, filters: filters, onSessions: onSessions}
}

func (h *AllocationHandler) session(c *fiber.Ctx) (*allocation.Session, error) {
	return h.store.Get(c.Params("sid"), GetUserID(c))
}

// lineParam admite 0 o negativos: las acciones los rechazan con NOT_READY.
func lineParam(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("lineId"), 10, 64)
	return id, err == nil
}

func lineResponse(s *allocation.Session, lineID int64, res *entity.AllocationResult) dto.LineResponse {
	return dto.LineResponse{LineSnapshot: s.State.Snapshot(lineID), Result: res}
}

// CreateSession godoc
// @Summary      Abrir sesión de asignación
// @Description  Carga la selección de filtros guardada del usuario.
// @Tags         allocation
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/allocation/sessions [post]
func (h *AllocationHandler) CreateSession(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	s := h.store.Create(userID)
	if h.filters != nil {
		if st, err := h.filters.Current(c.UserContext(), userID); err == nil {
			s.SetFilters(st.Selection)
		}
	}
	if h.onSessions != nil {
		h.onSessions(h.store.Len())
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SessionResponse{ID: s.ID, CreatedAt: s.CreatedAt})
}

// GetSession godoc
// @Summary      Estado de la sesión
// @Tags         allocation
// @Security     Bearer
// @Produce      json
// @Param        sid  path  string  true  "ID de sesión"
// @Success      200  {object}  dto.SessionStateResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/allocation/sessions/{sid} [get]
func (h *AllocationHandler) GetSession(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	out := dto.SessionStateResponse{
		SessionResponse: dto.SessionResponse{ID: s.ID, CreatedAt: s.CreatedAt},
		Filters:         s.Filters(),
	}
	if msg, ok := s.Toast.Current(); ok {
		out.Toast = &msg
	}
	return c.JSON(out)
}

// ResetSession godoc
// @Summary      Reiniciar la sesión (nueva carga de página)
// @Description  Descarta borradores, toast y filtros. Con close=true además cierra la sesión.
// @Tags         allocation
// @Security     Bearer
// @Param        sid    path   string  true   "ID de sesión"
// @Param        close  query  bool    false  "Cerrar la sesión"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/allocation/sessions/{sid} [delete]
func (h *AllocationHandler) ResetSession(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	s.Reset()
	if c.QueryBool("close") {
		if err := h.store.Delete(s.ID, s.UserID); err != nil {
			return writeError(c, err)
		}
		if h.onSessions != nil {
			h.onSessions(h.store.Len())
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResolveFilters godoc
// @Summary      Cambiar un select de la sesión
// @Tags         allocation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sid   path  string                    true  "ID de sesión"
// @Param        body  body  dto.ResolveFilterRequest  true  "Campo tocado y selección"
// @Success      200   {object}  dto.ResolveFilterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/allocation/sessions/{sid}/filters [post]
func (h *AllocationHandler) ResolveFilters(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	if h.filters == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_IMPLEMENTED", Message: "filtros no configurados"})
	}
	var in dto.ResolveFilterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.filters.Resolve(c.UserContext(), s.UserID, in)
	if err != nil {
		return writeError(c, err)
	}
	s.SetFilters(out.Selection)
	return c.JSON(out)
}

// Toast godoc
// @Summary      Mensaje activo del toast
// @Tags         allocation
// @Security     Bearer
// @Produce      json
// @Param        sid  path  string  true  "ID de sesión"
// @Success      200  {object}  dto.ToastResponse
// @Router       /api/allocation/sessions/{sid}/toast [get]
func (h *AllocationHandler) Toast(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	var out dto.ToastResponse
	if msg, ok := s.Toast.Current(); ok {
		out.Message = &msg
	}
	return c.JSON(out)
}

// Line godoc
// @Summary      Borrador local de una línea
// @Description  Con order_id se carga la cantidad requerida de la línea desde el pedido.
// @Tags         allocation
// @Security     Bearer
// @Produce      json
// @Param        sid       path   string  true   "ID de sesión"
// @Param        lineId    path   int     true   "ID de línea de pedido"
// @Param        order_id  query  int     false  "ID del pedido"
// @Success      200  {object}  dto.LineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/allocation/sessions/{sid}/lines/{lineId} [get]
func (h *AllocationHandler) Line(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	lineID, ok := lineParam(c)
	if !ok {
		return invalidID(c, "lineId")
	}
	if raw := c.Query("order_id"); raw != "" {
		orderID, ok := parseID(raw)
		if !ok {
			return invalidID(c, "order_id")
		}
		line, err := h.orders.Line(s.ReadContext(c.UserContext()), orderID, lineID)
		if err != nil {
			return writeError(c, err)
		}
		s.State.SetRequired(lineID, line.RequiredQuantity)
	}
	return c.JSON(lineResponse(s, lineID, nil))
}

// Candidates godoc
// @Summary      Lotes candidatos para la línea
// @Description  Orden FEFO/FIFO calculado por el servicio externo; el almacén es informativo.
// @Tags         allocation
// @Security     Bearer
// @Produce      json
// @Param        sid                  path   string  true   "ID de sesión"
// @Param        lineId               path   int     true   "ID de línea de pedido"
// @Param        product_id           query  int     false  "Producto"
// @Param        customer_code        query  string  false  "Cliente"
// @Param        product_code         query  string  false  "Código de producto"
// @Param        delivery_place_code  query  string  false  "Lugar de entrega"
// @Param        strategy             query  string  false  "fefo | fifo"
// @Param        limit                query  int     false  "Límite"
// @Success      200  {array}   entity.AllocationCandidate
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/allocation/sessions/{sid}/lines/{lineId}/candidates [get]
func (h *AllocationHandler) Candidates(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	lineID, ok := lineParam(c)
	if !ok {
		return invalidID(c, "lineId")
	}
	var q dto.CandidateQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, queryError(err))
	}
	if r := validation.Validate(q); !r.OK() {
		return writeError(c, r.Err())
	}
	out, err := s.Actions(lineID, q.ProductID).Candidates(c.UserContext(), q.Query())
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		out = []entity.AllocationCandidate{}
	}
	return c.JSON(out)
}

// AssignLot godoc
// @Summary      Fijar la cantidad de un lote en el borrador de la línea
// @Description  Cantidad cero quita el lote. Superar la cantidad requerida solo genera aviso.
// @Tags         allocation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sid     path  string                true  "ID de sesión"
// @Param        lineId  path  int                   true  "ID de línea de pedido"
// @Param        lotId   path  int                   true  "ID del lote"
// @Param        body    body  dto.AssignLotRequest  true  "Cantidad"
// @Success      200  {object}  dto.LineResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/allocation/sessions/{sid}/lines/{lineId}/lots/{lotId} [put]
func (h *AllocationHandler) AssignLot(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	lineID, ok := lineParam(c)
	if !ok {
		return invalidID(c, "lineId")
	}
	lotID, ok := parseID(c.Params("lotId"))
	if !ok {
		return invalidID(c, "lotId")
	}
	var in dto.AssignLotRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if r := validation.Validate(in); !r.OK() {
		return writeError(c, r.Err())
	}
	if err := s.State.Assign(lineID, lotID, in.Quantity); err != nil {
		return writeError(c, err)
	}
	if in.RequiredQuantity != nil {
		s.State.SetRequired(lineID, *in.RequiredQuantity)
	}
	return c.JSON(lineResponse(s, lineID, nil))
}

// Save godoc
// @Summary      Confirmar el borrador de la línea
// @Tags         allocation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sid     path  string               true   "ID de sesión"
// @Param        lineId  path  int                  true   "ID de línea de pedido"
// @Param        body    body  dto.SaveLineRequest  false  "Producto"
// @Success      200  {object}  dto.LineResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/allocation/sessions/{sid}/lines/{lineId}/save [post]
func (h *AllocationHandler) Save(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	lineID, ok := lineParam(c)
	if !ok {
		return invalidID(c, "lineId")
	}
	var in dto.SaveLineRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	res, err := s.Save(c.UserContext(), lineID, in.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(lineResponse(s, lineID, res))
}

// Cancel godoc
// @Summary      Cancelar la línea
// @Description  Un borrador se descarta localmente; una línea confirmada se cancela en el backend.
// @Tags         allocation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sid     path  string                 true   "ID de sesión"
// @Param        lineId  path  int                    true   "ID de línea de pedido"
// @Param        body    body  dto.CancelLineRequest  false  "Asignaciones a cancelar (todas si se omite)"
// @Success      200  {object}  dto.LineResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/allocation/sessions/{sid}/lines/{lineId}/cancel [post]
func (h *AllocationHandler) Cancel(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	lineID, ok := lineParam(c)
	if !ok {
		return invalidID(c, "lineId")
	}
	var in dto.CancelLineRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	if r := validation.Validate(in); !r.OK() {
		return writeError(c, r.Err())
	}
	res, err := s.Cancel(c.UserContext(), lineID, in.ProductID, entity.CancelAllocationInput{AllocationIDs: in.AllocationIDs})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(lineResponse(s, lineID, res))
}

// WarehouseAllocations godoc
// @Summary      Guardar el reparto de la línea por almacén
// @Tags         allocation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sid     path  string                          true  "ID de sesión"
// @Param        lineId  path  int                             true  "ID de línea de pedido"
// @Param        body    body  dto.WarehouseAllocationRequest  true  "Reparto"
// @Success      200  {object}  dto.LineResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/allocation/sessions/{sid}/lines/{lineId}/warehouse-allocations [post]
func (h *AllocationHandler) WarehouseAllocations(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	lineID, ok := lineParam(c)
	if !ok {
		return invalidID(c, "lineId")
	}
	var in dto.WarehouseAllocationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := s.Actions(lineID, in.ProductID).SaveWarehouseAllocation(c.UserContext(), entity.WarehouseAllocationInput{Allocations: in.Allocations})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(lineResponse(s, lineID, res))
}

// DragAssign godoc
// @Summary      Asignar un lote arrastrándolo a una línea
// @Description  Registra una sugerencia manual en el backend; el borrador local no cambia.
// @Tags         allocation
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        sid   path  string                 true  "ID de sesión"
// @Param        body  body  dto.DragAssignRequest  true  "Línea, lote y cantidad"
// @Success      200  {object}  entity.ManualSuggestionResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/allocation/sessions/{sid}/drag-assign [post]
func (h *AllocationHandler) DragAssign(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return writeError(c, err)
	}
	var in dto.DragAssignRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := s.DragAssigner().DragAssign(c.UserContext(), in.OrderLineID, in.LotID, in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
