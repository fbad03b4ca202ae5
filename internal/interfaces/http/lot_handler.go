package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/lot-allocation-bff/internal/application/dto"
	"github.com/jhoicas/lot-allocation-bff/internal/application/usecase"
	"github.com/jhoicas/lot-allocation-bff/internal/application/validation"
	"github.com/jhoicas/lot-allocation-bff/internal/domain/entity"
)

// LotHandler maneja las peticiones HTTP de lotes (protegido).
type LotHandler struct {
	uc *usecase.LotUseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(uc *usecase.LotUseCase) *LotHandler {
	return &LotHandler{uc: uc}
}

func lotQuery(c *fiber.Ctx) (entity.LotFilter, error) {
	var q dto.LotListQuery
	if err := c.QueryParser(&q); err != nil {
		return entity.LotFilter{}, queryError(err)
	}
	if r := validation.Validate(q.PageRequest); !r.OK() {
		return entity.LotFilter{}, r.Err()
	}
	q.DefaultPage()
	return q.Filter(), nil
}

// List godoc
// @Summary      Listar lotes
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "Producto"
// @Param        supplier_id   query  string  false  "Proveedor"
// @Param        warehouse_id  query  string  false  "Almacén"
// @Param        status        query  string  false  "Estado del lote"
// @Param        with_stock    query  bool    false  "Solo lotes con stock"
// @Param        limit         query  int     false  "Límite (máx. 500)"
// @Param        offset        query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.LotListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/lots [get]
func (h *LotHandler) List(c *fiber.Ctx) error {
	f, err := lotQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Grouped godoc
// @Summary      Lotes agrupados por producto y proveedor
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "Producto"
// @Param        warehouse_id  query  string  false  "Almacén"
// @Success      200  {object}  dto.GroupedLotsResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/lots/grouped [get]
func (h *LotHandler) Grouped(c *fiber.Ctx) error {
	f, err := lotQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Grouped(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener lote por ID
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del lote"
// @Success      200  {object}  dto.LotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lots/{id} [get]
func (h *LotHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return invalidID(c, "id")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear lote
// @Tags         lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.LotInput  true  "Datos del lote"
// @Success      201   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/lots [post]
func (h *LotHandler) Create(c *fiber.Ctx) error {
	var in entity.LotInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar lote
// @Description  Con version se aplica control optimista; un conflicto responde 409.
// @Tags         lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "ID del lote"
// @Param        body  body  entity.LotInput  true  "Datos del lote"
// @Success      200   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/lots/{id} [put]
func (h *LotHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return invalidID(c, "id")
	}
	var in entity.LotInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Lock godoc
// @Summary      Bloquear cantidad de un lote
// @Tags         lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true   "ID del lote"
// @Param        body  body  entity.LotLockInput  false  "Cantidad y motivo"
// @Success      200   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/lots/{id}/lock [post]
func (h *LotHandler) Lock(c *fiber.Ctx) error {
	return h.lockAction(c, h.uc.Lock)
}

// Unlock godoc
// @Summary      Desbloquear cantidad de un lote
// @Tags         lots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true   "ID del lote"
// @Param        body  body  entity.LotLockInput  false  "Cantidad y motivo"
// @Success      200   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/lots/{id}/unlock [post]
func (h *LotHandler) Unlock(c *fiber.Ctx) error {
	return h.lockAction(c, h.uc.Unlock)
}

type lockFunc func(ctx context.Context, id int64, in entity.LotLockInput) (*dto.LotResponse, error)

func (h *LotHandler) lockAction(c *fiber.Ctx, fn lockFunc) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return invalidID(c, "id")
	}
	var in entity.LotLockInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	out, err := fn(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
