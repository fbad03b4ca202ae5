package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/lot-allocation-bff/internal/application/dto"
	"github.com/jhoicas/lot-allocation-bff/internal/application/usecase"
)

// FilterHandler selects dependientes producto/proveedor/almacén.
type FilterHandler struct {
	uc *usecase.FilterUseCase
}

// NewFilterHandler construye el handler.
func NewFilterHandler(uc *usecase.FilterUseCase) *FilterHandler {
	return &FilterHandler{uc: uc}
}

// Current godoc
// @Summary      Selección de filtros guardada y opciones válidas
// @Tags         filters
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FilterStateResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/filters [get]
func (h *FilterHandler) Current(c *fiber.Ctx) error {
	out, err := h.uc.Current(c.UserContext(), GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Resolve godoc
// @Summary      Aplicar el cambio de un select
// @Description  Devuelve los campos dependientes que deben limpiarse y el estado resultante.
// @Tags         filters
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResolveFilterRequest  true  "Campo tocado y selección"
// @Success      200   {object}  dto.ResolveFilterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/filters/resolve [post]
func (h *FilterHandler) Resolve(c *fiber.Ctx) error {
	var in dto.ResolveFilterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Resolve(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
