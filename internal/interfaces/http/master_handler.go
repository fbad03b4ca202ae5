package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/lot-allocation-bff/internal/application/dto"
	"github.com/jhoicas/lot-allocation-bff/internal/application/usecase"
)

// MasterHandler acciones masivas sobre maestros (protegido).
type MasterHandler struct {
	uc *usecase.MasterUseCase
}

// NewMasterHandler construye el handler.
func NewMasterHandler(uc *usecase.MasterUseCase) *MasterHandler {
	return &MasterHandler{uc: uc}
}

// BulkDelete godoc
// @Summary      Borrado masivo de maestros
// @Description  Cada registro lleva su versión; los conflictos se reportan por registro.
// @Tags         masters
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        resource  path  string           true  "Maestro (ej. products, suppliers)"
// @Param        body      body  dto.BulkRequest  true  "Registros"
// @Success      200  {object}  dto.BulkResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/masters/{resource}/bulk-delete [post]
func (h *MasterHandler) BulkDelete(c *fiber.Ctx) error {
	var in dto.BulkRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.BulkDelete(c.UserContext(), c.Params("resource"), in.Items)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// BulkRestore godoc
// @Summary      Restauración masiva de maestros
// @Tags         masters
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        resource  path  string           true  "Maestro (ej. products, suppliers)"
// @Param        body      body  dto.BulkRequest  true  "Registros"
// @Success      200  {object}  dto.BulkResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/masters/{resource}/bulk-restore [post]
func (h *MasterHandler) BulkRestore(c *fiber.Ctx) error {
	var in dto.BulkRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.BulkRestore(c.UserContext(), c.Params("resource"), in.Items)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
