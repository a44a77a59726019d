package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sga-almacen/internal/application/dto"
	"github.com/tu-usuario/sga-almacen/internal/application/traspasos"
	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
)

// TraspasoHandler maneja las órdenes de traspaso (protegido).
type TraspasoHandler struct {
	uc *traspasos.UseCase
}

// NewTraspasoHandler construye el handler.
func NewTraspasoHandler(uc *traspasos.UseCase) *TraspasoHandler {
	return &TraspasoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear una orden de traspaso multilínea
// @Description  Comprueba la suficiencia de stock por artículo en los almacenes
// @Description  autorizados; cualquier déficit rechaza el envío completo.
// @Tags         traspasos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearOrdenRequest  true  "líneas, centro y almacenes del operario"
// @Success      201   {object}  dto.OrdenTraspasoDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/traspasos [post]
func (h *TraspasoHandler) Crear(c *fiber.Ctx) error {
	op := GetContexto(c)
	var in dto.CrearOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	orden, err := h.uc.CrearOrden(c.Context(), op, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(aOrdenDTO(orden))
}

// Listar godoc
// @Summary      Listar órdenes de traspaso de la empresa
// @Tags         traspasos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (def. 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.OrdenTraspasoDTO
// @Router       /api/traspasos [get]
func (h *TraspasoHandler) Listar(c *fiber.Ctx) error {
	op := GetContexto(c)
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()

	ordenes, err := h.uc.ListarOrdenes(c.Context(), op)
	if err != nil {
		return responderError(c, err)
	}
	out := make([]dto.OrdenTraspasoDTO, 0, len(ordenes))
	for _, o := range ordenes {
		out = append(out, aOrdenDTO(o))
	}
	return c.JSON(paginar(out, page))
}

// ActualizarLinea godoc
// @Summary      Actualizar cantidad u operario de una línea de traspaso
// @Tags         traspasos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ActualizarLineaRequest  true  "cambios"
// @Success      200   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/traspasos/{id}/lineas/{linea} [put]
func (h *TraspasoHandler) ActualizarLinea(c *fiber.Ctx) error {
	op := GetContexto(c)
	numLinea, err := strconv.Atoi(c.Params("linea"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número de línea inválido"})
	}
	var in dto.ActualizarLineaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ActualizarLinea(c.Context(), op, c.Params("id"), numLinea, in); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "línea actualizada"})
}

// CancelarLinea godoc
// @Summary      Cancelar una línea de traspaso
// @Tags         traspasos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/traspasos/{id}/lineas/{linea} [delete]
func (h *TraspasoHandler) CancelarLinea(c *fiber.Ctx) error {
	op := GetContexto(c)
	numLinea, err := strconv.Atoi(c.Params("linea"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número de línea inválido"})
	}
	if err := h.uc.CancelarLinea(c.Context(), op, c.Params("id"), numLinea); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "línea cancelada"})
}

func aOrdenDTO(o entity.OrdenTraspaso) dto.OrdenTraspasoDTO {
	out := dto.OrdenTraspasoDTO{
		ID:            o.ID,
		CreadoPor:     o.CreadoPor,
		FechaCreacion: o.FechaCreacion,
		Lineas:        make([]dto.LineaTraspasoDTO, 0, len(o.Lineas)),
	}
	for _, l := range o.Lineas {
		out.Lineas = append(out.Lineas, dto.LineaTraspasoDTO{
			NumLinea:           l.NumLinea,
			CodigoArticulo:     l.CodigoArticulo,
			Cantidad:           l.Cantidad,
			AlmacenOrigen:      l.AlmacenOrigen,
			UbicacionOrigen:    l.UbicacionOrigen,
			AlmacenDestino:     l.AlmacenDestino,
			UbicacionDestino:   l.UbicacionDestino,
			IDOperarioAsignado: l.IDOperarioAsignado,
			Estado:             string(l.Estado),
		})
	}
	return out
}
