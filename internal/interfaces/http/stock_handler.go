package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sga-almacen/internal/application/dto"
	"github.com/tu-usuario/sga-almacen/internal/application/ports"
	"github.com/tu-usuario/sga-almacen/internal/application/stocks"
	"github.com/tu-usuario/sga-almacen/internal/domain/filtro"
)

// StockHandler maneja las consultas de stock disponible (protegido).
type StockHandler struct {
	uc *stocks.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stocks.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Consultar godoc
// @Summary      Consultar stock disponible agrupado por artículo
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        articulo    query  string  false  "Código de artículo"
// @Param        almacen     query  string  false  "Almacén"
// @Param        lote        query  string  false  "Lote"
// @Param        pasillo     query  string  false  "Segmento de ubicación: pasillo"
// @Param        ubicacion   query  string  false  "Ubicación directa completa"
// @Success      200  {array}   dto.GrupoArticuloDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/stocks [get]
func (h *StockHandler) Consultar(c *fiber.Ctx) error {
	op := GetContexto(c)
	var in dto.ConsultaStockRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}

	consulta := ports.ConsultaStock{
		CodigoArticulo: in.CodigoArticulo,
		Lote:           in.Lote,
		Almacen:        in.Almacen,
		Descripcion:    in.Descripcion,
	}
	grupos, err := h.uc.Consultar(c.Context(), op, consulta, filtroDesdeRequest(in))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":  len(grupos),
		"grupos": grupos,
	})
}

// filtroDesdeRequest construye el filtro en memoria a partir de los campos de
// ubicación de la petición; sin campos de ubicación no hay filtro.
func filtroDesdeRequest(in dto.ConsultaStockRequest) filtro.Filtro {
	if in.Pasillo == "" && in.Estanteria == "" && in.Altura == "" && in.Posicion == "" && in.UbicacionDirecta == "" {
		return nil
	}
	return filtro.FiltroUbicacion{
		Pasillo:          in.Pasillo,
		Estanteria:       in.Estanteria,
		Altura:           in.Altura,
		Posicion:         in.Posicion,
		UbicacionDirecta: in.UbicacionDirecta,
	}
}
