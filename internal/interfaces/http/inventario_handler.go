package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sga-almacen/internal/application/conteo"
	"github.com/tu-usuario/sga-almacen/internal/application/dto"
	"github.com/tu-usuario/sga-almacen/internal/application/inventarios"
	"github.com/tu-usuario/sga-almacen/internal/application/reconteo"
	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
)

// InventarioHandler maneja el ciclo de vida de inventarios, el conteo y el
// reconteo de líneas problemáticas (protegido).
type InventarioHandler struct {
	ciclo      *inventarios.UseCase
	conteoUC   *conteo.UseCase
	reconteoUC *reconteo.UseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(ciclo *inventarios.UseCase, conteoUC *conteo.UseCase, reconteoUC *reconteo.UseCase) *InventarioHandler {
	return &InventarioHandler{ciclo: ciclo, conteoUC: conteoUC, reconteoUC: reconteoUC}
}

// Crear godoc
// @Summary      Crear un inventario (la foto de stock la toma el ERP)
// @Tags         inventarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearInventarioRequest  true  "almacen, alcance (TOTAL|PARCIAL)"
// @Success      201   {object}  dto.InventarioDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventarios [post]
func (h *InventarioHandler) Crear(c *fiber.Ctx) error {
	op := GetContexto(c)
	var in dto.CrearInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	inv, err := h.ciclo.Crear(c.Context(), op, in.Almacen, entity.AlcanceInventario(in.Alcance))
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(aInventarioDTO(inv))
}

// Listar godoc
// @Summary      Listar inventarios de la empresa
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (def. 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.InventarioDTO
// @Router       /api/inventarios [get]
func (h *InventarioHandler) Listar(c *fiber.Ctx) error {
	op := GetContexto(c)
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()

	lista, err := h.ciclo.Listar(c.Context(), op)
	if err != nil {
		return responderError(c, err)
	}
	out := make([]dto.InventarioDTO, 0, len(lista))
	for _, inv := range lista {
		out = append(out, aInventarioDTO(inv))
	}
	return c.JSON(paginar(out, page))
}

// Lineas godoc
// @Summary      Líneas de conteo de la sesión del inventario
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.LineaConteoDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/lineas [get]
func (h *InventarioHandler) Lineas(c *fiber.Ctx) error {
	op := GetContexto(c)
	lineas, err := h.conteoUC.Lineas(c.Context(), op, c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	out := make([]dto.LineaConteoDTO, 0, len(lineas))
	for _, l := range lineas {
		out = append(out, dto.LineaConteoDTO{
			NumLinea:        l.NumLinea,
			CodigoArticulo:  l.CodigoArticulo,
			Descripcion:     l.Descripcion,
			Ubicacion:       l.Ubicacion,
			Lote:            l.Lote,
			FechaCaducidad:  l.FechaCaducidad,
			StockActual:     l.StockActual,
			CantidadContada: l.CantidadContada,
		})
	}
	return c.JSON(out)
}

// ValidarLinea godoc
// @Summary      Validar el cambio de cantidad de una línea contra los límites del operario
// @Description  Si el límite diario se excede, la línea queda revertida a la
// @Description  cantidad de la foto y la respuesta lo indica; no es un error.
// @Tags         inventarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidarLineaRequest  true  "cantidad tecleada"
// @Success      200   {object}  dto.ValidarLineaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/lineas/{linea}/validar [post]
func (h *InventarioHandler) ValidarLinea(c *fiber.Ctx) error {
	op := GetContexto(c)
	numLinea, err := strconv.Atoi(c.Params("linea"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "número de línea inválido"})
	}
	var in dto.ValidarLineaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.conteoUC.ValidarLimiteOperario(c.Context(), op, c.Params("id"), numLinea, in.Cantidad)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.ValidarLineaResponse{
		Aceptada:            res.Aceptada,
		UnidadesExcedidas:   res.UnidadesExcedidas,
		EurosExcedidos:      res.EurosExcedidos,
		CantidadAplicada:    res.CantidadAplicada,
		ValorDiferencias:    res.ValorDiferencias,
		UnidadesDiferencias: res.UnidadesDiferencias,
	})
}

// GuardarConteo godoc
// @Summary      Guardar el conteo completo de la sesión
// @Description  Envía todas las líneas; las no contadas se guardan con
// @Description  contada = foto (sin diferencia).
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/conteo [post]
func (h *InventarioHandler) GuardarConteo(c *fiber.Ctx) error {
	op := GetContexto(c)
	if err := h.conteoUC.GuardarConteo(c.Context(), op, c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "conteo guardado"})
}

// LineasProblematicas godoc
// @Summary      Cargar las líneas problemáticas del inventario
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LineaProblematicaDTO
// @Router       /api/inventarios/{id}/problematicas [get]
func (h *InventarioHandler) LineasProblematicas(c *fiber.Ctx) error {
	op := GetContexto(c)
	lineas, err := h.reconteoUC.CargarLineasProblematicas(c.Context(), op, c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	out := make([]dto.LineaProblematicaDTO, 0, len(lineas))
	for _, l := range lineas {
		out = append(out, dto.LineaProblematicaDTO{
			CodigoArticulo:    l.CodigoArticulo,
			Descripcion:       l.Descripcion,
			Ubicacion:         l.Ubicacion,
			Lote:              l.Lote,
			StockSnapshot:     l.StockSnapshot,
			StockSistema:      l.StockSistema,
			CantidadPropuesta: l.StockSistema,
			CantidadRecontada: l.CantidadRecontada,
		})
	}
	return c.JSON(out)
}

// ValidarReconteo godoc
// @Summary      Validar el reconteo de una línea problemática
// @Tags         inventarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidarReconteoRequest  true  "línea y cantidad"
// @Success      200   {object}  dto.ValidarLineaResponse
// @Router       /api/inventarios/{id}/problematicas/validar [post]
func (h *InventarioHandler) ValidarReconteo(c *fiber.Ctx) error {
	op := GetContexto(c)
	var in dto.ValidarReconteoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.reconteoUC.ValidarLinea(c.Context(), op, c.Params("id"), in.CodigoArticulo, in.Ubicacion, in.Lote, in.Cantidad)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.ValidarLineaResponse{
		Aceptada:          res.Aceptada,
		UnidadesExcedidas: res.UnidadesExcedidas,
		EurosExcedidos:    res.EurosExcedidos,
		CantidadAplicada:  res.CantidadAplicada,
	})
}

// GuardarReconteo godoc
// @Summary      Guardar el reconteo y consolidar el inventario
// @Description  Estados posibles: CONSOLIDADO, CONSOLIDADO_CON_AVISOS y
// @Description  GUARDADO_SIN_CONSOLIDAR (guardado pero consolidación fallida,
// @Description  reintentable con /consolidar).
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResultadoReconteoDTO
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/reconteo [post]
func (h *InventarioHandler) GuardarReconteo(c *fiber.Ctx) error {
	op := GetContexto(c)
	res, err := h.reconteoUC.GuardarReconteo(c.Context(), op, c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.ResultadoReconteoDTO{Estado: string(res.Estado), Avisos: res.Avisos})
}

// Consolidar godoc
// @Summary      Reintentar la consolidación de un inventario
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResultadoReconteoDTO
// @Router       /api/inventarios/{id}/consolidar [post]
func (h *InventarioHandler) Consolidar(c *fiber.Ctx) error {
	res, err := h.reconteoUC.Consolidar(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.ResultadoReconteoDTO{Estado: string(res.Estado), Avisos: res.Avisos})
}

// Cerrar godoc
// @Summary      Cerrar un inventario consolidado
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/cerrar [post]
func (h *InventarioHandler) Cerrar(c *fiber.Ctx) error {
	op := GetContexto(c)
	if err := h.ciclo.Cerrar(c.Context(), op, c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"message": "inventario cerrado"})
}

func aInventarioDTO(inv entity.Inventario) dto.InventarioDTO {
	return dto.InventarioDTO{
		ID:            inv.ID,
		Almacen:       inv.Almacen,
		Alcance:       string(inv.Alcance),
		Estado:        string(inv.Estado),
		CreadoPor:     inv.CreadoPor,
		FechaCreacion: inv.FechaCreacion,
	}
}
