package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sga-almacen/internal/application/dto"
	"github.com/tu-usuario/sga-almacen/internal/domain"
)

// responderError traduce los errores de dominio a estados HTTP.
// Los fallos del ERP central se devuelven como 502 para que el terminal los
// distinga de los errores de validación (no se reintenta nada automáticamente).
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrStockInsuficiente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrNadaQueGuardar):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NOTHING_TO_SAVE", Message: err.Error()})
	case errors.Is(err, domain.ErrSesionNoAbierta):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: err.Error()})
	case errors.Is(err, domain.ErrInventarioCerrado), errors.Is(err, domain.ErrTransicionInvalida), errors.Is(err, domain.ErrConflicto):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrServicioRemoto):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "ERP_UNAVAILABLE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
