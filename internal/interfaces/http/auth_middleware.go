package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sga-almacen/internal/application/dto"
	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
	"github.com/tu-usuario/sga-almacen/pkg/jwt"
)

// Locals keys para la identidad del operario en Fiber.
const (
	LocalIDOperario = "id_operario"
	LocalEmpresa    = "empresa"
	LocalRol        = "rol"
)

// AuthMiddleware valida el Bearer Token JWT y deja la identidad del operario
// en c.Locals. Sustituye cualquier estado de sesión global: la empresa y el
// operario viajan en el token y se extraen por petición.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		idOperario, empresa, rol, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if idOperario <= 0 || empresa == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CLAIMS", Message: "token sin operario o empresa"})
		}
		c.Locals(LocalIDOperario, idOperario)
		c.Locals(LocalEmpresa, empresa)
		c.Locals(LocalRol, rol)
		return c.Next()
	}
}

// GetContexto devuelve el contexto de operario de la petición (tras el middleware).
// Un contexto con IDOperario 0 indica petición sin autenticar.
func GetContexto(c *fiber.Ctx) entity.Contexto {
	ctx := entity.Contexto{}
	if v, ok := c.Locals(LocalIDOperario).(int64); ok {
		ctx.IDOperario = v
	}
	if v, ok := c.Locals(LocalEmpresa).(string); ok {
		ctx.Empresa = v
	}
	if v, ok := c.Locals(LocalRol).(string); ok {
		ctx.Rol = v
	}
	return ctx
}
