// Package inventarios gestiona el ciclo de vida de las cabeceras de
// inventario: creación, listado y cierre. Las transiciones de estado solo
// avanzan; un inventario cerrado no se reabre.
package inventarios

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/sga-almacen/internal/application/ports"
	"github.com/tu-usuario/sga-almacen/internal/domain"
	"github.com/tu-usuario/sga-almacen/internal/domain/entity"
	"github.com/tu-usuario/sga-almacen/pkg/logger"
)

// UseCase ciclo de vida de inventarios.
type UseCase struct {
	inventarios ports.ServicioInventarios
	log         *logger.Logger
}

// New construye el caso de uso.
func New(inventarios ports.ServicioInventarios, log *logger.Logger) *UseCase {
	return &UseCase{inventarios: inventarios, log: log}
}

// Crear crea un inventario nuevo; la foto de stock la toma el ERP al crearlo.
func (uc *UseCase) Crear(ctx context.Context, op entity.Contexto, almacen string, alcance entity.AlcanceInventario) (entity.Inventario, error) {
	if almacen == "" {
		return entity.Inventario{}, fmt.Errorf("%w: almacén requerido", domain.ErrEntradaInvalida)
	}
	if alcance != entity.AlcanceTotal && alcance != entity.AlcanceParcial {
		return entity.Inventario{}, fmt.Errorf("%w: alcance desconocido %q", domain.ErrEntradaInvalida, alcance)
	}
	inv := entity.Inventario{
		Empresa:       op.Empresa,
		Almacen:       almacen,
		Alcance:       alcance,
		Estado:        entity.EstadoAbierto,
		CreadoPor:     op.IDOperario,
		FechaCreacion: time.Now(),
	}
	creado, err := uc.inventarios.Crear(ctx, inv)
	if err != nil {
		return entity.Inventario{}, err
	}
	uc.log.Info().Str("inventario", creado.ID).Str("almacen", almacen).Msg("inventario creado")
	return creado, nil
}

// Listar devuelve los inventarios de la empresa.
func (uc *UseCase) Listar(ctx context.Context, op entity.Contexto) ([]entity.Inventario, error) {
	return uc.inventarios.Listar(ctx, op.Empresa)
}

// Cerrar cierra un inventario. Solo se cierra desde CONSOLIDADO.
func (uc *UseCase) Cerrar(ctx context.Context, op entity.Contexto, idInventario string) error {
	inv, err := uc.inventarios.Obtener(ctx, idInventario)
	if err != nil {
		return err
	}
	if inv.Estado != entity.EstadoConsolidado {
		return fmt.Errorf("%w: de %s a %s", domain.ErrTransicionInvalida, inv.Estado, entity.EstadoCerrado)
	}
	if err := uc.inventarios.Cerrar(ctx, idInventario); err != nil {
		return err
	}
	uc.log.Info().Str("inventario", idInventario).Msg("inventario cerrado")
	return nil
}
