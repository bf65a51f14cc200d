package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafe-orders/internal/domain/entity"
)

// MenuRepository puerto de solo lectura sobre el catálogo del menú.
// El orden de ListItems e ItemsOfType es estable (por nombre) porque la
// consola presenta opciones numeradas sobre él.
type MenuRepository interface {
	ListItems() ([]*entity.MenuItem, error)
	ListTypes() ([]string, error)
	ItemsOfType(itemType string) ([]*entity.MenuItem, error)
	// PriceOf devuelve (decimal.Zero, false, nil) si el ítem no existe.
	PriceOf(name string) (decimal.Decimal, bool, error)
}
