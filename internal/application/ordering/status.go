package ordering

import (
	"fmt"

	"github.com/jhoicas/cafe-orders/internal/domain"
	"github.com/jhoicas/cafe-orders/internal/domain/repository"
)

// ItemStatusTracker avanza el estado de líneas individuales y marca pedidos
// como pagados. Es independiente del mutador estructural: nunca toca el total.
type ItemStatusTracker struct {
	orders repository.OrderRepository
}

// NewItemStatusTracker construye el tracker.
func NewItemStatusTracker(orders repository.OrderRepository) *ItemStatusTracker {
	return &ItemStatusTracker{orders: orders}
}

// SetStatus actualiza estado y lastUpdated de la línea (orderID, itemName).
// ErrNotFound si no existe tal línea.
func (t *ItemStatusTracker) SetStatus(orderID int64, itemName, status string) error {
	ok, err := t.orders.UpdateLineItemStatus(orderID, itemName, status)
	if err != nil {
		return fmt.Errorf("%w: actualizar estado: %v", domain.ErrPersistence, err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// SetPaid marca un pedido como pagado. Idempotente: marcarlo dos veces deja el
// mismo estado observable y no es error. ErrNotFound si el pedido no existe.
func (t *ItemStatusTracker) SetPaid(orderID int64) error {
	ok, err := t.orders.SetPaid(orderID)
	if err != nil {
		return fmt.Errorf("%w: marcar pagado: %v", domain.ErrPersistence, err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
