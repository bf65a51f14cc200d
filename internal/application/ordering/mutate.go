package ordering

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafe-orders/internal/domain"
	"github.com/jhoicas/cafe-orders/internal/domain/entity"
	"github.com/jhoicas/cafe-orders/internal/domain/pricing"
	"github.com/jhoicas/cafe-orders/internal/domain/repository"
)

// EditSession un pedido abierto para edición estructural. Items refleja el
// estado persistido tras la última edición; Deleted indica que el pedido fue
// eliminado en cascada (última línea removida) y la sesión terminó.
type EditSession struct {
	Order   *entity.Order
	Items   []*entity.ItemStatus
	Deleted bool
}

// OrderMutator edita pedidos sin pagar: agregar, cambiar y quitar líneas,
// recomputando el total tras cada edición estructural. Cada edición corre en
// su propia transacción; entre ediciones no se retiene ningún lock.
type OrderMutator struct {
	runner TxRunner
	orders repository.OrderRepository
	menu   repository.MenuRepository
	now    func() time.Time
}

// NewOrderMutator construye el mutador.
func NewOrderMutator(runner TxRunner, orders repository.OrderRepository, menu repository.MenuRepository) *OrderMutator {
	return &OrderMutator{runner: runner, orders: orders, menu: menu, now: time.Now}
}

// Load abre un pedido para edición. Un pedido inexistente, ya pagado o ajeno
// (cuando requireOwner no es vacío) es ErrNotFound por igual: no hay pedido
// editable con ese id para ese usuario.
func (m *OrderMutator) Load(orderID int64, requireOwner string) (*EditSession, error) {
	order, err := m.orders.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: cargar pedido: %v", domain.ErrPersistence, err)
	}
	if order == nil || order.Paid {
		return nil, domain.ErrNotFound
	}
	if requireOwner != "" && order.Login != requireOwner {
		return nil, domain.ErrNotFound
	}
	items, err := m.orders.GetLineItems(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: cargar líneas: %v", domain.ErrPersistence, err)
	}
	return &EditSession{Order: order, Items: items}, nil
}

// Add agrega el ítem menu[menuIndex] como línea nueva (estado inicial
// "order processing") y ajusta el total en +precio, en una transacción.
func (m *OrderMutator) Add(ctx context.Context, s *EditSession, menu []*entity.MenuItem, menuIndex int) error {
	if s.Deleted {
		return domain.ErrNotFound
	}
	if menuIndex < 0 || menuIndex >= len(menu) {
		return domain.ErrInvalidSelection
	}
	item := menu[menuIndex]
	price := pricing.Round(item.Price)

	err := m.runner.Run(ctx, func(orders repository.OrderRepository) error {
		line := &entity.ItemStatus{
			OrderID:     s.Order.OrderID,
			ItemName:    normalizeItemName(item.Name),
			LastUpdated: m.now(),
			Status:      entity.StatusProcessing,
			Comments:    entity.DefaultItemComments,
		}
		if err := orders.InsertLineItem(line); err != nil {
			return err
		}
		return orders.AdjustTotal(s.Order.OrderID, price)
	})
	if err != nil {
		return fmt.Errorf("%w: agregar línea: %v", domain.ErrPersistence, err)
	}
	return m.refresh(s)
}

// Swap reemplaza la línea s.Items[lineIndex] por el ítem menu[menuIndex]: la
// fila se renombra en sitio (estado y comentarios se preservan) y el total se
// ajusta en (nuevo - viejo), en una transacción.
func (m *OrderMutator) Swap(ctx context.Context, s *EditSession, lineIndex int, menu []*entity.MenuItem, menuIndex int) error {
	if s.Deleted {
		return domain.ErrNotFound
	}
	if lineIndex < 0 || lineIndex >= len(s.Items) {
		return domain.ErrInvalidSelection
	}
	if menuIndex < 0 || menuIndex >= len(menu) {
		return domain.ErrInvalidSelection
	}
	oldName := s.Items[lineIndex].ItemName
	oldPrice, err := m.unitPrice(oldName)
	if err != nil {
		return err
	}
	newItem := menu[menuIndex]
	newPrice := pricing.Round(newItem.Price)

	err = m.runner.Run(ctx, func(orders repository.OrderRepository) error {
		ok, err := orders.SwapLineItem(s.Order.OrderID, oldName, normalizeItemName(newItem.Name))
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return orders.AdjustTotal(s.Order.OrderID, newPrice.Sub(oldPrice))
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("%w: cambiar línea: %v", domain.ErrPersistence, err)
	}
	return m.refresh(s)
}

// Remove quita la línea s.Items[lineIndex] y ajusta el total en -precio. Si
// era la última línea del pedido, elimina el pedido completo en la misma
// transacción (cascada) y marca la sesión como terminada: un pedido sin
// líneas no existe.
func (m *OrderMutator) Remove(ctx context.Context, s *EditSession, lineIndex int) error {
	if s.Deleted {
		return domain.ErrNotFound
	}
	if lineIndex < 0 || lineIndex >= len(s.Items) {
		return domain.ErrInvalidSelection
	}
	name := s.Items[lineIndex].ItemName
	price, err := m.unitPrice(name)
	if err != nil {
		return err
	}
	last := len(s.Items) == 1

	err = m.runner.Run(ctx, func(orders repository.OrderRepository) error {
		if last {
			return orders.DeleteOrder(s.Order.OrderID)
		}
		ok, err := orders.DeleteLineItem(s.Order.OrderID, name)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return orders.AdjustTotal(s.Order.OrderID, price.Neg())
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("%w: quitar línea: %v", domain.ErrPersistence, err)
	}
	if last {
		s.Deleted = true
		s.Items = nil
		return nil
	}
	return m.refresh(s)
}

// refresh recarga cabecera y líneas tras una edición para que la sesión
// observe el invariante total == suma de líneas ya re-establecido.
func (m *OrderMutator) refresh(s *EditSession) error {
	order, err := m.orders.GetByID(s.Order.OrderID)
	if err != nil {
		return fmt.Errorf("%w: recargar pedido: %v", domain.ErrPersistence, err)
	}
	if order == nil {
		return domain.ErrNotFound
	}
	items, err := m.orders.GetLineItems(s.Order.OrderID)
	if err != nil {
		return fmt.Errorf("%w: recargar líneas: %v", domain.ErrPersistence, err)
	}
	s.Order = order
	s.Items = items
	return nil
}

// unitPrice precio unitario vigente de un ítem del menú.
func (m *OrderMutator) unitPrice(name string) (decimal.Decimal, error) {
	price, found, err := m.menu.PriceOf(name)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: precio de %q: %v", domain.ErrPersistence, name, err)
	}
	if !found {
		return decimal.Zero, domain.ErrNotFound
	}
	return pricing.Round(price), nil
}
