package ordering

import (
	"fmt"
	"time"

	"github.com/jhoicas/cafe-orders/internal/application/dto"
	"github.com/jhoicas/cafe-orders/internal/domain"
	"github.com/jhoicas/cafe-orders/internal/domain/entity"
	"github.com/jhoicas/cafe-orders/internal/domain/repository"
)

const (
	historyLimit       = 5
	currentOrderWindow = 24 * time.Hour
)

// OrderHistory vistas de solo lectura sobre pedidos: historial del cliente,
// pedidos en curso (personal) y estado de un pedido puntual.
type OrderHistory struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewOrderHistory construye las vistas.
func NewOrderHistory(orders repository.OrderRepository) *OrderHistory {
	return &OrderHistory{orders: orders, now: time.Now}
}

// ForOwner los últimos 5 pedidos sin pagar del dueño, con sus líneas.
func (h *OrderHistory) ForOwner(login string) ([]*dto.OrderView, error) {
	orders, err := h.orders.ListRecentByOwner(login, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: historial: %v", domain.ErrPersistence, err)
	}
	return h.withItems(orders)
}

// Current pedidos sin pagar recibidos en las últimas 24 horas (vista del
// personal), con sus líneas.
func (h *OrderHistory) Current() ([]*dto.OrderView, error) {
	orders, err := h.orders.ListUnpaidSince(h.now().Add(-currentOrderWindow))
	if err != nil {
		return nil, fmt.Errorf("%w: pedidos en curso: %v", domain.ErrPersistence, err)
	}
	return h.withItems(orders)
}

// StatusOf las líneas de un pedido con su estado. ErrNotFound si el pedido no
// tiene líneas (y por tanto no existe).
func (h *OrderHistory) StatusOf(orderID int64) ([]dto.LineItemView, error) {
	items, err := h.orders.GetLineItems(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: estado de pedido: %v", domain.ErrPersistence, err)
	}
	if len(items) == 0 {
		return nil, domain.ErrNotFound
	}
	return toLineViews(items), nil
}

func (h *OrderHistory) withItems(orders []*entity.Order) ([]*dto.OrderView, error) {
	views := make([]*dto.OrderView, 0, len(orders))
	for _, o := range orders {
		items, err := h.orders.GetLineItems(o.OrderID)
		if err != nil {
			return nil, fmt.Errorf("%w: líneas de pedido %d: %v", domain.ErrPersistence, o.OrderID, err)
		}
		views = append(views, &dto.OrderView{
			OrderID:    o.OrderID,
			Login:      o.Login,
			Paid:       o.Paid,
			ReceivedAt: o.ReceivedAt,
			Total:      o.Total,
			Items:      toLineViews(items),
		})
	}
	return views, nil
}

func toLineViews(items []*entity.ItemStatus) []dto.LineItemView {
	views := make([]dto.LineItemView, 0, len(items))
	for _, it := range items {
		views = append(views, dto.LineItemView{
			Name:        it.ItemName,
			Status:      it.Status,
			Comments:    it.Comments,
			LastUpdated: it.LastUpdated,
		})
	}
	return views
}
