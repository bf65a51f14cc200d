package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafe-orders/internal/domain/entity"
	"github.com/jhoicas/cafe-orders/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// InsertOrder persiste la cabecera y devuelve el orderid generado.
// RETURNING evita la consulta posterior de "máximo id del dueño", que bajo
// envíos concurrentes devuelve el pedido de otro.
func (r *OrderRepo) InsertOrder(order *entity.Order) (int64, error) {
	query := `
		INSERT INTO Orders (login, paid, timeStampRecieved, total)
		VALUES ($1, $2, $3, $4)
		RETURNING orderid`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		order.Login, order.Paid, order.ReceivedAt, order.Total,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

// InsertLineItem persiste una línea (fila de ItemStatus).
func (r *OrderRepo) InsertLineItem(item *entity.ItemStatus) error {
	query := `
		INSERT INTO ItemStatus (orderid, itemName, lastUpdated, status, comments)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.OrderID, item.ItemName, item.LastUpdated, item.Status, item.Comments,
	)
	if err != nil {
		return fmt.Errorf("insert line item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido.
func (r *OrderRepo) GetByID(orderID int64) (*entity.Order, error) {
	query := `
		SELECT orderid, login, paid, timeStampRecieved, total
		FROM Orders WHERE orderid = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, orderID).Scan(
		&o.OrderID, &o.Login, &o.Paid, &o.ReceivedAt, &o.Total,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetLineItems obtiene las líneas de un pedido, orden estable por nombre
// (la consola numera sobre esta lista).
func (r *OrderRepo) GetLineItems(orderID int64) ([]*entity.ItemStatus, error) {
	query := `
		SELECT orderid, itemName, lastUpdated, status, comments
		FROM ItemStatus WHERE orderid = $1 ORDER BY itemName`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemStatus
	for rows.Next() {
		var it entity.ItemStatus
		if err := rows.Scan(&it.OrderID, &it.ItemName, &it.LastUpdated, &it.Status, &it.Comments); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// AdjustTotal suma delta al total en una sola sentencia (RMW atómico en el
// almacén: dos ediciones concurrentes sobre el mismo pedido no pierden updates).
func (r *OrderRepo) AdjustTotal(orderID int64, delta decimal.Decimal) error {
	query := `UPDATE Orders SET total = round(total + $2, 2) WHERE orderid = $1`
	_, err := r.q.Exec(context.Background(), query, orderID, delta)
	if err != nil {
		return fmt.Errorf("adjust total: %w", err)
	}
	return nil
}

// SwapLineItem renombra una línea en sitio; estado y comentarios se preservan.
func (r *OrderRepo) SwapLineItem(orderID int64, oldName, newName string) (bool, error) {
	query := `
		UPDATE ItemStatus SET itemName = $3, lastUpdated = $4
		WHERE orderid = $1 AND itemName = $2`
	tag, err := r.q.Exec(context.Background(), query, orderID, oldName, newName, time.Now())
	if err != nil {
		return false, fmt.Errorf("swap line item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteLineItem elimina una línea por (orderid, itemName).
func (r *OrderRepo) DeleteLineItem(orderID int64, itemName string) (bool, error) {
	query := `DELETE FROM ItemStatus WHERE orderid = $1 AND itemName = $2`
	tag, err := r.q.Exec(context.Background(), query, orderID, itemName)
	if err != nil {
		return false, fmt.Errorf("delete line item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteOrder elimina el pedido y todas sus líneas (cascada explícita; se usa
// solo al quitar la última línea, dentro de la misma transacción).
func (r *OrderRepo) DeleteOrder(orderID int64) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM ItemStatus WHERE orderid = $1`, orderID); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM Orders WHERE orderid = $1`, orderID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// UpdateLineItemStatus actualiza estado y lastUpdated de una línea.
func (r *OrderRepo) UpdateLineItemStatus(orderID int64, itemName, status string) (bool, error) {
	query := `
		UPDATE ItemStatus SET status = $3, lastUpdated = $4
		WHERE orderid = $1 AND itemName = $2`
	tag, err := r.q.Exec(context.Background(), query, orderID, itemName, status, time.Now())
	if err != nil {
		return false, fmt.Errorf("update line item status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SetPaid marca el pedido como pagado. Idempotente: repetirlo sobre un pedido
// ya pagado afecta la fila igual y no es error.
func (r *OrderRepo) SetPaid(orderID int64) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE Orders SET paid = true WHERE orderid = $1`, orderID)
	if err != nil {
		return false, fmt.Errorf("set paid: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListRecentByOwner pedidos sin pagar del dueño, más recientes primero.
func (r *OrderRepo) ListRecentByOwner(login string, limit int) ([]*entity.Order, error) {
	query := `
		SELECT orderid, login, paid, timeStampRecieved, total
		FROM Orders WHERE login = $1 AND paid = false
		ORDER BY orderid DESC LIMIT $2`
	return r.listOrders(query, login, limit)
}

// ListUnpaidSince pedidos sin pagar recibidos desde el instante dado
// (vista de personal: pedidos en curso).
func (r *OrderRepo) ListUnpaidSince(since time.Time) ([]*entity.Order, error) {
	query := `
		SELECT orderid, login, paid, timeStampRecieved, total
		FROM Orders WHERE paid = false AND timeStampRecieved >= $1
		ORDER BY orderid DESC`
	return r.listOrders(query, since)
}

func (r *OrderRepo) listOrders(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.OrderID, &o.Login, &o.Paid, &o.ReceivedAt, &o.Total); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
