package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafe-orders/internal/domain/entity"
)

// OrderRepository puerto de persistencia para pedidos y sus líneas.
//
// Las operaciones multi-fila (alta de pedido, borrado en cascada, editar y
// ajustar total) se componen dentro de ordering.TxRunner: el caso de uso
// recibe un OrderRepository atado a la transacción y el commit/rollback queda
// fuera del puerto.
type OrderRepository interface {
	// InsertOrder persiste la cabecera y devuelve el orderid generado por la
	// secuencia (RETURNING). Nunca se recupera el id con una consulta
	// posterior: bajo envíos concurrentes eso produce ids ajenos.
	InsertOrder(order *entity.Order) (int64, error)
	InsertLineItem(item *entity.ItemStatus) error

	// GetByID devuelve (nil, nil) si el pedido no existe.
	GetByID(orderID int64) (*entity.Order, error)
	GetLineItems(orderID int64) ([]*entity.ItemStatus, error)

	// AdjustTotal suma delta al total y re-redondea, en una sola sentencia
	// aritmética del lado del almacén (read-modify-write atómico).
	AdjustTotal(orderID int64, delta decimal.Decimal) error

	// SwapLineItem renombra la línea (orderID, oldName) a newName y actualiza
	// lastUpdated; estado y comentarios se preservan. Devuelve false si la
	// línea no existe.
	SwapLineItem(orderID int64, oldName, newName string) (bool, error)
	// DeleteLineItem devuelve false si la línea no existe.
	DeleteLineItem(orderID int64, itemName string) (bool, error)
	// DeleteOrder elimina el pedido con todas sus líneas (cascada).
	DeleteOrder(orderID int64) error

	// UpdateLineItemStatus devuelve false si la línea no existe.
	UpdateLineItemStatus(orderID int64, itemName, status string) (bool, error)
	// SetPaid marca el pedido como pagado. Idempotente: devuelve false si el
	// pedido no existe, true tanto si cambió como si ya estaba pagado.
	SetPaid(orderID int64) (bool, error)

	// ListRecentByOwner pedidos sin pagar del dueño, más recientes primero.
	ListRecentByOwner(login string, limit int) ([]*entity.Order, error)
	// ListUnpaidSince pedidos sin pagar recibidos desde el instante dado.
	ListUnpaidSince(since time.Time) ([]*entity.Order, error)
}
