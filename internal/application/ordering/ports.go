package ordering

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafe-orders/internal/domain/entity"
	"github.com/jhoicas/cafe-orders/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con un repo de
// pedidos atado a ella. Si fn retorna error se hace rollback: las operaciones
// multi-sentencia (alta de pedido, cascada, editar línea + total) nunca dejan
// filas parciales visibles.
type TxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}

// ReceiptLine línea de un recibo: el ítem con su precio unitario vigente.
type ReceiptLine struct {
	Name   string
	Status string
	Price  decimal.Decimal
}

// ReceiptGenerator renderiza el recibo de un pedido (PDF).
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order, lines []ReceiptLine) ([]byte, error)
}
