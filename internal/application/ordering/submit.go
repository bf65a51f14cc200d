package ordering

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafe-orders/internal/domain"
	"github.com/jhoicas/cafe-orders/internal/domain/entity"
	"github.com/jhoicas/cafe-orders/internal/domain/pricing"
	"github.com/jhoicas/cafe-orders/internal/domain/repository"
)

// SubmitOrderUseCase persiste un carrito confirmado como pedido con sus líneas.
type SubmitOrderUseCase struct {
	runner TxRunner
	now    func() time.Time
}

// NewSubmitOrderUseCase construye el caso de uso.
func NewSubmitOrderUseCase(runner TxRunner) *SubmitOrderUseCase {
	return &SubmitOrderUseCase{runner: runner, now: time.Now}
}

// Submit inserta, como unidad atómica, la cabecera (paid=false, total = suma
// redondeada de las líneas) y una fila de ItemStatus por línea con estado
// "order processing". El orderid sale del propio INSERT (RETURNING); cualquier
// fallo hace rollback y no queda ninguna fila visible.
func (uc *SubmitOrderUseCase) Submit(ctx context.Context, login string, lines []CartLine) (int64, error) {
	if len(lines) == 0 {
		return 0, domain.ErrEmptyCart
	}

	prices := make([]decimal.Decimal, len(lines))
	for i, l := range lines {
		prices[i] = l.Price
	}
	total := pricing.Sum(prices...)
	now := uc.now()

	var orderID int64
	err := uc.runner.Run(ctx, func(orders repository.OrderRepository) error {
		id, err := orders.InsertOrder(&entity.Order{
			Login:      login,
			Paid:       false,
			ReceivedAt: now,
			Total:      total,
		})
		if err != nil {
			return err
		}
		for _, l := range lines {
			item := &entity.ItemStatus{
				OrderID:     id,
				ItemName:    l.Name,
				LastUpdated: now,
				Status:      entity.StatusProcessing,
				Comments:    entity.DefaultItemComments,
			}
			if err := orders.InsertLineItem(item); err != nil {
				return err
			}
		}
		orderID = id
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: enviar pedido: %v", domain.ErrPersistence, err)
	}
	return orderID, nil
}
