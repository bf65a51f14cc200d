package ordering

import (
	"context"
	"fmt"

	"github.com/jhoicas/cafe-orders/internal/domain"
	"github.com/jhoicas/cafe-orders/internal/domain/pricing"
	"github.com/jhoicas/cafe-orders/internal/domain/repository"
)

// ReceiptUseCase exporta el recibo de un pedido como PDF.
type ReceiptUseCase struct {
	orders    repository.OrderRepository
	menu      repository.MenuRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orders repository.OrderRepository, menu repository.MenuRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orders: orders, menu: menu, generator: generator}
}

// Export genera el PDF del pedido. Con requireOwner no vacío, un pedido ajeno
// es ErrNotFound (igual que al editar). Las líneas llevan el precio unitario
// vigente del menú; un ítem retirado del menú sale con precio cero.
func (uc *ReceiptUseCase) Export(ctx context.Context, orderID int64, requireOwner string) ([]byte, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: cargar pedido: %v", domain.ErrPersistence, err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if requireOwner != "" && order.Login != requireOwner {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orders.GetLineItems(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: cargar líneas: %v", domain.ErrPersistence, err)
	}
	lines := make([]ReceiptLine, 0, len(items))
	for _, it := range items {
		price, found, err := uc.menu.PriceOf(it.ItemName)
		if err != nil {
			return nil, fmt.Errorf("%w: precio de %q: %v", domain.ErrPersistence, it.ItemName, err)
		}
		line := ReceiptLine{Name: it.ItemName, Status: it.Status}
		if found {
			line.Price = pricing.Round(price)
		}
		lines = append(lines, line)
	}
	pdf, err := uc.generator.GenerateReceipt(ctx, order, lines)
	if err != nil {
		return nil, fmt.Errorf("generar recibo: %w", err)
	}
	return pdf, nil
}
