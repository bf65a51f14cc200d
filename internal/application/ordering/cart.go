package ordering

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafe-orders/internal/domain"
	"github.com/jhoicas/cafe-orders/internal/domain/entity"
	"github.com/jhoicas/cafe-orders/internal/domain/pricing"
)

// Estados del carrito.
const (
	CartBuilding  = "building"
	CartCheckout  = "checkout"
	CartConfirmed = "confirmed"
	CartCancelled = "cancelled"
)

// CartLine un ítem seleccionado: nombre normalizado y precio redondeado.
type CartLine struct {
	Name  string
	Price decimal.Decimal
}

// Cart acumula ítems seleccionados antes de enviar el pedido. Vive por
// completo en memoria del proceso: nada toca el almacén hasta confirmar, así
// que no se retiene ninguna transacción mientras el cliente elige.
//
// Máquina de estados: building -> checkout -> confirmed | cancelled.
type Cart struct {
	state string
	menu  []*entity.MenuItem // listado numerado vigente
	items []CartLine
	total decimal.Decimal
}

// NewCart crea un carrito en estado building sobre el listado numerado dado.
func NewCart(menu []*entity.MenuItem) *Cart {
	return &Cart{state: CartBuilding, menu: menu, total: decimal.Zero}
}

// Select procesa una elección numerada del listado. Índices en [0, len(menu))
// agregan el ítem; el índice len(menu) es el centinela de checkout; cualquier
// otro valor es ErrInvalidSelection y el estado no cambia.
//
// Checkout con el carrito vacío corta directo a cancelled: no se ofrece
// confirmación de un pedido sin ítems.
func (c *Cart) Select(index int) error {
	if c.state != CartBuilding {
		return domain.ErrInvalidSelection
	}
	switch {
	case index == len(c.menu):
		if len(c.items) == 0 {
			c.state = CartCancelled
		} else {
			c.state = CartCheckout
		}
		return nil
	case index >= 0 && index < len(c.menu):
		item := c.menu[index]
		price := pricing.LineTotal(item.Price)
		c.items = append(c.items, CartLine{Name: normalizeItemName(item.Name), Price: price})
		c.total = pricing.Round(c.total.Add(price))
		return nil
	default:
		return domain.ErrInvalidSelection
	}
}

// Confirm cierra el checkout: yes con carrito no vacío confirma; cualquier
// otro caso cancela sin persistir nada.
func (c *Cart) Confirm(yes bool) error {
	if c.state != CartCheckout {
		return domain.ErrInvalidSelection
	}
	if yes && len(c.items) > 0 {
		c.state = CartConfirmed
	} else {
		c.state = CartCancelled
	}
	return nil
}

// State estado actual del carrito.
func (c *Cart) State() string { return c.state }

// Items copia de las líneas seleccionadas, en orden de selección.
func (c *Cart) Items() []CartLine {
	out := make([]CartLine, len(c.items))
	copy(out, c.items)
	return out
}

// Total total corriente del carrito (ya redondeado).
func (c *Cart) Total() decimal.Decimal { return c.total }

// Menu el listado numerado sobre el que opera Select.
func (c *Cart) Menu() []*entity.MenuItem { return c.menu }

// normalizeItemName recorta extremos y colapsa espacios interiores repetidos
// (la columna itemName es CHAR con padding).
func normalizeItemName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
