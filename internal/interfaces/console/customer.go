package console

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/cafe-orders/internal/application/auth"
	"github.com/jhoicas/cafe-orders/internal/application/dto"
	"github.com/jhoicas/cafe-orders/internal/application/ordering"
	"github.com/jhoicas/cafe-orders/internal/domain"
	"github.com/jhoicas/cafe-orders/internal/domain/entity"
)

func (c *Console) customerMenu(ctx context.Context, sess *auth.Session) {
	for {
		c.printf("\nMENÚ — Cliente (%s)\n", sess.Login)
		c.printf("1. Ver menú por nombre\n")
		c.printf("2. Ver menú por tipo\n")
		c.printf("3. Nuevo pedido\n")
		c.printf("4. Modificar pedido\n")
		c.printf("5. Historial de pedidos\n")
		c.printf("6. Estado de un pedido\n")
		c.printf("7. Actualizar mis datos\n")
		c.printf("8. Exportar recibo (PDF)\n")
		c.printf("9. Cerrar sesión\n")
		switch c.readChoice() {
		case 1:
			c.browseMenuByName()
		case 2:
			c.browseMenuByType()
		case 3:
			c.addOrder(ctx, sess)
		case 4:
			c.updateOrder(ctx, sess.Login)
		case 5:
			c.orderHistory(sess.Login)
		case 6:
			c.orderStatus()
		case 7:
			c.updateOwnInfo(sess)
		case 8:
			c.exportReceipt(ctx, sess.Login)
		case 9:
			return
		default:
			c.printf("Opción no reconocida.\n")
		}
	}
}

func (c *Console) browseMenuByName() {
	items, err := c.menu.ListItems()
	if err != nil {
		c.report(err)
		return
	}
	c.printf("\nMenú del café\n--------------------\n")
	for _, it := range items {
		c.printf("  $%-8s %s\n", it.Price.StringFixed(2), it.Name)
	}
	c.printf("--------------------\n")
}

func (c *Console) browseMenuByType() {
	types, err := c.menu.ListTypes()
	if err != nil {
		c.report(err)
		return
	}
	for i, t := range types {
		c.printf(" %d) %s\n", i, t)
	}
	c.printf("Elija el # del tipo a ver:\n")
	choice := c.readChoice()
	if choice < 0 || choice >= len(types) {
		c.printf("Selección inválida.\n")
		return
	}
	items, err := c.menu.ItemsOfType(types[choice])
	if err != nil {
		c.report(err)
		return
	}
	c.printf("\n%s\n--------------------\n", types[choice])
	for _, it := range items {
		c.printf("  $%-8s %s\n", it.Price.StringFixed(2), it.Name)
	}
	c.printf("--------------------\n")
}

// addOrder construye el carrito en memoria y lo envía al confirmar. Nada toca
// el almacén hasta la confirmación.
func (c *Console) addOrder(ctx context.Context, sess *auth.Session) {
	items, err := c.menu.ListItems()
	if err != nil {
		c.report(err)
		return
	}
	cart := ordering.NewCart(items)

	for cart.State() == ordering.CartBuilding {
		c.printMenuListing(cart.Menu())
		c.printf("\nEn el carrito: ")
		for _, l := range cart.Items() {
			c.printf("%s  ", l.Name)
		}
		c.printf("\nTotal: $%s\n", cart.Total().StringFixed(2))
		c.printf("Número de ítem para agregar — o %d para checkout: ", len(cart.Menu()))
		if err := cart.Select(c.readChoice()); err != nil {
			c.report(err)
		}
	}

	if cart.State() == ordering.CartCheckout {
		c.printf("\nÍtems del pedido:\n")
		for _, l := range cart.Items() {
			c.printf("  %s  $%s\n", l.Name, l.Price.StringFixed(2))
		}
		c.printf("Total: $%s\n", cart.Total().StringFixed(2))
		c.printf("¿Confirmar pedido?  0) sí   1) no\n")
		if err := cart.Confirm(c.readChoice() == 0); err != nil {
			c.report(err)
			return
		}
	}

	if cart.State() != ordering.CartConfirmed {
		c.printf("Pedido cancelado.\n")
		return
	}
	orderID, err := c.submit.Submit(ctx, sess.Login, cart.Items())
	if err != nil {
		c.report(err)
		return
	}
	c.log.Info().Int64("order_id", orderID).Str("login", sess.Login).Msg("pedido creado")
	c.printf("Pedido #%d registrado con éxito.\n", orderID)
}

// updateOrder bucle de ediciones estructurales sobre un pedido sin pagar.
// Con owner vacío (personal) se puede editar cualquier pedido sin pagar.
func (c *Console) updateOrder(ctx context.Context, owner string) {
	id, ok := c.readOrderID()
	if !ok {
		return
	}
	sess, err := c.mutator.Load(id, owner)
	if err != nil {
		c.report(err)
		return
	}

	for {
		c.printf("\nPedido #%d — total $%s\n", sess.Order.OrderID, sess.Order.Total.StringFixed(2))
		for i, it := range sess.Items {
			c.printf(" %d) %s  [%s]\n", i, it.ItemName, it.Status)
		}
		c.printf("Número de línea para editar — o %d para agregar ítem — o %d para terminar:\n",
			len(sess.Items), len(sess.Items)+1)
		choice := c.readChoice()

		switch {
		case choice == len(sess.Items)+1:
			return
		case choice == len(sess.Items):
			c.editAdd(ctx, sess)
		case choice >= 0 && choice < len(sess.Items):
			c.editLine(ctx, sess, choice)
			if sess.Deleted {
				c.printf("Última línea removida: el pedido completo fue eliminado.\n")
				return
			}
		default:
			c.printf("Selección inválida.\n")
		}
	}
}

func (c *Console) editAdd(ctx context.Context, sess *ordering.EditSession) {
	items, err := c.menu.ListItems()
	if err != nil {
		c.report(err)
		return
	}
	c.printMenuListing(items)
	c.printf("Número del ítem a agregar:\n")
	if err := c.mutator.Add(ctx, sess, items, c.readChoice()); err != nil {
		c.report(err)
		return
	}
	c.printf("Ítem agregado.\n")
}

func (c *Console) editLine(ctx context.Context, sess *ordering.EditSession, lineIndex int) {
	c.printf("0) cambiar ítem   1) quitar ítem\n")
	switch c.readChoice() {
	case 0:
		items, err := c.menu.ListItems()
		if err != nil {
			c.report(err)
			return
		}
		c.printMenuListing(items)
		c.printf("Número del ítem nuevo:\n")
		if err := c.mutator.Swap(ctx, sess, lineIndex, items, c.readChoice()); err != nil {
			c.report(err)
			return
		}
		c.printf("Ítem cambiado.\n")
	case 1:
		if err := c.mutator.Remove(ctx, sess, lineIndex); err != nil {
			c.report(err)
			return
		}
		if !sess.Deleted {
			c.printf("Ítem removido.\n")
		}
	default:
		c.printf("Selección inválida.\n")
	}
}

func (c *Console) printMenuListing(items []*entity.MenuItem) {
	c.printf("\nMenú del café\n")
	for i, it := range items {
		c.printf("%d)   $%-8s %s\n", i, it.Price.StringFixed(2), it.Name)
	}
}

func (c *Console) orderHistory(login string) {
	views, err := c.history.ForOwner(login)
	if err != nil {
		c.report(err)
		return
	}
	if len(views) == 0 {
		c.printf("Sin pedidos recientes.\n")
		return
	}
	for _, v := range views {
		c.printOrderView(v)
	}
}

func (c *Console) orderStatus() {
	id, ok := c.readOrderID()
	if !ok {
		return
	}
	items, err := c.history.StatusOf(id)
	if err != nil {
		c.report(err)
		return
	}
	c.printf("Pedido #%d\n", id)
	for _, it := range items {
		c.printf("  %-24s %-18s %s\n", it.Name, it.Status, it.LastUpdated.Format("02/01/2006 15:04"))
	}
}

func (c *Console) printOrderView(v *dto.OrderView) {
	c.printf("\nPedido #%d — %s\n", v.OrderID, v.ReceivedAt.Format("02/01/2006 15:04"))
	for _, it := range v.Items {
		c.printf("  %s  [%s]\n", it.Name, it.Status)
	}
	c.printf("Total: $%s   Cliente: %s\n", v.Total.StringFixed(2), v.Login)
}

func (c *Console) exportReceipt(ctx context.Context, owner string) {
	id, ok := c.readOrderID()
	if !ok {
		return
	}
	pdf, err := c.receipts.Export(ctx, id, owner)
	if err != nil {
		c.report(err)
		return
	}
	name := fmt.Sprintf("recibo_%d.pdf", id)
	if err := os.WriteFile(name, pdf, 0o644); err != nil {
		c.report(fmt.Errorf("%w: escribir %s: %v", domain.ErrPersistence, name, err))
		return
	}
	c.printf("Recibo guardado en %s\n", name)
}

func (c *Console) updateOwnInfo(sess *auth.Session) {
	for {
		c.printf("\nActualizar mis datos\n")
		c.printf("1. Contraseña\n")
		c.printf("2. Teléfono\n")
		c.printf("3. Ítems favoritos\n")
		c.printf("4. Volver\n")
		switch c.readChoice() {
		case 1:
			if err := c.auth.UpdatePassword(sess, sess.Login, c.readLine("Nueva contraseña: ")); err != nil {
				c.report(err)
			}
		case 2:
			if err := c.auth.UpdatePhoneNum(sess, sess.Login, c.readLine("Nuevo teléfono: ")); err != nil {
				c.report(err)
			}
		case 3:
			if err := c.auth.UpdateFavItems(sess, sess.Login, c.readLine("Nuevos favoritos: ")); err != nil {
				c.report(err)
			}
		case 4:
			return
		default:
			c.printf("Opción no reconocida.\n")
		}
	}
}
