package console

import (
	"context"

	"github.com/jhoicas/cafe-orders/internal/application/auth"
	"github.com/jhoicas/cafe-orders/internal/domain/entity"
)

// staffMenu menú de empleado y gerente. Gerencia tiene además administración
// de usuarios.
func (c *Console) staffMenu(ctx context.Context, sess *auth.Session) {
	manager := sess.Role == entity.RoleManager
	for {
		c.printf("\nMENÚ — %s (%s)\n", sess.Role, sess.Login)
		c.printf("1. Ver menú por nombre\n")
		c.printf("2. Ver menú por tipo\n")
		c.printf("3. Nuevo pedido\n")
		c.printf("4. Gestionar pedidos\n")
		c.printf("5. Pedidos en curso\n")
		c.printf("6. Estado de un pedido\n")
		if manager {
			c.printf("7. Administrar usuarios\n")
		} else {
			c.printf("7. Actualizar mis datos\n")
		}
		c.printf("9. Cerrar sesión\n")
		switch choice := c.readChoice(); {
		case choice == 1:
			c.browseMenuByName()
		case choice == 2:
			c.browseMenuByType()
		case choice == 3:
			c.addOrder(ctx, sess)
		case choice == 4:
			c.staffUpdateOrder(ctx, sess)
		case choice == 5:
			c.currentOrders()
		case choice == 6:
			c.orderStatus()
		case choice == 7 && manager:
			c.manageUsers(sess)
		case choice == 7:
			c.updateOwnInfo(sess)
		case choice == 9:
			return
		default:
			c.printf("Opción no reconocida.\n")
		}
	}
}

// staffUpdateOrder acciones del personal sobre pedidos: editar el propio,
// marcar pagado, o cambiar el estado de un ítem.
func (c *Console) staffUpdateOrder(ctx context.Context, sess *auth.Session) {
	c.printf(" 0) editar pedido propio\n 1) marcar pedido pagado\n 2) cambiar estado de ítem\n")
	switch c.readChoice() {
	case 0:
		c.updateOrder(ctx, sess.Login)
	case 1:
		id, ok := c.readOrderID()
		if !ok {
			return
		}
		if err := c.tracker.SetPaid(id); err != nil {
			c.report(err)
			return
		}
		c.log.Info().Int64("order_id", id).Str("by", sess.Login).Msg("pedido marcado pagado")
		c.printf("Pedido #%d marcado como pagado.\n", id)
	case 2:
		c.setItemStatus(sess)
	default:
		c.printf("Selección inválida.\n")
	}
}

func (c *Console) setItemStatus(sess *auth.Session) {
	id, ok := c.readOrderID()
	if !ok {
		return
	}
	itemName := c.readLine("Nombre del ítem: ")
	status := c.readLine("Nuevo estado: ")
	if err := c.tracker.SetStatus(id, itemName, status); err != nil {
		c.report(err)
		return
	}
	c.log.Info().Int64("order_id", id).Str("item", itemName).
		Str("status", status).Str("by", sess.Login).Msg("estado de ítem actualizado")
	c.printf("Estado actualizado.\n")
}

func (c *Console) currentOrders() {
	views, err := c.history.Current()
	if err != nil {
		c.report(err)
		return
	}
	if len(views) == 0 {
		c.printf("Sin pedidos en curso.\n")
		return
	}
	for _, v := range views {
		c.printOrderView(v)
	}
}

// manageUsers edición de cualquier usuario, solo gerencia.
func (c *Console) manageUsers(sess *auth.Session) {
	target := c.readLine("Login del usuario a editar: ")
	for {
		c.printf("\nEditar usuario %q\n", target)
		c.printf("1. Contraseña\n")
		c.printf("2. Teléfono\n")
		c.printf("3. Ítems favoritos\n")
		c.printf("4. Rol\n")
		c.printf("5. Volver\n")
		switch c.readChoice() {
		case 1:
			if err := c.auth.UpdatePassword(sess, target, c.readLine("Nueva contraseña: ")); err != nil {
				c.report(err)
			}
		case 2:
			if err := c.auth.UpdatePhoneNum(sess, target, c.readLine("Nuevo teléfono: ")); err != nil {
				c.report(err)
			}
		case 3:
			if err := c.auth.UpdateFavItems(sess, target, c.readLine("Nuevos favoritos: ")); err != nil {
				c.report(err)
			}
		case 4:
			role, ok := entity.ParseRole(c.readLine("Nuevo rol (Customer/Employee/Manager): "))
			if !ok {
				c.printf("Rol desconocido.\n")
				continue
			}
			if err := c.auth.UpdateRole(sess, target, role); err != nil {
				c.report(err)
			}
		case 5:
			return
		default:
			c.printf("Opción no reconocida.\n")
		}
	}
}
