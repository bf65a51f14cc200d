// Package console implementa el adaptador de consola: menús numerados hacia
// dentro, render hacia fuera. Toda la lógica de pedidos vive en los casos de
// uso; aquí solo se leen elecciones y se muestran resultados.
//
// Política de errores: una selección inválida se reintenta en el mismo bucle
// sin tocar estado; un recurso no encontrado corta la operación y vuelve al
// menú con un mensaje; un fallo de persistencia se loguea y se muestra un
// mensaje genérico, nunca el error crudo.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhoicas/cafe-orders/internal/application/auth"
	"github.com/jhoicas/cafe-orders/internal/application/ordering"
	"github.com/jhoicas/cafe-orders/internal/domain"
	"github.com/jhoicas/cafe-orders/internal/domain/entity"
	"github.com/jhoicas/cafe-orders/internal/domain/repository"
	"github.com/jhoicas/cafe-orders/pkg/logger"
)

// Console adaptador de terminal sobre los casos de uso del café.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	log *logger.Logger

	auth     *auth.AuthUseCase
	menu     repository.MenuRepository
	submit   *ordering.SubmitOrderUseCase
	mutator  *ordering.OrderMutator
	tracker  *ordering.ItemStatusTracker
	history  *ordering.OrderHistory
	receipts *ordering.ReceiptUseCase
}

// New construye la consola.
func New(
	in io.Reader,
	out io.Writer,
	log *logger.Logger,
	authUC *auth.AuthUseCase,
	menu repository.MenuRepository,
	submit *ordering.SubmitOrderUseCase,
	mutator *ordering.OrderMutator,
	tracker *ordering.ItemStatusTracker,
	history *ordering.OrderHistory,
	receipts *ordering.ReceiptUseCase,
) *Console {
	return &Console{
		in:       bufio.NewReader(in),
		out:      out,
		log:      log,
		auth:     authUC,
		menu:     menu,
		submit:   submit,
		mutator:  mutator,
		tracker:  tracker,
		history:  history,
		receipts: receipts,
	}
}

// Run bucle principal: crear usuario, iniciar sesión o salir.
func (c *Console) Run(ctx context.Context) error {
	c.printf("\n*** Café — sistema de pedidos ***\n")
	for {
		c.printf("\nMENÚ PRINCIPAL\n")
		c.printf("1. Crear usuario\n")
		c.printf("2. Iniciar sesión\n")
		c.printf("9. Salir\n")
		switch c.readChoice() {
		case 1:
			c.createUser()
		case 2:
			if sess := c.login(); sess != nil {
				c.sessionMenu(ctx, sess)
			}
		case 9:
			c.printf("Hasta luego.\n")
			return nil
		default:
			c.printf("Opción no reconocida.\n")
		}
	}
}

func (c *Console) createUser() {
	login := c.readLine("Login: ")
	password := c.readLine("Contraseña: ")
	phone := c.readLine("Teléfono: ")
	if err := c.auth.Register(login, password, phone); err != nil {
		c.report(err)
		return
	}
	c.printf("Usuario creado.\n")
}

func (c *Console) login() *auth.Session {
	login := c.readLine("Login: ")
	password := c.readLine("Contraseña: ")
	sess, err := c.auth.Login(login, password)
	if err != nil {
		c.report(err)
		return nil
	}
	c.log.Info().Str("session", sess.ID).Str("login", sess.Login).
		Str("role", string(sess.Role)).Msg("sesión iniciada")
	return sess
}

// sessionMenu despacha al menú del rol hasta cerrar sesión.
func (c *Console) sessionMenu(ctx context.Context, sess *auth.Session) {
	switch sess.Role {
	case entity.RoleCustomer:
		c.customerMenu(ctx, sess)
	case entity.RoleEmployee, entity.RoleManager:
		c.staffMenu(ctx, sess)
	}
}

// ── Helpers de E/S ────────────────────────────────────────────────────────────

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// readChoice lee un entero, reintentando hasta recibir uno válido.
func (c *Console) readChoice() int {
	for {
		s := c.readLine("Elija una opción: ")
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			c.printf("Entrada inválida.\n")
			continue
		}
		return n
	}
}

func (c *Console) readLine(prompt string) string {
	c.printf("%s", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// readOrderID pide un id de pedido; (0, false) si no es numérico.
func (c *Console) readOrderID() (int64, bool) {
	s := c.readLine("Id de pedido: ")
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		c.printf("Id inválido.\n")
		return 0, false
	}
	return id, true
}

// report traduce errores de dominio a mensajes de usuario. Los fallos de
// persistencia se loguean con detalle y se muestran genéricos.
func (c *Console) report(err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidSelection):
		c.printf("Selección inválida.\n")
	case errors.Is(err, domain.ErrNotFound):
		c.printf("No encontrado.\n")
	case errors.Is(err, domain.ErrEmptyCart):
		c.printf("Ningún ítem elegido, pedido cancelado.\n")
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.printf("Login o contraseña incorrectos.\n")
	case errors.Is(err, domain.ErrLoginAlreadyExists):
		c.printf("Ese login ya está registrado.\n")
	case errors.Is(err, domain.ErrForbidden):
		c.printf("Acceso denegado.\n")
	default:
		c.log.Error().Err(err).Msg("operación fallida")
		c.printf("La operación falló, intente de nuevo.\n")
	}
}
