package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa la cabecera de un pedido.
// Invariante: Total == suma redondeada de los precios unitarios de sus líneas
// vivas, en todo punto observable tras completar una mutación. Un pedido sin
// líneas no existe en estado persistido (borrado en cascada al quitar la
// última línea).
type Order struct {
	OrderID    int64
	Login      string // dueño del pedido
	Paid       bool
	ReceivedAt time.Time
	Total      decimal.Decimal
}
