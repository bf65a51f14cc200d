// Package dto define las vistas que la capa de presentación (consola) recibe
// de los casos de uso, desacopladas de las entidades de dominio.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemView una línea de pedido lista para mostrar.
type LineItemView struct {
	Name        string
	Status      string
	Comments    string
	LastUpdated time.Time
}

// OrderView un pedido con sus líneas, listo para mostrar.
type OrderView struct {
	OrderID    int64
	Login      string
	Paid       bool
	ReceivedAt time.Time
	Total      decimal.Decimal
	Items      []LineItemView
}
