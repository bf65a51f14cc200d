package entity

import "github.com/shopspring/decimal"

// MenuItem representa un ítem del menú del café (solo lectura para pedidos).
type MenuItem struct {
	Name  string
	Type  string
	Price decimal.Decimal // precio unitario, 2 decimales, nunca negativo
}
