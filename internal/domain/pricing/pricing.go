// Package pricing implementa el cálculo de montos del café (servicio de dominio
// puro). Todo valor monetario que se persiste o se muestra pasa por Round.
package pricing

import "github.com/shopspring/decimal"

// Round redondea un monto a 2 decimales (mitad hacia arriba).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// LineTotal devuelve el total de una línea a partir de su precio unitario.
// Cada línea lleva exactamente una unidad del ítem.
func LineTotal(unitPrice decimal.Decimal) decimal.Decimal {
	return Round(unitPrice)
}

// Sum suma montos y redondea el resultado.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return Round(total)
}
