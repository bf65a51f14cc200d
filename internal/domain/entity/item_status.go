package entity

import "time"

// Estados y comentario por defecto de una línea de pedido. El campo status es
// texto libre para el personal; estas constantes son los valores iniciales.
const (
	StatusProcessing    = "order processing"
	StatusComplete      = "complete"
	DefaultItemComments = "thank you for your order"
)

// ItemStatus representa una línea de pedido: un ítem del menú adjunto a un
// pedido, con su estado de preparación. Identidad compuesta (OrderID, ItemName).
type ItemStatus struct {
	OrderID     int64
	ItemName    string
	LastUpdated time.Time
	Status      string
	Comments    string
}
