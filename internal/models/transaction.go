package models

import "time"

// Transaction kinds. Amounts are stored positive; the direction of the
// money flow is carried by Tipo.
const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
)

// Transacao represents a financial transaction owned by a user
type Transacao struct {
	ID        int64     `json:"id"`
	Descricao string    `json:"descricao"`
	Valor     float64   `json:"valor"`
	Tipo      string    `json:"tipo"`
	Data      time.Time `json:"data"`
	OwnerID   int64     `json:"-"`
}
