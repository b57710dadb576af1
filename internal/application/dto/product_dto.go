package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest cuerpo para crear o reemplazar un producto. En update se
// reemplazan todos los campos salvo id y created_at.
type ProductRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// ProductResponse representación de un producto hacia el cliente.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}
