package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo compartido.
// El ID lo asigna la base de datos (BIGSERIAL); antes del insert vale 0.
// CreatedAt lo fija la base de datos y es inmutable después del insert.
type Product struct {
	ID        int64
	Name      string
	Category  string
	Quantity  int
	Price     decimal.Decimal // NUMERIC(12,2): punto fijo, nunca float binario
	CreatedAt time.Time
}

// Valid verifica los invariantes del producto antes de persistir:
// nombre no vacío, cantidad y precio no negativos.
func (p *Product) Valid() bool {
	return p.Name != "" && p.Quantity >= 0 && !p.Price.IsNegative()
}
