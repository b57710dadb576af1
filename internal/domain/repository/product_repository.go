package repository

import (
	"context"

	"github.com/jhoicas/inventario-server/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las búsquedas por categoría y nombre son por subcadena; por cantidad es
// coincidencia exacta. La ausencia de filas no es un error: se devuelve
// slice vacío o (nil, nil).
type ProductRepository interface {
	GetAll(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	GetByName(ctx context.Context, name string) ([]*entity.Product, error)
	GetByQuantity(ctx context.Context, quantity int) ([]*entity.Product, error)
	// Create persiste el producto y completa ID y CreatedAt asignados por la DB.
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
}
