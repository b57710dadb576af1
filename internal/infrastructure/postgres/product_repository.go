package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-server/internal/domain"
	"github.com/jhoicas/inventario-server/internal/domain/entity"
	"github.com/jhoicas/inventario-server/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = "id, name, category, quantity, price, created_at"

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Cada método pide prestada una conexión del pool para la duración de una
// operación. Todos los parámetros van por binding ($n), nunca concatenados.
type ProductRepo struct {
	pool *Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// GetAll lista todos los productos en orden de inserción (por id).
func (r *ProductRepo) GetAll(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	return r.list(ctx, query)
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.pool.WithConn(ctx, func(q Querier) error {
		return scanProduct(q.QueryRow(ctx, query, id), &p)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultar producto: %w", err)
	}
	return &p, nil
}

// GetByCategory lista productos cuya categoría contiene la subcadena
// (case-insensitive).
func (r *ProductRepo) GetByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category ILIKE $1 ORDER BY id`
	return r.list(ctx, query, "%"+category+"%")
}

// GetByName lista productos cuyo nombre contiene la subcadena.
func (r *ProductRepo) GetByName(ctx context.Context, name string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name ILIKE $1 ORDER BY id`
	return r.list(ctx, query, "%"+name+"%")
}

// GetByQuantity lista productos con cantidad exacta.
func (r *ProductRepo) GetByQuantity(ctx context.Context, quantity int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE quantity = $1 ORDER BY id`
	return r.list(ctx, query, quantity)
}

// Create persiste un nuevo producto. La DB asigna id y created_at, que se
// completan en el struct recibido.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, category, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.pool.WithConn(ctx, func(q Querier) error {
		return q.QueryRow(ctx, query,
			product.Name, product.Category, product.Quantity, product.Price,
		).Scan(&product.ID, &product.CreatedAt)
	})
	if err != nil {
		return fmt.Errorf("insertar producto: %w", err)
	}
	return nil
}

// Update reemplaza todos los campos del producto salvo id y created_at.
// Devuelve domain.ErrNotFound si el id no existe.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category = $3, quantity = $4, price = $5
		WHERE id = $1`
	return r.pool.WithConn(ctx, func(q Querier) error {
		cmd, err := q.Exec(ctx, query,
			product.ID, product.Name, product.Category, product.Quantity, product.Price,
		)
		if err != nil {
			return fmt.Errorf("actualizar producto: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// Delete elimina un producto por id. Borrar un id inexistente no es un
// error: la operación queda en no-op y el pool sigue usable.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	return r.pool.WithConn(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
			return fmt.Errorf("eliminar producto: %w", err)
		}
		return nil
	})
}

func (r *ProductRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.pool.WithConn(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var p entity.Product
			if err := scanProduct(rows, &p); err != nil {
				return err
			}
			out = append(out, &p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	return out, nil
}

// scanProduct mapea una fila completa a Product. Una columna ausente o de
// tipo inesperado es una falla de integridad, no un default silencioso.
func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.Price, &p.CreatedAt)
}
