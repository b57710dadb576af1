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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = "id, username, fullname, password_hash, role, created_at"

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
// El hash de la contraseña llega ya calculado desde el caso de uso; aquí
// solo se persiste y se recupera.
type EmployeeRepo struct {
	pool *Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

// GetAll lista todos los empleados en orden de inserción (por id).
func (r *EmployeeRepo) GetAll(ctx context.Context) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`
	var out []*entity.Employee
	err := r.pool.WithConn(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var e entity.Employee
			if err := scanEmployee(rows, &e); err != nil {
				return err
			}
			out = append(out, &e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("listar empleados: %w", err)
	}
	return out, nil
}

// GetByID obtiene un empleado por ID. Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByUsername obtiene un empleado por username exacto. La ausencia no es
// un error: devuelve (nil, nil).
func (r *EmployeeRepo) GetByUsername(ctx context.Context, username string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE username = $1`
	return r.getOne(ctx, query, username)
}

// Create persiste un nuevo empleado. Devuelve domain.ErrDuplicate si el
// username ya existe.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (username, fullname, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.pool.WithConn(ctx, func(q Querier) error {
		return q.QueryRow(ctx, query,
			employee.Username, employee.Fullname, employee.PasswordHash, employee.Role,
		).Scan(&employee.ID, &employee.CreatedAt)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insertar empleado: %w", err)
	}
	return nil
}

// Update actualiza username, fullname y role; el hash solo cuando
// updatePassword es true. Devuelve domain.ErrNotFound si el id no existe.
func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee, updatePassword bool) error {
	query := `
		UPDATE employees SET username = $2, fullname = $3, role = $4
		WHERE id = $1`
	args := []any{employee.ID, employee.Username, employee.Fullname, employee.Role}
	if updatePassword {
		query = `
			UPDATE employees SET username = $2, fullname = $3, role = $4, password_hash = $5
			WHERE id = $1`
		args = append(args, employee.PasswordHash)
	}
	err := r.pool.WithConn(ctx, func(q Querier) error {
		cmd, err := q.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("actualizar empleado: %w", err)
	}
	return nil
}

// Delete elimina un empleado por id. Borrar un id inexistente es no-op.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	return r.pool.WithConn(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id); err != nil {
			return fmt.Errorf("eliminar empleado: %w", err)
		}
		return nil
	})
}

func (r *EmployeeRepo) getOne(ctx context.Context, query string, arg any) (*entity.Employee, error) {
	var e entity.Employee
	err := r.pool.WithConn(ctx, func(q Querier) error {
		return scanEmployee(q.QueryRow(ctx, query, arg), &e)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultar empleado: %w", err)
	}
	return &e, nil
}

// scanEmployee mapea una fila completa a Employee.
func scanEmployee(row pgx.Row, e *entity.Employee) error {
	return row.Scan(&e.ID, &e.Username, &e.Fullname, &e.PasswordHash, &e.Role, &e.CreatedAt)
}
