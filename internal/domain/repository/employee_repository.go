package repository

import (
	"context"

	"github.com/jhoicas/inventario-server/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// GetByUsername es búsqueda exacta; devuelve (nil, nil) si no existe.
type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]*entity.Employee, error)
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	GetByUsername(ctx context.Context, username string) (*entity.Employee, error)
	// Create persiste el empleado (PasswordHash ya hasheado por el caso de uso)
	// y completa ID y CreatedAt asignados por la DB.
	Create(ctx context.Context, employee *entity.Employee) error
	// Update actualiza el empleado. Si updatePassword es false, el hash
	// almacenado se conserva tal cual.
	Update(ctx context.Context, employee *entity.Employee, updatePassword bool) error
	Delete(ctx context.Context, id int64) error
}
