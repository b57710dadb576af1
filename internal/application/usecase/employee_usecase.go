package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-server/internal/application/dto"
	"github.com/jhoicas/inventario-server/internal/audit"
	"github.com/jhoicas/inventario-server/internal/domain"
	"github.com/jhoicas/inventario-server/internal/domain/entity"
	"github.com/jhoicas/inventario-server/internal/domain/repository"
)

// Etiquetas de operación del rastro de auditoría de empleados.
const (
	opAddEmployee    = "ADD_EMPLOYEE"
	opUpdateEmployee = "UPDATE_EMPLOYEE"
	opDeleteEmployee = "DELETE_EMPLOYEE"
)

// EmployeeUseCase fachada para la gestión de empleados. Toda operación,
// incluida la vista, exige que el actor sea admin; el rol se re-verifica
// contra la DB en cada llamada en vez de confiar en un flag que viaje con
// el cliente.
type EmployeeUseCase struct {
	repo  repository.EmployeeRepository
	audit audit.Recorder
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, rec audit.Recorder) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, audit: rec}
}

// List devuelve todos los empleados (solo admin). Vista: no se audita.
func (uc *EmployeeUseCase) List(ctx context.Context, actor string) ([]dto.EmployeeResponse, error) {
	if err := uc.requireAdmin(ctx, actor); err != nil {
		return nil, err
	}
	employees, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, *toEmployeeResponse(e))
	}
	return out, nil
}

// Create registra un empleado nuevo con la contraseña hasheada (bcrypt,
// salt embebido en el hash). Solo admin.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest, actor string) (*dto.EmployeeResponse, error) {
	if err := uc.requireAdmin(ctx, actor); err != nil {
		uc.audit.Error(opAddEmployee, fmt.Sprintf("actor sin permisos para crear empleado %q", in.Username), actor)
		return nil, err
	}
	if in.Username == "" || in.Password == "" {
		uc.audit.Error(opAddEmployee, "username y password son requeridos", actor)
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = "staff"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.audit.Error(opAddEmployee, fmt.Sprintf("fallo al hashear contraseña de %q", in.Username), actor)
		return nil, err
	}
	employee := &entity.Employee{
		Username:     in.Username,
		Fullname:     in.Fullname,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		uc.audit.Error(opAddEmployee, fmt.Sprintf("fallo al crear empleado %q: %v", in.Username, err), actor)
		return nil, err
	}
	uc.audit.Record(opAddEmployee, fmt.Sprintf("empleado creado: %q (id %d)", employee.Username, employee.ID), actor)
	return toEmployeeResponse(employee), nil
}

// Update actualiza un empleado; el hash solo se recalcula cuando
// UpdatePassword es true. Solo admin.
func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, in dto.UpdateEmployeeRequest, actor string) (*dto.EmployeeResponse, error) {
	if err := uc.requireAdmin(ctx, actor); err != nil {
		uc.audit.Error(opUpdateEmployee, fmt.Sprintf("actor sin permisos para actualizar empleado id %d", id), actor)
		return nil, err
	}
	if in.Username == "" {
		uc.audit.Error(opUpdateEmployee, fmt.Sprintf("username requerido para empleado id %d", id), actor)
		return nil, domain.ErrInvalidInput
	}
	employee := &entity.Employee{
		ID:       id,
		Username: in.Username,
		Fullname: in.Fullname,
		Role:     in.Role,
	}
	if in.UpdatePassword {
		if in.Password == "" {
			uc.audit.Error(opUpdateEmployee, fmt.Sprintf("contraseña vacía para empleado id %d", id), actor)
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			uc.audit.Error(opUpdateEmployee, fmt.Sprintf("fallo al hashear contraseña de %q", in.Username), actor)
			return nil, err
		}
		employee.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(ctx, employee, in.UpdatePassword); err != nil {
		uc.audit.Error(opUpdateEmployee, fmt.Sprintf("fallo al actualizar empleado id %d: %v", id, err), actor)
		return nil, err
	}
	uc.audit.Record(opUpdateEmployee, fmt.Sprintf("empleado actualizado: %q (id %d)", employee.Username, id), actor)

	updated, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(updated), nil
}

// Delete elimina un empleado por id. Solo admin.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64, actor string) error {
	if err := uc.requireAdmin(ctx, actor); err != nil {
		uc.audit.Error(opDeleteEmployee, fmt.Sprintf("actor sin permisos para eliminar empleado id %d", id), actor)
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.audit.Error(opDeleteEmployee, fmt.Sprintf("fallo al eliminar empleado id %d: %v", id, err), actor)
		return err
	}
	uc.audit.Record(opDeleteEmployee, fmt.Sprintf("empleado eliminado: id %d", id), actor)
	return nil
}

// requireAdmin carga al actor desde la DB y verifica su rol por llamada.
// Un actor inexistente o sin rol admin recibe domain.ErrForbidden.
func (uc *EmployeeUseCase) requireAdmin(ctx context.Context, actor string) error {
	acting, err := uc.repo.GetByUsername(ctx, actor)
	if err != nil {
		return err
	}
	if acting == nil || !acting.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Username:  e.Username,
		Fullname:  e.Fullname,
		Role:      e.Role,
		CreatedAt: e.CreatedAt,
	}
}
