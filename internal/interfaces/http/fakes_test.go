package http_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/inventario-server/internal/domain"
	"github.com/jhoicas/inventario-server/internal/domain/entity"
)

// fakeAudit descarta las entradas: en estos tests se verifica el contrato
// HTTP, la auditoría tiene sus propios tests en la capa de casos de uso.
type fakeAudit struct{}

func (fakeAudit) Record(operation, detail, actor string) {}
func (fakeAudit) Error(operation, detail, actor string)  {}

// fakeProductRepo repositorio de productos en memoria.
type fakeProductRepo struct {
	mu       sync.Mutex
	products []*entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1}
}

func (f *fakeProductRepo) GetAll(ctx context.Context) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.Product(nil), f.products...), nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	return f.filter(func(p *entity.Product) bool {
		return strings.Contains(strings.ToLower(p.Category), strings.ToLower(category))
	})
}

func (f *fakeProductRepo) GetByName(ctx context.Context, name string) ([]*entity.Product, error) {
	return f.filter(func(p *entity.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), strings.ToLower(name))
	})
}

func (f *fakeProductRepo) GetByQuantity(ctx context.Context, quantity int) ([]*entity.Product, error) {
	return f.filter(func(p *entity.Product) bool { return p.Quantity == quantity })
}

func (f *fakeProductRepo) filter(keep func(*entity.Product) bool) ([]*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Product
	for _, p := range f.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	product.ID = f.nextID
	f.nextID++
	product.CreatedAt = time.Now()
	cp := *product
	f.products = append(f.products, &cp)
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.ID == product.ID {
			p.Name = product.Name
			p.Category = product.Category
			p.Quantity = product.Quantity
			p.Price = product.Price
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeEmployeeRepo repositorio de empleados en memoria.
type fakeEmployeeRepo struct {
	mu        sync.Mutex
	employees []*entity.Employee
	nextID    int64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{nextID: 1}
}

func (f *fakeEmployeeRepo) GetAll(ctx context.Context) ([]*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.Employee(nil), f.employees...), nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.employees {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByUsername(ctx context.Context, username string) (*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.employees {
		if e.Username == username {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.employees {
		if e.Username == employee.Username {
			return domain.ErrDuplicate
		}
	}
	employee.ID = f.nextID
	f.nextID++
	employee.CreatedAt = time.Now()
	cp := *employee
	f.employees = append(f.employees, &cp)
	return nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, employee *entity.Employee, updatePassword bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.employees {
		if e.ID == employee.ID {
			e.Username = employee.Username
			e.Fullname = employee.Fullname
			e.Role = employee.Role
			if updatePassword {
				e.PasswordHash = employee.PasswordHash
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.employees {
		if e.ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeEmployeeRepo) seedEmployee(username, role, passwordHash string) *entity.Employee {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := &entity.Employee{
		ID:           f.nextID,
		Username:     username,
		Fullname:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	f.nextID++
	f.employees = append(f.employees, e)
	return e
}
