package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-server/internal/application/dto"
	"github.com/jhoicas/inventario-server/internal/audit"
	"github.com/jhoicas/inventario-server/internal/domain"
	"github.com/jhoicas/inventario-server/internal/domain/entity"
	"github.com/jhoicas/inventario-server/internal/domain/repository"
)

// Etiquetas de operación del rastro de auditoría de productos.
const (
	opAddProduct    = "ADD_PRODUCT"
	opUpdateProduct = "UPDATE_PRODUCT"
	opDeleteProduct = "DELETE_PRODUCT"
)

// ProductUseCase fachada de inventario para productos: valida, delega al
// repo y audita. Las lecturas delegan directo y no se auditan; cada
// mutación emite exactamente una entrada de auditoría, de éxito o de error.
// No guarda estado propio.
type ProductUseCase struct {
	repo  repository.ProductRepository
	audit audit.Recorder
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, rec audit.Recorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, audit: rec}
}

// List devuelve todos los productos en orden de inserción.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListByCategory filtra por subcadena de categoría.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, category string) ([]dto.ProductResponse, error) {
	products, err := uc.repo.GetByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListByName filtra por subcadena de nombre.
func (uc *ProductUseCase) ListByName(ctx context.Context, name string) ([]dto.ProductResponse, error) {
	products, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListByQuantity filtra por cantidad exacta.
func (uc *ProductUseCase) ListByQuantity(ctx context.Context, quantity int) ([]dto.ProductResponse, error) {
	products, err := uc.repo.GetByQuantity(ctx, quantity)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Create valida y persiste un producto nuevo; la DB asigna id y created_at.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest, actor string) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:     in.Name,
		Category: in.Category,
		Quantity: in.Quantity,
		Price:    in.Price,
	}
	if !product.Valid() {
		uc.audit.Error(opAddProduct, fmt.Sprintf("producto inválido: %q", in.Name), actor)
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		uc.audit.Error(opAddProduct, fmt.Sprintf("fallo al crear producto %q: %v", in.Name, err), actor)
		return nil, err
	}
	uc.audit.Record(opAddProduct, fmt.Sprintf("producto creado: %q (id %d)", product.Name, product.ID), actor)
	return toProductResponse(product), nil
}

// Update reemplaza todos los campos del producto salvo id y created_at.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.ProductRequest, actor string) (*dto.ProductResponse, error) {
	product := &entity.Product{
		ID:       id,
		Name:     in.Name,
		Category: in.Category,
		Quantity: in.Quantity,
		Price:    in.Price,
	}
	if !product.Valid() {
		uc.audit.Error(opUpdateProduct, fmt.Sprintf("datos inválidos para producto id %d", id), actor)
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		uc.audit.Error(opUpdateProduct, fmt.Sprintf("fallo al actualizar producto id %d: %v", id, err), actor)
		return nil, err
	}
	uc.audit.Record(opUpdateProduct, fmt.Sprintf("producto actualizado: %q (id %d)", product.Name, id), actor)

	updated, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(updated), nil
}

// Delete elimina un producto por id. Borrar un id inexistente no es falla.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64, actor string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.audit.Error(opDeleteProduct, fmt.Sprintf("fallo al eliminar producto id %d: %v", id, err), actor)
		return err
	}
	uc.audit.Record(opDeleteProduct, fmt.Sprintf("producto eliminado: id %d", id), actor)
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Quantity:  p.Quantity,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out
}
