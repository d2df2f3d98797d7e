package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/crm-ventas-api/internal/application/dto"
	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
)

// SearchLimit máximo de resultados de buscarProducto.
const SearchLimit = 10

// ProductUseCase casos de uso CRUD y búsqueda para productos.
// La existencia solo la descuenta el flujo de pedidos; aquí se fija al crear o editar.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateProduct(in.Name, in.Stock, in.Price); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Stock:     in.Stock,
		Price:     in.Price,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// GetByID obtiene un producto por ID (ErrNotFound si no existe).
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search búsqueda de texto completo sobre el nombre, máximo SearchLimit resultados.
func (uc *ProductUseCase) Search(ctx context.Context, text string) ([]dto.ProductResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []dto.ProductResponse{}, nil
	}
	list, err := uc.repo.Search(ctx, text, SearchLimit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Update actualiza solo los campos presentes en la entrada.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if err := validateProduct(product.Name, product.Stock, product.Price); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// Delete elimina un producto por ID. Los pedidos que lo referencian no se tocan.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) find(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto no encontrado", domain.ErrNotFound)
	}
	return product, nil
}

func validateProduct(name string, stock int, price decimal.Decimal) error {
	if name == "" {
		return fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}
	if stock < 0 {
		return fmt.Errorf("%w: existencia no puede ser negativa", domain.ErrInvalidInput)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: precio no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.FromProduct(p))
	}
	return out
}
