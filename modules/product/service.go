package product

import (
	"context"

	"github.com/example/product-catalog-api/domain/product"
)

// Service implements product use cases on top of the repository. Absent
// records are reported as (nil, nil) so callers can map them to "not found"
// without depending on store-specific error codes.
type Service struct {
	repo *product.Repository
}

// NewService creates a new product service.
func NewService(repo *product.Repository) *Service {
	return &Service{repo: repo}
}

// List returns all products.
func (s *Service) List(ctx context.Context) ([]product.Product, error) {
	return s.repo.List(ctx)
}

// ListPaginated returns one page of products. The offset is
// (page-1)*pageSize; pages past the end yield an empty item list rather
// than an error.
func (s *Service) ListPaginated(ctx context.Context, page, pageSize int) (*product.Page, error) {
	offset := (page - 1) * pageSize

	items, total, err := s.repo.ListPage(ctx, offset, pageSize)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &product.Page{
		Items:       items,
		TotalItems:  total,
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    pageSize,
	}, nil
}

// GetByID returns the product with the given ID, or nil when absent.
func (s *Service) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new product and returns it with its assigned ID.
// Store-constraint failures propagate to the caller.
func (s *Service) Create(ctx context.Context, req *product.CreateProductRequest) (*product.Product, error) {
	p := &product.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// UpdateByID updates an existing product. It confirms the record exists
// before mutating; an absent ID returns (nil, nil).
func (s *Service) UpdateByID(ctx context.Context, id uint, req *product.UpdateProductRequest) (*product.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// DeleteByID deletes an existing product and returns the deleted record.
// Same check-then-act pattern as UpdateByID; an absent ID returns (nil, nil).
func (s *Service) DeleteByID(ctx context.Context, id uint) (*product.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return p, nil
}
