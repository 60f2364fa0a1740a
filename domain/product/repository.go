package product

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository provides database operations for products.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new product repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create creates a new product in the database. The store assigns the ID.
func (r *Repository) Create(ctx context.Context, product *Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetByID retrieves a product by its ID. A missing product is reported as
// (nil, nil), not as an error.
func (r *Repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// List retrieves all products ordered by ID. The result is non-nil even
// when the table is empty so callers serialize it as an empty list.
func (r *Repository) List(ctx context.Context) ([]Product, error) {
	products := make([]Product, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListPage retrieves one page of products plus the total record count.
// Results are ordered by ID for consistent pagination.
func (r *Repository) ListPage(ctx context.Context, offset, limit int) ([]Product, int64, error) {
	products := make([]Product, 0)
	var total int64

	if err := r.db.WithContext(ctx).Model(&Product{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := r.db.WithContext(ctx).Order("id ASC").Offset(offset).Limit(limit)
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return products, total, nil
}

// Update persists changes to an existing product.
func (r *Repository) Update(ctx context.Context, product *Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete soft-deletes a product by its ID. A soft-deleted ID reads as
// absent from then on.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&Product{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// Migrate runs database migrations for the product table.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&Product{})
}
