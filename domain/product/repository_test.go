package product

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := NewRepository(db).Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func TestRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	product := &Product{
		Name:        "Test Product",
		Description: "A test product",
		Price:       19.99,
		Stock:       100,
	}

	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if product.ID == 0 {
		t.Error("expected store-assigned ID, got 0")
	}

	var found Product
	if err := db.First(&found, product.ID).Error; err != nil {
		t.Fatalf("failed to find created product: %v", err)
	}
	if found.Name != product.Name {
		t.Errorf("expected name %q, got %q", product.Name, found.Name)
	}
	if found.Price != product.Price {
		t.Errorf("expected price %v, got %v", product.Price, found.Price)
	}
}

func TestRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	product := &Product{Name: "GetByID Test", Price: 29.99, Stock: 50}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}

	t.Run("existing product", func(t *testing.T) {
		found, err := repo.GetByID(ctx, product.ID)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if found == nil {
			t.Fatal("expected product, got nil")
		}
		if found.Name != product.Name {
			t.Errorf("expected name %q, got %q", product.Name, found.Name)
		}
	})

	t.Run("non-existent product", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 99999)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if found != nil {
			t.Errorf("expected nil for non-existent product, got %+v", found)
		}
	})
}

func TestRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("empty database", func(t *testing.T) {
		products, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(products) != 0 {
			t.Errorf("expected 0 products, got %d", len(products))
		}
	})

	for i := 0; i < 3; i++ {
		product := &Product{
			Name:  "Product " + string(rune('A'+i)),
			Price: float64(10 + i),
			Stock: i * 10,
		}
		if err := db.Create(product).Error; err != nil {
			t.Fatalf("failed to create test product: %v", err)
		}
	}

	t.Run("with products", func(t *testing.T) {
		products, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(products) != 3 {
			t.Errorf("expected 3 products, got %d", len(products))
		}
	})
}

func TestRepository_ListPage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		product := &Product{
			Name:  "Product " + string(rune('A'+i)),
			Price: float64(i) * 2,
		}
		if err := db.Create(product).Error; err != nil {
			t.Fatalf("failed to create test product: %v", err)
		}
	}

	t.Run("first page", func(t *testing.T) {
		products, total, err := repo.ListPage(ctx, 0, 5)
		if err != nil {
			t.Fatalf("ListPage() error = %v", err)
		}
		if total != 12 {
			t.Errorf("expected total 12, got %d", total)
		}
		if len(products) != 5 {
			t.Errorf("expected 5 products, got %d", len(products))
		}
	})

	t.Run("last partial page", func(t *testing.T) {
		products, total, err := repo.ListPage(ctx, 10, 5)
		if err != nil {
			t.Fatalf("ListPage() error = %v", err)
		}
		if total != 12 {
			t.Errorf("expected total 12, got %d", total)
		}
		if len(products) != 2 {
			t.Errorf("expected 2 products, got %d", len(products))
		}
	})

	t.Run("page past the end", func(t *testing.T) {
		products, total, err := repo.ListPage(ctx, 100, 5)
		if err != nil {
			t.Fatalf("ListPage() error = %v", err)
		}
		if total != 12 {
			t.Errorf("expected total 12, got %d", total)
		}
		if len(products) != 0 {
			t.Errorf("expected 0 products, got %d", len(products))
		}
	})
}

func TestRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	product := &Product{Name: "Original Name", Price: 19.99, Stock: 100}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}

	product.Name = "Updated Name"
	product.Price = 29.99

	if err := repo.Update(ctx, product); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	var found Product
	if err := db.First(&found, product.ID).Error; err != nil {
		t.Fatalf("failed to find updated product: %v", err)
	}
	if found.Name != "Updated Name" {
		t.Errorf("expected name %q, got %q", "Updated Name", found.Name)
	}
	if found.Price != 29.99 {
		t.Errorf("expected price %v, got %v", 29.99, found.Price)
	}
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	product := &Product{Name: "To Be Deleted", Price: 9.99, Stock: 10}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}

	if err := repo.Delete(ctx, product.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Soft delete: the row survives with deleted_at set but reads as absent.
	var found Product
	if err := db.Unscoped().First(&found, product.ID).Error; err != nil {
		t.Fatalf("failed to find deleted product: %v", err)
	}
	if !found.DeletedAt.Valid {
		t.Error("expected DeletedAt to be set after soft delete")
	}

	got, err := repo.GetByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("GetByID() after delete error = %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %+v", got)
	}
}
