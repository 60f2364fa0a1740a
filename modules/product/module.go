package product

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/example/product-catalog-api/domain/product"
	"github.com/go-monolith/mono"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Module provides product services as a mono module. It owns the SQLite
// connection and runs migrations on init.
type Module struct {
	db      *gorm.DB
	repo    *product.Repository
	service *Service
	dbPath  string
}

// NewModule creates a new product module.
func NewModule(dbPath string) *Module {
	return &Module{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "product"
}

// Init initializes the database and creates the service.
func (m *Module) Init(_ mono.ServiceContainer) error {
	logLevel := logger.Warn
	if os.Getenv("DB_DEBUG") == "true" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	m.db = db
	m.repo = product.NewRepository(db)

	if err := m.repo.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	m.service = NewService(m.repo)

	log.Printf("[product] Database initialized at %s", m.dbPath)
	return nil
}

// Start starts the module.
func (m *Module) Start(_ context.Context) error {
	if m.service == nil {
		return fmt.Errorf("product service not initialized")
	}
	log.Println("[product] Module started")
	return nil
}

// Stop stops the module and closes the database connection.
func (m *Module) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[product] Module stopped")
	return nil
}

// GetService returns the product service.
func (m *Module) GetService() *Service {
	return m.service
}

// GetRepository returns the product repository.
func (m *Module) GetRepository() *product.Repository {
	return m.repo
}

// HealthCheck verifies the database connection is healthy.
func (m *Module) HealthCheck(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database not initialized")
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
