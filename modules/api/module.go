package api

import (
	"context"
	"fmt"
	"log"

	productmod "github.com/example/product-catalog-api/modules/product"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Module provides the HTTP API for the product catalog.
type Module struct {
	app           *fiber.App
	handlers      *Handlers
	productModule *productmod.Module
	port          int
}

// NewModule creates a new API module.
func NewModule(port int) *Module {
	return &Module{
		port: port,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "api"
}

// SetProductModule sets the product module dependency.
func (m *Module) SetProductModule(pm *productmod.Module) {
	m.productModule = pm
}

// Init initializes the Fiber app and its middleware stack.
func (m *Module) Init(_ mono.ServiceContainer) error {
	m.app = newApp()
	return nil
}

// newApp builds the Fiber app with the shared middleware stack.
func newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Product Catalog API",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestID())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())

	return app
}

// Start mounts the routes and starts the HTTP server.
func (m *Module) Start(_ context.Context) error {
	if m.productModule == nil {
		return fmt.Errorf("product module not set")
	}

	service := m.productModule.GetService()
	if service == nil {
		return fmt.Errorf("product service not available")
	}

	m.handlers = NewHandlers(service, m.productModule.HealthCheck)
	m.handlers.Register(m.app)

	go func() {
		addr := fmt.Sprintf(":%d", m.port)
		log.Printf("[api] Starting HTTP server on %s", addr)
		if err := m.app.Listen(addr); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	return nil
}

// Stop stops the HTTP server gracefully.
func (m *Module) Stop(_ context.Context) error {
	if m.app != nil {
		log.Println("[api] Shutting down HTTP server...")
		return m.app.Shutdown()
	}
	return nil
}

// errorHandler is the app-level backstop for errors escaping the routes.
// Persistence failures are mapped to envelopes at the call site; this
// catches the rest (bad routes, panics surfaced by recover).
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(errorResponse(message, nil))
}

// GetApp returns the Fiber app (for testing).
func (m *Module) GetApp() *fiber.App {
	return m.app
}
