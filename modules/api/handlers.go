package api

import (
	"context"
	"strconv"

	"github.com/example/product-catalog-api/domain/product"
	productmod "github.com/example/product-catalog-api/modules/product"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// Handlers holds the HTTP handlers for the product endpoints.
type Handlers struct {
	service *productmod.Service
	health  func(context.Context) error
}

// NewHandlers creates handlers backed by the product service.
func NewHandlers(service *productmod.Service, health func(context.Context) error) *Handlers {
	return &Handlers{service: service, health: health}
}

// Register mounts all routes on the app.
func (h *Handlers) Register(app *fiber.App) {
	app.Get("/health", h.HealthCheck)

	products := app.Group("/products")
	products.Get("/", h.ListProducts)
	products.Get("/:id", h.GetProduct)
	products.Post("/", h.CreateProduct)
	products.Put("/:id", h.UpdateProduct)
	products.Delete("/:id", h.DeleteProduct)
}

// HealthCheck reports whether the persistence layer is reachable.
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	if h.health != nil {
		if err := h.health(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
			})
		}
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// ListProducts returns all products, or one page of them when pagination
// query parameters are present.
func (h *Handlers) ListProducts(c *fiber.Ctx) error {
	if c.Query("page") != "" || c.Query("pageSize") != "" {
		page := queryInt(c, "page", defaultPage)
		pageSize := queryInt(c, "pageSize", defaultPageSize)

		result, err := h.service.ListPaginated(c.Context(), page, pageSize)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(errorResponse("An error occurred while retrieving products", nil))
		}

		return c.JSON(paginationFormat(
			"Successfully retrieved products",
			result.Items,
			result.TotalItems,
			result.CurrentPage,
			result.TotalPages,
			result.PageSize,
		))
	}

	products, err := h.service.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(errorResponse("An error occurred while retrieving products", nil))
	}

	return c.JSON(successResponse(products, "Successfully retrieved products"))
}

// GetProduct returns a single product by ID.
func (h *Handlers) GetProduct(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).
			JSON(errorResponse("ID is not a number", nil))
	}

	p, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(errorResponse("An error occurred while retrieving the product", nil))
	}
	if p == nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(errorResponse("Product not found", nil))
	}

	return c.JSON(successResponse(p, "Successfully retrieved product"))
}

// CreateProduct validates the payload and stores a new product.
func (h *Handlers) CreateProduct(c *fiber.Ctx) error {
	fields := requestFields(c)
	if errs := validateProductPayload(fields); errs != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(errorResponse("Validation errors", errs))
	}

	p, err := h.service.Create(c.Context(), buildCreateRequest(fields))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(errorResponse("An error occurred while creating the product", nil))
	}

	return c.Status(fiber.StatusCreated).
		JSON(successResponse(p, "Successfully created product"))
}

// UpdateProduct validates the payload and updates an existing product.
func (h *Handlers) UpdateProduct(c *fiber.Ctx) error {
	fields := requestFields(c)
	if errs := validateProductPayload(fields); errs != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(errorResponse("Validation errors", errs))
	}

	id, ok := parseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).
			JSON(errorResponse("ID is not a number", nil))
	}

	p, err := h.service.UpdateByID(c.Context(), id, buildUpdateRequest(fields))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(errorResponse("An error occurred while updating the product", nil))
	}
	if p == nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(errorResponse("Product not found", nil))
	}

	return c.JSON(successResponse(p, "Successfully updated product"))
}

// DeleteProduct removes a product and returns the deleted record.
func (h *Handlers) DeleteProduct(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).
			JSON(errorResponse("ID is not a number", nil))
	}

	p, err := h.service.DeleteByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(errorResponse("An error occurred while deleting the product", nil))
	}
	if p == nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(errorResponse("Product not found", nil))
	}

	return c.JSON(successResponse(p, "Successfully deleted product"))
}

// parseID parses a path id segment. IDs are store-assigned positive
// integers, so anything non-numeric fails here.
func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// queryInt reads an integer query parameter. Non-numeric or out-of-range
// input falls back to the default rather than failing the request.
func queryInt(c *fiber.Ctx, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// requestFields decodes the request body into an untyped field map so the
// validation gate sees the raw values. An unreadable body validates the
// same as an empty one.
func requestFields(c *fiber.Ctx) map[string]any {
	fields := map[string]any{}
	if err := c.BodyParser(&fields); err != nil {
		return map[string]any{}
	}
	return fields
}

// buildCreateRequest maps validated fields onto the create request. Keys
// outside the product schema are ignored.
func buildCreateRequest(fields map[string]any) *product.CreateProductRequest {
	req := &product.CreateProductRequest{}
	if name, ok := fields["name"].(string); ok {
		req.Name = name
	}
	if price, ok := numberValue(fields["price"]); ok {
		req.Price = price
	}
	if desc, ok := fields["description"].(string); ok {
		req.Description = desc
	}
	if stock, ok := numberValue(fields["stock"]); ok {
		req.Stock = int(stock)
	}
	return req
}

// buildUpdateRequest maps validated fields onto the update request. Name
// and price are always present after validation; the rest only when sent.
func buildUpdateRequest(fields map[string]any) *product.UpdateProductRequest {
	req := &product.UpdateProductRequest{}
	if name, ok := fields["name"].(string); ok {
		req.Name = &name
	}
	if price, ok := numberValue(fields["price"]); ok {
		req.Price = &price
	}
	if desc, ok := fields["description"].(string); ok {
		req.Description = &desc
	}
	if stock, ok := numberValue(fields["stock"]); ok {
		n := int(stock)
		req.Stock = &n
	}
	return req
}
