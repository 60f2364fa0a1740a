package product

// CreateProductRequest carries the fields for creating a product.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// UpdateProductRequest carries the fields for updating a product.
// Nil pointers mean "leave unchanged".
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
}

// Page is one page of products together with pagination bookkeeping.
type Page struct {
	Items       []Product `json:"items"`
	TotalItems  int64     `json:"totalItems"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
	PageSize    int       `json:"pageSize"`
}
