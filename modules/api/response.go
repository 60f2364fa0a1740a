package api

// Meta carries pagination bookkeeping for list responses.
type Meta struct {
	TotalItems  int64 `json:"totalItems"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
}

// Envelope is the uniform wrapper every endpoint returns. Each handler
// builds its own value per request; envelopes are never shared.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Meta    *Meta             `json:"meta,omitempty"`
}

// successResponse builds a success envelope. A nil payload becomes an
// empty list so clients always see a data key.
func successResponse(data any, message string) Envelope {
	if data == nil {
		data = []any{}
	}
	return Envelope{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// errorResponse builds an error envelope. Field-level details are included
// only when the mapping is non-empty.
func errorResponse(message string, errors map[string]string) Envelope {
	e := Envelope{
		Success: false,
		Message: message,
	}
	if len(errors) > 0 {
		e.Errors = errors
	}
	return e
}

// paginationFormat builds a success envelope with pagination metadata.
func paginationFormat(message string, data any, totalItems int64, currentPage, totalPages, pageSize int) Envelope {
	if data == nil {
		data = []any{}
	}
	return Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Meta: &Meta{
			TotalItems:  totalItems,
			CurrentPage: currentPage,
			TotalPages:  totalPages,
			PageSize:    pageSize,
		},
	}
}
