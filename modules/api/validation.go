package api

import "strconv"

// validateProductPayload checks the raw request fields for product writes.
// It returns nil when the payload passes, or a field-to-message mapping
// holding the first failing rule per field. Handlers must return early with
// a 400 envelope when the result is non-empty.
func validateProductPayload(fields map[string]any) map[string]string {
	errs := map[string]string{}

	if name, ok := fields["name"].(string); !ok || name == "" {
		errs["name"] = "Name is required"
	}
	if _, ok := numberValue(fields["price"]); !ok {
		errs["price"] = "Price must be a number"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// numberValue extracts a numeric value from a decoded JSON field. JSON
// numbers arrive as float64; numeric strings are accepted too.
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
