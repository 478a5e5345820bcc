package utils

import (
	"strconv"

	"github.com/goccy/go-json"
)

// NormalizarID renders whatever the core API used as an identifier (string,
// JSON number) into its canonical string form. Empty result means "no id".
func NormalizarID(v interface{}) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case json.Number:
		return id.String()
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	default:
		return ""
	}
}

// NormalizarPrecio coerces the backend's price field (string or number) into a
// float64, mapping missing or invalid values to 0.
func NormalizarPrecio(v interface{}) float64 {
	switch precio := v.(type) {
	case float64:
		return precio
	case json.Number:
		parsed, err := precio.Float64()
		if err != nil {
			return 0
		}
		return parsed
	case string:
		parsed, err := strconv.ParseFloat(precio, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
