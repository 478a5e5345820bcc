package utils

import (
	"citas-service/internal/pkg/exceptions"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// ParseRequestBody decodes a JSON request body into dst and validates it.
func ParseRequestBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	defer r.Body.Close()

	if err := json.Unmarshal(body, dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
