package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/soulnest/soulnest/pkg/httpext"
	"github.com/soulnest/soulnest/pkg/logger"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeAndValidate reads a JSON body into v and writes a 400 on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Error(logger.HANDLER, "Failed to decode request: %v", err)
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return false
	}

	if err := validate.Struct(v); err != nil {
		logger.Warn(logger.HANDLER, "Request failed validation: %v", err)
		httpext.JsonErrorWithDetails(w, http.StatusBadRequest, httpext.ErrorResponse{
			Error:  "Invalid request",
			Detail: err.Error(),
		})
		return false
	}

	return true
}
