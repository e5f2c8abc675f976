package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation. On failure it writes a 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeErrorWithErr(w, http.StatusBadRequest, "validation failed", err)
		return false
	}
	return true
}
