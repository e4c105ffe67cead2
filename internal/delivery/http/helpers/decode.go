package helpers

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into dest with unknown fields
// disallowed. On failure it writes a 400 JSON error and returns false;
// callers should return immediately when that happens.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}
	return true
}
