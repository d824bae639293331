package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxBodyBytes caps request bodies. Generated documents round-trip through
// the render and export endpoints, so the limit is generous.
const maxBodyBytes = 10 << 20

// ParseJSON decodes the request body into dest, enforcing the body size cap.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
