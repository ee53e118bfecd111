package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// UserIDParam reads the {id} path value and checks it is a UUID.
func UserIDParam(r *http.Request) (string, bool) {
	id := strings.TrimSpace(r.PathValue("id"))
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// IntQuery parses an integer query parameter. Missing or unparseable values
// yield def; parsed values are clamped to [min, max].
func IntQuery(r *http.Request, key string, def, min, max int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
