package recommend

import (
	"errors"
	"net/http"

	"bookrec/internal/httpx"
)

const (
	defaultLimit = 20
	maxLimit     = 40
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Get handles GET /v1/users/{id}/recommendations
// @Summary Recommend books
// @Description Ranks provider books against the user's favorite genres and authors, excluding books already in the library
// @Tags recommendations
// @Produce json
// @Param id path string true "User ID"
// @Param limit query int false "Maximum results (1-40)"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 503 {object} httpx.ErrorResponse
// @Router /v1/users/{id}/recommendations [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDParam(r)
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid user ID", nil)
		return
	}
	limit := httpx.IntQuery(r, "limit", defaultLimit, 1, maxLimit)

	res, err := h.service.Recommend(r.Context(), userID, limit)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
		case errors.Is(err, ErrStoreUnavailable):
			httpx.JSONError(w, r, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Recommendation data is temporarily unavailable", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccess(w, r, res, nil)
}
