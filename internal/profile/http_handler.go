package profile

import (
	"errors"
	"net/http"

	"bookrec/internal/httpx"
	"bookrec/internal/user"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Get handles GET /v1/users/{id}/profile
// @Summary Get profile
// @Description Get a user with favorite genres, favorite authors and library stats
// @Tags profiles
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/users/{id}/profile [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDParam(r)
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid user ID", nil)
		return
	}

	p, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Profile not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, p, nil)
}
