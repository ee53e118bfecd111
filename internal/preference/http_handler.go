package preference

import (
	"encoding/json"
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

type replaceReq struct {
	Genres  []string `json:"genres" validate:"max=50,dive,max=255"`
	Authors []string `json:"authors" validate:"max=50,dive,max=255"`
}

// Get handles GET /v1/users/{id}/preferences
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDParam(r)
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid user ID", nil)
		return
	}

	set, err := h.service.Get(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, set, nil)
}

// Replace handles PUT /v1/users/{id}/preferences
// @Summary Replace preferences
// @Description Replace the user's favorite genres and authors with the submitted lists
// @Tags preferences
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body replaceReq true "Preferences"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/users/{id}/preferences [put]
func (h *HTTPHandler) Replace(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDParam(r)
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid user ID", nil)
		return
	}

	var req replaceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	set, err := h.service.Replace(r.Context(), userID, Set{Genres: req.Genres, Authors: req.Authors})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, set, nil)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, user.ErrNotFound) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
		return
	}
	httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}
