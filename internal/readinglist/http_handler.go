package readinglist

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

type addReq struct {
	ProviderID string `json:"provider_id" validate:"required,provider_id"`
	Status     string `json:"status" validate:"omitempty,max=20"`
}

// Add handles POST /v1/users/{id}/library
// @Summary Add a book to the library
// @Tags library
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body addReq true "Library entry"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /v1/users/{id}/library [post]
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDParam(r)
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid user ID", nil)
		return
	}

	var req addReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	if err := h.service.Add(r.Context(), userID, req.ProviderID, req.Status); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, map[string]string{"provider_id": req.ProviderID})
}

// Remove handles DELETE /v1/users/{id}/library/{providerID}
func (h *HTTPHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDParam(r)
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid user ID", nil)
		return
	}

	if err := h.service.Remove(r.Context(), userID, r.PathValue("providerID")); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// List handles GET /v1/users/{id}/library
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDParam(r)
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid user ID", nil)
		return
	}

	limit := httpx.IntQuery(r, "limit", 20, 1, 100)
	offset := httpx.IntQuery(r, "offset", 0, 0, 1<<20)

	entries, total, err := h.service.List(r.Context(), userID, r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, entries, map[string]any{
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

type rateReq struct {
	Star int `json:"star" validate:"required,gte=1,lte=5"`
}

// Rate handles PUT /v1/users/{id}/library/{providerID}/rating
// @Summary Rate a library book
// @Description Set a 1-5 star rating on a book in the user's library
// @Tags library
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param providerID path string true "Provider book ID"
// @Param request body rateReq true "Rating request"
// @Success 204 "No Content"
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/users/{id}/library/{providerID}/rating [put]
func (h *HTTPHandler) Rate(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDParam(r)
	if !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid user ID", nil)
		return
	}

	var req rateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	if err := h.service.Rate(r.Context(), userID, r.PathValue("providerID"), req.Star); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, user.ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	case errors.Is(err, ErrAlreadyExists):
		httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Book already in library", nil)
	case errors.Is(err, ErrInvalidStatus):
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), []httpx.ErrorDetail{
			{Field: "status", Message: "must be WISHLIST, READING or FINISHED"},
		})
	case errors.Is(err, ErrInvalidRating):
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", []httpx.ErrorDetail{
			{Field: "star", Message: err.Error()},
		})
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
