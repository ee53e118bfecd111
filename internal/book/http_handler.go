package book

import (
	"errors"
	"net/http"
	"strings"

	"bookrec/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// GetByProviderID handles GET /v1/books/{providerID}
// @Summary Get a cached book
// @Tags books
// @Produce json
// @Param providerID path string true "Provider book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books/{providerID} [get]
func (h *HTTPHandler) GetByProviderID(w http.ResponseWriter, r *http.Request) {
	providerID := r.PathValue("providerID")
	if providerID == "" || strings.Contains(providerID, "/") {
		http.NotFound(w, r)
		return
	}

	b, err := h.service.GetByProviderID(r.Context(), providerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}
