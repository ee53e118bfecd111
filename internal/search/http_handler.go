package search

import (
	"net/http"
	"strings"

	"bookrec/internal/book"
	"bookrec/internal/httpx"
	"bookrec/internal/preference"
)

const defaultMaxResults = 20

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Search handles GET /v1/books/search?query=
// @Summary Keyword book search
// @Tags search
// @Produce json
// @Param query query string true "Search terms"
// @Param maxResults query int false "Result count (1-40)"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /v1/books/search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "query is required", []httpx.ErrorDetail{
			{Field: "query", Message: "must not be empty"},
		})
		return
	}
	limit := httpx.IntQuery(r, "maxResults", defaultMaxResults, 1, MaxResults)
	writeBooks(w, r, h.service.Search(r.Context(), query, limit))
}

// ByGenre handles GET /v1/books/search/genre/{genre}
func (h *HTTPHandler) ByGenre(w http.ResponseWriter, r *http.Request) {
	h.byTerm(w, r, r.PathValue("genre"), preference.KindGenre)
}

// ByAuthor handles GET /v1/books/search/author/{author}
func (h *HTTPHandler) ByAuthor(w http.ResponseWriter, r *http.Request) {
	h.byTerm(w, r, r.PathValue("author"), preference.KindAuthor)
}

func (h *HTTPHandler) byTerm(w http.ResponseWriter, r *http.Request, term string, kind preference.Kind) {
	term = strings.TrimSpace(term)
	if term == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "search term is required", nil)
		return
	}
	limit := httpx.IntQuery(r, "maxResults", defaultMaxResults, 1, MaxResults)
	writeBooks(w, r, h.service.SearchTerm(r.Context(), term, kind, limit))
}

func writeBooks(w http.ResponseWriter, r *http.Request, books []book.Book) {
	httpx.JSONSuccess(w, r, books, map[string]any{"total": len(books)})
}
