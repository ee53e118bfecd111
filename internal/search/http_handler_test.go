package search

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPHandler_Search(t *testing.T) {
	p := newFakeProvider()
	p.results["dune"] = vols("d", 3)
	h := NewHTTPHandler(newTestService(p, nil))

	t.Run("ok", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/books/search?query=dune&maxResults=2", nil)

		h.Search(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":2`)
	})

	t.Run("missing query", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/books/search", nil)

		h.Search(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("provider down still succeeds with no books", func(t *testing.T) {
		p.errs["tolkien"] = assert.AnError
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/books/search?query=tolkien", nil)

		h.Search(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})
}

func TestHTTPHandler_ByTerm(t *testing.T) {
	p := newFakeProvider()
	p.results["subject:Fantasy"] = vols("f", 20)
	p.results["inauthor:Tolkien"] = vols("t", 2)
	h := NewHTTPHandler(newTestService(p, nil))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/books/search/genre/Fantasy", nil)
	r.SetPathValue("genre", "Fantasy")
	h.ByGenre(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":20`)

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/v1/books/search/author/Tolkien", nil)
	r.SetPathValue("author", "Tolkien")
	h.ByAuthor(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)
}
