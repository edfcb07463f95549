package handler

import (
	"net/http"

	"bookclub/internal/schema"
	"bookclub/internal/service"
)

var addAuthorSchema = schema.Schema{"name": schema.String}

var createBookSchema = schema.Schema{
	"title":     schema.String,
	"summary":   schema.String,
	"authorId":  schema.String,
	"bookCover": schema.String,
}

// CatalogHandler handles administrator catalog curation requests.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// HandleAddAuthor creates an author.
// POST /api/authors
// Request:  {"name":"..."}
// Response: {"author": {...}}
func (h *CatalogHandler) HandleAddAuthor(w http.ResponseWriter, r *http.Request) {
	ident := IdentityFromContext(r.Context())
	if err := service.Authorize(ident, true); err != nil {
		writeDomainError(w, err)
		return
	}

	payload, err := readPayload(w, r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := addAuthorSchema.Validate(payload); err != nil {
		writeDomainError(w, err)
		return
	}

	author, err := h.catalog.AddAuthor(r.Context(), schema.Str(payload, "name"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"author": toAuthorDTO(author),
	})
}

// HandleCreateBook creates a book, ingesting its embedded cover image.
// POST /api/books
// Request:  {"title":"...","summary":"...","authorId":"...","bookCover":"data:image/png;base64,..."}
// Response: {"book": {...}}
func (h *CatalogHandler) HandleCreateBook(w http.ResponseWriter, r *http.Request) {
	ident := IdentityFromContext(r.Context())
	if err := service.Authorize(ident, true); err != nil {
		writeDomainError(w, err)
		return
	}

	payload, err := readPayload(w, r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := createBookSchema.Validate(payload); err != nil {
		writeDomainError(w, err)
		return
	}

	book, err := h.catalog.CreateBook(r.Context(),
		schema.Str(payload, "title"),
		schema.Str(payload, "summary"),
		schema.Str(payload, "authorId"),
		schema.Str(payload, "bookCover"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"book": toBookDTO(book),
	})
}
