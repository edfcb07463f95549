package handler

import (
	"net/http"

	"bookclub/internal/schema"
	"bookclub/internal/service"
)

var postCommentSchema = schema.Schema{
	"bookId":  schema.String,
	"comment": schema.String,
}

// CommentHandler handles comment posting requests.
type CommentHandler struct {
	comments *service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// HandlePostComment attaches a comment by the caller's profile to a book.
// POST /api/comments
// Request:  {"bookId":"...","comment":"..."}
// Response: {"comment": {...}}
func (h *CommentHandler) HandlePostComment(w http.ResponseWriter, r *http.Request) {
	ident := IdentityFromContext(r.Context())
	if err := service.Authorize(ident, false); err != nil {
		writeDomainError(w, err)
		return
	}

	payload, err := readPayload(w, r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := postCommentSchema.Validate(payload); err != nil {
		writeDomainError(w, err)
		return
	}

	comment, err := h.comments.PostComment(r.Context(), ident,
		schema.Str(payload, "bookId"), schema.Str(payload, "comment"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"comment": toCommentDTO(comment),
	})
}
