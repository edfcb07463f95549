package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"bookclub/internal/domain"
)

// AssetHandler serves stored objects at their public URLs.
type AssetHandler struct {
	store domain.ObjectStore
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(store domain.ObjectStore) *AssetHandler {
	return &AssetHandler{store: store}
}

// HandleGetAsset returns a stored object's bytes. This is the public,
// unauthenticated read surface behind the permanent URLs recorded on
// books.
// GET /assets/{key...}
func (h *AssetHandler) HandleGetAsset(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	data, contentType, err := h.store.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("get asset", "key", key, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Write(data)
}
