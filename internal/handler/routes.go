package handler

import (
	"net/http"

	"bookclub/internal/domain"
	"bookclub/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Every API
// route passes through the Authenticate middleware; each handler then
// runs its own authorization guard before reading the payload.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	profiles *service.ProfileService,
	comments *service.CommentService,
	catalog *service.CatalogService,
	store domain.ObjectStore,
) {
	profileHandler := NewProfileHandler(profiles)
	commentHandler := NewCommentHandler(comments)
	catalogHandler := NewCatalogHandler(catalog)
	assetHandler := NewAssetHandler(store)

	authed := func(h http.HandlerFunc) http.Handler {
		return Authenticate(auth, h)
	}

	mux.Handle("POST /api/profiles", authed(profileHandler.HandleCreateProfile))
	mux.Handle("POST /api/comments", authed(commentHandler.HandlePostComment))
	mux.Handle("POST /api/authors", authed(catalogHandler.HandleAddAuthor))
	mux.Handle("POST /api/books", authed(catalogHandler.HandleCreateBook))

	mux.HandleFunc("GET /assets/{key...}", assetHandler.HandleGetAsset)
	mux.HandleFunc("GET /healthz", HandleHealthz)
}
