package handler

import (
	"net/http"

	"bookclub/internal/schema"
	"bookclub/internal/service"
)

var createProfileSchema = schema.Schema{"username": schema.String}

// ProfileHandler handles profile registration requests.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// HandleCreateProfile registers a public profile for the caller.
// POST /api/profiles
// Request:  {"username":"..."}
// Response: {"profile": {...}}
func (h *ProfileHandler) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
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
	if err := createProfileSchema.Validate(payload); err != nil {
		writeDomainError(w, err)
		return
	}

	profile, err := h.profiles.CreateProfile(r.Context(), ident, schema.Str(payload, "username"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"profile": toProfileDTO(profile),
	})
}
