package httptransport

import (
	"context"
	"image"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"facereg/internal/coordinator"
	"facereg/internal/registry/models"
	"facereg/pkg/platform/httputil"
)

// Coordinator is the face registry surface served over HTTP.
type Coordinator interface {
	RegisterFace(ctx context.Context, face models.Face, img image.Image, identifier string, force bool) ([]models.TaggedTemplate, error)
	IdentifyFace(ctx context.Context, face models.Face, img image.Image, opts ...coordinator.CallOption) ([]models.IdentificationResult, error)
	AuthenticateFace(ctx context.Context, face models.Face, img image.Image, identifier string, opts ...coordinator.CallOption) (*models.AuthenticationResult, error)
	GetIdentifiers(ctx context.Context) ([]string, error)
	GetFaceTemplates(ctx context.Context) ([]models.TaggedTemplate, error)
	GetFaceTemplatesByIdentifier(ctx context.Context, identifier string) ([]models.TaggedTemplate, error)
	Versions() []string
}

// Handler wires face registry endpoints to the coordinator.
type Handler struct {
	coordinator Coordinator
	logger      *slog.Logger
}

func NewHandler(c Coordinator, logger *slog.Logger) *Handler {
	return &Handler{coordinator: c, logger: logger}
}

// Register mounts the face registry endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/faces", h.HandleRegister)
	r.Post("/faces/identify", h.HandleIdentify)
	r.Post("/faces/authenticate", h.HandleAuthenticate)
	r.Get("/identifiers", h.HandleListIdentifiers)
	r.Get("/identifiers/{identifier}/templates", h.HandleListIdentifierTemplates)
	r.Get("/templates", h.HandleListTemplates)
}

// HandleRegister handles POST /faces.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[RegisterRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Probe.requireVersions(h.coordinator.Versions()); err != nil {
		httputil.WriteError(w, err)
		return
	}

	face, img := req.Probe.Sample()
	added, err := h.coordinator.RegisterFace(ctx, face, img, req.Identifier, req.Force)
	if err != nil {
		h.logger.WarnContext(ctx, "face registration failed",
			"request_id", middleware.GetReqID(ctx),
			"identifier", req.Identifier,
			"error", err,
		)
		h.writeError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "face registered",
		"request_id", middleware.GetReqID(ctx),
		"identifier", req.Identifier,
		"templates", len(added),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusCreated, RegisterResponse{Templates: toTemplates(added, false)})
}

// HandleIdentify handles POST /faces/identify.
func (h *Handler) HandleIdentify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeAndPrepare[IdentifyRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Probe.requireVersions(h.coordinator.Versions()); err != nil {
		httputil.WriteError(w, err)
		return
	}

	face, img := req.Probe.Sample()
	results, err := h.coordinator.IdentifyFace(ctx, face, img,
		coordinator.WithSafe(boolOr(req.Safe, true)),
		coordinator.WithAutoEnrol(boolOr(req.AutoEnrol, true)),
	)
	if err != nil {
		h.logger.WarnContext(ctx, "identification failed",
			"request_id", middleware.GetReqID(ctx),
			"error", err,
		)
		h.writeError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toIdentifyResponse(results))
}

// HandleAuthenticate handles POST /faces/authenticate.
func (h *Handler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeAndPrepare[AuthenticateRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Probe.requireVersions(h.coordinator.Versions()); err != nil {
		httputil.WriteError(w, err)
		return
	}

	face, img := req.Probe.Sample()
	result, err := h.coordinator.AuthenticateFace(ctx, face, img, req.Identifier,
		coordinator.WithAutoEnrol(boolOr(req.AutoEnrol, true)),
	)
	if err != nil {
		h.logger.WarnContext(ctx, "authentication failed",
			"request_id", middleware.GetReqID(ctx),
			"identifier", req.Identifier,
			"error", err,
		)
		h.writeError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "authentication evaluated",
		"request_id", middleware.GetReqID(ctx),
		"identifier", req.Identifier,
		"authenticated", result.Authenticated,
	)
	httputil.WriteJSON(w, http.StatusOK, toAuthenticateResponse(result))
}

// HandleListIdentifiers handles GET /identifiers.
func (h *Handler) HandleListIdentifiers(w http.ResponseWriter, r *http.Request) {
	ids, err := h.coordinator.GetIdentifiers(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	httputil.WriteJSON(w, http.StatusOK, IdentifiersResponse{Identifiers: ids})
}

// HandleListIdentifierTemplates handles GET /identifiers/{identifier}/templates.
func (h *Handler) HandleListIdentifierTemplates(w http.ResponseWriter, r *http.Request) {
	identifier := chi.URLParam(r, "identifier")
	templates, err := h.coordinator.GetFaceTemplatesByIdentifier(r.Context(), identifier)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if len(templates) == 0 {
		h.writeError(w, &models.IdentifierNotRegisteredError{Identifier: identifier})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, TemplatesResponse{Templates: toTemplates(templates, true)})
}

// HandleListTemplates handles GET /templates.
func (h *Handler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.coordinator.GetFaceTemplates(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, TemplatesResponse{Templates: toTemplates(templates, true)})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	httputil.WriteError(w, toDomainError(err))
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
