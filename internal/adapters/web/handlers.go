package web

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"offer-agent/internal/app"
	webui "offer-agent/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler holds the ApplicationService, the chi router, and the per-user
// chat draft store.
type Handler struct {
	svc        app.ApplicationService
	router     chi.Router
	drafts     *draftStore
	jwtSecret  string
	fileServer http.Handler
	templates  *templateSet
	validate   *validator.Validate
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins, jwtSecret string) http.Handler {
	staticFS, err := fs.Sub(webui.Static, "static")
	if err != nil {
		panic("web/static embed sub-FS failed: " + err.Error())
	}

	h := &Handler{
		svc:        svc,
		drafts:     newDraftStore(),
		jwtSecret:  jwtSecret,
		fileServer: http.FileServer(http.FS(staticFS)),
		templates:  newTemplateSet(),
		validate:   validator.New(),
	}

	h.drafts.startPurge(context.Background())

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	// ── Health (public) ───────────────────────────────────────────────────────
	r.Get("/api/health", h.health)

	// ── Static files served at /static/* ─────────────────────────────────────
	r.Get("/static/*", func(w http.ResponseWriter, req *http.Request) {
		http.StripPrefix("/static", h.fileServer).ServeHTTP(w, req)
	})

	// ── Login / registration (public HTML) ───────────────────────────────────
	r.Get("/login", h.loginPage)
	r.Post("/login", h.loginFormSubmit)
	r.Get("/register", h.registerPage)
	r.Post("/register", h.registerFormSubmit)
	r.Post("/logout", h.logoutPage)

	// ── Protected browser routes (redirect to /login if unauthenticated) ─────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuthBrowser)
		r.Get("/", h.dashboardPage)
		r.Get("/offers/new", h.offerFormPage)
		r.Post("/offers/new", h.offerFormSubmit)
		r.Get("/chat", h.chatPage)
		r.Get("/history", h.historyPage)
		r.Get("/offers/{protocol}/download", h.offerDownload)
		r.Post("/offers/{protocol}/email", h.offerEmail)
		r.Get("/profile", h.profilePage)
		r.Post("/profile", h.profileSubmit)
		r.Post("/profile/password", h.passwordSubmit)
	})

	// ── Protected API routes (return 401 JSON if unauthenticated) ────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Use(RequestBodyLimit(1 << 20)) // 1 MB

		r.Get("/api/offers", h.apiListOffers)
		r.Post("/api/chat/message", h.chatMessage)
		r.Post("/api/chat/generate", h.chatGenerate)
		r.Post("/api/chat/clear", h.chatClear)
	})

	h.router = r
	return r
}

// health returns service and record store status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	if err := h.svc.Health(r.Context()); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(response{Status: "degraded"})
		return
	}
	writeJSON(w, response{Status: "ok"})
}

// apiListOffers returns the stored offer history, newest first.
func (h *Handler) apiListOffers(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListOffers(r.Context())
	if err != nil {
		writeError(w, r, "failed to load offers", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result.Offers)
}

// protocolParam extracts the {protocol} URL parameter.
func protocolParam(r *http.Request) string {
	return chi.URLParam(r, "protocol")
}

// decodeJSON decodes the request body into v and returns false + writes an appropriate
// error response on failure. Returns HTTP 413 when the body exceeds the size limit set
// by RequestBodyLimit middleware; HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
