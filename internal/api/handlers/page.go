package handlers

import (
	"bytes"
	"net/http"

	"github.com/Harshitk-cp/mindshift/internal/surface"
	"github.com/Harshitk-cp/mindshift/internal/web"
	"go.uber.org/zap"
)

// SessionCookie names the cookie that carries the surface session id.
const SessionCookie = "mindshift_session"

type PageHandler struct {
	sessions *surface.Manager
	provider string
	logger   *zap.Logger
}

func NewPageHandler(sessions *surface.Manager, provider string, logger *zap.Logger) *PageHandler {
	return &PageHandler{sessions: sessions, provider: provider, logger: logger}
}

// Index renders the form together with the session's current state.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)

	var buf bytes.Buffer
	if err := web.RenderIndex(&buf, web.NewPage(s.View(), h.provider)); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// Submit starts a transformation for the posted belief and redirects back to
// the page. Blank input or a submission while loading changes nothing.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	s := h.session(w, r)
	if !h.sessions.Submit(s, r.PostFormValue("limiting_belief")) {
		h.logger.Debug("submission ignored", zap.String("session_id", s.ID), zap.String("state", string(s.State())))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Session returns the session snapshot as JSON.
func (h *PageHandler) Session(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	writeJSON(w, http.StatusOK, s.View())
}

func (h *PageHandler) session(w http.ResponseWriter, r *http.Request) *surface.Session {
	var id string
	if c, err := r.Cookie(SessionCookie); err == nil {
		id = c.Value
	}

	s, created := h.sessions.GetOrCreate(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    s.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return s
}
