package web

import (
	"errors"
	"net/http"
	"strings"

	"offer-agent/internal/ai"
	"offer-agent/internal/app"
	"offer-agent/internal/core"
)

// ── Request / response types ──────────────────────────────────────────────────

type chatMessageRequest struct {
	Text string `json:"text"`
}

type chatMessageResponse struct {
	Kind       string               `json:"kind"` // "reply" or "offer"
	Reply      string               `json:"reply,omitempty"`
	Attributes core.OfferAttributes `json:"attributes,omitempty"`
	Missing    []string             `json:"missing,omitempty"`
	Ready      bool                 `json:"ready"`
}

type chatGenerateResponse struct {
	ProtocolNumber string `json:"protocol_number"`
	Filename       string `json:"filename"`
	DownloadURL    string `json:"download_url"`
	GrandTotal     string `json:"grand_total"`
}

// ── chatMessage — POST /api/chat/message ──────────────────────────────────────

// chatMessage runs one extraction attempt over the user's text and folds any
// extracted attributes into the per-user draft. The response either carries a
// conversational reply or the merged draft plus the required fields still
// missing from it.
func (h *Handler) chatMessage(w http.ResponseWriter, r *http.Request) {
	claims := authFromContext(r.Context())
	var req chatMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		writeError(w, r, "text is required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.InterpretMessage(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, "message interpretation failed: "+err.Error(), "AI_ERROR", http.StatusBadGateway)
		return
	}

	if result.Kind == ai.ResultReply {
		h.drafts.update(claims.UserID, func(d *draft) {
			d.Messages = append(d.Messages,
				chatLine{Role: "user", Text: req.Text},
				chatLine{Role: "assistant", Text: result.Reply})
		})
		writeJSON(w, chatMessageResponse{Kind: "reply", Reply: result.Reply})
		return
	}

	state := h.drafts.update(claims.UserID, func(d *draft) {
		d.merge(result.Offer)
		d.Messages = append(d.Messages, chatLine{Role: "user", Text: req.Text})
	})
	missing := core.MissingFields(&state.Attrs)
	writeJSON(w, chatMessageResponse{
		Kind:       "offer",
		Attributes: state.Attrs,
		Missing:    missing,
		Ready:      len(missing) == 0,
	})
}

// ── chatGenerate — POST /api/chat/generate ────────────────────────────────────

// chatGenerate materializes the user's draft into a stored offer document.
// The draft is discarded only on success; an incomplete draft stays live so
// the user can keep filling it in.
func (h *Handler) chatGenerate(w http.ResponseWriter, r *http.Request) {
	claims := authFromContext(r.Context())
	state := h.drafts.get(claims.UserID)

	doc, err := h.svc.GenerateOffer(r.Context(), app.GenerateOfferRequest{
		Attributes: state.Attrs,
		Username:   claims.Username,
	})
	if err != nil {
		var verr *app.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, r, verr)
			return
		}
		writeError(w, r, "offer generation failed: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}

	h.drafts.clear(claims.UserID)
	writeJSON(w, chatGenerateResponse{
		ProtocolNumber: doc.Attributes.ProtocolNumber,
		Filename:       doc.Filename,
		DownloadURL:    "/offers/" + doc.Attributes.ProtocolNumber + "/download",
		GrandTotal:     core.GrandTotal(&doc.Attributes).StringFixed(2),
	})
}

// ── chatClear — POST /api/chat/clear ──────────────────────────────────────────

// chatClear discards the user's draft and transcript.
func (h *Handler) chatClear(w http.ResponseWriter, r *http.Request) {
	claims := authFromContext(r.Context())
	h.drafts.clear(claims.UserID)
	writeJSON(w, map[string]any{"ok": true})
}
