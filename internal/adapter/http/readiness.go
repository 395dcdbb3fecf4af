package httpadapter

import (
	"net/http"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/readiness"
)

// sectionNav is one navigation tab of the campaign editor.
type sectionNav struct {
	readiness.SectionResult
	Nav readiness.NavStyle `json:"nav"`
}

type readinessResponse struct {
	CompletionCount readiness.CompletionCount `json:"completion_count"`
	Sections        []sectionNav              `json:"sections"`
	Warnings        []readiness.Warning       `json:"warnings"`
}

func newReadinessResponse(res readiness.Readiness, active domain.SectionID) readinessResponse {
	out := readinessResponse{
		CompletionCount: res.CompletionCount,
		Sections:        make([]sectionNav, 0, len(res.Sections)),
		Warnings:        res.Warnings,
	}
	for _, s := range res.Sections {
		out.Sections = append(out.Sections, sectionNav{
			SectionResult: s,
			Nav:           readiness.NavHint(s, s.ID == active),
		})
	}
	return out
}

// handleReadiness returns the stored campaign's readiness with navigation
// hints. The optional active query parameter names the open tab.
func (h *Handler) handleReadiness(w http.ResponseWriter, r *http.Request) {
	brandID, _ := brandFromContext(r.Context())
	id, err := campaignID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid campaign id")
		return
	}
	active := domain.SectionID(r.URL.Query().Get("active"))
	if active != "" && !active.Valid() {
		writeError(w, http.StatusBadRequest, "invalid_request", "unknown active section")
		return
	}
	details, err := h.svc.GetCampaign(r.Context(), brandID, id)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newReadinessResponse(details.Readiness, active))
}

// handleValidateDraft evaluates an unsaved campaign body without storing it.
func (h *Handler) handleValidateDraft(w http.ResponseWriter, r *http.Request) {
	active := domain.SectionID(r.URL.Query().Get("active"))
	if active != "" && !active.Valid() {
		writeError(w, http.StatusBadRequest, "invalid_request", "unknown active section")
		return
	}
	var draft domain.Campaign
	if err := decodeJSON(w, r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, newReadinessResponse(h.svc.EvaluateDraft(draft), active))
}

// handlePublishingCheck reports whether the campaign may be published and
// what blocks it otherwise.
func (h *Handler) handlePublishingCheck(w http.ResponseWriter, r *http.Request) {
	brandID, _ := brandFromContext(r.Context())
	id, err := campaignID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid campaign id")
		return
	}
	check, err := h.svc.PublishingCheck(r.Context(), brandID, id)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"check":   check,
		"blocker": check.Blocker(),
		"groups":  check.Grouped(),
	})
}

// handlePublish submits the campaign for approval. A refusal responds 422
// with the field errors, or 402 when a payment method is the only thing
// missing.
func (h *Handler) handlePublish(w http.ResponseWriter, r *http.Request) {
	brandID, _ := brandFromContext(r.Context())
	id, err := campaignID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid campaign id")
		return
	}
	c, err := h.svc.Publish(r.Context(), brandID, id)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
