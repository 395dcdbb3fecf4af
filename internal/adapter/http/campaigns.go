package httpadapter

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port"
)

// handleCreateCampaign starts a draft. The body is optional and may carry the
// overview section. Responds 201 with the campaign and its readiness.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	brandID, _ := brandFromContext(r.Context())

	var req createCampaignRequest
	var overview *domain.Overview
	switch err := decodeJSON(w, r, &req); {
	case errors.Is(err, io.EOF):
	case err != nil:
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	default:
		if err = h.validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
		overview = req.overview()
	}

	details, err := h.svc.CreateDraft(r.Context(), brandID, overview)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, details)
}

// handleListCampaigns lists the brand's campaigns. Accepts optional status,
// limit and offset query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	brandID, _ := brandFromContext(r.Context())

	q := listCampaignsQuery{Status: r.URL.Query().Get("status")}
	var err error
	if q.Limit, err = queryInt(r, "limit"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid 'limit'")
		return
	}
	if q.Offset, err = queryInt(r, "offset"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid 'offset'")
		return
	}
	if err = h.validate.Struct(q); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	list, err := h.svc.ListCampaigns(r.Context(), port.ListReq{
		BrandID: brandID,
		Status:  domain.Status(q.Status),
		Limit:   q.Limit,
		Offset:  q.Offset,
	})
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"campaigns": list})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	brandID, _ := brandFromContext(r.Context())
	id, err := campaignID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid campaign id")
		return
	}
	details, err := h.svc.GetCampaign(r.Context(), brandID, id)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// handleSaveSection autosaves one section. The body is the section object
// itself, e.g. {"title": "..."} for the overview.
func (h *Handler) handleSaveSection(w http.ResponseWriter, r *http.Request) {
	brandID, _ := brandFromContext(r.Context())
	id, err := campaignID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid campaign id")
		return
	}
	section := domain.SectionID(chi.URLParam(r, "section"))

	var draft domain.Campaign
	target, ok := sectionTarget(&draft, section)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_section", "Unknown campaign section")
		return
	}
	if err = decodeJSON(w, r, target); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	details, err := h.svc.SaveSection(r.Context(), brandID, id, section, draft)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// handleTransition moves a campaign to the requested status.
func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request) {
	brandID, _ := brandFromContext(r.Context())
	id, err := campaignID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid campaign id")
		return
	}
	var req transitionRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err = h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	c, err := h.svc.Transition(r.Context(), brandID, id, req.Status)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// handleDeleteCampaign soft-deletes a campaign and returns it with its final
// status.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	brandID, _ := brandFromContext(r.Context())
	id, err := campaignID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid campaign id")
		return
	}
	c, err := h.svc.DeleteCampaign(r.Context(), brandID, id)
	if err != nil {
		h.writeUseCaseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
