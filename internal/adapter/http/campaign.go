package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"unipact/internal/core/domain"
	"unipact/internal/core/port"
)

var errBadID = errors.New("invalid id")

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	in, err := req.input()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	campaign, err := h.campaigns.CreateCampaign(r.Context(), callerFrom(r.Context()), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCampaign(*campaign))
}

// handleListCampaigns accepts status, limit and offset query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := port.CampaignFilter{Status: domain.CampaignStatus(q.Get("status"))}
	for name, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		if v := q.Get(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				writeMessage(w, http.StatusBadRequest, "invalid "+name)
				return
			}
			*dst = n
		}
	}
	items, err := h.campaigns.ListCampaigns(r.Context(), callerFrom(r.Context()), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaigns(items))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, errBadID.Error())
		return
	}
	detail, err := h.campaigns.GetCampaign(r.Context(), callerFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := toCampaign(detail.Campaign)
	if len(detail.Applications) > 0 {
		resp.Applications = toApplications(detail.Applications)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePublishCampaign(w http.ResponseWriter, r *http.Request) {
	h.campaignAction(w, r, h.campaigns.PublishCampaign)
}

func (h *Handler) handleArchiveCampaign(w http.ResponseWriter, r *http.Request) {
	h.campaignAction(w, r, h.campaigns.ArchiveCampaign)
}

type campaignActionFunc func(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Campaign, error)

func (h *Handler) campaignAction(w http.ResponseWriter, r *http.Request, action campaignActionFunc) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, errBadID.Error())
		return
	}
	campaign, err := action(r.Context(), callerFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaign(*campaign))
}

func (h *Handler) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, errBadID.Error())
		return
	}
	var req applyRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	app, err := h.campaigns.SubmitApplication(r.Context(), callerFrom(r.Context()), id, req.Message)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toApplication(*app))
}

func (h *Handler) handleMyApplications(w http.ResponseWriter, r *http.Request) {
	items, err := h.campaigns.ListMyApplications(r.Context(), callerFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplications(items))
}

func (h *Handler) handleAwardApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, errBadID.Error())
		return
	}
	app, err := h.campaigns.AwardApplication(r.Context(), callerFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toApplication(*app))
}

// handleSubmitDeliverable expects a multipart form with the file in "file".
func (h *Handler) handleSubmitDeliverable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, errBadID.Error())
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeMessage(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		writeMessage(w, http.StatusBadRequest, "multipart field \"file\" is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	d, err := h.campaigns.SubmitDeliverable(r.Context(), callerFrom(r.Context()), id, port.FileUpload{
		Name:        header.Filename,
		ContentType: contentType,
		Body:        file,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDeliverable(*d))
}

func (h *Handler) handleListDeliverables(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, errBadID.Error())
		return
	}
	items, err := h.campaigns.ListDeliverables(r.Context(), callerFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]deliverableResponse, len(items))
	for i, d := range items {
		out[i] = toDeliverable(d)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCompleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, errBadID.Error())
		return
	}
	res, err := h.campaigns.CompleteCampaign(r.Context(), callerFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, completionResponse{Campaign: toCampaign(res.Campaign), ReportURL: res.ReportURL})
}

func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, errBadID.Error())
		return
	}
	rep, err := h.campaigns.GetReport(r.Context(), callerFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reportResponse{CampaignID: rep.CampaignID, URL: rep.URL, CreatedAt: rep.CreatedAt})
}
