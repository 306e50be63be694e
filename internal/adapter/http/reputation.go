package httpadapter

import (
	"net/http"

	"unipact/internal/core/port"
)

func (h *Handler) handleRecordReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	review, err := h.reputation.RecordReview(r.Context(), callerFrom(r.Context()), port.RecordReviewInput{
		ClubID:     req.ClubID,
		CampaignID: req.CampaignID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, reviewResponse{
		ID:         review.ID,
		ReviewerID: review.ReviewerID,
		RevieweeID: review.RevieweeID,
		CampaignID: review.CampaignID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	})
}

func (h *Handler) handleGetClub(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, errBadID.Error())
		return
	}
	club, err := h.reputation.GetClub(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clubResponse{ID: club.ID, Name: club.Name, University: club.University, Rank: club.Rank})
}

// handleRecomputeRank recomputes one club's rank on demand. Admin only.
func (h *Handler) handleRecomputeRank(w http.ResponseWriter, r *http.Request) {
	if !callerFrom(r.Context()).IsAdmin() {
		h.writeError(w, r, port.ErrForbidden)
		return
	}
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, errBadID.Error())
		return
	}
	if _, err := h.reputation.RecomputeRank(r.Context(), id, h.now()); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.handleGetClub(w, r)
}
