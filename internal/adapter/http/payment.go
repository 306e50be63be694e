package httpadapter

import (
	"net/http"

	"unipact/internal/core/port"
)

func (h *Handler) handleCreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req paymentIntentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.payments.CreatePaymentIntent(r.Context(), callerFrom(r.Context()), port.PaymentIntentInput{
		Amount:     req.Amount,
		Type:       req.Type,
		CampaignID: req.CampaignID,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, paymentIntentResponse{
		Transaction:  toTransaction(res.Transaction),
		ClientSecret: res.ClientSecret,
	})
}

func (h *Handler) handleConfirmPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, errBadID.Error())
		return
	}
	tx, err := h.payments.ConfirmPayment(r.Context(), callerFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransaction(*tx))
}

func (h *Handler) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	items, err := h.payments.ListTransactions(r.Context(), callerFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]transactionResponse, len(items))
	for i, tx := range items {
		out[i] = toTransaction(tx)
	}
	writeJSON(w, http.StatusOK, out)
}
