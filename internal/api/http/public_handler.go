package http

import (
	"net/http"

	"ngobooks-backend/internal/service"
)

const publicListLimit = 20

// PublicHandler serves the unauthenticated surface: headline stats, recent
// verified donations and expenses, and the public donate form. Submissions
// land as unverified and only count after an accountant confirms them.
type PublicHandler struct {
	summarySvc  service.SummaryService
	donationSvc service.DonationService
	expenseSvc  service.ExpenseService
}

func NewPublicHandler(summarySvc service.SummaryService, donationSvc service.DonationService, expenseSvc service.ExpenseService) *PublicHandler {
	return &PublicHandler{summarySvc: summarySvc, donationSvc: donationSvc, expenseSvc: expenseSvc}
}

func (h *PublicHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.summarySvc.GetPublicStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"stats": stats})
}

func (h *PublicHandler) Donations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationSvc.ListRecentVerified(r.Context(), publicListLimit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"donations": donations})
}

func (h *PublicHandler) Expenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseSvc.ListRecent(r.Context(), publicListLimit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"expenses": expenses})
}

func (h *PublicHandler) Donate(w http.ResponseWriter, r *http.Request) {
	var body donationBody
	if !decodeBody(w, r, &body) {
		return
	}
	if !body.validate(w) {
		return
	}

	donation, err := h.donationSvc.CreateDonation(r.Context(), nil, body.params())
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{
		"message":     "Thank you for your donation",
		"donationRef": donation.DonationID,
	})
}
