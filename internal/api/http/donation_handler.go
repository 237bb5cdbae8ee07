package http

import (
	"net/http"
	"strings"

	"ngobooks-backend/internal/service"
)

type DonationHandler struct {
	donationSvc service.DonationService
}

func NewDonationHandler(donationSvc service.DonationService) *DonationHandler {
	return &DonationHandler{donationSvc: donationSvc}
}

type donationBody struct {
	DonorName string `json:"donorName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Amount    int64  `json:"amount"`
	Method    string `json:"method"`
	Date      string `json:"date"`
	Note      string `json:"note"`
}

func (b *donationBody) validate(w http.ResponseWriter) bool {
	if len(strings.TrimSpace(b.DonorName)) < 2 {
		writeFail(w, http.StatusBadRequest, "Donor name must be at least 2 characters")
		return false
	}
	if b.Amount < 1 {
		writeFail(w, http.StatusBadRequest, "Amount must be at least 1")
		return false
	}
	return true
}

func (b *donationBody) params() service.DonationParams {
	return service.DonationParams{
		DonorName: b.DonorName,
		Email:     b.Email,
		Phone:     b.Phone,
		Amount:    b.Amount,
		Method:    b.Method,
		Date:      b.Date,
		Note:      b.Note,
	}
}

func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body donationBody
	if !decodeBody(w, r, &body) {
		return
	}
	if !body.validate(w) {
		return
	}

	actor := actorFrom(r)
	donation, err := h.donationSvc.CreateDonation(r.Context(), &actor, body.params())
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"donation": donation})
}

func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationSvc.ListDonations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"donations": donations})
}

func (h *DonationHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationSvc.ListPending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"donations": donations})
}

func (h *DonationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	donation, err := h.donationSvc.VerifyDonation(r.Context(), actorFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"donation": donation})
}

func (h *DonationHandler) VerifyBulk(w http.ResponseWriter, r *http.Request) {
	var body bulkIDsBody
	if !decodeBody(w, r, &body) {
		return
	}

	results, err := h.donationSvc.VerifyDonations(r.Context(), actorFrom(r), body.IDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"results": results})
}
