package http

import (
	"net/http"

	"ngobooks-backend/internal/service"
)

type StatsHandler struct {
	summarySvc service.SummaryService
}

func NewStatsHandler(summarySvc service.SummaryService) *StatsHandler {
	return &StatsHandler{summarySvc: summarySvc}
}

func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summarySvc.GetSummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{
		"donations":    summary.Donations,
		"membership":   summary.Membership,
		"expenses":     summary.Expenses,
		"remaining":    summary.Remaining,
		"membersCount": summary.MembersCount,
	})
}
