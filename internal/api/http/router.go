package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ngobooks-backend/internal/realtime"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Members  *MemberHandler
	Donation *DonationHandler
	Expense  *ExpenseHandler
	Stats    *StatsHandler
	Public   *PublicHandler
	Upload   *UploadHandler
	Hub      *realtime.Hub
}

// NewRouter wires every route. Public routes skip the auth middleware;
// everything else requires a bearer token.
func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()

	// auth
	r.HandleFunc("/api/auth/register-admin", h.Auth.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", h.Auth.Login).Methods(http.MethodPost)

	// members and membership requests
	r.HandleFunc("/api/members", auth.RequireAuth(h.Members.AddMember)).Methods(http.MethodPost)
	r.HandleFunc("/api/members", auth.RequireAuth(h.Members.ListMembers)).Methods(http.MethodGet)
	r.HandleFunc("/api/members/requests", auth.RequireAuth(h.Members.CreateRequest)).Methods(http.MethodPost)
	r.HandleFunc("/api/members/requests", auth.RequireAuth(h.Members.ListRequests)).Methods(http.MethodGet)
	r.HandleFunc("/api/members/requests/filter", auth.RequireAuth(h.Members.FilterRequests)).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/api/members/requests/approve-bulk", auth.RequireAuth(h.Members.ApproveBulk)).Methods(http.MethodPost)
	r.HandleFunc("/api/members/requests/confirm-bulk", auth.RequireAuth(h.Members.ConfirmBulk)).Methods(http.MethodPost)
	r.HandleFunc("/api/members/requests/{id}/approve", auth.RequireAuth(h.Members.ApproveRequest)).Methods(http.MethodPost)
	r.HandleFunc("/api/members/requests/{id}/confirm-payment", auth.RequireAuth(h.Members.ConfirmPayment)).Methods(http.MethodPost)

	// donations
	r.HandleFunc("/api/donations", auth.RequireAuth(h.Donation.Create)).Methods(http.MethodPost)
	r.HandleFunc("/api/donations", auth.RequireAuth(h.Donation.List)).Methods(http.MethodGet)
	r.HandleFunc("/api/donations/pending", auth.RequireAuth(h.Donation.ListPending)).Methods(http.MethodGet)
	r.HandleFunc("/api/donations/verify-bulk", auth.RequireAuth(h.Donation.VerifyBulk)).Methods(http.MethodPost)
	r.HandleFunc("/api/donations/{id}/verify", auth.RequireAuth(h.Donation.Verify)).Methods(http.MethodPost)

	// expenses
	r.HandleFunc("/api/expenses", auth.RequireAuth(h.Expense.Create)).Methods(http.MethodPost)
	r.HandleFunc("/api/expenses", auth.RequireAuth(h.Expense.List)).Methods(http.MethodGet)
	r.HandleFunc("/api/expenses/{id}", auth.RequireAuth(h.Expense.Delete)).Methods(http.MethodDelete)

	// stats
	r.HandleFunc("/api/stats/summary", auth.RequireAuth(h.Stats.Summary)).Methods(http.MethodGet)

	// public (no auth)
	r.HandleFunc("/api/public/stats", h.Public.Stats).Methods(http.MethodGet)
	r.HandleFunc("/api/public/donations", h.Public.Donations).Methods(http.MethodGet)
	r.HandleFunc("/api/public/expenses", h.Public.Expenses).Methods(http.MethodGet)
	r.HandleFunc("/api/public/donate", h.Public.Donate).Methods(http.MethodPost)

	// realtime event stream
	r.HandleFunc("/api/events", h.Hub.HandleWS).Methods(http.MethodGet)

	// stored receipt images; key contains a slash (receipts/<ulid>.<ext>)
	r.HandleFunc("/api/uploads/{key:.+}", h.Upload.Serve).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
