package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/service"
)

type MemberHandler struct {
	membershipSvc service.MembershipService
}

func NewMemberHandler(membershipSvc service.MembershipService) *MemberHandler {
	return &MemberHandler{membershipSvc: membershipSvc}
}

type memberRequestBody struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	MemberType    string `json:"memberType"`
	MembershipFee int64  `json:"membershipFee"`
}

func (b *memberRequestBody) validate(w http.ResponseWriter) bool {
	if len(strings.TrimSpace(b.Name)) < 2 {
		writeFail(w, http.StatusBadRequest, "Name must be at least 2 characters")
		return false
	}
	if b.MembershipFee < 0 {
		writeFail(w, http.StatusBadRequest, "membershipFee must not be negative")
		return false
	}
	return true
}

func (b *memberRequestBody) params() service.MemberParams {
	return service.MemberParams{
		Name:          b.Name,
		Email:         b.Email,
		Phone:         b.Phone,
		Address:       b.Address,
		MemberType:    b.MemberType,
		MembershipFee: b.MembershipFee,
	}
}

// AddMember is the direct-add path: president or secretary only.
func (h *MemberHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var body memberRequestBody
	if !decodeBody(w, r, &body) {
		return
	}
	if !body.validate(w) {
		return
	}

	member, err := h.membershipSvc.AddMember(r.Context(), actorFrom(r), body.params())
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"member": member})
}

func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.membershipSvc.ListMembers(r.Context(), actorFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"members": members})
}

func (h *MemberHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var body memberRequestBody
	if !decodeBody(w, r, &body) {
		return
	}
	if !body.validate(w) {
		return
	}

	req, err := h.membershipSvc.CreateRequest(r.Context(), actorFrom(r), body.params())
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"request": req})
}

func (h *MemberHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.membershipSvc.ListRequests(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"requests": reqs})
}

// FilterRequests returns the acting role's queue. The role may be overridden
// via body or query for compatibility with older clients; the projection
// itself stays a pure server-side filter.
func (h *MemberHandler) FilterRequests(w http.ResponseWriter, r *http.Request) {
	role := actorFrom(r).Role

	if r.Method == http.MethodPost {
		var body struct {
			Role string `json:"role"`
		}
		// Body is optional here; a decode failure just keeps the token role.
		_ = decodeOptionalBody(r, &body)
		if body.Role != "" {
			role = domain.ParseRole(body.Role)
		}
	} else if q := r.URL.Query().Get("role"); q != "" {
		role = domain.ParseRole(q)
	}

	reqs, err := h.membershipSvc.ListRequestsForRole(r.Context(), role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"requests": reqs})
}

func (h *MemberHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	req, err := h.membershipSvc.ApproveRequest(r.Context(), actorFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"request": req})
}

type bulkIDsBody struct {
	IDs []int32 `json:"ids"`
}

func (h *MemberHandler) ApproveBulk(w http.ResponseWriter, r *http.Request) {
	var body bulkIDsBody
	if !decodeBody(w, r, &body) {
		return
	}

	results, err := h.membershipSvc.ApproveRequests(r.Context(), actorFrom(r), body.IDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"results": results})
}

func (h *MemberHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.membershipSvc.ConfirmPayment(r.Context(), actorFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}

	fields := map[string]any{"request": result.Request}
	if result.Member != nil {
		fields["member"] = result.Member
	}
	writeOK(w, fields)
}

func (h *MemberHandler) ConfirmBulk(w http.ResponseWriter, r *http.Request) {
	var body bulkIDsBody
	if !decodeBody(w, r, &body) {
		return
	}

	results, err := h.membershipSvc.ConfirmPayments(r.Context(), actorFrom(r), body.IDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"results": results})
}

func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return int32(id), true
}
