package http

import (
	"net/http"
	"strings"

	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type registerRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	Role              string `json:"role"`
	MemberType        string `json:"memberType"`
	InitialPaidAmount int64  `json:"initialPaidAmount"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(strings.TrimSpace(req.Name)) < 2 {
		writeFail(w, http.StatusBadRequest, "Name must be at least 2 characters")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeFail(w, http.StatusBadRequest, "Invalid email")
		return
	}
	if len(req.Password) < 8 {
		writeFail(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}
	if req.InitialPaidAmount < 0 {
		writeFail(w, http.StatusBadRequest, "initialPaidAmount must not be negative")
		return
	}

	user, err := h.authSvc.Register(r.Context(), service.RegisterParams{
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		Role:              req.Role,
		MemberType:        req.MemberType,
		InitialPaidAmount: req.InitialPaidAmount,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeOK(w, map[string]any{"user": userView(user)})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, user, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeOK(w, map[string]any{
		"token": token,
		"user":  userView(user),
	})
}

func userView(user *domain.User) map[string]any {
	return map[string]any{
		"id":                user.ID,
		"name":              user.Name,
		"email":             user.Email,
		"role":              user.Role,
		"memberType":        user.MemberType,
		"initialPaidAmount": user.InitialPaidAmount,
	}
}
