package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "ngobooks-backend/internal/api/http"
	"ngobooks-backend/internal/domain"
	"ngobooks-backend/internal/realtime"
	"ngobooks-backend/internal/security"
	"ngobooks-backend/internal/service"
)

type testEnv struct {
	router        http.Handler
	tokenManager  security.TokenManager
	membershipSvc *MockMembershipService
	donationSvc   *MockDonationService
	summarySvc    *MockSummaryService
	expenseSvc    *MockExpenseService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		tokenManager:  security.NewTokenManager("router-test-secret-router-test-secret", 60),
		membershipSvc: new(MockMembershipService),
		donationSvc:   new(MockDonationService),
		summarySvc:    new(MockSummaryService),
		expenseSvc:    new(MockExpenseService),
	}
	env.router = httpapi.NewRouter(httpapi.Handlers{
		Auth:     httpapi.NewAuthHandler(nil),
		Members:  httpapi.NewMemberHandler(env.membershipSvc),
		Donation: httpapi.NewDonationHandler(env.donationSvc),
		Expense:  httpapi.NewExpenseHandler(env.expenseSvc, 10),
		Stats:    httpapi.NewStatsHandler(env.summarySvc),
		Public:   httpapi.NewPublicHandler(env.summarySvc, env.donationSvc, env.expenseSvc),
		Upload:   httpapi.NewUploadHandler(nil),
		Hub:      realtime.NewHub(),
	}, httpapi.NewAuthMiddleware(env.tokenManager))
	return env
}

func (env *testEnv) token(t *testing.T, userID int32, role string) string {
	t.Helper()
	token, err := env.tokenManager.GenerateAccessToken(userID, "user@example.org", role)
	require.NoError(t, err)
	return token
}

func (env *testEnv) do(t *testing.T, method, path, bearer string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	var parsed map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	}
	return rec, parsed
}

func TestRouter_AuthRequired(t *testing.T) {
	env := newTestEnv()

	t.Run("MissingToken", func(t *testing.T) {
		rec, body := env.do(t, http.MethodGet, "/api/members", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, false, body["ok"])
	})

	t.Run("GarbageToken", func(t *testing.T) {
		rec, body := env.do(t, http.MethodGet, "/api/members", "not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, false, body["ok"])
	})
}

func TestRouter_ApproveRequest(t *testing.T) {
	env := newTestEnv()

	t.Run("Success", func(t *testing.T) {
		req := &domain.MemberRequest{ID: 5, Status: domain.RequestStatusApprovedByPresident, Approvals: domain.Approvals{President: true}}
		env.membershipSvc.On("ApproveRequest", mock.Anything, service.Actor{ID: 10, Role: domain.RolePresident}, int32(5)).
			Return(req, nil).Once()

		rec, body := env.do(t, http.MethodPost, "/api/members/requests/5/approve", env.token(t, 10, "president"), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["ok"])
		request := body["request"].(map[string]any)
		assert.Equal(t, "approved_by_president", request["status"])
	})

	t.Run("AccountantForbidden", func(t *testing.T) {
		env.membershipSvc.On("ApproveRequest", mock.Anything, service.Actor{ID: 12, Role: domain.RoleAccountant}, int32(5)).
			Return(nil, service.ErrForbidden).Once()

		rec, body := env.do(t, http.MethodPost, "/api/members/requests/5/approve", env.token(t, 12, "accountant"), nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, false, body["ok"])
	})

	t.Run("UnknownID", func(t *testing.T) {
		env.membershipSvc.On("ApproveRequest", mock.Anything, mock.Anything, int32(99)).
			Return(nil, service.ErrNotFound).Once()

		rec, _ := env.do(t, http.MethodPost, "/api/members/requests/99/approve", env.token(t, 10, "president"), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("BadID", func(t *testing.T) {
		rec, _ := env.do(t, http.MethodPost, "/api/members/requests/abc/approve", env.token(t, 10, "president"), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_ConfirmPayment(t *testing.T) {
	env := newTestEnv()

	membershipNo := "GM-0001"
	result := &service.ConfirmResult{
		Request: &domain.MemberRequest{ID: 5, Status: domain.RequestStatusApproved, PaidConfirmed: true},
		Member:  &domain.Member{ID: 42, MembershipNo: &membershipNo},
	}
	env.membershipSvc.On("ConfirmPayment", mock.Anything, service.Actor{ID: 12, Role: domain.RoleAccountant}, int32(5)).
		Return(result, nil).Once()

	rec, body := env.do(t, http.MethodPost, "/api/members/requests/5/confirm-payment", env.token(t, 12, "accountant"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	member := body["member"].(map[string]any)
	assert.Equal(t, "GM-0001", member["membership_no"])
}

func TestRouter_VerifyBulk(t *testing.T) {
	env := newTestEnv()

	env.donationSvc.On("VerifyDonations", mock.Anything, service.Actor{ID: 12, Role: domain.RoleAccountant}, []int32{1, 99, 3}).
		Return([]domain.Donation{{ID: 1, Verified: true}, {ID: 3, Verified: true}}, nil).Once()

	rec, body := env.do(t, http.MethodPost, "/api/donations/verify-bulk", env.token(t, 12, "accountant"),
		map[string]any{"ids": []int32{1, 99, 3}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["results"].([]any), 2)
}

func TestRouter_PublicDonate(t *testing.T) {
	env := newTestEnv()

	// Unauthenticated submissions carry no actor at all.
	env.donationSvc.On("CreateDonation", mock.Anything, (*service.Actor)(nil), mock.MatchedBy(func(p service.DonationParams) bool {
		return p.DonorName == "Anon" && p.Amount == 100
	})).Return(&domain.Donation{ID: 1, DonorName: "Anon", Amount: 100, DonationID: "DON-AAAA1111"}, nil).Once()

	rec, body := env.do(t, http.MethodPost, "/api/public/donate", "",
		map[string]any{"donorName": "Anon", "amount": 100})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "DON-AAAA1111", body["donationRef"])
}

func TestRouter_PublicDonateValidation(t *testing.T) {
	env := newTestEnv()

	rec, body := env.do(t, http.MethodPost, "/api/public/donate", "",
		map[string]any{"donorName": "A", "amount": 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["ok"])

	rec, _ = env.do(t, http.MethodPost, "/api/public/donate", "",
		map[string]any{"donorName": "Anon", "amount": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_StatsSummary(t *testing.T) {
	env := newTestEnv()

	summary := &domain.Summary{Donations: 5000, Membership: 4200, Expenses: 2500, Remaining: 6700, MembersCount: 14}
	env.summarySvc.On("GetSummary", mock.Anything).Return(summary, nil).Once()

	rec, body := env.do(t, http.MethodGet, "/api/stats/summary", env.token(t, 10, "president"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(6700), body["remaining"])
	assert.Equal(t, float64(14), body["membersCount"])
}

func TestRouter_FilterRequestsRoleOverride(t *testing.T) {
	env := newTestEnv()

	env.membershipSvc.On("ListRequestsForRole", mock.Anything, domain.RoleAccountant).
		Return([]domain.MemberRequest{}, nil).Once()

	// Token says president, explicit body role wins.
	rec, body := env.do(t, http.MethodPost, "/api/members/requests/filter", env.token(t, 10, "president"),
		map[string]any{"role": "accountant"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])
	env.membershipSvc.AssertExpectations(t)
}
