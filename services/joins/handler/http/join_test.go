package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/middleware"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/utils"
	"github.com/piresc/nebengdinas/services/joins/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	caller = models.Identity{UserID: uuid.New(), Email: "dewi@corp.id", Role: models.RoleEmployee}
	admin  = models.Identity{UserID: uuid.New(), Email: "ops@corp.id", Role: models.RoleAdmin}
)

func newRequest(method, target string, body interface{}, identity models.Identity, id string) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set(middleware.ContextKeyIdentity, identity)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func setupHandler(t *testing.T) (*JoinHandler, *mocks.MockJoinUC) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockJoinUC(ctrl)
	return NewJoinHandler(mockUC), mockUC
}

func TestJoinHandler_RequestJoin(t *testing.T) {
	handler, mockUC := setupHandler(t)
	tripID := uuid.New()
	mockUC.EXPECT().RequestJoin(gomock.Any(), caller, tripID, &models.JoinTripRequest{Reason: "Same client"}).
		Return(&models.JoinRequest{ID: uuid.New(), TripID: tripID, Status: models.JoinRequestPending}, nil)

	c, rec := newRequest(http.MethodPost, "/", map[string]string{"reason": "Same client"}, caller, tripID.String())

	require.NoError(t, handler.RequestJoin(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestJoinHandler_RequestJoin_CapacityExceeded(t *testing.T) {
	handler, mockUC := setupHandler(t)
	tripID := uuid.New()
	mockUC.EXPECT().RequestJoin(gomock.Any(), caller, tripID, gomock.Any()).
		Return(nil, apperror.CapacityExceededError{Current: 3, Requested: 1, Capacity: 3})

	c, rec := newRequest(http.MethodPost, "/", map[string]string{"reason": "ride"}, caller, tripID.String())

	require.NoError(t, handler.RequestJoin(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeError(t, rec)
	assert.NotNil(t, body.Details)
	assert.Contains(t, rec.Body.String(), `"capacity":3`)
}

func TestJoinHandler_RequestJoin_BadTripID(t *testing.T) {
	handler, _ := setupHandler(t)
	c, rec := newRequest(http.MethodPost, "/", nil, caller, "nope")

	require.NoError(t, handler.RequestJoin(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJoinHandler_Approve(t *testing.T) {
	handler, mockUC := setupHandler(t)
	id := uuid.New()
	mockUC.EXPECT().ApproveJoinRequest(gomock.Any(), admin, id, &models.JoinDecisionRequest{Notes: "ok"}).
		Return(&models.JoinApproval{Request: &models.JoinRequest{ID: id}, Trip: &models.Trip{ID: uuid.New()}}, nil)

	c, rec := newRequest(http.MethodPost, "/", map[string]string{"notes": "ok"}, admin, id.String())

	require.NoError(t, handler.Approve(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJoinHandler_Approve_RolledBack(t *testing.T) {
	handler, mockUC := setupHandler(t)
	id := uuid.New()
	mockUC.EXPECT().ApproveJoinRequest(gomock.Any(), admin, id, &models.JoinDecisionRequest{}).
		Return(nil, apperror.ConflictError{Resource: "join_request", Msg: "request is already approved"})

	c, rec := newRequest(http.MethodPost, "/", nil, admin, id.String())

	require.NoError(t, handler.Approve(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestJoinHandler_Reject_NotesTooLong(t *testing.T) {
	handler, _ := setupHandler(t)
	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'x'
	}

	c, rec := newRequest(http.MethodPost, "/", map[string]string{"notes": string(long)}, admin, uuid.NewString())

	require.NoError(t, handler.Reject(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJoinHandler_Cancel(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"cancelled", nil, http.StatusOK},
		{"not the requester", apperror.AuthorizationError{Action: "cancel join request"}, http.StatusForbidden},
		{"missing", apperror.NotFoundError{Resource: "join_request"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockUC := setupHandler(t)
			id := uuid.New()
			var join *models.JoinRequest
			if tt.err == nil {
				join = &models.JoinRequest{ID: id, Status: models.JoinRequestCancelled}
			}
			mockUC.EXPECT().CancelJoinRequest(gomock.Any(), caller, id).Return(join, tt.err)

			c, rec := newRequest(http.MethodPost, "/", nil, caller, id.String())

			require.NoError(t, handler.Cancel(c))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestJoinHandler_List(t *testing.T) {
	handler, mockUC := setupHandler(t)
	mockUC.EXPECT().ListJoinRequests(gomock.Any(), models.JoinRequestPending).Return([]*models.JoinRequest{}, nil)

	c, rec := newRequest(http.MethodGet, "/?status=pending", nil, admin, "")

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
